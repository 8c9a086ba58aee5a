// Command timetableapi exposes the solver as an asynchronous HTTP job
// API, grounded on noah-isme-sma-adp-api's cmd/api-gateway wiring
// (config -> logger -> gin engine -> middleware -> route groups).
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"school-timetabler/internal/apihandler"
	"school-timetabler/internal/config"
	"school-timetabler/internal/solver"
	"school-timetabler/pkg/auth"
	"school-timetabler/pkg/jobstore"
	"school-timetabler/pkg/logging"
	"school-timetabler/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	sugar, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer sugar.Sync()

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	store := jobstore.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer store.Close()

	reg := metrics.New()
	issuer := auth.NewIssuer(cfg.JWT.Secret, cfg.JWT.Expiration)

	orchCfg := solver.OrchestratorConfig{
		MaxAttempts:  cfg.MaxAttempts,
		Optimize:     true,
		Constructive: cfg.Constructive,
		SA:           cfg.SA,
		Logger:       logging.SolverAdapter{Sugar: sugar},
	}
	runner := apihandler.New(store, reg, orchCfg, sugar)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(sugar))

	r.GET("/healthz", apihandler.Health)
	r.GET("/metrics", gin.WrapH(reg.Handler()))

	v1 := r.Group("/v1")
	v1.Use(issuer.Middleware())
	v1.POST("/jobs", runner.CreateJob)
	v1.GET("/jobs/:id", runner.GetJob)

	addr := fmt.Sprintf(":%d", cfg.Port)
	fmt.Printf("🚀 timetableapi listening on %s\n", addr)
	if err := r.Run(addr); err != nil {
		sugar.Fatalw("server exited", "error", err)
	}
}

// requestLogger mirrors noah-isme-sma-adp-api's logger.GinMiddleware
// shape: one structured line per request with method, path, status,
// and latency.
func requestLogger(sugar interface {
	Infow(msg string, keysAndValues ...interface{})
}) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		sugar.Infow("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		)
	}
}
