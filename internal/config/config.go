// Package config binds the solver's tunables (constructive config, SA
// config, cost weights) plus the CLI/API's own settings from a local
// .env file and the environment, following noah-isme-sma-adp-api's
// pkg/config pattern.
package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"school-timetabler/internal/solver"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config bundles every tunable the CLI and API share.
type Config struct {
	Env      string
	Port     int
	LogLevel string

	Redis RedisConfig
	JWT   JWTConfig

	Constructive solver.ConstructiveConfig
	SA           solver.SAConfig
	MaxAttempts  int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

// Load reads a local .env (if present) then binds environment
// variables on top of spec.md §6's documented defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	weights := solver.Weights{
		W1: v.GetFloat64("WEIGHT_W1"),
		W2: v.GetFloat64("WEIGHT_W2"),
		W3: v.GetFloat64("WEIGHT_W3"),
		W4: v.GetFloat64("WEIGHT_W4"),
		W5: v.GetFloat64("WEIGHT_W5"),
		W6: v.GetFloat64("WEIGHT_W6"),
	}

	cfg := &Config{
		Env:      v.GetString("ENV"),
		Port:     v.GetInt("PORT"),
		LogLevel: v.GetString("LOG_LEVEL"),

		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("JWT_SECRET"),
			Expiration: v.GetDuration("JWT_EXPIRATION"),
		},

		MaxAttempts: v.GetInt("SOLVER_MAX_ATTEMPTS"),
		Constructive: solver.ConstructiveConfig{
			PrioritizeMinGaps:     v.GetBool("CONSTRUCTIVE_PRIORITIZE_MIN_GAPS"),
			DistributeUniformly:   v.GetBool("CONSTRUCTIVE_DISTRIBUTE_UNIFORMLY"),
			AvoidExtremes:         v.GetBool("CONSTRUCTIVE_AVOID_EXTREMES"),
			MaxAttemptsPerRequest: v.GetInt("CONSTRUCTIVE_MAX_ATTEMPTS_PER_REQUEST"),
		},
		SA: solver.SAConfig{
			MaxIter:             v.GetInt("SA_MAX_ITER"),
			T0:                  v.GetFloat64("SA_T0"),
			Alpha:               v.GetFloat64("SA_ALPHA"),
			TMin:                v.GetFloat64("SA_T_MIN"),
			Weights:             weights,
			UseReheating:        v.GetBool("SA_USE_REHEATING"),
			UseTabu:             v.GetBool("SA_USE_TABU"),
			TabuLength:          v.GetInt("SA_TABU_LENGTH"),
			ReportEvery:         v.GetInt("SA_REPORT_EVERY"),
			EnableSessionSpread: v.GetBool("SA_ENABLE_SESSION_SPREAD"),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_EXPIRATION", "24h")

	v.SetDefault("SOLVER_MAX_ATTEMPTS", solver.DefaultMaxAttempts)

	def := solver.DefaultConstructiveConfig()
	v.SetDefault("CONSTRUCTIVE_PRIORITIZE_MIN_GAPS", def.PrioritizeMinGaps)
	v.SetDefault("CONSTRUCTIVE_DISTRIBUTE_UNIFORMLY", def.DistributeUniformly)
	v.SetDefault("CONSTRUCTIVE_AVOID_EXTREMES", def.AvoidExtremes)
	v.SetDefault("CONSTRUCTIVE_MAX_ATTEMPTS_PER_REQUEST", def.MaxAttemptsPerRequest)

	sa := solver.DefaultSAConfig()
	v.SetDefault("SA_MAX_ITER", sa.MaxIter)
	v.SetDefault("SA_T0", sa.T0)
	v.SetDefault("SA_ALPHA", sa.Alpha)
	v.SetDefault("SA_T_MIN", sa.TMin)
	v.SetDefault("SA_USE_REHEATING", sa.UseReheating)
	v.SetDefault("SA_USE_TABU", sa.UseTabu)
	v.SetDefault("SA_TABU_LENGTH", sa.TabuLength)
	v.SetDefault("SA_REPORT_EVERY", sa.ReportEvery)
	v.SetDefault("SA_ENABLE_SESSION_SPREAD", sa.EnableSessionSpread)

	w := sa.Weights
	v.SetDefault("WEIGHT_W1", w.W1)
	v.SetDefault("WEIGHT_W2", w.W2)
	v.SetDefault("WEIGHT_W3", w.W3)
	v.SetDefault("WEIGHT_W4", w.W4)
	v.SetDefault("WEIGHT_W5", w.W5)
	v.SetDefault("WEIGHT_W6", w.W6)
}
