// Package apihandler implements cmd/timetableapi's gin handlers,
// grounded on noah-isme-sma-adp-api's handler/service split (a thin
// gin.HandlerFunc that binds, validates, delegates, and serializes).
package apihandler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"school-timetabler/internal/apidto"
	"school-timetabler/internal/domain"
	"school-timetabler/internal/loader"
	"school-timetabler/internal/solver"
	"school-timetabler/pkg/jobstore"
	"school-timetabler/pkg/metrics"
)

// JobRunner is the async solve service backing the job endpoints.
type JobRunner struct {
	store    *jobstore.Store
	metrics  *metrics.Registry
	validate *validator.Validate
	orchCfg  solver.OrchestratorConfig
	logger   *zap.SugaredLogger
}

func New(store *jobstore.Store, reg *metrics.Registry, orchCfg solver.OrchestratorConfig, logger *zap.SugaredLogger) *JobRunner {
	return &JobRunner{store: store, metrics: reg, validate: validator.New(), orchCfg: orchCfg, logger: logger}
}

// CreateJob handles POST /v1/jobs: validates the payload, persists a
// queued job record, and solves it in the background.
func (j *JobRunner) CreateJob(c *gin.Context) {
	var req apidto.SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apidto.ErrorResponse{Error: err.Error()})
		return
	}
	if err := j.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, apidto.ErrorResponse{Error: err.Error()})
		return
	}

	in := req.Input.ToInput()
	if err := loader.Validate(in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apidto.ErrorResponse{Error: err.Error()})
		return
	}

	jobID := uuid.NewString()
	now := time.Now().UTC()
	job := jobstore.Job{ID: jobID, Status: jobstore.StatusQueued, CreatedAt: now, UpdatedAt: now}

	ctx := c.Request.Context()
	if err := j.store.Save(ctx, job); err != nil {
		c.JSON(http.StatusInternalServerError, apidto.ErrorResponse{Error: "could not queue job"})
		return
	}

	cfg := j.orchCfg
	cfg.Optimize = req.Optimize
	if req.Seed != nil {
		cfg.Seed = req.Seed
	}
	if req.MaxAttempts > 0 {
		cfg.MaxAttempts = req.MaxAttempts
	}

	go j.run(context.Background(), jobID, in, cfg)

	c.JSON(http.StatusAccepted, apidto.JobAcceptedResponse{JobID: jobID})
}

// run solves in the background and persists the terminal job state.
func (j *JobRunner) run(ctx context.Context, jobID string, in domain.Input, cfg solver.OrchestratorConfig) {
	_ = j.markRunning(ctx, jobID)

	start := time.Now()
	result := solver.Solve(in, cfg, nil)
	j.metrics.ObserveResult(result, float64(time.Since(start).Milliseconds()))

	if result.Err != nil {
		j.logger.Errorw("solve failed", "job_id", jobID, "error", result.Err)
		_ = j.markFailed(ctx, jobID, result.Err.Error())
		return
	}

	payload, err := json.Marshal(apidto.BuildSolveResult(result.Schedule, result.Statistics))
	if err != nil {
		j.logger.Errorw("marshal solve result", "job_id", jobID, "error", err)
		_ = j.markFailed(ctx, jobID, "internal error serializing result")
		return
	}
	_ = j.markSucceeded(ctx, jobID, string(payload))
}

func (j *JobRunner) markRunning(ctx context.Context, jobID string) error {
	return j.transition(ctx, jobID, func(job *jobstore.Job) { job.Status = jobstore.StatusRunning })
}

func (j *JobRunner) markFailed(ctx context.Context, jobID, message string) error {
	return j.transition(ctx, jobID, func(job *jobstore.Job) {
		job.Status = jobstore.StatusFailed
		job.Error = message
	})
}

func (j *JobRunner) markSucceeded(ctx context.Context, jobID, resultJSON string) error {
	return j.transition(ctx, jobID, func(job *jobstore.Job) {
		job.Status = jobstore.StatusSucceeded
		job.ResultJSON = resultJSON
	})
}

func (j *JobRunner) transition(ctx context.Context, jobID string, mutate func(*jobstore.Job)) error {
	job, err := j.store.Get(ctx, jobID)
	if err != nil {
		return err
	}
	mutate(&job)
	job.UpdatedAt = time.Now().UTC()
	return j.store.Save(ctx, job)
}

// GetJob handles GET /v1/jobs/:id.
func (j *JobRunner) GetJob(c *gin.Context) {
	id := c.Param("id")
	job, err := j.store.Get(c.Request.Context(), id)
	if err != nil {
		if err == jobstore.ErrNotFound {
			c.JSON(http.StatusNotFound, apidto.ErrorResponse{Error: "job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, apidto.ErrorResponse{Error: "could not load job"})
		return
	}

	resp := apidto.JobStatusResponse{
		JobID:     job.ID,
		Status:    string(job.Status),
		CreatedAt: job.CreatedAt,
		UpdatedAt: job.UpdatedAt,
		Error:     job.Error,
	}
	if job.Status == jobstore.StatusSucceeded && job.ResultJSON != "" {
		var result apidto.SolveResult
		if err := json.Unmarshal([]byte(job.ResultJSON), &result); err == nil {
			resp.Result = &result
		}
	}
	c.JSON(http.StatusOK, resp)
}
