// Package jobstore persists asynchronous solve-job state in Redis,
// grounded on noah-isme-sma-adp-api's pkg/cache + CacheRepository
// get/set-with-TTL pattern.
package jobstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("jobstore: job not found")

// Status is a solve job's lifecycle stage.
type Status string

const (
	StatusQueued    Status = "queued"
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Job is the record stored per job ID.
type Job struct {
	ID         string    `json:"id"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Error      string    `json:"error,omitempty"`
	ResultJSON string    `json:"result_json,omitempty"`
}

// TTL is how long a finished job's record survives in Redis.
const TTL = 24 * time.Hour

// Store wraps a redis client with the job key namespace.
type Store struct {
	client *redis.Client
}

func New(addr, password string, db int) *Store {
	return &Store{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}

func key(id string) string {
	return "timetabler:job:" + id
}

// Save upserts a job record with a refreshed TTL.
func (s *Store) Save(ctx context.Context, job Job) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal job %s: %w", job.ID, err)
	}
	if err := s.client.Set(ctx, key(job.ID), payload, TTL).Err(); err != nil {
		return fmt.Errorf("redis set job %s: %w", job.ID, err)
	}
	return nil
}

// Get loads a job record by ID.
func (s *Store) Get(ctx context.Context, id string) (Job, error) {
	raw, err := s.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return Job{}, ErrNotFound
		}
		return Job{}, fmt.Errorf("redis get job %s: %w", id, err)
	}

	var job Job
	if err := json.Unmarshal(raw, &job); err != nil {
		return Job{}, fmt.Errorf("unmarshal job %s: %w", id, err)
	}
	return job, nil
}
