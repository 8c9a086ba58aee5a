package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-timetabler/internal/solver"
)

func TestNew_RegistersWithoutPanicking(t *testing.T) {
	assert.NotPanics(t, func() { New() })
}

func TestHandler_ServesRegisteredMetricNames(t *testing.T) {
	registry := New()
	registry.ObserveResult(solver.Result{
		Statistics: solver.Statistics{
			ConstructAttempts: 3,
			SAStats: &solver.SAStats{
				Iterations: 500,
				Accepted:   80,
				Rejected:   20,
				Reheats:    2,
				BestCost:   12.5,
			},
		},
	}, 42)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	recorder := httptest.NewRecorder()
	registry.Handler().ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, "timetabler_solve_requests_total 1")
	assert.Contains(t, body, "timetabler_best_cost 12.5")
	assert.Contains(t, body, "timetabler_sa_accept_ratio 0.8")
	assert.True(t, strings.Contains(body, "timetabler_construct_attempts_sum 3"))
}

func TestObserveResult_CountsFailureSeparately(t *testing.T) {
	registry := New()
	registry.ObserveResult(solver.Result{Err: errors.New("boom")}, 1)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	recorder := httptest.NewRecorder()
	registry.Handler().ServeHTTP(recorder, req)

	assert.Contains(t, recorder.Body.String(), "timetabler_solve_failures_total 1")
}

func TestObserveResult_NilReceiverIsNoOp(t *testing.T) {
	var registry *Registry
	assert.NotPanics(t, func() {
		registry.ObserveResult(solver.Result{}, 1)
	})
}

func TestHandler_NilReceiverReturnsServiceUnavailable(t *testing.T) {
	var registry *Registry
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	recorder := httptest.NewRecorder()
	registry.Handler().ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}
