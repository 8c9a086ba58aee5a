package jobstore

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey_NamespacesJobID(t *testing.T) {
	assert.Equal(t, "timetabler:job:abc-123", key("abc-123"))
}

func TestJob_RoundTripsThroughJSON(t *testing.T) {
	job := Job{ID: "abc", Status: StatusSucceeded, ResultJSON: `{"lessons":[]}`}

	data, err := json.Marshal(job)
	require.NoError(t, err)

	var got Job
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, job, got)
}
