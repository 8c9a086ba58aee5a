package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadJSON_ParsesWellFormedDocument(t *testing.T) {
	path := writeTempJSON(t, `{
		"teachers": [{"id": "t1", "name": "Ada"}],
		"subjects": [{"id": "math", "required_lessons": {"c1": 1}}],
		"classes": [{"id": "c1", "name": "1A", "turno": "morning"}],
		"rooms": [{"id": "r1", "name": "Room 1"}],
		"class_to_room": {"c1": "r1"},
		"availability": [{"teacher_id": "t1", "day": 0, "period": 0}],
		"requests": [{"class_id": "c1", "subject_id": "math", "teacher_id": "t1"}]
	}`)

	in, err := LoadJSON(path)
	require.NoError(t, err)
	assert.Len(t, in.Teachers, 1)
	assert.Len(t, in.Availability, 1)
}

func TestLoadJSON_RejectsOutOfRangeAvailabilityInsteadOfPanicking(t *testing.T) {
	path := writeTempJSON(t, `{
		"availability": [{"teacher_id": "t1", "day": 9, "period": 0}]
	}`)

	_, err := LoadJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestLoadJSON_RejectsNegativePeriod(t *testing.T) {
	path := writeTempJSON(t, `{
		"availability": [{"teacher_id": "t1", "day": 0, "period": -1}]
	}`)

	_, err := LoadJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}
