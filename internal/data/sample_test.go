package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-timetabler/internal/loader"
)

func TestSample_PassesValidation(t *testing.T) {
	in := Sample()
	require.NoError(t, loader.Validate(in))
}

func TestSample_RequestCountMatchesRequiredLessons(t *testing.T) {
	in := Sample()

	want := 0
	for _, s := range in.Subjects {
		for _, n := range s.RequiredLessons {
			want += n
		}
	}
	assert.Len(t, in.Requests, want)
}
