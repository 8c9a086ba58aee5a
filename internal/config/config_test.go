package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FallsBackToDocumentedDefaults(t *testing.T) {
	t.Setenv("SA_MAX_ITER", "")
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 10000, cfg.SA.MaxIter)
	assert.Equal(t, 100.0, cfg.SA.T0)
	assert.True(t, cfg.SA.UseReheating)
}

func TestLoad_EnvOverridesDefault(t *testing.T) {
	t.Setenv("PORT", "9090")
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
}
