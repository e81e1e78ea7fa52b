package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromEnv_Empty verifies that an empty environment yields an empty
// options record without error.
func TestFromEnv_Empty(t *testing.T) {
	opts, err := FromEnv()
	require.NoError(t, err)
	assert.Empty(t, opts.Owner)
	assert.Empty(t, opts.Repo)
}

// TestFromEnv_ReadsVariables verifies that prefixed variables are
// picked up.
func TestFromEnv_ReadsVariables(t *testing.T) {
	t.Setenv("SIDEKICK_OWNER", "adobe")
	t.Setenv("SIDEKICK_REPO", "aem-boilerplate")
	t.Setenv("SIDEKICK_REF", "feature")
	t.Setenv("SIDEKICK_DEV_MODE", "true")
	t.Setenv("SIDEKICK_DEV_ORIGIN", "http://localhost:8000")
	t.Setenv("SIDEKICK_ADMIN_VERSION", "2")
	t.Setenv("SIDEKICK_LANG", "de")

	opts, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "adobe", opts.Owner)
	assert.Equal(t, "aem-boilerplate", opts.Repo)
	assert.Equal(t, "feature", opts.Ref)
	assert.True(t, opts.DevMode)
	assert.Equal(t, "http://localhost:8000", opts.DevOrigin)
	assert.Equal(t, "2", opts.AdminVersion)
	assert.Equal(t, "de", opts.Lang)
}

// TestFromEnv_MountPoints verifies comma-separated list parsing.
func TestFromEnv_MountPoints(t *testing.T) {
	t.Setenv("SIDEKICK_MOUNTPOINTS", "https://a.example.com,https://b.example.com")

	opts, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, opts.MountPoints)
}

// TestFromEnv_InvalidBool verifies that an unparsable value is reported
// as a wrapped error.
func TestFromEnv_InvalidBool(t *testing.T) {
	t.Setenv("SIDEKICK_DEV_MODE", "not-a-bool")

	_, err := FromEnv()
	assert.Error(t, err)
}
