package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMountPointList_String tests the String method of mountPointList.
func TestMountPointList_String(t *testing.T) {
	tests := []struct {
		name     string
		list     mountPointList
		expected string
	}{
		{
			name:     "empty list",
			list:     mountPointList{},
			expected: "",
		},
		{
			name:     "single entry",
			list:     mountPointList{"https://a.example.com"},
			expected: "https://a.example.com",
		},
		{
			name:     "multiple entries",
			list:     mountPointList{"https://a.example.com", "https://b.example.com"},
			expected: "https://a.example.com,https://b.example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.list.String())
		})
	}
}

// TestMountPointList_Set tests the Set method of mountPointList.
func TestMountPointList_Set(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected mountPointList
	}{
		{
			name:     "single entry",
			input:    "https://a.example.com",
			expected: mountPointList{"https://a.example.com"},
		},
		{
			name:     "multiple entries with spaces",
			input:    " https://a.example.com , https://b.example.com ",
			expected: mountPointList{"https://a.example.com", "https://b.example.com"},
		},
		{
			name:     "empty entries dropped",
			input:    "https://a.example.com,,",
			expected: mountPointList{"https://a.example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var list mountPointList
			require.NoError(t, list.Set(tt.input))
			assert.Equal(t, tt.expected, list)
		})
	}
}

// TestParseArgs_AllFlags verifies that every flag lands in the right
// options field.
func TestParseArgs_AllFlags(t *testing.T) {
	opts, configPath, err := parseArgs([]string{
		"-owner", "adobe",
		"-repo", "aem-boilerplate",
		"-ref", "feature",
		"-giturl", "https://github.com/adobe/aem-boilerplate",
		"-mountpoints", "https://a.example.com,https://b.example.com",
		"-project", "Boilerplate",
		"-host", "www.example.com",
		"-preview-host", "preview.example.com",
		"-live-host", "live.example.com",
		"-dev",
		"-dev-origin", "http://localhost:8000",
		"-admin-version", "2",
		"-lang", "fr",
		"-c", "/tmp/options.json",
	})

	require.NoError(t, err)
	assert.Equal(t, "adobe", opts.Owner)
	assert.Equal(t, "aem-boilerplate", opts.Repo)
	assert.Equal(t, "feature", opts.Ref)
	assert.Equal(t, "https://github.com/adobe/aem-boilerplate", opts.GitURL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, opts.MountPoints)
	assert.Equal(t, "Boilerplate", opts.Project)
	assert.Equal(t, "www.example.com", opts.Host)
	assert.Equal(t, "preview.example.com", opts.PreviewHost)
	assert.Equal(t, "live.example.com", opts.LiveHost)
	assert.True(t, opts.DevMode)
	assert.Equal(t, "http://localhost:8000", opts.DevOrigin)
	assert.Equal(t, "2", opts.AdminVersion)
	assert.Equal(t, "fr", opts.Lang)
	assert.Equal(t, "/tmp/options.json", configPath)
}

// TestParseArgs_ConfigAlias verifies the -config alias for -c.
func TestParseArgs_ConfigAlias(t *testing.T) {
	_, configPath, err := parseArgs([]string{"-config", "/tmp/options.json"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/options.json", configPath)
}

// TestParseArgs_NoFlags verifies that no flags yield zero options.
func TestParseArgs_NoFlags(t *testing.T) {
	opts, configPath, err := parseArgs(nil)
	require.NoError(t, err)
	assert.Empty(t, configPath)
	assert.Empty(t, opts.Owner)
	assert.Nil(t, opts.MountPoints)
}
