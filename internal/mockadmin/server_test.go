package mockadmin

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

// TestServer_StubbedRoute verifies that a stubbed route serves its
// fixture body and status.
func TestServer_StubbedRoute(t *testing.T) {
	srv := New(t)
	srv.StubConfig("adobe", "aem-boilerplate", "main", http.StatusOK, `{"project":"Boilerplate"}`)

	status, body := get(t, srv.URL()+ConfigPath("adobe", "aem-boilerplate", "main"))

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"project":"Boilerplate"}`, body)
}

// TestServer_UnstubbedRoute verifies the 404 default.
func TestServer_UnstubbedRoute(t *testing.T) {
	srv := New(t)

	status, _ := get(t, srv.URL()+ConfigPath("adobe", "unknown", "main"))

	assert.Equal(t, http.StatusNotFound, status)
}

// TestServer_RequestCounts verifies per-route request bookkeeping,
// including unstubbed routes.
func TestServer_RequestCounts(t *testing.T) {
	srv := New(t)
	srv.StubDevConfig(http.StatusOK, `{}`)

	get(t, srv.URL()+DevConfigPath)
	get(t, srv.URL()+DevConfigPath)
	get(t, srv.URL()+"/sidekick/a/b/c/config.json")

	assert.Equal(t, 2, srv.Requests(http.MethodGet, DevConfigPath))
	assert.Equal(t, 1, srv.Requests(http.MethodGet, "/sidekick/a/b/c/config.json"))
	assert.Equal(t, 0, srv.Requests(http.MethodGet, "/never/hit"))
}

// TestServer_StubFile verifies fixture bodies loaded from disk.
func TestServer_StubFile(t *testing.T) {
	fixture := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(fixture, []byte(`{"host":"www.example.com"}`), 0o600))

	srv := New(t)
	srv.StubFile(t, http.MethodGet, DevConfigPath, http.StatusOK, fixture)

	status, body := get(t, srv.URL()+DevConfigPath)

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"host":"www.example.com"}`, body)
}

// TestServer_ConfigRouteParams verifies that the parameterized
// configuration route dispatches per project identity: each stub only
// answers its own owner/repo/ref combination.
func TestServer_ConfigRouteParams(t *testing.T) {
	srv := New(t)
	srv.StubConfig("adobe", "site", "main", http.StatusOK, `{"project":"Main"}`)
	srv.StubConfig("adobe", "site", "feature", http.StatusUnauthorized, "")

	status, body := get(t, srv.URL()+ConfigPath("adobe", "site", "main"))
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"project":"Main"}`, body)

	status, _ = get(t, srv.URL()+ConfigPath("adobe", "site", "feature"))
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = get(t, srv.URL()+ConfigPath("adobe", "site", "other"))
	assert.Equal(t, http.StatusNotFound, status)

	assert.Equal(t, 1, srv.Requests(http.MethodGet, ConfigPath("adobe", "site", "main")))
	assert.Equal(t, 1, srv.Requests(http.MethodGet, ConfigPath("adobe", "site", "other")))
}

// TestConfigPath verifies path escaping of project identity segments.
func TestConfigPath(t *testing.T) {
	assert.Equal(t, "/sidekick/adobe/site/main/config.json", ConfigPath("adobe", "site", "main"))
	assert.Equal(t, "/sidekick/a%2Fb/site/main/config.json", ConfigPath("a/b", "site", "main"))
}
