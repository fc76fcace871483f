package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	r, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultApplicationName, r.ApplicationName)
	assert.Equal(t, DefaultTextContains, r.TextContains)
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "rules.json", `{"application_name":"Other Driver","text_contains":"exec"}`)
	r, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Other Driver", r.ApplicationName)
	assert.Equal(t, "exec", r.TextContains)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "rules.yaml", "application_name: Other Driver\ntext_contains: exec\n")
	r, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Other Driver", r.ApplicationName)
	assert.Equal(t, "exec", r.TextContains)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, "rules.json", `{"application_name":"Other Driver"}`)
	r, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Other Driver", r.ApplicationName)
	assert.Equal(t, DefaultTextContains, r.TextContains)
}

func TestLoadFailureFallsBackToDefaults(t *testing.T) {
	for _, path := range []string{
		filepath.Join(t.TempDir(), "missing.json"),
		writeFile(t, "rules.txt", "application_name: x"),
		writeFile(t, "rules.json", `{"application_name":""}`),
		writeFile(t, "broken.yaml", "{[broken"),
	} {
		r, err := Load(path)
		require.Error(t, err)
		require.NotNil(t, r)
		assert.Equal(t, DefaultApplicationName, r.ApplicationName)
		assert.Equal(t, DefaultTextContains, r.TextContains)
	}
}
