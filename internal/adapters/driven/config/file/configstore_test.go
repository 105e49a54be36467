package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LishigaT/adgm-corporate-agent/internal/core/domain"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	err = store.Set(KeyOracleProvider, "gemini")
	require.NoError(t, err)

	val, ok := store.Get(KeyOracleProvider)
	assert.True(t, ok)
	assert.Equal(t, "gemini", val)
}

func TestConfigStore_GetString(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyOracleModel, "gemini-1.5-flash"))

	assert.Equal(t, "gemini-1.5-flash", store.GetString(KeyOracleModel))
	assert.Equal(t, "", store.GetString("missing.key"))
}

func TestConfigStore_GetInt(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyTopK, 5))

	assert.Equal(t, 5, store.GetInt(KeyTopK))
	assert.Equal(t, 0, store.GetInt("missing.key"))
}

func TestConfigStore_Delete(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyOracleAPIKey, "secret"))
	require.NoError(t, store.Delete(KeyOracleAPIKey))

	_, ok := store.Get(KeyOracleAPIKey)
	assert.False(t, ok)
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	first, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(KeyReferencesDir, "/srv/refs"))
	require.NoError(t, first.Set(KeyTopK, 4))

	second, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "/srv/refs", second.GetString(KeyReferencesDir))
	assert.Equal(t, 4, second.GetInt(KeyTopK))
}

func TestConfigStore_FlattensNestedTables(t *testing.T) {
	dir := t.TempDir()

	content := "[oracle]\nprovider = \"openai\"\nmodel = \"gpt-4o-mini\"\n"
	err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "openai", store.GetString(KeyOracleProvider))
	assert.Equal(t, "gpt-4o-mini", store.GetString(KeyOracleModel))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyOracleAPIKey, "secret"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadRequiredDocuments_OverridesProcess(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "registry.toml")

	content := "[processes]\n\"Company Incorporation\" = [\"Articles of Association\", \"Board Resolution\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	registry, err := LoadRequiredDocuments(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Articles of Association", "Board Resolution"},
		registry[domain.ProcessCompanyIncorporation])
}

func TestLoadRequiredDocuments_KeepsDefaultsForAbsentProcesses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "registry.toml")

	content := "[processes]\n\"Branch Registration\" = [\"Parent Company Certificate\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	registry, err := LoadRequiredDocuments(path)
	require.NoError(t, err)

	assert.Len(t, registry[domain.ProcessCompanyIncorporation], 5)
	assert.Equal(t, []string{"Parent Company Certificate"}, registry["Branch Registration"])
}

func TestLoadRequiredDocuments_MissingFile(t *testing.T) {
	_, err := LoadRequiredDocuments(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
