package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configfile "github.com/LishigaT/adgm-corporate-agent/internal/adapters/driven/config/file"
	"github.com/LishigaT/adgm-corporate-agent/internal/core/services"
)

func TestServiceOptions_EmptyConfig(t *testing.T) {
	config, err := configfile.NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, serviceOptions(config))
}

func TestServiceOptions_RetrievalTuning(t *testing.T) {
	config, err := configfile.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, config.Set(configfile.KeyTopK, 5))
	require.NoError(t, config.Set(configfile.KeyChunkSize, 100))
	require.NoError(t, config.Set(configfile.KeyChunkOverlap, 20))

	// Top-K plus one combined chunker option.
	assert.Len(t, serviceOptions(config), 2)
}

func TestServiceOptions_RegistryOverride(t *testing.T) {
	dir := t.TempDir()
	registryPath := filepath.Join(dir, "registry.toml")
	content := "[processes]\n\"Branch Registration\" = [\"Parent Company Certificate\"]\n"
	require.NoError(t, os.WriteFile(registryPath, []byte(content), 0600))

	config, err := configfile.NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, config.Set(configfile.KeyRegistryFile, registryPath))

	svc := services.NewReviewService(nil, nil, serviceOptions(config)...)
	result := svc.Checklist([]string{"other.docx"}, "Branch Registration")

	if assert.NotNil(t, result.Required) {
		assert.Equal(t, 1, *result.Required)
	}
	assert.Equal(t, []string{"Parent Company Certificate"}, result.Missing)
}

func TestServiceOptions_BadRegistrySkipped(t *testing.T) {
	config, err := configfile.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, config.Set(configfile.KeyRegistryFile, "/nonexistent/registry.toml"))

	// The override is dropped; the built-in registry stays in effect.
	svc := services.NewReviewService(nil, nil, serviceOptions(config)...)
	result := svc.Checklist([]string{"Articles of Association.docx"}, "")

	if assert.NotNil(t, result.Required) {
		assert.Equal(t, 5, *result.Required)
	}
}

func TestReferencesDir(t *testing.T) {
	config, err := configfile.NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "references", referencesDir(config))

	require.NoError(t, config.Set(configfile.KeyReferencesDir, "/srv/refs"))
	assert.Equal(t, "/srv/refs", referencesDir(config))
}
