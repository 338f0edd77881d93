package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "campuscare.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "listen:\n  addr: \":9090\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Listen.Addr)
	assert.Equal(t, ProviderKeyword, cfg.Classifier.Provider)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
listen:
  addr: ":8081"
classifier:
  provider: openai
  model: gpt-4o-mini
  temperature: 0.1
  max_tokens: 20
router:
  academic_keywords: ["transcript", "report card"]
log_level: debug
log_format: text
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, cfg.Classifier.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.Classifier.Model)
	assert.Equal(t, 0.1, cfg.Classifier.Temperature)
	assert.Equal(t, []string{"transcript", "report card"}, cfg.Router.AcademicKeywords)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_RejectsUnknownProvider(t *testing.T) {
	path := writeConfig(t, "classifier:\n  provider: magic\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown classifier provider")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestFindConfig_ExplicitMustExist(t *testing.T) {
	_, err := FindConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	path := writeConfig(t, "listen:\n  addr: \":8080\"\n")
	found, err := FindConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestValidate_EmptyListenAddr(t *testing.T) {
	cfg := Default()
	cfg.Listen.Addr = ""
	assert.Error(t, cfg.Validate())
}
