package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/melo-compras/pkg/config"
)

func TestLoadFile_YAMLConEnvPrioritaria(t *testing.T) {
	path := filepath.Join(t.TempDir(), "melo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("MELO_API_BASE_URL: https://api.melo.com.br/\nHTTP_PORT: 9090\nCOMPANY_NAME: Melo Teste\n"), 0o644))
	t.Setenv("HTTP_PORT", "7070")

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.melo.com.br", cfg.MeloAPI.BaseURL, "sin barra final")
	assert.Equal(t, "0.0.0.0:7070", cfg.HTTP.Addr())
	assert.Equal(t, "Melo Teste", cfg.Company.Name)
	assert.Equal(t, 15*time.Second, cfg.MeloAPI.Timeout())
}

func TestLoad_URLInvalida(t *testing.T) {
	t.Setenv("MELO_API_BASE_URL", "ftp://x")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoadFile_Inexistente(t *testing.T) {
	_, err := config.LoadFile(filepath.Join(t.TempDir(), "nada.yaml"))
	assert.Error(t, err)
}

func TestMeloAPIConfig_TimeoutPorDefecto(t *testing.T) {
	assert.Equal(t, 15*time.Second, config.MeloAPIConfig{}.Timeout())
	assert.Equal(t, 3*time.Second, config.MeloAPIConfig{TimeoutSeconds: 3}.Timeout())
}
