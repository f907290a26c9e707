package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, SourceFile, cfg.Artifacts.Source)
	assert.Equal(t, "trained_model.json", cfg.Artifacts.ModelPath)
	assert.Equal(t, "vectorizer.json", cfg.Artifacts.VectorizerPath)
	assert.Empty(t, cfg.Artifacts.Labels)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ARTIFACT_SOURCE", "Postgres")
	t.Setenv("MODEL_LABELS", "Anxiety, Depression,,Normal ")
	t.Setenv("SERVER_WRITE_TIMEOUT", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, SourcePostgres, cfg.Artifacts.Source)
	assert.Equal(t, []string{"Anxiety", "Depression", "Normal"}, cfg.Artifacts.Labels)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
}

func TestLoad_UnknownSource(t *testing.T) {
	t.Setenv("ARTIFACT_SOURCE", "s3")

	_, err := Load()
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "models", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@db:5432/models?sslmode=disable", d.DSN())
}
