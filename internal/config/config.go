package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	SourceFile      = "file"
	SourcePostgres  = "postgres"
	SourceConfigMap = "configmap"
)

type Config struct {
	Server     ServerConfig
	Logger     LoggerConfig
	Artifacts  ArtifactConfig
	Database   DatabaseConfig
	Kubernetes KubernetesConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Mode         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Level  string
	Format string
}

type ArtifactConfig struct {
	Source         string
	Dir            string
	ModelPath      string
	VectorizerPath string
	Labels         []string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

type KubernetesConfig struct {
	InCluster      bool
	KubeConfigPath string
	Namespace      string
	ConfigMap      string
}

func Load() (*Config, error) {
	// Best-effort: .env in the working directory
	_ = godotenv.Load()

	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("SERVER_READ_TIMEOUT", "15s")
	v.SetDefault("SERVER_WRITE_TIMEOUT", "15s")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")
	v.SetDefault("ARTIFACT_SOURCE", SourceFile)
	v.SetDefault("ARTIFACT_DIR", ".")
	v.SetDefault("MODEL_PATH", "trained_model.json")
	v.SetDefault("VECTORIZER_PATH", "vectorizer.json")
	v.SetDefault("MODEL_LABELS", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "predictor")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("K8S_IN_CLUSTER", false)
	v.SetDefault("K8S_KUBECONFIG", "")
	v.SetDefault("ARTIFACT_NAMESPACE", "default")
	v.SetDefault("ARTIFACT_CONFIGMAP", "mental-health-model")

	// Env
	v.AutomaticEnv()

	source := strings.ToLower(strings.TrimSpace(v.GetString("ARTIFACT_SOURCE")))
	switch source {
	case SourceFile, SourcePostgres, SourceConfigMap:
	default:
		return nil, fmt.Errorf("unsupported ARTIFACT_SOURCE %q", source)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         v.GetString("SERVER_HOST"),
			Port:         v.GetInt("SERVER_PORT"),
			Mode:         v.GetString("GIN_MODE"),
			ReadTimeout:  duration(v.GetString("SERVER_READ_TIMEOUT"), 15*time.Second),
			WriteTimeout: duration(v.GetString("SERVER_WRITE_TIMEOUT"), 15*time.Second),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
		Artifacts: ArtifactConfig{
			Source:         source,
			Dir:            v.GetString("ARTIFACT_DIR"),
			ModelPath:      v.GetString("MODEL_PATH"),
			VectorizerPath: v.GetString("VECTORIZER_PATH"),
			Labels:         splitList(v.GetString("MODEL_LABELS")),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Kubernetes: KubernetesConfig{
			InCluster:      v.GetBool("K8S_IN_CLUSTER"),
			KubeConfigPath: v.GetString("K8S_KUBECONFIG"),
			Namespace:      v.GetString("ARTIFACT_NAMESPACE"),
			ConfigMap:      v.GetString("ARTIFACT_CONFIGMAP"),
		},
	}

	return cfg, nil
}

func duration(raw string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
