package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"resume-builder/internal/logger"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port string `yaml:"port"`
}

// RendererConfig controls headless Chrome printing.
type RendererConfig struct {
	ChromePath     string  `yaml:"chrome_path"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
	Attempts       int     `yaml:"attempts"`
	PaperWidth     float64 `yaml:"paper_width"`  // inches
	PaperHeight    float64 `yaml:"paper_height"` // inches
}

func (r RendererConfig) Timeout() time.Duration {
	return time.Duration(r.TimeoutSeconds) * time.Second
}

type MinIOConfig struct {
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	UseSSL          bool   `yaml:"use_ssl"`
	Bucket          string `yaml:"bucket"`
	Prefix          string `yaml:"prefix"`
}

type StorageConfig struct {
	Backend string      `yaml:"backend"` // file or minio
	Dir     string      `yaml:"dir"`
	MinIO   MinIOConfig `yaml:"minio"`
}

type DatabaseConfig struct {
	// URL is optional; the export ledger is disabled when empty.
	URL string `yaml:"url"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Logger   logger.Config  `yaml:"logger"`
	Renderer RendererConfig `yaml:"renderer"`
	Storage  StorageConfig  `yaml:"storage"`
	Database DatabaseConfig `yaml:"database"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// LoadConfig reads the YAML file at path, fills defaults and applies env
// overrides. An empty path or a missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	c := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			logger.Warn().Str("path", path).Msg("config file not found, using defaults")
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, c); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	c.applyDefaults()
	c.applyEnv()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "3000"
	}
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
	if c.Logger.Format == "" {
		c.Logger.Format = "json"
	}
	if c.Renderer.TimeoutSeconds <= 0 {
		c.Renderer.TimeoutSeconds = 60
	}
	if c.Renderer.Attempts <= 0 {
		c.Renderer.Attempts = 3
	}
	// A4: 210mm x 297mm
	if c.Renderer.PaperWidth <= 0 {
		c.Renderer.PaperWidth = 8.27
	}
	if c.Renderer.PaperHeight <= 0 {
		c.Renderer.PaperHeight = 11.69
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = "file"
	}
	if c.Storage.Dir == "" {
		c.Storage.Dir = defaultDownloadsDir()
	}
	if c.Storage.MinIO.Bucket == "" {
		c.Storage.MinIO.Bucket = "resumes"
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("CHROME_PATH"); v != "" {
		c.Renderer.ChromePath = v
	}
	if v := os.Getenv("RESUME_OUTPUT_DIR"); v != "" {
		c.Storage.Dir = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.URL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logger.Level = v
	}
	if v := os.Getenv("MINIO_USE_SSL"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Storage.MinIO.UseSSL = b
		}
	}
}

// MaxRenderAttempts bounds renderer.attempts; each retry doubles the wait.
const MaxRenderAttempts = 10

func (c *Config) Validate() error {
	if c.Renderer.Attempts > MaxRenderAttempts {
		return fmt.Errorf("renderer.attempts must be at most %d, got %d", MaxRenderAttempts, c.Renderer.Attempts)
	}
	switch c.Storage.Backend {
	case "file":
	case "minio":
		if c.Storage.MinIO.Endpoint == "" {
			return errors.New("storage.minio.endpoint is required for the minio backend")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	return nil
}

func defaultDownloadsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "Downloads"
	}
	return filepath.Join(home, "Downloads")
}
