// Package models defines the shared data structures and runtime configuration.
package models

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the runtime configuration, loaded from a YAML file. Every field
// has a working default so the binary runs without a config file at all.
type Config struct {
	Crawler CrawlerConfig `yaml:"crawler"`
	Render  RenderConfig  `yaml:"render"`
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
}

type CrawlerConfig struct {
	UserAgent     string `yaml:"user_agent"`
	MaxPages      int    `yaml:"max_pages"`
	PageTimeout   string `yaml:"page_timeout"`
	RobotsTimeout string `yaml:"robots_timeout"`
}

type RenderConfig struct {
	Endpoint string `yaml:"endpoint"`
	Timeout  string `yaml:"timeout"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type StorageConfig struct {
	Path string `yaml:"path"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Crawler: CrawlerConfig{
			UserAgent:     defaultUserAgent,
			MaxPages:      6,
			PageTimeout:   "8s",
			RobotsTimeout: "5s",
		},
		Render: RenderConfig{
			Endpoint: "https://r.jina.ai",
			Timeout:  "15s",
		},
		Server:  ServerConfig{Addr: ":8080"},
		Storage: StorageConfig{Path: "aiready.db"},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// LoadConfig reads the YAML config at path, layering it over the defaults.
// A missing file is not an error; the defaults are returned as-is.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func (c *CrawlerConfig) GetPageTimeout() time.Duration {
	return parseDuration(c.PageTimeout, 8*time.Second)
}

func (c *CrawlerConfig) GetRobotsTimeout() time.Duration {
	return parseDuration(c.RobotsTimeout, 5*time.Second)
}

func (c *RenderConfig) GetTimeout() time.Duration {
	return parseDuration(c.Timeout, 15*time.Second)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
