// SPDX-License-Identifier: MIT

// Package config provides configuration management for reelmate.
// Precedence: environment > config file > defaults.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// Telemetry configures the optional OTLP trace exporter.
type Telemetry struct {
	Enabled      bool    `yaml:"enabled"`
	Exporter     string  `yaml:"exporter"` // "grpc", "http" or "noop"
	Endpoint     string  `yaml:"endpoint"`
	SamplingRate float64 `yaml:"sampling_rate"`
}

// Config is the resolved daemon configuration.
type Config struct {
	Listen    string `yaml:"listen"`
	DataDir   string `yaml:"data_dir"`
	MovieURL  string `yaml:"movie_url"`
	ChatURL   string `yaml:"chat_url"`
	MPVSocket string `yaml:"mpv_socket"`
	LogLevel  string `yaml:"log_level"`

	MovieTimeout   time.Duration `yaml:"movie_timeout"`
	DatasetTimeout time.Duration `yaml:"dataset_timeout"`
	ChatRetryDelay time.Duration `yaml:"chat_retry_delay"`
	SendDebounce   time.Duration `yaml:"send_debounce"`
	PauseDebounce  time.Duration `yaml:"pause_debounce"`
	PollInterval   time.Duration `yaml:"poll_interval"`

	RateLimitRPM int `yaml:"rate_limit_rpm"`

	Telemetry Telemetry `yaml:"telemetry"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Listen:         "127.0.0.1:8750",
		DataDir:        filepath.Join(os.TempDir(), "reelmate"),
		MovieURL:       "https://tp-iai3.cleverapps.io/projet/",
		ChatURL:        "wss://tp-iai3.cleverapps.io/",
		MPVSocket:      "/tmp/mpv.sock",
		LogLevel:       "info",
		MovieTimeout:   5 * time.Second,
		DatasetTimeout: 3 * time.Second,
		ChatRetryDelay: 3 * time.Second,
		SendDebounce:   500 * time.Millisecond,
		PauseDebounce:  200 * time.Millisecond,
		PollInterval:   time.Second,
		RateLimitRPM:   600,
		Telemetry: Telemetry{
			Enabled:      false,
			Exporter:     "noop",
			SamplingRate: 1.0,
		},
	}
}

// Validate rejects configurations the daemon cannot run with.
func (c Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("config: listen address must not be empty")
	}
	if c.DataDir == "" {
		return fmt.Errorf("config: data_dir must not be empty")
	}
	if err := validateURL("movie_url", c.MovieURL, "http", "https"); err != nil {
		return err
	}
	if err := validateURL("chat_url", c.ChatURL, "ws", "wss"); err != nil {
		return err
	}
	for name, d := range map[string]time.Duration{
		"movie_timeout":    c.MovieTimeout,
		"dataset_timeout":  c.DatasetTimeout,
		"chat_retry_delay": c.ChatRetryDelay,
		"send_debounce":    c.SendDebounce,
		"pause_debounce":   c.PauseDebounce,
		"poll_interval":    c.PollInterval,
	} {
		if d <= 0 {
			return fmt.Errorf("config: %s must be positive", name)
		}
	}
	if c.RateLimitRPM <= 0 {
		return fmt.Errorf("config: rate_limit_rpm must be positive")
	}
	return nil
}

func validateURL(name, raw string, schemes ...string) error {
	if raw == "" {
		return fmt.Errorf("config: %s must not be empty", name)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("config: %s: %w", name, err)
	}
	for _, s := range schemes {
		if u.Scheme == s {
			return nil
		}
	}
	return fmt.Errorf("config: %s: unsupported scheme %q", name, u.Scheme)
}
