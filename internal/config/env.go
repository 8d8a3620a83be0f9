// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"strconv"
	"time"
)

// applyEnv overlays REELMATE_* environment variables onto cfg.
func applyEnv(cfg *Config) {
	setString(&cfg.Listen, "REELMATE_LISTEN")
	setString(&cfg.DataDir, "REELMATE_DATA_DIR")
	setString(&cfg.MovieURL, "REELMATE_MOVIE_URL")
	setString(&cfg.ChatURL, "REELMATE_CHAT_URL")
	setString(&cfg.MPVSocket, "REELMATE_MPV_SOCKET")
	setString(&cfg.LogLevel, "REELMATE_LOG_LEVEL")

	setDuration(&cfg.MovieTimeout, "REELMATE_MOVIE_TIMEOUT")
	setDuration(&cfg.DatasetTimeout, "REELMATE_DATASET_TIMEOUT")
	setDuration(&cfg.ChatRetryDelay, "REELMATE_CHAT_RETRY_DELAY")
	setDuration(&cfg.SendDebounce, "REELMATE_SEND_DEBOUNCE")
	setDuration(&cfg.PauseDebounce, "REELMATE_PAUSE_DEBOUNCE")
	setDuration(&cfg.PollInterval, "REELMATE_POLL_INTERVAL")

	setInt(&cfg.RateLimitRPM, "REELMATE_RATE_LIMIT_RPM")

	setBool(&cfg.Telemetry.Enabled, "REELMATE_TELEMETRY_ENABLED")
	setString(&cfg.Telemetry.Exporter, "REELMATE_TELEMETRY_EXPORTER")
	setString(&cfg.Telemetry.Endpoint, "REELMATE_TELEMETRY_ENDPOINT")
	setFloat(&cfg.Telemetry.SamplingRate, "REELMATE_TELEMETRY_SAMPLING_RATE")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setFloat(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}
