// SPDX-License-Identifier: MIT

package telemetry

import (
	"go.opentelemetry.io/otel/attribute"
)

// Common attribute keys for consistent tracing across the application.
const (
	// Playback attributes
	PlaybackPositionKey = "playback.position_seconds"
	PlaybackPlayingKey  = "playback.playing"
	PlaybackMutedKey    = "playback.muted"
	PlaybackTargetKey   = "playback.seek_target"

	// Chat attributes
	ChatStateKey   = "chat.state"
	ChatAttemptKey = "chat.attempt"
	ChatURLKey     = "chat.url"

	// Catalog attributes
	CatalogDatasetKey  = "catalog.dataset"
	CatalogFallbackKey = "catalog.fallback"
	CatalogURLKey      = "catalog.url"

	// Error attributes
	ErrorKey     = "error"
	ErrorTypeKey = "error.type"
)

// PlaybackAttributes creates playback-related span attributes.
func PlaybackAttributes(position int, playing, muted bool) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int(PlaybackPositionKey, position),
		attribute.Bool(PlaybackPlayingKey, playing),
		attribute.Bool(PlaybackMutedKey, muted),
	}
}

// SeekAttributes creates seek-related span attributes.
func SeekAttributes(target int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int(PlaybackTargetKey, target),
	}
}

// ChatAttributes creates chat channel span attributes.
func ChatAttributes(state string, attempt int) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, 2)
	if state != "" {
		attrs = append(attrs, attribute.String(ChatStateKey, state))
	}
	if attempt > 0 {
		attrs = append(attrs, attribute.Int(ChatAttemptKey, attempt))
	}
	return attrs
}

// CatalogAttributes creates catalog fetch span attributes.
func CatalogAttributes(dataset, url string, fallback bool) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(CatalogDatasetKey, dataset),
		attribute.String(CatalogURLKey, url),
		attribute.Bool(CatalogFallbackKey, fallback),
	}
}

// ErrorAttributes creates error-related span attributes.
func ErrorAttributes(_ error, errorType string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Bool(ErrorKey, true),
		attribute.String(ErrorTypeKey, errorType),
	}
}
