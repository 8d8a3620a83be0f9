// SPDX-License-Identifier: MIT

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldRequestID = "request_id"
	FieldSessionID = "session_id"

	// Process fields
	FieldEvent     = "event"
	FieldComponent = "component"

	// Playback fields
	FieldPosition = "position_seconds"
	FieldPlaying  = "playing"
	FieldMuted    = "muted"

	// Chat fields
	FieldChannelState = "channel_state"
	FieldAttempt      = "attempt"

	// Dataset fields
	FieldDataset  = "dataset"
	FieldFallback = "fallback"

	// Path / URL fields
	FieldURL  = "url"
	FieldPath = "path"
)
