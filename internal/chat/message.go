// SPDX-License-Identifier: MIT

package chat

import (
	"encoding/json"
	"fmt"
)

// Timestamp tolerates the chat backend's mixed framing for the "when" field,
// which arrives either as a string or as a number.
type Timestamp string

// UnmarshalJSON accepts a JSON string or number.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = Timestamp(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*t = Timestamp(n.String())
		return nil
	}
	return fmt.Errorf("chat: unsupported when value %s", string(b))
}

// MarshalJSON always emits a string.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// Message is one chat message. Moment is an optional shared playback
// position in seconds.
type Message struct {
	Name    string    `json:"name"`
	Message string    `json:"message"`
	When    Timestamp `json:"when,omitempty"`
	Moment  *int      `json:"moment,omitempty"`
}

// outbound is the frame shape written to the backend.
type outbound struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Moment  *int   `json:"moment,omitempty"`
}

// inbound is the normalized form of one received payload. The backend frames
// messages three ways: a full-history array, a single-element array, and a
// bare object. Classification happens here, before any other logic sees the
// payload.
type inbound struct {
	replace bool
	items   []Message
}

// classify normalizes a raw payload. An array longer than one element is an
// authoritative history snapshot that replaces the log; a single-element
// array and a bare object both append.
func classify(data []byte) (inbound, error) {
	var arr []Message
	if err := json.Unmarshal(data, &arr); err == nil {
		return inbound{replace: len(arr) > 1, items: arr}, nil
	}
	var one Message
	if err := json.Unmarshal(data, &one); err != nil {
		return inbound{}, fmt.Errorf("chat: malformed payload: %w", err)
	}
	return inbound{items: []Message{one}}, nil
}
