// SPDX-License-Identifier: MIT

// Package media provides concrete media element implementations. The daemon
// treats the element as a black box; this package speaks mpv's JSON IPC
// protocol over its unix socket so a locally running mpv can act as the
// film's media element.
package media

import (
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/reelmate/reelmate/internal/log"
)

const (
	ipcRetries      = 3
	ipcRetryDelay   = 100 * time.Millisecond
	ipcReadDeadline = time.Second
	ipcReadBufSize  = 4096
)

// ipcCommand is the JSON structure sent to mpv's IPC socket.
type ipcCommand struct {
	Command []any `json:"command"`
}

// ipcResponse is the JSON structure received from mpv's IPC socket.
type ipcResponse struct {
	Data  any    `json:"data"`
	Error string `json:"error"`
}

// MPV drives an mpv instance through its --input-ipc-server socket.
// Commands are serialized; each command uses a fresh connection so a crashed
// and restarted mpv is picked up transparently.
type MPV struct {
	socketPath string
	mu         sync.Mutex
	logger     zerolog.Logger
}

// NewMPV returns an element attached to the given IPC socket path.
func NewMPV(socketPath string) *MPV {
	return &MPV{
		socketPath: socketPath,
		logger:     log.WithComponent("mpv"),
	}
}

// LoadFile loads the given URL into the player.
func (m *MPV) LoadFile(url string) error {
	_, err := m.command("loadfile", url)
	return err
}

// Position returns the current playback position in seconds.
func (m *MPV) Position() (float64, error) {
	data, err := m.command("get_property", "time-pos")
	if err != nil {
		return 0, err
	}
	pos, ok := data.(float64)
	if !ok {
		return 0, fmt.Errorf("media: unexpected time-pos payload %T", data)
	}
	return pos, nil
}

// Paused reports the player's pause property.
func (m *MPV) Paused() (bool, error) {
	return m.boolProperty("pause")
}

// Muted reports the player's mute property.
func (m *MPV) Muted() (bool, error) {
	return m.boolProperty("mute")
}

// SeekTo jumps to an absolute position in seconds.
func (m *MPV) SeekTo(seconds int) error {
	_, err := m.command("seek", seconds, "absolute")
	return err
}

// SetPaused sets the player's pause property.
func (m *MPV) SetPaused(paused bool) error {
	_, err := m.command("set_property", "pause", paused)
	return err
}

// SetMuted sets the player's mute property.
func (m *MPV) SetMuted(muted bool) error {
	_, err := m.command("set_property", "mute", muted)
	return err
}

func (m *MPV) boolProperty(name string) (bool, error) {
	data, err := m.command("get_property", name)
	if err != nil {
		return false, err
	}
	v, ok := data.(bool)
	if !ok {
		return false, fmt.Errorf("media: unexpected %s payload %T", name, data)
	}
	return v, nil
}

// command sends one IPC command, retrying transient connection errors.
func (m *MPV) command(args ...any) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var lastErr error
	for attempt := 0; attempt < ipcRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(ipcRetryDelay)
		}
		data, err := sendIPC(m.socketPath, args)
		if err == nil {
			return data, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("media: ipc command failed after %d attempts: %w", ipcRetries, lastErr)
}

// sendIPC performs a single newline-delimited JSON request/response exchange.
func sendIPC(socketPath string, args []any) (any, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	payload, err := json.Marshal(ipcCommand{Command: args})
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	if _, err := conn.Write(append(payload, '\n')); err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}
	if err := conn.SetReadDeadline(time.Now().Add(ipcReadDeadline)); err != nil {
		return nil, fmt.Errorf("set deadline: %w", err)
	}

	buf := make([]byte, ipcReadBufSize)
	n, err := conn.Read(buf)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var resp ipcResponse
	if err := json.Unmarshal(buf[:n], &resp); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if resp.Error != "" && resp.Error != "success" {
		return nil, fmt.Errorf("mpv: %s", resp.Error)
	}
	return resp.Data, nil
}
