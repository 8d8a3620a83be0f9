// SPDX-License-Identifier: MIT

package media

import (
	"bufio"
	"encoding/json"
	"net"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMPV answers one newline-delimited JSON command per connection the way
// mpv's IPC server does.
type fakeMPV struct {
	t     *testing.T
	ln    net.Listener
	mu    sync.Mutex
	props map[string]any
	cmds  [][]any
}

func startFakeMPV(t *testing.T) (*fakeMPV, string) {
	t.Helper()
	sock := filepath.Join(t.TempDir(), "mpv.sock")
	ln, err := net.Listen("unix", sock)
	require.NoError(t, err)

	f := &fakeMPV{t: t, ln: ln, props: map[string]any{
		"time-pos": 123.7,
		"pause":    false,
		"mute":     false,
	}}
	go f.serve()
	t.Cleanup(func() { _ = ln.Close() })
	return f, sock
}

func (f *fakeMPV) serve() {
	for {
		conn, err := f.ln.Accept()
		if err != nil {
			return
		}
		go f.handle(conn)
	}
}

func (f *fakeMPV) handle(conn net.Conn) {
	defer conn.Close()
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		var cmd struct {
			Command []any `json:"command"`
		}
		if err := json.Unmarshal(scanner.Bytes(), &cmd); err != nil {
			return
		}
		f.mu.Lock()
		f.cmds = append(f.cmds, cmd.Command)
		resp := map[string]any{"error": "success"}
		if len(cmd.Command) >= 2 && cmd.Command[0] == "get_property" {
			name, _ := cmd.Command[1].(string)
			if v, ok := f.props[name]; ok {
				resp["data"] = v
			} else {
				resp["error"] = "property not found"
			}
		}
		if len(cmd.Command) >= 3 && cmd.Command[0] == "set_property" {
			name, _ := cmd.Command[1].(string)
			f.props[name] = cmd.Command[2]
		}
		f.mu.Unlock()

		out, _ := json.Marshal(resp)
		if _, err := conn.Write(append(out, '\n')); err != nil {
			return
		}
	}
}

func (f *fakeMPV) commands() [][]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]any, len(f.cmds))
	copy(out, f.cmds)
	return out
}

func TestMPVPosition(t *testing.T) {
	_, sock := startFakeMPV(t)
	m := NewMPV(sock)

	pos, err := m.Position()
	require.NoError(t, err)
	assert.InDelta(t, 123.7, pos, 0.001)
}

func TestMPVPauseAndMuteProperties(t *testing.T) {
	f, sock := startFakeMPV(t)
	m := NewMPV(sock)

	paused, err := m.Paused()
	require.NoError(t, err)
	assert.False(t, paused)

	require.NoError(t, m.SetPaused(true))
	paused, err = m.Paused()
	require.NoError(t, err)
	assert.True(t, paused)

	require.NoError(t, m.SetMuted(true))
	muted, err := m.Muted()
	require.NoError(t, err)
	assert.True(t, muted)

	assert.NotEmpty(t, f.commands())
}

func TestMPVSeekCommandShape(t *testing.T) {
	f, sock := startFakeMPV(t)
	m := NewMPV(sock)

	require.NoError(t, m.SeekTo(570))

	cmds := f.commands()
	require.Len(t, cmds, 1)
	assert.Equal(t, "seek", cmds[0][0])
	assert.Equal(t, float64(570), cmds[0][1])
	assert.Equal(t, "absolute", cmds[0][2])
}

func TestMPVUnknownPropertyError(t *testing.T) {
	_, sock := startFakeMPV(t)
	m := NewMPV(sock)

	_, err := m.command("get_property", "no-such-property")
	assert.Error(t, err)
}

func TestMPVUnreachableSocket(t *testing.T) {
	m := NewMPV(filepath.Join(t.TempDir(), "absent.sock"))
	_, err := m.Position()
	assert.Error(t, err)
}
