// SPDX-License-Identifier: MIT

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/reelmate/reelmate/internal/chat"
	"github.com/reelmate/reelmate/internal/i18n"
	"github.com/reelmate/reelmate/internal/log"
	"github.com/reelmate/reelmate/internal/playback"
	"github.com/reelmate/reelmate/internal/timecode"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type statusResponse struct {
	Playback playback.Snapshot `json:"playback"`
	Chat     chatStatus        `json:"chat"`
	Movie    movieStatus       `json:"movie"`
}

type chatStatus struct {
	State    chat.State `json:"state"`
	Messages int        `json:"messages"`
}

type movieStatus struct {
	Loaded           bool `json:"loaded"`
	UsingFallback    bool `json:"using_fallback"`
	AwaitingDecision bool `json:"awaiting_decision"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	st := s.deps.Loader.CurrentStatus()
	writeJSON(w, http.StatusOK, statusResponse{
		Playback: s.deps.Clock.Snapshot(),
		Chat: chatStatus{
			State:    s.deps.Chat.CurrentState(),
			Messages: len(s.deps.Chat.Messages()),
		},
		Movie: movieStatus{
			Loaded:           st.Loaded,
			UsingFallback:    st.UsingFallback,
			AwaitingDecision: st.AwaitingDecision,
		},
	})
}

type seekRequest struct {
	Seconds int `json:"seconds"`
}

func (s *Server) handleSeek(w http.ResponseWriter, r *http.Request) {
	var req seekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.New("invalid seek request body"))
		return
	}
	s.deps.Clock.Seek(req.Seconds)
	writeJSON(w, http.StatusOK, s.deps.Clock.Snapshot())
}

type stateRequest struct {
	Playing *bool `json:"playing,omitempty"`
	Muted   *bool `json:"muted,omitempty"`
}

func (s *Server) handlePlaybackState(w http.ResponseWriter, r *http.Request) {
	var req stateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.New("invalid state request body"))
		return
	}
	if req.Playing == nil && req.Muted == nil {
		writeError(w, errors.New("at least one of playing or muted is required"))
		return
	}
	if req.Playing != nil {
		s.setPlaying(*req.Playing)
	}
	if req.Muted != nil {
		s.setMuted(*req.Muted)
	}
	writeJSON(w, http.StatusOK, s.deps.Clock.Snapshot())
}

// setPlaying commits the intent to the clock and, when a media element is
// bound, drives its pause control. An element failure leaves the clock
// committed; the poller reconciles once the element recovers.
func (s *Server) setPlaying(playing bool) {
	if s.deps.Control == nil {
		s.deps.Clock.SetPlaying(playing)
		return
	}
	if err := s.deps.Control.SetPlaying(playing); err != nil {
		s.logger.Warn().Err(err).
			Str(log.FieldEvent, "media.control_failed").
			Bool(log.FieldPlaying, playing).
			Msg("media element rejected pause control")
	}
}

func (s *Server) setMuted(muted bool) {
	if s.deps.Control == nil {
		s.deps.Clock.SetMuted(muted)
		return
	}
	if err := s.deps.Control.SetMuted(muted); err != nil {
		s.logger.Warn().Err(err).
			Str(log.FieldEvent, "media.control_failed").
			Bool(log.FieldMuted, muted).
			Msg("media element rejected mute control")
	}
}

func (s *Server) handleMovie(w http.ResponseWriter, r *http.Request) {
	st := s.deps.Loader.CurrentStatus()
	resp := map[string]any{
		"status": movieStatus{
			Loaded:           st.Loaded,
			UsingFallback:    st.UsingFallback,
			AwaitingDecision: st.AwaitingDecision,
		},
	}
	if m, ok := s.deps.Loader.Movie(); ok {
		resp["movie"] = m
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMovieFallback(w http.ResponseWriter, r *http.Request) {
	s.deps.Loader.UseFallback()
	s.deps.Loader.LoadDatasets(r.Context())
	s.handleMovie(w, r)
}

func (s *Server) handleMovieRetry(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Loader.Retry(r.Context()); err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"error": err.Error(),
			"status": movieStatus{
				AwaitingDecision: s.deps.Loader.CurrentStatus().AwaitingDecision,
			},
		})
		return
	}
	s.deps.Loader.LoadDatasets(r.Context())
	s.handleMovie(w, r)
}

// langFromRequest resolves the response language from the lang query
// parameter, falling back to the Accept-Language header.
func langFromRequest(r *http.Request) i18n.Lang {
	if q := r.URL.Query().Get("lang"); q != "" {
		return i18n.Match(q)
	}
	if h := r.Header.Get("Accept-Language"); h != "" {
		return i18n.Match(h)
	}
	return i18n.DefaultLang
}

// seconds parses a dataset timestamp, treating malformed values as zero so
// one bad row cannot take down a whole listing.
func (s *Server) seconds(ts string) int {
	secs, err := timecode.ToSeconds(ts)
	if err != nil {
		s.logger.Warn().Str(log.FieldEvent, "timecode.invalid").Str("timestamp", ts).Msg("malformed dataset timestamp")
		return 0
	}
	return secs
}

type chapterEntry struct {
	Chapter     int    `json:"chapter"`
	Timestamp   string `json:"timestamp"`
	Seconds     int    `json:"seconds"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

func (s *Server) handleChapters(w http.ResponseWriter, r *http.Request) {
	lang := langFromRequest(r)
	chapters, fallback := s.deps.Loader.Chapters()

	starts := make([]int, len(chapters))
	entries := make([]chapterEntry, len(chapters))
	for i, c := range chapters {
		starts[i] = s.seconds(c.Timestamp)
		entries[i] = chapterEntry{
			Chapter:     c.Chapter,
			Timestamp:   c.Timestamp,
			Seconds:     starts[i],
			Title:       c.LocalTitle(lang),
			Description: c.LocalDescription(lang),
		}
	}
	if idx := playback.ActiveIndex(starts, s.deps.Clock.CurrentTime()); idx >= 0 {
		entries[idx].Active = true
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"chapters": entries,
		"fallback": fallback,
	})
}

type sceneEntry struct {
	Scene       int    `json:"scene"`
	Timestamp   string `json:"timestamp"`
	Seconds     int    `json:"seconds"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	lang := langFromRequest(r)
	scenes, fallback := s.deps.Loader.Scenes()

	starts := make([]int, len(scenes))
	entries := make([]sceneEntry, len(scenes))
	for i, sc := range scenes {
		starts[i] = s.seconds(sc.Timestamp)
		entries[i] = sceneEntry{
			Scene:       sc.Scene,
			Timestamp:   sc.Timestamp,
			Seconds:     starts[i],
			Description: sc.LocalDescription(lang),
		}
	}
	if idx := playback.ActiveIndex(starts, s.deps.Clock.CurrentTime()); idx >= 0 {
		entries[idx].Active = true
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"scenes":   entries,
		"fallback": fallback,
	})
}

type poiMoment struct {
	Time    string `json:"time"`
	Seconds int    `json:"seconds"`
	Scene   string `json:"scene"`
}

type poiEntry struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	Description string      `json:"description"`
	Moments     []poiMoment `json:"moments"`
}

func (s *Server) handlePOI(w http.ResponseWriter, r *http.Request) {
	lang := langFromRequest(r)
	pois, fallback := s.deps.Loader.POIs()

	entries := make([]poiEntry, len(pois))
	for i, p := range pois {
		moments := make([]poiMoment, len(p.Timestamps))
		for j, ts := range p.Timestamps {
			moments[j] = poiMoment{
				Time:    ts.Time,
				Seconds: s.seconds(ts.Time),
				Scene:   ts.LocalScene(lang),
			}
		}
		entries[i] = poiEntry{
			ID:          p.ID,
			Title:       p.LocalTitle(lang),
			Latitude:    p.Latitude,
			Longitude:   p.Longitude,
			Description: p.Description,
			Moments:     moments,
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"poi":      entries,
		"fallback": fallback,
	})
}

func (s *Server) handleMessages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"state":    s.deps.Chat.CurrentState(),
		"messages": s.deps.Chat.Messages(),
	})
}

type sendRequest struct {
	Message       string `json:"message"`
	Moment        *int   `json:"moment,omitempty"`
	AtCurrentTime bool   `json:"at_current_time,omitempty"`
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.New("invalid message body"))
		return
	}
	if req.Message == "" {
		writeError(w, errors.New("message must not be empty"))
		return
	}

	moment := req.Moment
	if moment == nil && req.AtCurrentTime {
		now := s.deps.Clock.CurrentTime()
		moment = &now
	}

	id, err := s.deps.Identity.Get()
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.deps.Chat.Send(id.Name, req.Message, moment); err != nil {
		if errors.Is(err, chat.ErrNotConnected) {
			writeServiceUnavailable(w, err)
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "queued"})
}

func (s *Server) handleGetIdentity(w http.ResponseWriter, r *http.Request) {
	id, err := s.deps.Identity.Get()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, id)
}

type identityRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

func (s *Server) handlePutIdentity(w http.ResponseWriter, r *http.Request) {
	var req identityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.New("invalid identity body"))
		return
	}
	id, err := s.deps.Identity.Set(req.Name, req.Avatar)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, id)
}
