// SPDX-License-Identifier: MIT

package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const movieDoc = `{
	"film": {
		"file_url": "https://example.org/film.webm",
		"title": "Night of the Living Dead",
		"synopsis_url": "https://en.wikipedia.org/wiki/Night_of_the_Living_Dead"
	},
	"subtitles": {"en": "https://example.org/en.srt", "fr": "https://example.org/fr.srt", "es": "https://example.org/es.srt"},
	"audio-description": "https://example.org/description.json",
	"chapters": "https://example.org/chapters.json",
	"poi": "https://example.org/poi.json"
}`

func TestLoadParsesExactWireShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(movieDoc))
	}))
	defer srv.Close()

	l := NewLoader(srv.URL)
	require.NoError(t, l.Load(context.Background()))

	m, ok := l.Movie()
	require.True(t, ok)
	want := Movie{
		Film: Film{
			FileURL:     "https://example.org/film.webm",
			Title:       "Night of the Living Dead",
			SynopsisURL: "https://en.wikipedia.org/wiki/Night_of_the_Living_Dead",
		},
		Subtitles:        Subtitles{EN: "https://example.org/en.srt", FR: "https://example.org/fr.srt", ES: "https://example.org/es.srt"},
		AudioDescription: "https://example.org/description.json",
		Chapters:         "https://example.org/chapters.json",
		POI:              "https://example.org/poi.json",
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Fatalf("movie mismatch (-want +got):\n%s", diff)
	}

	st := l.CurrentStatus()
	assert.True(t, st.Loaded)
	assert.False(t, st.UsingFallback)
	assert.False(t, st.AwaitingDecision)
}

func TestLoadFailureAwaitsUserDecision(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	l := NewLoader(srv.URL)
	require.Error(t, l.Load(context.Background()))

	st := l.CurrentStatus()
	assert.False(t, st.Loaded, "previous state stays untouched, no silent fallback")
	assert.False(t, st.UsingFallback)
	assert.True(t, st.AwaitingDecision)

	_, ok := l.Movie()
	assert.False(t, ok)
}

func TestLoadTimeoutResolvesWithinBudget(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	l := NewLoader(srv.URL, WithMovieTimeout(50*time.Millisecond))

	start := time.Now()
	err := l.Load(context.Background())
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.Less(t, elapsed, 500*time.Millisecond, "must resolve shortly after the timeout")
	assert.True(t, l.CurrentStatus().AwaitingDecision)
}

func TestUseFallbackCommitsBuiltinDataset(t *testing.T) {
	l := NewLoader("http://127.0.0.1:1/unreachable", WithMovieTimeout(20*time.Millisecond))
	_ = l.Load(context.Background())
	require.True(t, l.CurrentStatus().AwaitingDecision)

	l.UseFallback()

	st := l.CurrentStatus()
	assert.True(t, st.Loaded)
	assert.True(t, st.UsingFallback)
	assert.False(t, st.AwaitingDecision)

	m, ok := l.Movie()
	require.True(t, ok)
	assert.Equal(t, "Night of the Living Dead", m.Film.Title)
}

func TestRetryRecoversAfterBackendReturns(t *testing.T) {
	healthy := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(movieDoc))
	}))
	defer srv.Close()

	l := NewLoader(srv.URL)
	require.Error(t, l.Load(context.Background()))
	require.True(t, l.CurrentStatus().AwaitingDecision)

	// retry is idempotent while the backend stays down
	require.Error(t, l.Retry(context.Background()))
	require.True(t, l.CurrentStatus().AwaitingDecision)

	healthy = true
	require.NoError(t, l.Retry(context.Background()))
	st := l.CurrentStatus()
	assert.True(t, st.Loaded)
	assert.False(t, st.AwaitingDecision)
	assert.False(t, st.UsingFallback)
}

func datasetServer(t *testing.T, chaptersBody string, chaptersStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/chapters.json", func(w http.ResponseWriter, r *http.Request) {
		if chaptersStatus != http.StatusOK {
			w.WriteHeader(chaptersStatus)
			return
		}
		_, _ = w.Write([]byte(chaptersBody))
	})
	mux.HandleFunc("/description.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"scene":1,"timestamp":"00:00:00","description":"d","description_fr":"","description_es":""}]`))
	})
	mux.HandleFunc("/poi.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"title":"t","title_fr":"","title_es":"","latitude":1.5,"longitude":2.5,"description":"d","timestamps":[{"time":"00:05:20","scene":"s","scene_fr":"","scene_es":""}]}]`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func commitMovie(l *Loader, srvURL string) {
	l.mu.Lock()
	l.movie = &Movie{
		Chapters:         srvURL + "/chapters.json",
		AudioDescription: srvURL + "/description.json",
		POI:              srvURL + "/poi.json",
	}
	l.mu.Unlock()
}

func TestLoadDatasets(t *testing.T) {
	srv := datasetServer(t, `[{"chapter":1,"timestamp":"00:00:00","title":"c","title_fr":"","title_es":"","description":"d","description_fr":"","description_es":""}]`, http.StatusOK)

	l := NewLoader("unused")
	commitMovie(l, srv.URL)
	l.LoadDatasets(context.Background())

	chapters, fb := l.Chapters()
	require.Len(t, chapters, 1)
	assert.False(t, fb)
	assert.Equal(t, "c", chapters[0].Title)

	scenes, fb := l.Scenes()
	require.Len(t, scenes, 1)
	assert.False(t, fb)

	poi, fb := l.POIs()
	require.Len(t, poi, 1)
	assert.False(t, fb)
	require.Len(t, poi[0].Timestamps, 1)
	assert.Equal(t, "00:05:20", poi[0].Timestamps[0].Time)
}

func TestLoadDatasetsFallsBackIndependently(t *testing.T) {
	srv := datasetServer(t, "", http.StatusInternalServerError)

	l := NewLoader("unused")
	commitMovie(l, srv.URL)
	l.LoadDatasets(context.Background())

	chapters, fb := l.Chapters()
	assert.True(t, fb, "broken chapters endpoint falls back")
	assert.Len(t, chapters, 8)
	assert.Equal(t, "The Cemetery", chapters[0].Title)

	scenes, fb := l.Scenes()
	assert.False(t, fb, "healthy datasets stay live")
	assert.Len(t, scenes, 1)
}

func TestLoadDatasetsEmptyURLIsEmptyState(t *testing.T) {
	l := NewLoader("unused")
	l.mu.Lock()
	l.movie = &Movie{}
	l.mu.Unlock()

	l.LoadDatasets(context.Background())

	chapters, fb := l.Chapters()
	assert.Empty(t, chapters, "missing url is an empty state, not a fallback")
	assert.False(t, fb)
}

func TestFallbackDatasetsAreCopies(t *testing.T) {
	a := FallbackChapters()
	a[0].Title = "mutated"
	assert.Equal(t, "The Cemetery", FallbackChapters()[0].Title)
}
