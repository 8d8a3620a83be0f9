// SPDX-License-Identifier: MIT

package catalog

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/reelmate/reelmate/internal/log"
)

const (
	defaultMovieTimeout   = 5 * time.Second
	defaultDatasetTimeout = 3 * time.Second
)

// Status reports the loader flags a front-end needs to render the fallback
// decision modal and the degraded-data badge.
type Status struct {
	Loaded           bool `json:"loaded"`
	UsingFallback    bool `json:"using_fallback"`
	AwaitingDecision bool `json:"awaiting_decision"`
}

// Loader owns the catalog state: the top-level movie document, the dependent
// datasets, and the fallback/decision flags. Failures never propagate as hard
// errors beyond this package; they surface as flags, except that Load also
// returns the error for logging.
type Loader struct {
	movieURL       string
	http           *http.Client
	movieTimeout   time.Duration
	datasetTimeout time.Duration
	logger         zerolog.Logger

	mu               sync.Mutex
	movie            *Movie
	usingFallback    bool
	awaitingDecision bool

	chapters         []Chapter
	chaptersFallback bool
	scenes           []Scene
	scenesFallback   bool
	poi              []POI
	poiFallback      bool
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithHTTPClient overrides the HTTP client (tests, proxies).
func WithHTTPClient(c *http.Client) LoaderOption {
	return func(l *Loader) { l.http = c }
}

// WithMovieTimeout overrides the top-level metadata timeout.
func WithMovieTimeout(d time.Duration) LoaderOption {
	return func(l *Loader) {
		if d > 0 {
			l.movieTimeout = d
		}
	}
}

// WithDatasetTimeout overrides the chapters/scenes timeout.
func WithDatasetTimeout(d time.Duration) LoaderOption {
	return func(l *Loader) {
		if d > 0 {
			l.datasetTimeout = d
		}
	}
}

// WithLoaderLogger overrides the component logger.
func WithLoaderLogger(lg zerolog.Logger) LoaderOption {
	return func(l *Loader) { l.logger = lg }
}

// NewLoader returns a loader for the given movie metadata URL.
func NewLoader(movieURL string, opts ...LoaderOption) *Loader {
	l := &Loader{
		movieURL:       movieURL,
		http:           &http.Client{},
		movieTimeout:   defaultMovieTimeout,
		datasetTimeout: defaultDatasetTimeout,
		logger:         log.WithComponent("catalog"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches the top-level movie metadata with the 5s policy. On failure it
// does not fall back silently: it raises the awaiting-decision flag, leaves
// all previous state untouched, and defers to the user.
func (l *Loader) Load(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, l.movieTimeout)
	defer cancel()

	var m Movie
	if err := fetchJSON(ctx, l.http, l.movieURL, &m); err != nil {
		l.mu.Lock()
		l.awaitingDecision = true
		l.mu.Unlock()
		recordLoad("movie", false)
		l.logger.Warn().Err(err).
			Str(log.FieldEvent, "catalog.movie_unreachable").
			Str(log.FieldURL, l.movieURL).
			Msg("film backend unreachable, awaiting user decision")
		return err
	}

	l.mu.Lock()
	l.movie = &m
	l.usingFallback = false
	l.awaitingDecision = false
	l.mu.Unlock()
	recordLoad("movie", true)
	l.logger.Info().
		Str(log.FieldEvent, "catalog.movie_loaded").
		Str("title", m.Film.Title).
		Msg("movie metadata loaded")
	return nil
}

// UseFallback commits the built-in movie dataset, resolving a pending user
// decision. The catalog is replaced wholesale.
func (l *Loader) UseFallback() {
	l.mu.Lock()
	l.movie = FallbackMovie()
	l.usingFallback = true
	l.awaitingDecision = false
	l.mu.Unlock()
	recordFallback("movie")
	l.logger.Info().
		Str(log.FieldEvent, "catalog.fallback_committed").
		Bool(log.FieldFallback, true).
		Msg("using built-in movie dataset")
}

// Retry clears the decision flag and re-runs the fetch policy from scratch.
// Calling it repeatedly is always safe.
func (l *Loader) Retry(ctx context.Context) error {
	l.mu.Lock()
	l.awaitingDecision = false
	l.mu.Unlock()
	return l.Load(ctx)
}

// Movie returns a copy of the current movie document, or false before one is
// committed.
func (l *Loader) Movie() (Movie, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.movie == nil {
		return Movie{}, false
	}
	return *l.movie, true
}

// CurrentStatus returns the loader flags.
func (l *Loader) CurrentStatus() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Status{
		Loaded:           l.movie != nil,
		UsingFallback:    l.usingFallback,
		AwaitingDecision: l.awaitingDecision,
	}
}

// LoadDatasets fetches chapters, audio-description scenes and POI for the
// committed movie document. Each dataset fails independently into its own
// fallback; a missing URL is an empty state for that widget alone.
func (l *Loader) LoadDatasets(ctx context.Context) {
	l.mu.Lock()
	m := l.movie
	l.mu.Unlock()
	if m == nil {
		return
	}

	chapters, chFallback := loadDataset(ctx, l, "chapters", m.Chapters, l.datasetTimeout, FallbackChapters)
	scenes, scFallback := loadDataset(ctx, l, "scenes", m.AudioDescription, l.datasetTimeout, FallbackScenes)
	// POI uses no explicit timeout, only the caller's context.
	poi, poiFallback := loadDataset(ctx, l, "poi", m.POI, 0, FallbackPOI)

	l.mu.Lock()
	l.chapters, l.chaptersFallback = chapters, chFallback
	l.scenes, l.scenesFallback = scenes, scFallback
	l.poi, l.poiFallback = poi, poiFallback
	l.mu.Unlock()
}

// loadDataset applies the shared catch-and-fallback branch for one dataset.
func loadDataset[T any](ctx context.Context, l *Loader, name, url string, timeout time.Duration, fallback func() []T) ([]T, bool) {
	if url == "" {
		l.logger.Debug().
			Str(log.FieldDataset, name).
			Msg("no dataset url configured, treating as empty")
		return nil, false
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var items []T
	if err := fetchJSON(ctx, l.http, url, &items); err != nil {
		recordLoad(name, false)
		recordFallback(name)
		l.logger.Warn().Err(err).
			Str(log.FieldEvent, "catalog.dataset_fallback").
			Str(log.FieldDataset, name).
			Str(log.FieldURL, url).
			Msg("dataset unreachable, using built-in fallback")
		return fallback(), true
	}
	recordLoad(name, true)
	return items, false
}

// Chapters returns the chapter dataset and whether it is the fallback copy.
func (l *Loader) Chapters() ([]Chapter, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Chapter(nil), l.chapters...), l.chaptersFallback
}

// Scenes returns the audio-description dataset and its fallback flag.
func (l *Loader) Scenes() ([]Scene, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Scene(nil), l.scenes...), l.scenesFallback
}

// POIs returns the points-of-interest dataset and its fallback flag.
func (l *Loader) POIs() ([]POI, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]POI(nil), l.poi...), l.poiFallback
}
