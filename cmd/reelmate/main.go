// SPDX-License-Identifier: MIT

// reelmate is a headless film companion daemon. It keeps a shared playback
// clock in sync with a local mpv instance, maintains the companion chat
// channel, loads the movie catalog with its fallbacks, and exposes the whole
// core over a local HTTP control API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/reelmate/reelmate/internal/api"
	"github.com/reelmate/reelmate/internal/catalog"
	"github.com/reelmate/reelmate/internal/chat"
	"github.com/reelmate/reelmate/internal/config"
	"github.com/reelmate/reelmate/internal/identity"
	rmlog "github.com/reelmate/reelmate/internal/log"
	"github.com/reelmate/reelmate/internal/media"
	"github.com/reelmate/reelmate/internal/playback"
	"github.com/reelmate/reelmate/internal/telemetry"
)

var (
	version   = "v0.1.0"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "config" {
		os.Exit(runConfigCLI(os.Args[2:]))
	}

	showVersion := flag.Bool("version", false, "print version and exit")
	configPath := flag.String("config", "", "path to config file (YAML)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s (commit: %s, built: %s)\n", version, commit, buildDate)
		os.Exit(0)
	}

	// Safe defaults until the real config is loaded
	rmlog.Configure(rmlog.Config{
		Level:   "info",
		Service: "reelmate",
		Version: version,
	})

	logger := rmlog.WithComponent("daemon")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewLoader(*configPath).Load()
	if err != nil {
		logger.Fatal().
			Err(err).
			Str(rmlog.FieldEvent, "config.load_failed").
			Str("config_path", *configPath).
			Msg("failed to load configuration")
	}

	rmlog.Configure(rmlog.Config{
		Level:   cfg.LogLevel,
		Service: "reelmate",
		Version: version,
	})

	logger.Info().
		Str(rmlog.FieldEvent, "startup").
		Str("version", version).
		Str("commit", commit).
		Str("addr", cfg.Listen).
		Msg("starting reelmate")
	logger.Info().Msgf("→ Movie backend: %s", cfg.MovieURL)
	logger.Info().Msgf("→ Chat: %s", cfg.ChatURL)
	logger.Info().Msgf("→ mpv socket: %s", cfg.MPVSocket)
	logger.Info().Msgf("→ Data dir: %s", cfg.DataDir)

	tp, err := telemetry.NewProvider(ctx, telemetry.Config{
		Enabled:        cfg.Telemetry.Enabled,
		ServiceName:    "reelmate",
		ServiceVersion: version,
		ExporterType:   cfg.Telemetry.Exporter,
		Endpoint:       cfg.Telemetry.Endpoint,
		SamplingRate:   cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		logger.Fatal().
			Err(err).
			Str(rmlog.FieldEvent, "telemetry.init_failed").
			Msg("failed to initialize telemetry")
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			logger.Warn().Err(err).Msg("telemetry shutdown failed")
		}
	}()

	store, err := identity.Open(cfg.DataDir)
	if err != nil {
		logger.Fatal().
			Err(err).
			Str(rmlog.FieldEvent, "identity.open_failed").
			Str(rmlog.FieldPath, cfg.DataDir).
			Msg("failed to open identity store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn().Err(err).Msg("identity store close failed")
		}
	}()

	loader := catalog.NewLoader(cfg.MovieURL,
		catalog.WithMovieTimeout(cfg.MovieTimeout),
		catalog.WithDatasetTimeout(cfg.DatasetTimeout),
	)
	if err := loader.Load(ctx); err != nil {
		// Not fatal: the API exposes retry and fallback so the user decides.
		logger.Warn().
			Err(err).
			Str(rmlog.FieldEvent, "catalog.load_failed").
			Str(rmlog.FieldURL, cfg.MovieURL).
			Msg("movie metadata unavailable, awaiting fallback decision")
	} else {
		loader.LoadDatasets(ctx)
	}

	clock := playback.NewClock(
		playback.WithPauseDelay(cfg.PauseDebounce),
		playback.WithLogger(rmlog.WithComponent("playback")),
	)

	player := media.NewMPV(cfg.MPVSocket)
	adapter := playback.Bind(clock, player)
	if m, ok := loader.Movie(); ok {
		if err := player.LoadFile(m.Film.FileURL); err != nil {
			logger.Warn().
				Err(err).
				Str(rmlog.FieldEvent, "media.load_failed").
				Str(rmlog.FieldURL, m.Film.FileURL).
				Msg("could not hand the film to mpv, playback control degraded")
		}
	}

	channel := chat.NewChannel(cfg.ChatURL,
		chat.WithRetryDelay(cfg.ChatRetryDelay),
		chat.WithSendDebounce(cfg.SendDebounce),
	)
	channel.Start()
	defer channel.Close()

	server := api.New(api.Deps{
		Clock:          clock,
		Loader:         loader,
		Chat:           channel,
		Identity:       store,
		Control:        adapter,
		TracingService: tracingService(cfg),
		RateLimitRPM:   cfg.RateLimitRPM,
	})
	srv := server.HTTPServer(cfg.Listen)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		adapter.Run(gctx, cfg.PollInterval)
		return nil
	})
	g.Go(func() error {
		return server.Serve(gctx, srv)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal().
			Err(err).
			Str(rmlog.FieldEvent, "daemon.failed").
			Msg("daemon failed")
	}

	logger.Info().Msg("server exiting")
}

func tracingService(cfg config.Config) string {
	if cfg.Telemetry.Enabled {
		return "reelmate"
	}
	return ""
}
