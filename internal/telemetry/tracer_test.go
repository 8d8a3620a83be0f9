// SPDX-License-Identifier: MIT

package telemetry

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

func TestNewProviderDisabled(t *testing.T) {
	cfg := Config{
		Enabled:      false,
		ServiceName:  "reelmate-test",
		ExporterType: "grpc",
	}

	provider, err := NewProvider(context.Background(), cfg)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if provider.tp != nil {
		t.Error("expected noop provider (tp == nil)")
	}

	tracer := otel.Tracer("test")
	_, span := tracer.Start(context.Background(), "noop-check")
	if span.IsRecording() {
		t.Error("expected noop tracer span to be non-recording")
	}
	span.End()
}

func TestNewProviderNoopExporter(t *testing.T) {
	cfg := Config{
		Enabled:      true,
		ServiceName:  "reelmate-test",
		ExporterType: "noop",
	}

	provider, err := NewProvider(context.Background(), cfg)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if provider.tp != nil {
		t.Error("noop exporter must not build a real provider")
	}
}

func TestNewProviderInvalidExporter(t *testing.T) {
	cfg := Config{
		Enabled:      true,
		ServiceName:  "reelmate-test",
		ExporterType: "invalid",
	}

	_, err := NewProvider(context.Background(), cfg)
	if err == nil {
		t.Fatal("expected error for invalid exporter type")
	}
}

func TestProviderShutdown(t *testing.T) {
	provider := &Provider{tp: nil}
	if err := provider.Shutdown(context.Background()); err != nil {
		t.Errorf("expected no error on noop shutdown, got: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := provider.Shutdown(ctx); err != nil {
		t.Errorf("expected no error on noop shutdown with canceled context, got: %v", err)
	}
}

func TestTracer(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Enabled: false, ServiceName: "reelmate-test"})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}

	tracer := Tracer("test-tracer")
	if tracer == nil {
		t.Fatal("expected non-nil tracer")
	}

	ctx, span := tracer.Start(context.Background(), "test-span")
	if span == nil {
		t.Fatal("expected non-nil span")
	}
	span.End()

	if trace.SpanFromContext(ctx) == nil {
		t.Error("expected span in context")
	}
}

func TestProviderConcurrentShutdown(t *testing.T) {
	provider := &Provider{tp: nil}

	done := make(chan struct{}, 5)
	for i := 0; i < 5; i++ {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()
			_ = provider.Shutdown(ctx)
			done <- struct{}{}
		}()
	}

	for i := 0; i < 5; i++ {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("timeout waiting for concurrent shutdown")
		}
	}
}
