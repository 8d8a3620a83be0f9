// SPDX-License-Identifier: MIT

package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/go-chi/httprate"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/reelmate/reelmate/internal/log"
)

// HeaderRequestID is the header carrying the request correlation ID.
const HeaderRequestID = "X-Request-Id"

// Recoverer ensures that panics inside any downstream handler do not crash
// the process. It logs the panic with context and returns a 500 JSON body.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				buf := make([]byte, 8192)
				n := runtime.Stack(buf, false)

				reqID := log.RequestIDFromContext(r.Context())
				logger := log.WithComponent("api")
				logger.Error().
					Str(log.FieldEvent, "panic.recovered").
					Str("method", r.Method).
					Str(log.FieldPath, r.URL.Path).
					Str(log.FieldRequestID, reqID).
					Interface("panic_value", rec).
					Str("stack_trace", string(buf[:n])).
					Msg("panic recovered in HTTP handler")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"error":      "internal server error",
					"request_id": reqID,
				})
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// RequestID adds a unique ID to every request.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.New().String()
		}
		w.Header().Set(HeaderRequestID, reqID)
		ctx := log.ContextWithRequestID(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Logging emits one structured access log line per request.
func Logging(next http.Handler) http.Handler {
	logger := log.WithComponent("api")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(sw, r)

		logger.Info().
			Str(log.FieldEvent, "http.request").
			Str("method", r.Method).
			Str(log.FieldPath, r.URL.Path).
			Int("status", sw.statusCode).
			Dur("duration", time.Since(start)).
			Str(log.FieldRequestID, log.RequestIDFromContext(r.Context())).
			Msg("request completed")
	})
}

// Tracing wraps the handler with OpenTelemetry HTTP instrumentation.
// Health and metrics probes are excluded to keep the trace signal useful.
func Tracing(serviceName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(
			next,
			serviceName,
			otelhttp.WithTracerProvider(otel.GetTracerProvider()),
			otelhttp.WithFilter(shouldTrace),
			otelhttp.WithSpanNameFormatter(spanNameFormatter),
		)
	}
}

func shouldTrace(r *http.Request) bool {
	switch r.URL.Path {
	case "/healthz", "/readyz", "/metrics":
		return false
	}
	return true
}

func spanNameFormatter(operation string, r *http.Request) string {
	return operation + " " + r.URL.Path
}

// SpanFromRequest returns the current span from the request context.
// Returns a noop span if tracing is disabled.
func SpanFromRequest(r *http.Request) trace.Span {
	return trace.SpanFromContext(r.Context())
}

// RateLimit returns an IP-keyed sliding window rate limiter.
func RateLimit(requestLimit int) func(http.Handler) http.Handler {
	window := time.Minute
	return httprate.Limit(
		requestLimit,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"rate_limit_exceeded"}`))
		}),
	)
}

// statusWriter wraps http.ResponseWriter to capture the status code.
type statusWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (sw *statusWriter) WriteHeader(statusCode int) {
	if !sw.written {
		sw.statusCode = statusCode
		sw.written = true
	}
	sw.ResponseWriter.WriteHeader(statusCode)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	if !sw.written {
		sw.WriteHeader(http.StatusOK)
	}
	return sw.ResponseWriter.Write(b)
}
