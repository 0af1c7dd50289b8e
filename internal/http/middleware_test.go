package http

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRequestLogger(t *testing.T) {
	t.Parallel()

	t.Run("attaches a request scoped logger to the context", func(t *testing.T) {
		t.Parallel()

		var sawLogger bool
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sawLogger = LoggerFromContext(r.Context()) != nil
			w.WriteHeader(http.StatusOK)
		})

		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))
		handler := RequestLogger(logger)(next)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms", nil))

		if !sawLogger {
			t.Fatal("expected a logger in the request context")
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("logs request start and completion with identifiers", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))
		handler := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/bookings/booking-1", nil))

		output := buf.String()
		if !strings.Contains(output, "request started") {
			t.Fatalf("expected start log line, got %q", output)
		}
		if !strings.Contains(output, "request completed") {
			t.Fatalf("expected completion log line, got %q", output)
		}
		if !strings.Contains(output, `"request_id":1`) {
			t.Fatalf("expected request id attribute, got %q", output)
		}
		if !strings.Contains(output, `"path":"/bookings/booking-1"`) {
			t.Fatalf("expected path attribute, got %q", output)
		}
	})
}
