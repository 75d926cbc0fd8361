package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"

	"pet-health-dashboard/internal/platform/logger"
)

func TestRequestLogger_LevelByStatus(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Warn, Format: logger.FormatText, Output: &buf})

	status := http.StatusOK
	h := chimw.RequestID(RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/animals", nil))
	if buf.Len() != 0 {
		t.Fatalf("2xx should log at debug, got %q", buf.String())
	}

	status = http.StatusNotFound
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/animals/cat-99", nil))
	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "status=404") || !strings.Contains(out, "path=/animals/cat-99") {
		t.Fatalf("unexpected log line %q", out)
	}
	if !strings.Contains(out, "request_id=") {
		t.Fatalf("missing request id in %q", out)
	}
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/overview", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	CORS(nil)(next).ServeHTTP(rec, req)
	if rec.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("no origins configured: expected no CORS headers")
	}

	rec = httptest.NewRecorder()
	CORS([]string{"http://localhost:3000"})(next).ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("expected allowed origin, got %q", got)
	}
}
