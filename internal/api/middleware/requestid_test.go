package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestRequestID(t *testing.T) {
	t.Run("assigns a UUID when none is provided", func(t *testing.T) {
		var capturedID string
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			capturedID = GetRequestID(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/goal", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if capturedID == "" {
			t.Fatal("Expected a request ID in the context")
		}
		if _, err := uuid.Parse(capturedID); err != nil {
			t.Errorf("Expected a valid UUID, got %q", capturedID)
		}
		if header := w.Header().Get("X-Request-Id"); header != capturedID {
			t.Errorf("Expected header %q to match context ID %q", header, capturedID)
		}
	})

	t.Run("honors an incoming trace ID", func(t *testing.T) {
		var capturedID string
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			capturedID = GetRequestID(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/goal", nil)
		req.Header.Set("X-Request-Id", "upstream-trace-42")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if capturedID != "upstream-trace-42" {
			t.Errorf("Expected upstream ID to carry through, got %q", capturedID)
		}
		if header := w.Header().Get("X-Request-Id"); header != "upstream-trace-42" {
			t.Errorf("Expected header to echo upstream ID, got %q", header)
		}
	})
}

func TestGetRequestID_Absent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if id := GetRequestID(req.Context()); id != "" {
		t.Errorf("Expected empty ID for bare context, got %q", id)
	}
}
