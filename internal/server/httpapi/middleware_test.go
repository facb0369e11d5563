package httpapi

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"wodtracker/internal/logging"
)

type recordedRequest struct {
	method, route, status string
}

type fakeCollector struct {
	requests []recordedRequest
}

func (f *fakeCollector) RecordRequest(method, route, status string) {
	f.requests = append(f.requests, recordedRequest{method, route, status})
}

func (f *fakeCollector) RecordDuration(time.Duration) {}

func TestLoggingMiddleware_RecordsRoutePattern(t *testing.T) {
	collector := &fakeCollector{}

	r := chi.NewRouter()
	r.Use(NewLoggingMiddleware(logging.NewJSON(io.Discard), collector))
	r.Get("/workouts/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, id := range []string{"c1e6b7a8", "9f3d2c10"} {
		req := httptest.NewRequest(http.MethodGet, "/workouts/"+id, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	require.Len(t, collector.requests, 2)
	for _, got := range collector.requests {
		require.Equal(t, "/workouts/{id}", got.route,
			"distinct ids must not mint distinct metric labels")
		require.Equal(t, http.MethodGet, got.method)
		require.Equal(t, "200", got.status)
	}
}

func TestLoggingMiddleware_UnroutedPathFallsBack(t *testing.T) {
	collector := &fakeCollector{}

	handler := NewLoggingMiddleware(logging.NewJSON(io.Discard), collector)(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Len(t, collector.requests, 1)
	require.Equal(t, "/nowhere", collector.requests[0].route)
	require.Equal(t, "404", collector.requests[0].status)
}
