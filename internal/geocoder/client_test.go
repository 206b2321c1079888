package geocoder_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flare/internal/domain"
	"flare/internal/geocoder"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestResolve_OK(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "7.447725", q.Get("lat"))
		assert.Equal(t, "125.804150", q.Get("lon"))
		assert.Equal(t, "jsonv2", q.Get("format"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"display_name":"Magugpo Poblacion, Tagum City, Davao del Norte"}`))
	}))
	defer srv.Close()

	c := geocoder.NewClient(srv.URL, 2*time.Second, testLogger())

	got, err := c.Resolve(context.Background(), domain.Coordinate{Lat: 7.447725, Lng: 125.804150})
	require.NoError(t, err)
	assert.Equal(t, "Magugpo Poblacion, Tagum City, Davao del Norte", got)
}

func TestResolve_NoAddress(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"Unable to geocode"}`))
	}))
	defer srv.Close()

	c := geocoder.NewClient(srv.URL, 2*time.Second, testLogger())

	got, err := c.Resolve(context.Background(), domain.Coordinate{Lat: 0.1, Lng: 0.1})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolve_UpstreamError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := geocoder.NewClient(srv.URL, 2*time.Second, testLogger())

	_, err := c.Resolve(context.Background(), domain.Coordinate{Lat: 7.44, Lng: 125.8})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestResolve_ContextCanceled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := geocoder.NewClient(srv.URL, 5*time.Second, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Resolve(ctx, domain.Coordinate{Lat: 7.44, Lng: 125.8})
	require.Error(t, err)
}
