package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/tourkit/internal/model"
)

func TestHTTPSource_Fetch(t *testing.T) {
	published, err := model.NewThemeConfig(testLight(), testDark(), "admin")
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(published)
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL)
	src.Header = http.Header{"X-Api-Key": []string{"secret"}}

	cfg, err := src.GetThemeConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, published.ID, cfg.ID)
	assert.Equal(t, published.Light, cfg.Light)
	assert.Equal(t, published.Dark, cfg.Dark)
}

func TestHTTPSource_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"status", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusInternalServerError)
		}},
		{"bad json", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("{not json"))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := NewHTTPSource(srv.URL).GetThemeConfig(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestHTTPSource_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL)
	src.Timeout = 50 * time.Millisecond

	_, err := src.GetThemeConfig(context.Background())
	assert.Error(t, err)
}
