package smoke

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/health":
			w.Write([]byte(`{"status":"healthy"}`))
		case "/api/sessions":
			w.Write([]byte(`{"success":false,"error":"Internal server error","message":"x"}`))
		case "/api/requests":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"error":"Not found"}`))
		default:
			w.Write([]byte(`{"success":true,"data":[]}`))
		}
	}))
	defer srv.Close()

	results := NewClient(srv.URL+"/", time.Second).Run(context.Background(), "/api")
	require.NotEmpty(t, results)

	failed := map[string]Result{}
	for _, r := range results {
		if !r.OK() {
			failed[r.Path] = r
		}
	}

	assert.Len(t, failed, 2)
	assert.Contains(t, failed, "/api/sessions")
	assert.Equal(t, http.StatusNotFound, failed["/api/requests"].Status)
	assert.Equal(t, "/health", results[0].Path)
	assert.True(t, results[0].OK())
}

func TestRunUnreachable(t *testing.T) {
	results := NewClient("http://127.0.0.1:1", 200*time.Millisecond).Run(context.Background(), "/api/v1")
	for _, r := range results {
		assert.False(t, r.OK(), r.Path)
	}
}
