package chartclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBarChart(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("fake-png-bytes"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	img, err := c.RenderBarChart(context.Background(), "Average price by category",
		[]string{"Cat 50 Chocolate", "Cat 48 Cocoa-Cocoa Butter"}, []float64{199, 143.25})
	require.NoError(t, err)
	assert.Equal(t, []byte("fake-png-bytes"), img)

	var req map[string]any
	require.NoError(t, json.Unmarshal(gotBody, &req))
	assert.Equal(t, "png", req["format"])
	chart := req["chart"].(map[string]any)
	assert.Equal(t, "bar", chart["type"])
}

func TestRenderBarChartRendererError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.RenderBarChart(context.Background(), "t", []string{"a"}, []float64{1})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestRenderBarChartLengthMismatch(t *testing.T) {
	c := NewClient("http://unused.invalid", time.Second)
	_, err := c.RenderBarChart(context.Background(), "t", []string{"a", "b"}, []float64{1})
	assert.Error(t, err)
}
