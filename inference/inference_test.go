package inference

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/classify", r.URL.Path)
		assert.Equal(t, "Bearer model-key", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "https://blobs/pothole.jpg", body["imageUrl"])

		w.Write([]byte(`{"label":"pothole","severity":"High","description":"Large pothole on the road"}`))
	}))
	defer srv.Close()

	pred, err := NewEngine(srv.URL, "model-key").Classify(context.Background(), "https://blobs/pothole.jpg")
	require.NoError(t, err)
	assert.Equal(t, "pothole", pred.Label)
	assert.Equal(t, "High", pred.Severity)
	assert.Equal(t, "Large pothole on the road", pred.Description)
}

func TestClassifyUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewEngine(srv.URL, "").Classify(context.Background(), "https://blobs/x.jpg")
	assert.Error(t, err)
}

func TestClassifyMalformedBodyIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	pred, err := NewEngine(srv.URL, "").Classify(context.Background(), "https://blobs/x.jpg")
	require.NoError(t, err)
	assert.Empty(t, pred.Label)
	assert.Empty(t, pred.Severity)
}

func TestClassifyConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := NewEngine(srv.URL, "").Classify(context.Background(), "https://blobs/x.jpg")
	assert.Error(t, err)
}
