package ban

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "casamx/internal/errors"
)

const sampleResponse = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "geometry": {"type": "Point", "coordinates": [2.331, 48.869]},
      "properties": {
        "label": "12 Rue de la Paix 75002 Paris",
        "score": 0.97,
        "postcode": "75002",
        "city": "Paris"
      }
    },
    {
      "type": "Feature",
      "geometry": {"type": "Point", "coordinates": []},
      "properties": {
        "label": "Rue de la Paix 21000 Dijon",
        "score": 0.61,
        "postcode": "21000",
        "city": "Dijon"
      }
    }
  ]
}`

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/", r.URL.Path)
		assert.Equal(t, "12 rue de la paix", r.URL.Query().Get("q"))
		assert.Equal(t, "8", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	suggestions, err := client.Search(context.Background(), "12 rue de la paix", 8)

	assert.NoError(t, err)
	assert.Len(t, suggestions, 2)

	first := suggestions[0]
	assert.Equal(t, "12 Rue de la Paix 75002 Paris", first.Label)
	assert.Equal(t, "ban", first.Source)
	assert.Equal(t, "Paris", *first.City)
	assert.Equal(t, "75002", *first.PostalCode)
	assert.InDelta(t, 48.869, *first.Lat, 0.0001)
	assert.InDelta(t, 2.331, *first.Lng, 0.0001)
	assert.InDelta(t, 0.97, *first.Score, 0.0001)

	// feature without coordinates keeps nil lat/lng
	second := suggestions[1]
	assert.Nil(t, second.Lat)
	assert.Nil(t, second.Lng)
}

func TestClient_SearchUpstreamErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(server.URL, 5*time.Second)
			suggestions, err := client.Search(context.Background(), "rue", 8)

			assert.Nil(t, suggestions)
			assert.ErrorIs(t, err, apperrors.ErrUpstream)
		})
	}
}

func TestClient_SearchTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(server.URL, 20*time.Millisecond)
	suggestions, err := client.Search(context.Background(), "rue", 8)

	assert.Nil(t, suggestions)
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}

func TestClient_SearchUnreachable(t *testing.T) {
	// port from a server that is already closed
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url, time.Second)
	suggestions, err := client.Search(context.Background(), "rue", 8)

	assert.Nil(t, suggestions)
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}
