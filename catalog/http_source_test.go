package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSourceListServices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/services/all", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"1","name":"Electrician","description":"d","price":1500},{"id":"2","name":"Bad","price":"x"}]`))
	}))
	defer srv.Close()

	services, err := NewHTTPSource(srv.URL+"/api/v1/services/all", srv.Client()).ListServices(context.Background())

	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Electrician", services[0].Name)
	assert.Equal(t, 5.0, services[0].EffectiveRating())
}

func TestHTTPSourceNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"boom"}`))
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.URL, nil).ListServices(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestHTTPSourceNotAnArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.URL, nil).ListServices(context.Background())

	assert.Error(t, err)
}
