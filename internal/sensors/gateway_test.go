package sensors

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Koushikkd07/Soil-Buddy/internal/soil"
)

func fastGateway(url, token string) *Gateway {
	g := NewGateway(http.DefaultClient, url, token)
	g.httpCfg.Backoff = BackoffConfig{MaxRetries: 2, InitialInterval: time.Millisecond, MaxInterval: 5 * time.Millisecond}
	return g
}

func TestGatewayRead(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gardens/home/reading", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"moisture":41.5,"ph":6.2,"temperature":19,"nutrients":66,"timestamp":"2024-06-15T08:30:00+02:00"}`))
	}))
	defer srv.Close()

	r, err := fastGateway(srv.URL+"/", "secret").Read(context.Background(), "home")
	require.NoError(t, err)
	assert.Equal(t, "gateway", r.SensorName)
	assert.Equal(t, soil.Reading{Moisture: 41.5, PH: 6.2, Temperature: 19, Nutrients: 66}, r.Reading)
	assert.Equal(t, time.Date(2024, time.June, 15, 6, 30, 0, 0, time.UTC), r.Timestamp)
}

func TestGatewayRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"moisture":60,"ph":6.5,"temperature":20,"nutrients":70}`))
	}))
	defer srv.Close()

	r, err := fastGateway(srv.URL, "").Read(context.Background(), "home")
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, 60.0, r.Moisture)
	assert.False(t, r.Timestamp.IsZero())
}

func TestGatewayGivesUpAfterRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := fastGateway(srv.URL, "").Read(context.Background(), "home")
	assert.ErrorIs(t, err, errServerError)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGatewayClientError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := fastGateway(srv.URL, "").Read(context.Background(), "home")
	assert.ErrorIs(t, err, errUnexpected)
}

func TestGatewayBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := fastGateway(srv.URL, "").Read(context.Background(), "home")
	assert.ErrorContains(t, err, "decode gateway reading")
}

func TestGatewayWithoutURL(t *testing.T) {
	_, err := NewGateway(http.DefaultClient, "", "").Read(context.Background(), "home")
	assert.Error(t, err)
}

func TestDoRequestValidatesConfig(t *testing.T) {
	build := func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, "http://example.invalid", nil)
	}

	_, err := doRequestWithResilience(context.Background(), HTTPClientConfig{}, newBreaker("t"), build)
	assert.ErrorIs(t, err, errNoHTTPClient)

	_, err = doRequestWithResilience(context.Background(), HTTPClientConfig{Client: http.DefaultClient}, newBreaker("t"), build)
	assert.ErrorIs(t, err, errInvalidConfig)
}
