package sensors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/Koushikkd07/Soil-Buddy/internal/soil"
)

// Gateway implements soil.Sensor for an HTTP sensor gateway exposing
// GET {baseURL}/gardens/{garden}/reading.
type Gateway struct {
	name    string
	baseURL string
	token   string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewGateway creates a gateway sensor. token, when set, is sent as a bearer token.
func NewGateway(client *http.Client, baseURL, token string) *Gateway {
	return &Gateway{
		name:    "gateway",
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      3,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: newBreaker("gateway"),
	}
}

func (g *Gateway) Name() string {
	return g.name
}

func (g *Gateway) Read(ctx context.Context, garden string) (soil.SensorReading, error) {
	if g.baseURL == "" {
		return soil.SensorReading{}, fmt.Errorf("sensor gateway url is not configured")
	}

	buildRequest := func(ctx context.Context) (*http.Request, error) {
		u := fmt.Sprintf("%s/gardens/%s/reading", g.baseURL, url.PathEscape(garden))
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		if g.token != "" {
			req.Header.Set("Authorization", "Bearer "+g.token)
		}
		return req, nil
	}

	resp, err := doRequestWithResilience(ctx, g.httpCfg, g.circuit, buildRequest)
	if err != nil {
		return soil.SensorReading{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Moisture    float64 `json:"moisture"`
		PH          float64 `json:"ph"`
		Temperature float64 `json:"temperature"`
		Nutrients   float64 `json:"nutrients"`
		Timestamp   string  `json:"timestamp"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return soil.SensorReading{}, fmt.Errorf("decode gateway reading: %w", err)
	}

	ts, err := time.Parse(time.RFC3339, payload.Timestamp)
	if err != nil {
		ts = time.Now().UTC()
	} else {
		ts = ts.UTC()
	}

	return soil.SensorReading{
		SensorName: g.name,
		Timestamp:  ts,
		Reading: soil.Reading{
			Moisture:    payload.Moisture,
			PH:          payload.PH,
			Temperature: payload.Temperature,
			Nutrients:   payload.Nutrients,
		},
	}, nil
}
