package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"chisa-farm-backend/internal/apierr"
)

// API is the provider surface the handlers depend on.
type API interface {
	Current(ctx context.Context, lat, lon string) (json.RawMessage, error)
	Forecast(ctx context.Context, lat, lon string) (json.RawMessage, error)
}

// Client forwards to OpenWeather and returns the provider JSON untouched.
// Provider failures are collapsed to one generic message per endpoint; detail
// goes to the wrapped cause only.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

func (c *Client) Current(ctx context.Context, lat, lon string) (json.RawMessage, error) {
	raw, err := c.fetch(ctx, "/weather", lat, lon)
	if err != nil {
		return nil, apierr.Weather("Failed to fetch weather data", err)
	}
	return raw, nil
}

func (c *Client) Forecast(ctx context.Context, lat, lon string) (json.RawMessage, error) {
	raw, err := c.fetch(ctx, "/forecast", lat, lon)
	if err != nil {
		return nil, apierr.Weather("Failed to fetch forecast data", err)
	}
	return raw, nil
}

func (c *Client) fetch(ctx context.Context, path, lat, lon string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("lat", lat)
	q.Set("lon", lon)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openweather %s failed: %s", path, resp.Status)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(b), nil
}
