package weatherbit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Fetcher retrieves the daily forecast. Implemented by *Client; tests and the
// loader depend on this interface.
type Fetcher interface {
	FetchDaily(ctx context.Context) (Forecast, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Settings describe the single endpoint the client talks to.
type Settings struct {
	BaseURL   string
	APIKey    string
	Latitude  float64
	Longitude float64
	Units     string
	Days      int
	Timeout   time.Duration
	UserAgent string
}

// Client talks to the Weatherbit HTTP API.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultBaseURL   = "https://api.weatherbit.io/v2.0"
	defaultUserAgent = "astrodash/0.1"
	defaultTimeout   = 10 * time.Second
	dailyPath        = "/forecast/daily"
	maxResponseBytes = 4 << 20
)

// NewClient builds a Client whose forecast URL is fixed at construction.
func NewClient(s Settings) (*Client, error) {
	base, err := parseBaseURL(s.BaseURL)
	if err != nil {
		return nil, err
	}

	values := url.Values{}
	values.Set("lat", strconv.FormatFloat(s.Latitude, 'f', -1, 64))
	values.Set("lon", strconv.FormatFloat(s.Longitude, 'f', -1, 64))
	values.Set("key", s.APIKey)
	if units := strings.TrimSpace(s.Units); units != "" {
		values.Set("units", units)
	}
	if s.Days > 0 {
		values.Set("days", strconv.Itoa(s.Days))
	}
	endpoint := *base
	endpoint.Path = strings.TrimRight(base.Path, "/") + dailyPath
	endpoint.RawQuery = values.Encode()

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	userAgent := strings.TrimSpace(s.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		endpoint:  &endpoint,
		http:      &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}, nil
}

// ForecastURL returns the fully constructed request URL.
func (c *Client) ForecastURL() string {
	return c.endpoint.String()
}

// FetchDaily issues the forecast request once. A response without the data
// field yields an *APIError carrying the server's error text.
func (c *Client) FetchDaily(ctx context.Context) (Forecast, error) {
	if c == nil {
		return Forecast{}, fmt.Errorf("client is nil")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint.String(), nil)
	if err != nil {
		return Forecast{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return Forecast{}, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Forecast{}, fmt.Errorf("read response: %w", err)
	}

	var payload DailyResponse
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &payload); err != nil {
			if resp.StatusCode >= 400 {
				log.Printf("forecast response: status=%d bytes=%d undecodable", resp.StatusCode, len(body))
				return Forecast{}, &APIError{StatusCode: resp.StatusCode}
			}
			return Forecast{}, fmt.Errorf("decode response: %w", err)
		}
	}

	days := -1
	if payload.Data != nil {
		days = len(*payload.Data)
	}
	log.Printf("forecast response: status=%d bytes=%d days=%d error=%q", resp.StatusCode, len(body), days, payload.Error)

	if payload.Data == nil {
		return Forecast{}, &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(payload.Error)}
	}
	return Forecast{
		Days:     *payload.Data,
		CityName: payload.CityName,
		Timezone: payload.Timezone,
	}, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base_url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base_url %q: missing host", raw)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
