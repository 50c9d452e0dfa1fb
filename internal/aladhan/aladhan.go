// Package aladhan fetches daily prayer timings from the Aladhan API.
package aladhan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/verte-zerg/sholat/internal/model"
)

// DefaultBaseURL is the public Aladhan API host.
const DefaultBaseURL = "https://api.aladhan.com"

const dateLayout = "02-01-2006"

// ErrStatus is returned when the API answers with a non-success status.
var ErrStatus = errors.New("unexpected api status")

// Client queries timings for one city.
type Client struct {
	baseURL string
	http    *http.Client
}

type timingsResponse struct {
	Code   int       `json:"code"`
	Status string    `json:"status"`
	Data   model.Day `json:"data"`
}

// NewClient creates a client against baseURL with the given request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// MethodServerDefault leaves the calculation method to the API.
const MethodServerDefault = -1

// Query identifies the day and place to fetch. Method 0 is a valid
// method id; use MethodServerDefault to omit it.
type Query struct {
	City    string
	Country string
	Method  int
	Date    time.Time
}

// Timings fetches the timings and calendar date for q.
func (c *Client) Timings(ctx context.Context, q Query) (model.Day, error) {
	endpoint := c.timingsURL(q)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return model.Day{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return model.Day{}, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return model.Day{}, fmt.Errorf("%w: %s", ErrStatus, resp.Status)
	}

	var payload timingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return model.Day{}, fmt.Errorf("failed to decode timings response: %w", err)
	}
	if payload.Code != 0 && payload.Code != http.StatusOK {
		return model.Day{}, fmt.Errorf("%w: %d %s", ErrStatus, payload.Code, payload.Status)
	}
	return payload.Data, nil
}

func (c *Client) timingsURL(q Query) string {
	params := url.Values{}
	params.Set("city", q.City)
	params.Set("country", q.Country)
	if q.Method >= 0 {
		params.Set("method", strconv.Itoa(q.Method))
	}
	path := "/v1/timingsByCity"
	if !q.Date.IsZero() {
		path += "/" + q.Date.Format(dateLayout)
	}
	return c.baseURL + path + "?" + params.Encode()
}
