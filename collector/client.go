package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ftahirops/gridmix/model"
)

// Endpoint paths relative to the API base URL.
const (
	EnergyMixPath     = "/energy-mix"
	OptimalWindowPath = "/optimal-window"
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Endpoint string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api returned status %d", e.Code)
}

// Client reads the energy analytics API.
type Client struct {
	http    *resty.Client
	log     zerolog.Logger
	metrics *Metrics
	loc     *time.Location
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the request logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithMetrics records request outcomes.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithLocation sets the zone for window timestamps sent without an offset.
func WithLocation(loc *time.Location) Option {
	return func(c *Client) { c.loc = loc }
}

// WithTimeout bounds each request; zero leaves requests bounded only by ctx.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

// NewClient creates a client for the API rooted at baseURL. Failed requests
// are never retried: retrying is the user's call.
func NewClient(baseURL string, opts ...Option) *Client {
	hc := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")
	c := &Client{http: hc, log: zerolog.Nop(), loc: time.Local}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.http.BaseURL
}

// EnergyMix fetches the generation mix for three consecutive days.
func (c *Client) EnergyMix(ctx context.Context) (model.EnergyMix, error) {
	var mix model.EnergyMix
	decode := func(body []byte) error { return json.Unmarshal(body, &mix) }
	if err := c.get(ctx, EnergyMixPath, nil, decode); err != nil {
		return model.EnergyMix{}, fmt.Errorf("fetch energy mix: %w", err)
	}
	return mix, nil
}

// OptimalWindow fetches the best charging window of the given length.
func (c *Client) OptimalWindow(ctx context.Context, hours int) (model.OptimalWindow, error) {
	var w model.OptimalWindow
	q := map[string]string{"hours": strconv.Itoa(hours)}
	decode := func(body []byte) (err error) {
		w, err = model.DecodeOptimalWindow(body, c.loc)
		return err
	}
	if err := c.get(ctx, OptimalWindowPath, q, decode); err != nil {
		return model.OptimalWindow{}, fmt.Errorf("fetch optimal window: %w", err)
	}
	return w, nil
}

func (c *Client) get(ctx context.Context, path string, query map[string]string, decode func([]byte) error) error {
	reqID := uuid.NewString()
	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", reqID).
		SetQueryParams(query).
		Get(path)
	elapsed := time.Since(start)
	if err != nil {
		c.metrics.observe(path, "transport_error", elapsed)
		c.log.Warn().Err(err).Str("request_id", reqID).Str("path", path).Msg("request failed")
		return err
	}
	if resp.IsError() || resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		c.metrics.observe(path, "http_error", elapsed)
		c.log.Warn().Str("request_id", reqID).Str("path", path).Int("status", resp.StatusCode()).Msg("non-2xx response")
		return &StatusError{Endpoint: path, Code: resp.StatusCode()}
	}
	if err := decode(resp.Body()); err != nil {
		c.metrics.observe(path, "decode_error", elapsed)
		return fmt.Errorf("decode response: %w", err)
	}
	c.metrics.observe(path, "ok", elapsed)
	c.log.Debug().Str("request_id", reqID).Str("path", path).Dur("elapsed", elapsed).Msg("response")
	return nil
}
