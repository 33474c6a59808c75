// Package apod fetches NASA's Astronomy Picture of the Day.
package apod

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	infraerrors "github.com/jonesrussell/mars-explorer/infrastructure/errors"
	infrahttp "github.com/jonesrussell/mars-explorer/infrastructure/http"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultBaseURL is NASA's public API host.
	DefaultBaseURL = "https://api.nasa.gov"
	// DefaultTimeout bounds a single fetch, body included.
	DefaultTimeout = 10 * time.Second

	apodPath   = "/planetary/apod"
	tracerName = "github.com/jonesrussell/mars-explorer/internal/apod"
)

// ErrMissingAPIKey is returned, without any network call, when the client
// has no API key.
var ErrMissingAPIKey = errors.New("NASA_API_KEY not set")

// errTrailingData reports bytes after the response's JSON object.
var errTrailingData = errors.New("unexpected data after json body")

// Fetch outcomes, used as the metrics label.
const (
	OutcomeSuccess        = "success"
	OutcomeMissingKey     = "missing_key"
	OutcomeHTTPError      = "http_error"
	OutcomeTransportError = "transport_error"
	OutcomeDecodeError    = "decode_error"
)

// Config configures a Client.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Recorder observes each fetch. telemetry.Metrics implements it.
type Recorder interface {
	ObserveFetch(outcome string, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ObserveFetch(string, time.Duration) {}

// Client performs one GET per Fetch. It never retries and never caches.
type Client struct {
	apiKey   string
	endpoint string
	http     *http.Client
	recorder Recorder
	tracer   trace.Tracer
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client built from Config.Timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithRecorder sets the fetch observer.
func WithRecorder(r Recorder) Option {
	return func(c *Client) { c.recorder = r }
}

// NewClient creates a Client. The API key is captured here; the process
// environment is not consulted again.
func NewClient(cfg Config, opts ...Option) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		apiKey:   cfg.APIKey,
		endpoint: strings.TrimRight(baseURL, "/") + apodPath,
		http:     infrahttp.NewClient(&infrahttp.ClientConfig{Timeout: timeout}),
		recorder: nopRecorder{},
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether the client has an API key.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Fetch retrieves the picture for date (YYYY-MM-DD). On success the decoded
// body is returned as is; any failure comes back as an error and a nil
// picture. Non-2xx responses wrap an *errors.HTTPError.
func (c *Client) Fetch(ctx context.Context, date string) (*Picture, error) {
	if c.apiKey == "" {
		c.recorder.ObserveFetch(OutcomeMissingKey, 0)
		return nil, ErrMissingAPIKey
	}

	ctx, span := c.tracer.Start(ctx, "apod.Fetch", trace.WithAttributes(attribute.String("apod.date", date)))
	defer span.End()

	start := time.Now()
	pic, outcome, err := c.fetch(ctx, date)
	c.recorder.ObserveFetch(outcome, time.Since(start))

	span.SetAttributes(attribute.String("apod.outcome", outcome))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		return nil, err
	}
	return pic, nil
}

func (c *Client) fetch(ctx context.Context, date string) (*Picture, string, error) {
	query := url.Values{}
	query.Set("api_key", c.apiKey)
	query.Set("date", date)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+query.Encode(), http.NoBody)
	if err != nil {
		return nil, OutcomeTransportError, fmt.Errorf("build apod request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, OutcomeTransportError, fmt.Errorf("request apod for %s: %w", date, redact(err, c.apiKey))
	}
	defer func() { _ = resp.Body.Close() }()

	if httpErr := infraerrors.ParseHTTPError(resp); httpErr != nil {
		return nil, OutcomeHTTPError, infraerrors.WrapWithContextf(httpErr, "apod for %s", date)
	}

	pic, decodeErr := decodePicture(resp.Body)
	if decodeErr != nil {
		return nil, OutcomeDecodeError, infraerrors.WrapWithContext(decodeErr, "decode apod response")
	}
	return pic, OutcomeSuccess, nil
}

// decodePicture reads exactly one JSON object from r.
func decodePicture(r io.Reader) (*Picture, error) {
	dec := json.NewDecoder(r)
	var pic Picture
	if err := dec.Decode(&pic); err != nil {
		return nil, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}
	return &pic, nil
}

// redact strips the API key from transport errors, which quote the URL.
func redact(err error, apiKey string) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = strings.ReplaceAll(urlErr.URL, apiKey, "REDACTED")
	}
	return err
}
