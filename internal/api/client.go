package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/blackwell-systems/bookctl/internal/logging"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultBaseURL   = "http://localhost:8000"
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "bookctl"
)

// HTTPDoer is the subset of *http.Client the Client needs.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client talks to the book resource service. It performs no retries and
// keeps no state beyond its configuration.
type Client struct {
	baseURL   string
	userAgent string
	http      HTTPDoer
	log       *logrus.Entry
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h HTTPDoer) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout sets the transport timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http = &http.Client{Timeout: d}
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger attaches a logger. Requests are logged at debug level.
func WithLogger(l *logrus.Entry) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a Client for the service rooted at baseURL.
// If baseURL is empty, the local development service is used.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	// Strip trailing slash for consistent URL building.
	baseURL = strings.TrimRight(baseURL, "/")

	c := &Client{
		baseURL:   baseURL,
		userAgent: defaultUserAgent,
		http:      &http.Client{Timeout: defaultTimeout},
		log:       logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the service root the client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// doJSON sends a request and decodes the JSON response into out.
func (c *Client) doJSON(ctx context.Context, method, url string, body, out interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return err
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.log.WithFields(logrus.Fields{
		"method":     method,
		"url":        url,
		"request_id": reqID,
	})

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.WithError(err).Warn("request failed")
		return &TransportError{Op: method + " " + url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	log = log.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"duration": time.Since(start).String(),
	})

	if err := checkStatus(resp); err != nil {
		log.WithError(err).Warn("service rejected request")
		return err
	}
	log.Debug("request completed")

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &TransportError{Op: method + " " + url, Err: err}
		}
	}
	return nil
}

// url builds a service URL from path segments.
func (c *Client) url(parts ...string) string {
	return c.baseURL + "/" + strings.Join(parts, "/")
}

func itoa(id int) string {
	return strconv.Itoa(id)
}

// checkStatus returns a *ServiceError for non-2xx responses.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	return &ServiceError{
		StatusCode: resp.StatusCode,
		Detail:     parseDetail(body),
	}
}
