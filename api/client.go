// Package api is a typed client for the Gelbooru JSON API (posts and tags
// search). Requests are assembled with the Posts and Tags builders and
// executed against a Client; responses decode into the models package.
package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
)

const (
	requestTimeout = 30 * time.Second
	userAgent      = "gelbooru-go/1.0"
)

// Client issues search requests against the Gelbooru JSON API.
//
// A Client is safe for concurrent use and should be reused across requests;
// it holds no per-call state beyond the underlying connection pool.
type Client struct {
	httpClient *http.Client
	base       url.URL
	auth       *AuthDetails
	logger     *log.Logger
}

func newClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		base: url.URL{
			Scheme: "https",
			Host:   "gelbooru.com",
			Path:   "/index.php",
		},
	}
}

// NewClient creates an unauthenticated client. Anonymous requests may be
// rate limited by the service.
func NewClient() *Client {
	return newClient()
}

// NewClientWithAuth creates a client that sends the given credentials with
// every request.
func NewClientWithAuth(auth AuthDetails) *Client {
	c := newClient()
	c.auth = &auth
	return c
}

// WithLogger attaches a structured logger. When set, the client logs each
// request endpoint and any failed round trip.
func (c *Client) WithLogger(logger *log.Logger) *Client {
	c.logger = logger
	return c
}

// call performs one round trip: assemble the request URL from params,
// GET it, and decode the JSON body into out. Decode is all-or-nothing;
// no partial results are produced on failure.
func (c *Client) call(params url.Values, out any) error {
	params.Set("page", "dapi")
	params.Set("q", "index")
	params.Set("json", "1")
	if c.auth != nil {
		params.Set("user_id", strconv.Itoa(c.auth.UserID))
		params.Set("api_key", c.auth.Key)
	}

	reqURL := c.base
	reqURL.RawQuery = params.Encode()

	req, err := http.NewRequest(http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrURLConstruction, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	if c.logger != nil {
		c.logger.Info("GET", "endpoint", reqURL.String())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Error("Request failed", "endpoint", reqURL.String(), "error", err)
		}
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		if c.logger != nil {
			c.logger.Error("API error", "status", resp.StatusCode, "response", string(body))
		}
		return fmt.Errorf("%w: status %d: %s", ErrTransport, resp.StatusCode, body)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return nil
}
