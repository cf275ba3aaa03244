package artic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/artworks/internal/domain"
)

const (
	// DefaultBaseURL is the public Art Institute of Chicago API
	DefaultBaseURL = "https://api.artic.edu/api/v1"

	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "artworks/1.0"
)

// fields limits the response to what the domain maps
var fields = strings.Join([]string{
	"id",
	"title",
	"place_of_origin",
	"artist_display",
	"inscriptions",
	"date_start",
	"date_end",
}, ",")

// Client implements domain.PageRepository for the artworks collection endpoint
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithTimeout sets the HTTP client timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent sent with every request
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a new collection API client
func NewClient(baseURL string, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: defaultUserAgent,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doRequest performs a GET request and returns the response body.
// Any transport failure or non-2xx status is returned as a *domain.FetchError.
func (c *Client) doRequest(ctx context.Context, page int, path string, query url.Values) ([]byte, error) {
	reqURL := fmt.Sprintf("%s%s", c.baseURL, path)
	if query != nil {
		reqURL = fmt.Sprintf("%s?%s", reqURL, query.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &domain.FetchError{Page: page, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("AIC-User-Agent", c.userAgent)

	c.logger.Debug("artic request", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.FetchError{Page: page, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.FetchError{Page: page, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug("artic request error", "status", resp.StatusCode, "bodyLen", len(body))
		return nil, &domain.FetchError{Page: page, StatusCode: resp.StatusCode}
	}

	return body, nil
}

// parseResponse decodes a listing response body
func (c *Client) parseResponse(page int, body []byte) (*APIResponse, error) {
	var resp APIResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &domain.FetchError{Page: page, Err: fmt.Errorf("failed to parse response: %w", err)}
	}
	return &resp, nil
}

// FetchPage returns one page of artworks.
// The remote is asked for exactly limit records at the 1-based page index.
func (c *Client) FetchPage(ctx context.Context, page, limit int) (*domain.Page, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	query.Set("fields", fields)

	body, err := c.doRequest(ctx, page, "/artworks", query)
	if err != nil {
		return nil, err
	}

	resp, err := c.parseResponse(page, body)
	if err != nil {
		return nil, err
	}

	return MapPage(page, resp), nil
}
