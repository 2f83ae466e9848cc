package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/libhub-dev/libhub/internal/cli/events"
	"github.com/libhub-dev/libhub/internal/cli/store"
)

// All endpoints live under this prefix on the server.
const basePath = "/api"

// Client is the HTTP client for the Library Hub API. Every typed endpoint
// wrapper funnels through do, which attaches the stored credential, encodes
// and decodes JSON, and reacts to authorization failures by clearing the
// session store and publishing on the invalidation broadcaster.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      store.Store
	events     *events.Broadcaster
}

// New creates a new API client against the given base URL.
func New(baseURL string, st store.Store, bc *events.Broadcaster) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		store:  st,
		events: bc,
	}
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

type requestOptions struct {
	body any
	// query entries with an empty value are omitted from the URL.
	query map[string]string
}

// do executes a single API request. Concurrent calls are independent; the
// only shared state is the session store, whose writes are last-write-wins.
func (c *Client) do(ctx context.Context, method, path string, opts requestOptions) (json.RawMessage, error) {
	u := c.baseURL + basePath + path
	if len(opts.query) > 0 {
		params := url.Values{}
		for key, value := range opts.query {
			if value == "" {
				continue
			}
			params.Set(key, value)
		}
		if encoded := params.Encode(); encoded != "" {
			u += "?" + encoded
		}
	}

	// GET never carries a body, even if one was supplied.
	hasBody := opts.body != nil && method != http.MethodGet
	var reqBody io.Reader
	if hasBody {
		data, err := json.Marshal(opts.body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if token, ok := c.store.Read(); ok {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("api request")

	if resp.StatusCode == http.StatusUnauthorized {
		// The session is invalid: clear it and signal before the caller
		// observes the failure. Keyed purely on the status code, so it
		// happens even if the body below turns out to be garbage.
		_ = c.store.Write(nil, nil)
		c.events.Publish()
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil || !json.Valid(data) {
		// A non-JSON body is not a failure by itself.
		data = []byte("{}")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, newRequestError(resp.StatusCode, data)
	}

	return data, nil
}

// doJSON executes a request and decodes the successful response into T.
// A 204 response yields (nil, nil).
func doJSON[T any](ctx context.Context, c *Client, method, path string, opts requestOptions) (*T, error) {
	data, err := c.do(ctx, method, path, opts)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &out, nil
}

func pageQuery(page, size int) map[string]string {
	return map[string]string{
		"page": strconv.Itoa(page),
		"size": strconv.Itoa(size),
	}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
