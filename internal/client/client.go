// Package client is the data-access layer for the remote todo service.
//
// Every operation performs exactly one HTTP round trip against a single
// collection endpoint and normalizes failures into *RequestFailedError.
// There is no retry, no caching and no local state.
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

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/idilsaglam/remotetodo/internal/model"
)

// DefaultBaseURL is the collection endpoint of the hosted service.
const DefaultBaseURL = "https://pengion-todo-a4f1355a880e.herokuapp.com/api/v1/todos"

// Default messages used when the service does not supply an "error" field.
const (
	msgList   = "Fetch todos failed"
	msgGet    = "Fetch todo failed"
	msgCreate = "Create todo failed"
	msgUpdate = "Update todo failed"
	msgDelete = "Delete todo failed"
)

// Client talks to one todo collection endpoint.
type Client struct {
	http    *http.Client
	baseURL string
	logger  zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger failures are reported to.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a Client for baseURL. An empty baseURL uses DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		http:    http.DefaultClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the collection endpoint.
func (c *Client) BaseURL() string { return c.baseURL }

// envelope is the success body of every response.
type envelope[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

type errorBody struct {
	Error string `json:"error"`
}

// List fetches todos. status is sent only when it names a persisted status,
// search only when non-empty. Filtering is done entirely by the service.
func (c *Client) List(ctx context.Context, status model.Status, search string) ([]model.Todo, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, c.fail(ctx, "list", http.MethodGet, c.baseURL, "", 0, msgList, err)
	}
	q := u.Query()
	if status.IsFilter() {
		q.Set("status", string(status))
	}
	if search != "" {
		q.Set("search", search)
	}
	u.RawQuery = q.Encode()

	var env envelope[[]model.Todo]
	if err := c.do(ctx, "list", http.MethodGet, u.String(), nil, msgList, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return []model.Todo{}, nil
	}
	return env.Data, nil
}

// Get fetches a single todo.
func (c *Client) Get(ctx context.Context, id int) (model.Todo, error) {
	var env envelope[model.Todo]
	if err := c.do(ctx, "get", http.MethodGet, c.itemURL(id), nil, msgGet, &env); err != nil {
		return model.Todo{}, err
	}
	return env.Data, nil
}

// Create posts exactly title, details and status and returns the stored
// record with its assigned id.
func (c *Client) Create(ctx context.Context, f model.Fields) (model.Todo, error) {
	body := model.Fields{Title: f.Title, Details: f.Details, Status: f.Status}

	var env envelope[model.Todo]
	if err := c.do(ctx, "create", http.MethodPost, c.baseURL, body, msgCreate, &env); err != nil {
		return model.Todo{}, err
	}
	return env.Data, nil
}

// Update replaces the fields set in p. Nil fields are left out of the body.
func (c *Client) Update(ctx context.Context, id int, p model.Patch) (model.Todo, error) {
	body := model.Patch{Title: p.Title, Details: p.Details, Status: p.Status}

	var env envelope[model.Todo]
	if err := c.do(ctx, "update", http.MethodPut, c.itemURL(id), body, msgUpdate, &env); err != nil {
		return model.Todo{}, err
	}
	return env.Data, nil
}

// Delete removes a todo. A successful response needs no body.
func (c *Client) Delete(ctx context.Context, id int) error {
	return c.do(ctx, "delete", http.MethodDelete, c.itemURL(id), nil, msgDelete, nil)
}

func (c *Client) itemURL(id int) string {
	return c.baseURL + "/" + strconv.Itoa(id)
}

// do performs one round trip. out, when non-nil, receives the decoded
// success body.
func (c *Client) do(ctx context.Context, op, method, target string, in any, defMsg string, out any) error {
	reqID := uuid.NewString()

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return c.fail(ctx, op, method, target, reqID, 0, defMsg, fmt.Errorf("encode body: %w", err))
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return c.fail(ctx, op, method, target, reqID, 0, defMsg, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		return c.fail(ctx, op, method, target, reqID, 0, defMsg, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fail(ctx, op, method, target, reqID, resp.StatusCode, defMsg, fmt.Errorf("read body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := defMsg
		var eb errorBody
		if json.Unmarshal(data, &eb) == nil && eb.Error != "" {
			msg = eb.Error
		}
		return c.fail(ctx, op, method, target, reqID, resp.StatusCode, msg, nil)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return c.fail(ctx, op, method, target, reqID, resp.StatusCode, defMsg, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func (c *Client) fail(ctx context.Context, op, method, target, reqID string, code int, msg string, cause error) error {
	c.logger.Error().
		Ctx(ctx).
		Err(cause).
		Str("op", op).
		Str("method", method).
		Str("url", target).
		Str("request_id", reqID).
		Int("status", code).
		Msg(msg)

	return &RequestFailedError{Op: op, StatusCode: code, Message: msg, Cause: cause}
}
