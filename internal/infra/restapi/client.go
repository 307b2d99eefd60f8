// Package restapi implements domain.TaskAPI over the task service's JSON REST interface.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/runoshun/taskboard/internal/domain"
)

// Ensure Client implements domain.TaskAPI.
var _ domain.TaskAPI = (*Client)(nil)

// tasksPath is the collection resource, relative to the base URL.
const tasksPath = "tasks"

// maxErrorBody bounds how much of a failed response body is kept in errors.
const maxErrorBody = 512

// RequestIDHeader carries a per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// Client talks to the task service.
type Client struct {
	http    *http.Client
	base    *url.URL
	newUUID func() string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets a per-request timeout. Zero keeps transport defaults.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			hc := *c.http
			hc.Timeout = d
			c.http = &hc
		}
	}
}

// WithRequestIDFunc overrides request id generation (for testing).
func WithRequestIDFunc(fn func() string) Option {
	return func(c *Client) {
		c.newUUID = fn
	}
}

// New creates a Client for the service rooted at baseURL (e.g. "http://localhost:5000").
func New(baseURL string, opts ...Option) (*Client, error) {
	base, err := ParseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		http:    &http.Client{},
		base:    base,
		newUUID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ParseBaseURL validates a base URL. Only absolute http(s) URLs are accepted.
func ParseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse base url %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base url %q: missing host", raw)
	}
	// Resolve relative paths against the base as a directory.
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u, nil
}

// BaseURL returns the service root the client was created with.
func (c *Client) BaseURL() string {
	return strings.TrimSuffix(c.base.String(), "/")
}

// List calls GET /tasks.
func (c *Client) List(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := c.do(ctx, "list tasks", http.MethodGet, c.collectionURL(), nil, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

// Create calls POST /tasks.
func (c *Client) Create(ctx context.Context, req domain.NewTaskRequest) (domain.Task, error) {
	var task domain.Task
	if err := c.do(ctx, "create task", http.MethodPost, c.collectionURL(), req, &task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// SetStatus calls PUT /tasks/{id}.
func (c *Client) SetStatus(ctx context.Context, id string, status domain.Status) (domain.Task, error) {
	endpoint, err := c.itemURL(id)
	if err != nil {
		return domain.Task{}, err
	}
	var task domain.Task
	body := domain.StatusUpdateRequest{Status: status}
	if err := c.do(ctx, "update task", http.MethodPut, endpoint, body, &task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// Delete calls DELETE /tasks/{id}. The response body is ignored.
func (c *Client) Delete(ctx context.Context, id string) error {
	endpoint, err := c.itemURL(id)
	if err != nil {
		return err
	}
	return c.do(ctx, "delete task", http.MethodDelete, endpoint, nil, nil)
}

func (c *Client) collectionURL() string {
	return c.base.ResolveReference(&url.URL{Path: tasksPath}).String()
}

// itemURL returns base/tasks/{id}. The id is always a single path segment:
// "." and ".." are percent-encoded so they are never treated as dot segments.
func (c *Client) itemURL(id string) (string, error) {
	if id == "" {
		return "", domain.ErrEmptyTaskID
	}
	escaped := url.PathEscape(id)
	if id == "." || id == ".." {
		escaped = strings.Repeat("%2E", len(id))
	}
	u := *c.base
	u.Path = c.base.Path + tasksPath + "/" + id
	u.RawPath = c.base.EscapedPath() + tasksPath + "/" + escaped
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}

// do performs one request. in is encoded as the JSON body when non-nil;
// out receives the decoded response when non-nil.
func (c *Client) do(ctx context.Context, op, method, endpoint string, in, out any) error {
	requestID := c.newUUID()
	fail := func(status int, body string, err error) error {
		return &domain.RemoteError{
			Op:         op,
			Method:     method,
			URL:        endpoint,
			RequestID:  requestID,
			StatusCode: status,
			Body:       body,
			Err:        err,
		}
	}

	var reqBody io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fail(0, "", fmt.Errorf("encode request: %w", err))
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fail(0, "", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fail(0, "", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(resp.StatusCode, "", fmt.Errorf("read response: %w", err))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fail(resp.StatusCode, excerpt(data), nil)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fail(resp.StatusCode, "", fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// excerpt trims a response body for inclusion in an error message.
func excerpt(data []byte) string {
	s := strings.TrimSpace(string(data))
	if len(s) > maxErrorBody {
		s = s[:maxErrorBody] + "..."
	}
	return s
}
