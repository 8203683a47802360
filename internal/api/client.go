package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/hrportal/internal/logger"
)

var (
	// ErrUnauthorized matches 401 and 403 responses
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound matches 404 responses
	ErrNotFound = errors.New("not found")
)

// Error is a non-2xx response. Message is the server's {error} or {detail}
// text when present.
type Error struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *Error) Error() string {
	return e.Message
}

// UserMessage is the text surfaced to the user
func (e *Error) UserMessage() string {
	return e.Message
}

// Is lets errors.Is match status-class sentinels
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

func newError(resp *http.Response, body []byte) *Error {
	apiErr := &Error{
		StatusCode: resp.StatusCode,
		Body:       body,
		Message:    "API Error: " + http.StatusText(resp.StatusCode),
	}

	var payload struct {
		Error   string `json:"error"`
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Error != "":
			apiErr.Message = payload.Error
		case payload.Detail != "":
			apiErr.Message = payload.Detail
		case payload.Message != "":
			apiErr.Message = payload.Message
		}
		return apiErr
	}
	if text := strings.TrimSpace(string(body)); text != "" && !strings.HasPrefix(text, "<") {
		apiErr.Message = text
	}
	return apiErr
}

// Client talks to the HR portal backend. API calls carry no client-side
// timeout; cancellation comes from the caller's context.
type Client struct {
	BaseURL string
	HTTP    *http.Client

	Auth       *AuthService
	Attendance *AttendanceService
	Leave      *LeaveService
	WFH        *WFHService
	Team       *TeamService
	Feed       *FeedService
	Admin      *AdminService
}

// New creates a client for baseURL (e.g. "http://localhost:8000/api")
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	c := &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    httpClient,
	}
	c.Auth = &AuthService{c: c}
	c.Attendance = &AttendanceService{c: c}
	c.Leave = &LeaveService{c: c}
	c.WFH = &WFHService{c: c}
	c.Team = &TeamService{c: c}
	c.Feed = &FeedService{c: c}
	c.Admin = &AdminService{c: c}
	return c
}

// do sends one request and decodes a JSON response into out (if non-nil)
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Expires", "0")
	req.Header.Set("X-Request-ID", requestID)

	log := logger.With("request_id", requestID, "method", method, "path", path)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.Warn("request failed", "err", err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	log.Debug("response", "status", resp.StatusCode, "bytes", len(data))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newError(resp, data)
		log.Warn("request rejected", "status", resp.StatusCode, "error", apiErr.Message)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, in, out)
}

func (c *Client) put(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, in, out)
}

func (c *Client) delete(ctx context.Context, path string, query url.Values) error {
	return c.do(ctx, http.MethodDelete, path, query, nil, nil)
}

func seg(s string) string {
	return url.PathEscape(s)
}
