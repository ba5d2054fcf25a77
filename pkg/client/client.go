// Package client is the taskboard API client. Client speaks the
// HTTP contract; Board keeps a local, per-status-partitioned view of
// one user's tasks in sync with server responses.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// The three workflow states a task moves through. These are the
// exact wire literals the server persists.
const (
	StatusToDo       = "To Do"
	StatusInProgress = "In Progress"
	StatusDone       = "Done"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("task not found")
	ErrInvalidInput = errors.New("invalid input")
)

type Task struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TaskPatch carries the optional fields of an update. Nil means the
// field is omitted and keeps its server-side value.
type TaskPatch struct {
	Title  *string `json:"title,omitempty"`
	Status *string `json:"status,omitempty"`
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New returns a client for the API at baseURL, e.g.
// "http://localhost:8080". The token is the bearer access token; it
// may be empty until Login is called.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *Client) SetToken(token string) {
	c.token = token
}

// Login authenticates with email and password and captures the
// access token the server hands back, keeping it for later calls.
func (c *Client) Login(ctx context.Context, email, password string) error {
	return c.authenticate(ctx, "/api/v1/auth/login", email, password)
}

// Register creates an account and signs it in, capturing the access
// token like Login.
func (c *Client) Register(ctx context.Context, email, password string) error {
	return c.authenticate(ctx, "/api/v1/auth/register", email, password)
}

// Token returns the current bearer access token.
func (c *Client) Token() string {
	return c.token
}

func (c *Client) authenticate(ctx context.Context, path, email, password string) error {
	body, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return errorFromResponse(resp)
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "access_token" {
			c.token = cookie.Value
			return nil
		}
	}
	return errors.New("no access token in response")
}

func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	err := c.do(ctx, http.MethodGet, "/api/v1/tasks", nil, &tasks)
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) CreateTask(ctx context.Context, title, status string) (*Task, error) {
	body := map[string]string{"title": title}
	if status != "" {
		body["status"] = status
	}

	task := new(Task)
	err := c.do(ctx, http.MethodPost, "/api/v1/tasks", body, task)
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (c *Client) UpdateTask(ctx context.Context, id int64, patch TaskPatch) (*Task, error) {
	task := new(Task)
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/tasks/%d", id), patch, task)
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/tasks/%d", id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errorFromResponse(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorFromResponse maps a non-2xx response onto the client's error
// sentinels, wrapping the server's message when it sent one.
func errorFromResponse(resp *http.Response) error {
	var envelope struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&envelope)

	var sentinel error
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusBadRequest:
		sentinel = ErrInvalidInput
	default:
		if envelope.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, envelope.Error)
		}
		return fmt.Errorf("server error (%d)", resp.StatusCode)
	}

	if envelope.Error != "" {
		return fmt.Errorf("%w: %s", sentinel, envelope.Error)
	}
	return sentinel
}
