// Package client is a Go counterpart of the dashboard frontend's data
// slices: per-resource cached collections with loading/error state around
// the REST calls. The cache is a disposable copy; the server owns the
// canonical data.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/mo-adel007/quizz/internal/dashboard"
)

// APIError is a non-2xx response decoded from the uniform {message} body.
// Network failures are returned as wrapped transport errors instead, so
// callers can tell the two apart.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client

	Announcements *Resource[dashboard.Announcement]
	Quizzes       *Resource[dashboard.Quiz]
}

func New(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	c.Announcements = &Resource[dashboard.Announcement]{
		c:    c,
		path: "/api/announcements",
		id:   func(a dashboard.Announcement) string { return a.ID },
	}
	c.Quizzes = &Resource[dashboard.Quiz]{
		c:    c,
		path: "/api/quizzes",
		id:   func(q dashboard.Quiz) string { return q.ID },
	}
	return c
}

// Resource caches the last fetched collection of one resource type.
type Resource[T any] struct {
	c    *Client
	path string
	id   func(T) string

	mu      sync.RWMutex
	items   []T
	loading bool
	err     error
}

// Items returns a copy of the cached collection.
func (r *Resource[T]) Items() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]T, len(r.items))
	copy(items, r.items)
	return items
}

func (r *Resource[T]) Loading() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loading
}

// Err reports the last fetch failure, if any.
func (r *Resource[T]) Err() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.err
}

// Fetch replaces the cached collection wholesale on success and records
// the error on failure.
func (r *Resource[T]) Fetch(ctx context.Context) ([]T, error) {
	r.setLoading(true)
	defer r.setLoading(false)

	var items []T
	err := r.c.do(ctx, http.MethodGet, r.path, nil, &items)

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.err = err
		return nil, err
	}
	r.err = nil
	r.items = items
	return items, nil
}

// Create posts the input and appends the server-returned record to the
// cache. No optimistic update: the cache changes only after success.
func (r *Resource[T]) Create(ctx context.Context, in any) (T, error) {
	var created T

	if err := validateInput(in); err != nil {
		return created, err
	}

	r.setLoading(true)
	defer r.setLoading(false)

	if err := r.c.do(ctx, http.MethodPost, r.path, in, &created); err != nil {
		return created, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, created)
	return created, nil
}

// Update puts the input and replaces the matching cached entry by id.
func (r *Resource[T]) Update(ctx context.Context, id string, in any) (T, error) {
	var updated T

	if err := validateInput(in); err != nil {
		return updated, err
	}

	r.setLoading(true)
	defer r.setLoading(false)

	if err := r.c.do(ctx, http.MethodPut, r.path+"/"+id, in, &updated); err != nil {
		return updated, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.id(r.items[i]) == id {
			r.items[i] = updated
			break
		}
	}
	return updated, nil
}

// Delete removes the record server-side, then drops it from the cache.
func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	r.setLoading(true)
	defer r.setLoading(false)

	if err := r.c.do(ctx, http.MethodDelete, r.path+"/"+id, nil, nil); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.id(r.items[i]) == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			break
		}
	}
	return nil
}

func (r *Resource[T]) setLoading(v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = v
}

// validateInput runs the shared canonical schema client-side before the
// request goes out; the server re-validates independently.
func validateInput(in any) error {
	if in == nil {
		return nil
	}
	return dashboard.Validate(in)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&msg)
		if msg.Message == "" {
			msg.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: msg.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
