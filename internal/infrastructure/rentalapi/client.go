// Package rentalapi is the HTTP client of the OkBikes rental REST API.
package rentalapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"okbikes_admin/pkg/token"
	"strings"
	"time"
)

var ErrMissingBaseURL = errors.New("missing RENTAL_API_BASE_URL")

const (
	defaultTimeout   = 15 * time.Second
	maxErrorBodySize = 64 << 10
)

type Client struct {
	baseURL string
	http    *http.Client
	now     func() time.Time
}

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid RENTAL_API_BASE_URL: %w", err)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		now:     time.Now,
	}, nil
}

// request describes one call. public marks the login call, sent without a token.
type request struct {
	method      string
	path        string
	query       url.Values
	token       string
	public      bool
	body        io.Reader
	contentType string
}

func jsonBody(v any) (io.Reader, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(b), nil
}

// do sends the request and decodes a 2xx body into out when out is non-nil.
func (c *Client) do(ctx context.Context, r request, out any) error {
	if !r.public {
		if r.token == "" || token.Expired(r.token, c.now()) {
			log.Printf("[rentalapi][client] token missing or expired path=%s", r.path)
			return &APIError{Status: http.StatusUnauthorized, Message: "token expired", Path: r.path}
		}
	}

	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, r.method, u, r.body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		ct := r.contentType
		if ct == "" {
			ct = "application/json"
		}
		req.Header.Set("Content-Type", ct)
	}
	if !r.public {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	started := c.now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[rentalapi][client] %s %s transport error err=%v", r.method, r.path, err)
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, r.method, r.path, err)
	}
	defer resp.Body.Close()
	log.Printf("[rentalapi][client] %s %s status=%d took=%s", r.method, r.path, resp.StatusCode, c.now().Sub(started).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(resp.Body), Path: r.path}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode %s %s: %w", r.method, r.path, err)
	}
	return nil
}

// errorMessage pulls {message} out of an error payload, falling back to the
// raw body text.
func errorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBodySize))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
		return ""
	}
	return strings.TrimSpace(string(raw))
}

func idPath(format string, id int64) string {
	return fmt.Sprintf(format, id)
}
