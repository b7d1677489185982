package cloud

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2/clientcredentials"
)

var (
	ErrNotConfigured = errors.New("remote sync is not configured")
	ErrRemoteStatus  = errors.New("remote returned a non-success status")
)

// Config holds the remote endpoint and client-credentials settings.
type Config struct {
	BaseURL        string
	TokenURL       string
	ClientID       string
	ClientSecret   string
	RequestTimeout time.Duration
}

// Client talks to the central sync endpoint. Tokens are fetched and refreshed
// by the client-credentials token source under the hood.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
}

// NewClient creates a sync client, or ErrNotConfigured when settings are missing.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" || cfg.TokenURL == "" || cfg.ClientID == "" {
		return nil, ErrNotConfigured
	}

	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL: cfg.BaseURL,
		http:    cc.Client(context.Background()),
		timeout: timeout,
	}, nil
}

// Push uploads changed rows for one table. The remote upserts by primary key.
func (c *Client) Push(ctx context.Context, table string, rows []map[string]interface{}) error {
	if len(rows) == 0 {
		return nil
	}

	body, err := json.Marshal(map[string]interface{}{"rows": rows})
	if err != nil {
		return fmt.Errorf("encode %s rows: %w", table, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/sync/"+url.PathEscape(table), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("push %s: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("push %s: %w (%d)", table, ErrRemoteStatus, resp.StatusCode)
	}
	return nil
}

// Pull fetches remote rows for one table changed since the checkpoint.
func (c *Client) Pull(ctx context.Context, table string, since time.Time) ([]map[string]interface{}, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/sync/%s?since=%s", c.baseURL, url.PathEscape(table), url.QueryEscape(since.UTC().Format(time.RFC3339)))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pull %s: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("pull %s: %w (%d)", table, ErrRemoteStatus, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Rows []map[string]interface{} `json:"rows"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode %s rows: %w", table, err)
	}
	return payload.Rows, nil
}
