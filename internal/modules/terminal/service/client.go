package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"trade_gateway/internal/modules/config"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
)

// Client talks to the trading-terminal HTTP API. All calls are read-only.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		http: &http.Client{
			Timeout: time.Duration(cfg.Terminal.TimeoutSeconds) * time.Second,
		},
		baseURL: strings.TrimRight(cfg.Terminal.BaseURL, "/"),
		token:   cfg.Terminal.Token,
	}
}

func (c *Client) get(ctx context.Context, requestPath string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+requestPath, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("auth-token", c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "do request")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read body")
	}

	if resp.StatusCode/100 != 2 {
		return parseAPIError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := sonic.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode: %w; body=%s", err, string(data))
	}
	return nil
}
