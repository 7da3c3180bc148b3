// Package juejin talks to the juejin.cn growth API with a stored
// session cookie attached.
package juejin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/keyasu/juejin-auto/internal/credential"
)

// ClientConfig carries the fixed request settings. It is read once at
// construction and never mutated afterwards.
type ClientConfig struct {
	BaseURL      string
	UserInfoPath string
	CheckInPath  string
	UserAgent    string
	Timeout      time.Duration
	RetryCount   int
	RetryWait    time.Duration
}

// Client executes requests against the platform API, impersonating a
// browser session. Transport-level failures are retried a fixed number
// of times with a fixed wait; HTTP error statuses are returned as-is.
type Client struct {
	http *resty.Client
	cfg  ClientConfig
	log  *slog.Logger
}

func NewClient(cfg ClientConfig, cred *credential.Credential, log *slog.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RetryCount <= 0 {
		cfg.RetryCount = 3
	}
	if cfg.RetryWait <= 0 {
		cfg.RetryWait = 60 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount - 1).
		SetRetryWaitTime(cfg.RetryWait).
		SetRetryMaxWaitTime(cfg.RetryWait).
		SetHeaders(map[string]string{
			"User-Agent":      cfg.UserAgent,
			"Accept-Language": "zh-CN,zh;q=0.9",
			"Referer":         "https://juejin.cn/",
			"Origin":          "https://juejin.cn",
		}).
		SetCookies(cred.Cookies())

	// retry only on transport errors, never on HTTP error statuses
	httpClient.AddRetryCondition(func(_ *resty.Response, err error) bool {
		return err != nil
	})

	httpClient.AddRetryHook(func(resp *resty.Response, err error) {
		attempt := 0
		if resp != nil && resp.Request != nil {
			attempt = resp.Request.Attempt
		}
		log.Warn("request failed, retrying", "attempt", attempt, "error", err)
	})

	return &Client{
		http: httpClient,
		cfg:  cfg,
		log:  log,
	}, nil
}

// UserInfo fetches the current user's profile. Used to verify that the
// stored cookie still grants access.
func (c *Client) UserInfo(ctx context.Context) (*Reply, error) {
	return c.do(ctx, resty.MethodGet, c.cfg.UserInfoPath)
}

// CheckIn performs the daily check-in.
func (c *Client) CheckIn(ctx context.Context) (*Reply, error) {
	return c.do(ctx, resty.MethodPost, c.cfg.CheckInPath)
}

func (c *Client) do(ctx context.Context, method, path string) (*Reply, error) {
	resp, err := c.http.R().SetContext(ctx).Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	return &Reply{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
	}, nil
}
