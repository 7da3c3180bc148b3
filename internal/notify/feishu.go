// Package notify delivers run outcomes to a Feishu group chat through
// a bot webhook.
package notify

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Config carries the webhook settings. An empty Token disables delivery.
type Config struct {
	WebhookBase string
	Token       string
	TitlePrefix string
	Timeout     time.Duration
}

// Feishu posts text messages to a bot webhook. Delivery is best effort:
// every failure is logged and swallowed, a broken webhook must never
// fail the run it reports on.
type Feishu struct {
	webhookURL string
	prefix     string
	http       *resty.Client
	log        *slog.Logger
}

func NewFeishu(cfg Config, log *slog.Logger) *Feishu {
	webhookURL := ""
	if cfg.Token != "" {
		webhookURL = strings.TrimSuffix(cfg.WebhookBase, "/") + "/" + cfg.Token
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &Feishu{
		webhookURL: webhookURL,
		prefix:     cfg.TitlePrefix,
		http:       resty.New().SetTimeout(cfg.Timeout),
		log:        log,
	}
}

// Send posts "<prefix>title\nbody" as a text message. With no token
// configured it logs a skip and does nothing.
func (f *Feishu) Send(ctx context.Context, title, body string) {
	if f.webhookURL == "" {
		f.log.Info("feishu token not configured, skipping notification")
		return
	}

	payload := map[string]interface{}{
		"msg_type": "text",
		"content": map[string]string{
			"text": f.prefix + title + "\n" + body,
		},
	}

	resp, err := f.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(f.webhookURL)
	if err != nil {
		f.log.Error("failed to send feishu notification", "error", err)
		return
	}

	if resp.StatusCode() != http.StatusOK {
		f.log.Error("feishu notification rejected",
			"status", resp.StatusCode(),
			"body", resp.String(),
		)
		return
	}

	f.log.Info("feishu notification sent")
}

// Discard is a Notifier that drops every message. Used by commands that
// only report through the log.
type Discard struct{}

func (Discard) Send(context.Context, string, string) {}
