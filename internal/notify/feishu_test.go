package notify

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSend_SkipsWithoutToken(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	f := NewFeishu(Config{WebhookBase: srv.URL, Token: ""}, testLogger())
	f.Send(context.Background(), "Check-in succeeded", "Earned 5 points")

	assert.Zero(t, hits.Load(), "no token means no network call")
}

func TestSend_PostsTextPayload(t *testing.T) {
	type payload struct {
		MsgType string `json:"msg_type"`
		Content struct {
			Text string `json:"text"`
		} `json:"content"`
	}

	var (
		gotPath    string
		gotPayload payload
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Error(err)
		}
	}))
	defer srv.Close()

	f := NewFeishu(Config{
		WebhookBase: srv.URL,
		Token:       "tok-123",
		TitlePrefix: "【掘金自动签到】",
		Timeout:     time.Second,
	}, testLogger())

	f.Send(context.Background(), "Check-in succeeded", "Earned 5 points, 105 in total.")

	assert.Equal(t, "/tok-123", gotPath)
	assert.Equal(t, "text", gotPayload.MsgType)
	assert.Equal(t, "【掘金自动签到】Check-in succeeded\nEarned 5 points, 105 in total.", gotPayload.Content.Text)
}

func TestSend_SwallowsHTTPFailure(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	f := NewFeishu(Config{WebhookBase: srv.URL, Token: "tok", Timeout: time.Second}, testLogger())

	assert.NotPanics(t, func() {
		f.Send(context.Background(), "Check-in failed", "whatever")
	})
	assert.EqualValues(t, 1, hits.Load())
}

func TestSend_SwallowsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	f := NewFeishu(Config{WebhookBase: srv.URL, Token: "tok", Timeout: time.Second}, testLogger())

	assert.NotPanics(t, func() {
		f.Send(context.Background(), "Check-in failed", "whatever")
	})
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard{}.Send(context.Background(), "t", "b")
	})
}
