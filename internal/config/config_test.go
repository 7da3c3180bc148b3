package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigKeys lists every env var that Load() reads.
var allConfigKeys = []string{
	"ENV",
	"JUEJIN_COOKIE",
	"JUEJIN_BASE_URL",
	"JUEJIN_USER_INFO_PATH",
	"JUEJIN_CHECK_IN_PATH",
	"JUEJIN_USER_AGENT",
	"JUEJIN_TIMEOUT",
	"FEISHU_TOKEN",
	"FEISHU_WEBHOOK_BASE",
	"FEISHU_TITLE_PREFIX",
	"FEISHU_TIMEOUT",
	"RETRY_ATTEMPTS",
	"RETRY_INTERVAL",
	"LOG_FILE",
}

// isolateConfigEnv saves and unsets all env vars Load() reads so tests
// don't inherit values from the host environment.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		key := key
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "", cfg.Juejin.Cookie)
	assert.Equal(t, "https://api.juejin.cn", cfg.Juejin.BaseURL)
	assert.Equal(t, "/user_api/v1/user/get", cfg.Juejin.UserInfoPath)
	assert.Equal(t, "/growth_api/v1/check_in", cfg.Juejin.CheckInPath)
	assert.Equal(t, "", cfg.Feishu.Token)
	assert.Equal(t, "https://open.feishu.cn/open-apis/bot/v2/hook", cfg.Feishu.WebhookBase)
	assert.Equal(t, 3, cfg.Retry.Attempts)
	assert.Equal(t, 60, cfg.Retry.Interval)
	assert.Equal(t, "juejin_checkin_log.txt", cfg.Log.File)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("JUEJIN_COOKIE", "sessionid=abc; uid=42")
	t.Setenv("FEISHU_TOKEN", "tok-123")
	t.Setenv("RETRY_ATTEMPTS", "5")
	t.Setenv("RETRY_INTERVAL", "1")
	t.Setenv("LOG_FILE", "/tmp/checkin.log")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "sessionid=abc; uid=42", cfg.Juejin.Cookie)
	assert.Equal(t, "tok-123", cfg.Feishu.Token)
	assert.Equal(t, 5, cfg.Retry.Attempts)
	assert.Equal(t, 1, cfg.Retry.Interval)
	assert.Equal(t, "/tmp/checkin.log", cfg.Log.File)
}

func TestDurationGetters(t *testing.T) {
	cfg := &Config{
		Juejin: JuejinConfig{Timeout: 30},
		Feishu: FeishuConfig{Timeout: 10},
		Retry:  RetryConfig{Interval: 60},
	}

	assert.Equal(t, 30*time.Second, cfg.GetRequestTimeout())
	assert.Equal(t, 10*time.Second, cfg.GetNotifyTimeout())
	assert.Equal(t, 60*time.Second, cfg.GetRetryInterval())
}
