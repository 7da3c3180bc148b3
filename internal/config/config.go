package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env    string       `mapstructure:"env"`
	Juejin JuejinConfig `mapstructure:"juejin"`
	Feishu FeishuConfig `mapstructure:"feishu"`
	Retry  RetryConfig  `mapstructure:"retry"`
	Log    LogConfig    `mapstructure:"log"`
}

type JuejinConfig struct {
	Cookie       string `mapstructure:"cookie"`
	BaseURL      string `mapstructure:"base_url"`
	UserInfoPath string `mapstructure:"user_info_path"`
	CheckInPath  string `mapstructure:"check_in_path"`
	UserAgent    string `mapstructure:"user_agent"`
	Timeout      int    `mapstructure:"timeout"`
}

type FeishuConfig struct {
	Token       string `mapstructure:"token"`
	WebhookBase string `mapstructure:"webhook_base"`
	TitlePrefix string `mapstructure:"title_prefix"`
	Timeout     int    `mapstructure:"timeout"`
}

type RetryConfig struct {
	Attempts int `mapstructure:"attempts"`
	Interval int `mapstructure:"interval"`
}

type LogConfig struct {
	File string `mapstructure:"file"`
}

// Load reads configuration from defaults, an optional config/local.yaml
// and environment variables. Keys map to env vars with "." replaced by
// "_", so the session cookie comes from JUEJIN_COOKIE and the webhook
// token from FEISHU_TOKEN.
func Load() (*Config, error) {

	setDefaults()

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("local")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("env", "local")

	// Juejin defaults
	viper.SetDefault("juejin.cookie", "")
	viper.SetDefault("juejin.base_url", "https://api.juejin.cn")
	viper.SetDefault("juejin.user_info_path", "/user_api/v1/user/get")
	viper.SetDefault("juejin.check_in_path", "/growth_api/v1/check_in")
	viper.SetDefault("juejin.user_agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	viper.SetDefault("juejin.timeout", 30)

	// Feishu defaults
	viper.SetDefault("feishu.token", "")
	viper.SetDefault("feishu.webhook_base", "https://open.feishu.cn/open-apis/bot/v2/hook")
	viper.SetDefault("feishu.title_prefix", "【掘金自动签到】")
	viper.SetDefault("feishu.timeout", 10)

	// Retry defaults
	viper.SetDefault("retry.attempts", 3)
	viper.SetDefault("retry.interval", 60)

	// Log defaults
	viper.SetDefault("log.file", "juejin_checkin_log.txt")
}

func (c *Config) GetRequestTimeout() time.Duration {
	return time.Duration(c.Juejin.Timeout) * time.Second
}

func (c *Config) GetNotifyTimeout() time.Duration {
	return time.Duration(c.Feishu.Timeout) * time.Second
}

func (c *Config) GetRetryInterval() time.Duration {
	return time.Duration(c.Retry.Interval) * time.Second
}
