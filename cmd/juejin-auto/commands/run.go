package commands

import (
	"github.com/spf13/cobra"

	"github.com/keyasu/juejin-auto/internal/checkin"
	"github.com/keyasu/juejin-auto/internal/config"
	"github.com/keyasu/juejin-auto/internal/credential"
	"github.com/keyasu/juejin-auto/internal/juejin"
	"github.com/keyasu/juejin-auto/internal/notify"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Validate the stored cookie, perform the daily check-in and send a notification.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, log := setup()

		cred := credential.Parse(cfg.Juejin.Cookie)
		if cred.IsEmpty() {
			log.Warn("JUEJIN_COOKIE is empty, the run will fail credential validation")
		}

		client, err := juejin.NewClient(clientConfig(cfg), cred, log)
		if err != nil {
			log.Error("failed to initialize juejin client", "error", err)
			return
		}

		notifier := notify.NewFeishu(notify.Config{
			WebhookBase: cfg.Feishu.WebhookBase,
			Token:       cfg.Feishu.Token,
			TitlePrefix: cfg.Feishu.TitlePrefix,
			Timeout:     cfg.GetNotifyTimeout(),
		}, log)

		svc := checkin.NewService(client, notifier, log)
		out := svc.Run(cmd.Context())

		// outcomes are reported via log and notification, the process
		// always exits 0
		log.Info("run outcome", "kind", string(out.Kind), "ok", out.OK())
	},
}

func clientConfig(cfg *config.Config) juejin.ClientConfig {
	return juejin.ClientConfig{
		BaseURL:      cfg.Juejin.BaseURL,
		UserInfoPath: cfg.Juejin.UserInfoPath,
		CheckInPath:  cfg.Juejin.CheckInPath,
		UserAgent:    cfg.Juejin.UserAgent,
		Timeout:      cfg.GetRequestTimeout(),
		RetryCount:   cfg.Retry.Attempts,
		RetryWait:    cfg.GetRetryInterval(),
	}
}
