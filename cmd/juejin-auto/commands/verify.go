package commands

import (
	"github.com/spf13/cobra"

	"github.com/keyasu/juejin-auto/internal/checkin"
	"github.com/keyasu/juejin-auto/internal/credential"
	"github.com/keyasu/juejin-auto/internal/juejin"
	"github.com/keyasu/juejin-auto/internal/notify"
)

func init() {
	rootCmd.AddCommand(verifyCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check whether the stored cookie is still accepted, without checking in.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, log := setup()

		cred := credential.Parse(cfg.Juejin.Cookie)
		client, err := juejin.NewClient(clientConfig(cfg), cred, log)
		if err != nil {
			log.Error("failed to initialize juejin client", "error", err)
			return
		}

		svc := checkin.NewService(client, notify.Discard{}, log)

		if user, ok := svc.ValidateCredential(cmd.Context()); ok {
			log.Info("cookie is valid", "user", user)
		} else {
			log.Error("cookie is invalid or expired, export a fresh one")
		}
	},
}
