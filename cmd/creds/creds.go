package creds

import (
	"context"
	"fmt"

	"github.com/paularlott/cli"

	"github.com/martinsuchenak/vedgeip/internal/config"
	"github.com/martinsuchenak/vedgeip/internal/credentials"
	"github.com/martinsuchenak/vedgeip/internal/log"
)

// Command prompts for controller credentials and overwrites the
// credential file
func Command() *cli.Command {
	return &cli.Command{
		Name:        "creds",
		Usage:       "Store vManage credentials",
		Description: "Prompt for the vManage username and password and write them to the credential file. The file is obscured, not encrypted.",
		Run: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.FromCommand(cmd)
			if err != nil {
				return err
			}

			logger, closeLog, err := log.New(log.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
			if err != nil {
				return fmt.Errorf("setting up logging: %w", err)
			}
			defer closeLog()

			store := credentials.NewStore(cfg.PasswordFile, logger)
			if store.Exists() {
				logger.Info("Overwriting existing credential file", "path", store.Path())
			}
			return store.Prompt()
		},
	}
}
