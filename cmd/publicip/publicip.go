package publicip

import (
	"context"
	"fmt"

	"github.com/paularlott/cli"
	"github.com/paularlott/logger"

	"github.com/martinsuchenak/vedgeip/internal/config"
	"github.com/martinsuchenak/vedgeip/internal/controller"
	"github.com/martinsuchenak/vedgeip/internal/credentials"
	"github.com/martinsuchenak/vedgeip/internal/inventory"
	"github.com/martinsuchenak/vedgeip/internal/log"
	"github.com/martinsuchenak/vedgeip/internal/report"
)

// Run fetches devices and interfaces from the controller and writes both
// reports. Fetch failures only shrink the result; report write failures
// are returned.
func Run(ctx context.Context, cfg *config.Config, logger logger.Logger) error {
	logger = log.OrNop(logger)

	store := credentials.NewStore(cfg.PasswordFile, logger)
	if !store.Exists() {
		logger.Info("Credential file not found, prompting", "path", cfg.PasswordFile)
		// A failed prompt is logged by the store; the run continues unauthenticated
		_ = store.Prompt()
	}
	creds := store.Load()
	if creds.Empty() {
		logger.Warn("No credentials loaded, requests will be unauthenticated")
	}

	client := controller.NewClient(controller.Options{
		Address:     cfg.VManageAddress,
		Port:        cfg.Port,
		Credentials: creds,
		Timeout:     cfg.Timeout,
	}, logger)

	raw := client.Devices(ctx)
	logger.Info("Fetched devices from the vManage server", "count", len(raw))
	if len(raw) == 0 {
		logger.Warn("No devices returned, no reports written")
		return nil
	}

	devices := inventory.Format(raw, cfg.Keys, logger)
	devices = inventory.Enrich(ctx, devices, client, cfg.IgnoreList, logger)
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("run cancelled: %w", err)
	}

	xlsxPath, htmlPath := report.Paths(cfg.OutputFile)
	if err := report.WriteSpreadsheet(devices, xlsxPath, cfg.Keys); err != nil {
		return fmt.Errorf("writing spreadsheet: %w", err)
	}
	logger.Info("Spreadsheet written", "path", xlsxPath)

	if err := report.WriteHTML(devices, htmlPath, cfg.Keys, report.HTMLOptions{IncludeEmpty: cfg.IncludeEmptyHTML}); err != nil {
		return fmt.Errorf("writing html report: %w", err)
	}
	logger.Info("HTML report written", "path", htmlPath)

	return nil
}

// Action is the run handler for the root command
func Action(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.FromCommand(cmd)
	if err != nil {
		return err
	}
	if err := cfg.RequireController(); err != nil {
		return err
	}

	logger, closeLog, err := log.New(log.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer closeLog()
	logger = log.WithRunID(logger)

	logger.Info("Configuration loaded", "source", cfg.String(), "vmanage", cfg.VManageAddress, "output", cfg.OutputFile)
	return Run(ctx, cfg, logger)
}
