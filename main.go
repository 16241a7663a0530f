package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/paularlott/cli"
	"github.com/paularlott/cli/env"

	"github.com/martinsuchenak/vedgeip/cmd/creds"
	"github.com/martinsuchenak/vedgeip/cmd/publicip"
	"github.com/martinsuchenak/vedgeip/internal/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Load .env file if it exists
	env.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := &cli.Command{
		Name:        "vedgeip",
		Version:     fmt.Sprintf("%s (%s, %s)", version, commit, date),
		Usage:       "Report public IPv4 interfaces of vManage devices",
		Description: "Retrieve device and interface information from vManage and write the devices' public IPv4 interfaces to an .xlsx and an .html report",
		Flags:       config.Flags(),
		Run:         publicip.Action,
		Commands: []*cli.Command{
			creds.Command(),
		},
	}

	if err := rootCmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
