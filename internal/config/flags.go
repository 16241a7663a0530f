package config

import (
	"github.com/paularlott/cli"
)

// Flags returns the global command-line flags. Defaults are applied by Load
// so that a YAML file can sit between flags and defaults.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "vmanage-address",
			Aliases: []string{"a"},
			Usage:   "The IP address or hostname of the vManage server",
			EnvVars: []string{"VEDGEIP_VMANAGE_ADDRESS"},
			Global:  true,
		},
		&cli.IntFlag{
			Name:    "port",
			Usage:   "vManage HTTPS port (default 8443)",
			EnvVars: []string{"VEDGEIP_PORT"},
			Global:  true,
		},
		&cli.StringFlag{
			Name:    "password-file",
			Aliases: []string{"p"},
			Usage:   "The file to store or retrieve credentials (default " + DefaultPasswordFile + ")",
			EnvVars: []string{"VEDGEIP_PASSWORD_FILE"},
			Global:  true,
		},
		&cli.StringFlag{
			Name:    "log-file",
			Aliases: []string{"l"},
			Usage:   "The filename for logging (default " + DefaultLogFile + ")",
			EnvVars: []string{"VEDGEIP_LOG_FILE"},
			Global:  true,
		},
		&cli.StringFlag{
			Name:    "output-file",
			Aliases: []string{"o"},
			Usage:   "Base filename for the reports, .xlsx and .html are appended (default " + DefaultOutputFile + ")",
			EnvVars: []string{"VEDGEIP_OUTPUT_FILE"},
			Global:  true,
		},
		&cli.StringFlag{
			Name:    "ignore-list",
			Aliases: []string{"i"},
			Usage:   "Space separated interfaces to ignore, e.g. \"ge0/0.22 ge0/0.23\" (default ge0/0.22)",
			EnvVars: []string{"VEDGEIP_IGNORE_LIST"},
			Global:  true,
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Optional YAML config file",
			EnvVars: []string{"VEDGEIP_CONFIG"},
			Global:  true,
		},
		&cli.StringFlag{
			Name:    "timeout",
			Usage:   "HTTP timeout per request, e.g. 30s or 30; 0 or unset waits indefinitely",
			EnvVars: []string{"VEDGEIP_TIMEOUT"},
			Global:  true,
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Log level (trace, debug, info, warn, error)",
			EnvVars: []string{"VEDGEIP_LOG_LEVEL"},
			Global:  true,
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "Console log format (console, json)",
			EnvVars: []string{"VEDGEIP_LOG_FORMAT"},
			Global:  true,
		},
		&cli.BoolFlag{
			Name:   "include-empty-html",
			Usage:  "Also list devices without public interfaces in the HTML report",
			Global: true,
		},
	}
}

// FromCommand loads the config from the parsed command flags
func FromCommand(cmd *cli.Command) (*Config, error) {
	return Load(&Config{
		VManageAddress:   cmd.GetString("vmanage-address"),
		Port:             cmd.GetInt("port"),
		PasswordFile:     cmd.GetString("password-file"),
		LogFile:          cmd.GetString("log-file"),
		OutputFile:       cmd.GetString("output-file"),
		IgnoreList:       ParseList(cmd.GetString("ignore-list")),
		ConfigFile:       cmd.GetString("config"),
		TimeoutRaw:       cmd.GetString("timeout"),
		LogLevel:         cmd.GetString("log-level"),
		LogFormat:        cmd.GetString("log-format"),
		IncludeEmptyHTML: cmd.GetBool("include-empty-html"),
	})
}
