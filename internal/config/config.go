package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/martinsuchenak/vedgeip/internal/model"
)

// Defaults
const (
	DefaultPort         = 8443
	DefaultPasswordFile = "vManageCreds.txt"
	DefaultLogFile      = "RetrieveCiscoPublicIP.log"
	DefaultOutputFile   = "CiscoPublicIPs"
	DefaultTimeout      = time.Duration(0) // no client-side limit
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
)

// DefaultIgnoreList holds interfaces skipped unless configured otherwise
var DefaultIgnoreList = []string{"ge0/0.22"}

// Config holds the run configuration
type Config struct {
	VManageAddress   string        `yaml:"vmanage_address"`
	Port             int           `yaml:"port" validate:"min=1,max=65535"`
	PasswordFile     string        `yaml:"password_file" validate:"required"`
	LogFile          string        `yaml:"log_file"`
	OutputFile       string        `yaml:"output_file" validate:"required"`
	IgnoreList       []string      `yaml:"ignore_list" validate:"dive,required"`
	Keys             []string      `yaml:"keys" validate:"min=1,dive,required"`
	Timeout          time.Duration `yaml:"-" validate:"min=0"`
	TimeoutRaw       string        `yaml:"timeout"`
	LogLevel         string        `yaml:"log_level" validate:"oneof=trace debug info warn error"`
	LogFormat        string        `yaml:"log_format" validate:"oneof=console json"`
	IncludeEmptyHTML bool          `yaml:"include_empty_html"`
	ConfigFile       string        `yaml:"-"` // Path to the YAML file (if loaded)
}

var validate = validator.New()

// Defaults returns a config with every default applied
func Defaults() *Config {
	return &Config{
		Port:         DefaultPort,
		PasswordFile: DefaultPasswordFile,
		LogFile:      DefaultLogFile,
		OutputFile:   DefaultOutputFile,
		IgnoreList:   append([]string(nil), DefaultIgnoreList...),
		Keys:         append([]string(nil), model.DefaultKeys...),
		Timeout:      DefaultTimeout,
		LogLevel:     DefaultLogLevel,
		LogFormat:    DefaultLogFormat,
	}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Command-line parameters and their environment variables (passed as opts)
// 2. YAML file named by opts.ConfigFile (if set)
// 3. Default values
//
// Empty fields in opts are treated as unset.
func Load(opts *Config) (*Config, error) {
	cfg := Defaults()

	if opts != nil && opts.ConfigFile != "" {
		if err := loadFromFile(cfg, opts.ConfigFile); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		cfg.ConfigFile = opts.ConfigFile
	}

	if opts != nil {
		cfg.VManageAddress = coalesce(opts.VManageAddress, cfg.VManageAddress)
		cfg.PasswordFile = coalesce(opts.PasswordFile, cfg.PasswordFile)
		cfg.LogFile = coalesce(opts.LogFile, cfg.LogFile)
		cfg.OutputFile = coalesce(opts.OutputFile, cfg.OutputFile)
		cfg.LogLevel = coalesce(opts.LogLevel, cfg.LogLevel)
		cfg.LogFormat = coalesce(opts.LogFormat, cfg.LogFormat)
		if opts.Port != 0 {
			cfg.Port = opts.Port
		}
		if opts.IgnoreList != nil {
			cfg.IgnoreList = opts.IgnoreList
		}
		if opts.Keys != nil {
			cfg.Keys = opts.Keys
		}
		if opts.TimeoutRaw != "" {
			d, err := parseTimeout(opts.TimeoutRaw)
			if err != nil {
				return nil, err
			}
			cfg.Timeout = d
		}
		if opts.IncludeEmptyHTML {
			cfg.IncludeEmptyHTML = true
		}
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFromFile overlays the YAML file onto cfg
func loadFromFile(cfg *Config, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	fileCfg := &Config{}
	if err := yaml.Unmarshal(data, fileCfg); err != nil {
		return err
	}

	cfg.VManageAddress = coalesce(fileCfg.VManageAddress, cfg.VManageAddress)
	cfg.PasswordFile = coalesce(fileCfg.PasswordFile, cfg.PasswordFile)
	cfg.LogFile = coalesce(fileCfg.LogFile, cfg.LogFile)
	cfg.OutputFile = coalesce(fileCfg.OutputFile, cfg.OutputFile)
	cfg.LogLevel = coalesce(fileCfg.LogLevel, cfg.LogLevel)
	cfg.LogFormat = coalesce(fileCfg.LogFormat, cfg.LogFormat)
	if fileCfg.Port != 0 {
		cfg.Port = fileCfg.Port
	}
	// An explicit empty list in the file clears the default ignore list
	if fileCfg.IgnoreList != nil {
		cfg.IgnoreList = fileCfg.IgnoreList
	}
	if len(fileCfg.Keys) > 0 {
		cfg.Keys = fileCfg.Keys
	}
	if fileCfg.TimeoutRaw != "" {
		d, err := parseTimeout(fileCfg.TimeoutRaw)
		if err != nil {
			return err
		}
		cfg.Timeout = d
	}
	cfg.IncludeEmptyHTML = cfg.IncludeEmptyHTML || fileCfg.IncludeEmptyHTML
	return nil
}

// Validate checks the config. The controller address is checked separately
// by RequireController since not every command talks to the controller.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid configuration: %s failed %q check", verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// RequireController checks that a usable controller address is set
func (c *Config) RequireController() error {
	if err := validate.Var(c.VManageAddress, "required,hostname_rfc1123|ip"); err != nil {
		return fmt.Errorf("invalid vmanage address %q", c.VManageAddress)
	}
	return nil
}

// String returns a string representation of the config source
func (c *Config) String() string {
	if c.ConfigFile != "" {
		return fmt.Sprintf("config file (%s)", c.ConfigFile)
	}
	return "flags and environment variables"
}

// ParseList splits a space separated list, as given on the command line
func ParseList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Fields(s)
}

// parseTimeout accepts a Go duration or a plain number of seconds
func parseTimeout(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	d, err := time.ParseDuration(s + "s")
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q", s)
	}
	return d, nil
}

// coalesce returns the first non-empty string value
func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
