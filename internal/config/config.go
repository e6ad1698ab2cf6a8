package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/mycli/internal/model"
)

const (
	// EnvConfigPath names an explicit configuration file.
	EnvConfigPath = "MYCLI_CONFIG"

	// EnvVerbose forces verbose logging when set to a true value.
	EnvVerbose = "MYCLI_VERBOSE"

	// appDir is the directory under os.UserConfigDir searched for a config file.
	appDir = "mycli"
)

// searchNames lists the file names looked up inside the user config
// directory, in priority order.
var searchNames = []string{"config.yaml", "config.yml", "config.jsonc", "config.json"}

// Config holds the tunable parts of executable resolution.
type Config struct {
	// Binary is the executable name resolved and delegated to.
	Binary string `yaml:"binary" json:"binary"`

	// LookupCommand is the PATH lookup utility used by the first
	// resolution strategy.
	LookupCommand string `yaml:"lookup_command" json:"lookupCommand"`

	// ProbeArgs are passed to Binary by the fallback probe strategy.
	ProbeArgs []string `yaml:"probe_args" json:"probeArgs"`

	// Verbose enables [verbose] diagnostics on stderr.
	Verbose bool `yaml:"verbose" json:"verbose"`

	// Path records which file the values came from. Empty for defaults.
	Path string `yaml:"-" json:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Binary:        "zarf",
		LookupCommand: "which",
		ProbeArgs:     []string{"--version"},
	}
}

// Load reads configuration from a file.
// If path is specified, that file must exist.
// If path is empty, the user config directory is searched and defaults
// are returned when nothing is found.
func Load(path string) (*Config, error) {
	if path == "" {
		path = discover()
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to read config file %s", path), err)
	}

	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to parse config file %s", path), err)
	}
	cfg.Path = path
	return cfg, nil
}

// FromEnv loads the file named by MYCLI_CONFIG (or the discovered one) and
// applies MYCLI_VERBOSE on top.
func FromEnv() (*Config, error) {
	cfg, err := Load(os.Getenv(EnvConfigPath))
	if err != nil {
		return nil, err
	}
	if v, ok := os.LookupEnv(EnvVerbose); ok {
		if b, perr := strconv.ParseBool(strings.TrimSpace(v)); perr == nil {
			cfg.Verbose = b
		}
	}
	return cfg, nil
}

// Parse decodes data according to the file extension ext and fills unset
// fields from Default. Extensions other than .json and .jsonc are parsed
// as YAML.
func Parse(data []byte, ext string) (*Config, error) {
	cfg := Default()

	switch strings.ToLower(ext) {
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize restores defaults for fields explicitly blanked in the file
// and rejects values that can never resolve.
func (c *Config) normalize() error {
	def := Default()
	c.Binary = strings.TrimSpace(c.Binary)
	c.LookupCommand = strings.TrimSpace(c.LookupCommand)
	if c.Binary == "" {
		c.Binary = def.Binary
	}
	if c.LookupCommand == "" {
		c.LookupCommand = def.LookupCommand
	}
	if len(c.ProbeArgs) == 0 {
		c.ProbeArgs = def.ProbeArgs
	}
	if strings.ContainsAny(c.Binary, " \t\n") {
		return errors.New("binary must be a single executable name or path")
	}
	return nil
}

// discover returns the first existing config file in the user config
// directory, or "" when there is none.
func discover() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	for _, name := range searchNames {
		candidate := filepath.Join(dir, appDir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}
