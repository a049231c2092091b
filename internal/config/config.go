package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvSSHConfig overrides the ssh_config setting.
const EnvSSHConfig = "VALETSSHING_SSH_CONFIG"

// Defaults
const (
	DefaultSSHConfig       = "~/.ssh/config"
	DefaultMaxIncludeDepth = 16
	DefaultTheme           = "default"
	DefaultColor           = "auto"
	DefaultHistorySize     = 20
)

// ListConfig holds settings for "valetsshing list"
type ListConfig struct {
	Color string `toml:"color" json:"color"` // "auto", "always" or "never"
}

// PickConfig holds settings for "valetsshing pick"
type PickConfig struct {
	History     bool   `toml:"history" json:"history"`
	HistoryPath string `toml:"history_path" json:"history_path"`
	HistorySize int    `toml:"history_size" json:"history_size"`
}

// Config holds the valetsshing configuration
type Config struct {
	SSHConfig       string     `toml:"ssh_config" json:"ssh_config"`
	MaxIncludeDepth int        `toml:"max_include_depth" json:"max_include_depth"`
	Theme           string     `toml:"theme" json:"theme"`
	List            ListConfig `toml:"list" json:"list"`
	Pick            PickConfig `toml:"pick" json:"pick"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		SSHConfig:       DefaultSSHConfig,
		MaxIncludeDepth: DefaultMaxIncludeDepth,
		Theme:           DefaultTheme,
		List: ListConfig{
			Color: DefaultColor,
		},
		Pick: PickConfig{
			History:     true,
			HistoryPath: "~/.config/valetsshing/history.json",
			HistorySize: DefaultHistorySize,
		},
	}
}

// Path returns the path to the config file
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "valetsshing", "config.toml"), nil
}

// Load reads config from ~/.config/valetsshing/config.toml.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return finalize(Default())
	}
	return LoadFile(path)
}

// LoadFile reads config from path. See Load.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return finalize(Default())
		}
		return fallback(fmt.Errorf("failed to read config file: %w", err))
	}

	// Decoding into the defaults keeps values for keys the file omits.
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return fallback(fmt.Errorf("failed to parse config file: %w", err))
	}

	if err := cfg.Validate(); err != nil {
		return fallback(err)
	}

	return finalize(cfg)
}

// fallback returns the finalized defaults alongside err.
func fallback(err error) (Config, error) {
	cfg, _ := finalize(Default())
	return cfg, err
}

// finalize applies the env override and expands ~ in paths.
func finalize(cfg Config) (Config, error) {
	if env := os.Getenv(EnvSSHConfig); env != "" {
		cfg.SSHConfig = env
	}

	sshConfig, err := ExpandPath(cfg.SSHConfig)
	if err != nil {
		return cfg, fmt.Errorf("expand ssh_config: %w", err)
	}
	cfg.SSHConfig = sshConfig

	historyPath, err := ExpandPath(cfg.Pick.HistoryPath)
	if err != nil {
		return cfg, fmt.Errorf("expand pick.history_path: %w", err)
	}
	cfg.Pick.HistoryPath = historyPath

	return cfg, nil
}

// SSHConfigPath returns the SSH config file to read.
// A non-empty override (the --config flag) wins over the loaded setting.
func (c *Config) SSHConfigPath(override string) (string, error) {
	if override != "" {
		return ExpandPath(override)
	}
	if c.SSHConfig == "" {
		return ExpandPath(DefaultSSHConfig)
	}
	return c.SSHConfig, nil
}

// ExpandPath expands ~ to the user's home directory
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// Encode writes cfg as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

type ctxKey struct{}

// WithConfig attaches a config to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns nil if none is attached.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	return nil
}

// DefaultContent returns the commented default config file written by
// "valetsshing config init".
func DefaultContent() string {
	return defaultConfig
}

const defaultConfig = `# valetsshing configuration

# Root SSH client config to read. Include directives are followed from here.
# Must be an absolute path or start with ~
# Can be overridden with VALETSSHING_SSH_CONFIG or --config
ssh_config = "~/.ssh/config"

# Maximum nesting depth for Include directives
max_include_depth = 16

# Color theme: "default", "dracula", "nord" or "gruvbox"
theme = "default"

[list]
# Header colors: "auto" (only on a terminal), "always" or "never"
color = "auto"

[pick]
# Rank recently picked hosts first
history = true
history_path = "~/.config/valetsshing/history.json"
history_size = 20
`
