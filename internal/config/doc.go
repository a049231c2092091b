// Package config handles loading and validation of valetsshing configuration.
//
// Configuration is read from ~/.config/valetsshing/config.toml with an
// environment variable override for the SSH config path.
//
// # Configuration Sources (highest priority first)
//
//   - --config / -F flag (applied by the CLI via [Config.SSHConfigPath])
//   - VALETSSHING_SSH_CONFIG env var
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - ssh_config: root SSH client config to read (default: "~/.ssh/config")
//   - max_include_depth: how deep Include directives may nest (default: 16)
//   - theme: color preset for the table header and picker
//   - list.color: "auto", "always" or "never"
//   - pick.history: rank recently picked hosts first
//
// # Path Validation
//
// Paths must be absolute or start with ~ (no relative paths like "." or
// "..") to avoid confusion about the working directory. A leading ~ is
// expanded when the config is loaded.
package config
