package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// Valid enum values for configuration fields.
var (
	ValidColorModes = []string{"auto", "always", "never"}
	ValidThemes     = []string{"default", "dracula", "nord", "gruvbox"}
)

// Validate checks paths, enums and numeric limits.
func (c *Config) Validate() error {
	if err := ValidatePath(c.SSHConfig, "ssh_config"); err != nil {
		return err
	}
	if err := ValidatePath(c.Pick.HistoryPath, "pick.history_path"); err != nil {
		return err
	}
	if c.MaxIncludeDepth < 1 {
		return fmt.Errorf("invalid max_include_depth %d: must be at least 1", c.MaxIncludeDepth)
	}
	if c.Pick.HistorySize < 1 {
		return fmt.Errorf("invalid pick.history_size %d: must be at least 1", c.Pick.HistorySize)
	}
	if err := ValidateColorMode(c.List.Color); err != nil {
		return err
	}
	return validateEnum(c.Theme, "theme", ValidThemes)
}

// ValidateColorMode validates a color mode value against ValidColorModes.
// Exported for use in CLI flag validation.
func ValidateColorMode(mode string) error {
	return validateEnum(mode, "color", ValidColorModes)
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
