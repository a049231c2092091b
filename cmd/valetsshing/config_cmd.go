package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raphi011/valetsshing/internal/config"
	"github.com/raphi011/valetsshing/internal/log"
	"github.com/raphi011/valetsshing/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage valetsshing configuration.

Config file: ~/.config/valetsshing/config.toml`,
		Example: `  valetsshing config init     # Create default config
  valetsshing config show     # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  valetsshing config init      # Create config
  valetsshing config init -f   # Overwrite existing config
  valetsshing config init -s   # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			l := log.FromContext(ctx)

			if stdout {
				out.Print(config.DefaultContent())
				return nil
			}

			configPath, err := config.Path()
			if err != nil {
				return err
			}

			created, err := writeDefaultConfig(configPath, force)
			if err != nil {
				return err
			}
			l.Printf("Created config file: %s\n", created)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

// writeDefaultConfig writes the default config to path. An existing file is
// only replaced when force is set.
func writeDefaultConfig(path string, force bool) (string, error) {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(config.DefaultContent()), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show effective configuration after defaults, the config file and
VALETSSHING_SSH_CONFIG are applied.`,
		Example: `  valetsshing config show         # Show config as TOML
  valetsshing config show --json  # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			cfg := configFromContext(ctx)

			if jsonOutput {
				return out.JSON(cfg)
			}
			return cfg.Encode(out.Writer())
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
