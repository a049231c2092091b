package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/valetsshing/internal/config"
	"github.com/raphi011/valetsshing/internal/log"
	"github.com/raphi011/valetsshing/internal/output"
	"github.com/raphi011/valetsshing/internal/sshconfig"
)

func newListCmd() *cobra.Command {
	var (
		format     string
		jsonOutput bool
		filter     string
		color      string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List hosts from the SSH config",
		Aliases: []string{"ls", "lst"},
		GroupID: GroupHosts,
		Args:    cobra.NoArgs,
		Long: `List every Host block in the SSH config, including included files.

Hosts are shown in the order ssh reads them: file by file, with included
files spliced in where their Include directive appears.`,
		Example: `  valetsshing list                    # Table of all hosts
  valetsshing list -f prod            # Fuzzy filter by host pattern
  valetsshing list --format yaml      # Output as YAML
  valetsshing list --json             # Output as JSON
  valetsshing list -F ./ssh_config    # Read another SSH config`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)
			cfg := configFromContext(ctx)

			if jsonOutput {
				format = formatJSON
			}
			if color == "" {
				color = cfg.List.Color
			}
			if err := config.ValidateColorMode(color); err != nil {
				return err
			}

			hosts, err := loadHosts(ctx)
			if err != nil {
				return err
			}

			hosts = sshconfig.FilterHosts(hosts, filter)
			if filter != "" {
				l.Debug("filtered hosts", "query", filter, "matches", len(hosts))
			}

			if err := writeHosts(out, hosts, format, color); err != nil {
				return fmt.Errorf("write hosts: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatTable, "Output format: table, json or yaml")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON (same as --format json)")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Only show hosts whose pattern fuzzy-matches")
	cmd.Flags().StringVar(&color, "color", "", "Color mode: auto, always or never (default from config)")
	cmd.MarkFlagsMutuallyExclusive("format", "json")

	cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{formatTable, formatJSON, formatYAML}, cobra.ShellCompDirectiveNoFileComp))
	cmd.RegisterFlagCompletionFunc("color", cobra.FixedCompletions(
		config.ValidColorModes, cobra.ShellCompDirectiveNoFileComp))
	cmd.RegisterFlagCompletionFunc("filter", completeHosts)

	return cmd
}
