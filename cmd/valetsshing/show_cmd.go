package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/valetsshing/internal/output"
	"github.com/raphi011/valetsshing/internal/sshconfig"
)

func newShowCmd() *cobra.Command {
	var (
		jsonOutput  bool
		showCommand bool
	)

	cmd := &cobra.Command{
		Use:               "show <host>",
		Short:             "Show one host",
		GroupID:           GroupHosts,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeHosts,
		Long: `Show the settings of one host, with the file it was read from.

The host is matched exactly against Host patterns. When several blocks
share a pattern, the first one wins, as it does for ssh.`,
		Example: `  valetsshing show web            # Print the host block
  valetsshing show web --json     # Output as JSON
  valetsshing show web --command  # Print the ssh command for it`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			hosts, err := loadHosts(ctx)
			if err != nil {
				return err
			}

			h, ok := sshconfig.FindHost(hosts, args[0])
			if !ok {
				return fmt.Errorf("host %q not found", args[0])
			}

			switch {
			case jsonOutput:
				return out.JSON(h)
			case showCommand:
				out.Println(sshCommand(h.Host))
			default:
				out.Print(formatHost(h))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&showCommand, "command", false, "Print the ssh command instead of the settings")
	cmd.MarkFlagsMutuallyExclusive("json", "command")

	return cmd
}
