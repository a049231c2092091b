package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/valetsshing/internal/history"
	"github.com/raphi011/valetsshing/internal/log"
	"github.com/raphi011/valetsshing/internal/output"
	"github.com/raphi011/valetsshing/internal/sshconfig"
	"github.com/raphi011/valetsshing/internal/ui/picker"
)

func newPickCmd() *cobra.Command {
	var copyCmd bool

	cmd := &cobra.Command{
		Use:     "pick",
		Short:   "Pick a host interactively",
		GroupID: GroupHosts,
		Args:    cobra.NoArgs,
		Long: `Pick a host with fuzzy search and print its name.

The picker draws on stderr, so the selection can be captured:

  ssh "$(valetsshing pick)"

Recently picked hosts are listed first unless pick.history is off.
Wildcard patterns such as "*" or "*.internal" are not offered.`,
		Example: `  ssh "$(valetsshing pick)"   # Connect to the picked host
  valetsshing pick --copy      # Copy "ssh <host>" to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)
			cfg := configFromContext(ctx)

			if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
				return errors.New("pick needs an interactive terminal; use 'valetsshing list' instead")
			}

			hosts, err := loadHosts(ctx)
			if err != nil {
				return err
			}

			var hist *history.History
			if cfg.Pick.History {
				hist, err = history.Load(cfg.Pick.HistoryPath)
				if err != nil {
					l.Warn("load history: %v", err)
					hist = nil
				}
			}

			hosts = pickableHosts(hosts, hist)
			if len(hosts) == 0 {
				return errors.New("no hosts to pick from")
			}

			res, err := picker.Run(pickerItems(hosts, hist))
			if err != nil {
				return fmt.Errorf("run picker: %w", err)
			}
			if res.Cancelled {
				return nil
			}

			host := hosts[res.Index].Host
			l.Debug("picked host", "host", host)

			if cfg.Pick.History {
				if err := history.RecordAccess(cfg.Pick.HistoryPath, host, cfg.Pick.HistorySize); err != nil {
					l.Warn("save history: %v", err)
				}
			}

			if copyCmd {
				command := sshCommand(host)
				if err := clipboard.WriteAll(command); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				l.Printf("Copied: %s\n", command)
				return nil
			}

			out.Println(host)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&copyCmd, "copy", "c", false, "Copy the ssh command to the clipboard instead of printing the host")

	return cmd
}

// pickerItems describes hosts for the picker. Hosts in hist are marked recent.
func pickerItems(hosts []sshconfig.Host, hist *history.History) []picker.Item {
	recent := make(map[string]bool)
	if hist != nil {
		for _, e := range hist.Entries {
			recent[e.Host] = true
		}
	}

	items := make([]picker.Item, len(hosts))
	for i, h := range hosts {
		detail := h.HostName
		if h.User != "" && detail != "" {
			detail = h.User + "@" + detail
		}
		if h.Port != "" && detail != "" {
			detail += ":" + h.Port
		}
		items[i] = picker.Item{Label: h.Host, Detail: detail, Recent: recent[h.Host]}
	}
	return items
}
