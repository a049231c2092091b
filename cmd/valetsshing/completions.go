package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/valetsshing/internal/config"
	"github.com/raphi011/valetsshing/internal/sshconfig"
)

// completeHosts provides host pattern completion from the SSH config.
// Only the first positional argument is completed.
func completeHosts(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if config.FromContext(ctx) == nil {
		cfg, _ := config.Load()
		ctx = config.WithConfig(ctx, &cfg)
	}

	hosts, err := loadHosts(ctx)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	return matchHostNames(hosts, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// matchHostNames returns concrete host names starting with prefix.
func matchHostNames(hosts []sshconfig.Host, prefix string) []string {
	var matches []string
	seen := make(map[string]bool)
	for _, h := range hosts {
		if isPattern(h.Host) || seen[h.Host] {
			continue
		}
		if strings.HasPrefix(h.Host, prefix) {
			seen[h.Host] = true
			matches = append(matches, h.Host)
		}
	}
	return matches
}
