package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/colorprofile"
	"github.com/kballard/go-shellquote"

	"github.com/raphi011/valetsshing/internal/config"
	"github.com/raphi011/valetsshing/internal/history"
	"github.com/raphi011/valetsshing/internal/log"
	"github.com/raphi011/valetsshing/internal/output"
	"github.com/raphi011/valetsshing/internal/sshconfig"
	"github.com/raphi011/valetsshing/internal/ui/static"
	"github.com/raphi011/valetsshing/internal/ui/styles"
)

// Output formats accepted by --format
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// configFromContext returns the loaded config, or defaults when none is attached.
func configFromContext(ctx context.Context) *config.Config {
	if cfg := config.FromContext(ctx); cfg != nil {
		return cfg
	}
	cfg := config.Default()
	return &cfg
}

// loadHosts reads the SSH config selected by --config and the app config.
// Skipped includes are reported as warnings.
func loadHosts(ctx context.Context) ([]sshconfig.Host, error) {
	cfg := configFromContext(ctx)
	l := log.FromContext(ctx)

	path, err := cfg.SSHConfigPath(sshConfigFlag)
	if err != nil {
		return nil, err
	}

	result, err := sshconfig.Load(ctx, path, sshconfig.WithMaxDepth(cfg.MaxIncludeDepth))
	if err != nil {
		return nil, err
	}

	for _, s := range result.Skipped {
		l.Warn("skipped include %s", s)
	}

	l.Debug("loaded hosts", "count", len(result.Hosts), "skipped", len(result.Skipped))
	return result.Hosts, nil
}

// writeHosts prints hosts in the requested format.
func writeHosts(out *output.Printer, hosts []sshconfig.Host, format, colorMode string) error {
	switch format {
	case formatJSON:
		return out.JSON(hosts)
	case formatYAML:
		return out.YAML(hosts)
	case formatTable, "":
		w, opts := tableWriter(out.Writer(), colorMode)
		_, err := io.WriteString(w, static.RenderHostTable(hosts, opts...))
		return err
	default:
		return fmt.Errorf("invalid format %q: must be %q, %q, or %q", format, formatTable, formatJSON, formatYAML)
	}
}

// tableWriter picks the writer and header style for a color mode.
// In auto mode colors are downsampled to what w supports, which strips
// them entirely when w is not a terminal or NO_COLOR is set.
func tableWriter(w io.Writer, colorMode string) (io.Writer, []static.TableOption) {
	switch colorMode {
	case "never":
		return w, nil
	case "always":
		return w, []static.TableOption{static.WithHeaderStyle(styles.HeaderStyle)}
	default:
		return colorprofile.NewWriter(w, os.Environ()), []static.TableOption{static.WithHeaderStyle(styles.HeaderStyle)}
	}
}

// formatHost renders one host the way it would appear in an SSH config.
func formatHost(h sshconfig.Host) string {
	var b strings.Builder
	if h.Source != "" {
		fmt.Fprintf(&b, "# %s\n", h.Source)
	}
	fmt.Fprintf(&b, "Host %s\n", h.Host)

	for _, kv := range [][2]string{
		{"HostName", h.HostName},
		{"User", h.User},
		{"IdentityFile", h.IdentityFile},
		{"Port", h.Port},
	} {
		if kv[1] != "" {
			fmt.Fprintf(&b, "    %s %s\n", kv[0], kv[1])
		}
	}
	for _, s := range h.OptionalSettings {
		fmt.Fprintf(&b, "    %s\n", s)
	}
	return b.String()
}

// sshCommand returns a shell-safe ssh invocation for host.
func sshCommand(host string) string {
	return shellquote.Join("ssh", host)
}

// isPattern reports whether a Host value only matches via wildcards or
// negation, so there is nothing to connect to by that name.
func isPattern(host string) bool {
	return strings.ContainsAny(host, "*?!")
}

// pickableHosts returns hosts that name a concrete destination, without
// duplicates, in recent-first order when hist is non-nil.
func pickableHosts(hosts []sshconfig.Host, hist *history.History) []sshconfig.Host {
	var concrete []sshconfig.Host
	for _, h := range hosts {
		if !isPattern(h.Host) {
			concrete = append(concrete, h)
		}
	}

	names := sshconfig.Names(concrete)
	if hist != nil {
		names = hist.Rank(names)
	}

	seen := make(map[string]bool, len(names))
	picked := make([]sshconfig.Host, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		h, _ := sshconfig.FindHost(concrete, name)
		picked = append(picked, h)
	}
	return picked
}
