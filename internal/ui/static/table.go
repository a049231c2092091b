// Package static provides non-interactive terminal output components.
//
// This package contains components for rendering formatted output
// that does not require user interaction, such as the host table
// printed by "valetsshing list".
package static

import (
	"strconv"
	"strings"
	"unicode"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/raphi011/valetsshing/internal/sshconfig"
)

// HostColumns are the host table headers, in order.
var HostColumns = [...]string{"Host", "HostName", "User", "IdentityFile", "Port", "Optional Settings"}

const (
	columnCount    = len(HostColumns)
	settingsColumn = columnCount - 1
)

type tableOptions struct {
	headerStyle *lipgloss.Style
}

// TableOption configures RenderHostTable.
type TableOption func(*tableOptions)

// WithHeaderStyle renders header labels with style.
func WithHeaderStyle(style lipgloss.Style) TableOption {
	return func(o *tableOptions) {
		o.headerStyle = &style
	}
}

// ColumnWidths returns the content width of each host table column:
// the widest of the header and every value in that column. For the
// settings column each setting line counts on its own.
func ColumnWidths(hosts []sshconfig.Host) [columnCount]int {
	var widths [columnCount]int
	for i, h := range HostColumns {
		widths[i] = lipgloss.Width(h)
	}

	for _, h := range hosts {
		for i, v := range hostRow(h) {
			for _, line := range strings.Split(v, "\n") {
				widths[i] = max(widths[i], lipgloss.Width(line))
			}
		}
	}

	return widths
}

// RenderHostTable draws hosts as a box-drawing table.
//
// Each host is one row group: its optional settings stack one per line in
// the last column, with the host's attributes on the first line only. A
// divider separates the header from the data and each host from the next.
func RenderHostTable(hosts []sshconfig.Host, opts ...TableOption) string {
	var o tableOptions
	for _, opt := range opts {
		opt(&o)
	}

	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	headerStyle := cellStyle
	if o.headerStyle != nil {
		headerStyle = o.headerStyle.Padding(0, 1)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		Headers(HostColumns[:]...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, h := range hosts {
		t.Row(hostRow(h)...)
	}

	return t.String() + "\n"
}

// hostRow lays out one host as table cells.
func hostRow(h sshconfig.Host) []string {
	settings := make([]string, len(h.OptionalSettings))
	for i, s := range h.OptionalSettings {
		settings[i] = cell(s)
	}

	row := []string{cell(h.Host), cell(h.HostName), cell(h.User), cell(h.IdentityFile), cell(h.Port), ""}
	row[settingsColumn] = strings.Join(settings, "\n")
	return row
}

// cell normalizes a value for display. Tabs have no fixed width in a
// terminal, so they are shown as single spaces. Other control characters
// are shown escaped so they can neither reach the terminal nor skew widths.
func cell(s string) string {
	if !strings.ContainsFunc(s, unicode.IsControl) {
		return s
	}

	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '\t':
			b.WriteByte(' ')
		case unicode.IsControl(r):
			q := strconv.QuoteRune(r)
			b.WriteString(q[1 : len(q)-1])
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
