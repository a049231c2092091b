// Package picker provides the interactive host picker used by
// "valetsshing pick".
//
// The picker renders to stderr so stdout stays free for the selected
// host, e.g. ssh "$(valetsshing pick)".
package picker

import (
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/sahilm/fuzzy"

	"github.com/raphi011/valetsshing/internal/ui/styles"
)

const maxVisible = 10

// Item is one selectable host.
type Item struct {
	Label  string // host pattern, matched against the filter
	Detail string // shown dimmed after the label, e.g. "deploy@10.0.0.5"
	Recent bool   // marked as recently picked
}

// Result is the outcome of Run.
type Result struct {
	Index     int // index into the items passed to Run; -1 when cancelled
	Cancelled bool
}

// itemSource implements fuzzy.Source over item labels.
type itemSource []Item

func (s itemSource) String(i int) string { return s[i].Label }
func (s itemSource) Len() int            { return len(s) }

type model struct {
	items     []Item
	filtered  []fuzzy.Match
	input     textinput.Model
	cursor    int
	selected  int
	done      bool
	cancelled bool
}

func newModel(items []Item) *model {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Prompt = "Host: "
	ti.CharLimit = 100
	ti.SetWidth(40)
	ti.Focus()

	m := &model{
		items:    items,
		input:    ti,
		selected: -1,
	}
	m.applyFilter()
	return m
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses. Other messages go to the text input.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		case "esc":
			if m.input.Value() != "" {
				m.input.SetValue("")
				m.applyFilter()
				return m, nil
			}
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			if m.cursor < len(m.filtered) {
				m.selected = m.filtered[m.cursor].Index
				m.done = true
				return m, tea.Quit
			}
			return m, nil
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.applyFilter()
	}
	return m, cmd
}

func (m *model) View() tea.View {
	if m.done || m.cancelled {
		return tea.NewView("")
	}
	return tea.NewView(m.render())
}

func (m *model) render() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := min(start+maxVisible, len(m.filtered))

	if start > 0 {
		b.WriteString(styles.MutedStyle.Render("  ↑ more above") + "\n")
	}

	for i := start; i < end; i++ {
		match := m.filtered[i]
		item := m.items[match.Index]

		cursor := "  "
		if i == m.cursor {
			cursor = styles.AccentStyle.Render(styles.CursorSymbol) + " "
		}

		label := highlight(item.Label, match.MatchedIndexes, i == m.cursor)
		if item.Recent {
			label += " " + styles.MutedStyle.Render(styles.RecentSymbol)
		}
		if item.Detail != "" {
			label += "  " + styles.MutedStyle.Render(item.Detail)
		}
		b.WriteString(cursor + label + "\n")
	}

	if end < len(m.filtered) {
		b.WriteString(styles.MutedStyle.Render("  ↓ more below") + "\n")
	}
	if len(m.filtered) == 0 {
		b.WriteString(styles.MutedStyle.Render("  No matching hosts") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("%d/%d • ↑/↓ navigate • enter select • esc cancel", len(m.filtered), len(m.items))))

	return styles.RoundedBorder.Render(b.String()) + "\n"
}

// highlight renders label with the matched runes emphasized. matched holds
// byte offsets into label.
func highlight(label string, matched []int, selected bool) string {
	base := styles.NormalStyle
	if selected {
		base = styles.AccentStyle
	}
	if len(matched) == 0 {
		return base.Render(label)
	}

	matchSet := make(map[int]bool, len(matched))
	for _, idx := range matched {
		matchSet[idx] = true
	}

	var b strings.Builder
	for i, r := range label {
		if matchSet[i] {
			b.WriteString(styles.HighlightStyle.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

func (m *model) applyFilter() {
	query := m.input.Value()
	if query == "" {
		m.filtered = make([]fuzzy.Match, len(m.items))
		for i, item := range m.items {
			m.filtered[i] = fuzzy.Match{Str: item.Label, Index: i}
		}
	} else {
		m.filtered = fuzzy.FindFrom(query, itemSource(m.items))
	}

	m.cursor = 0
}

// Run shows the picker on stderr and blocks until a host is chosen or
// the user cancels. An empty item list is reported as cancelled without
// starting the UI.
func Run(items []Item) (Result, error) {
	if len(items) == 0 {
		return Result{Index: -1, Cancelled: true}, nil
	}

	// Detect color profile for stderr (handles piped output, NO_COLOR, etc.)
	profile := colorprofile.Detect(os.Stderr, os.Environ())
	p := tea.NewProgram(newModel(items),
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)

	final, err := p.Run()
	if err != nil {
		return Result{Index: -1}, err
	}

	m := final.(*model)
	if m.cancelled || !m.done {
		return Result{Index: -1, Cancelled: true}, nil
	}
	return Result{Index: m.selected}, nil
}
