package picker

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/sahilm/fuzzy"

	"github.com/raphi011/valetsshing/internal/ui/styles"
)

// keyMsg creates a KeyPressMsg for testing.
func keyMsg(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	default:
		r := []rune(key)[0]
		return tea.KeyPressMsg{Code: r, Text: key}
	}
}

func typeText(m *model, text string) {
	for _, r := range text {
		m.Update(keyMsg(string(r)))
	}
}

func testItems() []Item {
	return []Item{
		{Label: "web-prod", Detail: "deploy@10.0.0.5"},
		{Label: "db-prod", Recent: true},
		{Label: "web-staging"},
	}
}

func TestModel_SelectWithArrows(t *testing.T) {
	t.Parallel()

	m := newModel(testItems())
	m.Update(keyMsg("down"))
	m.Update(keyMsg("down"))
	m.Update(keyMsg("down")) // stays on last item
	m.Update(keyMsg("up"))
	_, cmd := m.Update(keyMsg("enter"))

	if !m.done {
		t.Fatal("expected done after enter")
	}
	if cmd == nil {
		t.Error("expected quit command after enter")
	}
	if m.selected != 1 {
		t.Errorf("selected = %d, want 1", m.selected)
	}
}

func TestModel_FilterNarrowsList(t *testing.T) {
	t.Parallel()

	m := newModel(testItems())
	typeText(m, "stag")

	if got := m.input.Value(); got != "stag" {
		t.Fatalf("filter = %q, want %q", got, "stag")
	}
	if len(m.filtered) != 1 {
		t.Fatalf("expected 1 match, got %d", len(m.filtered))
	}

	m.Update(keyMsg("enter"))
	if m.selected != 2 {
		t.Errorf("selected = %d, want 2 (web-staging)", m.selected)
	}
}

func TestModel_NoMatches(t *testing.T) {
	t.Parallel()

	m := newModel(testItems())
	typeText(m, "zzz")

	if len(m.filtered) != 0 {
		t.Fatalf("expected no matches, got %d", len(m.filtered))
	}
	m.Update(keyMsg("enter"))
	if m.done {
		t.Error("enter with no matches should not select")
	}
	if !strings.Contains(m.render(), "No matching hosts") {
		t.Error("render should report no matches")
	}
}

func TestModel_EscClearsThenCancels(t *testing.T) {
	t.Parallel()

	m := newModel(testItems())
	typeText(m, "db")

	m.Update(keyMsg("esc"))
	if m.cancelled {
		t.Fatal("first esc should clear the filter, not cancel")
	}
	if m.input.Value() != "" {
		t.Errorf("filter = %q, want empty", m.input.Value())
	}
	if len(m.filtered) != 3 {
		t.Errorf("expected all 3 items after clearing, got %d", len(m.filtered))
	}

	m.Update(keyMsg("esc"))
	if !m.cancelled {
		t.Error("second esc should cancel")
	}
}

func TestModel_CtrlCCancels(t *testing.T) {
	t.Parallel()

	m := newModel(testItems())
	typeText(m, "web")
	m.Update(keyMsg("ctrl+c"))

	if !m.cancelled {
		t.Error("ctrl+c should cancel")
	}
}

func TestModel_Render(t *testing.T) {
	t.Parallel()

	m := newModel(testItems())
	out := m.render()

	for _, want := range []string{"web-prod", "deploy@10.0.0.5", "db-prod", "web-staging", "3/3"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
}

func TestModel_RenderScrolls(t *testing.T) {
	t.Parallel()

	items := make([]Item, maxVisible+5)
	for i := range items {
		items[i] = Item{Label: "host" + string(rune('a'+i))}
	}

	m := newModel(items)
	if out := m.render(); !strings.Contains(out, "more below") || strings.Contains(out, "more above") {
		t.Errorf("initial render should only show more below:\n%s", out)
	}

	for range maxVisible + 2 {
		m.Update(keyMsg("down"))
	}
	if out := m.render(); !strings.Contains(out, "more above") {
		t.Errorf("scrolled render should show more above:\n%s", out)
	}
}

func TestRun_EmptyItems(t *testing.T) {
	t.Parallel()

	res, err := Run(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Cancelled || res.Index != -1 {
		t.Errorf("Run(nil) = %+v, want cancelled with index -1", res)
	}
}

func TestHighlight(t *testing.T) {
	t.Parallel()

	got := highlight("web", []int{0, 2}, false)
	for _, r := range "web" {
		if !strings.Contains(got, string(r)) {
			t.Errorf("highlight dropped %q: %q", r, got)
		}
	}
}

func TestHighlight_NonASCII(t *testing.T) {
	t.Parallel()

	label := "bücher-db"
	matches := fuzzy.Find("db", []string{label})
	if len(matches) != 1 {
		t.Fatalf("expected one match, got %d", len(matches))
	}

	got := highlight(label, matches[0].MatchedIndexes, false)

	for _, r := range "db" {
		if !strings.Contains(got, styles.HighlightStyle.Render(string(r))) {
			t.Errorf("matched %q not highlighted: %q", r, got)
		}
	}
	for _, r := range "ch-" {
		if strings.Contains(got, styles.HighlightStyle.Render(string(r))) {
			t.Errorf("unmatched %q highlighted: %q", r, got)
		}
	}
}
