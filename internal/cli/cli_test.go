package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/deckforge/deckforge/pkg/brand"
	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/style"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Acme", "acme"},
		{"spaces to dashes", "Acme Corp", "acme-corp"},
		{"mixed separators", "acme_corp brand", "acme-corp-brand"},
		{"strips punctuation", "Acme, Inc.", "acme-inc"},
		{"trims leading dash", "-Acme-", "acme"},
		{"unicode dropped", "Café Brand", "caf-brand"},
		{"empty falls back", "", "deck"},
		{"only punctuation falls back", "!!!", "deck"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeName(tt.in); got != tt.want {
				t.Errorf("sanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoadStateEmptyPathYieldsDefaults(t *testing.T) {
	state, err := loadState("")
	if err != nil {
		t.Fatalf("loadState(\"\") returned error: %v", err)
	}
	def := brand.NewState()
	if state.Name != def.Name {
		t.Errorf("default state name = %q, want %q", state.Name, def.Name)
	}
	if len(state.Layouts) != len(def.Layouts) {
		t.Errorf("default state has %d layouts, want %d", len(state.Layouts), len(def.Layouts))
	}
}

func TestLoadStatePartialDocumentOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brand.json")
	if err := os.WriteFile(path, []byte(`{"name":"Acme Corp"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	state, err := loadState(path)
	if err != nil {
		t.Fatalf("loadState returned error: %v", err)
	}
	if state.Name != "Acme Corp" {
		t.Errorf("name = %q, want %q", state.Name, "Acme Corp")
	}
	// Fields not in the document keep their defaults.
	def := brand.NewState()
	if state.StyleFamily != def.StyleFamily {
		t.Errorf("style family = %q, want default %q", state.StyleFamily, def.StyleFamily)
	}
}

func TestLoadStateMissingFile(t *testing.T) {
	_, err := loadState(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if errors.GetCode(err) != errors.ErrCodeInvalidInput {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
}

func TestLoadStateRejectsInvalidColors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brand.json")
	if err := os.WriteFile(path, []byte(`{"tokens":{"colors":{"primary":"not-a-color"}}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := loadState(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if errors.GetCode(err) != errors.ErrCodeValidation {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeValidation)
	}
}

func TestDescribeFamilyCoversAllFamilies(t *testing.T) {
	for _, f := range style.Families {
		desc := describeFamily(f)
		if !strings.Contains(desc, "spacing") {
			t.Errorf("describeFamily(%s) missing spacing line:\n%s", f, desc)
		}
		if !strings.Contains(desc, "charts") {
			t.Errorf("describeFamily(%s) missing charts line:\n%s", f, desc)
		}
	}
}

func TestFamilyListModelNavigation(t *testing.T) {
	m := newFamilyListModel()
	if m.cursor != 0 {
		t.Fatalf("initial cursor = %d, want 0", m.cursor)
	}

	// Up at the top is a no-op.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(familyListModel)
	if m.cursor != 0 {
		t.Errorf("cursor after up at top = %d, want 0", m.cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(familyListModel)
	if m.cursor != 1 {
		t.Errorf("cursor after down = %d, want 1", m.cursor)
	}

	// Down at the bottom is a no-op.
	m.cursor = len(m.families) - 1
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(familyListModel)
	if m.cursor != len(m.families)-1 {
		t.Errorf("cursor moved past last family: %d", m.cursor)
	}
}

func TestFamilyListModelEnterSelects(t *testing.T) {
	m := newFamilyListModel()
	m.cursor = 2

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(familyListModel)
	if m.selected == nil {
		t.Fatal("enter should select the highlighted family")
	}
	if *m.selected != m.families[2] {
		t.Errorf("selected %s, want %s", *m.selected, m.families[2])
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestFamilyListModelViewMarksCursor(t *testing.T) {
	m := newFamilyListModel()
	view := m.View()
	if !strings.Contains(view, "> "+string(m.families[0])) {
		t.Errorf("view should mark the first family as selected:\n%s", view)
	}
}
