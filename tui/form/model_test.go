package form

import (
	"os"
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/socialfeed/infra/editor"
)

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestForm_EnterAdvancesThenSubmits(t *testing.T) {
	m := New("Create profile", []Field{{Label: "ID"}, {Label: "Name"}}, nil)

	m = typeText(m, "7")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || m.Focused() != 1 {
		t.Fatalf("enter on first field should move focus, focus=%d", m.Focused())
	}

	m = typeText(m, "ana")
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected submit command on last field")
	}
	msg, ok := cmd().(SubmittedMsg)
	if !ok {
		t.Fatalf("expected SubmittedMsg")
	}
	if !reflect.DeepEqual(msg.Values, []string{"7", "ana"}) {
		t.Fatalf("unexpected values %q", msg.Values)
	}
}

func TestForm_TabWrapsAndEscCancels(t *testing.T) {
	m := New("x", []Field{{Label: "A"}, {Label: "B", Value: "prefill"}}, nil)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Focused() != 1 {
		t.Fatalf("shift+tab from first field should wrap to last, got %d", m.Focused())
	}
	if m.Values()[1] != "prefill" {
		t.Fatalf("initial value lost")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("expected cancel command")
	}
	if _, ok := cmd().(CancelledMsg); !ok {
		t.Fatalf("expected CancelledMsg")
	}
}

func TestForm_EditorOnlyForLongFields(t *testing.T) {
	t.Setenv("EDITOR", "true")
	m := New("Post", []Field{{Label: "ID"}, {Label: "Text", Long: true}}, editor.NewEnvEditor())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlE})
	if cmd != nil {
		t.Fatalf("ctrl+e on a short field must do nothing")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlE})
	if cmd == nil {
		t.Fatalf("ctrl+e on a long field should launch the editor")
	}
}

func TestForm_EditorResultFillsField(t *testing.T) {
	ed := editor.NewEnvEditor()
	m := New("Post", []Field{{Label: "Text", Long: true}}, ed)

	_, path, err := ed.Cmd("", "")
	if err != nil {
		t.Fatalf("cmd failed: %v", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		t.Fatalf("open temp failed: %v", err)
	}
	_, _ = f.WriteString("written in editor")
	_ = f.Close()

	m, _ = m.Update(editorFinishedMsg{field: 0, tmpPath: path})
	if got := m.Values()[0]; got != "written in editor" {
		t.Fatalf("unexpected field value %q", got)
	}
}
