package form

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/socialfeed/infra/editor"
	"github.com/CrestNiraj12/socialfeed/tui/common"
)

// --- Fields ---

// Field describes one prompt.
type Field struct {
	Label       string
	Placeholder string
	Value       string // Initial value
	Long        bool   // Long text: may be composed in $EDITOR
}

// --- Messages ---

// SubmittedMsg carries the raw values, one per field, in field order.
type SubmittedMsg struct {
	Values []string
}

// CancelledMsg is sent when the user leaves the form without submitting.
type CancelledMsg struct{}

// editorFinishedMsg is sent after the external editor exits.
type editorFinishedMsg struct {
	field   int
	tmpPath string
	err     error
}

// --- Model ---

// Model is a vertical list of text inputs. Enter on the last field submits.
type Model struct {
	title  string
	fields []Field
	inputs []textinput.Model
	focus  int
	editor *editor.EnvEditor
	keys   common.KeyMap
	err    error
}

// New builds a form. ed may be nil, which disables ctrl+e.
func New(title string, fields []Field, ed *editor.EnvEditor) Model {
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Prompt = "› "
		ti.Placeholder = f.Placeholder
		ti.CharLimit = 500
		ti.SetValue(f.Value)
		inputs[i] = ti
	}
	m := Model{
		title:  title,
		fields: fields,
		inputs: inputs,
		editor: ed,
		keys:   common.DefaultKeyMap(),
	}
	m.setFocus(0)
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Values returns the current raw values.
func (m Model) Values() []string {
	out := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		out[i] = in.Value()
	}
	return out
}

// Focused returns the index of the focused field.
func (m Model) Focused() int {
	return m.focus
}

func (m *Model) setFocus(i int) {
	if len(m.inputs) == 0 {
		return
	}
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

// Update handles messages for the form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case editorFinishedMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("editor: %w", msg.err)
			return m, nil
		}
		content, err := m.editor.ReadContent(msg.tmpPath)
		if err != nil {
			m.err = err
			return m, nil
		}
		if content != "" && msg.field < len(m.inputs) {
			m.inputs[msg.field].SetValue(content)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return CancelledMsg{} }

		case key.Matches(msg, m.keys.Select):
			if m.focus < len(m.inputs)-1 {
				m.setFocus(m.focus + 1)
				return m, nil
			}
			values := m.Values()
			return m, func() tea.Msg { return SubmittedMsg{Values: values} }

		case key.Matches(msg, m.keys.NextField):
			m.setFocus(m.focus + 1)
			return m, nil

		case key.Matches(msg, m.keys.PrevField):
			m.setFocus(m.focus - 1)
			return m, nil

		case key.Matches(msg, m.keys.Editor):
			if m.editor == nil || len(m.fields) == 0 || !m.fields[m.focus].Long {
				return m, nil
			}
			return m, m.launchEditor(m.focus)
		}
	}

	if len(m.inputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// launchEditor uses tea.ExecProcess so Bubble Tea releases the terminal
// while $EDITOR runs.
func (m *Model) launchEditor(field int) tea.Cmd {
	cmd, tmpPath, err := m.editor.Cmd(m.inputs[field].Value(), m.title+" · "+m.fields[field].Label)
	if err != nil {
		m.err = fmt.Errorf("preparing editor: %w", err)
		return nil
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{field: field, tmpPath: tmpPath, err: err}
	})
}
