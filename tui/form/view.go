package form

import (
	"strings"

	"github.com/CrestNiraj12/socialfeed/tui/common"
)

// View renders the form.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(common.SectionStyle.Render(m.title))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		b.WriteString(common.LabelStyle.Render(f.Label))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(common.ErrorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	hint := "  enter: next/submit • tab/shift+tab: move • esc: back"
	if m.editor != nil && len(m.fields) > 0 && m.fields[m.focus].Long {
		hint += " • ctrl+e: $EDITOR"
	}
	b.WriteString(common.StatusBarStyle.Render(hint))
	return b.String()
}
