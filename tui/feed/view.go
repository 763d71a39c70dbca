package feed

import (
	"fmt"
	"strings"

	"github.com/CrestNiraj12/socialfeed/tui/common"
)

// View renders the visible window of the result.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(common.SectionStyle.Render(m.title))
	b.WriteString("\n\n")

	end := min(m.offset+m.pageSize(), len(m.lines))
	b.WriteString(strings.Join(m.lines[m.offset:end], "\n"))
	b.WriteString("\n")

	if m.status != "" {
		if strings.HasPrefix(m.status, "Error") {
			b.WriteString(common.ErrorStyle.Render(m.status))
		} else {
			b.WriteString(common.SuccessStyle.Render(m.status))
		}
		b.WriteString("\n")
	}

	hint := "  esc: back"
	if len(m.lines) > m.pageSize() {
		hint += fmt.Sprintf(" • ↑/↓: scroll (%d/%d)", m.offset+1, len(m.lines))
	}
	if m.target != nil {
		hint += " • l/1: like • d/2: dislike"
	}
	b.WriteString(common.StatusBarStyle.Render(hint))
	return b.String()
}
