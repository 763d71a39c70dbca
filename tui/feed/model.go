package feed

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/socialfeed/domain"
	"github.com/CrestNiraj12/socialfeed/tui/common"
)

// chromeLines is the height taken by the title and status bar.
const chromeLines = 5

// --- Messages ---

// BackMsg is sent when the user leaves the result view.
type BackMsg struct{}

// ReactMsg asks the root model to like or dislike the target post.
type ReactMsg struct {
	PostID int
	Like   bool
}

// ReactResultMsg carries the post after a like or dislike.
type ReactResultMsg struct {
	Post domain.Post
	Like bool
	Err  error
}

// --- Model ---

// Model shows the result of one feed operation as a scrollable block. When a
// target post is set the view also accepts like/dislike keys for it.
type Model struct {
	title  string
	lines  []string
	offset int
	height int
	width  int
	target *domain.Post
	status string
	keys   common.KeyMap
}

// New creates a result view over an already rendered body.
func New(title, body string, width, height int) Model {
	m := Model{
		title:  title,
		width:  width,
		height: height,
		keys:   common.DefaultKeyMap(),
	}
	m.setBody(body)
	return m
}

// NewReact creates a result view for a single post that can be liked or disliked.
func NewReact(title string, p domain.Post, width, height int) Model {
	m := New(title, common.RenderPost(p, width), width, height)
	m.target = &p
	return m
}

// Target returns the post being reacted to, if any.
func (m Model) Target() (domain.Post, bool) {
	if m.target == nil {
		return domain.Post{}, false
	}
	return *m.target, true
}

func (m *Model) setBody(body string) {
	m.lines = strings.Split(body, "\n")
	m.clampOffset()
}

func (m Model) pageSize() int {
	if m.height <= chromeLines {
		return len(m.lines)
	}
	return m.height - chromeLines
}

func (m *Model) clampOffset() {
	maxOffset := len(m.lines) - m.pageSize()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// Update handles messages for the result view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.clampOffset()
		return m, nil

	case ReactResultMsg:
		if msg.Err != nil {
			m.status = "Error: " + msg.Err.Error()
			return m, nil
		}
		p := msg.Post
		m.target = &p
		m.setBody(common.RenderPost(p, m.width))
		if msg.Like {
			m.status = fmt.Sprintf("Liked post #%d.", p.ID)
		} else {
			m.status = fmt.Sprintf("Disliked post #%d.", p.ID)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Quit):
			return m, func() tea.Msg { return BackMsg{} }

		case key.Matches(msg, m.keys.Up):
			m.offset--
			m.clampOffset()
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.offset++
			m.clampOffset()
			return m, nil

		case key.Matches(msg, m.keys.Like), key.Matches(msg, m.keys.Dislike):
			if m.target == nil {
				return m, nil
			}
			react := ReactMsg{PostID: m.target.ID, Like: key.Matches(msg, m.keys.Like)}
			return m, func() tea.Msg { return react }
		}
	}
	return m, nil
}
