package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/socialfeed/app"
	"github.com/CrestNiraj12/socialfeed/infra/clock"
	"github.com/CrestNiraj12/socialfeed/infra/editor"
	"github.com/CrestNiraj12/socialfeed/tui/common"
	"github.com/CrestNiraj12/socialfeed/tui/feed"
	"github.com/CrestNiraj12/socialfeed/tui/form"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Feed       app.SocialFeed
	Editor     *editor.EnvEditor
	Clock      clock.Clock
	ViewBudget int
	WrapWidth  int
	Notice     string // Shown on the menu at start-up
}

type activeView int

const (
	menuView activeView = iota
	formView
	resultView
)

// resultMsg is delivered when an action's feed operation completes.
type resultMsg struct {
	result
}

// App is the root Bubble Tea model. It routes between the menu, the form of
// the chosen action and the result view.
type App struct {
	deps    Deps
	actions []action
	active  activeView
	cursor  int
	current int // Index of the running action
	busy    bool
	digits  string // Menu number typed so far
	form    form.Model
	result  feed.Model
	keys    common.KeyMap
	status  string
	isErr   bool
	height  int
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	return App{
		deps:    deps,
		actions: defaultActions(),
		active:  menuView,
		keys:    common.DefaultKeyMap(),
		status:  deps.Notice,
	}
}

// Init has nothing to load; the feed is already in memory.
func (a App) Init() tea.Cmd {
	return nil
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.height = msg.Height
		if a.active == resultView {
			a.result, _ = a.result.Update(msg)
		}
		return a, nil

	case tea.KeyMsg:
		// Global key bindings, handled regardless of active view.
		if key.Matches(msg, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		if a.active == menuView {
			return a.updateMenu(msg)
		}

	case form.SubmittedMsg:
		if a.busy {
			return a, nil
		}
		a.busy = true
		return a, a.runAction(a.current, msg.Values)

	case form.CancelledMsg:
		a.active = menuView
		a.setStatus("Cancelled.", false)
		return a, nil

	case resultMsg:
		a.busy = false
		return a.showResult(msg.result)

	case feed.BackMsg:
		a.active = menuView
		return a, nil

	case feed.ReactMsg:
		if a.busy {
			return a, nil
		}
		a.busy = true
		return a, a.react(msg)

	case feed.ReactResultMsg:
		a.busy = false
		a.result, _ = a.result.Update(msg)
		return a, nil
	}

	// Delegate to the active sub-model.
	switch a.active {
	case formView:
		updated, cmd := a.form.Update(msg)
		a.form = updated
		return a, cmd
	case resultView:
		updated, cmd := a.result.Update(msg)
		a.result = updated
		return a, cmd
	}

	return a, nil
}

func (a App) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Number shortcuts mirror the menu numbering. A lone 0 is quit.
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && isDigit(msg.Runes[0]) &&
		(a.digits != "" || msg.Runes[0] != '0') {
		return a.typeDigit(msg.Runes[0])
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Up):
		a.digits = ""
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case key.Matches(msg, a.keys.Down):
		a.digits = ""
		if a.cursor < len(a.actions)-1 {
			a.cursor++
		}
		return a, nil

	case key.Matches(msg, a.keys.Select):
		a.digits = ""
		return a.open(a.cursor)

	case key.Matches(msg, a.keys.Back):
		a.digits = ""
		return a, nil
	}
	return a, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// typeDigit extends the typed menu number. The entry opens as soon as no
// longer number could match; otherwise the cursor moves to it and enter
// opens it.
func (a App) typeDigit(r rune) (tea.Model, tea.Cmd) {
	n, _ := strconv.Atoi(a.digits + string(r))
	if n < 1 || n > len(a.actions) {
		if a.digits != "" {
			a.digits = ""
			return a.typeDigit(r)
		}
		return a, nil
	}

	a.cursor = n - 1
	if n*10 > len(a.actions) {
		a.digits = ""
		return a.open(n - 1)
	}
	a.digits = strconv.Itoa(n)
	return a, nil
}

// open starts the action at idx: a form when it needs input, otherwise the
// feed operation right away.
func (a App) open(idx int) (tea.Model, tea.Cmd) {
	act := a.actions[idx]
	a.current = idx
	a.status = ""
	if act.fields == nil {
		if a.busy {
			return a, nil
		}
		a.busy = true
		return a, a.runAction(idx, nil)
	}
	a.form = form.New(act.label, act.fields(a.deps), a.deps.Editor)
	a.active = formView
	return a, a.form.Init()
}

// runAction invokes exactly one feed operation for the action.
func (a App) runAction(idx int, values []string) tea.Cmd {
	act := a.actions[idx]
	deps := a.deps
	return func() tea.Msg {
		return resultMsg{act.run(deps, values)}
	}
}

func (a App) react(msg feed.ReactMsg) tea.Cmd {
	svc := a.deps.Feed
	return func() tea.Msg {
		var err error
		res := feed.ReactResultMsg{Like: msg.Like}
		if msg.Like {
			res.Post, err = svc.Like(msg.PostID)
		} else {
			res.Post, err = svc.Dislike(msg.PostID)
		}
		res.Err = err
		return res
	}
}

func (a App) showResult(r result) (tea.Model, tea.Cmd) {
	switch {
	case r.err != nil:
		// Keep the form open so the input can be corrected.
		a.setStatus("Error: "+r.err.Error(), true)
		return a, nil
	case r.target != nil:
		a.result = feed.NewReact(r.title, *r.target, a.deps.WrapWidth, a.height)
		a.active = resultView
		a.status = ""
	case r.body != "":
		a.result = feed.New(r.title, r.body, a.deps.WrapWidth, a.height)
		a.active = resultView
		a.status = ""
	default:
		a.active = menuView
		a.setStatus(r.status, false)
	}
	return a, nil
}

func (a *App) setStatus(s string, isErr bool) {
	a.status = s
	a.isErr = isErr
}

// View renders the active sub-model.
func (a App) View() string {
	var s string

	switch a.active {
	case menuView:
		s = a.menuView()
	case formView:
		s = a.form.View()
	case resultView:
		s = a.result.View()
	}

	// Append transient status if present.
	if a.status != "" && a.active != resultView {
		if a.isErr {
			s += "\n" + common.ErrorStyle.Render(a.status)
		} else {
			s += "\n" + common.StatusBarStyle.Render(a.status)
		}
	}

	return s
}

func (a App) menuView() string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("socialfeed"))
	b.WriteString("\n")
	b.WriteString(common.TaglineStyle.Render("profiles, posts and comments that fade after their last view"))
	b.WriteString("\n\n")

	for i, act := range a.actions {
		label := fmt.Sprintf("%2d. %s", i+1, act.label)
		if i == a.cursor {
			b.WriteString(common.ActionActiveStyle.Render("› " + label))
		} else {
			b.WriteString(common.ActionInactiveStyle.Render("  " + label))
		}
		b.WriteString("\n")
	}
	b.WriteString(common.StatusBarStyle.Render(fmt.Sprintf("  ↑/↓: move • enter or 1-%d: open • q/0: quit", len(a.actions))))
	return b.String()
}
