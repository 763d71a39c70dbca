package tui

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/CrestNiraj12/socialfeed/app"
	"github.com/CrestNiraj12/socialfeed/domain"
	"github.com/CrestNiraj12/socialfeed/infra/clock"
	"github.com/CrestNiraj12/socialfeed/infra/index"
	"github.com/CrestNiraj12/socialfeed/tui/feed"
	"github.com/CrestNiraj12/socialfeed/tui/form"
)

func newTestApp(t *testing.T) (App, *app.Service) {
	t.Helper()
	profiles := index.NewProfileIndex()
	svc := app.NewService(profiles, index.NewPostIndex(profiles))
	svc.Logger = log.New(io.Discard, "", 0)
	return NewApp(Deps{Feed: svc, Clock: clock.NewStubClock(), ViewBudget: 2, WrapWidth: 60}), svc
}

func press(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	m, cmd := a.Update(msg)
	return m.(App), cmd
}

// drain runs cmd and feeds its messages back until nothing is left.
func drain(t *testing.T, a App, cmd tea.Cmd) App {
	t.Helper()
	for i := 0; cmd != nil && i < 10; i++ {
		a, cmd = press(t, a, cmd())
	}
	return a
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// choose types the menu number and confirms it with enter when the
// number alone does not open the entry.
func choose(t *testing.T, a App, n int) (App, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, r := range strconv.Itoa(n) {
		a, cmd = press(t, a, runeKey(r))
	}
	if a.active == menuView && !a.busy {
		a, cmd = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	}
	return a, cmd
}

func submit(t *testing.T, a App, values ...string) App {
	t.Helper()
	a, cmd := press(t, a, form.SubmittedMsg{Values: values})
	return drain(t, a, cmd)
}

func TestMenu_NumberOpensForm(t *testing.T) {
	a, _ := newTestApp(t)

	a, cmd := press(t, a, runeKey('3'))
	if a.active != formView || a.current != 2 {
		t.Fatalf("expected advanced post form, active=%v current=%d", a.active, a.current)
	}
	if cmd == nil {
		t.Fatalf("expected blink command")
	}
	if got := a.form.Values()[4]; got != "2" {
		t.Fatalf("view budget should be prefilled from deps, got %q", got)
	}
}

func TestMenu_QuitAndNavigation(t *testing.T) {
	a, _ := newTestApp(t)

	a, _ = press(t, a, tea.KeyMsg{Type: tea.KeyDown})
	a, _ = press(t, a, tea.KeyMsg{Type: tea.KeyDown})
	if a.cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", a.cursor)
	}
	a, _ = press(t, a, tea.KeyMsg{Type: tea.KeyUp})
	if a.cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", a.cursor)
	}

	_, cmd := press(t, a, runeKey('q'))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg")
	}
}

func TestCreateProfile_ShowsStatusOnMenu(t *testing.T) {
	a, svc := newTestApp(t)

	a, _ = choose(t, a, 1)
	a = submit(t, a, "1", "ana", "ana@feed.test")
	if a.active != menuView {
		t.Fatalf("expected menu after create, got %v", a.active)
	}
	if !strings.Contains(a.status, "ana") || a.isErr {
		t.Fatalf("unexpected status %q", a.status)
	}
	if len(svc.Profiles()) != 1 {
		t.Fatalf("profile not created")
	}
}

func TestCreateProfile_ErrorKeepsForm(t *testing.T) {
	a, _ := newTestApp(t)

	a, _ = choose(t, a, 1)
	a = submit(t, a, "1", "ana", "ana@feed.test")
	a, _ = choose(t, a, 1)
	a = submit(t, a, "2", "ana", "other@feed.test")
	if a.active != formView || !a.isErr {
		t.Fatalf("duplicate should keep the form open with an error, active=%v", a.active)
	}
	if !strings.Contains(a.status, "duplicate key") {
		t.Fatalf("unexpected status %q", a.status)
	}

	a = submit(t, a, "x", "bia", "bia@feed.test")
	if !strings.Contains(a.status, "must be a number") {
		t.Fatalf("expected parse error, got %q", a.status)
	}
}

func TestQueryByID_OpensReactViewAndLikes(t *testing.T) {
	a, svc := newTestApp(t)
	a, _ = choose(t, a, 1)
	a = submit(t, a, "1", "ana", "ana@feed.test")
	a, _ = press(t, a, runeKey('2'))
	a = submit(t, a, "1", "10", "hello")

	a, _ = press(t, a, runeKey('5'))
	a = submit(t, a, "10", "", "", "")
	if a.active != resultView {
		t.Fatalf("expected result view, got %v", a.active)
	}
	if _, ok := a.result.Target(); !ok {
		t.Fatalf("single post query by id should allow reactions")
	}

	a, cmd := press(t, a, runeKey('l'))
	a = drain(t, a, cmd)
	p, _ := a.result.Target()
	if p.Likes != 1 {
		t.Fatalf("expected 1 like on target, got %d", p.Likes)
	}
	a, cmd = press(t, a, runeKey('d'))
	a = drain(t, a, cmd)
	if got := svc.AllPosts()[0]; got.Likes != 1 || got.Dislikes != 1 {
		t.Fatalf("unexpected counters %d/%d", got.Likes, got.Dislikes)
	}

	a, cmd = press(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	a = drain(t, a, cmd)
	if a.active != menuView {
		t.Fatalf("esc should return to menu")
	}
}

func TestAdvancedPost_FadesFromFullFeed(t *testing.T) {
	a, svc := newTestApp(t)
	a, _ = choose(t, a, 1)
	a = submit(t, a, "1", "ana", "ana@feed.test")
	a, _ = press(t, a, runeKey('3'))
	a = submit(t, a, "1", "10", "limited", "go, news", "1")

	if posts := svc.AllPosts(); len(posts) != 1 || posts[0].RemainingViews() != 1 {
		t.Fatalf("unexpected posts %#v", posts)
	}

	// Full feed is entry 14, reached with the cursor.
	a.cursor = 13
	a, cmd := press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	a = drain(t, a, cmd)
	if a.active != resultView || !strings.Contains(ansi.Strip(a.result.View()), "limited") {
		t.Fatalf("expected post in full feed:\n%s", a.result.View())
	}
	if len(svc.AllPosts()) != 0 {
		t.Fatalf("full feed must spend the last view")
	}
}

func TestNoFieldActions_RunImmediately(t *testing.T) {
	a, _ := newTestApp(t)
	a.cursor = 14
	a, cmd := press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	a = drain(t, a, cmd)
	if a.active != resultView || !strings.Contains(ansi.Strip(a.result.View()), "No profiles yet.") {
		t.Fatalf("expected empty profile list:\n%s", a.View())
	}
}

func TestActions_EveryMenuEntryHasMatchingFields(t *testing.T) {
	a, _ := newTestApp(t)
	if len(a.actions) != 15 {
		t.Fatalf("expected fifteen menu entries, got %d", len(a.actions))
	}
	for _, act := range a.actions {
		if act.run == nil {
			t.Fatalf("%s has no run", act.label)
		}
	}
}

func TestShowResult_ErrorKinds(t *testing.T) {
	a, _ := newTestApp(t)
	m, _ := a.showResult(result{err: fmt.Errorf("post 9: %w", domain.ErrNotFound)})
	got := m.(App)
	if !got.isErr || !strings.Contains(got.View(), "not found") {
		t.Fatalf("expected error status in view:\n%s", got.View())
	}
}

func TestReactResult_ErrorShownInResultView(t *testing.T) {
	a, _ := newTestApp(t)
	a.active = resultView
	a.result = feed.NewReact("Post #1", domain.Post{ID: 1, Text: "x"}, 40, 0)
	a, _ = press(t, a, feed.ReactResultMsg{Err: domain.ErrNotFound})
	if !strings.Contains(ansi.Strip(a.View()), "Error: not found") {
		t.Fatalf("expected error in result view:\n%s", a.View())
	}
}

func TestMenu_TwoDigitShortcuts(t *testing.T) {
	a, _ := newTestApp(t)

	a, cmd := press(t, a, runeKey('1'))
	if a.active != menuView || cmd != nil || a.digits != "1" {
		t.Fatalf("1 should wait for a second digit, active=%v digits=%q", a.active, a.digits)
	}
	a, _ = press(t, a, runeKey('0'))
	if a.active != formView || a.actions[a.current].label != "Add comment" {
		t.Fatalf("expected entry 10 form, active=%v current=%d", a.active, a.current)
	}

	a, cmd = press(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	a = drain(t, a, cmd)
	if a.active != menuView {
		t.Fatalf("esc should cancel the form")
	}
	a, _ = press(t, a, runeKey('1'))
	a, cmd = press(t, a, runeKey('3'))
	a = drain(t, a, cmd)
	if a.active != resultView || !strings.Contains(ansi.Strip(a.result.View()), "Popular hashtags") {
		t.Fatalf("expected entry 13 result:\n%s", a.View())
	}

	b, _ := newTestApp(t)
	b, _ = press(t, b, runeKey('1'))
	b, _ = press(t, b, runeKey('9'))
	if b.active == menuView || b.current != 8 {
		t.Fatalf("19 is out of range, 9 should open on its own; active=%v current=%d", b.active, b.current)
	}

	c, _ := newTestApp(t)
	c, _ = press(t, c, runeKey('1'))
	c, _ = press(t, c, tea.KeyMsg{Type: tea.KeyEnter})
	if c.active != formView || c.current != 0 {
		t.Fatalf("1 then enter should open entry 1, active=%v current=%d", c.active, c.current)
	}
}

func TestPostsByHashtag_BlankTagRendersEmptyResult(t *testing.T) {
	a, _ := newTestApp(t)
	a, _ = choose(t, a, 6)
	a = submit(t, a, "  ")
	if a.active != resultView || a.isErr {
		t.Fatalf("blank hashtag should reach the feed, active=%v status=%q", a.active, a.status)
	}
	if !strings.Contains(ansi.Strip(a.result.View()), "No posts found with this hashtag.") {
		t.Fatalf("unexpected view:\n%s", a.result.View())
	}
}
