package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/aceguide/internal/content"
	"github.com/abhisek/aceguide/internal/guide"
	"github.com/abhisek/aceguide/internal/router"
	"github.com/abhisek/aceguide/internal/screens/help"
	"github.com/abhisek/aceguide/internal/screens/reference"
	"github.com/abhisek/aceguide/internal/screens/splash"
)

func testOptions(noSplash bool) Options {
	return Options{
		Guide:    content.Default(),
		View:     guide.DefaultOptions(),
		Logger:   zerolog.Nop(),
		NoSplash: noSplash,
	}
}

func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func TestStartsWithSplash(t *testing.T) {
	m := newAppModel(testOptions(false))
	if _, ok := m.router.Active().(*splash.SplashScreen); !ok {
		t.Fatalf("expected splash screen, got %T", m.router.Active())
	}
}

func TestSplashReplacedByReference(t *testing.T) {
	m := newAppModel(testOptions(false))
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	_, cmd := update(m, tea.KeyPressMsg{Code: ' ', Text: " "})
	if cmd == nil {
		t.Fatal("expected a transition command")
	}
	m, _ = update(m, cmd())

	if _, ok := m.router.Active().(*reference.Screen); !ok {
		t.Fatalf("expected reference screen, got %T", m.router.Active())
	}
	if m.router.Depth() != 1 {
		t.Errorf("splash should be replaced, depth %d", m.router.Depth())
	}
}

func TestHeaderShowsTitleAndProgress(t *testing.T) {
	m := newAppModel(testOptions(true))
	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	frame := m.frame()
	if !strings.Contains(frame, "Exam Prep Reference") {
		t.Error("expected screen title in header")
	}
	if !strings.Contains(frame, "0/5 read") {
		t.Error("expected progress status in header")
	}
}

func TestEscPopsHelp(t *testing.T) {
	m := newAppModel(testOptions(true))
	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = update(m, router.PushScreenMsg{Screen: help.New(nil)})
	if m.router.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", m.router.Depth())
	}

	_, cmd := update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	m, _ = update(m, cmd())
	if m.router.Depth() != 1 {
		t.Errorf("expected depth 1 after esc, got %d", m.router.Depth())
	}
}

func TestTooSmall(t *testing.T) {
	m := newAppModel(testOptions(true))
	m, _ = update(m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(m.frame(), "Terminal too small") {
		t.Error("expected min size message")
	}
}

func TestQuitKeys(t *testing.T) {
	m := newAppModel(testOptions(true))
	_, cmd := update(m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}
