package router_test

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/aceguide/internal/router"
	"github.com/abhisek/aceguide/internal/screen"
	"github.com/abhisek/aceguide/internal/screens/help"
	"github.com/abhisek/aceguide/internal/screens/splash"
)

type pageScreen struct{}

func (p *pageScreen) Init() tea.Cmd                           { return nil }
func (p *pageScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return p, nil }
func (p *pageScreen) View(int, int) string                    { return "page" }
func (p *pageScreen) Title() string                           { return "Page" }

func TestSplashReplacedNotStacked(t *testing.T) {
	page := &pageScreen{}
	r := router.New(splash.New(time.Hour, func() screen.Screen { return page }))

	cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected the splash to request a transition")
	}
	msg := cmd()
	if _, ok := msg.(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	r.Update(msg)

	if r.Depth() != 1 {
		t.Fatalf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active() != page {
		t.Fatalf("expected page on top, got %T", r.Active())
	}

	r.Update(router.PushScreenMsg{Screen: help.New(nil)})
	if r.Depth() != 2 {
		t.Fatalf("expected help pushed, depth %d", r.Depth())
	}

	r.Update(router.PopScreenMsg{})
	r.Update(router.PopScreenMsg{})
	if r.Active() != page {
		t.Errorf("popping must never return to the splash, got %T", r.Active())
	}
	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
}
