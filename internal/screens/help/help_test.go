package help

import (
	"strings"
	"testing"

	"charm.land/bubbles/v2/key"
)

func TestViewListsEnabledBindings(t *testing.T) {
	on := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "expand all"))
	off := key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "back to top"), key.WithDisabled())

	view := New([]key.Binding{on, off}).View(80, 20)
	if !strings.Contains(view, "expand all") {
		t.Error("expected enabled binding in view")
	}
	if strings.Contains(view, "back to top") {
		t.Error("disabled binding should be hidden")
	}
}

func TestTitle(t *testing.T) {
	if got := New(nil).Title(); got != "Keys" {
		t.Errorf("expected title Keys, got %q", got)
	}
}
