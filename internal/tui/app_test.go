package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"pocketbook/internal/tui/components"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	}
	return tea.KeyMsg{}
}

func TestTabCycling(t *testing.T) {
	a := App{loaded: true}

	m, _ := a.Update(keyMsg("tab"))
	a = m.(App)
	if a.activeTab != 1 {
		t.Errorf("after tab, activeTab = %d, want 1", a.activeTab)
	}

	m, _ = a.Update(keyMsg("shift+tab"))
	a = m.(App)
	if a.activeTab != 0 {
		t.Errorf("after shift+tab, activeTab = %d, want 0", a.activeTab)
	}

	m, _ = a.Update(keyMsg("shift+tab"))
	a = m.(App)
	if a.activeTab != len(components.Tabs)-1 {
		t.Errorf("wraparound activeTab = %d, want %d", a.activeTab, len(components.Tabs)-1)
	}
}

func TestTabShortcutKeys(t *testing.T) {
	a := App{loaded: true}

	m, _ := a.Update(keyMsg("b"))
	a = m.(App)
	if components.Tabs[a.activeTab].Name != "Bills" {
		t.Errorf("key b landed on %q", components.Tabs[a.activeTab].Name)
	}

	m, _ = a.Update(keyMsg("o"))
	a = m.(App)
	if components.Tabs[a.activeTab].Name != "Overview" {
		t.Errorf("key o landed on %q", components.Tabs[a.activeTab].Name)
	}
}

func TestQuitKey(t *testing.T) {
	a := App{loaded: true}
	_, cmd := a.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q did not produce a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestDataLoadedRecomputes(t *testing.T) {
	a := App{}
	m, _ := a.Update(DataLoadedMsg{})
	a = m.(App)
	if !a.loaded {
		t.Error("loaded flag not set")
	}
	if a.loadErr != nil {
		t.Errorf("unexpected load error: %v", a.loadErr)
	}
}

func TestClipScroll(t *testing.T) {
	a := App{scroll: 2}
	got := a.clipScroll("one\ntwo\nthree\nfour")
	if got != "three\nfour" {
		t.Errorf("clipScroll = %q", got)
	}

	a.scroll = 10
	if got := a.clipScroll("one\ntwo"); got != "" {
		t.Errorf("overscrolled clip = %q", got)
	}

	a.scroll = 0
	if got := a.clipScroll("one\ntwo"); got != "one\ntwo" {
		t.Errorf("unscrolled clip = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate short = %q", got)
	}
	got := truncate("a very long account name", 10)
	if len([]rune(got)) > 10 {
		t.Errorf("truncate long = %q (len %d)", got, len([]rune(got)))
	}
}
