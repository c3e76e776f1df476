package tabs

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/studyloop/studyloop/internal/screen"
)

type stubPane struct {
	title   string
	inits   int
	updates int
	last    tea.Msg
}

func (s *stubPane) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *stubPane) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	s.last = msg
	return s, nil
}

func (s *stubPane) View(width, height int) string { return s.title }
func (s *stubPane) Title() string                 { return s.title }

func newStubTabs() (*Tabs, []*stubPane) {
	panes := []*stubPane{{title: "One"}, {title: "Two"}, {title: "Three"}}
	return New(panes[0], panes[1], panes[2]), panes
}

func TestSelect(t *testing.T) {
	tabs, panes := newStubTabs()

	tabs.Select(1)
	if tabs.ActiveIndex() != 1 {
		t.Errorf("ActiveIndex = %d, want 1", tabs.ActiveIndex())
	}
	if panes[1].inits != 1 {
		t.Errorf("pane inits = %d, want 1 on switch", panes[1].inits)
	}

	// Re-selecting the active tab must not re-init.
	tabs.Select(1)
	if panes[1].inits != 1 {
		t.Errorf("pane inits = %d after re-select, want 1", panes[1].inits)
	}

	tabs.Select(99)
	if tabs.ActiveIndex() != 1 {
		t.Error("out-of-range select changed the active tab")
	}
}

func TestNext_Wraps(t *testing.T) {
	tabs, _ := newStubTabs()
	tabs.Next()
	tabs.Next()
	tabs.Next()
	if tabs.ActiveIndex() != 0 {
		t.Errorf("ActiveIndex = %d after full cycle, want 0", tabs.ActiveIndex())
	}
}

func TestTitles(t *testing.T) {
	tabs, _ := newStubTabs()
	titles := tabs.Titles()
	want := []string{"One", "Two", "Three"}
	for i, w := range want {
		if titles[i] != w {
			t.Errorf("Titles[%d] = %q, want %q", i, titles[i], w)
		}
	}
}

func TestUpdate_RoutesToActive(t *testing.T) {
	tabs, panes := newStubTabs()
	tabs.Select(2)

	tabs.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if panes[2].updates != 1 {
		t.Errorf("active pane updates = %d, want 1", panes[2].updates)
	}
	if panes[0].updates != 0 {
		t.Error("inactive pane received the message")
	}
}

func TestUpdate_SelectTabMsg(t *testing.T) {
	tabs, _ := newStubTabs()
	tabs.Update(SelectTabMsg{Index: 2})
	if tabs.ActiveIndex() != 2 {
		t.Errorf("ActiveIndex = %d, want 2", tabs.ActiveIndex())
	}
}

func TestUpdateAt_ReachesInactivePane(t *testing.T) {
	tabs, panes := newStubTabs()

	type ping struct{}
	tabs.UpdateAt(2, ping{})

	if panes[2].updates != 1 {
		t.Errorf("pane updates = %d, want 1", panes[2].updates)
	}
	if _, ok := panes[2].last.(ping); !ok {
		t.Errorf("pane got %T, want ping", panes[2].last)
	}
}
