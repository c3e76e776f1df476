// Package tabs manages the fixed set of top-level tab panes.
package tabs

import (
	tea "charm.land/bubbletea/v2"

	"github.com/studyloop/studyloop/internal/screen"
)

// SelectTabMsg requests a switch to the tab at Index.
type SelectTabMsg struct {
	Index int
}

// Tabs holds the tab panes and the active index.
type Tabs struct {
	panes  []screen.Screen
	active int
}

// New creates a Tabs controller. The first pane starts active.
func New(panes ...screen.Screen) *Tabs {
	return &Tabs{panes: panes}
}

// Select switches to the tab at i and calls its Init(). Out-of-range
// indexes are ignored.
func (t *Tabs) Select(i int) tea.Cmd {
	if i < 0 || i >= len(t.panes) || i == t.active {
		return nil
	}
	t.active = i
	return t.panes[i].Init()
}

// Next cycles to the following tab, wrapping at the end.
func (t *Tabs) Next() tea.Cmd {
	return t.Select((t.active + 1) % len(t.panes))
}

// Active returns the current tab pane.
func (t *Tabs) Active() screen.Screen {
	if len(t.panes) == 0 {
		return nil
	}
	return t.panes[t.active]
}

// ActiveIndex returns the current tab position.
func (t *Tabs) ActiveIndex() int { return t.active }

// At returns the pane at i, or nil when out of range.
func (t *Tabs) At(i int) screen.Screen {
	if i < 0 || i >= len(t.panes) {
		return nil
	}
	return t.panes[i]
}

// Len returns the number of tabs.
func (t *Tabs) Len() int { return len(t.panes) }

// Titles returns the tab names in order.
func (t *Tabs) Titles() []string {
	out := make([]string, len(t.panes))
	for i, p := range t.panes {
		out[i] = p.Title()
	}
	return out
}

// Update forwards a message to the active pane and handles tab switches.
func (t *Tabs) Update(msg tea.Msg) tea.Cmd {
	if sel, ok := msg.(SelectTabMsg); ok {
		return t.Select(sel.Index)
	}

	active := t.Active()
	if active == nil {
		return nil
	}
	updated, cmd := active.Update(msg)
	t.panes[t.active] = updated
	return cmd
}

// UpdateAt forwards a message to the pane at i even when inactive.
func (t *Tabs) UpdateAt(i int, msg tea.Msg) tea.Cmd {
	if i < 0 || i >= len(t.panes) {
		return nil
	}
	updated, cmd := t.panes[i].Update(msg)
	t.panes[i] = updated
	return cmd
}

// View renders the active pane.
func (t *Tabs) View(width, height int) string {
	active := t.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
