package guide

import (
	"charm.land/lipgloss/v2"

	"github.com/studyloop/studyloop/internal/tour"
	"github.com/studyloop/studyloop/internal/ui/theme"
)

// Loopy, the Studyloop owl. One pose per narrator mood.

const loopyHappy = ` ∩─∩
( o.o )
 / ⊃⊃`

const loopyExcited = ` ∩─∩ !
( ★.★ )
 \ ⊃⊃/`

const loopyEncouraging = ` ∩─∩
( o.o )
 ⊃⊃ ♪`

const loopyCalm = ` ∩─∩
( -.- )
 / ⊃⊃ z`

const loopyProud = ` ∩─∩
( ^.^ )
 \ ⊃⊃ ★`

// renderMascot returns Loopy in the pose matching the step's mood.
func renderMascot(mood tour.Mood) string {
	art := loopyHappy
	fg := theme.Primary

	switch mood {
	case tour.MoodExcited:
		art = loopyExcited
		fg = theme.Accent
	case tour.MoodEncouraging:
		art = loopyEncouraging
		fg = theme.Secondary
	case tour.MoodCalm:
		art = loopyCalm
		fg = theme.Calm
	case tour.MoodProud:
		art = loopyProud
		fg = theme.Success
	}

	return lipgloss.NewStyle().Foreground(fg).Render(art)
}
