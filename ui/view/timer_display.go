package view

import (
	"github.com/tobilastik/iphone-stopwatch-clone/ui/theme"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// TimerDisplay shows the grand total elapsed time.
type TimerDisplay interface {
	SetText(text string)
}

type timerDisplay struct {
	lbl  *LabelWidget
	last string
}

// NewTimerDisplay creates the large timer label spanning both control columns
// at the given row.
func NewTimerDisplay(row int) TimerDisplay {
	p := theme.CurrentPalette()
	d := &timerDisplay{lbl: Label(Txt("00:00.00"), Font("helvetica", 64), Foreground(p.Text), Background(p.AppBg), Width(9))}
	Grid(d.lbl, Row(row), Column(0), Columnspan(3), Sticky("we"), Padx("2m"), Pady("12m"))
	d.last = "00:00.00"
	return d
}

// SetText replaces the displayed time; unchanged text is not pushed to Tk.
func (d *timerDisplay) SetText(text string) {
	if d == nil || d.lbl == nil || text == d.last {
		return
	}
	d.last = text
	d.lbl.Configure(Txt(text))
}
