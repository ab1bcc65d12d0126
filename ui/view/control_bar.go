package view

import (
	"github.com/tobilastik/iphone-stopwatch-clone/ui/presenter"
	"github.com/tobilastik/iphone-stopwatch-clone/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ControlBar holds the two buttons below the timer. Their titles, styles and
// enabled state follow the presenter's controls; the commands never change.
type ControlBar interface {
	SetControls(left, right presenter.Control)
}

type controlBar struct {
	left  *TButtonWidget
	right *TButtonWidget
}

// NewControlBar creates the left button at column 0 and the right one at
// column 2 of row.
func NewControlBar(row int, onLeft, onRight func()) ControlBar {
	b := &controlBar{
		left:  TButton(Txt("Lap"), Style(theme.StyleNeutralButton), Width(8), Command(onLeft)),
		right: TButton(Txt("Start"), Style(theme.StyleGoButton), Width(8), Command(onRight)),
	}
	Grid(b.left, Row(row), Column(0), Sticky("w"), Padx("4m"), Pady("6m"))
	Grid(b.right, Row(row), Column(2), Sticky("e"), Padx("4m"), Pady("6m"))
	return b
}

func (b *controlBar) SetControls(left, right presenter.Control) {
	if b == nil {
		return
	}
	configureButton(b.left, left)
	configureButton(b.right, right)
}

func configureButton(w *TButtonWidget, c presenter.Control) {
	if w == nil {
		return
	}
	state := "disabled"
	if c.Enabled {
		state = "normal"
	}
	w.Configure(Txt(c.Title), Style(toneStyle(c)), State(state))
}

func toneStyle(c presenter.Control) string {
	if !c.Enabled {
		return theme.StyleDisabledButton
	}
	switch c.Tone {
	case presenter.ToneGo:
		return theme.StyleGoButton
	case presenter.ToneStop:
		return theme.StyleStopButton
	default:
		return theme.StyleNeutralButton
	}
}
