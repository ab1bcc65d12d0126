package view

import (
	"fmt"

	"github.com/tobilastik/iphone-stopwatch-clone/ui/presenter"
	"github.com/tobilastik/iphone-stopwatch-clone/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

const (
	tagFastest = "fastest"
	tagSlowest = "slowest"
)

// LapList renders lap lines in a read-only, scrollable text widget.
// Fastest and slowest lines are colored through text tags.
type LapList interface {
	SetLaps(lines []presenter.LapLine)
	SetCurrentLap(line presenter.LapLine)
}

type lapList struct {
	text   *TextWidget
	scroll *TScrollbarWidget
	count  int
}

// NewLapList creates the list at row, filling the window width.
func NewLapList(row int) LapList {
	p := theme.CurrentPalette()
	l := &lapList{}
	l.text = Text(Height(10), Width(30), Wrap("none"), Font("courier", 14),
		Foreground(p.Text), Background(p.AppBg), Borderwidth(0),
		Yscrollcommand(func(e *Event) { e.ScrollSet(l.scroll) }))
	l.scroll = TScrollbar(Command(func(e *Event) { e.Yview(l.text) }))
	l.text.TagConfigure(tagFastest, Foreground(p.Fastest))
	l.text.TagConfigure(tagSlowest, Foreground(p.Slowest))
	l.text.Configure(State("disabled"))
	Grid(l.text, Row(row), Column(0), Columnspan(3), Sticky("news"), Padx("2m"), Pady("1m"))
	Grid(l.scroll, Row(row), Column(3), Sticky("ns"), Pady("1m"))
	return l
}

// SetLaps replaces every line.
func (l *lapList) SetLaps(lines []presenter.LapLine) {
	if l == nil || l.text == nil {
		return
	}
	l.text.Configure(State("normal"))
	l.text.Delete("1.0", END)
	for _, ln := range lines {
		l.text.Insert(END, lapRow(ln), lapTags(ln)...)
	}
	l.count = len(lines)
	l.text.Configure(State("disabled"))
}

// SetCurrentLap replaces line 1 only, so the view keeps its scroll offset.
func (l *lapList) SetCurrentLap(line presenter.LapLine) {
	if l == nil || l.text == nil || l.count == 0 {
		return
	}
	l.text.Configure(State("normal"))
	l.text.Delete("1.0", "2.0")
	l.text.Insert("1.0", lapRow(line), lapTags(line)...)
	l.text.Configure(State("disabled"))
}

func lapRow(ln presenter.LapLine) string {
	return fmt.Sprintf("%-10s%16s\n", ln.Label, ln.Time)
}

func lapTags(ln presenter.LapLine) []string {
	switch {
	case ln.Fastest:
		return []string{tagFastest}
	case ln.Slowest:
		return []string{tagSlowest}
	}
	return nil
}
