package planner

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText writes text at (x, y), clipped to width columns. Wide runes take
// two cells. It returns the number of columns used.
func drawText(s tcell.Screen, x, y, width int, text string, style tcell.Style) int {
	if width <= 0 {
		return 0
	}
	if runewidth.StringWidth(text) > width {
		text = runewidth.Truncate(text, width, ellipsis)
	}
	col := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		s.SetContent(x+col, y, r, nil, style)
		if w == 2 {
			s.SetContent(x+col+1, y, ' ', nil, style)
		}
		col += w
	}
	return col
}

// drawRow writes left and right aligned text in a fixed-width row, filling
// the gap with the row style.
func drawRow(s tcell.Screen, x, y, width int, left, right string, style tcell.Style) {
	rw := runewidth.StringWidth(right)
	if rw >= width {
		drawText(s, x, y, width, right, style)
		return
	}
	leftWidth := width - rw
	if right != "" {
		leftWidth--
	}
	line := runewidth.FillRight(runewidth.Truncate(left, leftWidth, ellipsis), width-rw) + right
	drawText(s, x, y, width, line, style)
}

func fill(s tcell.Screen, x, y, width, height int, style tcell.Style) {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			s.SetContent(col, row, ' ', nil, style)
		}
	}
}

func drawHLine(s tcell.Screen, y int, style tcell.Style) {
	w, _ := s.Size()
	for x := 0; x < w; x++ {
		s.SetContent(x, y, '─', nil, style)
	}
}

// scrollOffset returns the first visible row so that cursor stays inside a
// window of height rows.
func scrollOffset(cursor, height int) int {
	if height <= 0 || cursor < height {
		return 0
	}
	return cursor - height + 1
}
