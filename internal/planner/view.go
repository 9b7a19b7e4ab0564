package planner

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/osse101/LoadoutCalc_Go/internal/domain"
	"github.com/osse101/LoadoutCalc_Go/internal/loadout"
)

var (
	styleDefault  = tcell.StyleDefault
	styleTitle    = tcell.StyleDefault.Bold(true)
	styleFocused  = tcell.StyleDefault.Bold(true).Underline(true)
	styleTab      = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleTabOn    = tcell.StyleDefault.Reverse(true).Bold(true)
	styleCursor   = tcell.StyleDefault.Reverse(true)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleMissing  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleCovered  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleRule     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHelpBox  = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	styleHelpKeys = styleHelpBox.Bold(true)
)

// builtinHelp is shown when no help topics were loaded.
var builtinHelp = []string{
	"tab / shift+tab   switch category",
	"left / right      switch pane",
	"up / down         move cursor",
	"+ / -             adjust quantity",
	"0-9, backspace    type a quantity, enter applies",
	"enter             add highlighted item",
	"d                 remove entry",
	"c                 clear loadout",
	"m                 weapon cost mode",
	"o                 focus materials",
	"[ / ]             owned amount",
	"s                 sort by shortfall",
	"q                 quit",
}

// Draw renders the whole planner. The caller shows the screen.
func (m *Model) Draw(s tcell.Screen) {
	s.Clear()
	w, h := s.Size()
	bodyH := h - headerRows - footerRows
	if w < 20 || bodyH < 3 {
		drawText(s, 0, 0, w, "Terminal too small", styleDefault)
		return
	}

	m.drawTabs(s, w)
	drawHLine(s, 1, styleRule)

	catW := w / 3
	loadW := w / 3
	matW := w - catW - loadW
	m.drawCatalog(s, 0, headerRows, catW-1, bodyH)
	m.drawLoadout(s, catW, headerRows, loadW-1, bodyH)
	m.drawMaterials(s, catW+loadW, headerRows, matW, bodyH)

	drawHLine(s, h-2, styleRule)
	m.drawStatus(s, h-1, w)

	if m.showHelp {
		m.drawHelp(s, w, h)
	}
}

func (m *Model) drawTabs(s tcell.Screen, w int) {
	x := drawText(s, 0, 0, w, "LoadoutCalc ", styleTitle)
	for i, category := range m.tabs {
		style := styleTab
		if i == m.tab {
			style = styleTabOn
		}
		x += drawText(s, x, 0, w-x, " "+category.Title()+" ", style)
		if x >= w {
			return
		}
		x += drawText(s, x, 0, w-x, " ", styleDefault)
	}
}

func (m *Model) paneTitle(s tcell.Screen, p Pane, x, y, width int, right string) {
	style := styleTitle
	if m.focus == p {
		style = styleFocused
	}
	title := p.String()
	if p == PaneCatalog {
		title += " · " + m.Category().Title()
	}
	drawRow(s, x, y, width, title, right, style)
}

func (m *Model) drawCatalog(s tcell.Screen, x, y, width, height int) {
	m.paneTitle(s, PaneCatalog, x, y, width, fmt.Sprintf("Qty %d", m.selector.Value()))

	items := m.Items()
	if len(items) == 0 {
		drawText(s, x, y+1, width, "No items", styleDim)
		return
	}

	inLoadout := make(map[string]int)
	for _, e := range m.loadout.Entries(m.Category()) {
		inLoadout[e.Item.ID] += e.Quantity
	}

	cursor := clamp(m.cursors[m.Category()], len(items))
	rows := height - 1
	offset := scrollOffset(cursor, rows)
	for i := offset; i < len(items) && i-offset < rows; i++ {
		item := items[i]
		prefix := "  "
		style := styleDefault
		if i == cursor {
			prefix = cursorMark
			if m.focus == PaneCatalog {
				style = styleCursor
			}
		}
		right := ""
		if q := inLoadout[item.ID]; q > 0 {
			right = fmt.Sprintf("[%d]", q)
		}
		drawRow(s, x, y+1+i-offset, width, prefix+item.DisplayName(), right, style)
	}
}

// loadoutRow is a rendered row of the loadout pane. line is -1 for headings.
type loadoutRow struct {
	text  string
	right string
	line  int
}

func (m *Model) drawLoadout(s tcell.Screen, x, y, width, height int) {
	lines := m.lines()
	m.paneTitle(s, PaneLoadout, x, y, width, fmt.Sprintf("%d entries", len(lines)))

	if len(lines) == 0 {
		drawText(s, x, y+1, width, "Empty. Press enter to add.", styleDim)
		return
	}

	var rows []loadoutRow
	cursorRow := 0
	cursor := clamp(m.loadoutCursor, len(lines))
	var current domain.Category
	for i, l := range lines {
		if i == 0 || l.Category != current {
			current = l.Category
			rows = append(rows, loadoutRow{text: l.Category.Title(), line: -1})
		}
		if i == cursor {
			cursorRow = len(rows)
		}
		rows = append(rows, loadoutRow{text: "  " + l.Entry.Item.DisplayName(), right: quantityLabel(l), line: i})
	}

	visible := height - 1
	offset := scrollOffset(cursorRow, visible)
	for i := offset; i < len(rows) && i-offset < visible; i++ {
		r := rows[i]
		style := styleDefault
		switch {
		case r.line < 0:
			style = styleTitle
		case r.line == cursor && m.focus == PaneLoadout:
			style = styleCursor
		}
		drawRow(s, x, y+1+i-offset, width, r.text, r.right, style)
	}
}

func quantityLabel(l loadoutLine) string {
	policy, _ := loadout.PolicyFor(l.Category)
	if policy.Bundled {
		return fmt.Sprintf("×%d (%d)", l.Entry.Quantity, l.Entry.Received())
	}
	return fmt.Sprintf("×%d", l.Entry.Quantity)
}

func (m *Model) drawMaterials(s tcell.Screen, x, y, width, height int) {
	rows := m.Needs()
	missing := loadout.MissingTotal(rows)
	right := "Covered"
	if missing > 0 {
		right = fmt.Sprintf("Missing %d", missing)
	}
	if len(rows) == 0 {
		right = ""
	}
	m.paneTitle(s, PaneMaterials, x, y, width, right)

	if len(rows) == 0 {
		drawText(s, x, y+1, width, "No materials needed", styleDim)
		return
	}

	drawRow(s, x, y+1, width, "Material", fmt.Sprintf("%6s %6s %6s", "Need", "Have", "Miss"), styleDim)

	cursor := clamp(m.materialCursor, len(rows))
	visible := height - 2
	offset := scrollOffset(cursor, visible)
	for i := offset; i < len(rows) && i-offset < visible; i++ {
		r := rows[i]
		style := styleCovered
		if r.Missing > 0 {
			style = styleMissing
		}
		if i == cursor && m.focus == PaneMaterials {
			style = styleCursor
		}
		drawRow(s, x, y+2+i-offset, width, r.Name, fmt.Sprintf("%6d %6d %6d", r.Need, r.Have, r.Missing), style)
	}
}

func (m *Model) drawStatus(s tcell.Screen, y, w int) {
	right := fmt.Sprintf("Mode %s │ Qty %d", m.mode, m.selector.Value())
	if len(m.input) > 0 {
		right += fmt.Sprintf(" │ Input %s_", string(m.input))
	}
	right += " │ ? help"
	drawRow(s, 0, y, w, m.status, right, styleDefault)
}

func (m *Model) helpLines() []string {
	if m.help == nil || len(m.help.Topics) == 0 {
		return builtinHelp
	}
	names := make([]string, 0, len(m.help.Topics))
	for name := range m.help.Topics {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []string
	for _, name := range names {
		t := m.help.Topics[name]
		out = append(out, fmt.Sprintf("%-18s%s", strings.Join(t.Keys, " "), t.Title))
		if t.Description != "" {
			out = append(out, "  "+t.Description)
		}
	}
	return out
}

func (m *Model) drawHelp(s tcell.Screen, w, h int) {
	lines := m.helpLines()
	boxW := min(w-4, 72)
	boxH := min(h-2, len(lines)+2)
	x := (w - boxW) / 2
	y := (h - boxH) / 2

	fill(s, x, y, boxW, boxH, styleHelpBox)
	drawText(s, x+1, y, boxW-2, helpTitle, styleHelpKeys)
	for i, line := range lines {
		if i >= boxH-2 {
			break
		}
		drawText(s, x+1, y+1+i, boxW-2, line, styleHelpBox)
	}
}
