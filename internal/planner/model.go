package planner

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/osse101/LoadoutCalc_Go/internal/catalog"
	"github.com/osse101/LoadoutCalc_Go/internal/cost"
	"github.com/osse101/LoadoutCalc_Go/internal/domain"
	"github.com/osse101/LoadoutCalc_Go/internal/info"
	"github.com/osse101/LoadoutCalc_Go/internal/loadout"
	"github.com/osse101/LoadoutCalc_Go/internal/logger"
)

// Pane is a focusable column of the planner.
type Pane int

const (
	PaneCatalog Pane = iota
	PaneLoadout
	PaneMaterials
	paneCount
)

func (p Pane) String() string {
	switch p {
	case PaneCatalog:
		return "Catalog"
	case PaneLoadout:
		return "Loadout"
	case PaneMaterials:
		return "Materials"
	}
	return "?"
}

// loadoutLine addresses one entry of the flattened loadout.
type loadoutLine struct {
	Category domain.Category
	Index    int
	Entry    loadout.Entry
}

// Model is the planner state. It owns one loadout for the lifetime of the
// session and is driven by Update; Draw renders it.
type Model struct {
	ctx      context.Context
	catalog  *catalog.Catalog
	pricer   loadout.Pricer
	loadout  *loadout.Loadout
	selector *loadout.Selector
	help     *info.Feature

	tabs           []domain.Category
	tab            int
	cursors        map[domain.Category]int
	loadoutCursor  int
	materialCursor int

	focus         Pane
	mode          cost.Mode
	sortByMissing bool

	input    []rune
	status   string
	showHelp bool
	done     bool
}

// NewModel creates a planner over c, pricing weapons through p. help, when
// non-nil, supplies the topics shown by the help overlay.
func NewModel(ctx context.Context, c *catalog.Catalog, p loadout.Pricer, help *info.Feature) *Model {
	return &Model{
		ctx:      ctx,
		catalog:  c,
		pricer:   p,
		loadout:  loadout.New(c),
		selector: loadout.NewSelector(),
		help:     help,
		tabs:     domain.LoadoutCategories,
		cursors:  make(map[domain.Category]int, len(domain.LoadoutCategories)),
		mode:     cost.ModeTotal,
		status:   MsgReady,
	}
}

// Done reports whether the user asked to quit.
func (m *Model) Done() bool { return m.done }

// Category returns the category of the active tab.
func (m *Model) Category() domain.Category { return m.tabs[m.tab] }

// Focus returns the focused pane.
func (m *Model) Focus() Pane { return m.focus }

// Mode returns the weapon cost mode.
func (m *Model) Mode() cost.Mode { return m.mode }

// Status returns the status line message.
func (m *Model) Status() string { return m.status }

// Quantity returns the selector value.
func (m *Model) Quantity() int { return m.selector.Value() }

// Input returns the digits typed but not yet applied.
func (m *Model) Input() string { return string(m.input) }

// Loadout exposes the session loadout.
func (m *Model) Loadout() *loadout.Loadout { return m.loadout }

// Items returns the records of the active tab.
func (m *Model) Items() []domain.Item {
	return m.catalog.Partition(m.Category())
}

// Selected returns the record under the catalog cursor.
func (m *Model) Selected() (domain.Item, bool) {
	items := m.Items()
	if len(items) == 0 {
		return domain.Item{}, false
	}
	return items[clamp(m.cursors[m.Category()], len(items))], true
}

// Totals is the merged material bill of the loadout.
func (m *Model) Totals() domain.Materials {
	return m.loadout.Totals(m.pricer, m.mode)
}

// Needs returns the have/need rows in the current sort order.
func (m *Model) Needs() []loadout.NeedRow {
	rows := m.loadout.Needs(m.Totals(), m.catalog)
	if m.sortByMissing {
		loadout.SortByMissing(rows)
	}
	return rows
}

func (m *Model) lines() []loadoutLine {
	var out []loadoutLine
	for _, category := range m.tabs {
		for i, e := range m.loadout.Entries(category) {
			out = append(out, loadoutLine{Category: category, Index: i, Entry: e})
		}
	}
	return out
}

// Update applies one terminal event.
func (m *Model) Update(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}
	m.Apply(keyToAction(key), key.Rune())
}

// Apply runs action. r is the typed rune for ActionDigit.
func (m *Model) Apply(action Action, r rune) {
	if m.showHelp {
		m.showHelp = false
		if action == ActionQuit {
			m.done = true
		}
		return
	}

	switch action {
	case ActionQuit:
		m.done = true
	case ActionCancel:
		if len(m.input) > 0 {
			m.input = m.input[:0]
			return
		}
		m.done = true
	case ActionHelp:
		m.showHelp = true
	case ActionNextTab:
		m.tab = (m.tab + 1) % len(m.tabs)
		m.input = m.input[:0]
	case ActionPrevTab:
		m.tab = (m.tab + len(m.tabs) - 1) % len(m.tabs)
		m.input = m.input[:0]
	case ActionNextPane:
		m.setFocus((m.focus + 1) % paneCount)
	case ActionPrevPane:
		m.setFocus((m.focus + paneCount - 1) % paneCount)
	case ActionToggleMaterials:
		if m.focus == PaneMaterials {
			m.setFocus(PaneCatalog)
		} else {
			m.setFocus(PaneMaterials)
		}
	case ActionUp:
		m.moveCursor(-1)
	case ActionDown:
		m.moveCursor(1)
	case ActionIncrement:
		m.step(1)
	case ActionDecrement:
		m.step(-1)
	case ActionOwnedMore:
		m.adjustOwned(1)
	case ActionOwnedLess:
		m.adjustOwned(-1)
	case ActionDigit:
		if len(m.input) < maxInputLen {
			m.input = append(m.input, r)
		}
	case ActionBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case ActionConfirm:
		m.confirm()
	case ActionRemove:
		m.remove()
	case ActionClear:
		m.clear()
	case ActionToggleMode:
		m.mode = m.mode.Toggle()
		if m.mode == cost.ModeUpgrade {
			m.status = MsgModeUpgrade
		} else {
			m.status = MsgModeTotal
		}
		logger.FromContext(m.ctx).Debug(LogMsgModeChanged, "mode", m.mode)
	case ActionToggleSort:
		m.sortByMissing = !m.sortByMissing
		if m.sortByMissing {
			m.status = MsgSortMissing
		} else {
			m.status = MsgSortNeed
		}
	}
}

func (m *Model) setFocus(p Pane) {
	m.focus = p
	m.input = m.input[:0]
}

func (m *Model) moveCursor(delta int) {
	switch m.focus {
	case PaneCatalog:
		m.cursors[m.Category()] = clamp(m.cursors[m.Category()]+delta, len(m.Items()))
	case PaneLoadout:
		m.loadoutCursor = clamp(m.loadoutCursor+delta, len(m.lines()))
	case PaneMaterials:
		m.materialCursor = clamp(m.materialCursor+delta, len(m.Needs()))
	}
}

// step is +/-: the selector in the catalog, the entry quantity in the loadout
// and the owned amount in the materials pane.
func (m *Model) step(delta int) {
	m.input = m.input[:0]
	switch m.focus {
	case PaneCatalog:
		if delta > 0 {
			m.selector.Increment()
		} else {
			m.selector.Decrement()
		}
	case PaneLoadout:
		line, ok := m.currentLine()
		if !ok {
			m.status = MsgNothingSelected
			return
		}
		q := line.Entry.Quantity + delta
		if q < domain.MinQuantity {
			return
		}
		m.setEntryQuantity(line, q)
	case PaneMaterials:
		m.adjustOwned(delta)
	}
}

func (m *Model) adjustOwned(delta int) {
	row, ok := m.currentNeed()
	if !ok {
		m.status = MsgNothingSelected
		return
	}
	m.setOwned(row, max(0, row.Have+delta))
}

func (m *Model) confirm() {
	text := string(m.input)
	m.input = m.input[:0]

	switch m.focus {
	case PaneCatalog:
		if text != "" && !m.selector.SetText(text) {
			m.reject(fmt.Sprintf(MsgInvalidQuantity, text, m.selector.Value()))
			return
		}
		item, ok := m.Selected()
		if !ok {
			m.status = MsgNothingSelected
			return
		}
		q := m.selector.Value()
		if err := m.loadout.AddSelected(m.Category(), item.ID, m.selector); err != nil {
			m.reject(err.Error())
			return
		}
		m.status = fmt.Sprintf(MsgAdded, q, item.DisplayName())
		logger.FromContext(m.ctx).Debug(LogMsgEntryAdded, "category", m.Category(), "item", item.ID, "quantity", q)
	case PaneLoadout:
		if text == "" {
			return
		}
		line, ok := m.currentLine()
		if !ok {
			m.status = MsgNothingSelected
			return
		}
		q, err := strconv.Atoi(text)
		if err != nil || q < domain.MinQuantity || q > domain.MaxQuantity {
			m.reject(fmt.Sprintf(MsgInvalidQuantity, text, line.Entry.Quantity))
			return
		}
		m.setEntryQuantity(line, q)
	case PaneMaterials:
		if text == "" {
			return
		}
		row, ok := m.currentNeed()
		if !ok {
			m.status = MsgNothingSelected
			return
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			m.reject(fmt.Sprintf(MsgInvalidOwned, text))
			return
		}
		m.setOwned(row, n)
	}
}

func (m *Model) setEntryQuantity(line loadoutLine, q int) {
	if err := m.loadout.SetQuantity(line.Category, line.Index, q); err != nil {
		m.reject(err.Error())
		return
	}
	m.status = fmt.Sprintf(MsgQuantitySet, line.Entry.Item.DisplayName(), q)
}

func (m *Model) setOwned(row loadout.NeedRow, n int) {
	if err := m.loadout.SetOwned(row.MaterialID, n); err != nil {
		m.reject(err.Error())
		return
	}
	m.status = fmt.Sprintf(MsgOwnedSet, n, row.Name)
}

// remove deletes the highlighted loadout entry, or from the catalog pane the
// last entry of the active category.
func (m *Model) remove() {
	var line loadoutLine
	switch m.focus {
	case PaneLoadout:
		l, ok := m.currentLine()
		if !ok {
			m.status = MsgNothingSelected
			return
		}
		line = l
	case PaneCatalog:
		entries := m.loadout.Entries(m.Category())
		if len(entries) == 0 {
			m.status = fmt.Sprintf(MsgCategoryEmpty, m.Category().Title())
			return
		}
		idx := len(entries) - 1
		line = loadoutLine{Category: m.Category(), Index: idx, Entry: entries[idx]}
	default:
		return
	}

	if err := m.loadout.Remove(line.Category, line.Index); err != nil {
		m.reject(err.Error())
		return
	}
	m.loadoutCursor = clamp(m.loadoutCursor, len(m.lines()))
	m.status = fmt.Sprintf(MsgRemoved, line.Entry.Item.DisplayName())
	logger.FromContext(m.ctx).Debug(LogMsgEntryRemoved, "category", line.Category, "item", line.Entry.Item.ID)
}

func (m *Model) clear() {
	m.loadout.Clear()
	m.selector.Reset()
	m.input = m.input[:0]
	m.loadoutCursor = 0
	m.materialCursor = 0
	m.status = MsgCleared
	logger.FromContext(m.ctx).Debug(LogMsgLoadoutCleared)
}

func (m *Model) reject(msg string) {
	m.status = msg
	logger.FromContext(m.ctx).Debug(LogMsgRejected, "reason", msg, "pane", m.focus)
}

func (m *Model) currentLine() (loadoutLine, bool) {
	lines := m.lines()
	if len(lines) == 0 {
		return loadoutLine{}, false
	}
	return lines[clamp(m.loadoutCursor, len(lines))], true
}

func (m *Model) currentNeed() (loadout.NeedRow, bool) {
	rows := m.Needs()
	if len(rows) == 0 {
		return loadout.NeedRow{}, false
	}
	return rows[clamp(m.materialCursor, len(rows))], true
}

// clamp keeps i within [0, n). n of zero yields zero.
func clamp(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
