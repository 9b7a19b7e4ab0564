package planner

import "github.com/gdamore/tcell/v2"

// Action is a planner command decoded from a key press.
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionCancel
	ActionNextTab
	ActionPrevTab
	ActionNextPane
	ActionPrevPane
	ActionToggleMaterials
	ActionUp
	ActionDown
	ActionIncrement
	ActionDecrement
	ActionDigit
	ActionBackspace
	ActionConfirm
	ActionRemove
	ActionClear
	ActionToggleMode
	ActionToggleSort
	ActionOwnedMore
	ActionOwnedLess
	ActionHelp
)

// keyToAction maps a tcell key event to a planner action.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyTab:
		return ActionNextTab
	case tcell.KeyBacktab:
		return ActionPrevTab
	case tcell.KeyRight:
		return ActionNextPane
	case tcell.KeyLeft:
		return ActionPrevPane
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyEnter:
		return ActionConfirm
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return ActionBackspace
	case tcell.KeyDelete:
		return ActionRemove
	case tcell.KeyEscape:
		return ActionCancel
	case tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	r := ev.Rune()
	if r >= '0' && r <= '9' {
		return ActionDigit
	}
	switch r {
	case 'k':
		return ActionUp
	case 'j':
		return ActionDown
	case '+', '=':
		return ActionIncrement
	case '-', '_':
		return ActionDecrement
	case 'd', 'D':
		return ActionRemove
	case 'c', 'C':
		return ActionClear
	case 'm', 'M':
		return ActionToggleMode
	case 's', 'S':
		return ActionToggleSort
	case 'o', 'O':
		return ActionToggleMaterials
	case ']':
		return ActionOwnedMore
	case '[':
		return ActionOwnedLess
	case '?':
		return ActionHelp
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}
