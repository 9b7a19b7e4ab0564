package planner

// Status line messages
const (
	MsgReady           = "Ready"
	MsgAdded           = "Added %d × %s"
	MsgRemoved         = "Removed %s"
	MsgCleared         = "Loadout cleared"
	MsgQuantitySet     = "%s quantity set to %d"
	MsgOwnedSet        = "Own %d %s"
	MsgInvalidQuantity = "Invalid quantity %q, keeping %d"
	MsgInvalidOwned    = "Invalid amount %q"
	MsgModeTotal       = "Weapon cost: full craft"
	MsgModeUpgrade     = "Weapon cost: upgrade step only"
	MsgSortMissing     = "Materials sorted by shortfall"
	MsgSortNeed        = "Materials sorted by need"
	MsgNothingSelected = "Nothing selected"
	MsgCategoryEmpty   = "No %s in the loadout"
)

// Log messages
const (
	LogMsgPlannerStarted = "Planner started"
	LogMsgPlannerStopped = "Planner stopped"
	LogMsgEntryAdded     = "Loadout entry added"
	LogMsgEntryRemoved   = "Loadout entry removed"
	LogMsgLoadoutCleared = "Loadout cleared"
	LogMsgModeChanged    = "Weapon cost mode changed"
	LogMsgRejected       = "Planner input rejected"
)

// Layout
const (
	headerRows  = 2
	footerRows  = 2
	maxInputLen = 6
	ellipsis    = "…"
	cursorMark  = "▶ "
	helpTitle   = "Keys"
)
