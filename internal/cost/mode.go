package cost

import (
	"fmt"
	"strings"

	"github.com/osse101/LoadoutCalc_Go/internal/domain"
)

// Mode selects how tiered items are priced.
type Mode string

const (
	// ModeTotal prices a tier as everything needed to build it from scratch.
	ModeTotal Mode = "total"
	// ModeUpgrade prices a tier as the step from the previous tier only.
	ModeUpgrade Mode = "upgrade"
)

// ParseMode resolves a mode name. The empty string means ModeTotal.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeTotal:
		return ModeTotal, nil
	case ModeUpgrade:
		return ModeUpgrade, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidMode, s)
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeUpgrade {
		return ModeTotal
	}
	return ModeUpgrade
}
