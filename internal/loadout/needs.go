package loadout

import (
	"sort"

	"github.com/osse101/LoadoutCalc_Go/internal/domain"
)

// Namer turns a material id into a display name. *catalog.Catalog
// satisfies it.
type Namer interface {
	MaterialName(id string) string
}

// NeedRow compares what a loadout needs with what the player owns.
type NeedRow struct {
	MaterialID string `json:"material_id"`
	Name       string `json:"name"`
	Need       int    `json:"need"`
	Have       int    `json:"have"`
	Missing    int    `json:"missing"`
}

// Needs lists every material in totals against the owned amounts, sorted by
// descending need then id.
func (l *Loadout) Needs(totals domain.Materials, names Namer) []NeedRow {
	rows := make([]NeedRow, 0, len(totals))
	for _, r := range totals.Rows() {
		have := l.owned[r.MaterialID]
		rows = append(rows, NeedRow{
			MaterialID: r.MaterialID,
			Name:       names.MaterialName(r.MaterialID),
			Need:       r.Quantity,
			Have:       have,
			Missing:    max(0, r.Quantity-have),
		})
	}
	return rows
}

// MissingTotal sums the Missing column.
func MissingTotal(rows []NeedRow) int {
	total := 0
	for _, r := range rows {
		total += r.Missing
	}
	return total
}

// SortByMissing reorders rows so the largest shortfalls come first, keeping
// the need order for ties.
func SortByMissing(rows []NeedRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Missing > rows[j].Missing
	})
}
