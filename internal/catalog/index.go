package catalog

import (
	"sort"

	"github.com/osse101/LoadoutCalc_Go/internal/domain"
)

// Index is a read-only id to record lookup.
type Index struct {
	byID map[string]domain.Item
}

// BuildIndex indexes records by id. Duplicate ids are not an error: the last
// record wins.
func BuildIndex(records []domain.Item) Index {
	byID := make(map[string]domain.Item, len(records))
	for _, r := range records {
		byID[r.ID] = r
	}
	return Index{byID: byID}
}

// Get returns the record for id.
func (idx Index) Get(id string) (domain.Item, bool) {
	item, ok := idx.byID[id]
	return item, ok
}

// Len returns the number of distinct ids.
func (idx Index) Len() int {
	return len(idx.byID)
}

// IDs returns all ids in ascending order.
func (idx Index) IDs() []string {
	ids := make([]string, 0, len(idx.byID))
	for id := range idx.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
