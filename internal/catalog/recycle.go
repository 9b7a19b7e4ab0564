package catalog

import (
	"sort"

	"github.com/osse101/LoadoutCalc_Go/internal/domain"
)

// RecycleSource is one item that yields a material when broken down.
type RecycleSource struct {
	SourceItemID string `json:"source_item_id"`
	SourceName   string `json:"source_name,omitempty"`
	Amount       int    `json:"amount"`
}

// RecycleGraph maps a material id to the items that recycle into it.
type RecycleGraph struct {
	sources map[string][]RecycleSource
}

// BuildRecycleGraph collects recyclesInto across all records. Each source
// list is ordered by highest yield first.
func BuildRecycleGraph(records []domain.Item) *RecycleGraph {
	sources := make(map[string][]RecycleSource)
	for _, item := range records {
		for materialID, amount := range item.RecyclesInto {
			sources[materialID] = append(sources[materialID], RecycleSource{
				SourceItemID: item.ID,
				SourceName:   item.Name,
				Amount:       amount,
			})
		}
	}

	for _, list := range sources {
		sort.Slice(list, func(i, j int) bool {
			if list[i].Amount != list[j].Amount {
				return list[i].Amount > list[j].Amount
			}
			return list[i].SourceItemID < list[j].SourceItemID
		})
	}

	return &RecycleGraph{sources: sources}
}

// Sources returns a copy of the sources for materialID.
func (g *RecycleGraph) Sources(materialID string) []RecycleSource {
	list := g.sources[materialID]
	out := make([]RecycleSource, len(list))
	copy(out, list)
	return out
}

// MaterialIDs lists every material with at least one source, ascending.
func (g *RecycleGraph) MaterialIDs() []string {
	ids := make([]string, 0, len(g.sources))
	for id := range g.sources {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of materials in the graph.
func (g *RecycleGraph) Len() int {
	return len(g.sources)
}
