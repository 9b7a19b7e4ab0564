// Package catalog loads item records from disk and exposes them as an
// immutable, partitioned catalog.
package catalog

import (
	"github.com/osse101/LoadoutCalc_Go/internal/domain"
)

// MaterialMeta is the presentation data for any record, keyed by id.
type MaterialMeta struct {
	ID            string `json:"id"`
	Name          string `json:"name,omitempty"`
	ImageFilename string `json:"image_filename,omitempty"`
}

// Catalog is built once per data load and never mutated afterwards, so it can
// be shared freely between the calculator, handlers and the planner.
type Catalog struct {
	all        Index
	partitions map[domain.Category][]domain.Item
	indexes    map[domain.Category]Index
	recycle    *RecycleGraph
	meta       map[string]MaterialMeta
}

// New classifies records and builds every lookup structure.
func New(records []domain.Item) *Catalog {
	deduped := BuildIndex(records)

	classified := make([]domain.Item, 0, deduped.Len())
	for _, id := range deduped.IDs() {
		item, _ := deduped.Get(id)
		classified = append(classified, Classify(item))
	}

	c := &Catalog{
		all:        BuildIndex(classified),
		partitions: make(map[domain.Category][]domain.Item),
		indexes:    make(map[domain.Category]Index),
		recycle:    BuildRecycleGraph(classified),
		meta:       make(map[string]MaterialMeta, len(classified)),
	}

	for _, item := range classified {
		c.meta[item.ID] = MaterialMeta{ID: item.ID, Name: item.Name, ImageFilename: item.ImageFilename}
		if item.Category == domain.CategoryOther {
			continue
		}
		c.partitions[item.Category] = append(c.partitions[item.Category], item)
	}

	for category, items := range c.partitions {
		sortByDisplayName(items)
		c.indexes[category] = BuildIndex(items)
	}

	return c
}

// Index returns the lookup over every record regardless of partition.
func (c *Catalog) Index() Index {
	return c.all
}

// Item looks up any record by id.
func (c *Catalog) Item(id string) (domain.Item, bool) {
	return c.all.Get(id)
}

// Lookup finds id within one partition.
func (c *Catalog) Lookup(category domain.Category, id string) (domain.Item, bool) {
	return c.indexes[category].Get(id)
}

// Partition returns the records of one category sorted by display name.
func (c *Catalog) Partition(category domain.Category) []domain.Item {
	items := c.partitions[category]
	out := make([]domain.Item, len(items))
	copy(out, items)
	return out
}

// Counts returns the number of records per partition.
func (c *Catalog) Counts() map[domain.Category]int {
	counts := make(map[domain.Category]int, len(c.partitions))
	for category, items := range c.partitions {
		counts[category] = len(items)
	}
	return counts
}

// Len returns the total number of distinct records.
func (c *Catalog) Len() int {
	return c.all.Len()
}

// Recycle returns the material to source lookup.
func (c *Catalog) Recycle() *RecycleGraph {
	return c.recycle
}

// MaterialsByID returns presentation metadata for every record.
func (c *Catalog) MaterialsByID() map[string]MaterialMeta {
	out := make(map[string]MaterialMeta, len(c.meta))
	for id, m := range c.meta {
		out[id] = m
	}
	return out
}

// MaterialName returns the display name for a material id, formatting the id
// when the catalog has no name for it.
func (c *Catalog) MaterialName(id string) string {
	if m, ok := c.meta[id]; ok && m.Name != "" {
		return m.Name
	}
	return FormatMaterialName(id)
}
