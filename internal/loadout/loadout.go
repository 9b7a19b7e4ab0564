// Package loadout holds a player's planned build and prices it. A Loadout
// is single-owner state: the planner keeps one per session and the HTTP
// API builds a throwaway one per request.
package loadout

import (
	"fmt"

	"github.com/osse101/LoadoutCalc_Go/internal/cost"
	"github.com/osse101/LoadoutCalc_Go/internal/domain"
)

// Catalog resolves ids within a partition. *catalog.Catalog satisfies it.
type Catalog interface {
	Lookup(category domain.Category, id string) (domain.Item, bool)
}

// Pricer prices one unit of a tiered item. *cost.Calculator satisfies it.
type Pricer interface {
	Cost(id string, mode cost.Mode) domain.Materials
}

// Entry is one line of a loadout.
type Entry struct {
	Item     domain.Item `json:"item"`
	Quantity int         `json:"quantity"`
}

// Received is the number of units the player ends up with. Bundled
// categories yield Item.Bundle() units per craft.
func (e Entry) Received() int {
	if p, ok := PolicyFor(e.Item.Category); ok && p.Bundled {
		return e.Quantity * e.Item.Bundle()
	}
	return e.Quantity
}

// Loadout is the set of planned entries per category plus the materials the
// player already owns.
type Loadout struct {
	catalog Catalog
	entries map[domain.Category][]Entry
	owned   domain.Materials
}

// New returns an empty loadout drawing records from c.
func New(c Catalog) *Loadout {
	return &Loadout{
		catalog: c,
		entries: make(map[domain.Category][]Entry),
		owned:   make(domain.Materials),
	}
}

// Add puts quantity units of id into category, merging with an existing
// entry for the same id. The merged quantity is bounded like a single one;
// an add that would exceed domain.MaxQuantity is rejected and leaves the
// entry unchanged.
func (l *Loadout) Add(category domain.Category, id string, quantity int) error {
	if _, ok := PolicyFor(category); !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
	}
	if err := checkQuantity(quantity); err != nil {
		return err
	}
	item, ok := l.catalog.Lookup(category, id)
	if !ok {
		return fmt.Errorf("%w: %s/%s", domain.ErrItemNotFound, category, id)
	}

	list := l.entries[category]
	for i := range list {
		if list[i].Item.ID == id {
			if err := checkQuantity(list[i].Quantity + quantity); err != nil {
				return err
			}
			list[i].Quantity += quantity
			return nil
		}
	}
	l.entries[category] = append(list, Entry{Item: item, Quantity: quantity})
	return nil
}

// AddSelected adds the selector's quantity of id and resets the selector
// once the add succeeds.
func (l *Loadout) AddSelected(category domain.Category, id string, sel *Selector) error {
	if err := l.Add(category, id, sel.Value()); err != nil {
		return err
	}
	sel.Reset()
	return nil
}

// Remove deletes the entry at index within category.
func (l *Loadout) Remove(category domain.Category, index int) error {
	list := l.entries[category]
	if index < 0 || index >= len(list) {
		return fmt.Errorf("%w: %s[%d]", domain.ErrInvalidIndex, category, index)
	}
	l.entries[category] = append(list[:index:index], list[index+1:]...)
	return nil
}

// SetQuantity replaces the quantity of the entry at index.
func (l *Loadout) SetQuantity(category domain.Category, index, quantity int) error {
	list := l.entries[category]
	if index < 0 || index >= len(list) {
		return fmt.Errorf("%w: %s[%d]", domain.ErrInvalidIndex, category, index)
	}
	if err := checkQuantity(quantity); err != nil {
		return err
	}
	list[index].Quantity = quantity
	return nil
}

func checkQuantity(quantity int) error {
	if quantity < domain.MinQuantity || quantity > domain.MaxQuantity {
		return fmt.Errorf("%w: got %d, want %d..%d", domain.ErrInvalidQuantity, quantity, domain.MinQuantity, domain.MaxQuantity)
	}
	return nil
}

// Clear empties every category and forgets owned materials.
func (l *Loadout) Clear() {
	l.entries = make(map[domain.Category][]Entry)
	l.owned = make(domain.Materials)
}

// Entries returns a copy of the entries of category in insertion order.
func (l *Loadout) Entries(category domain.Category) []Entry {
	list := l.entries[category]
	out := make([]Entry, len(list))
	copy(out, list)
	return out
}

// Len returns the number of entries across all categories.
func (l *Loadout) Len() int {
	n := 0
	for _, list := range l.entries {
		n += len(list)
	}
	return n
}

// IsEmpty reports whether the loadout has no entries.
func (l *Loadout) IsEmpty() bool {
	return l.Len() == 0
}

// SetOwned records how much of a material the player already has. Zero
// forgets the material.
func (l *Loadout) SetOwned(materialID string, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %s=%d", domain.ErrInvalidOwned, materialID, n)
	}
	if n == 0 {
		delete(l.owned, materialID)
		return nil
	}
	l.owned[materialID] = n
	return nil
}

// Owned returns a copy of the owned materials.
func (l *Loadout) Owned() domain.Materials {
	return l.owned.Clone()
}

// Subtotal prices a single category. weaponMode only affects tiered pricing.
func (l *Loadout) Subtotal(category domain.Category, p Pricer, weaponMode cost.Mode) domain.Materials {
	out := make(domain.Materials)
	policy, ok := PolicyFor(category)
	if !ok {
		return out
	}
	for _, e := range l.entries[category] {
		out.AddScaled(unitCost(policy, e.Item, p, weaponMode), e.Quantity)
	}
	return out
}

// Totals merges the subtotal of every category into one material bill.
func (l *Loadout) Totals(p Pricer, weaponMode cost.Mode) domain.Materials {
	parts := make([]domain.Materials, 0, len(domain.LoadoutCategories))
	for _, category := range domain.LoadoutCategories {
		parts = append(parts, l.Subtotal(category, p, weaponMode))
	}
	return domain.Merge(parts...)
}

// UnitCost prices one unit of item the way a loadout entry of its category
// is charged. Only tiered categories consult p and weaponMode; everything else
// is its own recipe. The result is the caller's to modify.
func UnitCost(item domain.Item, p Pricer, weaponMode cost.Mode) domain.Materials {
	policy, _ := PolicyFor(item.Category)
	return unitCost(policy, item, p, weaponMode).Clone()
}

func unitCost(policy Policy, item domain.Item, p Pricer, weaponMode cost.Mode) domain.Materials {
	switch policy.Pricing {
	case PriceTiered:
		return p.Cost(item.ID, weaponMode)
	case PriceSelf:
		return domain.Materials{item.ID: 1}
	default:
		return item.Recipe
	}
}
