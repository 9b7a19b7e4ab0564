package loadout

import "github.com/osse101/LoadoutCalc_Go/internal/domain"

// Pricing selects where an entry's per-unit cost comes from.
type Pricing int

const (
	// PriceRecipe charges the record's own recipe.
	PriceRecipe Pricing = iota
	// PriceTiered walks the tier family through the calculator and honours
	// the weapon cost mode.
	PriceTiered
	// PriceSelf charges one unit of the entry's own id. Used for extra
	// materials the player wants on hand.
	PriceSelf
)

// Policy is the per-category behaviour of the single aggregation loop.
type Policy struct {
	Pricing Pricing
	// Bundled entries produce Item.Bundle() units per craft.
	Bundled bool
}

var policies = map[domain.Category]Policy{
	domain.CategoryWeapon:       {Pricing: PriceTiered},
	domain.CategoryAugment:      {Pricing: PriceRecipe},
	domain.CategoryShield:       {Pricing: PriceRecipe},
	domain.CategoryQuickUse:     {Pricing: PriceRecipe},
	domain.CategoryAmmo:         {Pricing: PriceRecipe, Bundled: true},
	domain.CategoryModification: {Pricing: PriceRecipe},
	domain.CategoryMaterial:     {Pricing: PriceSelf},
}

// PolicyFor returns the policy of category. ok is false for categories a
// loadout cannot hold.
func PolicyFor(category domain.Category) (Policy, bool) {
	p, ok := policies[category]
	return p, ok
}
