package domain

import "strings"

// Category partitions the catalog. The cost aggregator never branches on it;
// loadout policies do.
type Category string

const (
	CategoryWeapon       Category = "weapons"
	CategoryAugment      Category = "augments"
	CategoryShield       Category = "shields"
	CategoryQuickUse     Category = "quick_use"
	CategoryAmmo         Category = "ammo"
	CategoryModification Category = "modifications"
	CategoryMaterial     Category = "materials"
	CategoryOther        Category = ""
)

// LoadoutCategories lists the categories a loadout can hold, in display order.
// Materials are accepted as freeform extra entries.
var LoadoutCategories = []Category{
	CategoryWeapon,
	CategoryAugment,
	CategoryShield,
	CategoryQuickUse,
	CategoryAmmo,
	CategoryModification,
	CategoryMaterial,
}

// Title returns the heading used for the category in listings.
func (c Category) Title() string {
	switch c {
	case CategoryWeapon:
		return "Weapons"
	case CategoryAugment:
		return "Augments"
	case CategoryShield:
		return "Shields"
	case CategoryQuickUse:
		return "Quick Use"
	case CategoryAmmo:
		return "Ammo"
	case CategoryModification:
		return "Modifications"
	case CategoryMaterial:
		return "Extra Materials"
	default:
		return "Other"
	}
}

// ParseCategory resolves a category from its wire name. Matching ignores case
// and accepts "-" in place of "_".
func ParseCategory(s string) (Category, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for _, c := range LoadoutCategories {
		if string(c) == normalized {
			return c, nil
		}
	}
	return CategoryOther, ErrUnknownCategory
}
