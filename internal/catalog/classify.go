package catalog

import (
	"strings"

	"github.com/osse101/LoadoutCalc_Go/internal/domain"
)

// Classify assigns a catalog partition to a record. Quick-use, ammo and
// modification records only count when they carry a recipe; ammo without an
// explicit craft quantity gets the default bundle.
func Classify(item domain.Item) domain.Item {
	item.Category = classify(item)
	if item.Category == domain.CategoryAmmo && item.BundleQuantity <= 0 {
		item.BundleQuantity = domain.DefaultAmmoBundle
	}
	return item
}

func classify(item domain.Item) domain.Category {
	if item.IsWeapon {
		return domain.CategoryWeapon
	}

	switch strings.ToLower(strings.TrimSpace(item.Type)) {
	case domain.ItemTypeAugment:
		return domain.CategoryAugment
	case domain.ItemTypeShield:
		return domain.CategoryShield
	case domain.ItemTypeQuickUse:
		if item.HasRecipe() {
			return domain.CategoryQuickUse
		}
	case domain.ItemTypeAmmunition, domain.ItemTypeAmmo:
		if item.HasRecipe() {
			return domain.CategoryAmmo
		}
	case domain.ItemTypeModification:
		if item.HasRecipe() {
			return domain.CategoryModification
		}
	case domain.ItemTypeBasicMaterial, domain.ItemTypeRefinedMaterial, domain.ItemTypeTopsideMaterial:
		return domain.CategoryMaterial
	}

	return domain.CategoryOther
}
