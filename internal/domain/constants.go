package domain

// Raw record type strings found in catalog files (compared lowercased)
const (
	ItemTypeAugment         = "augment"
	ItemTypeShield          = "shield"
	ItemTypeQuickUse        = "quick use"
	ItemTypeAmmunition      = "ammunition"
	ItemTypeAmmo            = "ammo"
	ItemTypeModification    = "modification"
	ItemTypeBasicMaterial   = "basic material"
	ItemTypeRefinedMaterial = "refined material"
	ItemTypeTopsideMaterial = "topside material"
)

// DefaultAmmoBundle is the number of rounds one ammo craft yields when the
// record does not say otherwise.
const DefaultAmmoBundle = 25

// Quantity bounds shared by the loadout and request validation
const (
	MinQuantity = 1
	MaxQuantity = 100000
)
