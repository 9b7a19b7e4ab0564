package domain

// Item is a single catalog record. Tiered families encode their level in the
// id suffix (e.g. "anvil_iv"); everything else is treated as tier 1.
//
// Recipe is the cost to craft the item from nothing. UpgradeCost is the cost to
// reach this tier from the previous one. A nil map means the field was absent
// or malformed in the source data.
type Item struct {
	ID             string    `json:"id"`
	Name           string    `json:"name,omitempty"`
	ImageFilename  string    `json:"image_filename,omitempty"`
	Type           string    `json:"type,omitempty"`
	IsWeapon       bool      `json:"is_weapon,omitempty"`
	Category       Category  `json:"category,omitempty"`
	Recipe         Materials `json:"recipe,omitempty"`
	UpgradeCost    Materials `json:"upgrade_cost,omitempty"`
	BundleQuantity int       `json:"bundle_quantity,omitempty"`
	StackSize      int       `json:"stack_size,omitempty"`
	RecyclesInto   Materials `json:"recycles_into,omitempty"`
}

// DisplayName returns the localized name, falling back to the id.
func (i Item) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	return i.ID
}

// HasRecipe reports whether the item can be crafted from scratch.
func (i Item) HasRecipe() bool {
	return len(i.Recipe) > 0
}

// Bundle returns the number of units produced per craft action.
func (i Item) Bundle() int {
	if i.BundleQuantity > 0 {
		return i.BundleQuantity
	}
	return 1
}
