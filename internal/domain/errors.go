package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgItemNotFound      = "item not found"
	ErrMsgUnknownCategory   = "unknown category"
	ErrMsgCatalogNotLoaded  = "catalog not loaded"
	ErrMsgMaterialNotFound  = "material not found"
	ErrMsgInvalidItemRecord = "invalid item record"

	// Loadout errors
	ErrMsgInvalidQuantity = "quantity out of range"
	ErrMsgInvalidIndex    = "entry index out of range"
	ErrMsgInvalidOwned    = "owned amount cannot be negative"

	// Cost errors
	ErrMsgInvalidMode = "invalid cost mode"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrItemNotFound      = errors.New(ErrMsgItemNotFound)
	ErrUnknownCategory   = errors.New(ErrMsgUnknownCategory)
	ErrCatalogNotLoaded  = errors.New(ErrMsgCatalogNotLoaded)
	ErrMaterialNotFound  = errors.New(ErrMsgMaterialNotFound)
	ErrInvalidItemRecord = errors.New(ErrMsgInvalidItemRecord)

	ErrInvalidQuantity = errors.New(ErrMsgInvalidQuantity)
	ErrInvalidIndex    = errors.New(ErrMsgInvalidIndex)
	ErrInvalidOwned    = errors.New(ErrMsgInvalidOwned)

	ErrInvalidMode = errors.New(ErrMsgInvalidMode)
)
