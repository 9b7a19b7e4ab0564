package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEntry struct {
	Category string `json:"category" validate:"required,category"`
	Mode     string `json:"mode" validate:"omitempty,costmode"`
	Quantity int    `json:"quantity" validate:"min=1,max=100000"`
}

type testEnvelope struct {
	Entries []testEntry `json:"entries" validate:"dive"`
}

// =============================================================================
// Validator Tests
// =============================================================================

func TestValidator_CategoryValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name     string
		category string
		wantErr  bool
	}{
		// Best case
		{"weapons", "weapons", false},
		{"quick use", "quick_use", false},

		// Edge - case and separator insensitive
		{"uppercase", "AMMO", false},
		{"dashed", "quick-use", false},

		// Invalid
		{"empty", "", true},
		{"unknown", "vehicles", true},
		{"singular", "weapon", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(testEntry{Category: tt.category, Quantity: 1})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_CostModeValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		mode    string
		wantErr bool
	}{
		{"empty defaults to total", "", false},
		{"total", "total", false},
		{"upgrade", "Upgrade", false},
		{"unknown", "marginal", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(testEntry{Category: "weapons", Mode: tt.mode, Quantity: 1})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_QuantityBoundaries(t *testing.T) {
	InitValidator()
	v := GetValidator()

	for _, tt := range []struct {
		quantity int
		wantErr  bool
	}{
		{-1, true},
		{0, true},
		{1, false},
		{100000, false},
		{100001, true},
	} {
		err := v.ValidateStruct(testEntry{Category: "weapons", Quantity: tt.quantity})
		assert.Equal(t, tt.wantErr, err != nil, "quantity=%d", tt.quantity)
	}
}

func TestFormatValidationError(t *testing.T) {
	InitValidator()
	v := GetValidator()

	t.Run("nested fields use JSON paths", func(t *testing.T) {
		err := v.ValidateStruct(testEnvelope{Entries: []testEntry{
			{Category: "weapons", Quantity: 1},
			{Category: "vehicles", Mode: "cheap", Quantity: 0},
		}})
		require.Error(t, err)

		fields := FormatValidationError(err)
		assert.Equal(t, map[string]string{
			"entries[1].category": "Invalid category",
			"entries[1].mode":     "Invalid cost mode",
			"entries[1].quantity": "Must be at least 1",
		}, fields)
	})

	t.Run("non validation error", func(t *testing.T) {
		fields := FormatValidationError(assert.AnError)
		assert.Equal(t, map[string]string{"error": "Invalid request format"}, fields)
	})

	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})
}
