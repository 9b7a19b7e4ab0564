package loadout

import (
	"strconv"
	"strings"

	"github.com/osse101/LoadoutCalc_Go/internal/domain"
)

// Selector is the quantity input next to a catalog list. It always holds a
// valid quantity; rejected input leaves the previous value in place.
type Selector struct {
	value int
}

// NewSelector returns a selector at the minimum quantity.
func NewSelector() *Selector {
	return &Selector{value: domain.MinQuantity}
}

// Value returns the current quantity.
func (s *Selector) Value() int {
	return s.value
}

// Text renders the current quantity.
func (s *Selector) Text() string {
	return strconv.Itoa(s.value)
}

// Increment raises the quantity by one, up to domain.MaxQuantity.
func (s *Selector) Increment() {
	if s.value < domain.MaxQuantity {
		s.value++
	}
}

// Decrement lowers the quantity by one, never below domain.MinQuantity.
func (s *Selector) Decrement() {
	if s.value > domain.MinQuantity {
		s.value--
	}
}

// Reset returns the selector to the minimum quantity.
func (s *Selector) Reset() {
	s.value = domain.MinQuantity
}

// SetText parses typed input. Non-numeric or out of range input is rejected.
func (s *Selector) SetText(text string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < domain.MinQuantity || n > domain.MaxQuantity {
		return false
	}
	s.value = n
	return true
}
