package domain

import "sort"

// Materials maps material id to quantity. The empty (or nil) map is the zero
// element; Merge is the sum-by-key reducer over it.
type Materials map[string]int

// MaterialRow is one line of a rendered material bill.
type MaterialRow struct {
	MaterialID string `json:"material_id"`
	Quantity   int    `json:"quantity"`
}

// AddScaled accumulates other*factor into m. Non-positive contributions are
// ignored so the map never holds zero or negative entries.
func (m Materials) AddScaled(other Materials, factor int) {
	if factor <= 0 {
		return
	}
	for id, qty := range other {
		if qty <= 0 {
			continue
		}
		m[id] += qty * factor
	}
}

// Add accumulates other into m.
func (m Materials) Add(other Materials) {
	m.AddScaled(other, 1)
}

// Clone returns an independent copy. Cloning nil yields an empty map.
func (m Materials) Clone() Materials {
	out := make(Materials, len(m))
	for id, qty := range m {
		out[id] = qty
	}
	return out
}

// IsZero reports whether m has no entries.
func (m Materials) IsZero() bool {
	return len(m) == 0
}

// Rows returns the bill sorted by descending quantity, ties broken by id.
func (m Materials) Rows() []MaterialRow {
	rows := make([]MaterialRow, 0, len(m))
	for id, qty := range m {
		rows = append(rows, MaterialRow{MaterialID: id, Quantity: qty})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Quantity != rows[j].Quantity {
			return rows[i].Quantity > rows[j].Quantity
		}
		return rows[i].MaterialID < rows[j].MaterialID
	})
	return rows
}

// Merge sums any number of maps into a fresh one. The operation is
// associative and commutative, and Merge() returns the zero element.
func Merge(parts ...Materials) Materials {
	out := make(Materials)
	for _, p := range parts {
		out.Add(p)
	}
	return out
}
