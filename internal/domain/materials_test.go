package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaterials_AddScaled(t *testing.T) {
	t.Run("scales and sums shared keys", func(t *testing.T) {
		m := Materials{"steel": 2}
		m.AddScaled(Materials{"steel": 3, "wire": 1}, 4)

		assert.Equal(t, Materials{"steel": 14, "wire": 4}, m)
	})

	t.Run("nil input contributes nothing", func(t *testing.T) {
		m := Materials{}
		m.AddScaled(nil, 3)

		assert.True(t, m.IsZero())
	})

	t.Run("zero factor contributes nothing", func(t *testing.T) {
		m := Materials{}
		m.AddScaled(Materials{"steel": 3}, 0)

		assert.True(t, m.IsZero())
	})

	t.Run("zero quantities never appear", func(t *testing.T) {
		m := Materials{}
		m.Add(Materials{"steel": 0, "wire": 2})

		assert.Equal(t, Materials{"wire": 2}, m)
	})
}

func TestMerge(t *testing.T) {
	a := Materials{"steel": 1, "wire": 2}
	b := Materials{"steel": 4}
	c := Materials{"cloth": 7, "wire": 1}

	want := Materials{"steel": 5, "wire": 3, "cloth": 7}

	permutations := [][]Materials{
		{a, b, c}, {a, c, b}, {b, a, c}, {b, c, a}, {c, a, b}, {c, b, a},
	}
	for _, p := range permutations {
		assert.Equal(t, want, Merge(p...))
	}

	assert.Equal(t, Merge(Merge(a, b), c), Merge(a, Merge(b, c)), "merge should be associative")
	assert.Equal(t, Materials{}, Merge(), "empty merge is the zero element")
	assert.Equal(t, Materials{"steel": 1, "wire": 2}, a, "inputs must not be mutated")
}

func TestMaterials_Rows(t *testing.T) {
	m := Materials{"wire": 2, "steel": 15, "cloth": 2}

	rows := m.Rows()

	assert.Equal(t, []MaterialRow{
		{MaterialID: "steel", Quantity: 15},
		{MaterialID: "cloth", Quantity: 2},
		{MaterialID: "wire", Quantity: 2},
	}, rows)
	assert.Equal(t, rows, m.Rows(), "rows must be stable across calls")
}

func TestMaterials_Clone(t *testing.T) {
	m := Materials{"steel": 1}
	c := m.Clone()
	c["steel"] = 99

	assert.Equal(t, 1, m["steel"])
	assert.Equal(t, Materials{}, Materials(nil).Clone())
}
