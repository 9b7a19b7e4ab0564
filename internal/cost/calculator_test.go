package cost

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LoadoutCalc_Go/internal/domain"
	"github.com/osse101/LoadoutCalc_Go/internal/testing/leaktest"
)

type mapLookup map[string]domain.Item

func (m mapLookup) Get(id string) (domain.Item, bool) {
	item, ok := m[id]
	return item, ok
}

func rifleCatalog() mapLookup {
	return mapLookup{
		"rifle_i":   {ID: "rifle_i", Recipe: domain.Materials{"steel": 10}},
		"rifle_ii":  {ID: "rifle_ii", UpgradeCost: domain.Materials{"steel": 5, "wire": 2}},
		"rifle_iii": {ID: "rifle_iii", UpgradeCost: domain.Materials{"steel": 7, "optics": 1}},
		"bandage":   {ID: "bandage", Recipe: domain.Materials{"cloth": 3}},
		"gap_i":     {ID: "gap_i", Recipe: domain.Materials{"steel": 1}},
		"gap_iii":   {ID: "gap_iii", UpgradeCost: domain.Materials{"steel": 3}},
	}
}

func TestCalculator_RifleScenario(t *testing.T) {
	calc := NewCalculator(rifleCatalog(), DefaultCacheSize)

	assert.Equal(t, domain.Materials{"steel": 15, "wire": 2}, calc.Cost("rifle_ii", ModeTotal))
	assert.Equal(t, domain.Materials{"steel": 5, "wire": 2}, calc.Cost("rifle_ii", ModeUpgrade))
}

func TestCalculator_FullCraftCost(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want domain.Materials
	}{
		{"tier one is its recipe", "rifle_i", domain.Materials{"steel": 10}},
		{"tier three walks every step", "rifle_iii", domain.Materials{"steel": 22, "wire": 2, "optics": 1}},
		{"non-tiered uses own recipe", "bandage", domain.Materials{"cloth": 3}},
		{"missing tier contributes nothing", "gap_iii", domain.Materials{"steel": 4}},
		{"unknown id is empty", "nothing_iv", domain.Materials{}},
		{"uppercase numeral", "rifle_II", domain.Materials{"steel": 15, "wire": 2}},
	}

	calc := NewCalculator(rifleCatalog(), 0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.FullCraftCost(tt.id))
		})
	}
}

func TestCalculator_UpgradeCost(t *testing.T) {
	calc := NewCalculator(rifleCatalog(), DefaultCacheSize)

	assert.Equal(t, domain.Materials{"steel": 10}, calc.UpgradeCost("rifle_i"))
	assert.Equal(t, domain.Materials{"steel": 7, "optics": 1}, calc.UpgradeCost("rifle_iii"))
	assert.Equal(t, domain.Materials{"cloth": 3}, calc.UpgradeCost("bandage"))
	assert.Empty(t, calc.UpgradeCost("gap_ii"))
}

func TestCalculator_ReturnsCopies(t *testing.T) {
	calc := NewCalculator(rifleCatalog(), DefaultCacheSize)

	first := calc.FullCraftCost("rifle_ii")
	first["steel"] = 9999
	first["junk"] = 1

	second := calc.FullCraftCost("rifle_ii")
	assert.Equal(t, domain.Materials{"steel": 15, "wire": 2}, second)
}

func TestCalculator_DoesNotMutateCatalog(t *testing.T) {
	items := rifleCatalog()
	calc := NewCalculator(items, DefaultCacheSize)

	_ = calc.FullCraftCost("rifle_iii")

	assert.Equal(t, domain.Materials{"steel": 10}, items["rifle_i"].Recipe)
	assert.Equal(t, domain.Materials{"steel": 5, "wire": 2}, items["rifle_ii"].UpgradeCost)
}

func TestCalculator_ConcurrentLookups(t *testing.T) {
	calc := NewCalculator(rifleCatalog(), 4)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if i%2 == 0 {
					assert.Equal(t, domain.Materials{"steel": 22, "wire": 2, "optics": 1}, calc.FullCraftCost("rifle_iii"))
				} else {
					assert.Equal(t, domain.Materials{"steel": 5, "wire": 2}, calc.UpgradeCost("rifle_ii"))
				}
			}
		}()
	}
	wg.Wait()
}

func TestCalculator_CacheStaysBounded(t *testing.T) {
	items := mapLookup{}
	for i := range 5000 {
		id := fmt.Sprintf("part_%04d", i)
		items[id] = domain.Item{ID: id, Recipe: domain.Materials{"steel": i, "wire": 1}}
	}
	calc := NewCalculator(items, 32)

	checker := leaktest.NewMemoryChecker(t)
	for range 3 {
		for id := range items {
			_ = calc.FullCraftCost(id)
			_ = calc.UpgradeCost(id)
		}
	}
	checker.Check(4.0)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeTotal, false},
		{"total", ModeTotal, false},
		{"UPGRADE", ModeUpgrade, false},
		{" upgrade ", ModeUpgrade, false},
		{"marginal", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMode_Toggle(t *testing.T) {
	assert.Equal(t, ModeUpgrade, ModeTotal.Toggle())
	assert.Equal(t, ModeTotal, ModeUpgrade.Toggle())
}

func BenchmarkCalculator_FullCraftCost(b *testing.B) {
	calc := NewCalculator(rifleCatalog(), DefaultCacheSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = calc.FullCraftCost("rifle_iii")
	}
}
