package loadout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LoadoutCalc_Go/internal/catalog"
	"github.com/osse101/LoadoutCalc_Go/internal/cost"
	"github.com/osse101/LoadoutCalc_Go/internal/domain"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]domain.Item{
		{ID: "rifle_i", Name: "Rifle I", IsWeapon: true, Recipe: domain.Materials{"steel": 10}},
		{ID: "rifle_ii", Name: "Rifle II", IsWeapon: true, UpgradeCost: domain.Materials{"steel": 5, "wire": 2}},
		{ID: "looting_mk1", Name: "Looting Augment", Type: "Augment", Recipe: domain.Materials{"cloth": 4}},
		{ID: "light_shield", Name: "Light Shield", Type: "Shield", Recipe: domain.Materials{"steel": 2}},
		{ID: "bandage", Name: "Bandage", Type: "Quick Use", Recipe: domain.Materials{"cloth": 2}},
		{ID: "light_ammo", Name: "Light Ammo", Type: "Ammunition", Recipe: domain.Materials{"metal_parts": 1}},
		{ID: "scope_ii", Name: "Scope II", Type: "Modification", Recipe: domain.Materials{"wire": 1}},
		{ID: "steel", Name: "Steel", Type: "Refined Material"},
		{ID: "wire", Name: "Wire", Type: "Basic Material"},
		{ID: "cloth", Type: "Topside Material"},
		{ID: "metal_parts", Type: "Basic Material"},
	})
}

func setup() (*Loadout, *cost.Calculator, *catalog.Catalog) {
	c := testCatalog()
	return New(c), cost.NewCalculator(c.Index(), cost.DefaultCacheSize), c
}

func TestAdd_CoalescesSameID(t *testing.T) {
	l, calc, _ := setup()

	require.NoError(t, l.Add(domain.CategoryWeapon, "rifle_ii", 2))
	require.NoError(t, l.Add(domain.CategoryWeapon, "rifle_ii", 3))

	entries := l.Entries(domain.CategoryWeapon)
	require.Len(t, entries, 1)
	assert.Equal(t, 5, entries[0].Quantity)

	single, _, _ := setup()
	require.NoError(t, single.Add(domain.CategoryWeapon, "rifle_ii", 5))
	assert.Equal(t, single.Totals(calc, cost.ModeTotal), l.Totals(calc, cost.ModeTotal))
}

func TestAdd_Rejections(t *testing.T) {
	l, _, _ := setup()

	tests := []struct {
		name     string
		category domain.Category
		id       string
		qty      int
		wantErr  error
	}{
		{"unknown id", domain.CategoryWeapon, "laser_i", 1, domain.ErrItemNotFound},
		{"id from another partition", domain.CategoryWeapon, "bandage", 1, domain.ErrItemNotFound},
		{"zero quantity", domain.CategoryWeapon, "rifle_i", 0, domain.ErrInvalidQuantity},
		{"negative quantity", domain.CategoryAmmo, "light_ammo", -3, domain.ErrInvalidQuantity},
		{"above maximum", domain.CategoryAmmo, "light_ammo", domain.MaxQuantity + 1, domain.ErrInvalidQuantity},
		{"unsupported category", domain.CategoryOther, "rifle_i", 1, domain.ErrUnknownCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := l.Add(tt.category, tt.id, tt.qty)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.True(t, l.IsEmpty())
}

func TestAdd_CoalescedQuantityBounded(t *testing.T) {
	l, _, _ := setup()

	require.NoError(t, l.Add(domain.CategoryWeapon, "rifle_ii", domain.MaxQuantity-1))
	require.NoError(t, l.Add(domain.CategoryWeapon, "rifle_ii", 1))

	err := l.Add(domain.CategoryWeapon, "rifle_ii", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Equal(t, domain.MaxQuantity, l.Entries(domain.CategoryWeapon)[0].Quantity)
}

func TestUnitCost_FollowsCategoryPolicy(t *testing.T) {
	_, calc, c := setup()

	tests := []struct {
		name string
		id   string
		mode cost.Mode
		want domain.Materials
	}{
		{"weapon total", "rifle_ii", cost.ModeTotal, domain.Materials{"steel": 15, "wire": 2}},
		{"weapon upgrade", "rifle_ii", cost.ModeUpgrade, domain.Materials{"steel": 5, "wire": 2}},
		{"tiered id modification is its recipe", "scope_ii", cost.ModeTotal, domain.Materials{"wire": 1}},
		{"modification ignores mode", "scope_ii", cost.ModeUpgrade, domain.Materials{"wire": 1}},
		{"ammo is one craft", "light_ammo", cost.ModeTotal, domain.Materials{"metal_parts": 1}},
		{"material is itself", "steel", cost.ModeTotal, domain.Materials{"steel": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, ok := c.Item(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.want, UnitCost(item, calc, tt.mode))
		})
	}

	t.Run("result is a copy", func(t *testing.T) {
		item, _ := c.Item("scope_ii")
		got := UnitCost(item, calc, cost.ModeTotal)
		got["wire"] = 99
		assert.Equal(t, domain.Materials{"wire": 1}, item.Recipe)
	})
}

func TestAddSelected_ResetsSelectorOnSuccess(t *testing.T) {
	l, _, _ := setup()
	sel := NewSelector()
	require.True(t, sel.SetText("4"))

	require.NoError(t, l.AddSelected(domain.CategoryQuickUse, "bandage", sel))
	assert.Equal(t, 4, l.Entries(domain.CategoryQuickUse)[0].Quantity)
	assert.Equal(t, 1, sel.Value())

	require.True(t, sel.SetText("7"))
	assert.Error(t, l.AddSelected(domain.CategoryQuickUse, "unknown", sel))
	assert.Equal(t, 7, sel.Value(), "failed add keeps the selection")
}

func TestRemove(t *testing.T) {
	l, _, _ := setup()
	require.NoError(t, l.Add(domain.CategoryWeapon, "rifle_i", 1))
	require.NoError(t, l.Add(domain.CategoryWeapon, "rifle_ii", 1))

	assert.ErrorIs(t, l.Remove(domain.CategoryWeapon, 2), domain.ErrInvalidIndex)
	assert.ErrorIs(t, l.Remove(domain.CategoryWeapon, -1), domain.ErrInvalidIndex)
	assert.ErrorIs(t, l.Remove(domain.CategoryAmmo, 0), domain.ErrInvalidIndex)

	require.NoError(t, l.Remove(domain.CategoryWeapon, 0))
	entries := l.Entries(domain.CategoryWeapon)
	require.Len(t, entries, 1)
	assert.Equal(t, "rifle_ii", entries[0].Item.ID)
}

func TestSetQuantity(t *testing.T) {
	l, _, _ := setup()
	require.NoError(t, l.Add(domain.CategoryShield, "light_shield", 1))

	require.NoError(t, l.SetQuantity(domain.CategoryShield, 0, 6))
	assert.Equal(t, 6, l.Entries(domain.CategoryShield)[0].Quantity)

	assert.ErrorIs(t, l.SetQuantity(domain.CategoryShield, 0, 0), domain.ErrInvalidQuantity)
	assert.ErrorIs(t, l.SetQuantity(domain.CategoryShield, 0, domain.MaxQuantity+1), domain.ErrInvalidQuantity)
	assert.ErrorIs(t, l.SetQuantity(domain.CategoryShield, 1, 2), domain.ErrInvalidIndex)
	assert.Equal(t, 6, l.Entries(domain.CategoryShield)[0].Quantity)
}

func TestEntries_ReturnsCopy(t *testing.T) {
	l, _, _ := setup()
	require.NoError(t, l.Add(domain.CategoryWeapon, "rifle_i", 1))

	entries := l.Entries(domain.CategoryWeapon)
	entries[0].Quantity = 99

	assert.Equal(t, 1, l.Entries(domain.CategoryWeapon)[0].Quantity)
}

func TestTotals_AmmoBundle(t *testing.T) {
	l, calc, _ := setup()
	require.NoError(t, l.Add(domain.CategoryAmmo, "light_ammo", 2))

	entry := l.Entries(domain.CategoryAmmo)[0]
	assert.Equal(t, 50, entry.Received())
	assert.Equal(t, 2, entry.Quantity)
	assert.Equal(t, domain.Materials{"metal_parts": 2}, l.Totals(calc, cost.ModeTotal))
}

func TestTotals_WeaponModeOnlyAffectsWeapons(t *testing.T) {
	l, calc, _ := setup()
	require.NoError(t, l.Add(domain.CategoryWeapon, "rifle_ii", 1))
	require.NoError(t, l.Add(domain.CategoryModification, "scope_ii", 2))

	assert.Equal(t, domain.Materials{"steel": 15, "wire": 4}, l.Totals(calc, cost.ModeTotal))
	assert.Equal(t, domain.Materials{"steel": 5, "wire": 4}, l.Totals(calc, cost.ModeUpgrade))
}

func TestTotals_MixedCategories(t *testing.T) {
	l, calc, _ := setup()
	require.NoError(t, l.Add(domain.CategoryWeapon, "rifle_i", 1))
	require.NoError(t, l.Add(domain.CategoryAugment, "looting_mk1", 1))
	require.NoError(t, l.Add(domain.CategoryShield, "light_shield", 2))
	require.NoError(t, l.Add(domain.CategoryQuickUse, "bandage", 3))
	require.NoError(t, l.Add(domain.CategoryMaterial, "wire", 5))

	want := domain.Materials{"steel": 14, "cloth": 10, "wire": 5}
	assert.Equal(t, want, l.Totals(calc, cost.ModeTotal))
	assert.Equal(t, domain.Materials{"wire": 5}, l.Subtotal(domain.CategoryMaterial, calc, cost.ModeTotal))
}

func TestTotals_MergeOrderIndependent(t *testing.T) {
	_, calc, _ := setup()

	forward, _, _ := setup()
	require.NoError(t, forward.Add(domain.CategoryWeapon, "rifle_ii", 1))
	require.NoError(t, forward.Add(domain.CategoryShield, "light_shield", 1))
	require.NoError(t, forward.Add(domain.CategoryMaterial, "steel", 3))

	backward, _, _ := setup()
	require.NoError(t, backward.Add(domain.CategoryMaterial, "steel", 3))
	require.NoError(t, backward.Add(domain.CategoryShield, "light_shield", 1))
	require.NoError(t, backward.Add(domain.CategoryWeapon, "rifle_ii", 1))

	assert.Equal(t, forward.Totals(calc, cost.ModeTotal), backward.Totals(calc, cost.ModeTotal))
}

func TestTotals_NoZeroEntries(t *testing.T) {
	c := catalog.New([]domain.Item{
		{ID: "plain_shield", Type: "Shield"},
	})
	l := New(c)
	require.NoError(t, l.Add(domain.CategoryShield, "plain_shield", 4))

	totals := l.Totals(cost.NewCalculator(c.Index(), 0), cost.ModeTotal)
	assert.Empty(t, totals)
}

func TestClear(t *testing.T) {
	l, calc, _ := setup()
	require.NoError(t, l.Add(domain.CategoryWeapon, "rifle_ii", 1))
	require.NoError(t, l.Add(domain.CategoryAmmo, "light_ammo", 1))
	require.NoError(t, l.Add(domain.CategoryMaterial, "cloth", 2))
	require.NoError(t, l.SetOwned("steel", 4))

	l.Clear()

	assert.True(t, l.IsEmpty())
	assert.Empty(t, l.Owned())
	assert.Empty(t, l.Totals(calc, cost.ModeTotal))
	for _, category := range domain.LoadoutCategories {
		assert.Empty(t, l.Entries(category), category)
	}
}

func TestOwnedAndNeeds(t *testing.T) {
	l, calc, c := setup()
	require.NoError(t, l.Add(domain.CategoryWeapon, "rifle_ii", 1))
	require.NoError(t, l.Add(domain.CategoryQuickUse, "bandage", 1))

	assert.ErrorIs(t, l.SetOwned("steel", -1), domain.ErrInvalidOwned)
	require.NoError(t, l.SetOwned("steel", 20))
	require.NoError(t, l.SetOwned("wire", 1))
	require.NoError(t, l.SetOwned("cloth", 3))
	require.NoError(t, l.SetOwned("cloth", 0))

	rows := l.Needs(l.Totals(calc, cost.ModeTotal), c)

	assert.Equal(t, []NeedRow{
		{MaterialID: "steel", Name: "Steel", Need: 15, Have: 20, Missing: 0},
		{MaterialID: "cloth", Name: "Cloth", Need: 2, Have: 0, Missing: 2},
		{MaterialID: "wire", Name: "Wire", Need: 2, Have: 1, Missing: 1},
	}, rows)
	assert.Equal(t, 3, MissingTotal(rows))

	SortByMissing(rows)
	assert.Equal(t, []string{"cloth", "wire", "steel"}, []string{rows[0].MaterialID, rows[1].MaterialID, rows[2].MaterialID})
}

func TestOwned_ReturnsCopy(t *testing.T) {
	l, _, _ := setup()
	require.NoError(t, l.SetOwned("steel", 2))

	owned := l.Owned()
	owned["steel"] = 100

	assert.Equal(t, domain.Materials{"steel": 2}, l.Owned())
}
