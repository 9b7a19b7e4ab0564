package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LoadoutCalc_Go/internal/catalog"
	"github.com/osse101/LoadoutCalc_Go/internal/cost"
	"github.com/osse101/LoadoutCalc_Go/internal/domain"
)

func TestCatalogHandler_Overview(t *testing.T) {
	h := NewCatalogHandler(readyStore())
	w := httptest.NewRecorder()

	h.HandleOverview(w, httptest.NewRequest("GET", "/api/v1/catalog", nil))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[CatalogOverviewResponse](t, w)
	assert.Equal(t, 9, resp.Total)
	require.Len(t, resp.Categories, len(domain.LoadoutCategories))
	assert.Equal(t, CategorySummary{Category: domain.CategoryWeapon, Title: "Weapons", Count: 3}, resp.Categories[0])
}

func TestCatalogHandler_ListCategory(t *testing.T) {
	tests := []struct {
		name       string
		category   string
		wantStatus int
		wantIDs    []string
	}{
		{"weapons sorted by name", "weapons", http.StatusOK, []string{"rifle_i", "rifle_ii", "rifle_iv"}},
		{"dash and case tolerant", "Quick-Use", http.StatusOK, []string{}},
		{"materials", "materials", http.StatusOK, []string{"metal_parts", "steel", "wire"}},
		{"unknown category", "vehicles", http.StatusNotFound, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewCatalogHandler(readyStore())
			req := withURLParams(httptest.NewRequest("GET", "/api/v1/catalog/"+tt.category, nil),
				map[string]string{"category": tt.category})
			w := httptest.NewRecorder()

			h.HandleListCategory(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Contains(t, w.Body.String(), ErrMsgUnknownCategoryErr)
				return
			}
			resp := decodeBody[CatalogResponse](t, w)
			ids := make([]string, 0, len(resp.Items))
			for _, item := range resp.Items {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestCatalogHandler_GetItem(t *testing.T) {
	h := NewCatalogHandler(readyStore())

	t.Run("returns tier decomposition", func(t *testing.T) {
		req := withURLParams(httptest.NewRequest("GET", "/api/v1/items/rifle_ii", nil), map[string]string{"id": "rifle_ii"})
		w := httptest.NewRecorder()

		h.HandleGetItem(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[ItemResponse](t, w)
		assert.Equal(t, "rifle", resp.Family)
		assert.Equal(t, 2, resp.Level)
		assert.Equal(t, "ii", resp.Numeral)
		assert.Equal(t, domain.CategoryWeapon, resp.Item.Category)
	})

	t.Run("unknown item", func(t *testing.T) {
		req := withURLParams(httptest.NewRequest("GET", "/api/v1/items/laser", nil), map[string]string{"id": "laser"})
		w := httptest.NewRecorder()

		h.HandleGetItem(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgItemNotFoundError)
	})
}

func TestCatalogHandler_GetItemCost(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		mode       string
		wantStatus int
		wantCost   domain.Materials
	}{
		{"total is the default", "rifle_ii", "", http.StatusOK, domain.Materials{"steel": 15, "wire": 2}},
		{"upgrade mode", "rifle_ii", "upgrade", http.StatusOK, domain.Materials{"steel": 5, "wire": 2}},
		{"gap in tiers contributes nothing", "rifle_iv", "total", http.StatusOK, domain.Materials{"steel": 24, "wire": 2}},
		{"bad mode", "rifle_ii", "cheapest", http.StatusBadRequest, nil},
		{"unknown item", "laser_ii", "total", http.StatusNotFound, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewCatalogHandler(readyStore())
			target := "/api/v1/items/" + tt.id + "/cost"
			if tt.mode != "" {
				target += "?mode=" + tt.mode
			}
			req := withURLParams(httptest.NewRequest("GET", target, nil), map[string]string{"id": tt.id})
			w := httptest.NewRecorder()

			h.HandleGetItemCost(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				resp := decodeBody[CostResponse](t, w)
				assert.Equal(t, tt.wantCost, resp.Cost)
				assert.Len(t, resp.Rows, len(tt.wantCost))
			}
		})
	}
}

func TestCatalogHandler_Recycle(t *testing.T) {
	h := NewCatalogHandler(readyStore())

	t.Run("index", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.HandleListRecyclable(w, httptest.NewRequest("GET", "/api/v1/recycle", nil))

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[[]RecyclableMaterial](t, w)
		assert.Equal(t, []RecyclableMaterial{
			{MaterialID: "metal_parts", Name: "Metal Parts", Sources: 2},
			{MaterialID: "wire", Name: "Wire", Sources: 1},
		}, resp)
	})

	t.Run("sources sorted by yield", func(t *testing.T) {
		req := withURLParams(httptest.NewRequest("GET", "/api/v1/recycle/metal_parts", nil), map[string]string{"materialID": "metal_parts"})
		w := httptest.NewRecorder()

		h.HandleGetRecycleSources(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[RecycleResponse](t, w)
		assert.Equal(t, []catalog.RecycleSource{
			{SourceItemID: "old_radio", SourceName: "Old Radio", Amount: 4},
			{SourceItemID: "steel", SourceName: "Steel", Amount: 2},
		}, resp.Sources)
	})

	t.Run("known material without sources", func(t *testing.T) {
		req := withURLParams(httptest.NewRequest("GET", "/api/v1/recycle/steel", nil), map[string]string{"materialID": "steel"})
		w := httptest.NewRecorder()

		h.HandleGetRecycleSources(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decodeBody[RecycleResponse](t, w).Sources)
	})

	t.Run("unknown material", func(t *testing.T) {
		req := withURLParams(httptest.NewRequest("GET", "/api/v1/recycle/unobtainium", nil), map[string]string{"materialID": "unobtainium"})
		w := httptest.NewRecorder()

		h.HandleGetRecycleSources(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCatalogHandler_NotLoaded(t *testing.T) {
	store := &MockStore{}
	store.On("Current").Return(nil, domain.ErrCatalogNotLoaded)
	h := NewCatalogHandler(store)

	w := httptest.NewRecorder()
	h.HandleListMaterials(w, httptest.NewRequest("GET", "/api/v1/materials", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgCatalogNotLoadedErr)
	store.AssertExpectations(t)
}

func TestCatalogHandler_Materials(t *testing.T) {
	h := NewCatalogHandler(readyStore())
	w := httptest.NewRecorder()

	h.HandleListMaterials(w, httptest.NewRequest("GET", "/api/v1/materials", nil))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[map[string]catalog.MaterialMeta](t, w)
	assert.Equal(t, "Steel", resp["steel"].Name)
	assert.Len(t, resp, 9)
}

func TestCatalogHandler_ItemCostMatchesLoadoutTotals(t *testing.T) {
	c := catalog.New([]domain.Item{
		{ID: "compensator_i", Name: "Compensator I", Type: "Modification", Recipe: domain.Materials{"metal_parts": 2}},
		{ID: "compensator_ii", Name: "Compensator II", Type: "Modification", Recipe: domain.Materials{"metal_parts": 5, "springs": 1}},
		{ID: "rifle_i", Name: "Rifle I", IsWeapon: true, Recipe: domain.Materials{"steel": 10}},
		{ID: "rifle_ii", Name: "Rifle II", IsWeapon: true, UpgradeCost: domain.Materials{"steel": 5, "wire": 2}},
	})
	store := &MockStore{}
	store.On("Current").Return(&catalog.Snapshot{
		Catalog:    c,
		Report:     &catalog.LoadReport{Dir: "testdata", FilesRead: 4},
		Calculator: cost.NewCalculator(c.Index(), cost.DefaultCacheSize),
	}, nil)

	tests := []struct {
		name       string
		category   domain.Category
		id         string
		mode       cost.Mode
		wantCost   domain.Materials
		wantMode   cost.Mode
		wantTiered bool
	}{
		{"modification is its own recipe", domain.CategoryModification, "compensator_ii", cost.ModeTotal,
			domain.Materials{"metal_parts": 5, "springs": 1}, cost.ModeTotal, false},
		{"modification ignores upgrade mode", domain.CategoryModification, "compensator_ii", cost.ModeUpgrade,
			domain.Materials{"metal_parts": 5, "springs": 1}, cost.ModeTotal, false},
		{"weapon total", domain.CategoryWeapon, "rifle_ii", cost.ModeTotal,
			domain.Materials{"steel": 15, "wire": 2}, cost.ModeTotal, true},
		{"weapon upgrade", domain.CategoryWeapon, "rifle_ii", cost.ModeUpgrade,
			domain.Materials{"steel": 5, "wire": 2}, cost.ModeUpgrade, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewCatalogHandler(store)
			req := withURLParams(httptest.NewRequest("GET", "/api/v1/items/"+tt.id+"/cost?mode="+string(tt.mode), nil),
				map[string]string{"id": tt.id})
			w := httptest.NewRecorder()

			h.HandleGetItemCost(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			item := decodeBody[CostResponse](t, w)
			assert.Equal(t, tt.wantCost, item.Cost)
			assert.Equal(t, tt.wantMode, item.Mode)
			assert.Equal(t, tt.wantTiered, item.Tiered)

			body := fmt.Sprintf(`{"weapon_mode": %q, "entries": [{"category": %q, "item_id": %q, "quantity": 1}]}`,
				tt.mode, tt.category, tt.id)
			tw := postTotals(t, store, body)
			require.Equal(t, http.StatusOK, tw.Code, tw.Body.String())
			totals := decodeBody[TotalsResponse](t, tw)
			assert.Equal(t, item.Cost, totals.Totals)
		})
	}
}
