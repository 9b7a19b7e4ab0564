package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LoadoutCalc_Go/internal/catalog"
	"github.com/osse101/LoadoutCalc_Go/internal/cost"
	"github.com/osse101/LoadoutCalc_Go/internal/domain"
)

// MockStore mocks the catalog store for handlers
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Current() (*catalog.Snapshot, error) {
	args := m.Called()
	if snap := args.Get(0); snap != nil {
		return snap.(*catalog.Snapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) Reload(ctx context.Context) (*catalog.Snapshot, error) {
	args := m.Called(ctx)
	if snap := args.Get(0); snap != nil {
		return snap.(*catalog.Snapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

func testSnapshot() *catalog.Snapshot {
	c := catalog.New([]domain.Item{
		{ID: "rifle_i", Name: "Rifle I", IsWeapon: true, Recipe: domain.Materials{"steel": 10}},
		{ID: "rifle_ii", Name: "Rifle II", IsWeapon: true, UpgradeCost: domain.Materials{"steel": 5, "wire": 2}},
		{ID: "rifle_iv", Name: "Rifle IV", IsWeapon: true, UpgradeCost: domain.Materials{"steel": 9}},
		{ID: "light_shield", Name: "Light Shield", Type: "Shield", Recipe: domain.Materials{"steel": 2}},
		{ID: "light_ammo", Name: "Light Ammo", Type: "Ammunition", Recipe: domain.Materials{"metal_parts": 1}},
		{ID: "steel", Name: "Steel", Type: "Refined Material", RecyclesInto: domain.Materials{"metal_parts": 2}},
		{ID: "wire", Name: "Wire", Type: "Basic Material"},
		{ID: "metal_parts", Type: "Basic Material"},
		{ID: "old_radio", Name: "Old Radio", Type: "Recyclable", RecyclesInto: domain.Materials{"wire": 3, "metal_parts": 4}},
	})
	return &catalog.Snapshot{
		Catalog:    c,
		Report:     &catalog.LoadReport{Dir: "testdata", FilesRead: 9},
		Calculator: cost.NewCalculator(c.Index(), cost.DefaultCacheSize),
		LoadedAt:   time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC),
	}
}

func readyStore() *MockStore {
	store := &MockStore{}
	store.On("Current").Return(testSnapshot(), nil)
	return store
}

// withURLParams attaches chi route parameters to a request
func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
