package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/LoadoutCalc_Go/internal/catalog"
	"github.com/osse101/LoadoutCalc_Go/internal/cost"
	"github.com/osse101/LoadoutCalc_Go/internal/domain"
	"github.com/osse101/LoadoutCalc_Go/internal/loadout"
	"github.com/osse101/LoadoutCalc_Go/internal/tier"
)

// SnapshotSource hands out the active catalog snapshot. *catalog.Store
// satisfies it.
type SnapshotSource interface {
	Current() (*catalog.Snapshot, error)
}

// CatalogHandler serves read-only catalog lookups
type CatalogHandler struct {
	store SnapshotSource
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(store SnapshotSource) *CatalogHandler {
	return &CatalogHandler{store: store}
}

// CategorySummary is one partition in the catalog overview
type CategorySummary struct {
	Category domain.Category `json:"category"`
	Title    string          `json:"title"`
	Count    int             `json:"count"`
}

// CatalogOverviewResponse lists every partition and its size
type CatalogOverviewResponse struct {
	Categories []CategorySummary `json:"categories"`
	Total      int               `json:"total"`
}

// CatalogResponse is one sorted partition
type CatalogResponse struct {
	Category domain.Category `json:"category"`
	Title    string          `json:"title"`
	Items    []domain.Item   `json:"items"`
}

// ItemResponse is a record plus its tier decomposition
type ItemResponse struct {
	Item    domain.Item `json:"item"`
	Family  string      `json:"family"`
	Level   int         `json:"level"`
	Numeral string      `json:"numeral,omitempty"`
}

// CostResponse is the material cost of one unit of an item. Mode is always
// total for items outside tiered categories.
type CostResponse struct {
	ItemID string               `json:"item_id"`
	Mode   cost.Mode            `json:"mode"`
	Tiered bool                 `json:"tiered"`
	Cost   domain.Materials     `json:"cost"`
	Rows   []domain.MaterialRow `json:"rows"`
}

// RecycleResponse lists the items that break down into a material
type RecycleResponse struct {
	MaterialID string                  `json:"material_id"`
	Name       string                  `json:"name"`
	Sources    []catalog.RecycleSource `json:"sources"`
}

// RecyclableMaterial is one entry of the recycle index
type RecyclableMaterial struct {
	MaterialID string `json:"material_id"`
	Name       string `json:"name"`
	Sources    int    `json:"sources"`
}

// HandleOverview lists the partitions
// @Summary Catalog overview
// @Tags catalog
// @Produce json
// @Success 200 {object} CatalogOverviewResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/catalog [get]
func (h *CatalogHandler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	snap, err := h.store.Current()
	if err != nil {
		respondServiceError(w, r, "Catalog overview", err)
		return
	}

	counts := snap.Catalog.Counts()
	resp := CatalogOverviewResponse{Total: snap.Catalog.Len()}
	for _, category := range domain.LoadoutCategories {
		resp.Categories = append(resp.Categories, CategorySummary{
			Category: category,
			Title:    category.Title(),
			Count:    counts[category],
		})
	}
	respondJSON(w, http.StatusOK, resp)
}

// HandleListCategory returns one partition sorted by display name
// @Summary List catalog partition
// @Tags catalog
// @Produce json
// @Param category path string true "weapons, augments, shields, quick_use, ammo, modifications or materials"
// @Success 200 {object} CatalogResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/catalog/{category} [get]
func (h *CatalogHandler) HandleListCategory(w http.ResponseWriter, r *http.Request) {
	category, err := domain.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		respondServiceError(w, r, "List category", err)
		return
	}
	snap, err := h.store.Current()
	if err != nil {
		respondServiceError(w, r, "List category", err)
		return
	}

	respondJSON(w, http.StatusOK, CatalogResponse{
		Category: category,
		Title:    category.Title(),
		Items:    snap.Catalog.Partition(category),
	})
}

// HandleGetItem returns a single record
// @Summary Get item
// @Tags catalog
// @Produce json
// @Param id path string true "Item id"
// @Success 200 {object} ItemResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{id} [get]
func (h *CatalogHandler) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	_, item, ok := h.lookupItem(w, r, "Get item")
	if !ok {
		return
	}

	family, level := tier.Decompose(item.ID)
	numeral, _ := tier.Numeral(level)
	respondJSON(w, http.StatusOK, ItemResponse{
		Item:    item,
		Family:  family,
		Level:   level,
		Numeral: numeral,
	})
}

// HandleGetItemCost prices one unit of an item
// @Summary Get item cost
// @Description Weapons honour the mode: total includes every lower tier, upgrade is the step from the previous tier only. Other items cost their own recipe.
// @Tags catalog
// @Produce json
// @Param id path string true "Item id"
// @Param mode query string false "total (default) or upgrade"
// @Success 200 {object} CostResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{id}/cost [get]
func (h *CatalogHandler) HandleGetItemCost(w http.ResponseWriter, r *http.Request) {
	mode, err := cost.ParseMode(GetOptionalQueryParam(r, "mode", string(cost.ModeTotal)))
	if err != nil {
		respondServiceError(w, r, "Get item cost", err)
		return
	}
	snap, item, ok := h.lookupItem(w, r, "Get item cost")
	if !ok {
		return
	}

	policy, _ := loadout.PolicyFor(item.Category)
	tiered := policy.Pricing == loadout.PriceTiered
	if !tiered {
		mode = cost.ModeTotal
	}

	materials := loadout.UnitCost(item, snap.Calculator, mode)
	respondJSON(w, http.StatusOK, CostResponse{
		ItemID: item.ID,
		Mode:   mode,
		Tiered: tiered,
		Cost:   materials,
		Rows:   materials.Rows(),
	})
}

// HandleListMaterials returns presentation metadata keyed by id
// @Summary Materials by id
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]catalog.MaterialMeta
// @Router /api/v1/materials [get]
func (h *CatalogHandler) HandleListMaterials(w http.ResponseWriter, r *http.Request) {
	snap, err := h.store.Current()
	if err != nil {
		respondServiceError(w, r, "List materials", err)
		return
	}
	respondJSON(w, http.StatusOK, snap.Catalog.MaterialsByID())
}

// HandleListRecyclable lists the materials that some item recycles into
// @Summary Recyclable materials
// @Tags recycle
// @Produce json
// @Success 200 {array} RecyclableMaterial
// @Router /api/v1/recycle [get]
func (h *CatalogHandler) HandleListRecyclable(w http.ResponseWriter, r *http.Request) {
	snap, err := h.store.Current()
	if err != nil {
		respondServiceError(w, r, "List recyclable materials", err)
		return
	}

	graph := snap.Catalog.Recycle()
	ids := graph.MaterialIDs()
	out := make([]RecyclableMaterial, 0, len(ids))
	for _, id := range ids {
		out = append(out, RecyclableMaterial{
			MaterialID: id,
			Name:       snap.Catalog.MaterialName(id),
			Sources:    len(graph.Sources(id)),
		})
	}
	respondJSON(w, http.StatusOK, out)
}

// HandleGetRecycleSources lists the items that yield a material, best yield first
// @Summary Recycle sources
// @Tags recycle
// @Produce json
// @Param materialID path string true "Material id"
// @Success 200 {object} RecycleResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/recycle/{materialID} [get]
func (h *CatalogHandler) HandleGetRecycleSources(w http.ResponseWriter, r *http.Request) {
	materialID := chi.URLParam(r, "materialID")
	snap, err := h.store.Current()
	if err != nil {
		respondServiceError(w, r, "Recycle sources", err)
		return
	}

	sources := snap.Catalog.Recycle().Sources(materialID)
	if _, known := snap.Catalog.Item(materialID); !known && len(sources) == 0 {
		respondServiceError(w, r, "Recycle sources", fmt.Errorf("%w: %s", domain.ErrMaterialNotFound, materialID))
		return
	}

	respondJSON(w, http.StatusOK, RecycleResponse{
		MaterialID: materialID,
		Name:       snap.Catalog.MaterialName(materialID),
		Sources:    sources,
	})
}

// lookupItem resolves the {id} path parameter. When ok is false the response
// has been written.
func (h *CatalogHandler) lookupItem(w http.ResponseWriter, r *http.Request, opName string) (*catalog.Snapshot, domain.Item, bool) {
	snap, err := h.store.Current()
	if err != nil {
		respondServiceError(w, r, opName, err)
		return nil, domain.Item{}, false
	}

	id := chi.URLParam(r, "id")
	item, found := snap.Catalog.Item(id)
	if !found {
		respondServiceError(w, r, opName, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id))
		return nil, domain.Item{}, false
	}
	return snap, item, true
}
