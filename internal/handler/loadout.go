package handler

import (
	"fmt"
	"net/http"

	"github.com/osse101/LoadoutCalc_Go/internal/cost"
	"github.com/osse101/LoadoutCalc_Go/internal/domain"
	"github.com/osse101/LoadoutCalc_Go/internal/loadout"
	"github.com/osse101/LoadoutCalc_Go/internal/logger"
	"github.com/osse101/LoadoutCalc_Go/internal/metrics"
)

// LoadoutHandler prices loadout snapshots. Nothing is stored between
// requests: each call builds and discards its own loadout.
type LoadoutHandler struct {
	store SnapshotSource
}

// NewLoadoutHandler creates a new loadout handler
func NewLoadoutHandler(store SnapshotSource) *LoadoutHandler {
	return &LoadoutHandler{store: store}
}

// LoadoutEntryRequest is one planned item
type LoadoutEntryRequest struct {
	Category string `json:"category" validate:"required,category"`
	ItemID   string `json:"item_id" validate:"required,max=128"`
	Quantity int    `json:"quantity" validate:"required,min=1,max=100000"`
}

// MaterialAmountRequest is a material id with a quantity
type MaterialAmountRequest struct {
	MaterialID string `json:"material_id" validate:"required,max=128"`
	Quantity   int    `json:"quantity" validate:"min=0,max=100000"`
}

// TotalsRequest is a complete loadout snapshot
type TotalsRequest struct {
	Entries        []LoadoutEntryRequest   `json:"entries" validate:"max=500,dive"`
	ExtraMaterials []MaterialAmountRequest `json:"extra_materials" validate:"max=500,dive"`
	Owned          []MaterialAmountRequest `json:"owned" validate:"max=500,dive"`
	WeaponMode     string                  `json:"weapon_mode" validate:"omitempty,costmode"`
}

// EntryView is a priced loadout line
type EntryView struct {
	Category domain.Category `json:"category"`
	ItemID   string          `json:"item_id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Received int             `json:"received"`
}

// TotalsResponse is the material bill for a loadout
type TotalsResponse struct {
	WeaponMode cost.Mode         `json:"weapon_mode"`
	Totals     domain.Materials  `json:"totals"`
	Rows       []loadout.NeedRow `json:"rows"`
	Entries    []EntryView       `json:"entries"`
	Missing    int               `json:"missing"`
}

// HandleTotals computes the merged material bill
// @Summary Loadout material totals
// @Description Prices every entry, merges the per-category subtotals and compares them with owned materials
// @Tags loadout
// @Accept json
// @Produce json
// @Param request body TotalsRequest true "Loadout snapshot"
// @Success 200 {object} TotalsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/loadout/totals [post]
func (h *LoadoutHandler) HandleTotals(w http.ResponseWriter, r *http.Request) {
	var req TotalsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Loadout totals"); err != nil {
		return
	}

	snap, err := h.store.Current()
	if err != nil {
		respondServiceError(w, r, "Loadout totals", err)
		return
	}
	mode, err := cost.ParseMode(req.WeaponMode)
	if err != nil {
		respondServiceError(w, r, "Loadout totals", err)
		return
	}

	l := loadout.New(snap.Catalog)
	if msg, ok := fillLoadout(l, req); !ok {
		logger.FromContext(r.Context()).Warn("Loadout rejected", "reason", msg)
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	totals := l.Totals(snap.Calculator, mode)
	rows := l.Needs(totals, snap.Catalog)

	metrics.TotalsComputed.WithLabelValues(string(mode)).Inc()
	metrics.LoadoutEntries.Observe(float64(l.Len()))
	logger.FromContext(r.Context()).Debug(LogMsgTotalsServed, "entries", l.Len(), "materials", len(totals), "mode", mode)

	respondJSON(w, http.StatusOK, TotalsResponse{
		WeaponMode: mode,
		Totals:     totals,
		Rows:       rows,
		Entries:    entryViews(l),
		Missing:    loadout.MissingTotal(rows),
	})
}

// fillLoadout applies the request to l, returning a user-facing message for
// the first rejected line
func fillLoadout(l *loadout.Loadout, req TotalsRequest) (string, bool) {
	for i, e := range req.Entries {
		category, err := domain.ParseCategory(e.Category)
		if err == nil {
			err = l.Add(category, e.ItemID, e.Quantity)
		}
		if err != nil {
			_, msg := mapServiceErrorToUserMessage(err)
			return fmt.Sprintf(ErrMsgEntryRejected, i, msg), false
		}
	}

	for i, m := range req.ExtraMaterials {
		if m.Quantity == 0 {
			continue
		}
		if err := l.Add(domain.CategoryMaterial, m.MaterialID, m.Quantity); err != nil {
			_, msg := mapServiceErrorToUserMessage(err)
			return fmt.Sprintf(ErrMsgExtraRejected, i, msg), false
		}
	}

	for _, m := range req.Owned {
		if err := l.SetOwned(m.MaterialID, m.Quantity); err != nil {
			_, msg := mapServiceErrorToUserMessage(err)
			return fmt.Sprintf(ErrMsgOwnedRejected, m.MaterialID, msg), false
		}
	}
	return "", true
}

func entryViews(l *loadout.Loadout) []EntryView {
	views := make([]EntryView, 0, l.Len())
	for _, category := range domain.LoadoutCategories {
		for _, e := range l.Entries(category) {
			views = append(views, EntryView{
				Category: category,
				ItemID:   e.Item.ID,
				Name:     e.Item.DisplayName(),
				Quantity: e.Quantity,
				Received: e.Received(),
			})
		}
	}
	return views
}
