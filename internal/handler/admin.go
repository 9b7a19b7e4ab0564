package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/LoadoutCalc_Go/internal/catalog"
	"github.com/osse101/LoadoutCalc_Go/internal/domain"
	"github.com/osse101/LoadoutCalc_Go/internal/logger"
)

// CatalogReloader re-reads the catalog. *catalog.Store satisfies it.
type CatalogReloader interface {
	SnapshotSource
	Reload(ctx context.Context) (*catalog.Snapshot, error)
}

// AdminHandler exposes catalog maintenance operations
type AdminHandler struct {
	store CatalogReloader
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(store CatalogReloader) *AdminHandler {
	return &AdminHandler{store: store}
}

// ReloadResponse describes the snapshot now being served
type ReloadResponse struct {
	Message  string                  `json:"message"`
	Records  int                     `json:"records"`
	Counts   map[domain.Category]int `json:"counts"`
	Skipped  []catalog.SkippedFile   `json:"skipped,omitempty"`
	LoadedAt time.Time               `json:"loaded_at"`
}

// AuditResponse lists catalog authoring problems
type AuditResponse struct {
	Findings []catalog.Finding `json:"findings"`
	Errors   int               `json:"errors"`
	Warnings int               `json:"warnings"`
}

// HandleReload re-reads the data directory. A failed reload leaves the
// previous catalog in service.
// @Summary Reload catalog
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ReloadResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/reload [post]
func (h *AdminHandler) HandleReload(w http.ResponseWriter, r *http.Request) {
	snap, err := h.store.Reload(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgReloadFailed, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgReloadFailed)
		return
	}

	respondJSON(w, http.StatusOK, ReloadResponse{
		Message:  MsgCatalogReloaded,
		Records:  snap.Catalog.Len(),
		Counts:   snap.Catalog.Counts(),
		Skipped:  snap.Report.Skipped,
		LoadedAt: snap.LoadedAt,
	})
}

// HandleAudit reports tier gaps, missing costs and invalid files
// @Summary Catalog audit
// @Tags admin
// @Produce json
// @Success 200 {object} AuditResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/audit [get]
func (h *AdminHandler) HandleAudit(w http.ResponseWriter, r *http.Request) {
	snap, err := h.store.Current()
	if err != nil {
		respondServiceError(w, r, "Catalog audit", err)
		return
	}

	findings := catalog.Audit(snap.Catalog, snap.Report)
	resp := AuditResponse{Findings: findings}
	if resp.Findings == nil {
		resp.Findings = []catalog.Finding{}
	}
	for _, f := range findings {
		if f.Severity == catalog.SeverityError {
			resp.Errors++
		} else {
			resp.Warnings++
		}
	}
	respondJSON(w, http.StatusOK, resp)
}
