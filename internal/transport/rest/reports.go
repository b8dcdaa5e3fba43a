package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/edip-crm/internal/domain"
	"github.com/heartmarshall/edip-crm/internal/service/report"
)

type reportService interface {
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
	Export(ctx context.Context) (*domain.Snapshot, error)
}

// ReportHandler serves the dashboard and export endpoints.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report")}
}

// Dashboard handles GET /dashboard.
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDashboardResponse(d))
}

// Export handles GET /export. The body is the versioned snapshot document,
// offered as a download named after the snapshot time.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Export(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="`+report.ArchiveKey(snap.TakenAt)+`"`)
	writeJSON(w, http.StatusOK, report.NewDocument(snap))
}
