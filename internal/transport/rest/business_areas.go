package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/edip-crm/internal/domain"
	"github.com/heartmarshall/edip-crm/internal/service/businessarea"
)

type businessAreaService interface {
	AddBusinessArea(ctx context.Context, input businessarea.Input) (*domain.BusinessArea, error)
	UpdatePrimaryITPartner(ctx context.Context, input businessarea.Input) (*domain.BusinessArea, error)
	ListBusinessAreas(ctx context.Context) ([]*domain.BusinessArea, error)
}

// BusinessAreaHandler serves the business area registry endpoints.
type BusinessAreaHandler struct {
	svc businessAreaService
	log *slog.Logger
}

// NewBusinessAreaHandler creates a BusinessAreaHandler.
func NewBusinessAreaHandler(svc businessAreaService, logger *slog.Logger) *BusinessAreaHandler {
	return &BusinessAreaHandler{svc: svc, log: logger.With("handler", "business_area")}
}

type addBusinessAreaRequest struct {
	Name             string `json:"name"`
	DefaultITPartner string `json:"defaultItPartner"`
}

type setPartnerRequest struct {
	Partner string `json:"partner"`
}

// List handles GET /business-areas.
func (h *BusinessAreaHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListBusinessAreas(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBusinessAreaResponses(list))
}

// Create handles POST /business-areas.
func (h *BusinessAreaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req addBusinessAreaRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	ba, err := h.svc.AddBusinessArea(r.Context(), businessarea.Input{Name: req.Name, Partner: req.DefaultITPartner})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, businessAreaResponse{Name: ba.Name, DefaultITPartner: ba.DefaultITPartner})
}

// SetPartner handles PUT /business-areas/{name}/partner.
func (h *BusinessAreaHandler) SetPartner(w http.ResponseWriter, r *http.Request) {
	var req setPartnerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	ba, err := h.svc.UpdatePrimaryITPartner(r.Context(), businessarea.Input{
		Name:    chi.URLParam(r, "name"),
		Partner: req.Partner,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, businessAreaResponse{Name: ba.Name, DefaultITPartner: ba.DefaultITPartner})
}
