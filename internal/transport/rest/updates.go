package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/edip-crm/internal/domain"
	"github.com/heartmarshall/edip-crm/internal/service/activity"
)

// updateService defines the minimal interface needed by UpdateHandler.
type updateService interface {
	AddUpdate(ctx context.Context, input activity.AddUpdateInput) (*domain.Update, error)
	UpdateUpdate(ctx context.Context, input activity.UpdateUpdateInput) (*domain.Update, error)
	GetUpdatesForAccount(ctx context.Context, bsnid string) ([]*domain.Update, error)
	ListUpdates(ctx context.Context, input activity.ListInput) ([]*domain.UpdateWithAccount, error)
}

// UpdateHandler serves the account update (activity) endpoints.
type UpdateHandler struct {
	svc updateService
	log *slog.Logger
}

// NewUpdateHandler creates an UpdateHandler.
func NewUpdateHandler(svc updateService, logger *slog.Logger) *UpdateHandler {
	return &UpdateHandler{svc: svc, log: logger.With("handler", "update")}
}

type updateRequest struct {
	Author      string `json:"author"`
	Date        string `json:"date"`
	Platform    string `json:"platform"`
	Description string `json:"description"`
}

// fields converts the request; an empty date is left zero for the service
// to default.
func (req updateRequest) fields() (activity.Fields, error) {
	f := activity.Fields{
		Author:      req.Author,
		Platform:    domain.Platform(req.Platform),
		Description: req.Description,
	}
	if d := strings.TrimSpace(req.Date); d != "" {
		date, err := domain.ParseDate(d)
		if err != nil {
			return f, domain.NewValidationError("date", "must be YYYY-MM-DD")
		}
		f.EffectiveDate = date
	}
	return f, nil
}

// ListForAccount handles GET /accounts/{bsnid}/updates.
func (h *UpdateHandler) ListForAccount(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.GetUpdatesForAccount(r.Context(), chi.URLParam(r, "bsnid"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUpdateResponses(list))
}

// Create handles POST /accounts/{bsnid}/updates.
func (h *UpdateHandler) Create(w http.ResponseWriter, r *http.Request) {
	f, ok := h.decode(w, r)
	if !ok {
		return
	}
	u, err := h.svc.AddUpdate(r.Context(), activity.AddUpdateInput{
		BSNID:  chi.URLParam(r, "bsnid"),
		Fields: f,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUpdateResponse(u))
}

// Update handles PUT /updates/{id}.
func (h *UpdateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid update id")
		return
	}
	f, ok := h.decode(w, r)
	if !ok {
		return
	}
	u, err := h.svc.UpdateUpdate(r.Context(), activity.UpdateUpdateInput{ID: id, Fields: f})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUpdateResponse(u))
}

// List handles GET /updates.
func (h *UpdateHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.svc.ListUpdates(r.Context(), activity.ListInput{
		BusinessArea: q.Get("business_area"),
		Platform:     q.Get("platform"),
		Author:       q.Get("author"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUpdateWithAccountResponses(list))
}

func (h *UpdateHandler) decode(w http.ResponseWriter, r *http.Request) (activity.Fields, bool) {
	var req updateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return activity.Fields{}, false
	}
	f, err := req.fields()
	if err != nil {
		handleError(h.log, w, r, err)
		return activity.Fields{}, false
	}
	return f, true
}
