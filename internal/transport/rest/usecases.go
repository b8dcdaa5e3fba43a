package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/edip-crm/internal/domain"
	"github.com/heartmarshall/edip-crm/internal/service/usecase"
)

// useCaseService defines the minimal interface needed by UseCaseHandler.
type useCaseService interface {
	AddUseCase(ctx context.Context, input usecase.AddUseCaseInput) (*domain.UseCase, error)
	UpdateUseCase(ctx context.Context, input usecase.UpdateUseCaseInput) (*domain.UseCase, error)
	GetUseCasesForAccount(ctx context.Context, bsnid string) ([]*domain.UseCase, error)
	ListUseCases(ctx context.Context, input usecase.ListInput) ([]*domain.UseCaseWithAccount, error)
	Stats(ctx context.Context) (domain.UseCaseStats, error)
}

// UseCaseHandler serves the use case endpoints.
type UseCaseHandler struct {
	svc useCaseService
	log *slog.Logger
}

// NewUseCaseHandler creates a UseCaseHandler.
func NewUseCaseHandler(svc useCaseService, logger *slog.Logger) *UseCaseHandler {
	return &UseCaseHandler{svc: svc, log: logger.With("handler", "use_case")}
}

type useCaseRequest struct {
	Problem        string `json:"problem"`
	Solution       string `json:"solution"`
	Leader         string `json:"leader"`
	Status         string `json:"status"`
	EnablementTier string `json:"enablementTier"`
	Platform       string `json:"platform"`
}

func (req useCaseRequest) fields() usecase.Fields {
	return usecase.Fields{
		Problem:        req.Problem,
		Solution:       req.Solution,
		Leader:         req.Leader,
		Status:         domain.UseCaseStatus(req.Status),
		EnablementTier: domain.EnablementTier(req.EnablementTier),
		Platform:       domain.Platform(req.Platform),
	}
}

// ListForAccount handles GET /accounts/{bsnid}/use-cases.
func (h *UseCaseHandler) ListForAccount(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.GetUseCasesForAccount(r.Context(), chi.URLParam(r, "bsnid"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUseCaseResponses(list))
}

// Create handles POST /accounts/{bsnid}/use-cases.
func (h *UseCaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req useCaseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	uc, err := h.svc.AddUseCase(r.Context(), usecase.AddUseCaseInput{
		BSNID:  chi.URLParam(r, "bsnid"),
		Fields: req.fields(),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUseCaseResponse(uc))
}

// Update handles PUT /use-cases/{id}.
func (h *UseCaseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid use case id")
		return
	}
	var req useCaseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	uc, err := h.svc.UpdateUseCase(r.Context(), usecase.UpdateUseCaseInput{ID: id, Fields: req.fields()})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUseCaseResponse(uc))
}

// List handles GET /use-cases.
func (h *UseCaseHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.svc.ListUseCases(r.Context(), usecase.ListInput{
		BusinessArea:   q.Get("business_area"),
		Status:         q.Get("status"),
		EnablementTier: q.Get("tier"),
		Platform:       q.Get("platform"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUseCaseWithAccountResponses(list))
}

// Stats handles GET /use-cases/stats.
func (h *UseCaseHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUseCaseStatsResponse(stats))
}
