package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/edip-crm/internal/domain"
	"github.com/heartmarshall/edip-crm/internal/service/account"
)

// accountService defines the minimal interface needed by AccountHandler.
type accountService interface {
	AddAccount(ctx context.Context, input account.AddAccountInput) (*domain.Account, error)
	SearchAccounts(ctx context.Context, term string) ([]*domain.Account, error)
	GetAccount(ctx context.Context, bsnid string) (*domain.AccountDetails, error)
	AddAzureDevOpsLink(ctx context.Context, bsnid, url string) (*domain.Account, error)
	AddArtifactsFolderLink(ctx context.Context, bsnid, url string) (*domain.Account, error)
	SetPlatformStatus(ctx context.Context, input account.SetPlatformStatusInput) (*domain.PlatformStatus, error)
	ListPlatformStatuses(ctx context.Context, bsnid string) ([]*domain.PlatformStatus, error)
}

// AccountHandler serves the account endpoints.
type AccountHandler struct {
	svc accountService
	log *slog.Logger
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(svc accountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{svc: svc, log: logger.With("handler", "account")}
}

type addAccountRequest struct {
	Team             string            `json:"team"`
	BusinessArea     string            `json:"businessArea"`
	VP               string            `json:"vp"`
	Admin            string            `json:"admin"`
	ITPartner        string            `json:"itPartner"`
	PlatformStatuses map[string]string `json:"platformStatuses"`
}

type addLinkRequest struct {
	URL string `json:"url"`
}

type setPlatformStatusRequest struct {
	Status         string  `json:"status"`
	EnablementTier *string `json:"enablementTier"`
}

// Search handles GET /accounts?q=.
func (h *AccountHandler) Search(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.SearchAccounts(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountResponses(accounts))
}

// Create handles POST /accounts.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req addAccountRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := account.AddAccountInput{
		Team:         req.Team,
		BusinessArea: req.BusinessArea,
		VP:           req.VP,
		Admin:        req.Admin,
		ITPartner:    req.ITPartner,
	}
	if len(req.PlatformStatuses) > 0 {
		input.PlatformStatuses = make(map[domain.Platform]domain.OnboardingStatus, len(req.PlatformStatuses))
		for p, s := range req.PlatformStatuses {
			input.PlatformStatuses[domain.Platform(p)] = domain.OnboardingStatus(s)
		}
	}

	a, err := h.svc.AddAccount(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAccountResponse(a))
}

// Get handles GET /accounts/{bsnid}.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	details, err := h.svc.GetAccount(r.Context(), chi.URLParam(r, "bsnid"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, accountDetailsResponse{
		accountResponse: toAccountResponse(details.Account),
		Platforms:       toPlatformStatusResponses(details.Platforms),
		UseCases:        toUseCaseResponses(details.UseCases),
		Updates:         toUpdateResponses(details.Updates),
	})
}

// AddAzureDevOpsLink handles POST /accounts/{bsnid}/links/azure-devops.
func (h *AccountHandler) AddAzureDevOpsLink(w http.ResponseWriter, r *http.Request) {
	h.addLink(w, r, h.svc.AddAzureDevOpsLink)
}

// AddArtifactsFolderLink handles POST /accounts/{bsnid}/links/artifacts.
func (h *AccountHandler) AddArtifactsFolderLink(w http.ResponseWriter, r *http.Request) {
	h.addLink(w, r, h.svc.AddArtifactsFolderLink)
}

func (h *AccountHandler) addLink(
	w http.ResponseWriter,
	r *http.Request,
	add func(ctx context.Context, bsnid, url string) (*domain.Account, error),
) {
	var req addLinkRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	a, err := add(r.Context(), chi.URLParam(r, "bsnid"), req.URL)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountResponse(a))
}

// ListPlatforms handles GET /accounts/{bsnid}/platforms.
func (h *AccountHandler) ListPlatforms(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListPlatformStatuses(r.Context(), chi.URLParam(r, "bsnid"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlatformStatusResponses(list))
}

// SetPlatformStatus handles PUT /accounts/{bsnid}/platforms/{platform}.
func (h *AccountHandler) SetPlatformStatus(w http.ResponseWriter, r *http.Request) {
	var req setPlatformStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := account.SetPlatformStatusInput{
		BSNID:    chi.URLParam(r, "bsnid"),
		Platform: domain.Platform(chi.URLParam(r, "platform")),
		Status:   domain.OnboardingStatus(req.Status),
	}
	if req.EnablementTier != nil {
		tier := domain.EnablementTier(*req.EnablementTier)
		input.EnablementTier = &tier
	}

	ps, err := h.svc.SetPlatformStatus(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlatformStatusResponse(ps))
}
