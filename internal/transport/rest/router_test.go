package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/edip-crm/internal/adapter/memory"
	"github.com/heartmarshall/edip-crm/internal/config"
	"github.com/heartmarshall/edip-crm/internal/domain"
	"github.com/heartmarshall/edip-crm/internal/service/account"
	"github.com/heartmarshall/edip-crm/internal/service/activity"
	"github.com/heartmarshall/edip-crm/internal/service/businessarea"
	"github.com/heartmarshall/edip-crm/internal/service/report"
	"github.com/heartmarshall/edip-crm/internal/service/usecase"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.New()
	catalog := domain.DefaultPlatforms

	return NewRouter(RouterDeps{
		Logger:    log,
		CORS:      config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,PUT,OPTIONS", AllowedHeaders: "Content-Type", MaxAge: 60},
		Version:   "test",
		Store:     store,
		StoreKind: config.StoreMemory,
		Accounts: account.NewService(log, store.Accounts(), store.PlatformStatuses(), store.BusinessAreas(),
			store.UseCases(), store.Updates(), store, catalog),
		UseCases:      usecase.NewService(log, store.UseCases(), store.Accounts(), store, catalog),
		Updates:       activity.NewService(log, store.Updates(), store.Accounts(), store, catalog),
		BusinessAreas: businessarea.NewService(log, store.BusinessAreas(), store),
		Reports:       report.NewService(log, store, store.Accounts(), store.UseCases(), store.Updates(), store.PlatformStatuses(), store.BusinessAreas(), 5),
	})
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != nil {
		if s, ok := body.(string); ok {
			r = strings.NewReader(s)
		} else {
			data, err := json.Marshal(body)
			require.NoError(t, err)
			r = bytes.NewReader(data)
		}
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v), "body: %s", rec.Body.String())
	return v
}

func createAccount(t *testing.T, h http.Handler, body map[string]any) accountResponse {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/accounts", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[accountResponse](t, rec)
}

// ---------------------------------------------------------------------------
// Accounts
// ---------------------------------------------------------------------------

func TestAccounts_CreateSearchGet(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/business-areas", map[string]any{
		"name": "Engineering", "defaultItPartner": "TechCorp Solutions",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := createAccount(t, h, map[string]any{
		"team":             "Data Engineering",
		"businessArea":     "Engineering",
		"vp":               "Sarah Johnson",
		"admin":            "Mike Chen",
		"platformStatuses": map[string]string{"databricks": "in progress"},
	})
	assert.NotEmpty(t, created.BSNID)
	assert.Equal(t, "TechCorp Solutions", created.PrimaryITPartner)
	assert.Equal(t, []string{}, created.AzureDevOpsLinks)

	rec = do(t, h, http.MethodGet, "/accounts?q=DATA", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	found := decode[[]accountResponse](t, rec)
	require.Len(t, found, 1)
	assert.Equal(t, created.BSNID, found[0].BSNID)

	rec = do(t, h, http.MethodGet, "/accounts?q=nonexistent-xyz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]accountResponse](t, rec))

	rec = do(t, h, http.MethodGet, "/accounts/"+created.BSNID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	details := decode[accountDetailsResponse](t, rec)
	assert.Equal(t, "Data Engineering", details.Team)
	require.Len(t, details.Platforms, 1)
	assert.Equal(t, "Databricks", details.Platforms[0].Platform)
	assert.Equal(t, "In Progress", details.Platforms[0].Status)
	assert.Nil(t, details.Platforms[0].EnablementTier)
	assert.Empty(t, details.UseCases)
	assert.Empty(t, details.Updates)
}

func TestAccounts_ValidationError(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/accounts", map[string]any{"team": "  "})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decode[errorResponse](t, rec)
	assert.Equal(t, "validation", resp.Kind)
	var fields []string
	for _, f := range resp.Fields {
		fields = append(fields, f.Field)
	}
	assert.Contains(t, fields, "team")
	assert.Contains(t, fields, "business_area")
}

func TestAccounts_RejectsUnknownField(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/accounts", `{"team":"A","businessArea":"B","colour":"red"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "body", decode[errorResponse](t, rec).Fields[0].Field)
}

func TestAccounts_NotFound(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t)

	for _, target := range []string{"/accounts/missing", "/accounts/missing/platforms"} {
		rec := do(t, h, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.Equal(t, "not_found", decode[errorResponse](t, rec).Kind, target)
	}

	rec := do(t, h, http.MethodPost, "/accounts/missing/links/azure-devops", map[string]any{"url": "https://dev.azure.com/x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Per-account listings of owned records are plain filters.
	rec = do(t, h, http.MethodGet, "/accounts/missing/use-cases", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]useCaseResponse](t, rec))
}

func TestAccounts_Links(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t)
	a := createAccount(t, h, map[string]any{"team": "Analytics Team", "businessArea": "Finance"})

	for _, u := range []string{"https://dev.azure.com/a", "https://dev.azure.com/b"} {
		rec := do(t, h, http.MethodPost, "/accounts/"+a.BSNID+"/links/azure-devops", map[string]any{"url": u})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}
	rec := do(t, h, http.MethodPost, "/accounts/"+a.BSNID+"/links/artifacts", map[string]any{"url": "https://share/folder"})
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[accountResponse](t, rec)
	assert.Equal(t, []string{"https://dev.azure.com/a", "https://dev.azure.com/b"}, got.AzureDevOpsLinks)
	assert.Equal(t, []string{"https://share/folder"}, got.ArtifactsFolderLinks)
}

func TestAccounts_SetPlatformStatusIsUpsert(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t)
	a := createAccount(t, h, map[string]any{"team": "Data Engineering", "businessArea": "Engineering"})

	target := "/accounts/" + a.BSNID + "/platforms/" + url.PathEscape("Power Platform")
	rec := do(t, h, http.MethodPut, target, map[string]any{"status": "Requested"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodPut, target, map[string]any{"status": "Completed", "enablementTier": "Tier 2"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	ps := decode[platformStatusResponse](t, rec)
	assert.Equal(t, "Completed", ps.Status)
	require.NotNil(t, ps.EnablementTier)
	assert.Equal(t, "Guided", *ps.EnablementTier)

	rec = do(t, h, http.MethodGet, "/accounts/"+a.BSNID+"/platforms", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]platformStatusResponse](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, "Power Platform", list[0].Platform)

	rec = do(t, h, http.MethodPut, "/accounts/"+a.BSNID+"/platforms/Oracle", map[string]any{"status": "Requested"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---------------------------------------------------------------------------
// Use cases and updates
// ---------------------------------------------------------------------------

func TestUseCases_Lifecycle(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t)
	a := createAccount(t, h, map[string]any{"team": "Sales Analytics", "businessArea": "Marketing"})

	rec := do(t, h, http.MethodPost, "/accounts/"+a.BSNID+"/use-cases", map[string]any{
		"problem":  "Manual lead scoring",
		"solution": "Scoring model",
		"leader":   "Jennifer Lee",
		"status":   "planning",
		"platform": "snowflake",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	uc := decode[useCaseResponse](t, rec)
	assert.Equal(t, "Planning", uc.Status)
	assert.Equal(t, "None", uc.EnablementTier)
	assert.Equal(t, "Snowflake", uc.Platform)

	rec = do(t, h, http.MethodPut, "/use-cases/"+uc.ID, map[string]any{
		"problem":        "Manual lead scoring",
		"solution":       "Scoring model in production",
		"leader":         "Jennifer Lee",
		"status":         "Active",
		"enablementTier": "Managed",
		"platform":       "Snowflake",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/accounts/"+a.BSNID+"/use-cases", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]useCaseResponse](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, "Active", list[0].Status)
	assert.Equal(t, "Scoring model in production", list[0].Solution)

	rec = do(t, h, http.MethodGet, "/use-cases?business_area=Marketing&tier=Tier+3", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	filtered := decode[[]useCaseResponse](t, rec)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Sales Analytics", filtered[0].Team)

	rec = do(t, h, http.MethodGet, "/use-cases?status=Bogus", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/use-cases/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[useCaseStatsResponse](t, rec)
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.Active)
	assert.Equal(t, 1, stats.ByStatus["Active"])
}

func TestUseCases_UpdateErrors(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t)

	body := map[string]any{"problem": "p", "status": "Active", "platform": "Databricks"}

	rec := do(t, h, http.MethodPut, "/use-cases/not-a-uuid", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPut, "/use-cases/"+uuid.NewString(), body)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodPost, "/accounts/missing/use-cases", body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdates_OrderAndEdit(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t)
	a := createAccount(t, h, map[string]any{"team": "Operations Intelligence", "businessArea": "Operations"})

	var ids []string
	for _, d := range []string{"2024-07-06", "2024-07-08", "2024-07-07"} {
		rec := do(t, h, http.MethodPost, "/accounts/"+a.BSNID+"/updates", map[string]any{
			"author": "Lisa Wang", "date": d, "platform": "Power Platform", "description": "note " + d,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		ids = append(ids, decode[updateResponse](t, rec).ID)
	}

	rec := do(t, h, http.MethodGet, "/accounts/"+a.BSNID+"/updates", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]updateResponse](t, rec)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"2024-07-08", "2024-07-07", "2024-07-06"}, []string{list[0].Date, list[1].Date, list[2].Date})

	rec = do(t, h, http.MethodPut, "/updates/"+ids[0], map[string]any{
		"author": "Mark Thompson", "date": "2024-07-09", "platform": "Databricks", "description": "moved",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/updates?author=Mark+Thompson", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	byAuthor := decode[[]updateResponse](t, rec)
	require.Len(t, byAuthor, 1)
	assert.Equal(t, "2024-07-09", byAuthor[0].Date)
	assert.Equal(t, "Operations", byAuthor[0].BusinessArea)

	rec = do(t, h, http.MethodPost, "/accounts/"+a.BSNID+"/updates", map[string]any{
		"author": "Lisa Wang", "date": "07/09/2024", "platform": "Databricks", "description": "bad date",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "date", decode[errorResponse](t, rec).Fields[0].Field)
}

// ---------------------------------------------------------------------------
// Business areas, reports, cross-cutting
// ---------------------------------------------------------------------------

func TestBusinessAreas(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/business-areas", map[string]any{"name": "HR", "defaultItPartner": "Lisa Brown"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, h, http.MethodPost, "/business-areas", map[string]any{"name": "HR"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "already_exists", decode[errorResponse](t, rec).Kind)

	rec = do(t, h, http.MethodPut, "/business-areas/HR/partner", map[string]any{"partner": "New Partner"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/business-areas", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	areas := decode[[]businessAreaResponse](t, rec)
	require.Len(t, areas, 1)
	assert.Equal(t, "New Partner", areas[0].DefaultITPartner)
}

func TestDashboardAndExport(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	empty := decode[dashboardResponse](t, rec)
	assert.Zero(t, empty.Accounts)
	assert.Nil(t, empty.TopPlatform)

	a := createAccount(t, h, map[string]any{"team": "Analytics Team", "businessArea": "Finance"})
	rec = do(t, h, http.MethodPost, "/accounts/"+a.BSNID+"/updates", map[string]any{
		"author": "Emily Rodriguez", "date": "2024-07-19", "platform": "Databricks", "description": "kickoff",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, h, http.MethodGet, "/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	d := decode[dashboardResponse](t, rec)
	assert.Equal(t, 1, d.Accounts)
	assert.Equal(t, 1, d.Updates)
	require.NotNil(t, d.TopAuthor)
	assert.Equal(t, "Emily Rodriguez", d.TopAuthor.Name)
	require.Len(t, d.RecentUpdates, 1)
	assert.Equal(t, "Analytics Team", d.RecentUpdates[0].Team)

	rec = do(t, h, http.MethodGet, "/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), `filename="crm-`)
	doc := decode[report.Document](t, rec)
	assert.Equal(t, report.DocumentVersion, doc.Version)
	require.Len(t, doc.Accounts, 1)
	require.Len(t, doc.Updates, 1)
	assert.Equal(t, "2024-07-19", doc.Updates[0].EffectiveDate)
}

func TestRouter_PreflightAndRequestID(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/accounts", nil)
	req.Header.Set("Origin", "https://dashboard.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://dashboard.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[HealthResponse](t, rec)
	assert.Equal(t, "memory", resp.Components["store"].Kind)

	rec = do(t, h, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code, "metrics are not mounted without a handler")
}
