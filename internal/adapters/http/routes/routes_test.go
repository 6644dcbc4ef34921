package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"healthclaim-portal/internal/adapters/http/middleware"
	"healthclaim-portal/internal/adapters/persistence/repositories"
	"healthclaim-portal/internal/config"
	"healthclaim-portal/internal/core/domain"
	"healthclaim-portal/internal/core/services"
	"healthclaim-portal/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Warning string          `json:"warning"`
	Data    json.RawMessage `json:"data"`
}

type claimView struct {
	ID             string   `json:"id"`
	ClaimantName   string   `json:"claimant_name"`
	ClaimedAmount  float64  `json:"claimed_amount"`
	Status         string   `json:"status"`
	SubmissionDate string   `json:"submission_date"`
	ApprovedAmount *float64 `json:"approved_amount"`
	DocumentRef    string   `json:"document_ref"`
}

func newTestApp(t *testing.T) (*fiber.App, *config.Config) {
	t.Helper()

	cfg := &config.Config{
		AppMode:     "dev",
		StoreDriver: config.StoreMemory,
		JWT:         config.JWTConfig{Secret: "test-secret", AccessTokenMins: 5},
	}

	store := repositories.NewMemoryClaimSet()
	for _, c := range config.SampleClaims() {
		require.NoError(t, store.Insert(context.Background(), c))
	}
	audit := repositories.NewMemoryClaimEventLog()
	clock := func() time.Time { return testNow }

	lifecycle := services.NewLifecycleService(store, clock)
	app := fiber.New(fiber.Config{ErrorHandler: middleware.CustomErrorHandler})
	middleware.Setup(app, cfg)
	Setup(app, cfg, Portals{
		Claimants: services.NewClaimantPortal(lifecycle, store, clock),
		Reviewers: services.NewReviewerPortal(lifecycle, store, audit, clock),
	})
	return app, cfg
}

func tokenFor(t *testing.T, cfg *config.Config, actor domain.Actor) string {
	t.Helper()
	token, err := jwt.GenerateAccessToken(actor.ID, actor.Name, actor.Email, string(actor.Role), cfg.JWT.Secret, time.Hour)
	require.NoError(t, err)
	return token
}

func do(t *testing.T, app *fiber.App, req *http.Request, token string) (int, envelope, []byte) {
	t.Helper()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	_ = json.Unmarshal(body, &env)
	return resp.StatusCode, env, body
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload any) (int, envelope) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")

	status, env, _ := do(t, app, req, token)
	return status, env
}

func decodeClaim(t *testing.T, data json.RawMessage) claimView {
	t.Helper()
	var out struct {
		Claim claimView `json:"claim"`
	}
	require.NoError(t, json.Unmarshal(data, &out))
	return out.Claim
}

func TestSubmitClaim_JSON(t *testing.T) {
	app, _ := newTestApp(t)

	status, env := doJSON(t, app, http.MethodPost, "/api/v1/claims", "", map[string]any{
		"claimant_name":  "Walk In",
		"claimant_email": "walkin@example.com",
		"claimed_amount": 100.5,
		"description":    "Bandages",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.True(t, env.Success)

	claim := decodeClaim(t, env.Data)
	assert.NotEmpty(t, claim.ID)
	assert.Equal(t, "Pending", claim.Status)
	assert.Equal(t, 100.5, claim.ClaimedAmount)
	assert.Nil(t, claim.ApprovedAmount)
	assert.Equal(t, domain.NoDocument, claim.DocumentRef)
	assert.Equal(t, "2025-03-12T00:00:00Z", claim.SubmissionDate)
}

func TestSubmitClaim_InvalidAmount(t *testing.T) {
	app, _ := newTestApp(t)

	status, env := doJSON(t, app, http.MethodPost, "/api/v1/claims", "", map[string]any{
		"claimant_name":  "Walk In",
		"claimant_email": "walkin@example.com",
		"claimed_amount": "abc",
		"description":    "Bandages",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "claimed_amount")
}

func TestSubmitClaim_MultipartKeepsFileName(t *testing.T) {
	app, cfg := newTestApp(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("claimed_amount", "75"))
	require.NoError(t, w.WriteField("description", "Prescription refill"))
	part, err := w.CreateFormFile("document", "pharmacy_receipt.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/claims", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	status, env, _ := do(t, app, req, tokenFor(t, cfg, config.DemoClaimant))
	require.Equal(t, http.StatusCreated, status)

	claim := decodeClaim(t, env.Data)
	assert.Equal(t, "pharmacy_receipt.pdf", claim.DocumentRef)
	assert.Equal(t, config.DemoClaimant.Name, claim.ClaimantName)
	assert.Equal(t, 75.0, claim.ClaimedAmount)
}

func TestListMine(t *testing.T) {
	app, cfg := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodGet, "/api/v1/claims", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, env := doJSON(t, app, http.MethodGet, "/api/v1/claims", tokenFor(t, cfg, config.DemoClaimant), nil)
	require.Equal(t, http.StatusOK, status)

	var out struct {
		Claims []claimView `json:"claims"`
		Total  int         `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "2", out.Claims[0].ID)
}

func TestGetMine_OtherClaimantsClaimIsNotFound(t *testing.T) {
	app, cfg := newTestApp(t)
	token := tokenFor(t, cfg, config.DemoClaimant)

	status, _ := doJSON(t, app, http.MethodGet, "/api/v1/claims/2", token, nil)
	assert.Equal(t, http.StatusOK, status)

	status, env := doJSON(t, app, http.MethodGet, "/api/v1/claims/1", token, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Claim not found", env.Error)
}

func TestReviewerRoutes_Authorization(t *testing.T) {
	app, cfg := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodGet, "/api/v1/reviewer/claims", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = doJSON(t, app, http.MethodGet, "/api/v1/reviewer/claims", tokenFor(t, cfg, config.DemoClaimant), nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = doJSON(t, app, http.MethodGet, "/api/v1/reviewer/claims", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestReviewerList_FiltersSortsAndPages(t *testing.T) {
	app, cfg := newTestApp(t)
	token := tokenFor(t, cfg, config.DemoReviewer)

	status, env := doJSON(t, app, http.MethodGet,
		"/api/v1/reviewer/claims?status=Pending&sort_by=claimedAmount&sort_dir=asc&limit=2", token, nil)
	require.Equal(t, http.StatusOK, status)

	var page struct {
		Data []claimView `json:"data"`
		Meta struct {
			Total      int64 `json:"total"`
			TotalPages int   `json:"total_pages"`
			HasNext    bool  `json:"has_next"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Data, 2)
	assert.Equal(t, "5", page.Data[0].ID)
	assert.Equal(t, "2", page.Data[1].ID)
	assert.Equal(t, int64(3), page.Meta.Total)
	assert.Equal(t, 2, page.Meta.TotalPages)
	assert.True(t, page.Meta.HasNext)
}

func TestReviewerList_UnknownFilter(t *testing.T) {
	app, cfg := newTestApp(t)

	status, env := doJSON(t, app, http.MethodGet, "/api/v1/reviewer/claims?amount=Huge", tokenFor(t, cfg, config.DemoReviewer), nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, env.Error, "amount")
}

func TestReview_CoercesAmountAndRecordsHistory(t *testing.T) {
	app, cfg := newTestApp(t)
	token := tokenFor(t, cfg, config.DemoReviewer)

	status, env := doJSON(t, app, http.MethodPut, "/api/v1/reviewer/claims/4/review", token, map[string]any{
		"status":          "Approved",
		"approved_amount": "not-a-number",
	})
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, env.Warning)

	claim := decodeClaim(t, env.Data)
	assert.Equal(t, "Approved", claim.Status)
	require.NotNil(t, claim.ApprovedAmount)
	assert.Equal(t, 0.0, *claim.ApprovedAmount)

	status, env = doJSON(t, app, http.MethodGet, "/api/v1/reviewer/claims/4/history", token, nil)
	require.Equal(t, http.StatusOK, status)

	var history struct {
		Events []domain.ClaimEvent `json:"events"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &history))
	require.Len(t, history.Events, 1)
	assert.Equal(t, domain.StatusPending, history.Events[0].FromStatus)
	assert.Equal(t, domain.StatusApproved, history.Events[0].ToStatus)
	assert.Equal(t, config.DemoReviewer.ID, history.Events[0].PerformedBy)
}

func TestReview_NumericAmount(t *testing.T) {
	app, cfg := newTestApp(t)

	status, env := doJSON(t, app, http.MethodPut, "/api/v1/reviewer/claims/2/review", tokenFor(t, cfg, config.DemoReviewer), map[string]any{
		"status":          "Approved",
		"approved_amount": 400,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, env.Warning)
	assert.Equal(t, 400.0, *decodeClaim(t, env.Data).ApprovedAmount)
}

func TestReview_NonNumericJSONAmountDefaultsToZero(t *testing.T) {
	app, cfg := newTestApp(t)
	token := tokenFor(t, cfg, config.DemoReviewer)

	for name, amount := range map[string]any{
		"bool":   true,
		"object": map[string]any{},
		"array":  []int{1},
	} {
		t.Run(name, func(t *testing.T) {
			status, env := doJSON(t, app, http.MethodPut, "/api/v1/reviewer/claims/2/review", token, map[string]any{
				"status":          "Approved",
				"approved_amount": amount,
			})
			require.Equal(t, http.StatusOK, status)
			assert.NotEmpty(t, env.Warning)

			claim := decodeClaim(t, env.Data)
			assert.Equal(t, "Approved", claim.Status)
			require.NotNil(t, claim.ApprovedAmount)
			assert.Equal(t, 0.0, *claim.ApprovedAmount)
		})
	}
}

func TestReview_LeadingNumberIsKept(t *testing.T) {
	app, cfg := newTestApp(t)

	status, env := doJSON(t, app, http.MethodPut, "/api/v1/reviewer/claims/2/review", tokenFor(t, cfg, config.DemoReviewer), map[string]any{
		"status":          "Approved",
		"approved_amount": "300 USD",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, env.Warning, "300")
	assert.Equal(t, 300.0, *decodeClaim(t, env.Data).ApprovedAmount)
}

func TestReview_Errors(t *testing.T) {
	app, cfg := newTestApp(t)
	token := tokenFor(t, cfg, config.DemoReviewer)

	status, _ := doJSON(t, app, http.MethodPut, "/api/v1/reviewer/claims/missing/review", token, map[string]any{"status": "Rejected"})
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doJSON(t, app, http.MethodPut, "/api/v1/reviewer/claims/2/review", token, map[string]any{"status": "Escalated"})
	assert.Equal(t, http.StatusBadRequest, status)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/reviewer/claims/2/review", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	status, _, _ = do(t, app, req, token)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestStatsAndDashboard(t *testing.T) {
	app, cfg := newTestApp(t)
	token := tokenFor(t, cfg, config.DemoReviewer)

	status, env := doJSON(t, app, http.MethodGet, "/api/v1/reviewer/stats", token, nil)
	require.Equal(t, http.StatusOK, status)

	var stats struct {
		Summary            services.Summary `json:"summary"`
		ApprovedPercentage float64          `json:"approved_percentage"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 5, stats.Summary.TotalClaims)
	assert.Equal(t, 3, stats.Summary.PendingCount)
	assert.InDelta(t, 1000.0/6175.0*100, stats.ApprovedPercentage, 1e-9)

	status, env = doJSON(t, app, http.MethodGet, "/api/v1/reviewer/dashboard?limit=2", token, nil)
	require.Equal(t, http.StatusOK, status)

	var dash struct {
		PendingClaims []claimView `json:"pending_claims"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &dash))
	require.Len(t, dash.PendingClaims, 2)
	assert.Equal(t, "4", dash.PendingClaims[0].ID)
	assert.Equal(t, "5", dash.PendingClaims[1].ID)
}

func TestHealthAndMetrics(t *testing.T) {
	app, _ := newTestApp(t)

	status, _, body := do(t, app, httptest.NewRequest(http.MethodGet, "/health", nil), "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), `"store":"healthy"`)

	status, _, body = do(t, app, httptest.NewRequest(http.MethodGet, "/metrics", nil), "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "hc_http_requests_total")
}
