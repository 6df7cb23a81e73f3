package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/boddenberg/donor-bfa-go/internal/domain"
	"github.com/boddenberg/donor-bfa-go/internal/handler"
	"github.com/boddenberg/donor-bfa-go/internal/infra/cache"
	"github.com/boddenberg/donor-bfa-go/internal/infra/clock"
	"github.com/boddenberg/donor-bfa-go/internal/infra/gateway"
	"github.com/boddenberg/donor-bfa-go/internal/infra/memstore"
	"github.com/boddenberg/donor-bfa-go/internal/infra/observability"
	"github.com/boddenberg/donor-bfa-go/internal/ledger"
	"github.com/boddenberg/donor-bfa-go/internal/port"
	"github.com/boddenberg/donor-bfa-go/internal/service"

	"go.uber.org/zap"
)

func newTestRouter(latency port.Latency) http.Handler {
	logger := zap.NewNop()
	metrics := observability.NewMetrics()
	store := memstore.New()
	clk := clock.System{}

	svcs := handler.Services{
		Catalog: service.NewCatalogService(store, logger),
		Views: service.NewViewService(store, cache.New[*service.DetailView](time.Minute),
			gateway.NewSimulated(latency, 1500*time.Millisecond), clk, ledger.DefaultCapacity, metrics, logger),
		Sessions: service.NewSessionService(cache.New[*service.Session](time.Minute), store,
			clock.Instant{}, 800*time.Millisecond, clk, "test-secret", time.Hour, metrics, logger),
		Bookmarks:  service.NewBookmarkService(store, logger),
		Grievances: service.NewGrievanceService(store, store, clk, logger),
	}
	return handler.NewRouter(svcs, []string{"*"}, metrics, logger)
}

func do(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestHealthz(t *testing.T) {
	rec := do(t, newTestRouter(clock.Instant{}), http.MethodGet, "/healthz", "", nil)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if got := decode[domain.HealthStatus](t, rec); got.Status != "healthy" {
		t.Errorf("expected healthy, got %s", got.Status)
	}
}

func TestReadyz(t *testing.T) {
	rec := do(t, newTestRouter(clock.Instant{}), http.MethodGet, "/readyz", "", nil)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestMetrics(t *testing.T) {
	h := newTestRouter(clock.Instant{})
	do(t, h, http.MethodGet, "/v1/ngos/ngo-2", "", nil)

	rec := do(t, h, http.MethodGet, "/metrics", "", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, `route="/v1/ngos/{ngoId}"`) {
		t.Error("expected request duration labelled with the route pattern")
	}
}

func TestNGOReport(t *testing.T) {
	h := newTestRouter(clock.Instant{})

	rec := do(t, h, http.MethodGet, "/v1/ngos/ngo-3/report", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	got := decode[domain.ImpactReport](t, rec)
	if got.NGOID != "ngo-3" || len(got.Projects) != 4 || len(got.QuarterlyTrend) != 5 {
		t.Errorf("unexpected report %+v", got)
	}

	if rec := do(t, h, http.MethodGet, "/v1/ngos/ngo-404/report", "", nil); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestListNGOs_Filtered(t *testing.T) {
	rec := do(t, newTestRouter(clock.Instant{}), http.MethodGet, "/v1/ngos?category=Environment", "", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	got := decode[struct {
		Total int `json:"total"`
	}](t, rec)
	if got.Total != 2 {
		t.Errorf("expected 2 organizations, got %d", got.Total)
	}
}

func TestGetNGO_NotFound(t *testing.T) {
	rec := do(t, newTestRouter(clock.Instant{}), http.MethodGet, "/v1/ngos/ngo-404", "", nil)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestDonationFlow_Anonymous(t *testing.T) {
	h := newTestRouter(clock.Instant{})

	rec := do(t, h, http.MethodPost, "/v1/views", "", map[string]string{"ngoId": "ngo-1"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	view := decode[domain.ViewSnapshot](t, rec)

	rec = do(t, h, http.MethodPost, "/v1/views/"+view.ViewID+"/donations", "", map[string]any{
		"amount": 5000, "target": "general",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	snap := decode[domain.ViewSnapshot](t, rec)
	if snap.Donation.ImpactText != "25 Meal Packs" {
		t.Errorf("expected '25 Meal Packs', got %q", snap.Donation.ImpactText)
	}
	if snap.Ledger.Records[0].Description != "User Donation - General Fund" {
		t.Errorf("unexpected head %+v", snap.Ledger.Records[0])
	}

	rec = do(t, h, http.MethodGet, "/v1/views/"+view.ViewID+"/receipt", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if r := decode[domain.ReceiptRecord](t, rec); r.Amount != 5000 {
		t.Errorf("expected amount 5000, got %d", r.Amount)
	}

	rec = do(t, h, http.MethodPost, "/v1/views/"+view.ViewID+"/donations", "", map[string]any{"amount": 100})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a second donation, got %d", rec.Code)
	}
}

func TestDonation_InvalidAmount(t *testing.T) {
	h := newTestRouter(clock.Instant{})
	view := decode[domain.ViewSnapshot](t, do(t, h, http.MethodPost, "/v1/views", "", map[string]string{"ngoId": "ngo-1"}))

	rec := do(t, h, http.MethodPost, "/v1/views/"+view.ViewID+"/donations", "", map[string]any{"amount": 150})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	got := decode[struct {
		Field string `json:"field"`
	}](t, rec)
	if got.Field != "amount" {
		t.Errorf("expected field amount, got %q", got.Field)
	}
}

func TestDonation_ConcurrentSubmission(t *testing.T) {
	gate := clock.NewGate()
	h := newTestRouter(gate)
	view := decode[domain.ViewSnapshot](t, do(t, h, http.MethodPost, "/v1/views", "", map[string]string{"ngoId": "ngo-2"}))
	path := "/v1/views/" + view.ViewID + "/donations"

	done := make(chan int, 1)
	go func() {
		done <- do(t, h, http.MethodPost, path, "", map[string]any{"amount": 1000}).Code
	}()

	select {
	case <-gate.Entered():
	case <-time.After(2 * time.Second):
		t.Fatal("first donation never started")
	}

	rec := do(t, h, http.MethodPost, path, "", map[string]any{"amount": 2000})
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rec.Code)
	}

	gate.Release()
	if code := <-done; code != http.StatusCreated {
		t.Errorf("expected first donation to succeed, got %d", code)
	}
}

func TestSignedInDonationReachesProfile(t *testing.T) {
	h := newTestRouter(clock.Instant{})

	rec := do(t, h, http.MethodPost, "/v1/auth/login", "", map[string]string{
		"email": "jane.doe@example.com", "password": "whatever",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	token := decode[domain.SessionResponse](t, rec).AccessToken

	view := decode[domain.ViewSnapshot](t, do(t, h, http.MethodPost, "/v1/views", token, map[string]string{"ngoId": "ngo-5"}))
	rec = do(t, h, http.MethodPost, "/v1/views/"+view.ViewID+"/donations", "", map[string]any{"amount": 100})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	rec = do(t, h, http.MethodGet, "/v1/profile", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	p := decode[domain.ProfileResponse](t, rec)
	if p.Account.TotalDonated != 625 || p.Account.ImpactScore != 97 {
		t.Errorf("unexpected account %+v", p.Account)
	}

	if rec := do(t, h, http.MethodPost, "/v1/auth/logout", token, nil); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec := do(t, h, http.MethodGet, "/v1/profile", token, nil); rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 after logout, got %d", rec.Code)
	}
}

func TestLogin_WithStaleTokenStartsFreshSession(t *testing.T) {
	h := newTestRouter(clock.Instant{})
	creds := map[string]string{"email": "jane.doe@example.com", "password": "x"}

	token := decode[domain.SessionResponse](t, do(t, h, http.MethodPost, "/v1/auth/login", "", creds)).AccessToken

	rec := do(t, h, http.MethodPost, "/v1/auth/login", token, creds)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 while signed in, got %d", rec.Code)
	}
	if got := decode[struct {
		Field string `json:"field"`
	}](t, rec); got.Field != "session" {
		t.Errorf("expected field 'session', got %q", got.Field)
	}

	do(t, h, http.MethodPost, "/v1/auth/logout", token, nil)

	rec = do(t, h, http.MethodPost, "/v1/auth/login", token, creds)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with a stale token, got %d: %s", rec.Code, rec.Body.String())
	}
	fresh := decode[domain.SessionResponse](t, rec).AccessToken
	if rec := do(t, h, http.MethodGet, "/v1/profile", fresh, nil); rec.Code != http.StatusOK {
		t.Errorf("expected new token to work, got %d", rec.Code)
	}
	if rec := do(t, h, http.MethodPost, "/v1/auth/signup", "garbage", map[string]string{
		"name": "Asha", "email": "asha@example.com", "password": "x", "governmentId": "123456789012",
	}); rec.Code != http.StatusCreated {
		t.Errorf("expected signup with unresolvable token to succeed, got %d", rec.Code)
	}
}

func TestSignup_Validation(t *testing.T) {
	rec := do(t, newTestRouter(clock.Instant{}), http.MethodPost, "/v1/auth/signup", "", map[string]string{
		"name": "Asha", "email": "not-an-email", "password": "x", "governmentId": "1234",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestBookmarks_RequireSession(t *testing.T) {
	rec := do(t, newTestRouter(clock.Instant{}), http.MethodGet, "/v1/bookmarks", "", nil)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestBookmarks_Compare(t *testing.T) {
	h := newTestRouter(clock.Instant{})
	token := decode[domain.SessionResponse](t, do(t, h, http.MethodPost, "/v1/auth/login", "", map[string]string{
		"email": "a@b.com", "password": "x",
	})).AccessToken

	do(t, h, http.MethodPut, "/v1/bookmarks/ngo-1", token, nil)
	if rec := do(t, h, http.MethodGet, "/v1/bookmarks/compare", token, nil); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 with one bookmark, got %d", rec.Code)
	}

	do(t, h, http.MethodPut, "/v1/bookmarks/ngo-3", token, nil)
	rec := do(t, h, http.MethodGet, "/v1/bookmarks/compare", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	got := decode[struct {
		Data []domain.ComparisonEntry `json:"data"`
	}](t, rec)
	if len(got.Data) != 2 {
		t.Errorf("expected 2 entries, got %d", len(got.Data))
	}
}

func TestFileGrievance(t *testing.T) {
	h := newTestRouter(clock.Instant{})

	rec := do(t, h, http.MethodPost, "/v1/ngos/ngo-2/grievances", "", map[string]string{
		"category": "Poor Communication", "description": "No update for months",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, h, http.MethodPost, "/v1/ngos/ngo-2/grievances", "", map[string]string{"category": "Other"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without description, got %d", rec.Code)
	}
}
