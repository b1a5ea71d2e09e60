//go:build integration

package e2e

// e2e_test.go
// End-to-end integration tests using real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v
//
// Covered flows:
//   - recipe → planning → shopping list derivation, netted against stock
//   - prepared meals leaving the shopping list
//   - deleted dish degrading to "Plat supprimé" in the planning
//   - low stock alerts
//   - report email endpoint (delivery failure must not break the API)

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"planiftchop/internal/config"
	"planiftchop/internal/infra"
	"planiftchop/internal/notify"
	"planiftchop/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("planiftchop_test"),
		tcPostgres.WithUsername("planiftchop"),
		tcPostgres.WithPassword("planiftchop"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:           8000,
		Env:            "test",
		WorkerPoolSize: 1,
		DatabaseURL:    pgURL,
		RedisURL:       rdURL,
		UserID:         "famille",
		Notifier:       "smtp",
		SMTPHost:       "127.0.0.1", // nothing listens here — delivery must fail softly
		SMTPPort:       1,
		MailFrom:       "noreply@planif-tchop.test",
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)
	require.NoError(t, infra.RunMigrations(db))

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	mailCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	notifier, err := notify.New(cfg, mailCB)
	require.NoError(t, err)

	srv := httptest.NewServer(router.New(cfg, db, rdb, notifier, mailCB))
	t.Cleanup(srv.Close)
	return srv
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_ShoppingListDerivation(t *testing.T) {
	srv := setupTestServer(t)

	// 1. Create a dish with its recipe
	dishResp := do(t, srv, "POST", "/v1/dishes", jsonBody(t, map[string]any{
		"name":          "Ndolé",
		"course":        "Dîner",
		"base_servings": 1,
		"ingredients": []map[string]any{
			{"name": "feuilles de ndolé", "quantity": "0.5", "unit": "kg", "category": "Légumes"},
			{"name": "arachides", "quantity": "0.3", "unit": "kg", "category": "Épicerie"},
		},
	}))
	require.Equal(t, http.StatusCreated, dishResp.StatusCode)
	var dish struct {
		ID string `json:"id"`
	}
	decodeJSON(t, dishResp, &dish)

	// 2. Some peanuts already in the pantry
	stockResp := do(t, srv, "POST", "/v1/stock", jsonBody(t, map[string]any{
		"name": "Arachides", "quantity": "0.8", "unit": "kg", "category": "Épicerie",
	}))
	require.Equal(t, http.StatusCreated, stockResp.StatusCode)

	// 3. Plan the dish for 4 people
	planResp := do(t, srv, "POST", "/v1/plans", jsonBody(t, map[string]any{
		"date": "2026-09-01", "meal_type": "Dîner", "dish_id": dish.ID, "servings_planned": 4,
	}))
	require.Equal(t, http.StatusCreated, planResp.StatusCode)
	var plan struct {
		ID string `json:"id"`
	}
	decodeJSON(t, planResp, &plan)

	// 4. Derive the shopping list
	listResp := do(t, srv, "GET", "/v1/shopping-list?start=2026-08-31&end=2026-09-06", nil)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var list struct {
		Categories []struct {
			Category string `json:"category"`
			Items    []struct {
				Name     string `json:"name"`
				Quantity string `json:"quantity"`
				Unit     string `json:"unit"`
			} `json:"items"`
		} `json:"categories"`
		Message string `json:"message"`
	}
	decodeJSON(t, listResp, &list)
	require.Len(t, list.Categories, 2)
	assert.Empty(t, list.Message)

	byCategory := map[string]string{}
	for _, cat := range list.Categories {
		require.Len(t, cat.Items, 1)
		byCategory[cat.Category] = cat.Items[0].Quantity
	}
	assert.Equal(t, "2", byCategory["Légumes"])
	// 0.3 × 4 − 0.8 in stock = 0.4 to buy
	assert.Equal(t, "0.4", byCategory["Épicerie"])

	// 5. Mark the meal prepared — the list empties out
	prepResp := do(t, srv, "PATCH", "/v1/plans/"+plan.ID+"/prepared",
		jsonBody(t, map[string]any{"prepared": true}))
	require.Equal(t, http.StatusOK, prepResp.StatusCode)

	listResp = do(t, srv, "GET", "/v1/shopping-list?start=2026-08-31&end=2026-09-06", nil)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	decodeJSON(t, listResp, &list)
	assert.Empty(t, list.Categories)
	assert.NotEmpty(t, list.Message)
}

func TestE2E_DeletedDishDegradesGracefully(t *testing.T) {
	srv := setupTestServer(t)

	dishResp := do(t, srv, "POST", "/v1/dishes", jsonBody(t, map[string]any{
		"name": "Koki", "base_servings": 1,
		"ingredients": []map[string]any{
			{"name": "haricots", "quantity": "1", "unit": "kg", "category": "Légumineuses"},
		},
	}))
	require.Equal(t, http.StatusCreated, dishResp.StatusCode)
	var dish struct {
		ID string `json:"id"`
	}
	decodeJSON(t, dishResp, &dish)

	planResp := do(t, srv, "POST", "/v1/plans", jsonBody(t, map[string]any{
		"date": "2026-09-02", "meal_type": "Déjeuner", "dish_id": dish.ID, "servings_planned": 2,
	}))
	require.Equal(t, http.StatusCreated, planResp.StatusCode)

	delResp := do(t, srv, "DELETE", "/v1/dishes/"+dish.ID, nil)
	require.Equal(t, http.StatusNoContent, delResp.StatusCode)

	// Planning still lists the meal, under the fallback name
	plansResp := do(t, srv, "GET", "/v1/plans?start=2026-08-31&end=2026-09-06", nil)
	require.Equal(t, http.StatusOK, plansResp.StatusCode)
	var plans []struct {
		DishName string `json:"dish_name"`
	}
	decodeJSON(t, plansResp, &plans)
	require.Len(t, plans, 1)
	assert.Equal(t, "Plat supprimé", plans[0].DishName)

	// The shopping list only reports that nothing contributes demand
	listResp := do(t, srv, "GET", "/v1/shopping-list?start=2026-08-31&end=2026-09-06", nil)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var list struct {
		Categories []any  `json:"categories"`
		Message    string `json:"message"`
	}
	decodeJSON(t, listResp, &list)
	assert.Empty(t, list.Categories)
}

func TestE2E_StockAlerts(t *testing.T) {
	srv := setupTestServer(t)

	for _, item := range []map[string]any{
		{"name": "Sel", "quantity": "0", "unit": "kg", "category": "Épicerie"},
		{"name": "Huile", "quantity": "0.5", "unit": "L", "category": "Épicerie"},
		{"name": "Riz", "quantity": "10", "unit": "kg", "category": "Féculents"},
	} {
		resp := do(t, srv, "POST", "/v1/stock", jsonBody(t, item))
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	alertsResp := do(t, srv, "GET", "/v1/stock/alerts", nil)
	require.Equal(t, http.StatusOK, alertsResp.StatusCode)
	var alerts []struct {
		Name   string `json:"name"`
		Status string `json:"status"`
	}
	decodeJSON(t, alertsResp, &alerts)
	require.Len(t, alerts, 2)

	statuses := map[string]string{}
	for _, a := range alerts {
		statuses[a.Name] = a.Status
	}
	assert.Equal(t, "Épuisé", statuses["Sel"])
	assert.Equal(t, "Stock bas", statuses["Huile"])
}

func TestE2E_ReportEmailFailsSoftly(t *testing.T) {
	srv := setupTestServer(t)

	memberResp := do(t, srv, "POST", "/v1/members", jsonBody(t, map[string]any{
		"name": "Maman", "email": "maman@example.cm",
	}))
	require.Equal(t, http.StatusCreated, memberResp.StatusCode)

	// SMTP points at a closed port — the endpoint must still answer 200
	// with success=false rather than a 5xx.
	reportResp := do(t, srv, "POST", "/v1/reports/email", jsonBody(t, map[string]any{
		"start": "2026-08-31", "end": "2026-09-06",
	}))
	require.Equal(t, http.StatusOK, reportResp.StatusCode)
	var report struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	decodeJSON(t, reportResp, &report)
	assert.False(t, report.Success)
	assert.NotEmpty(t, report.Message)
}

func TestE2E_ReportWithoutMembersIsRejected(t *testing.T) {
	srv := setupTestServer(t)

	resp := do(t, srv, "POST", "/v1/reports/email", jsonBody(t, map[string]any{}))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
