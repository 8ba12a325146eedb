package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claudiorubilar/seguros/internal/book"
	"github.com/claudiorubilar/seguros/internal/ledger/types"
	"github.com/claudiorubilar/seguros/internal/logger"
	"github.com/claudiorubilar/seguros/internal/response"
)

func testBook() *types.Book {
	past := time.Now().AddDate(-1, 0, 0)
	future := time.Now().AddDate(1, 0, 0)

	return &types.Book{
		Policies: []types.Policy{
			{
				ID:             "1-100079798",
				PolicyNumber:   "100079798",
				Product:        "Incendio comercial UF",
				PolicyHolderID: "77681212-9",
				Status:         types.PolicyVigente,
				EndDate:        future,
				AgentID:        "a1",
				Currency:       types.CurrencyUF,
				Installments: []types.Installment{
					{
						ID:           "100079798-1",
						PolicyNumber: "100079798",
						TotalAmount:  3,
						Status:       types.InstallmentPagada,
						PaymentDate:  past,
						DueDate:      past,
						Currency:     types.CurrencyUF,
					},
					{
						ID:           "100079798-2",
						PolicyNumber: "100079798",
						TotalAmount:  3,
						Status:       types.InstallmentPendiente,
						DueDate:      past,
						Currency:     types.CurrencyUF,
					},
				},
			},
			{
				ID:           "2-300455680",
				PolicyNumber: "300455680",
				Product:      "Auto Flotas",
				Status:       types.PolicyVigente,
				EndDate:      past,
				AgentID:      "a1",
				Currency:     types.CurrencyUF,
			},
		},
		Clients: []types.Client{{ID: "77681212-9", Name: "GASTRONOMICA VITACURA SP"}},
		Agents:  []types.Agent{{ID: "a1", Name: "Ana Rojas", ManagerID: "u2"}},
	}
}

func testApp(t *testing.T) *application {
	t.Helper()

	repo, err := book.NewRepository(func() (*types.Book, error) { return testBook(), nil })
	require.NoError(t, err)

	return &application{
		config: config{ufValue: 40000},
		repo:   repo,
		logger: &logger.Logger{MinLevel: logger.LevelError},
	}
}

func doRequest(t *testing.T, app *application, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	app.mount().ServeHTTP(rec, req)
	return rec
}

func TestHealthCheck(t *testing.T) {
	rec := doRequest(t, testApp(t), http.MethodGet, "/v1/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "available")
}

func TestGetPolicies(t *testing.T) {
	app := testApp(t)

	rec := doRequest(t, app, http.MethodGet, "/v1/policies/")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp response.APIResponse[[]types.Policy]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Len(t, resp.Data, 2)

	// Second policy ended in the past: reconciled to VENCIDA on read.
	assert.Equal(t, types.PolicyVencida, resp.Data[1].Status)
	// First policy's overdue pending installment reads as Vencida.
	assert.Equal(t, types.InstallmentVencida, resp.Data[0].Installments[1].Status)

	// Reconciliation happens on the response copy only; the repository's
	// stored statuses, including the nested installments, are untouched.
	stored := app.repo.Policies()
	assert.Equal(t, types.PolicyVigente, stored[1].Status)
	assert.Equal(t, types.InstallmentPendiente, stored[0].Installments[1].Status)
}

func TestGetPoliciesSorted(t *testing.T) {
	rec := doRequest(t, testApp(t), http.MethodGet, "/v1/policies/?sort=product&dir=descending")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp response.APIResponse[[]types.Policy]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Incendio comercial UF", resp.Data[0].Product)
}

func TestGetPolicy(t *testing.T) {
	app := testApp(t)

	rec := doRequest(t, app, http.MethodGet, "/v1/policies/100079798")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp response.APIResponse[types.Policy]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "1-100079798", resp.Data.ID)

	rec = doRequest(t, app, http.MethodGet, "/v1/policies/999999")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetPoliciesFilteredByStatus(t *testing.T) {
	rec := doRequest(t, testApp(t), http.MethodGet, "/v1/policies/?status=VENCIDA")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp response.APIResponse[[]types.Policy]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "300455680", resp.Data[0].PolicyNumber)
}

func TestGetPolicyInstallments(t *testing.T) {
	rec := doRequest(t, testApp(t), http.MethodGet, "/v1/policies/100079798/installments")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp response.APIResponse[[]types.Installment]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, types.InstallmentVencida, resp.Data[1].Status)
}

func TestGetCollections(t *testing.T) {
	rec := doRequest(t, testApp(t), http.MethodGet, "/v1/collections/")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp response.APIResponse[[]CollectionRow]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)

	row := resp.Data[0]
	assert.Equal(t, "GASTRONOMICA VITACURA SP", row.ClientName)
	assert.Equal(t, "Ana Rojas", row.AgentName)
	assert.Equal(t, 3.0*40000, row.AmountCLP)
}

func TestGetCollectionsFiltered(t *testing.T) {
	rec := doRequest(t, testApp(t), http.MethodGet, "/v1/collections/?status=Pagada")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp response.APIResponse[[]CollectionRow]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, types.InstallmentPagada, resp.Data[0].Status)
}

func TestGetCollectionsSummary(t *testing.T) {
	rec := doRequest(t, testApp(t), http.MethodGet, "/v1/collections/summary")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp response.APIResponse[CollectionsSummary]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 1, resp.Data.PaidCount)
	assert.Equal(t, 1, resp.Data.OverdueCount)
	assert.Equal(t, 0, resp.Data.PendingCount)
	assert.Equal(t, 120000.0, resp.Data.CollectedCLP)
}

func TestGetCommissions(t *testing.T) {
	rec := doRequest(t, testApp(t), http.MethodGet, "/v1/commissions/")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp response.APIResponse[[]types.Commission]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	// One paid installment: base commission plus override via manager link.
	require.Len(t, resp.Data, 2)
	assert.Equal(t, types.CommissionVenta, resp.Data[0].Type)
	assert.Equal(t, types.CommissionOverride, resp.Data[1].Type)
}

func TestGetCommissionsFilteredByType(t *testing.T) {
	rec := doRequest(t, testApp(t), http.MethodGet, "/v1/commissions/?type=Override")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp response.APIResponse[[]types.Commission]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "u2", resp.Data[0].AgentID)
}

func TestGetCommissionsSummary(t *testing.T) {
	rec := doRequest(t, testApp(t), http.MethodGet, "/v1/commissions/summary")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp response.APIResponse[[]AgentCommissionSummary]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)

	// Derived amounts are float products (3 * rate); compare with a delta.
	assert.Equal(t, "a1", resp.Data[0].AgentID)
	assert.InDelta(t, 0.3, resp.Data[0].SaleAmount, 0.0001)
	assert.Equal(t, "u2", resp.Data[1].AgentID)
	assert.InDelta(t, 0.075, resp.Data[1].OverrideAmount, 0.0001)
}

func TestGetDashboard(t *testing.T) {
	rec := doRequest(t, testApp(t), http.MethodGet, "/v1/dashboard/summary")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp response.APIResponse[DashboardSummary]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 2, resp.Data.TotalPolicies)
	assert.Equal(t, 1, resp.Data.ActivePolicies)
	assert.Equal(t, 1, resp.Data.ExpiredPolicies)
	assert.Equal(t, 1, resp.Data.TotalClients)
}

func TestReload(t *testing.T) {
	rec := doRequest(t, testApp(t), http.MethodPost, "/v1/ingestion/reload")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp response.APIResponse[book.Counts]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Data.Policies)
}
