package main

import (
	"net/http"
	"time"

	"github.com/claudiorubilar/seguros/internal/ledger/types"
	"github.com/claudiorubilar/seguros/internal/response"
	"github.com/claudiorubilar/seguros/internal/sortable"
)

// CollectionRow is one installment flattened for the collections view,
// with the policy and client context the cobranza team works from.
type CollectionRow struct {
	InstallmentID     string                  `json:"installmentId"`
	PolicyNumber      string                  `json:"policyNumber"`
	ClientID          string                  `json:"clientId"`
	ClientName        string                  `json:"clientName"`
	AgentName         string                  `json:"agentName"`
	InstallmentNumber int                     `json:"installmentNumber"`
	TotalInstallments int                     `json:"totalInstallments"`
	DueDate           time.Time               `json:"dueDate"`
	PaymentDate       time.Time               `json:"paymentDate,omitzero"`
	TotalAmount       float64                 `json:"totalAmount"`
	Currency          types.Currency          `json:"currency"`
	AmountCLP         float64                 `json:"amountCLP"`
	Status            types.InstallmentStatus `json:"status"`
}

type CollectionsSummary struct {
	PendingCount int     `json:"pendingCount"`
	OverdueCount int     `json:"overdueCount"`
	PaidCount    int     `json:"paidCount"`
	PendingCLP   float64 `json:"pendingCLP"`
	OverdueCLP   float64 `json:"overdueCLP"`
	CollectedCLP float64 `json:"collectedCLP"`
	UFValue      float64 `json:"ufValue"`
}

type GetCollectionsResponse = response.APIResponse[[]CollectionRow]
type GetCollectionsSummaryResponse = response.APIResponse[CollectionsSummary]

func (app *application) collectionRows(now time.Time) []CollectionRow {
	policies := app.repo.Policies()

	clientNames := make(map[string]string)
	for _, c := range app.repo.Clients() {
		clientNames[c.ID] = c.Name
	}
	agentNames := make(map[string]string)
	for _, a := range app.repo.Agents() {
		agentNames[a.ID] = a.Name
	}

	var rows []CollectionRow
	for _, p := range policies {
		for _, in := range p.Installments {
			amountCLP := in.TotalAmount
			if in.Currency == types.CurrencyUF {
				amountCLP = in.TotalAmount * app.config.ufValue
			}

			rows = append(rows, CollectionRow{
				InstallmentID:     in.ID,
				PolicyNumber:      p.PolicyNumber,
				ClientID:          p.PolicyHolderID,
				ClientName:        clientNames[p.PolicyHolderID],
				AgentName:         agentNames[p.AgentID],
				InstallmentNumber: in.InstallmentNumber,
				TotalInstallments: in.TotalInstallments,
				DueDate:           in.DueDate,
				PaymentDate:       in.PaymentDate,
				TotalAmount:       in.TotalAmount,
				Currency:          in.Currency,
				AmountCLP:         amountCLP,
				Status:            types.EffectiveInstallmentStatus(in, now),
			})
		}
	}
	return rows
}

func collectionSorter() *sortable.Sorter[CollectionRow] {
	return sortable.New(map[string]sortable.Comparator[CollectionRow]{
		"policyNumber": sortable.ByString(func(r CollectionRow) string { return r.PolicyNumber }),
		"clientName":   sortable.ByString(func(r CollectionRow) string { return r.ClientName }),
		"dueDate":      sortable.ByTime(func(r CollectionRow) time.Time { return r.DueDate }),
		"amountCLP":    sortable.ByFloat64(func(r CollectionRow) float64 { return r.AmountCLP }),
		"status":       sortable.ByString(func(r CollectionRow) string { return string(r.Status) }),
	})
}

// @Summary		List collections
// @Description	Get every installment flattened across the portfolio, with reconciled statuses and CLP amounts.
// @Tags			Collections
// @Produce		json
// @Param			status	query		string					false	"Filter by effective status: Pagada, Pendiente, Vencida"
// @Param			sort	query		string					false	"Sort key: policyNumber, clientName, dueDate, amountCLP, status"
// @Param			dir		query		string					false	"Sort direction: ascending, descending"
// @Success		200		{object}	GetCollectionsResponse	"Successfully retrieved collections"
// @Router			/collections [get]
func (app *application) handleGetCollections(w http.ResponseWriter, r *http.Request) {
	rows := app.collectionRows(time.Now())

	if status := r.URL.Query().Get("status"); status != "" {
		filtered := rows[:0]
		for _, row := range rows {
			if string(row.Status) == status {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	sorter := collectionSorter()
	sortParams(r, sorter)
	rows = sorter.Sort(rows)

	resp := &GetCollectionsResponse{
		Success: true,
		Data:    rows,
		Message: "Successfully retrieved collections",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

// @Summary		Collections summary
// @Description	Get collection totals by effective status, converted to CLP.
// @Tags			Collections
// @Produce		json
// @Success		200	{object}	GetCollectionsSummaryResponse	"Successfully retrieved collections summary"
// @Router			/collections/summary [get]
func (app *application) handleGetCollectionsSummary(w http.ResponseWriter, r *http.Request) {
	summary := CollectionsSummary{UFValue: app.config.ufValue}

	for _, row := range app.collectionRows(time.Now()) {
		switch row.Status {
		case types.InstallmentPagada:
			summary.PaidCount++
			summary.CollectedCLP += row.AmountCLP
		case types.InstallmentVencida:
			summary.OverdueCount++
			summary.OverdueCLP += row.AmountCLP
		default:
			summary.PendingCount++
			summary.PendingCLP += row.AmountCLP
		}
	}

	resp := &GetCollectionsSummaryResponse{
		Success: true,
		Data:    summary,
		Message: "Successfully retrieved collections summary",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
