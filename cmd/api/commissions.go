package main

import (
	"net/http"
	"time"

	"github.com/claudiorubilar/seguros/internal/ledger/types"
	"github.com/claudiorubilar/seguros/internal/response"
	"github.com/claudiorubilar/seguros/internal/sortable"
)

// AgentCommissionSummary aggregates an agent's derived commissions.
type AgentCommissionSummary struct {
	AgentID        string  `json:"agentId"`
	AgentName      string  `json:"agentName"`
	Count          int     `json:"count"`
	TotalAmount    float64 `json:"totalAmount"`
	SaleAmount     float64 `json:"saleAmount"`
	RenewalAmount  float64 `json:"renewalAmount"`
	OverrideAmount float64 `json:"overrideAmount"`
	ReferralAmount float64 `json:"referralAmount"`
}

type GetCommissionsResponse = response.APIResponse[[]types.Commission]
type GetCommissionsSummaryResponse = response.APIResponse[[]AgentCommissionSummary]

func commissionSorter() *sortable.Sorter[types.Commission] {
	return sortable.New(map[string]sortable.Comparator[types.Commission]{
		"policyNumber":    sortable.ByString(func(c types.Commission) string { return c.PolicyNumber }),
		"agentId":         sortable.ByString(func(c types.Commission) string { return c.AgentID }),
		"amount":          sortable.ByFloat64(func(c types.Commission) float64 { return c.Amount }),
		"type":            sortable.ByString(func(c types.Commission) string { return string(c.Type) }),
		"calculationDate": sortable.ByTime(func(c types.Commission) time.Time { return c.CalculationDate }),
	})
}

// @Summary		List commissions
// @Description	Get the commission ledger derived from paid installments. Supports agent and type filters.
// @Tags			Commissions
// @Produce		json
// @Param			agent	query		string					false	"Filter by agent id"
// @Param			type	query		string					false	"Filter by type: Venta, Renovación, Override, Referido"
// @Param			from	query		string					false	"Calculation date lower bound (YYYY-MM-DD)"
// @Param			to		query		string					false	"Calculation date upper bound (YYYY-MM-DD)"
// @Param			sort	query		string					false	"Sort key: policyNumber, agentId, amount, type, calculationDate"
// @Param			dir		query		string					false	"Sort direction: ascending, descending"
// @Success		200		{object}	GetCommissionsResponse	"Successfully retrieved commissions"
// @Router			/commissions [get]
func (app *application) handleGetCommissions(w http.ResponseWriter, r *http.Request) {
	commissions := app.repo.Commissions(time.Now())

	agentID := r.URL.Query().Get("agent")
	cType := r.URL.Query().Get("type")
	from, to := dateRange(r)

	filtered := commissions[:0]
	for _, c := range commissions {
		if agentID != "" && c.AgentID != agentID {
			continue
		}
		if cType != "" && string(c.Type) != cType {
			continue
		}
		if c.CalculationDate.Before(from) || c.CalculationDate.After(to) {
			continue
		}
		filtered = append(filtered, c)
	}
	commissions = filtered

	sorter := commissionSorter()
	sortParams(r, sorter)
	commissions = sorter.Sort(commissions)

	resp := &GetCommissionsResponse{
		Success: true,
		Data:    commissions,
		Message: "Successfully retrieved commissions",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

// @Summary		Commissions summary
// @Description	Get commissions aggregated per agent, split by commission type.
// @Tags			Commissions
// @Produce		json
// @Success		200	{object}	GetCommissionsSummaryResponse	"Successfully retrieved commissions summary"
// @Router			/commissions/summary [get]
func (app *application) handleGetCommissionsSummary(w http.ResponseWriter, r *http.Request) {
	agentNames := make(map[string]string)
	for _, a := range app.repo.Agents() {
		agentNames[a.ID] = a.Name
	}
	for _, u := range app.repo.Users() {
		if _, ok := agentNames[u.ID]; !ok {
			agentNames[u.ID] = u.Name
		}
	}

	byAgent := make(map[string]*AgentCommissionSummary)
	var order []string

	for _, c := range app.repo.Commissions(time.Now()) {
		summary, ok := byAgent[c.AgentID]
		if !ok {
			summary = &AgentCommissionSummary{AgentID: c.AgentID, AgentName: agentNames[c.AgentID]}
			byAgent[c.AgentID] = summary
			order = append(order, c.AgentID)
		}

		summary.Count++
		summary.TotalAmount += c.Amount
		switch c.Type {
		case types.CommissionVenta:
			summary.SaleAmount += c.Amount
		case types.CommissionRenovacion:
			summary.RenewalAmount += c.Amount
		case types.CommissionOverride:
			summary.OverrideAmount += c.Amount
		case types.CommissionReferido:
			summary.ReferralAmount += c.Amount
		}
	}

	summaries := make([]AgentCommissionSummary, 0, len(order))
	for _, id := range order {
		summaries = append(summaries, *byAgent[id])
	}

	resp := &GetCommissionsSummaryResponse{
		Success: true,
		Data:    summaries,
		Message: "Successfully retrieved commissions summary",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
