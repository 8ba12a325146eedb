package main

import (
	"net/http"
	"time"

	"github.com/claudiorubilar/seguros/internal/ledger/types"
	"github.com/claudiorubilar/seguros/internal/response"
)

// DashboardSummary is the portfolio overview: policy counts by effective
// status, upcoming renewals, and commission totals.
type DashboardSummary struct {
	TotalPolicies     int                        `json:"totalPolicies"`
	ActivePolicies    int                        `json:"activePolicies"`
	ExpiredPolicies   int                        `json:"expiredPolicies"`
	CancelledPolicies int                        `json:"cancelledPolicies"`
	UpcomingRenewals  int                        `json:"upcomingRenewals"`
	TotalClients      int                        `json:"totalClients"`
	TotalAgents       int                        `json:"totalAgents"`
	PremiumByCurrency map[types.Currency]float64 `json:"premiumByCurrency"`
	TotalCommissions  float64                    `json:"totalCommissions"`
	CommissionsCount  int                        `json:"commissionsCount"`
}

type GetDashboardResponse = response.APIResponse[DashboardSummary]

// @Summary		Dashboard summary
// @Description	Get the portfolio overview: policy counts by effective status, renewals due in 30 days, commission totals.
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	GetDashboardResponse	"Successfully retrieved dashboard summary"
// @Router			/dashboard/summary [get]
func (app *application) handleGetDashboard(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	renewalHorizon := now.AddDate(0, 0, 30)

	summary := DashboardSummary{
		TotalClients:      len(app.repo.Clients()),
		TotalAgents:       len(app.repo.Agents()),
		PremiumByCurrency: make(map[types.Currency]float64),
	}

	for _, p := range app.repo.Policies() {
		summary.TotalPolicies++
		summary.PremiumByCurrency[p.Currency] += p.TotalPremium
		switch types.EffectivePolicyStatus(p, now) {
		case types.PolicyVigente:
			summary.ActivePolicies++
		case types.PolicyVencida:
			summary.ExpiredPolicies++
		case types.PolicyCancelada:
			summary.CancelledPolicies++
		}

		if p.RenewalStatus == types.RenewalPendiente &&
			!p.RenewalDate.IsZero() &&
			p.RenewalDate.After(now) && p.RenewalDate.Before(renewalHorizon) {
			summary.UpcomingRenewals++
		}
	}

	for _, c := range app.repo.Commissions(now) {
		summary.CommissionsCount++
		summary.TotalCommissions += c.Amount
	}

	resp := &GetDashboardResponse{
		Success: true,
		Data:    summary,
		Message: "Successfully retrieved dashboard summary",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
