package main

import (
	"net/http"
	"time"

	"github.com/claudiorubilar/seguros/internal/ledger/types"
	"github.com/claudiorubilar/seguros/internal/response"
	"github.com/claudiorubilar/seguros/internal/sortable"
	"github.com/go-chi/chi/v5"
)

type GetPoliciesResponse = response.APIResponse[[]types.Policy]
type GetPolicyResponse = response.APIResponse[types.Policy]
type GetInstallmentsResponse = response.APIResponse[[]types.Installment]

// reconciled returns the policy with stored statuses replaced by their
// effective values as of now, on the policy and every installment.
func reconciled(p types.Policy, now time.Time) types.Policy {
	p.Status = types.EffectivePolicyStatus(p, now)
	installments := make([]types.Installment, len(p.Installments))
	for i, in := range p.Installments {
		in.Status = types.EffectiveInstallmentStatus(in, now)
		installments[i] = in
	}
	p.Installments = installments
	return p
}

func policySorter() *sortable.Sorter[types.Policy] {
	return sortable.New(map[string]sortable.Comparator[types.Policy]{
		"policyNumber": sortable.ByString(func(p types.Policy) string { return p.PolicyNumber }),
		"product":      sortable.ByString(func(p types.Policy) string { return p.Product }),
		"startDate":    sortable.ByTime(func(p types.Policy) time.Time { return p.StartDate }),
		"endDate":      sortable.ByTime(func(p types.Policy) time.Time { return p.EndDate }),
		"totalPremium": sortable.ByFloat64(func(p types.Policy) float64 { return p.TotalPremium }),
		"status":       sortable.ByString(func(p types.Policy) string { return string(p.Status) }),
	})
}

// @Summary		List policies
// @Description	Get the policy portfolio with reconciled statuses. Supports filter, sort and dir query parameters.
// @Tags			Policies
// @Produce		json
// @Param			status	query		string					false	"Filter by effective status: VIGENTE, VENCIDA, CANCELADA"
// @Param			agent	query		string					false	"Filter by agent id"
// @Param			client	query		string					false	"Filter by policy holder id"
// @Param			line	query		string					false	"Filter by line of business"
// @Param			sort	query		string					false	"Sort key: policyNumber, product, startDate, endDate, totalPremium, status"
// @Param			dir		query		string					false	"Sort direction: ascending, descending"
// @Success		200		{object}	GetPoliciesResponse		"Successfully retrieved policies"
// @Router			/policies [get]
func (app *application) handleGetPolicies(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	status := r.URL.Query().Get("status")
	agentID := r.URL.Query().Get("agent")
	clientID := r.URL.Query().Get("client")
	line := r.URL.Query().Get("line")

	all := app.repo.Policies()
	policies := all[:0]
	for _, p := range all {
		p = reconciled(p, now)
		if status != "" && string(p.Status) != status {
			continue
		}
		if agentID != "" && p.AgentID != agentID {
			continue
		}
		if clientID != "" && p.PolicyHolderID != clientID {
			continue
		}
		if line != "" && p.LineOfBusiness != line {
			continue
		}
		policies = append(policies, p)
	}

	sorter := policySorter()
	sortParams(r, sorter)
	policies = sorter.Sort(policies)

	resp := &GetPoliciesResponse{
		Success: true,
		Data:    policies,
		Message: "Successfully retrieved policies",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

// @Summary		Get policy
// @Description	Get a single policy by its policy number, with reconciled statuses.
// @Tags			Policies
// @Produce		json
// @Param			policyNumber	path		string					true	"Policy number"
// @Success		200				{object}	GetPolicyResponse		"Successfully retrieved policy"
// @Failure		404				{object}	response.ErrorResponse	"Policy not found"
// @Router			/policies/{policyNumber} [get]
func (app *application) handleGetPolicy(w http.ResponseWriter, r *http.Request) {
	policyNumber := chi.URLParam(r, "policyNumber")

	policy, ok := app.repo.PolicyByNumber(policyNumber)
	if !ok {
		writeJSONError(w, http.StatusNotFound, "policy not found: "+policyNumber)
		return
	}

	resp := &GetPolicyResponse{
		Success: true,
		Data:    reconciled(policy, time.Now()),
		Message: "Successfully retrieved policy",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

// @Summary		Get policy installments
// @Description	Get a policy's installment ledger in appearance order, with reconciled statuses.
// @Tags			Policies
// @Produce		json
// @Param			policyNumber	path		string					true	"Policy number"
// @Success		200				{object}	GetInstallmentsResponse	"Successfully retrieved installments"
// @Failure		404				{object}	response.ErrorResponse	"Policy not found"
// @Router			/policies/{policyNumber}/installments [get]
func (app *application) handleGetPolicyInstallments(w http.ResponseWriter, r *http.Request) {
	policyNumber := chi.URLParam(r, "policyNumber")

	policy, ok := app.repo.PolicyByNumber(policyNumber)
	if !ok {
		writeJSONError(w, http.StatusNotFound, "policy not found: "+policyNumber)
		return
	}

	resp := &GetInstallmentsResponse{
		Success: true,
		Data:    reconciled(policy, time.Now()).Installments,
		Message: "Successfully retrieved installments",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
