// Package commission derives commission records from the ingested book.
// The derived set is never stored or edited in place: consumers recompute
// it whenever they need it, so two runs over the same book are value-equal.
package commission

import (
	"fmt"
	"time"

	"github.com/claudiorubilar/seguros/internal/ledger/types"
)

const (
	SaleRate     = 0.10
	OverrideRate = 0.025
	ReferralRate = 0.01
)

// ReferralGrant marks a single installment as referral-commissionable for
// a specific agent. There is no general referral rule in the business;
// grants are designated case by case.
type ReferralGrant struct {
	PolicyNumber  string
	InstallmentID string
	AgentID       string
}

// Derive walks every paid installment and emits the commission ledger:
// one Venta or Renovación record attributed to the policy's agent, plus an
// Override record for the agent's manager when one is linked. A policy
// agent missing from the agent set still earns the base record (the policy
// row itself carries the attribution); only the override needs the agent
// record, so a lookup miss skips it silently.
func Derive(policies []types.Policy, agents []types.Agent, grants []ReferralGrant, now time.Time) []types.Commission {
	agentByID := make(map[string]types.Agent, len(agents))
	for _, a := range agents {
		agentByID[a.ID] = a
	}

	var commissions []types.Commission

	for _, policy := range policies {
		for _, inst := range policy.Installments {
			if types.EffectiveInstallmentStatus(inst, now) != types.InstallmentPagada || inst.PaymentDate.IsZero() {
				continue
			}

			cType := types.CommissionVenta
			if policy.RenewalStatus == types.RenewalRenovada && inst.InstallmentNumber > 1 {
				cType = types.CommissionRenovacion
			}

			commissions = append(commissions, types.Commission{
				ID:              fmt.Sprintf("comm-%s", inst.ID),
				PolicyID:        policy.ID,
				PolicyNumber:    policy.PolicyNumber,
				InstallmentID:   inst.ID,
				AgentID:         policy.AgentID,
				Amount:          inst.TotalAmount * SaleRate,
				Currency:        inst.Currency,
				Type:            cType,
				CalculationDate: inst.PaymentDate,
			})

			agent, ok := agentByID[policy.AgentID]
			if !ok || agent.ManagerID == "" {
				continue
			}
			commissions = append(commissions, types.Commission{
				ID:              fmt.Sprintf("comm-ovr-%s", inst.ID),
				PolicyID:        policy.ID,
				PolicyNumber:    policy.PolicyNumber,
				InstallmentID:   inst.ID,
				AgentID:         agent.ManagerID,
				Amount:          inst.TotalAmount * OverrideRate,
				Currency:        inst.Currency,
				Type:            types.CommissionOverride,
				CalculationDate: inst.PaymentDate,
				RelatedAgentID:  agent.ID,
			})
		}
	}

	commissions = append(commissions, deriveReferrals(policies, grants, now)...)

	return commissions
}

func deriveReferrals(policies []types.Policy, grants []ReferralGrant, now time.Time) []types.Commission {
	if len(grants) == 0 {
		return nil
	}

	policyByNumber := make(map[string]types.Policy, len(policies))
	for _, p := range policies {
		policyByNumber[p.PolicyNumber] = p
	}

	var commissions []types.Commission
	for _, grant := range grants {
		policy, ok := policyByNumber[grant.PolicyNumber]
		if !ok {
			continue
		}
		for _, inst := range policy.Installments {
			if inst.ID != grant.InstallmentID {
				continue
			}
			commissions = append(commissions, types.Commission{
				ID:              fmt.Sprintf("comm-ref-%s", inst.ID),
				PolicyID:        policy.ID,
				PolicyNumber:    policy.PolicyNumber,
				InstallmentID:   inst.ID,
				AgentID:         grant.AgentID,
				Amount:          inst.TotalAmount * ReferralRate,
				Currency:        inst.Currency,
				Type:            types.CommissionReferido,
				CalculationDate: now,
				RelatedAgentID:  policy.AgentID,
			})
			break
		}
	}
	return commissions
}
