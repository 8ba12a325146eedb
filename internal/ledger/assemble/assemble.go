package assemble

import (
	"fmt"
	"time"

	"github.com/claudiorubilar/seguros/internal/ledger/decode"
	"github.com/claudiorubilar/seguros/internal/ledger/types"
	"github.com/claudiorubilar/seguros/internal/logger"
)

// BuildBook folds decoded ledger rows into a deduplicated entity set.
//
// The export represents one broker's book of business: the broker RUT on
// the first row becomes the brokerage of record, and every agent is filed
// under it. Policy-level fields come from the FIRST row seen for a policy
// number; later rows for the same number only contribute installments.
// Rows that disagree with the canonical premium are counted and logged as
// reconciliation warnings, never applied.
func BuildBook(records []decode.Record, now time.Time, appLogger *logger.Logger) *types.Book {
	const component = "Assembler"

	book := &types.Book{SourceRows: len(records)}

	policies := make(map[string]*types.Policy)
	clients := make(map[string]struct{})
	agents := make(map[string]struct{})
	brokerages := make(map[string]struct{})
	premiumConflicts := make(map[string]int)

	var policyOrder []string
	var brokerageID string

	for _, rec := range records {
		if brokerageID == "" && rec.BrokerRUT != "" {
			brokerageID = rec.BrokerRUT
			brokerages[brokerageID] = struct{}{}
			book.Brokerages = append(book.Brokerages, types.Brokerage{
				ID:   brokerageID,
				Name: rec.BrokerName,
			})
		}

		if rec.HolderRUT != "" {
			if _, seen := clients[rec.HolderRUT]; !seen {
				clients[rec.HolderRUT] = struct{}{}
				book.Clients = append(book.Clients, types.Client{
					ID:   rec.HolderRUT,
					Name: rec.HolderName,
				})
			}
		}

		if rec.BrokerRUT != "" {
			if _, seen := agents[rec.BrokerRUT]; !seen {
				agents[rec.BrokerRUT] = struct{}{}
				book.Agents = append(book.Agents, types.Agent{
					ID:          rec.BrokerRUT,
					Name:        rec.BrokerName,
					BrokerageID: brokerageID,
				})
			}
		}

		if rec.PolicyNumber == "" {
			continue
		}

		policy, exists := policies[rec.PolicyNumber]
		if !exists {
			policy = newPolicy(rec, brokerageID, now)
			policies[rec.PolicyNumber] = policy
			policyOrder = append(policyOrder, rec.PolicyNumber)
		} else if rec.Premium != policy.TotalPremium {
			premiumConflicts[rec.PolicyNumber]++
		}

		policy.Installments = append(policy.Installments, newInstallment(rec, now))
	}

	for number, count := range premiumConflicts {
		appLogger.Warn(component, "Premium mismatch discarded (first row wins): policy=%s conflictingRows=%d", number, count)
	}

	book.Policies = make([]types.Policy, 0, len(policyOrder))
	for _, number := range policyOrder {
		book.Policies = append(book.Policies, *policies[number])
	}

	return book
}

func newPolicy(rec decode.Record, brokerageID string, now time.Time) *types.Policy {
	issueDate := rec.IssueDate
	if issueDate.IsZero() {
		issueDate = now
	}
	startDate := rec.StartDate
	if startDate.IsZero() {
		startDate = now
	}
	endDate := rec.EndDate
	if endDate.IsZero() {
		endDate = now
	}

	policy := &types.Policy{
		ID:             rec.PolicyInternalID + "-" + rec.PolicyNumber,
		PolicyNumber:   rec.PolicyNumber,
		Product:        rec.Product,
		LineOfBusiness: rec.LineOfBusiness,
		IssueDate:      issueDate,
		StartDate:      startDate,
		EndDate:        endDate,
		PolicyHolderID: rec.HolderRUT,
		InsuredID:      rec.InsuredRUT,
		TotalPremium:   rec.Premium,
		Status:         rec.PolicyStatus,
		Currency:       rec.Currency,
		AgentID:        rec.BrokerRUT,
		BrokerageID:    brokerageID,
		RenewalDate:    endDate.AddDate(0, 0, 1),
		RenewalStatus:  types.RenewalPendiente,
		Installments:   []types.Installment{},
		Attachments:    []types.Attachment{},
		Notifications:  []types.Notification{},
		ActivityLog:    []types.ActivityEntry{},
	}

	if types.EffectivePolicyStatus(*policy, now) == types.PolicyVencida {
		policy.Notifications = append(policy.Notifications, types.Notification{
			ID:      fmt.Sprintf("notif-%s-1", policy.PolicyNumber),
			Message: "La póliza ha vencido. Contactar al cliente para renovación.",
			Date:    endDate,
		})
	}

	policy.ActivityLog = append(policy.ActivityLog, types.ActivityEntry{
		ID:          fmt.Sprintf("log-%s-1", policy.PolicyNumber),
		Description: fmt.Sprintf("Póliza emitida por %s.", rec.BrokerName),
		Date:        issueDate,
		User:        "Sistema",
	})

	return policy
}

func newInstallment(rec decode.Record, now time.Time) types.Installment {
	dueDate := rec.DueDate
	if dueDate.IsZero() {
		dueDate = now
	}

	return types.Installment{
		ID:                fmt.Sprintf("%s-%d", rec.PolicyNumber, rec.InstallmentNumber),
		PolicyNumber:      rec.PolicyNumber,
		InstallmentNumber: rec.InstallmentNumber,
		TotalInstallments: rec.TotalInstallments,
		DueDate:           dueDate,
		PaymentDate:       rec.PaymentDate,
		NetAmount:         rec.NetAmount,
		Tax:               rec.Tax + rec.InterestTax,
		Interest:          rec.GrossInterest,
		TotalAmount:       rec.TotalAmount,
		Status:            rec.InstallmentStatus,
		Currency:          rec.Currency,
	}
}
