// Package load pushes an assembled book and its derived commissions into
// the reporting database. Inserts are idempotent upserts keyed by entity
// id; individual failures are logged and skipped so one bad row never
// aborts a whole run.
package load

import (
	"context"
	"time"

	"github.com/claudiorubilar/seguros/internal/ledger/types"
	"github.com/claudiorubilar/seguros/internal/logger"
	"github.com/claudiorubilar/seguros/internal/store"
	"github.com/lib/pq"
)

func policyRow(p types.Policy, now time.Time) *store.PolicyRow {
	return &store.PolicyRow{
		ID:             p.ID,
		PolicyNumber:   p.PolicyNumber,
		Product:        p.Product,
		LineOfBusiness: p.LineOfBusiness,
		IssueDate:      p.IssueDate,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		PolicyHolderID: p.PolicyHolderID,
		InsuredID:      p.InsuredID,
		TotalPremium:   p.TotalPremium,
		Status:         string(p.Status),
		Currency:       string(p.Currency),
		AgentID:        p.AgentID,
		BrokerageID:    p.BrokerageID,
		InsurerID:      p.InsurerID,
		RenewalDate:    p.RenewalDate,
		RenewalStatus:  string(p.RenewalStatus),
		InsertedAt:     now,
		UpdatedAt:      now,
	}
}

func installmentRow(policyID string, in types.Installment, now time.Time) *store.InstallmentRow {
	return &store.InstallmentRow{
		ID:                in.ID,
		PolicyID:          policyID,
		PolicyNumber:      in.PolicyNumber,
		InstallmentNumber: in.InstallmentNumber,
		TotalInstallments: in.TotalInstallments,
		DueDate:           in.DueDate,
		NetAmount:         in.NetAmount,
		Tax:               in.Tax,
		Interest:          in.Interest,
		TotalAmount:       in.TotalAmount,
		Status:            string(in.Status),
		PaymentDate:       pq.NullTime{Time: in.PaymentDate, Valid: !in.PaymentDate.IsZero()},
		Currency:          string(in.Currency),
		InsertedAt:        now,
		UpdatedAt:         now,
	}
}

func commissionRow(c types.Commission, now time.Time) *store.CommissionRow {
	return &store.CommissionRow{
		ID:              c.ID,
		PolicyID:        c.PolicyID,
		PolicyNumber:    c.PolicyNumber,
		InstallmentID:   c.InstallmentID,
		AgentID:         c.AgentID,
		RelatedAgentID:  c.RelatedAgentID,
		Amount:          c.Amount,
		Currency:        string(c.Currency),
		Type:            string(c.Type),
		CalculationDate: c.CalculationDate,
		InsertedAt:      now,
		UpdatedAt:       now,
	}
}

// LoadBook writes every policy, installment and commission to storage.
// Returns the number of failed inserts.
func LoadBook(ctx context.Context, book *types.Book, commissions []types.Commission, storage *store.Storage, appLogger *logger.Logger) int {
	const component = "Loader"

	failures := 0
	appLogger.Info(component, "Starting data load: policies=%d commissions=%d", len(book.Policies), len(commissions))

	for _, p := range book.Policies {
		now := time.Now()
		if err := storage.Policy.InsertPolicy(ctx, policyRow(p, now)); err != nil {
			appLogger.Error(component, "Failed to insert policy %s: %v", p.PolicyNumber, err)
			failures++
			continue
		}

		for _, in := range p.Installments {
			if err := storage.Policy.InsertInstallment(ctx, installmentRow(p.ID, in, now)); err != nil {
				appLogger.Error(component, "Failed to insert installment %s: %v", in.ID, err)
				failures++
			}
		}
	}

	for _, c := range commissions {
		now := time.Now()
		if err := storage.Commission.InsertCommission(ctx, commissionRow(c, now)); err != nil {
			appLogger.Error(component, "Failed to insert commission %s: %v", c.ID, err)
			failures++
		}
	}

	appLogger.Info(component, "Data load completed: failures=%d", failures)
	return failures
}
