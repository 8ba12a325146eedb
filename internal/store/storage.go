package store

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type Storage struct {
	Policy interface {
		InsertPolicy(ctx context.Context, policy *PolicyRow) error
		InsertInstallment(ctx context.Context, installment *InstallmentRow) error
		GetPremiumByLine(ctx context.Context) ([]PremiumByLine, error)
	}

	Commission interface {
		InsertCommission(ctx context.Context, commission *CommissionRow) error
		GetProductionByAgent(ctx context.Context, filter ProductionFilter) ([]AgentProduction, error)
		GetCommissionTotals(ctx context.Context, filter ProductionFilter) (CommissionTotals, error)
	}

	IngestionHistory interface {
		InsertIngestionHistory(ctx context.Context, history *IngestionHistory) error
		GetLatest(ctx context.Context, limit int) ([]IngestionHistory, error)
		UpdateIngestionStatus(ctx context.Context, id int64, status string) error
	}
}

// ProductionFilter narrows the reporting queries by calculation date range
// and, optionally, a set of agent ids.
type ProductionFilter struct {
	StartDate time.Time
	EndDate   time.Time
	AgentIDs  []string
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{
		Policy:           &PolicyStore{db: db},
		Commission:       &CommissionStore{db: db},
		IngestionHistory: &IngestionHistoryStore{db: db},
	}
}
