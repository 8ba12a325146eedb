package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type CommissionStore struct {
	db *sqlx.DB
}

type AgentProduction struct {
	AgentID          string  `db:"agent_id" json:"agent_id"`
	CommissionsCount int     `db:"commissions_count" json:"commissions_count"`
	TotalAmount      float64 `db:"total_amount" json:"total_amount"`
	SaleAmount       float64 `db:"sale_amount" json:"sale_amount"`
	RenewalAmount    float64 `db:"renewal_amount" json:"renewal_amount"`
	OverrideAmount   float64 `db:"override_amount" json:"override_amount"`
	ReferralAmount   float64 `db:"referral_amount" json:"referral_amount"`
}

type CommissionTotals struct {
	CommissionsCount int     `db:"commissions_count" json:"commissions_count"`
	TotalAmount      float64 `db:"total_amount" json:"total_amount"`
}

func (cs *CommissionStore) InsertCommission(ctx context.Context, commission *CommissionRow) error {
	query := `INSERT INTO commissions (
		id,
		policy_id,
		policy_number,
		installment_id,
		agent_id,
		related_agent_id,
		amount,
		currency,
		type,
		calculation_date,
		inserted_at,
		updated_at
	) VALUES (
		:id,
		:policy_id,
		:policy_number,
		:installment_id,
		:agent_id,
		:related_agent_id,
		:amount,
		:currency,
		:type,
		:calculation_date,
		:inserted_at,
		:updated_at
	) ON CONFLICT (id) DO UPDATE SET
		amount = EXCLUDED.amount,
		calculation_date = EXCLUDED.calculation_date,
		updated_at = EXCLUDED.updated_at`

	_, err := cs.db.NamedExecContext(ctx, query, commission)
	return err
}

// GetProductionByAgent aggregates the commission ledger per agent inside a
// calculation date range. An empty AgentIDs slice means every agent.
func (cs *CommissionStore) GetProductionByAgent(ctx context.Context, filter ProductionFilter) ([]AgentProduction, error) {
	query := `
	SELECT
		agent_id,
		COUNT(id) AS commissions_count,
		SUM(amount) AS total_amount,
		SUM(CASE WHEN type = 'Venta' THEN amount ELSE 0 END) AS sale_amount,
		SUM(CASE WHEN type = 'Renovación' THEN amount ELSE 0 END) AS renewal_amount,
		SUM(CASE WHEN type = 'Override' THEN amount ELSE 0 END) AS override_amount,
		SUM(CASE WHEN type = 'Referido' THEN amount ELSE 0 END) AS referral_amount
	FROM
		commissions
	WHERE
		calculation_date BETWEEN $1 AND $2
		AND (cardinality($3::text[]) = 0 OR agent_id = ANY($3))
	GROUP BY
		agent_id
	ORDER BY
		total_amount DESC;
	`

	agentIDs := filter.AgentIDs
	if agentIDs == nil {
		agentIDs = []string{}
	}

	var production []AgentProduction
	err := cs.db.SelectContext(ctx, &production, query, filter.StartDate, filter.EndDate, pq.Array(agentIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to query production by agent: %w", err)
	}
	return production, nil
}

func (cs *CommissionStore) GetCommissionTotals(ctx context.Context, filter ProductionFilter) (CommissionTotals, error) {
	query := `
	SELECT
		COUNT(id) AS commissions_count,
		COALESCE(SUM(amount), 0) AS total_amount
	FROM
		commissions
	WHERE
		calculation_date BETWEEN $1 AND $2;
	`

	var totals CommissionTotals
	err := cs.db.GetContext(ctx, &totals, query, filter.StartDate, filter.EndDate)
	if err != nil {
		return CommissionTotals{}, fmt.Errorf("failed to query commission totals: %w", err)
	}
	return totals, nil
}
