package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type PolicyStore struct {
	db *sqlx.DB
}

func (ps *PolicyStore) InsertPolicy(ctx context.Context, policy *PolicyRow) error {
	query := `INSERT INTO policies (
		id,
		policy_number,
		product,
		line_of_business,
		issue_date,
		start_date,
		end_date,
		policy_holder_id,
		insured_id,
		total_premium,
		status,
		currency,
		agent_id,
		brokerage_id,
		insurer_id,
		renewal_date,
		renewal_status,
		inserted_at,
		updated_at
	) VALUES (
		:id,
		:policy_number,
		:product,
		:line_of_business,
		:issue_date,
		:start_date,
		:end_date,
		:policy_holder_id,
		:insured_id,
		:total_premium,
		:status,
		:currency,
		:agent_id,
		:brokerage_id,
		:insurer_id,
		:renewal_date,
		:renewal_status,
		:inserted_at,
		:updated_at
	) ON CONFLICT (id) DO UPDATE SET
		status = EXCLUDED.status,
		renewal_status = EXCLUDED.renewal_status,
		total_premium = EXCLUDED.total_premium,
		updated_at = EXCLUDED.updated_at`

	_, err := ps.db.NamedExecContext(ctx, query, policy)
	return err
}

func (ps *PolicyStore) InsertInstallment(ctx context.Context, installment *InstallmentRow) error {
	query := `INSERT INTO installments (
		id,
		policy_id,
		policy_number,
		installment_number,
		total_installments,
		due_date,
		net_amount,
		tax,
		interest,
		total_amount,
		status,
		payment_date,
		currency,
		inserted_at,
		updated_at
	) VALUES (
		:id,
		:policy_id,
		:policy_number,
		:installment_number,
		:total_installments,
		:due_date,
		:net_amount,
		:tax,
		:interest,
		:total_amount,
		:status,
		:payment_date,
		:currency,
		:inserted_at,
		:updated_at
	) ON CONFLICT (id) DO UPDATE SET
		status = EXCLUDED.status,
		payment_date = EXCLUDED.payment_date,
		total_amount = EXCLUDED.total_amount,
		updated_at = EXCLUDED.updated_at`

	_, err := ps.db.NamedExecContext(ctx, query, installment)
	return err
}

type PremiumByLine struct {
	LineOfBusiness string  `db:"line_of_business" json:"line_of_business"`
	Currency       string  `db:"currency" json:"currency"`
	PolicyCount    int     `db:"policy_count" json:"policy_count"`
	TotalPremium   float64 `db:"total_premium" json:"total_premium"`
}

func (ps *PolicyStore) GetPremiumByLine(ctx context.Context) ([]PremiumByLine, error) {
	query := `
	SELECT
		line_of_business,
		currency,
		COUNT(id) AS policy_count,
		SUM(total_premium) AS total_premium
	FROM
		policies
	GROUP BY
		line_of_business,
		currency
	ORDER BY
		total_premium DESC;
	`

	var report []PremiumByLine
	err := ps.db.SelectContext(ctx, &report, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query premium by line: %w", err)
	}
	return report, nil
}
