package store

import (
	"time"

	"github.com/lib/pq"
)

// PolicyRow represents the 'policies' table.
type PolicyRow struct {
	ID             string    `db:"id"`
	PolicyNumber   string    `db:"policy_number"`
	Product        string    `db:"product"`
	LineOfBusiness string    `db:"line_of_business"`
	IssueDate      time.Time `db:"issue_date"`
	StartDate      time.Time `db:"start_date"`
	EndDate        time.Time `db:"end_date"`
	PolicyHolderID string    `db:"policy_holder_id"`
	InsuredID      string    `db:"insured_id"`
	TotalPremium   float64   `db:"total_premium"`
	Status         string    `db:"status"`
	Currency       string    `db:"currency"`
	AgentID        string    `db:"agent_id"`
	BrokerageID    string    `db:"brokerage_id"`
	InsurerID      string    `db:"insurer_id"`
	RenewalDate    time.Time `db:"renewal_date"`
	RenewalStatus  string    `db:"renewal_status"`
	InsertedAt     time.Time `db:"inserted_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// InstallmentRow represents the 'installments' table.
type InstallmentRow struct {
	ID                string      `db:"id"`
	PolicyID          string      `db:"policy_id"`
	PolicyNumber      string      `db:"policy_number"`
	InstallmentNumber int         `db:"installment_number"`
	TotalInstallments int         `db:"total_installments"`
	DueDate           time.Time   `db:"due_date"`
	NetAmount         float64     `db:"net_amount"`
	Tax               float64     `db:"tax"`
	Interest          float64     `db:"interest"`
	TotalAmount       float64     `db:"total_amount"`
	Status            string      `db:"status"`
	PaymentDate       pq.NullTime `db:"payment_date"`
	Currency          string      `db:"currency"`
	InsertedAt        time.Time   `db:"inserted_at"`
	UpdatedAt         time.Time   `db:"updated_at"`
}

// CommissionRow represents the 'commissions' table.
type CommissionRow struct {
	ID              string    `db:"id"`
	PolicyID        string    `db:"policy_id"`
	PolicyNumber    string    `db:"policy_number"`
	InstallmentID   string    `db:"installment_id"`
	AgentID         string    `db:"agent_id"`
	RelatedAgentID  string    `db:"related_agent_id"`
	Amount          float64   `db:"amount"`
	Currency        string    `db:"currency"`
	Type            string    `db:"type"`
	CalculationDate time.Time `db:"calculation_date"`
	InsertedAt      time.Time `db:"inserted_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// IngestionHistory represents the 'ingestion_history' table.
type IngestionHistory struct {
	ID          int64     `db:"id" json:"id"`
	ProcessedAt time.Time `db:"processed_at" json:"processed_at"`
	SourceFile  string    `db:"source_file" json:"source_file"`
	TriggerType string    `db:"trigger_type" json:"trigger_type"`
	Status      string    `db:"status" json:"status"`
	RowsTotal   int       `db:"rows_total" json:"rows_total"`
	RowsSkipped int       `db:"rows_skipped" json:"rows_skipped"`
	PolicyCount int       `db:"policy_count" json:"policy_count"`
}
