package types

import "time"

type Currency string

const (
	CurrencyCLP Currency = "CLP"
	CurrencyUF  Currency = "UF"
)

type PolicyStatus string

const (
	PolicyVigente   PolicyStatus = "VIGENTE"
	PolicyVencida   PolicyStatus = "VENCIDA"
	PolicyCancelada PolicyStatus = "CANCELADA"
)

type InstallmentStatus string

const (
	InstallmentPagada    InstallmentStatus = "Pagada"
	InstallmentPendiente InstallmentStatus = "Pendiente"
	InstallmentVencida   InstallmentStatus = "Vencida"
)

type RenewalStatus string

const (
	RenewalRenovada   RenewalStatus = "Renovada"
	RenewalNoRenovada RenewalStatus = "No Renovada"
	RenewalPendiente  RenewalStatus = "Pendiente"
)

type CommissionType string

const (
	CommissionVenta      CommissionType = "Venta"
	CommissionRenovacion CommissionType = "Renovación"
	CommissionOverride   CommissionType = "Override"
	CommissionReferido   CommissionType = "Referido"
)

// Brokerage is the intermediary firm of record for a book of policies.
type Brokerage struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Agent sells under a brokerage. ManagerID, when non-empty, routes
// override commissions to the manager; it is a lookup-only reference.
type Agent struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	BrokerageID string `json:"brokerageId"`
	ManagerID   string `json:"managerId,omitempty"`
}

// Client is a policyholder, keyed by RUT.
type Client struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Insurer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	LastLogin time.Time `json:"lastLogin"`
}

const (
	RoleAdmin      = "Admin"
	RoleGerente    = "Gerente"
	RoleAgente     = "Agente"
	RoleSuperAdmin = "SuperAdmin"
	RoleCobranza   = "Cobranza"
)

// Installment is one scheduled payment obligation under a policy.
// Identity is (PolicyNumber, InstallmentNumber). PaymentDate is the zero
// time unless the installment was collected.
type Installment struct {
	ID                string            `json:"id"`
	PolicyNumber      string            `json:"policyNumber"`
	InstallmentNumber int               `json:"installmentNumber"`
	TotalInstallments int               `json:"totalInstallments"`
	DueDate           time.Time         `json:"dueDate"`
	PaymentDate       time.Time         `json:"paymentDate,omitzero"`
	NetAmount         float64           `json:"netAmount"`
	Tax               float64           `json:"tax"`
	Interest          float64           `json:"interest"`
	TotalAmount       float64           `json:"totalAmount"`
	Status            InstallmentStatus `json:"status"`
	Currency          Currency          `json:"currency"`
}

type Attachment struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
	FileType   string    `json:"fileType"`
}

type Notification struct {
	ID      string    `json:"id"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
	Read    bool      `json:"read"`
}

type ActivityEntry struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	User        string    `json:"user"`
}

// Policy is the aggregate root. It exclusively owns its installments and
// the attachment/notification/activity collections; installments keep
// ledger appearance order. Status holds the ingested value untouched —
// display code must go through EffectivePolicyStatus.
type Policy struct {
	ID             string          `json:"id"`
	PolicyNumber   string          `json:"policyNumber"`
	Product        string          `json:"product"`
	LineOfBusiness string          `json:"lineOfBusiness"`
	IssueDate      time.Time       `json:"issueDate"`
	StartDate      time.Time       `json:"startDate"`
	EndDate        time.Time       `json:"endDate"`
	PolicyHolderID string          `json:"policyHolderId"`
	InsuredID      string          `json:"insuredId"`
	TotalPremium   float64         `json:"totalPremium"`
	Status         PolicyStatus    `json:"status"`
	Currency       Currency        `json:"currency"`
	AgentID        string          `json:"agentId"`
	BrokerageID    string          `json:"brokerageId"`
	InsurerID      string          `json:"insurerId,omitempty"`
	RenewalDate    time.Time       `json:"renewalDate"`
	RenewalStatus  RenewalStatus   `json:"renewalStatus"`
	Installments   []Installment   `json:"installments"`
	Attachments    []Attachment    `json:"attachments"`
	Notifications  []Notification  `json:"notifications"`
	ActivityLog    []ActivityEntry `json:"activityLog"`
}

// Commission is derived, never stored input. RelatedAgentID carries the
// originating seller for Override and Referido records.
type Commission struct {
	ID              string         `json:"id"`
	PolicyID        string         `json:"policyId"`
	PolicyNumber    string         `json:"policyNumber"`
	InstallmentID   string         `json:"installmentId"`
	AgentID         string         `json:"agentId"`
	Amount          float64        `json:"amount"`
	Currency        Currency       `json:"currency"`
	Type            CommissionType `json:"type"`
	CalculationDate time.Time      `json:"calculationDate"`
	RelatedAgentID  string         `json:"relatedAgentId,omitempty"`
}

// Book is the normalized dataset assembled from one ledger ingestion.
// Entity slices keep first-appearance order.
type Book struct {
	Policies   []Policy
	Clients    []Client
	Agents     []Agent
	Brokerages []Brokerage
	Insurers   []Insurer
	Users      []User

	SourceRows  int
	SkippedRows int
}
