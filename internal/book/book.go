// Package book exposes the ingested dataset behind an explicit repository
// object: synchronous accessors plus an explicit Reload, injected into
// consumers instead of ambient global state. Accessors hand out copies of
// the top-level slices; the dedup maps never leave the ingestion layer.
package book

import (
	"slices"
	"sync"
	"time"

	"github.com/claudiorubilar/seguros/internal/commission"
	"github.com/claudiorubilar/seguros/internal/ledger/types"
)

// LoadFunc produces a fresh book; the repository calls it once at
// construction and again on every Reload.
type LoadFunc func() (*types.Book, error)

type Repository struct {
	mu     sync.RWMutex
	load   LoadFunc
	book   *types.Book
	grants []commission.ReferralGrant
}

// NewRepository builds the repository and performs the initial load.
func NewRepository(load LoadFunc) (*Repository, error) {
	repo := &Repository{load: load}
	if err := repo.Reload(); err != nil {
		return nil, err
	}
	return repo, nil
}

// Reload swaps the whole dataset for a freshly loaded one. Readers keep
// the slices they already hold; nothing is mutated in place.
func (r *Repository) Reload() error {
	book, err := r.load()
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.book = book
	return nil
}

// SetReferralGrants installs the manually designated referral
// installments used by Commissions.
func (r *Repository) SetReferralGrants(grants []commission.ReferralGrant) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.grants = slices.Clone(grants)
}

// Policies returns a copy of the policy slice. The copy is shallow:
// nested collections (installments, notifications, activity log) still
// alias the loaded book. Callers may overwrite fields on the returned
// elements but must clone a nested slice before mutating its entries.
func (r *Repository) Policies() []types.Policy {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.book.Policies)
}

func (r *Repository) PolicyByNumber(number string) (types.Policy, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.book.Policies {
		if p.PolicyNumber == number {
			return p, true
		}
	}
	return types.Policy{}, false
}

func (r *Repository) Clients() []types.Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.book.Clients)
}

func (r *Repository) Agents() []types.Agent {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.book.Agents)
}

func (r *Repository) Brokerages() []types.Brokerage {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.book.Brokerages)
}

func (r *Repository) Insurers() []types.Insurer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.book.Insurers)
}

func (r *Repository) Users() []types.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.book.Users)
}

// Commissions derives the commission set from the current book. The result
// is recomputed on every call; nothing is cached or persisted.
func (r *Repository) Commissions(now time.Time) []types.Commission {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return commission.Derive(r.book.Policies, r.book.Agents, r.grants, now)
}

// Counts summarizes the loaded dataset, used by the reload endpoint and
// the ETL log line.
type Counts struct {
	Policies    int `json:"policies"`
	Clients     int `json:"clients"`
	Agents      int `json:"agents"`
	Brokerages  int `json:"brokerages"`
	SourceRows  int `json:"sourceRows"`
	SkippedRows int `json:"skippedRows"`
}

func (r *Repository) Counts() Counts {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Counts{
		Policies:    len(r.book.Policies),
		Clients:     len(r.book.Clients),
		Agents:      len(r.book.Agents),
		Brokerages:  len(r.book.Brokerages),
		SourceRows:  r.book.SourceRows,
		SkippedRows: r.book.SkippedRows,
	}
}
