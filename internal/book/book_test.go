package book

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claudiorubilar/seguros/internal/commission"
	"github.com/claudiorubilar/seguros/internal/ledger/types"
)

var testNow = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

func testBook() *types.Book {
	return &types.Book{
		Policies: []types.Policy{{
			ID:           "9178404-100079798",
			PolicyNumber: "100079798",
			AgentID:      "a1",
			Installments: []types.Installment{{
				ID:           "100079798-1",
				PolicyNumber: "100079798",
				TotalAmount:  100000,
				Status:       types.InstallmentPagada,
				PaymentDate:  time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC),
				Currency:     types.CurrencyCLP,
			}},
		}},
		Clients:    []types.Client{{ID: "77681212-9", Name: "GASTRONOMICA VITACURA SP"}},
		Agents:     []types.Agent{{ID: "a1", Name: "Ana Rojas", ManagerID: "u2"}},
		SourceRows: 1,
	}
}

func TestNewRepositoryLoadsOnce(t *testing.T) {
	calls := 0
	repo, err := NewRepository(func() (*types.Book, error) {
		calls++
		return testBook(), nil
	})
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Len(t, repo.Policies(), 1)
	assert.Len(t, repo.Clients(), 1)
}

func TestNewRepositoryPropagatesLoadError(t *testing.T) {
	_, err := NewRepository(func() (*types.Book, error) {
		return nil, errors.New("file missing")
	})
	assert.Error(t, err)
}

func TestReloadSwapsDataset(t *testing.T) {
	books := []*types.Book{testBook(), {Policies: nil, SourceRows: 0}}
	call := 0
	repo, err := NewRepository(func() (*types.Book, error) {
		b := books[call]
		call++
		return b, nil
	})
	require.NoError(t, err)
	require.Len(t, repo.Policies(), 1)

	require.NoError(t, repo.Reload())
	assert.Empty(t, repo.Policies())
}

func TestReloadFailureKeepsPreviousDataset(t *testing.T) {
	call := 0
	repo, err := NewRepository(func() (*types.Book, error) {
		call++
		if call > 1 {
			return nil, errors.New("ledger unreadable")
		}
		return testBook(), nil
	})
	require.NoError(t, err)

	assert.Error(t, repo.Reload())
	assert.Len(t, repo.Policies(), 1)
}

func TestAccessorsReturnCopies(t *testing.T) {
	repo, err := NewRepository(func() (*types.Book, error) { return testBook(), nil })
	require.NoError(t, err)

	policies := repo.Policies()
	policies[0].PolicyNumber = "mutated"

	assert.Equal(t, "100079798", repo.Policies()[0].PolicyNumber)
}

func TestPolicyByNumber(t *testing.T) {
	repo, err := NewRepository(func() (*types.Book, error) { return testBook(), nil })
	require.NoError(t, err)

	p, ok := repo.PolicyByNumber("100079798")
	assert.True(t, ok)
	assert.Equal(t, "9178404-100079798", p.ID)

	_, ok = repo.PolicyByNumber("000000")
	assert.False(t, ok)
}

func TestCommissionsDerivedFresh(t *testing.T) {
	repo, err := NewRepository(func() (*types.Book, error) { return testBook(), nil })
	require.NoError(t, err)

	commissions := repo.Commissions(testNow)
	require.Len(t, commissions, 2) // base plus override via manager link
	assert.Equal(t, types.CommissionVenta, commissions[0].Type)
	assert.Equal(t, types.CommissionOverride, commissions[1].Type)

	assert.Equal(t, commissions, repo.Commissions(testNow))
}

func TestReferralGrants(t *testing.T) {
	repo, err := NewRepository(func() (*types.Book, error) { return testBook(), nil })
	require.NoError(t, err)

	repo.SetReferralGrants([]commission.ReferralGrant{{
		PolicyNumber:  "100079798",
		InstallmentID: "100079798-1",
		AgentID:       "a3",
	}})

	commissions := repo.Commissions(testNow)
	require.Len(t, commissions, 3)
	assert.Equal(t, types.CommissionReferido, commissions[2].Type)
}

func TestCounts(t *testing.T) {
	repo, err := NewRepository(func() (*types.Book, error) { return testBook(), nil })
	require.NoError(t, err)

	counts := repo.Counts()
	assert.Equal(t, 1, counts.Policies)
	assert.Equal(t, 1, counts.Clients)
	assert.Equal(t, 1, counts.Agents)
	assert.Equal(t, 1, counts.SourceRows)
	assert.Equal(t, 0, counts.SkippedRows)
}
