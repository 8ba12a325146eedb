package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/claudiorubilar/seguros/internal/ledger/types"
)

func TestApply(t *testing.T) {
	book := &types.Book{
		Agents:     []types.Agent{{ID: "76082437-2", Name: "CORREDORA VALDES"}},
		Brokerages: []types.Brokerage{{ID: "76082437-2"}},
	}

	Apply(book)

	assert.Len(t, book.Insurers, 3)
	assert.Len(t, book.Users, 4)
	assert.Len(t, book.Agents, 3)
	assert.Len(t, book.Brokerages, 2)
}

func TestApplyLedgerWinsOnCollision(t *testing.T) {
	book := &types.Book{
		Agents: []types.Agent{{ID: "a2", Name: "Carlos del Libro"}},
	}

	Apply(book)

	count := 0
	for _, a := range book.Agents {
		if a.ID == "a2" {
			count++
			assert.Equal(t, "Carlos del Libro", a.Name)
		}
	}
	assert.Equal(t, 1, count)
}

func TestSeedAgentsCarryManagerLinks(t *testing.T) {
	book := &types.Book{}
	Apply(book)

	for _, a := range book.Agents {
		assert.Equal(t, "u2", a.ManagerID, "seed agent %s should report to the manager", a.ID)
	}
}
