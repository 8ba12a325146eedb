// Package seed carries the reference data the ledger cannot provide: the
// insurer directory, the back-office users, and the managed agents whose
// manager links feed override commissions.
package seed

import (
	"time"

	"github.com/claudiorubilar/seguros/internal/ledger/types"
)

// Insurers is the fixed insurer reference list. The cartera export has no
// insurer column, so policies carry no insurer assignment; the list exists
// for the directory views only.
var Insurers = []types.Insurer{
	{ID: "insurer-1", Name: "Liberty Seguros"},
	{ID: "insurer-2", Name: "Sura Seguros"},
	{ID: "insurer-3", Name: "Consorcio"},
}

// Users are the back-office accounts. A person selling policies appears as
// an Agent row with its own id even when also present here.
var Users = []types.User{
	{ID: "u1", Name: "John Doe", Email: "john.doe@example.com", Role: types.RoleAdmin, Status: "Activo", LastLogin: time.Date(2024, 5, 25, 10, 30, 0, 0, time.UTC)},
	{ID: "u2", Name: "Jane Smith", Email: "jane.smith@example.com", Role: types.RoleGerente, Status: "Activo", LastLogin: time.Date(2024, 5, 24, 15, 0, 0, 0, time.UTC)},
	{ID: "a2", Name: "Carlos Díaz", Email: "cdiaz@example.com", Role: types.RoleAgente, Status: "Activo", LastLogin: time.Date(2024, 5, 25, 9, 15, 0, 0, time.UTC)},
	{ID: "a3", Name: "Benjamín Soto", Email: "bsoto@example.com", Role: types.RoleAgente, Status: "Inactivo", LastLogin: time.Date(2024, 4, 20, 18, 0, 0, 0, time.UTC)},
}

// Agents are sellers not present in the ledger. Both report to the Gerente
// user, which is what makes override commissions reachable in practice.
var Agents = []types.Agent{
	{ID: "a2", Name: "Carlos Díaz", BrokerageID: "b2", ManagerID: "u2"},
	{ID: "a3", Name: "Benjamín Soto", BrokerageID: "b2", ManagerID: "u2"},
}

var Brokerages = []types.Brokerage{
	{ID: "b2", Name: "BrokerMax Chile"},
}

// Apply merges the reference data into an ingested book. Ledger entities
// win on id collisions; seed rows only fill what the ledger never saw.
func Apply(book *types.Book) {
	book.Insurers = append(book.Insurers, Insurers...)
	book.Users = append(book.Users, Users...)

	agentIDs := make(map[string]struct{}, len(book.Agents))
	for _, a := range book.Agents {
		agentIDs[a.ID] = struct{}{}
	}
	for _, a := range Agents {
		if _, seen := agentIDs[a.ID]; !seen {
			book.Agents = append(book.Agents, a)
		}
	}

	brokerageIDs := make(map[string]struct{}, len(book.Brokerages))
	for _, b := range book.Brokerages {
		brokerageIDs[b.ID] = struct{}{}
	}
	for _, b := range Brokerages {
		if _, seen := brokerageIDs[b.ID]; !seen {
			book.Brokerages = append(book.Brokerages, b)
		}
	}
}
