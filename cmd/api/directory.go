package main

import (
	"net/http"

	"github.com/claudiorubilar/seguros/internal/ledger/types"
	"github.com/claudiorubilar/seguros/internal/response"
	"github.com/claudiorubilar/seguros/internal/sortable"
)

type GetClientsResponse = response.APIResponse[[]types.Client]
type GetAgentsResponse = response.APIResponse[[]types.Agent]
type GetBrokeragesResponse = response.APIResponse[[]types.Brokerage]
type GetInsurersResponse = response.APIResponse[[]types.Insurer]
type GetUsersResponse = response.APIResponse[[]types.User]

// @Summary		List clients
// @Tags			Directory
// @Produce		json
// @Success		200	{object}	GetClientsResponse
// @Router			/clients [get]
func (app *application) handleGetClients(w http.ResponseWriter, r *http.Request) {
	clients := app.repo.Clients()

	sorter := sortable.New(map[string]sortable.Comparator[types.Client]{
		"id":   sortable.ByString(func(c types.Client) string { return c.ID }),
		"name": sortable.ByString(func(c types.Client) string { return c.Name }),
	})
	sortParams(r, sorter)
	clients = sorter.Sort(clients)

	resp := &GetClientsResponse{Success: true, Data: clients, Message: "Successfully retrieved clients"}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

// @Summary		List agents
// @Tags			Directory
// @Produce		json
// @Success		200	{object}	GetAgentsResponse
// @Router			/agents [get]
func (app *application) handleGetAgents(w http.ResponseWriter, r *http.Request) {
	agents := app.repo.Agents()

	sorter := sortable.New(map[string]sortable.Comparator[types.Agent]{
		"id":   sortable.ByString(func(a types.Agent) string { return a.ID }),
		"name": sortable.ByString(func(a types.Agent) string { return a.Name }),
	})
	sortParams(r, sorter)
	agents = sorter.Sort(agents)

	resp := &GetAgentsResponse{Success: true, Data: agents, Message: "Successfully retrieved agents"}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

// @Summary		List brokerages
// @Tags			Directory
// @Produce		json
// @Success		200	{object}	GetBrokeragesResponse
// @Router			/brokerages [get]
func (app *application) handleGetBrokerages(w http.ResponseWriter, r *http.Request) {
	resp := &GetBrokeragesResponse{Success: true, Data: app.repo.Brokerages(), Message: "Successfully retrieved brokerages"}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

// @Summary		List insurers
// @Tags			Directory
// @Produce		json
// @Success		200	{object}	GetInsurersResponse
// @Router			/insurers [get]
func (app *application) handleGetInsurers(w http.ResponseWriter, r *http.Request) {
	resp := &GetInsurersResponse{Success: true, Data: app.repo.Insurers(), Message: "Successfully retrieved insurers"}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

// @Summary		List users
// @Tags			Directory
// @Produce		json
// @Success		200	{object}	GetUsersResponse
// @Router			/users [get]
func (app *application) handleGetUsers(w http.ResponseWriter, r *http.Request) {
	resp := &GetUsersResponse{Success: true, Data: app.repo.Users(), Message: "Successfully retrieved users"}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
