package main

import (
	"net/http"

	"github.com/claudiorubilar/seguros/internal/book"
	"github.com/claudiorubilar/seguros/internal/response"
)

type ReloadResponse = response.APIResponse[book.Counts]

// @Summary		Reload ledger
// @Description	Re-ingests the ledger file and swaps the in-memory dataset. The previous dataset keeps serving until the swap.
// @Tags			Ingestion
// @Produce		json
// @Success		200	{object}	ReloadResponse			"Ledger reloaded"
// @Failure		500	{object}	response.ErrorResponse	"Reload failed"
// @Router			/ingestion/reload [post]
func (app *application) handleReload(w http.ResponseWriter, r *http.Request) {
	const component = "Reload"

	if err := app.repo.Reload(); err != nil {
		app.logger.Error(component, "Ledger reload failed: path=%s error=%v", app.config.ledgerPath, err)
		writeJSONError(w, http.StatusInternalServerError, "failed to reload ledger: "+err.Error())
		return
	}

	counts := app.repo.Counts()
	app.logger.Info(component, "Ledger reloaded: policies=%d rows=%d skipped=%d", counts.Policies, counts.SourceRows, counts.SkippedRows)

	resp := &ReloadResponse{
		Success: true,
		Data:    counts,
		Message: "Ledger reloaded",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
