package handler

import (
	"net/http"

	"github.com/osse101/RuneStatus_Go/internal/status"
)

// HandleGetStatus returns the current player view
// @Summary Player status
// @Description Current snapshot with item names resolved. Unknown fields are null.
// @Tags status
// @Produce json
// @Success 200 {object} domain.PlayerView
// @Router /status [get]
func HandleGetStatus(svc status.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.View(r.Context()))
	}
}
