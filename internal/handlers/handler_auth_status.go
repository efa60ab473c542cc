package handlers

import (
	"invoice-dashboard/internal/middlewares"
	"invoice-dashboard/internal/models"
	"net/http"
)

func AuthStatusHandler(ctx *middlewares.AppContext) {
	state := ctx.SessionManager.State(ctx)
	if !state.Authenticated {
		ctx.WriteJSON(http.StatusUnauthorized, models.SessionState{})
		return
	}

	ctx.WriteJSON(http.StatusOK, state)
}
