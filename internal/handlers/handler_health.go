package handlers

import (
	"invoice-dashboard/internal/middlewares"
	"invoice-dashboard/internal/version"
	"net/http"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func HandlerHealth(ctx *middlewares.AppContext) {
	ctx.WriteJSON(http.StatusOK, HealthResponse{
		Status:  "OK",
		Version: version.GetVersion(),
	})
}
