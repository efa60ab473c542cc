package handlers

import (
	"invoice-dashboard/internal/middlewares"
	"invoice-dashboard/internal/web"
	"net/http"
)

func DashboardHandler(ctx *middlewares.AppContext) {
	stats := ctx.Stats.DashboardStats(ctx)

	ctx.Render(http.StatusOK, web.PageDashboard, newPage(ctx, "dashboard", web.DashboardContent{
		Stats: stats,
	}))
}
