package handlers

import (
	"invoice-dashboard/internal/middlewares"
	"net/http"
)

func RootHandler(ctx *middlewares.AppContext) {
	if ctx.SessionManager.State(ctx).Authenticated {
		ctx.Redirect("/dashboard", http.StatusSeeOther)
		return
	}

	ctx.Redirect(ctx.Config.Auth.LoginPath, http.StatusSeeOther)
}
