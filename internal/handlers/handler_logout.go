package handlers

import (
	"invoice-dashboard/internal/middlewares"
	"net/http"
)

// POSTLogoutHandler always succeeds; the session layer logs store failures.
func POSTLogoutHandler(ctx *middlewares.AppContext) {
	if state := ctx.SessionManager.State(ctx); state.Authenticated {
		ctx.Logger.Info("user logged out", "username", state.Username)
	}

	ctx.SessionManager.Logout(ctx)
	ctx.Redirect(ctx.Config.Auth.LoginPath, http.StatusSeeOther)
}
