package handlers

import (
	"invoice-dashboard/internal/config"
	"invoice-dashboard/internal/middlewares"
	"invoice-dashboard/internal/models"
	"invoice-dashboard/internal/web"
	"net/http"
	"strings"
)

const (
	msgMissingCredentials = "Please enter username and password"
	msgInvalidCredentials = "Invalid credentials. Use admin/admin"
	msgLoginSuccessful    = "Login successful!"
	msgLoginUnavailable   = "Login is temporarily unavailable. Please try again."
)

func GETLoginHandler(ctx *middlewares.AppContext) {
	if ctx.SessionManager.State(ctx).Authenticated {
		ctx.Redirect("/dashboard", http.StatusSeeOther)
		return
	}

	renderLogin(ctx, http.StatusOK, web.LoginContent{})
}

func POSTLoginHandler(ctx *middlewares.AppContext) {
	if err := ctx.Request.ParseForm(); err != nil {
		ctx.Logger.Debug("failed to parse login form", "error", err)
		renderLogin(ctx, http.StatusBadRequest, web.LoginContent{Error: msgMissingCredentials})
		return
	}

	username := strings.TrimSpace(ctx.Request.PostForm.Get("username"))
	password := ctx.Request.PostForm.Get("password")

	if username == "" || password == "" {
		renderLogin(ctx, http.StatusBadRequest, web.LoginContent{
			Username: username,
			Error:    msgMissingCredentials,
		})
		return
	}

	ok, err := ctx.SessionManager.Login(ctx, username, password)
	if err != nil {
		renderLogin(ctx, http.StatusInternalServerError, web.LoginContent{
			Username: username,
			Error:    msgLoginUnavailable,
		})
		return
	}

	if !ok {
		renderLogin(ctx, http.StatusUnauthorized, web.LoginContent{
			Username: username,
			Error:    msgInvalidCredentials,
		})
		return
	}

	ctx.SessionManager.PutFlash(ctx, models.Flash{Level: models.FlashSuccess, Message: msgLoginSuccessful})
	ctx.Redirect("/dashboard", http.StatusSeeOther)
}

func renderLogin(ctx *middlewares.AppContext, status int, content web.LoginContent) {
	if usesDemoAccount(ctx.Config.Auth) {
		content.DemoUsername = ctx.Config.Auth.Username
		content.DemoPassword = ctx.Config.Auth.Password
	}

	ctx.Render(status, web.PageLogin, newPage(ctx, "", content))
}

// usesDemoAccount reports whether the configured account is the published
// demo one, in which case the login form shows it.
func usesDemoAccount(cfg config.AuthConfig) bool {
	return cfg.PasswordHash == "" &&
		cfg.Username == config.DefaultAuthConfig.Username &&
		cfg.Password == config.DefaultAuthConfig.Password
}
