package handlers

import (
	"invoice-dashboard/internal/backend"
	"invoice-dashboard/internal/middlewares"
	"invoice-dashboard/internal/web"
	"net/http"
)

// newPage fills the navbar from the session and consumes any pending flash.
func newPage[T any](ctx *middlewares.AppContext, active string, content T) web.Page[T] {
	state := ctx.SessionManager.State(ctx)

	page := web.Page[T]{
		Header: web.HeaderData{
			LoggedIn: state.Authenticated,
			Username: state.Username,
			Active:   active,
		},
		Content: content,
	}

	if flash, ok := ctx.SessionManager.PopFlash(ctx); ok {
		page.Flash = &flash
	}

	return page
}

// backendFailure turns a backend error into the message shown to the user and
// the status the page is rendered with.
func backendFailure(err error, fallback string) (string, int) {
	apiErr, ok := backend.AsAPIError(err)
	if !ok {
		return fallback, http.StatusInternalServerError
	}

	message := apiErr.Message
	if message == "" || apiErr.Status == 0 {
		message = fallback
	}

	return message, apiErr.HTTPStatus()
}
