package handlers

import (
	"invoice-dashboard/internal/middlewares"
	"invoice-dashboard/internal/web"
	"net/http"
	"strings"
)

func NotFoundHandler(ctx *middlewares.AppContext) {
	if strings.HasPrefix(ctx.Request.URL.Path, "/api/") {
		ctx.SetJSONError(http.StatusNotFound, "Not Found")
		return
	}

	ctx.Render(http.StatusNotFound, web.PageNotFound, newPage(ctx, "", web.NotFoundContent{
		Path: ctx.Request.URL.Path,
	}))
}
