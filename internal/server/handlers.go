package server

import (
	"invoice-dashboard/internal/handlers"
	"invoice-dashboard/internal/middlewares"
	"invoice-dashboard/internal/web"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func setupRouter(ctx *middlewares.AppContext) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogging(ctx.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middlewares.MetricsMiddleware)
	r.Use(middleware.Timeout(ctx.Config.Backend.Timeout + 10*time.Second))
	r.Use(middlewares.SecurityHeaders(ctx.Config.Server.Secure))

	// the guard only reads the flag cookie, so it runs before the session loads
	r.Use(middlewares.RouteGuard(ctx.Config.Auth))

	r.Use(middleware.Compress(5))

	r.Use(ctx.SessionManager.LoadAndSave)
	r.Use(middlewares.AppContextMiddleware(ctx))
	r.Use(middlewares.ReassertAuthFlag)

	r.Handle("/static/*", http.StripPrefix("/static/", web.StaticHandler()))
	r.Get("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.Get("/", ctx.HandlerFunc(handlers.RootHandler))

	r.Get("/login", ctx.HandlerFunc(handlers.GETLoginHandler))
	r.Post("/login", ctx.HandlerFunc(handlers.POSTLoginHandler))
	r.Post("/logout", ctx.HandlerFunc(handlers.POSTLogoutHandler))

	r.Get("/dashboard", ctx.HandlerFunc(handlers.DashboardHandler))

	r.Get("/upload", ctx.HandlerFunc(handlers.GETUploadHandler))
	r.Post("/upload", ctx.HandlerFunc(handlers.POSTUploadHandler))

	r.Get("/invoices", ctx.HandlerFunc(handlers.InvoicesHandler))

	r.Route("/invoice/{id}", func(r chi.Router) {
		r.Get("/", ctx.HandlerFunc(handlers.GETInvoiceHandler))
		r.Post("/", ctx.HandlerFunc(handlers.POSTInvoiceHandler))
		r.Post("/reset", ctx.HandlerFunc(handlers.POSTInvoiceResetHandler))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   ctx.Config.CORS.AllowedOrigins,
			AllowedMethods:   ctx.Config.CORS.AllowedMethods,
			AllowedHeaders:   ctx.Config.CORS.AllowedHeaders,
			ExposedHeaders:   ctx.Config.CORS.ExposedHeaders,
			AllowCredentials: ctx.Config.CORS.AllowCredentials,
			MaxAge:           ctx.Config.CORS.MaxAgeSeconds,
		}))

		r.Route("/auth", func(r chi.Router) {
			r.Get("/status", ctx.HandlerFunc(handlers.AuthStatusHandler))
		})

		r.Route("/v1", func(r chi.Router) {
			r.Get("/health", ctx.HandlerFunc(handlers.HandlerHealth))
		})
	})

	r.NotFound(ctx.HandlerFunc(handlers.NotFoundHandler))

	return r
}

func setupDebugRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/debug", middleware.Profiler())

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
