package middlewares

import (
	"invoice-dashboard/internal/models"
	"net/http"
)

//go:generate mockgen -source=session_provider.go -destination=../mocks/session.go -package=mocks

type SessionProvider interface {
	Login(ctx *AppContext, username, password string) (bool, error)
	Logout(ctx *AppContext)
	State(ctx *AppContext) models.SessionState
	ReassertAuthFlag(ctx *AppContext)

	PutFlash(ctx *AppContext, flash models.Flash)
	PopFlash(ctx *AppContext) (models.Flash, bool)

	SetInvoiceDraft(ctx *AppContext, invoice models.Invoice)
	GetInvoiceDraft(ctx *AppContext, invoiceID string) (models.Invoice, bool)
	ClearInvoiceDraft(ctx *AppContext, invoiceID string)

	LoadAndSave(next http.Handler) http.Handler
}
