package handlers

import (
	"invoice-dashboard/internal/middlewares"
	"invoice-dashboard/internal/models"
	"invoice-dashboard/internal/web"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const (
	msgInvoiceNotFound = "Invoice not found"
	msgDraftSaved      = "Changes saved locally (demo mode)"
	msgDraftDiscarded  = "Local changes discarded"
)

// GETInvoiceHandler shows an invoice with any local draft laid over the
// backend copy. ?edit switches to the edit form.
func GETInvoiceHandler(ctx *middlewares.AppContext) {
	invoiceID := chi.URLParam(ctx.Request, "id")

	content, status := loadInvoice(ctx, invoiceID)
	content.Editing = status == http.StatusOK && ctx.Request.URL.Query().Has("edit")

	renderInvoice(ctx, status, content)
}

// POSTInvoiceHandler validates the submitted fields and stores the result as
// a session-local draft. Nothing is sent to the backend.
func POSTInvoiceHandler(ctx *middlewares.AppContext) {
	invoiceID := chi.URLParam(ctx.Request, "id")

	content, status := loadInvoice(ctx, invoiceID)
	if status != http.StatusOK {
		renderInvoice(ctx, status, content)
		return
	}

	if err := ctx.Request.ParseForm(); err != nil {
		content.Editing = true
		content.Error = "Could not read the submitted changes"
		renderInvoice(ctx, http.StatusBadRequest, content)
		return
	}

	values := make(map[models.InvoiceField]string)
	for _, field := range models.EditableInvoiceFields {
		if vs, ok := ctx.Request.PostForm[string(field)]; ok && len(vs) > 0 {
			values[field] = vs[0]
		}
	}

	edited := content.Invoice
	if err := edited.ApplyFields(values); err != nil {
		ctx.Logger.Debug("invoice edit rejected", "invoice_id", invoiceID, "error", err)
		content.Editing = true
		content.Error = "Could not save changes: " + err.Error()
		renderInvoice(ctx, http.StatusBadRequest, content)
		return
	}
	edited.InvoiceID = invoiceID

	ctx.SessionManager.SetInvoiceDraft(ctx, edited)
	ctx.SessionManager.PutFlash(ctx, models.Flash{Level: models.FlashSuccess, Message: msgDraftSaved})
	ctx.Redirect(web.InvoiceURL(invoiceID), http.StatusSeeOther)
}

func POSTInvoiceResetHandler(ctx *middlewares.AppContext) {
	invoiceID := chi.URLParam(ctx.Request, "id")

	ctx.SessionManager.ClearInvoiceDraft(ctx, invoiceID)
	ctx.SessionManager.PutFlash(ctx, models.Flash{Level: models.FlashInfo, Message: msgDraftDiscarded})
	ctx.Redirect(web.InvoiceURL(invoiceID), http.StatusSeeOther)
}

func loadInvoice(ctx *middlewares.AppContext, invoiceID string) (web.InvoiceContent, int) {
	content := web.InvoiceContent{
		InvoiceID: invoiceID,
		Fields:    models.EditableInvoiceFields,
	}

	if invoiceID == "" {
		content.Error = msgInvoiceNotFound
		return content, http.StatusNotFound
	}

	resp, err := ctx.Backend.GetInvoice(ctx, invoiceID)
	if err != nil {
		_, status := backendFailure(err, msgInvoiceNotFound)
		ctx.Logger.Warn("failed to fetch invoice", "invoice_id", invoiceID, "error", err)
		content.Error = msgInvoiceNotFound
		return content, status
	}

	content.Invoice = resp.Invoice
	content.Items = resp.Items
	if content.Invoice.InvoiceID == "" {
		content.Invoice.InvoiceID = invoiceID
	}

	if draft, ok := ctx.SessionManager.GetInvoiceDraft(ctx, invoiceID); ok {
		content.Invoice = draft
		content.Edited = true
	}

	return content, http.StatusOK
}

func renderInvoice(ctx *middlewares.AppContext, status int, content web.InvoiceContent) {
	ctx.Render(status, web.PageInvoice, newPage(ctx, "invoices", content))
}
