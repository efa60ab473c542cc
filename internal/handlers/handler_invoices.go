package handlers

import (
	"fmt"
	"invoice-dashboard/internal/middlewares"
	"invoice-dashboard/internal/models"
	"invoice-dashboard/internal/web"
	"net/http"
	"strconv"
	"strings"
)

const InvoicesPerPage = 10

// InvoicesHandler searches invoices by vendor. The search runs when the
// vendor parameter is present; the page parameter only slices the result.
func InvoicesHandler(ctx *middlewares.AppContext) {
	query := ctx.Request.URL.Query()

	content := web.InvoicesContent{
		Vendor:   strings.TrimSpace(query.Get("vendor")),
		Searched: query.Has("vendor"),
		Sort:     models.ParseSortKey(query.Get("sort")),
	}

	if !content.Searched {
		renderInvoices(ctx, http.StatusOK, content)
		return
	}

	if content.Vendor == "" {
		content.Error = "Please enter a vendor name"
		renderInvoices(ctx, http.StatusBadRequest, content)
		return
	}

	resp, err := ctx.Backend.GetInvoicesByVendor(ctx, content.Vendor)
	if err != nil {
		message, status := backendFailure(err, "Failed to fetch invoices")
		ctx.Logger.Warn("vendor search failed", "vendor", content.Vendor, "error", err)
		content.Error = message
		renderInvoices(ctx, status, content)
		return
	}

	invoices := models.SortInvoices(resp.InvoiceList(), content.Sort)
	content.Total = len(invoices)

	if content.Total == 0 {
		content.Notice = fmt.Sprintf("No invoices found for vendor: %s", content.Vendor)
		renderInvoices(ctx, http.StatusOK, content)
		return
	}

	page, _ := strconv.Atoi(query.Get("page"))
	content.Page = models.Paginate(content.Total, page, InvoicesPerPage)
	content.Invoices = invoices[content.Page.Start:content.Page.End]

	vendorName := resp.VendorName
	if vendorName == "" {
		vendorName = content.Vendor
	}
	content.Notice = fmt.Sprintf("Found %d invoice(s) for %s", content.Total, vendorName)

	renderInvoices(ctx, http.StatusOK, content)
}

func renderInvoices(ctx *middlewares.AppContext, status int, content web.InvoicesContent) {
	ctx.Render(status, web.PageInvoices, newPage(ctx, "invoices", content))
}
