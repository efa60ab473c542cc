package web

import (
	"bytes"
	"invoice-dashboard/internal/models"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(nil)
	require.NoError(t, err)
	return r
}

func TestRendererLoadsAllPages(t *testing.T) {
	r := newTestRenderer(t)

	for _, page := range []string{PageLogin, PageDashboard, PageUpload, PageInvoices, PageInvoice, PageNotFound} {
		assert.True(t, r.Has(page), "missing page %s", page)
	}
}

func TestRenderUnknownPage(t *testing.T) {
	r := newTestRenderer(t)

	err := r.Render(&bytes.Buffer{}, "missing", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `template "missing" not found`)
}

func TestRenderLoginUsesAuthLayout(t *testing.T) {
	r := newTestRenderer(t)

	var buf bytes.Buffer
	err := r.Render(&buf, PageLogin, Page[LoginContent]{
		Content: LoginContent{
			Username:     "<bob>",
			Error:        "Invalid credentials. Use admin/admin",
			DemoUsername: "admin",
			DemoPassword: "admin",
		},
	})
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "<title>Login | Invoice Parser</title>")
	assert.Contains(t, html, "Invalid credentials. Use admin/admin")
	assert.Contains(t, html, "&lt;bob&gt;")
	assert.NotContains(t, html, `action="/logout"`)
}

func TestRenderDashboard(t *testing.T) {
	r := newTestRenderer(t)

	var buf bytes.Buffer
	err := r.Render(&buf, PageDashboard, Page[DashboardContent]{
		Header: HeaderData{LoggedIn: true, Username: "admin", Active: "dashboard"},
		Flash:  &models.Flash{Level: models.FlashSuccess, Message: "Login successful!"},
		Content: DashboardContent{Stats: models.DashboardStats{
			TotalInvoices:     1200,
			TotalVendors:      4,
			AverageConfidence: 0.876,
		}},
	})
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "1,200")
	assert.Contains(t, html, "87.6%")
	assert.Contains(t, html, "Login successful!")
	assert.Contains(t, html, `class="flash flash-success"`)
	assert.Contains(t, html, `action="/logout"`)
	assert.Contains(t, html, "admin")
}

func TestRenderUploadResult(t *testing.T) {
	r := newTestRenderer(t)

	t.Run("with details", func(t *testing.T) {
		var buf bytes.Buffer
		err := r.Render(&buf, PageUpload, Page[UploadContent]{
			Header: HeaderData{LoggedIn: true, Username: "admin"},
			Content: UploadContent{Result: &models.ExtractResponse{
				Confidence: 0.9234,
				Data:       models.ExtractionData{VendorName: "Acme", InvoiceID: "INV 1", InvoiceTotal: 10},
			}},
		})
		require.NoError(t, err)

		html := buf.String()
		assert.Contains(t, html, "Acme")
		assert.Contains(t, html, "92.3%")
		assert.Contains(t, html, `href="/invoice/INV%201"`)
	})

	t.Run("missing details", func(t *testing.T) {
		var buf bytes.Buffer
		err := r.Render(&buf, PageUpload, Page[UploadContent]{
			Content: UploadContent{Result: &models.ExtractResponse{}},
		})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Response missing invoice details")
	})
}

func TestRenderInvoicesPagination(t *testing.T) {
	r := newTestRenderer(t)

	invoices := []models.Invoice{{InvoiceID: "A-1", VendorName: "Acme", InvoiceDate: "2024-03-01", InvoiceTotal: 99.5}}
	var buf bytes.Buffer
	err := r.Render(&buf, PageInvoices, Page[InvoicesContent]{
		Header: HeaderData{LoggedIn: true, Username: "admin"},
		Content: InvoicesContent{
			Vendor:   "Acme",
			Searched: true,
			Sort:     models.SortByDate,
			Invoices: invoices,
			Total:    25,
			Page:     models.Paginate(25, 2, 10),
		},
	})
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "March 1, 2024")
	assert.Contains(t, html, "$99.50")
	assert.Contains(t, html, "Page 2 of 3")
	assert.Contains(t, html, "/invoices?sort=date&amp;vendor=Acme")
	assert.Contains(t, html, "page=3")
}

func TestRenderInvoiceDetail(t *testing.T) {
	r := newTestRenderer(t)

	desc := "Widget"
	qty := 2.0
	price := 5.0
	var buf bytes.Buffer
	err := r.Render(&buf, PageInvoice, Page[InvoiceContent]{
		Header: HeaderData{LoggedIn: true, Username: "admin"},
		Content: InvoiceContent{
			InvoiceID: "INV-9",
			Invoice:   models.Invoice{InvoiceID: "INV-9", VendorName: "Acme", InvoiceTotal: 10},
			Items:     []models.InvoiceItem{{Description: &desc, Quantity: &qty, UnitPrice: &price, Amount: 10}},
			Edited:    true,
		},
	})
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "Edited locally (demo mode)")
	assert.Contains(t, html, "Widget")
	assert.Contains(t, html, "$10.00")
	assert.Contains(t, html, `action="/invoice/INV-9/reset"`)
}

func TestStaticHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	StaticHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/app.css", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/css")
}
