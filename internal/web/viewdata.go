package web

import "invoice-dashboard/internal/models"

// HeaderData is rendered by the navbar on every app page.
type HeaderData struct {
	LoggedIn bool
	Username string
	Active   string
}

// Page wraps shared Header and Flash with page-specific Content.
type Page[T any] struct {
	Header  HeaderData
	Flash   *models.Flash
	Content T
}

type LoginContent struct {
	Username     string
	Error        string
	DemoUsername string
	DemoPassword string
}

type DashboardContent struct {
	Stats models.DashboardStats
}

type UploadContent struct {
	Filename string
	Result   *models.ExtractResponse
	Error    string
	MaxSize  string
}

type InvoicesContent struct {
	Vendor   string
	Searched bool
	Sort     models.SortKey
	Invoices []models.Invoice
	Total    int
	Page     models.PageInfo
	Error    string
	Notice   string
}

type InvoiceContent struct {
	InvoiceID string
	Invoice   models.Invoice
	Items     []models.InvoiceItem
	Edited    bool
	Editing   bool
	Error     string
	Fields    []models.InvoiceField
}

type NotFoundContent struct {
	Path string
}
