package middlewares

import (
	"context"
	"invoice-dashboard/internal/models"
	"io"
)

//go:generate mockgen -source=backend_provider.go -destination=../mocks/backend.go -package=mocks

type BackendClient interface {
	UploadInvoice(ctx context.Context, filename string, file io.Reader) (*models.ExtractResponse, error)
	GetInvoice(ctx context.Context, invoiceID string) (*models.GetInvoiceResponse, error)
	GetInvoicesByVendor(ctx context.Context, vendorName string) (*models.VendorInvoicesResponse, error)
	GetDashboardStats(ctx context.Context) models.DashboardStats
}

// StatsProvider serves dashboard statistics, preferring cached values.
type StatsProvider interface {
	DashboardStats(ctx context.Context) models.DashboardStats
}

type Renderer interface {
	Render(w io.Writer, page string, data any) error
}
