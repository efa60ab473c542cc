package web

import (
	"invoice-dashboard/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{12.5, "$12.50"},
		{1234.5, "$1,234.50"},
		{-3, "-$3.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(tt.in))
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "N/A", FormatDate(""))
	assert.Equal(t, "March 5, 2024", FormatDate("2024-03-05"))
	assert.Equal(t, "March 5, 2024", FormatDate("2024-03-05T10:00:00Z"))
	assert.Equal(t, "sometime", FormatDate("sometime"))
}

func TestFormatConfidence(t *testing.T) {
	assert.Equal(t, "N/A", FormatConfidence(0))
	assert.Equal(t, "95.0%", FormatConfidence(0.95))
	assert.Equal(t, "0.0%", FormatPercentage(0))
}

func TestInvoicesURL(t *testing.T) {
	assert.Equal(t, "/invoices?sort=amount&vendor=Acme+Corp", InvoicesURL("Acme Corp", models.SortByAmount, 1))
	assert.Equal(t, "/invoices?page=2&sort=date&vendor=Acme", InvoicesURL("Acme", models.SortByDate, 2))
}

func TestInvoiceURL(t *testing.T) {
	assert.Equal(t, "/invoice/a%2Fb", InvoiceURL("a/b"))
}
