package web

import (
	"fmt"
	"html/template"
	"invoice-dashboard/internal/models"
	"math"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// TemplateFuncs returns the view helpers layered on top of sprig.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatCurrency": FormatCurrency,
		"formatNumber":   FormatNumber,
		"formatDate":     FormatDate,
		"confidence":     FormatConfidence,
		"percentage":     FormatPercentage,
		"str":            derefString,
		"amount":         derefAmount,
		"amountInput":    amountInput,
		"invoicesURL":    InvoicesURL,
		"invoiceURL":     InvoiceURL,
		"year":           func() int { return time.Now().Year() },
	}
}

// FormatCurrency renders a USD amount with grouping, e.g. $1,234.50.
func FormatCurrency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	if v < 0 {
		return "-$" + printer.Sprintf("%.2f", -v)
	}
	return "$" + printer.Sprintf("%.2f", v)
}

func FormatNumber(v int) string {
	return printer.Sprintf("%d", v)
}

// FormatDate renders invoice dates as "January 2, 2006". Values that do not
// parse are shown as received.
func FormatDate(value string) string {
	if value == "" {
		return "N/A"
	}

	t, err := models.ParseInvoiceDate(value)
	if err != nil {
		return value
	}
	return t.Format("January 2, 2006")
}

// FormatConfidence renders a 0..1 score as a percentage with one decimal.
// A zero score means the backend did not report one.
func FormatConfidence(v float64) string {
	if v == 0 {
		return "N/A"
	}
	return FormatPercentage(v)
}

func FormatPercentage(v float64) string {
	return strconv.FormatFloat(v*100, 'f', 1, 64) + "%"
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefAmount(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func amountInput(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

// InvoicesURL builds a vendor search link for the given page.
func InvoicesURL(vendor string, sort models.SortKey, page int) string {
	q := url.Values{}
	q.Set("vendor", vendor)
	q.Set("sort", string(sort))
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	return "/invoices?" + q.Encode()
}

func InvoiceURL(id string) string {
	return fmt.Sprintf("/invoice/%s", url.PathEscape(id))
}
