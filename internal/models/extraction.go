package models

type ExtractionItem struct {
	Description *string  `json:"Description"`
	Name        *string  `json:"Name"`
	Quantity    *float64 `json:"Quantity"`
	UnitPrice   *float64 `json:"UnitPrice"`
	Amount      float64  `json:"Amount"`
	InvoiceID   string   `json:"InvoiceId"`
}

type ExtractionData struct {
	VendorName      string           `json:"VendorName"`
	VendorNameLogo  string           `json:"VendorNameLogo"`
	InvoiceID       string           `json:"InvoiceId"`
	InvoiceDate     string           `json:"InvoiceDate"`
	ShippingAddress string           `json:"ShippingAddress"`
	CustomerName    *string          `json:"CustomerName"`
	AmountDue       *float64         `json:"AmountDue"`
	ShippingCost    *float64         `json:"ShippingCost"`
	InvoiceTotal    float64          `json:"InvoiceTotal"`
	Items           []ExtractionItem `json:"Items"`
}

type ExtractionConfidence struct {
	VendorName      float64 `json:"VendorName"`
	InvoiceID       float64 `json:"InvoiceId"`
	InvoiceDate     float64 `json:"InvoiceDate"`
	ShippingAddress float64 `json:"ShippingAddress"`
	CustomerName    float64 `json:"CustomerName"`
	AmountDue       float64 `json:"AmountDue"`
	ShippingCost    float64 `json:"ShippingCost"`
	InvoiceTotal    float64 `json:"InvoiceTotal"`
	Items           float64 `json:"Items"`
}

type ExtractResponse struct {
	Confidence     float64              `json:"confidence"`
	Data           ExtractionData       `json:"data"`
	DataConfidence ExtractionConfidence `json:"dataConfidence"`
	PredictionTime float64              `json:"predictionTime"`
}

// HasInvoiceDetails reports whether the extraction identified the invoice
// well enough to link to it.
func (r *ExtractResponse) HasInvoiceDetails() bool {
	return r != nil && r.Data.InvoiceID != "" && r.Data.VendorName != ""
}

type DashboardStats struct {
	TotalInvoices     int     `json:"totalInvoices"`
	TotalVendors      int     `json:"totalVendors"`
	RecentUploads     int     `json:"recentUploads"`
	AverageConfidence float64 `json:"averageConfidence"`
}
