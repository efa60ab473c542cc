package models

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

type InvoiceItem struct {
	ID          int      `json:"id"`
	InvoiceID   string   `json:"InvoiceId"`
	Name        *string  `json:"Name"`
	Description *string  `json:"Description"`
	Quantity    *float64 `json:"Quantity"`
	UnitPrice   *float64 `json:"UnitPrice"`
	Amount      float64  `json:"Amount"`
}

type Invoice struct {
	InvoiceID               string   `json:"InvoiceId"`
	VendorName              string   `json:"VendorName"`
	InvoiceDate             string   `json:"InvoiceDate"`
	ShippingAddress         string   `json:"ShippingAddress"`
	BillingAddressRecipient *string  `json:"BillingAddressRecipient"`
	SubTotal                *float64 `json:"SubTotal"`
	ShippingCost            *float64 `json:"ShippingCost"`
	InvoiceTotal            float64  `json:"InvoiceTotal"`
}

type GetInvoiceResponse struct {
	Invoice Invoice       `json:"invoice"`
	Items   []InvoiceItem `json:"items"`
}

type VendorInvoice struct {
	Invoice Invoice       `json:"invoice"`
	Items   []InvoiceItem `json:"items"`
}

type VendorInvoicesResponse struct {
	VendorName    string          `json:"VendorName"`
	TotalInvoices int             `json:"TotalInvoices"`
	Invoices      []VendorInvoice `json:"invoices"`
}

// InvoiceList flattens the vendor response into its invoice headers.
func (r VendorInvoicesResponse) InvoiceList() []Invoice {
	list := make([]Invoice, 0, len(r.Invoices))
	for _, entry := range r.Invoices {
		list = append(list, entry.Invoice)
	}
	return list
}

type InvoiceField string

const (
	FieldVendorName              InvoiceField = "VendorName"
	FieldInvoiceDate             InvoiceField = "InvoiceDate"
	FieldShippingAddress         InvoiceField = "ShippingAddress"
	FieldBillingAddressRecipient InvoiceField = "BillingAddressRecipient"
	FieldSubTotal                InvoiceField = "SubTotal"
	FieldShippingCost            InvoiceField = "ShippingCost"
	FieldInvoiceTotal            InvoiceField = "InvoiceTotal"
)

// EditableInvoiceFields lists the fields SetField accepts, in form order.
var EditableInvoiceFields = []InvoiceField{
	FieldInvoiceDate,
	FieldVendorName,
	FieldShippingAddress,
	FieldBillingAddressRecipient,
	FieldSubTotal,
	FieldShippingCost,
	FieldInvoiceTotal,
}

var (
	ErrUnknownField      = errors.New("unknown invoice field")
	ErrInvalidFieldValue = errors.New("invalid invoice field value")
)

// SetField applies a single form value to the invoice. Nullable fields are
// cleared by an empty value; InvoiceTotal and VendorName are required.
func (inv *Invoice) SetField(field InvoiceField, value string) error {
	value = strings.TrimSpace(value)

	switch field {
	case FieldVendorName:
		if value == "" {
			return fmt.Errorf("%w: %s cannot be empty", ErrInvalidFieldValue, field)
		}
		inv.VendorName = value
	case FieldInvoiceDate:
		if value != "" {
			if _, err := ParseInvoiceDate(value); err != nil {
				return fmt.Errorf("%w: %s: %v", ErrInvalidFieldValue, field, err)
			}
		}
		inv.InvoiceDate = value
	case FieldShippingAddress:
		inv.ShippingAddress = value
	case FieldBillingAddressRecipient:
		if value == "" {
			inv.BillingAddressRecipient = nil
		} else {
			inv.BillingAddressRecipient = &value
		}
	case FieldSubTotal:
		amount, err := parseOptionalAmount(field, value)
		if err != nil {
			return err
		}
		inv.SubTotal = amount
	case FieldShippingCost:
		amount, err := parseOptionalAmount(field, value)
		if err != nil {
			return err
		}
		inv.ShippingCost = amount
	case FieldInvoiceTotal:
		amount, err := parseOptionalAmount(field, value)
		if err != nil {
			return err
		}
		if amount == nil {
			return fmt.Errorf("%w: %s cannot be empty", ErrInvalidFieldValue, field)
		}
		inv.InvoiceTotal = *amount
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	return nil
}

// ApplyFields sets every editable field present in values, in form order.
// It stops at the first invalid value and leaves the receiver untouched in
// that case.
func (inv *Invoice) ApplyFields(values map[InvoiceField]string) error {
	var unknown []InvoiceField
	for field := range values {
		if !slices.Contains(EditableInvoiceFields, field) {
			unknown = append(unknown, field)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return fmt.Errorf("%w: %q", ErrUnknownField, unknown[0])
	}

	edited := *inv
	for _, field := range EditableInvoiceFields {
		value, ok := values[field]
		if !ok {
			continue
		}
		if err := edited.SetField(field, value); err != nil {
			return err
		}
	}
	*inv = edited
	return nil
}

func parseOptionalAmount(field InvoiceField, value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}

	amount, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", ""), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a number", ErrInvalidFieldValue, field)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, fmt.Errorf("%w: %s must be a finite number", ErrInvalidFieldValue, field)
	}
	if amount < 0 {
		return nil, fmt.Errorf("%w: %s cannot be negative", ErrInvalidFieldValue, field)
	}

	return &amount, nil
}
