package models

import (
	"fmt"
	"sort"
	"time"
)

type SortKey string

const (
	SortByDate   SortKey = "date"
	SortByAmount SortKey = "amount"
)

// ParseSortKey maps a query value onto a SortKey, defaulting to date.
func ParseSortKey(value string) SortKey {
	if SortKey(value) == SortByAmount {
		return SortByAmount
	}
	return SortByDate
}

var invoiceDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseInvoiceDate accepts the date shapes the extraction backend emits.
func ParseInvoiceDate(value string) (time.Time, error) {
	for _, layout := range invoiceDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// SortInvoices returns a sorted copy: newest date first or highest total
// first. Invoices with unparseable dates sort after dated ones.
func SortInvoices(invoices []Invoice, by SortKey) []Invoice {
	sorted := make([]Invoice, len(invoices))
	copy(sorted, invoices)

	switch by {
	case SortByAmount:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].InvoiceTotal > sorted[j].InvoiceTotal
		})
	default:
		dates := make(map[int]time.Time, len(sorted))
		valid := make(map[int]bool, len(sorted))
		for i, inv := range sorted {
			if t, err := ParseInvoiceDate(inv.InvoiceDate); err == nil {
				dates[i] = t
				valid[i] = true
			}
		}
		idx := make([]int, len(sorted))
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool {
			ia, ib := idx[a], idx[b]
			if valid[ia] != valid[ib] {
				return valid[ia]
			}
			return dates[ia].After(dates[ib])
		})
		reordered := make([]Invoice, len(sorted))
		for pos, i := range idx {
			reordered[pos] = sorted[i]
		}
		sorted = reordered
	}

	return sorted
}

type PageInfo struct {
	Page       int
	PerPage    int
	TotalItems int
	TotalPages int
	Start      int
	End        int
}

func (p PageInfo) HasPrev() bool { return p.Page > 1 }
func (p PageInfo) HasNext() bool { return p.Page < p.TotalPages }
func (p PageInfo) PrevPage() int { return p.Page - 1 }
func (p PageInfo) NextPage() int { return p.Page + 1 }

// Paginate clamps page into range and returns the slice bounds for it.
func Paginate(totalItems, page, perPage int) PageInfo {
	if perPage <= 0 {
		perPage = 10
	}
	if totalItems < 0 {
		totalItems = 0
	}

	totalPages := (totalItems + perPage - 1) / perPage
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	if start > totalItems {
		start = totalItems
	}
	end := start + perPage
	if end > totalItems {
		end = totalItems
	}

	return PageInfo{
		Page:       page,
		PerPage:    perPage,
		TotalItems: totalItems,
		TotalPages: totalPages,
		Start:      start,
		End:        end,
	}
}
