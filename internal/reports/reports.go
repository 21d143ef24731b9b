// Package reports computes read-side summaries over a sales snapshot.
// Everything here is pure: no store access, no mutation, and the same
// snapshot always yields the same result.
package reports

import (
	"sort"
	"time"

	"github.com/montanaflynn/stats"

	"fertistore/internal/catalog"
	"fertistore/internal/ledger"
)

// Window is a reporting time range over the ledger.
type Window string

const (
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
	WindowAll   Window = "all"
)

func windowDays(w Window) (int, bool) {
	switch w {
	case WindowWeek:
		return 7, true
	case WindowMonth:
		return 30, true
	default:
		return 0, false
	}
}

// FilterByWindow returns the sales whose calendar day is within the
// window ending at now. WindowAll returns the snapshot unfiltered.
func FilterByWindow(sales []ledger.Sale, w Window, now time.Time) []ledger.Sale {
	days, ok := windowDays(w)
	if !ok {
		return sales
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	cutoff := today.AddDate(0, 0, -days)

	filtered := []ledger.Sale{}
	for _, s := range sales {
		if !s.Day().Before(cutoff) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// TotalRevenue sums the sale totals.
func TotalRevenue(sales []ledger.Sale) float64 {
	var sum float64
	for _, s := range sales {
		sum += s.Total
	}
	return sum
}

// TotalQuantity sums the bags sold.
func TotalQuantity(sales []ledger.Sale) int {
	var sum int
	for _, s := range sales {
		sum += s.Quantity
	}
	return sum
}

// AverageOrderValue is the mean sale total, 0 for an empty snapshot.
func AverageOrderValue(sales []ledger.Sale) float64 {
	if len(sales) == 0 {
		return 0
	}
	totals := make(stats.Float64Data, 0, len(sales))
	for _, s := range sales {
		totals = append(totals, s.Total)
	}
	mean, err := stats.Mean(totals)
	if err != nil {
		return 0
	}
	return mean
}

// DailySummary aggregates one calendar day of sales.
type DailySummary struct {
	Date     string
	Revenue  float64
	Quantity int
	Orders   int
}

// GroupByDate folds the snapshot into per-day summaries, most recent
// day first.
func GroupByDate(sales []ledger.Sale) []DailySummary {
	byDate := map[string]*DailySummary{}
	for _, s := range sales {
		day, ok := byDate[s.Date]
		if !ok {
			day = &DailySummary{Date: s.Date}
			byDate[s.Date] = day
		}
		day.Revenue += s.Total
		day.Quantity += s.Quantity
		day.Orders++
	}

	out := make([]DailySummary, 0, len(byDate))
	for _, day := range byDate {
		out = append(out, *day)
	}
	// ISO dates sort lexicographically.
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// ProductSummary aggregates the sales of one product.
type ProductSummary struct {
	ProductID int64
	Name      string
	Quantity  int
	Revenue   float64
	Orders    int
}

// TopProducts folds the snapshot per product and returns at most n
// entries, highest revenue first. Ties break on name so the result is
// stable across runs.
func TopProducts(sales []ledger.Sale, n int) []ProductSummary {
	byProduct := map[int64]*ProductSummary{}
	for _, s := range sales {
		p, ok := byProduct[s.ProductID]
		if !ok {
			p = &ProductSummary{ProductID: s.ProductID, Name: s.ProductName}
			byProduct[s.ProductID] = p
		}
		p.Quantity += s.Quantity
		p.Revenue += s.Total
		p.Orders++
	}

	out := make([]ProductSummary, 0, len(byProduct))
	for _, p := range byProduct {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Revenue != out[j].Revenue {
			return out[i].Revenue > out[j].Revenue
		}
		return out[i].Name < out[j].Name
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Overview is the dashboard headline block.
type Overview struct {
	TotalProducts int
	LowStock      int
	TotalRevenue  float64
	TodayRevenue  float64
}

// Summarize computes the dashboard numbers for the given catalog and
// ledger snapshots. lowStockAt is the stock level at or below which a
// product counts as low.
func Summarize(products []catalog.Product, sales []ledger.Sale, lowStockAt int, now time.Time) Overview {
	o := Overview{TotalProducts: len(products)}
	for _, p := range products {
		if p.Stock <= lowStockAt {
			o.LowStock++
		}
	}

	today := now.Format(ledger.DateLayout)
	for _, s := range sales {
		o.TotalRevenue += s.Total
		if s.Date == today {
			o.TodayRevenue += s.Total
		}
	}
	return o
}
