package reports

import (
	"io"

	"github.com/gocarina/gocsv"

	"fertistore/internal/ledger"
)

// saleRow is the CSV shape of a ledger entry.
type saleRow struct {
	ID          string  `csv:"id"`
	Date        string  `csv:"date"`
	ProductID   int64   `csv:"product_id"`
	ProductName string  `csv:"product_name"`
	Quantity    int     `csv:"quantity"`
	Price       float64 `csv:"unit_price"`
	Total       float64 `csv:"total"`
}

// dailyRow is the CSV shape of a per-day report line.
type dailyRow struct {
	Date     string  `csv:"date"`
	Orders   int     `csv:"orders"`
	Quantity int     `csv:"quantity"`
	Revenue  float64 `csv:"revenue"`
}

// ExportSales writes the snapshot to w as CSV, one row per sale in
// snapshot order.
func ExportSales(w io.Writer, sales []ledger.Sale) error {
	rows := make([]saleRow, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, saleRow{
			ID:          s.ID,
			Date:        s.Date,
			ProductID:   s.ProductID,
			ProductName: s.ProductName,
			Quantity:    s.Quantity,
			Price:       s.Price,
			Total:       s.Total,
		})
	}
	return gocsv.Marshal(&rows, w)
}

// ExportDaily writes the per-day report to w as CSV, most recent day
// first.
func ExportDaily(w io.Writer, sales []ledger.Sale) error {
	days := GroupByDate(sales)
	rows := make([]dailyRow, 0, len(days))
	for _, d := range days {
		rows = append(rows, dailyRow{
			Date:     d.Date,
			Orders:   d.Orders,
			Quantity: d.Quantity,
			Revenue:  d.Revenue,
		})
	}
	return gocsv.Marshal(&rows, w)
}
