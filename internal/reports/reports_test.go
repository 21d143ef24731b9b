package reports

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fertistore/internal/catalog"
	"fertistore/internal/ledger"
)

func sale(id string, productID int64, name string, qty int, price float64, date string) ledger.Sale {
	return ledger.Sale{
		ID:          id,
		ProductID:   productID,
		ProductName: name,
		Quantity:    qty,
		Price:       price,
		Date:        date,
		Total:       float64(qty) * price,
	}
}

var now = time.Date(2025, 1, 20, 15, 30, 0, 0, time.UTC)

func TestFilterByWindow(t *testing.T) {
	sales := []ledger.Sale{
		sale("a", 1, "NPK", 1, 850, "2025-01-20"), // today
		sale("b", 1, "NPK", 1, 850, "2025-01-13"), // exactly 7 days back
		sale("c", 1, "NPK", 1, 850, "2025-01-12"), // outside the week
		sale("d", 1, "NPK", 1, 850, "2024-12-21"), // exactly 30 days back
		sale("e", 1, "NPK", 1, 850, "2024-12-20"), // outside the month
	}

	week := FilterByWindow(sales, WindowWeek, now)
	assert.Len(t, week, 2)

	month := FilterByWindow(sales, WindowMonth, now)
	assert.Len(t, month, 4)

	all := FilterByWindow(sales, WindowAll, now)
	assert.Len(t, all, 5)
}

func TestTotals(t *testing.T) {
	sales := []ledger.Sale{
		sale("a", 1, "NPK", 5, 850, "2025-01-10"),
		sale("b", 2, "Urea", 2, 720, "2025-01-10"),
	}

	assert.Equal(t, 4250.0+1440.0, TotalRevenue(sales))
	assert.Equal(t, 7, TotalQuantity(sales))
	assert.Equal(t, (4250.0+1440.0)/2, AverageOrderValue(sales))
}

func TestAverageOrderValueEmptySnapshot(t *testing.T) {
	assert.Equal(t, 0.0, AverageOrderValue(nil))
	assert.Equal(t, 0.0, AverageOrderValue([]ledger.Sale{}))
}

func TestGroupByDateSumsSameDay(t *testing.T) {
	sales := []ledger.Sale{
		sale("a", 1, "NPK", 5, 850, "2025-01-10"),
		sale("b", 2, "Urea", 2, 720, "2025-01-10"),
		sale("c", 1, "NPK", 1, 850, "2025-01-12"),
	}

	days := GroupByDate(sales)
	assert.Len(t, days, 2)

	// Descending by date.
	assert.Equal(t, "2025-01-12", days[0].Date)
	assert.Equal(t, "2025-01-10", days[1].Date)

	assert.Equal(t, 4250.0+1440.0, days[1].Revenue)
	assert.Equal(t, 7, days[1].Quantity)
	assert.Equal(t, 2, days[1].Orders)
}

func TestGroupByDateIsIdempotent(t *testing.T) {
	sales := []ledger.Sale{
		sale("a", 1, "NPK", 5, 850, "2025-01-10"),
		sale("b", 2, "Urea", 2, 720, "2025-01-11"),
	}
	assert.Equal(t, GroupByDate(sales), GroupByDate(sales))
}

func TestTopProductsOrderAndTruncation(t *testing.T) {
	sales := []ledger.Sale{
		sale("a", 1, "A", 1, 1000, "2025-01-10"), // revenue 1000
		sale("b", 2, "B", 1, 500, "2025-01-10"),  // revenue 500
		sale("c", 3, "C", 2, 400, "2025-01-10"),  // revenue 800
	}

	top := TopProducts(sales, 5)
	assert.Len(t, top, 3)
	assert.Equal(t, "A", top[0].Name)
	assert.Equal(t, "C", top[1].Name)
	assert.Equal(t, "B", top[2].Name)

	top2 := TopProducts(sales, 2)
	assert.Len(t, top2, 2)
	assert.Equal(t, "A", top2[0].Name)
}

func TestTopProductsAggregatesPerProduct(t *testing.T) {
	sales := []ledger.Sale{
		sale("a", 1, "NPK", 5, 850, "2025-01-10"),
		sale("b", 1, "NPK", 3, 850, "2025-01-11"),
	}

	top := TopProducts(sales, 5)
	assert.Len(t, top, 1)
	assert.Equal(t, 8, top[0].Quantity)
	assert.Equal(t, 8*850.0, top[0].Revenue)
	assert.Equal(t, 2, top[0].Orders)
}

func TestSummarize(t *testing.T) {
	products := []catalog.Product{
		{ID: 1, Name: "NPK", Stock: 45},
		{ID: 2, Name: "Urea", Stock: 9},
		{ID: 3, Name: "DAP", Stock: 0},
	}
	sales := []ledger.Sale{
		sale("a", 1, "NPK", 5, 850, now.Format(ledger.DateLayout)),
		sale("b", 2, "Urea", 2, 720, "2025-01-02"),
	}

	o := Summarize(products, sales, 10, now)
	assert.Equal(t, 3, o.TotalProducts)
	assert.Equal(t, 2, o.LowStock)
	assert.Equal(t, 4250.0+1440.0, o.TotalRevenue)
	assert.Equal(t, 4250.0, o.TodayRevenue)
}

func TestExportSales(t *testing.T) {
	sales := []ledger.Sale{
		sale("a", 1, "NPK", 5, 850, "2025-01-10"),
		sale("b", 2, "Urea", 2, 720, "2025-01-11"),
	}

	var buf bytes.Buffer
	assert.NoError(t, ExportSales(&buf, sales))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 3, "header plus one row per sale")
	assert.Contains(t, lines[0], "product_name")
	assert.Contains(t, lines[1], "NPK")
	assert.Contains(t, lines[1], "4250")
}

func TestExportDaily(t *testing.T) {
	sales := []ledger.Sale{
		sale("a", 1, "NPK", 5, 850, "2025-01-10"),
		sale("b", 2, "Urea", 2, 720, "2025-01-10"),
		sale("c", 1, "NPK", 1, 850, "2025-01-12"),
	}

	var buf bytes.Buffer
	assert.NoError(t, ExportDaily(&buf, sales))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 3, "header plus one row per day")
	assert.Contains(t, lines[1], "2025-01-12")
	assert.Contains(t, lines[2], "2025-01-10")
}
