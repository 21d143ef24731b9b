package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cast"
	"go.uber.org/zap"

	"fertistore/internal/catalog"
	"fertistore/internal/currency"
	"fertistore/internal/ledger"
	"fertistore/internal/reports"
)

func (s *Shell) dispatchAdmin(command string, parts []string) {
	switch command {
	case "dashboard":
		s.handleDashboard()
	case "product":
		s.handleProduct(parts)
	case "sale":
		s.handleSale(parts)
	case "sales":
		s.handleSales()
	case "report":
		s.handleReport(parts)
	case "export":
		s.handleExport(parts)
	}
}

func (s *Shell) handleDashboard() {
	o := reports.Summarize(s.catalog.List(), s.ledger.List(), s.catalog.LowStockThreshold(), time.Now())
	fmt.Fprintf(s.out, "Products:       %d\n", o.TotalProducts)
	fmt.Fprintf(s.out, "Low on stock:   %d\n", o.LowStock)
	fmt.Fprintf(s.out, "Total revenue:  %s\n", currency.Format(o.TotalRevenue))
	fmt.Fprintf(s.out, "Today:          %s\n", currency.Format(o.TodayRevenue))
}

func (s *Shell) handleProduct(parts []string) {
	if len(parts) < 2 {
		fmt.Fprintln(s.out, "Usage: product add | product edit <id> | product delete <id>")
		return
	}

	switch parts[1] {
	case "add":
		in, err := s.productForm(nil)
		if err != nil {
			fmt.Fprintln(s.out, err)
			return
		}
		product, err := s.catalog.Create(*in)
		if err != nil {
			fmt.Fprintln(s.out, err)
			return
		}
		fmt.Fprintf(s.out, "Created product %d (%s)\n", product.ID, product.Name)

	case "edit":
		if len(parts) != 3 {
			fmt.Fprintln(s.out, "Usage: product edit <id>")
			return
		}
		id, err := cast.ToInt64E(parts[2])
		if err != nil {
			fmt.Fprintln(s.out, "Invalid product id")
			return
		}
		current, err := s.catalog.Get(id)
		if err != nil {
			fmt.Fprintln(s.out, "Product not found")
			return
		}
		in, err := s.productForm(current)
		if err != nil {
			fmt.Fprintln(s.out, err)
			return
		}
		if _, err := s.catalog.Update(id, *in); err != nil {
			fmt.Fprintln(s.out, err)
			return
		}
		fmt.Fprintln(s.out, "Product updated")

	case "delete":
		if len(parts) != 3 {
			fmt.Fprintln(s.out, "Usage: product delete <id>")
			return
		}
		id, err := cast.ToInt64E(parts[2])
		if err != nil {
			fmt.Fprintln(s.out, "Invalid product id")
			return
		}
		if err := s.catalog.Delete(id); err != nil {
			fmt.Fprintln(s.out, "Product not found")
			return
		}
		fmt.Fprintln(s.out, "Product deleted (its sales history is kept)")

	default:
		fmt.Fprintf(s.out, "Unknown product command: %s\n", parts[1])
	}
}

// productForm walks the admin through the product fields. When current
// is non-nil its values are the defaults, so pressing enter keeps them.
func (s *Shell) productForm(current *catalog.Product) (*catalog.Input, error) {
	in := catalog.Input{}
	if current != nil {
		in = catalog.Input{
			Name:        current.Name,
			Description: current.Description,
			Price:       current.Price,
			Stock:       current.Stock,
			Image:       current.Image,
			Category:    current.Category,
			Benefits:    current.Benefits,
		}
	}

	if v := s.prompt("Name", in.Name); v != "" {
		in.Name = v
	}
	if v := s.prompt("Description", in.Description); v != "" {
		in.Description = v
	}
	if v := s.prompt("Price", fmt.Sprintf("%g", in.Price)); v != "" {
		price, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, errors.New("Price must be a number")
		}
		in.Price = price
	}
	if v := s.prompt("Stock", fmt.Sprintf("%d", in.Stock)); v != "" {
		stock, err := cast.ToIntE(v)
		if err != nil {
			return nil, errors.New("Stock must be a whole number")
		}
		in.Stock = stock
	}
	if v := s.prompt(fmt.Sprintf("Category %v", catalog.Categories), string(in.Category)); v != "" {
		in.Category = catalog.Category(v)
	}
	if v := s.prompt("Image URL", in.Image); v != "" {
		in.Image = v
	}
	if v := s.prompt("Benefits (semicolon separated)", strings.Join(in.Benefits, "; ")); v != "" {
		in.Benefits = nil
		for _, b := range strings.Split(v, ";") {
			in.Benefits = append(in.Benefits, strings.TrimSpace(b))
		}
	}
	return &in, nil
}

func (s *Shell) prompt(label, def string) string {
	if def != "" {
		fmt.Fprintf(s.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(s.out, "%s: ", label)
	}
	if !s.scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(s.scanner.Text())
}

func (s *Shell) handleSale(parts []string) {
	if len(parts) < 2 {
		fmt.Fprintln(s.out, "Usage: sale record <product_id> <qty> [date] | sale delete <sale_id>")
		return
	}

	switch parts[1] {
	case "record":
		if len(parts) != 4 && len(parts) != 5 {
			fmt.Fprintln(s.out, "Usage: sale record <product_id> <qty> [YYYY-MM-DD]")
			return
		}
		productID, err := cast.ToInt64E(parts[2])
		if err != nil {
			fmt.Fprintln(s.out, "Invalid product id")
			return
		}
		qty, err := cast.ToIntE(parts[3])
		if err != nil {
			fmt.Fprintln(s.out, "Quantity must be a whole number")
			return
		}
		date := time.Now().Format(ledger.DateLayout)
		if len(parts) == 5 {
			date = parts[4]
		}

		sale, err := s.ledger.RecordSale(productID, qty, date)
		if err != nil {
			s.printSaleError(err)
			return
		}
		fmt.Fprintf(s.out, "Recorded sale %s: %d x %s = %s\n",
			sale.ID, sale.Quantity, sale.ProductName, currency.Format(sale.Total))

	case "delete":
		if len(parts) != 3 {
			fmt.Fprintln(s.out, "Usage: sale delete <sale_id>")
			return
		}
		if err := s.ledger.DeleteSale(parts[2]); err != nil {
			fmt.Fprintln(s.out, "Sale not found")
			return
		}
		fmt.Fprintln(s.out, "Sale deleted, stock restored")

	default:
		fmt.Fprintf(s.out, "Unknown sale command: %s\n", parts[1])
	}
}

func (s *Shell) printSaleError(err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		fmt.Fprintln(s.out, "Product not found")
	case errors.Is(err, ledger.ErrInsufficientStock):
		fmt.Fprintln(s.out, "Not enough stock available!")
	case errors.Is(err, ledger.ErrInvalidQuantity):
		fmt.Fprintln(s.out, "Quantity must be a positive number")
	case errors.Is(err, ledger.ErrInvalidDate):
		fmt.Fprintln(s.out, "Date must look like 2025-01-10")
	default:
		fmt.Fprintln(s.out, err)
		s.logger.Error("record sale failed", zap.Error(err))
	}
}

func (s *Shell) handleSales() {
	sales := s.ledger.List()
	if len(sales) == 0 {
		fmt.Fprintln(s.out, "No sales recorded yet")
		return
	}

	for _, day := range reports.GroupByDate(sales) {
		fmt.Fprintf(s.out, "%s (%d sales)\n", day.Date, day.Orders)
		for _, sale := range sales {
			if sale.Date != day.Date {
				continue
			}
			fmt.Fprintf(s.out, "  %s  %s: %d bags x %s = %s\n",
				sale.ID, sale.ProductName, sale.Quantity,
				currency.Format(sale.Price), currency.Format(sale.Total))
		}
		fmt.Fprintf(s.out, "  Daily total: %s\n", currency.Format(day.Revenue))
	}
}

func (s *Shell) handleReport(parts []string) {
	window := reports.WindowWeek
	if len(parts) == 2 {
		switch parts[1] {
		case "week":
			window = reports.WindowWeek
		case "month":
			window = reports.WindowMonth
		case "all":
			window = reports.WindowAll
		default:
			fmt.Fprintln(s.out, "Usage: report [week|month|all]")
			return
		}
	}

	sales := reports.FilterByWindow(s.ledger.List(), window, time.Now())
	fmt.Fprintf(s.out, "Revenue:   %s\n", currency.Format(reports.TotalRevenue(sales)))
	fmt.Fprintf(s.out, "Bags sold: %d\n", reports.TotalQuantity(sales))
	fmt.Fprintf(s.out, "Avg order: %s\n", currency.Format(reports.AverageOrderValue(sales)))

	if days := reports.GroupByDate(sales); len(days) > 0 {
		fmt.Fprintln(s.out, "\nBy day:")
		for _, d := range days {
			fmt.Fprintf(s.out, "  %s  %2d orders  %3d bags  %s\n",
				d.Date, d.Orders, d.Quantity, currency.Format(d.Revenue))
		}
	}
	if top := reports.TopProducts(sales, 5); len(top) > 0 {
		fmt.Fprintln(s.out, "\nTop products:")
		for i, p := range top {
			fmt.Fprintf(s.out, "  %d. %-22s %3d bags  %s\n",
				i+1, p.Name, p.Quantity, currency.Format(p.Revenue))
		}
	}
}

func (s *Shell) handleExport(parts []string) {
	if len(parts) != 3 {
		fmt.Fprintln(s.out, "Usage: export sales <file> | export report <file>")
		return
	}

	f, err := os.Create(parts[2])
	if err != nil {
		fmt.Fprintf(s.out, "Cannot write %s: %v\n", parts[2], err)
		return
	}
	defer f.Close()

	switch parts[1] {
	case "sales":
		err = reports.ExportSales(f, s.ledger.List())
	case "report":
		err = reports.ExportDaily(f, s.ledger.List())
	default:
		fmt.Fprintf(s.out, "Unknown export: %s\n", parts[1])
		return
	}
	if err != nil {
		fmt.Fprintf(s.out, "Export failed: %v\n", err)
		s.logger.Error("csv export failed", zap.String("file", parts[2]), zap.Error(err))
		return
	}
	fmt.Fprintf(s.out, "Wrote %s\n", parts[2])
}
