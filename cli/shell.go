// Package cli is the interactive surface of the shop: the public
// storefront commands plus the admin panel behind the session gate.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/asaskevich/EventBus"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"fertistore/internal/catalog"
	"fertistore/internal/currency"
	"fertistore/internal/ledger"
	"fertistore/internal/session"
	"fertistore/internal/whatsapp"
)

// Shell reads line commands and dispatches them to the catalog, ledger,
// and report layers. It is the only writer to the terminal.
type Shell struct {
	catalog *catalog.Repository
	ledger  *ledger.Service
	gate    *session.Gate
	logger  *zap.Logger

	phone   string
	scanner *bufio.Scanner
	out     io.Writer

	// product IDs already alerted as low on stock, so each product is
	// announced once per session
	alerted map[int64]bool
}

// NewShell wires a Shell over the given services, reading from stdin
// and writing to stdout. The bus delivers repository-changed
// notifications; the shell uses them to announce products that drop to
// the low-stock threshold.
func NewShell(cat *catalog.Repository, led *ledger.Service, gate *session.Gate, bus EventBus.Bus, phone string, logger *zap.Logger) *Shell {
	return NewShellWithIO(cat, led, gate, bus, phone, logger, os.Stdin, os.Stdout)
}

// NewShellWithIO is NewShell with explicit input and output, so tests
// can script the forms and capture what the shell prints.
func NewShellWithIO(cat *catalog.Repository, led *ledger.Service, gate *session.Gate, bus EventBus.Bus, phone string, logger *zap.Logger, in io.Reader, out io.Writer) *Shell {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}

	s := &Shell{
		catalog: cat,
		ledger:  led,
		gate:    gate,
		logger:  logger,
		phone:   phone,
		scanner: bufio.NewScanner(in),
		out:     out,
		alerted: map[int64]bool{},
	}
	if bus != nil {
		// Subscribe, not SubscribeAsync: alerts must print inside the
		// command that caused them.
		_ = bus.Subscribe(catalog.TopicChanged, s.announceLowStock)
	}
	return s
}

// Run processes commands until EOF or the exit command.
func (s *Shell) Run() {
	fmt.Fprintln(s.out, "GreenGrow Fertilizers. Type 'help' for commands")
	for {
		fmt.Fprint(s.out, "> ")
		if !s.scanner.Scan() {
			return
		}
		line := strings.TrimSpace(s.scanner.Text())
		if line == "" {
			continue
		}
		if !s.Dispatch(line) {
			return
		}
	}
}

// Dispatch runs one command line and reports whether the shell should
// keep going.
func (s *Shell) Dispatch(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}
	command := parts[0]

	switch command {
	case "help":
		s.printHelp()
	case "products":
		s.handleProducts()
	case "search":
		s.handleSearch(parts)
	case "show":
		s.handleShow(parts)
	case "order":
		s.handleOrder(parts)
	case "login":
		s.handleLogin(parts)
	case "logout":
		s.gate.Logout()
		fmt.Fprintln(s.out, "Logged out")
	case "dashboard", "product", "sale", "sales", "report", "export":
		if !s.gate.IsAuthenticated() {
			fmt.Fprintln(s.out, "Admin only. Use: login <password>")
			return true
		}
		s.dispatchAdmin(command, parts)
	case "exit", "quit":
		return false
	default:
		fmt.Fprintf(s.out, "Unknown command: %s\n", command)
	}
	return true
}

func (s *Shell) printHelp() {
	fmt.Fprint(s.out, `Storefront:
  products                      list the catalog
  search <term>                 match name or category
  show <product_id>             product details
  order <product_id> <qty>      build a WhatsApp order link
  login <password> / logout

Admin:
  dashboard                     shop overview
  product add                   create a product (interactive form)
  product edit <id>             update a product (interactive form)
  product delete <id>
  sale record <product_id> <qty> [date]
  sale delete <sale_id>
  sales                         ledger grouped by day
  report [week|month|all]       sales report for a window
  export sales|report <file>    write CSV
  exit
`)
}

func (s *Shell) handleProducts() {
	s.printProductList(s.catalog.List())
}

func (s *Shell) handleSearch(parts []string) {
	if len(parts) < 2 {
		fmt.Fprintln(s.out, "Usage: search <term>")
		return
	}
	s.printProductList(s.catalog.Search(strings.Join(parts[1:], " ")))
}

func (s *Shell) handleShow(parts []string) {
	if len(parts) != 2 {
		fmt.Fprintln(s.out, "Usage: show <product_id>")
		return
	}
	id, err := cast.ToInt64E(parts[1])
	if err != nil {
		fmt.Fprintln(s.out, "Invalid product id")
		return
	}
	product, err := s.catalog.Get(id)
	if err != nil {
		fmt.Fprintln(s.out, "Product not found")
		return
	}

	fmt.Fprintf(s.out, "%s [%s]\n", product.Name, product.Category)
	fmt.Fprintf(s.out, "  %s\n", product.Description)
	fmt.Fprintf(s.out, "  Price: %s per bag\n", currency.Format(product.Price))
	fmt.Fprintf(s.out, "  %s\n", stockStatus(product.Stock, s.catalog.LowStockThreshold()))
	for _, b := range product.Benefits {
		fmt.Fprintf(s.out, "  - %s\n", b)
	}
}

func (s *Shell) handleOrder(parts []string) {
	if len(parts) != 3 {
		fmt.Fprintln(s.out, "Usage: order <product_id> <qty>")
		return
	}
	id, err := cast.ToInt64E(parts[1])
	if err != nil {
		fmt.Fprintln(s.out, "Invalid product id")
		return
	}
	qty, err := cast.ToIntE(parts[2])
	if err != nil || qty <= 0 {
		fmt.Fprintln(s.out, "Quantity must be a positive number")
		return
	}
	product, err := s.catalog.Get(id)
	if err != nil {
		fmt.Fprintln(s.out, "Product not found")
		return
	}
	if qty > product.Stock {
		fmt.Fprintf(s.out, "Only %d bags in stock\n", product.Stock)
		return
	}

	fmt.Fprintln(s.out, "Open this link to place your order:")
	fmt.Fprintln(s.out, whatsapp.OrderLink(s.phone, *product, qty))
}

func (s *Shell) handleLogin(parts []string) {
	if len(parts) != 2 {
		fmt.Fprintln(s.out, "Usage: login <password>")
		return
	}
	if err := s.gate.Login(parts[1]); err != nil {
		fmt.Fprintln(s.out, "Wrong password")
		return
	}
	fmt.Fprintln(s.out, "Welcome back, admin")
}

func (s *Shell) printProductList(products []catalog.Product) {
	if len(products) == 0 {
		fmt.Fprintln(s.out, "No products found")
		return
	}
	threshold := s.catalog.LowStockThreshold()
	for _, p := range products {
		fmt.Fprintf(s.out, "%d  %-22s %-11s %10s  %s\n",
			p.ID, p.Name, p.Category, currency.Format(p.Price), stockStatus(p.Stock, threshold))
	}
}

func (s *Shell) announceLowStock() {
	for _, p := range s.catalog.LowStock() {
		if s.alerted[p.ID] {
			continue
		}
		s.alerted[p.ID] = true
		if p.Stock == 0 {
			fmt.Fprintf(s.out, "! %s is out of stock\n", p.Name)
		} else {
			fmt.Fprintf(s.out, "! Low stock: %s (%d bags left)\n", p.Name, p.Stock)
		}
	}
}

func stockStatus(stock, lowAt int) string {
	switch {
	case stock == 0:
		return "Out of Stock"
	case stock <= lowAt:
		return fmt.Sprintf("Low Stock (%d bags)", stock)
	default:
		return fmt.Sprintf("In Stock (%d bags)", stock)
	}
}
