package ledger

import (
	"errors"

	"github.com/asaskevich/EventBus"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"fertistore/internal/catalog"
	"fertistore/internal/store"
)

// ErrNotFound is returned when no sale has the given ID.
var ErrNotFound = errors.New("sale not found")

// ErrInvalidQuantity is returned when a sale quantity is not a positive
// whole number of bags.
var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// ErrInsufficientStock is returned when a sale asks for more bags than
// the product has left. Nothing is mutated.
var ErrInsufficientStock = errors.New("not enough stock available")

// TopicChanged is published on the event bus after every committed
// ledger mutation.
const TopicChanged = "ledger:changed"

// Service owns the sales ledger and the rule that keeps it consistent
// with catalog stock: recording a sale decrements stock by the sold
// quantity, deleting a sale restores it. Both sides of each operation
// are computed in memory and persisted together, so no failure path
// leaves a sale without its stock movement or vice versa.
type Service struct {
	kv      store.KV
	catalog *catalog.Repository
	bus     EventBus.Bus
	logger  *zap.Logger
}

// NewService creates a ledger Service backed by kv and the given
// catalog. bus may be nil when nothing listens for change notifications.
func NewService(kv store.KV, cat *catalog.Repository, bus EventBus.Bus, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Service{
		kv:      kv,
		catalog: cat,
		bus:     bus,
		logger:  logger,
	}
}

// List returns all sales, newest first.
func (s *Service) List() []Sale {
	sales := []Sale{}
	s.kv.Get(store.KeySales, &sales)
	return sales
}

// Get returns the sale with the given ID.
func (s *Service) Get(id string) (*Sale, error) {
	for _, sale := range s.List() {
		if sale.ID == id {
			return &sale, nil
		}
	}
	return nil, ErrNotFound
}

// RecordSale creates a sale of quantity bags of the given product on the
// given calendar day, snapshotting the product's current name and price,
// and decrements the product's stock by the same amount. The validation
// and both writes run against one in-memory snapshot of the collections;
// on any error nothing is written.
func (s *Service) RecordSale(productID int64, quantity int, date string) (*Sale, error) {
	day, err := ParseDay(date)
	if err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	products := s.catalog.List()
	idx := -1
	for i, p := range products {
		if p.ID == productID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, catalog.ErrNotFound
	}
	product := products[idx]

	if quantity > product.Stock {
		s.logger.Warn("sale rejected, insufficient stock",
			zap.Int64("product_id", productID),
			zap.Int("requested", quantity),
			zap.Int("stock", product.Stock))
		return nil, ErrInsufficientStock
	}

	sale := Sale{
		ID:          uuid.NewString(),
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    quantity,
		Price:       product.Price,
		Date:        day,
		Total:       float64(quantity) * product.Price,
	}

	sales := append([]Sale{sale}, s.List()...)
	products[idx].Stock -= quantity

	s.kv.Set(store.KeySales, sales)
	s.catalog.ReplaceAll(products)
	if s.bus != nil {
		s.bus.Publish(TopicChanged)
	}

	s.logger.Info("sale recorded",
		zap.String("sale_id", sale.ID),
		zap.Int64("product_id", product.ID),
		zap.Int("quantity", quantity),
		zap.Float64("total", sale.Total),
		zap.Int("stock_left", products[idx].Stock))
	return &sale, nil
}

// DeleteSale removes the sale with the given ID and restores its
// quantity to the product's stock. When the product has since been
// deleted from the catalog there is nothing to restore into; the sale is
// still removed and the gap is logged.
func (s *Service) DeleteSale(id string) error {
	sales := s.List()
	idx := -1
	for i, sale := range sales {
		if sale.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrNotFound
	}
	sale := sales[idx]

	products := s.catalog.List()
	restored := false
	for i, p := range products {
		if p.ID == sale.ProductID {
			products[i].Stock += sale.Quantity
			restored = true
			break
		}
	}

	sales = append(sales[:idx], sales[idx+1:]...)

	s.kv.Set(store.KeySales, sales)
	if restored {
		s.catalog.ReplaceAll(products)
	} else {
		s.logger.Warn("sale deleted but product is gone, stock not restored",
			zap.String("sale_id", sale.ID),
			zap.Int64("product_id", sale.ProductID),
			zap.Int("quantity", sale.Quantity))
	}
	if s.bus != nil {
		s.bus.Publish(TopicChanged)
	}

	s.logger.Info("sale deleted",
		zap.String("sale_id", sale.ID),
		zap.Int64("product_id", sale.ProductID),
		zap.Int("quantity", sale.Quantity))
	return nil
}
