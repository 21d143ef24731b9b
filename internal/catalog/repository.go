package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/asaskevich/EventBus"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"

	"fertistore/internal/store"
)

// ErrNotFound is returned when no product has the given ID.
var ErrNotFound = errors.New("product not found")

// ErrInvalidInput is returned when a create or update carries fields that
// violate the domain rules. The wrapped message names the field.
var ErrInvalidInput = errors.New("invalid product input")

// TopicChanged is published on the event bus after every committed
// catalog mutation, including stock moves made by the ledger.
const TopicChanged = "catalog:changed"

// DefaultLowStockThreshold marks products that need restocking.
const DefaultLowStockThreshold = 10

// Repository manages the product collection. Every operation reads the
// whole collection from the store, mutates it in memory, and writes the
// whole collection back; there are no partial writes.
type Repository struct {
	kv       store.KV
	bus      EventBus.Bus
	logger   *zap.Logger
	node     *snowflake.Node
	lowStock int
}

// NewRepository creates a Repository over kv. bus may be nil when nothing
// listens for change notifications.
func NewRepository(kv store.KV, bus EventBus.Bus, logger *zap.Logger) *Repository {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	// Node 1: a single process owns the store, so any fixed node works.
	node, _ := snowflake.NewNode(1)

	return &Repository{
		kv:       kv,
		bus:      bus,
		logger:   logger,
		node:     node,
		lowStock: DefaultLowStockThreshold,
	}
}

// SetLowStockThreshold overrides the restock warning level. Values
// below 1 are ignored.
func (r *Repository) SetLowStockThreshold(n int) {
	if n > 0 {
		r.lowStock = n
	}
}

// LowStockThreshold is the stock level at or below which a product
// counts as low. Display code must use this rather than the default so
// labels agree with LowStock.
func (r *Repository) LowStockThreshold() int {
	return r.lowStock
}

// Seed writes the starter catalog when the collection is empty. Calling
// it again is a no-op.
func (r *Repository) Seed() {
	if len(r.List()) > 0 {
		return
	}
	r.save(starterCatalog())
	r.logger.Info("seeded starter catalog")
}

// List returns all products in insertion order.
func (r *Repository) List() []Product {
	products := []Product{}
	r.kv.Get(store.KeyProducts, &products)
	return products
}

// Get returns the product with the given ID.
func (r *Repository) Get(id int64) (*Product, error) {
	for _, p := range r.List() {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

// Create validates in, assigns a fresh ID, and appends the product.
func (r *Repository) Create(in Input) (*Product, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	product := fromInput(in)
	product.ID = r.node.Generate().Int64()

	products := append(r.List(), product)
	r.save(products)

	r.logger.Info("product created",
		zap.Int64("product_id", product.ID),
		zap.String("name", product.Name))
	return &product, nil
}

// Update validates in and replaces the product with the given ID.
func (r *Repository) Update(id int64, in Input) (*Product, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	products := r.List()
	for i, p := range products {
		if p.ID != id {
			continue
		}
		updated := fromInput(in)
		updated.ID = id
		products[i] = updated
		r.save(products)

		r.logger.Info("product updated", zap.Int64("product_id", id))
		return &updated, nil
	}
	return nil, ErrNotFound
}

// Delete removes the product with the given ID. Historical sales that
// reference it are left alone; they carry their own name and price.
func (r *Repository) Delete(id int64) error {
	products := r.List()
	for i, p := range products {
		if p.ID != id {
			continue
		}
		r.save(append(products[:i], products[i+1:]...))
		r.logger.Info("product deleted", zap.Int64("product_id", id))
		return nil
	}
	return ErrNotFound
}

// Search returns products whose name or category contains term,
// case-insensitively. An empty term returns everything.
func (r *Repository) Search(term string) []Product {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return r.List()
	}

	matched := []Product{}
	for _, p := range r.List() {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(string(p.Category)), term) {
			matched = append(matched, p)
		}
	}
	return matched
}

// LowStock returns products at or below the restock threshold.
func (r *Repository) LowStock() []Product {
	low := []Product{}
	for _, p := range r.List() {
		if p.Stock <= r.lowStock {
			low = append(low, p)
		}
	}
	return low
}

// ReplaceAll overwrites the whole collection. The ledger uses it to
// commit stock adjustments it has already validated.
func (r *Repository) ReplaceAll(products []Product) {
	r.save(products)
}

func (r *Repository) save(products []Product) {
	r.kv.Set(store.KeyProducts, products)
	if r.bus != nil {
		r.bus.Publish(TopicChanged)
	}
}

func fromInput(in Input) Product {
	benefits := []string{}
	for _, b := range in.Benefits {
		if strings.TrimSpace(b) != "" {
			benefits = append(benefits, b)
		}
	}
	return Product{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Stock:       in.Stock,
		Image:       strings.TrimSpace(in.Image),
		Category:    in.Category,
		Benefits:    benefits,
	}
}

func validate(in Input) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if in.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if in.Stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", ErrInvalidInput)
	}
	if !ValidCategory(in.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, in.Category)
	}
	return nil
}
