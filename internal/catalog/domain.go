package catalog

// Category classifies a fertilizer product. The storefront filter and the
// admin form both work off this fixed set.
type Category string

const (
	CategoryCompound   Category = "Compound"
	CategoryNitrogen   Category = "Nitrogen"
	CategoryPhosphorus Category = "Phosphorus"
	CategoryPotassium  Category = "Potassium"
	CategoryOrganic    Category = "Organic"
	CategorySecondary  Category = "Secondary"
)

// Categories lists every valid product category.
var Categories = []Category{
	CategoryCompound,
	CategoryNitrogen,
	CategoryPhosphorus,
	CategoryPotassium,
	CategoryOrganic,
	CategorySecondary,
}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Product is a catalog entry. Stock is in whole bags and never negative;
// sales move it through the ledger, never directly.
type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	Image       string   `json:"image"`
	Category    Category `json:"category"`
	Benefits    []string `json:"benefits"`
}

// Input carries the admin form fields for creating or updating a product.
// Numeric fields are already parsed; Validate enforces the domain rules
// before anything touches the catalog.
type Input struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	Image       string
	Category    Category
	Benefits    []string
}
