package catalog

const seedImage = "https://images.pexels.com/photos/4503273/pexels-photo-4503273.jpeg"

// starterCatalog is written on first run so the storefront is never empty.
func starterCatalog() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "NPK 15-15-15",
			Description: "Balanced fertilizer perfect for all crops. Contains equal amounts of Nitrogen, Phosphorus, and Potassium for optimal plant growth.",
			Price:       850,
			Stock:       50,
			Image:       seedImage,
			Category:    CategoryCompound,
			Benefits:    []string{"Promotes healthy growth", "Improves soil fertility", "Suitable for all crops"},
		},
		{
			ID:          2,
			Name:        "Urea (46-0-0)",
			Description: "High nitrogen content fertilizer ideal for leafy crops and grass. Promotes rapid vegetative growth.",
			Price:       720,
			Stock:       75,
			Image:       seedImage,
			Category:    CategoryNitrogen,
			Benefits:    []string{"46% nitrogen content", "Quick release formula", "Ideal for leafy vegetables"},
		},
		{
			ID:          3,
			Name:        "DAP (18-46-0)",
			Description: "Diammonium Phosphate - excellent source of phosphorus for root development and flowering.",
			Price:       950,
			Stock:       30,
			Image:       seedImage,
			Category:    CategoryPhosphorus,
			Benefits:    []string{"High phosphorus content", "Promotes root growth", "Enhances flowering"},
		},
		{
			ID:          4,
			Name:        "Potash (0-0-60)",
			Description: "Pure potassium fertilizer that improves fruit quality, disease resistance, and overall plant health.",
			Price:       1200,
			Stock:       25,
			Image:       seedImage,
			Category:    CategoryPotassium,
			Benefits:    []string{"60% potassium content", "Improves fruit quality", "Enhances disease resistance"},
		},
		{
			ID:          5,
			Name:        "Organic Compost",
			Description: "Rich organic fertilizer made from decomposed plant matter. Perfect for sustainable farming practices.",
			Price:       450,
			Stock:       100,
			Image:       seedImage,
			Category:    CategoryOrganic,
			Benefits:    []string{"100% organic", "Improves soil structure", "Long-lasting nutrients"},
		},
		{
			ID:          6,
			Name:        "Calcium Sulfate",
			Description: "Gypsum-based fertilizer that improves soil structure and provides calcium and sulfur to plants.",
			Price:       650,
			Stock:       40,
			Image:       seedImage,
			Category:    CategorySecondary,
			Benefits:    []string{"Improves soil structure", "Reduces soil salinity", "Provides calcium & sulfur"},
		},
	}
}
