package models

import "time"

// Three-level catalog used to populate estimate item pickers:
// category -> subcategory -> section. Deleting a parent is blocked while
// children reference it (application-level check, see CatalogService).

type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type SubCategory struct {
	ID         int       `json:"id"`
	CategoryID int       `json:"category_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}

// Section is the canonical definition shared by every handler; it carries
// the priced material line shown in the picker.
type Section struct {
	ID            int       `json:"id"`
	SubCategoryID int       `json:"subcategory_id"`
	Material      string    `json:"material"`
	Description   string    `json:"description"`
	Amount        float64   `json:"amount"`
	Type          string    `json:"type"` // measurement type for items built from this section
	CreatedAt     time.Time `json:"created_at"`
}

type CategoryRequest struct {
	Name string `json:"name"`
}

type SubCategoryRequest struct {
	CategoryID int    `json:"category_id"`
	Name       string `json:"name"`
}

type SectionRequest struct {
	SubCategoryID int     `json:"subcategory_id"`
	Material      string  `json:"material"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	Type          string  `json:"type"`
}
