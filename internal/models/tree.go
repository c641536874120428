// internal/models/tree.go
package models

// ArtworkRow is one row of the artwork ⟕ edition ⟕ item ⟕ variant join.
// Everything right of the artwork is nullable because of the left joins.
type ArtworkRow struct {
	ArtworkID       uint
	Title           *string
	BaseDescription *string

	EditionID           *uint
	Subtitle            *string
	EditionImageURL     *string
	SpecificDescription *string

	ItemID       *uint
	FinalPrice   *float64
	ItemSummary  *string
	Stock        *int
	ItemImageURL *string

	VariantID   *uint
	ProductType *string
}

// ArtworkTree is the nested shape served by GET /api/artworks.
type ArtworkTree struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Editions    []EditionTree `json:"editions"`
}

type EditionTree struct {
	ID          uint          `json:"id"`
	Subtitle    string        `json:"subtitle"`
	ImageURL    string        `json:"image_url"`
	Description string        `json:"description"`
	Products    []ProductNode `json:"products"`
}

type ProductNode struct {
	ID       uint    `json:"id"`
	Summary  string  `json:"summary"`
	Type     string  `json:"type"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	ImageURL string  `json:"image_url"`
}
