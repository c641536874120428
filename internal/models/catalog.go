// internal/models/catalog.go
package models

// Artwork is a top-level product series.
type Artwork struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	Title           string `json:"title" gorm:"size:255;not null"`
	BaseDescription string `json:"base_description" gorm:"type:text"`

	// Relationships
	Editions []Edition `json:"editions,omitempty" gorm:"foreignKey:ArtworkID"`
}

// Edition is a specific version of an artwork, e.g. a limited print run.
type Edition struct {
	ID                  uint   `json:"id" gorm:"primaryKey"`
	ArtworkID           uint   `json:"artwork_id" gorm:"not null;index"`
	Subtitle            string `json:"subtitle" gorm:"size:255"`
	ImageURL            string `json:"image_url" gorm:"column:image_url;size:1024"`
	SpecificDescription string `json:"specific_description" gorm:"type:text"`

	// Relationships
	Items []Item `json:"items,omitempty" gorm:"foreignKey:EditionID"`
}

// Item is a purchasable SKU under an edition.
type Item struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	EditionID   uint    `json:"edition_id" gorm:"not null;index"`
	VariantID   *uint   `json:"variant_id" gorm:"index"`
	FinalPrice  float64 `json:"final_price" gorm:"type:decimal(10,2);not null;default:0"`
	ItemSummary string  `json:"item_summary" gorm:"size:512"`
	Stock       int     `json:"stock" gorm:"default:0"`
	ImageURL    string  `json:"image_url" gorm:"column:image_url;size:1024"`

	// Relationships
	Variant *Variant `json:"variant,omitempty" gorm:"foreignKey:VariantID"`
}

// Variant classifies an item by product type ("T-shirt", "Poster", ...).
type Variant struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	ProductType string `json:"product_type" gorm:"size:100;not null"`
}

// MenuItem backs GET /api/menu.
type MenuItem struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"size:255;not null"`
	Price       float64 `json:"price" gorm:"type:decimal(10,2);not null;default:0"`
	Category    string  `json:"category" gorm:"size:100;index"`
	Description string  `json:"description" gorm:"type:text"`
	ImageURL    string  `json:"image_url" gorm:"column:image_url;size:1024"`
}

func (MenuItem) TableName() string {
	return "menu"
}
