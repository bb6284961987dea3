package entities

import (
	"github.com/google/uuid"
)

type Product struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name     string    `json:"name"`
	Quantity int       `json:"quantity"`
	Unit     string    `json:"unit"` // "unité", "kg", "L", ...
	Location string    `json:"location"` // comma-joined, a product can live in several places
	Barcode  string    `gorm:"index" json:"barcode,omitempty"`

	// Free text from Open Food Facts, comma/slash separated
	Categories string `gorm:"type:text" json:"categories,omitempty"`
	Labels     string `gorm:"type:text" json:"labels,omitempty"`

	// Derived at creation/scan time, comma-joined
	DietInfo  string `gorm:"type:text" json:"diet_info,omitempty"`
	Allergens string `gorm:"type:text" json:"allergens,omitempty"`

	Nutriscore string  `json:"nutriscore,omitempty"` // "a".."e"
	ImageURL   string  `json:"image_url,omitempty"`
	Energy     float64 `json:"energy_100g"`
	Proteins   float64 `json:"proteins_100g"`
	Carbs      float64 `gorm:"column:carbohydrates" json:"carbohydrates_100g"`
	Fat        float64 `json:"fat_100g"`

	ShoppingListItems []*ShoppingListItem `gorm:"foreignKey:ProductID"`
	Timestamp
}
