package entities

import (
	"time"

	"github.com/google/uuid"
)

type ShoppingListItem struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ProductID         *uuid.UUID `gorm:"type:uuid" json:"product_id,omitempty"` // weak reference, nil for manual entries
	Name              string     `json:"name"`
	Quantity          int        `json:"quantity"`
	Unit              string     `json:"unit"`
	SuggestedQuantity int        `json:"suggested_quantity,omitempty"`
	AutoUpdateStock   bool       `json:"auto_update_stock"`
	AddedAt           time.Time  `gorm:"type:timestamp" json:"added_at"`

	Product *Product `gorm:"foreignKey:ProductID"`
	Timestamp
}
