package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetShoppingList    = "shopping list retrieved successfully"
	MessageSuccessAddShoppingItem    = "shopping list item added successfully"
	MessageSuccessUpdateShoppingItem = "shopping list item updated successfully"
	MessageSuccessRemoveShoppingItem = "shopping list item removed successfully"
	MessageSuccessValidatePurchase   = "purchase validated successfully"
	MessageSuccessGetLowStock        = "low stock products retrieved successfully"
	MessageSuccessShareList          = "shopping list shared successfully"

	MessageFailedGetShoppingList    = "failed to retrieve shopping list"
	MessageFailedAddShoppingItem    = "failed to add shopping list item"
	MessageFailedUpdateShoppingItem = "failed to update shopping list item"
	MessageFailedRemoveShoppingItem = "failed to remove shopping list item"
	MessageFailedValidatePurchase   = "failed to validate purchase"
	MessageFailedGetLowStock        = "failed to retrieve low stock products"
	MessageFailedShareList          = "failed to share shopping list"

	ErrShoppingItemNotFound = errors.New("shopping list item not found")
	ErrMissingItemName      = errors.New("item name is required when no product is referenced")
)

type (
	AddShoppingItemRequest struct {
		ProductID string `json:"product_id" validate:"omitempty,uuid"`
		Name      string `json:"name" validate:"required_without=ProductID"`
		Quantity  int    `json:"quantity" validate:"required,min=1"`
		Unit      string `json:"unit" validate:"omitempty"`
	}

	UpdateShoppingItemRequest struct {
		Quantity        *int  `json:"quantity" validate:"omitempty,min=1"`
		AutoUpdateStock *bool `json:"auto_update_stock" validate:"omitempty"`
	}

	ValidatePurchaseRequest struct {
		Quantity    int  `json:"quantity" validate:"required,min=1"`
		UpdateStock bool `json:"update_stock"`
	}

	ShareShoppingListRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	LowStockSuggestion struct {
		ProductID string `json:"product_id"`
		Name      string `json:"name"`
		Quantity  int    `json:"quantity"`
		Unit      string `json:"unit"`
		OnList    bool   `json:"on_list"`
	}

	ShoppingItemResponse struct {
		ID                string    `json:"id"`
		ProductID         string    `json:"product_id,omitempty"`
		Name              string    `json:"name"`
		Quantity          int       `json:"quantity"`
		Unit              string    `json:"unit"`
		SuggestedQuantity int       `json:"suggested_quantity,omitempty"`
		AutoUpdateStock   bool      `json:"auto_update_stock"`
		AddedAt           time.Time `json:"added_at"`
	}
)
