package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddProduct     = "product added successfully"
	MessageSuccessUpdateProduct  = "product updated successfully"
	MessageSuccessDeleteProduct  = "product deleted successfully"
	MessageSuccessGetProducts    = "products retrieved successfully"
	MessageSuccessAdjustQuantity = "product quantity adjusted successfully"
	MessageSuccessGroupProducts  = "grouped products retrieved successfully"
	MessageSuccessScanBarcode    = "barcode scanned successfully"
	MessageSuccessCheckBarcode   = "barcode checked successfully"

	MessageFailedAddProduct     = "failed to add product"
	MessageFailedUpdateProduct  = "failed to update product"
	MessageFailedDeleteProduct  = "failed to delete product"
	MessageFailedGetProducts    = "failed to retrieve products"
	MessageFailedAdjustQuantity = "failed to adjust product quantity"
	MessageFailedGroupProducts  = "failed to retrieve grouped products"
	MessageFailedScanBarcode    = "failed to scan barcode"
	MessageFailedCheckBarcode   = "failed to check barcode"

	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidQuantity  = errors.New("quantity must not be negative")
	ErrBarcodeTaken     = errors.New("barcode already assigned to another product")
	ErrProductNotInBase = errors.New("product not found in food database")
)

type (
	Nutriments struct {
		Energy   float64 `json:"energy_100g" validate:"omitempty,min=0"`
		Proteins float64 `json:"proteins_100g" validate:"omitempty,min=0"`
		Carbs    float64 `json:"carbohydrates_100g" validate:"omitempty,min=0"`
		Fat      float64 `json:"fat_100g" validate:"omitempty,min=0"`
	}

	AddProductRequest struct {
		Name       string      `json:"name" validate:"required"`
		Quantity   int         `json:"quantity" validate:"min=0"`
		Unit       string      `json:"unit" validate:"required"`
		Location   string      `json:"location" validate:"omitempty"`
		Barcode    string      `json:"barcode" validate:"omitempty"`
		Categories string      `json:"categories" validate:"omitempty"`
		Labels     string      `json:"labels" validate:"omitempty"`
		Nutriscore string      `json:"nutriscore" validate:"omitempty,oneof=a b c d e"`
		ImageURL   string      `json:"image_url" validate:"omitempty,url"`
		Nutriments *Nutriments `json:"nutriments" validate:"omitempty"`
	}

	UpdateProductRequest struct {
		Name       string      `json:"name" validate:"omitempty"`
		Quantity   *int        `json:"quantity" validate:"omitempty,min=0"`
		Unit       string      `json:"unit" validate:"omitempty"`
		Location   string      `json:"location" validate:"omitempty"`
		Barcode    string      `json:"barcode" validate:"omitempty"`
		Categories string      `json:"categories" validate:"omitempty"`
		Labels     string      `json:"labels" validate:"omitempty"`
		Nutriscore string      `json:"nutriscore" validate:"omitempty,oneof=a b c d e"`
		ImageURL   string      `json:"image_url" validate:"omitempty,url"`
		Nutriments *Nutriments `json:"nutriments" validate:"omitempty"`
	}

	AdjustQuantityRequest struct {
		Delta int `json:"delta" validate:"required"`
	}

	ProductResponse struct {
		ID         string     `json:"id"`
		Name       string     `json:"name"`
		Quantity   int        `json:"quantity"`
		Unit       string     `json:"unit"`
		Location   string     `json:"location"`
		Barcode    string     `json:"barcode,omitempty"`
		Categories string     `json:"categories,omitempty"`
		Labels     string     `json:"labels,omitempty"`
		DietInfo   []string   `json:"diet_info"`
		Allergens  []string   `json:"allergens"`
		Nutriscore string     `json:"nutriscore,omitempty"`
		ImageURL   string     `json:"image_url,omitempty"`
		Nutriments Nutriments `json:"nutriments"`
		LowStock   bool       `json:"low_stock"`
		CreatedAt  time.Time  `json:"created_at"`
	}

	AdjustQuantityResponse struct {
		Product  ProductResponse `json:"product"`
		LowStock bool            `json:"low_stock"`
	}

	// GroupedProductsResponse keeps the bucket order alongside the partition so
	// clients can render sections deterministically.
	GroupedProductsResponse struct {
		Groups map[string][]ProductResponse `json:"groups"`
		Order  []string                     `json:"order"`
	}

	ScanBarcodeResponse struct {
		Barcode           string     `json:"barcode"`
		Name              string     `json:"name"`
		Categories        string     `json:"categories,omitempty"`
		Labels            string     `json:"labels,omitempty"`
		Location          string     `json:"location"`
		DietInfo          []string   `json:"diet_info"`
		Allergens         []string   `json:"allergens"`
		Nutriscore        string     `json:"nutriscore,omitempty"`
		ImageURL          string     `json:"image_url,omitempty"`
		Nutriments        Nutriments `json:"nutriments"`
		ExistingProductID string     `json:"existing_product_id,omitempty"`
	}

	CheckBarcodeResponse struct {
		Exists bool `json:"exists"`
	}
)
