package shoppinglist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cladjidane/k-stockhome/domain"
	"github.com/cladjidane/k-stockhome/entities"
	"github.com/cladjidane/k-stockhome/pkg/product"
)

type (
	// Mailer sends the shared shopping list. Satisfied by the mailing util.
	Mailer interface {
		Send(toEmail string, subject string, body string) error
	}

	ShoppingListService interface {
		GetItems(ctx context.Context) ([]domain.ShoppingItemResponse, error)
		AddItem(ctx context.Context, req domain.AddShoppingItemRequest) (domain.ShoppingItemResponse, error)
		UpdateItem(ctx context.Context, id string, req domain.UpdateShoppingItemRequest) error
		RemoveItem(ctx context.Context, id string) error
		ValidatePurchase(ctx context.Context, id string, req domain.ValidatePurchaseRequest) error
		GetLowStockSuggestions(ctx context.Context) ([]domain.LowStockSuggestion, error)
		ShareList(ctx context.Context, req domain.ShareShoppingListRequest) error
	}

	shoppingListService struct {
		shoppingListRepository ShoppingListRepository
		productRepository      product.ProductRepository
		mailer                 Mailer
		lowStockThreshold      int
	}
)

func NewShoppingListService(shoppingListRepository ShoppingListRepository, productRepository product.ProductRepository, mailer Mailer, lowStockThreshold int) ShoppingListService {
	return &shoppingListService{
		shoppingListRepository: shoppingListRepository,
		productRepository:      productRepository,
		mailer:                 mailer,
		lowStockThreshold:      lowStockThreshold,
	}
}

func (s *shoppingListService) GetItems(ctx context.Context) ([]domain.ShoppingItemResponse, error) {
	items, err := s.shoppingListRepository.GetItems(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ShoppingItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toResponse(item))
	}
	return response, nil
}

// AddItem adds an entry to the list, either manual (name only) or referencing
// a product. An existing entry for the same product gets its quantity bumped
// instead of duplicating the line.
func (s *shoppingListService) AddItem(ctx context.Context, req domain.AddShoppingItemRequest) (domain.ShoppingItemResponse, error) {
	item := &entities.ShoppingListItem{
		ID:       uuid.New(),
		Name:     req.Name,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		AddedAt:  time.Now(),
	}

	if req.ProductID != "" {
		productID, err := uuid.Parse(req.ProductID)
		if err != nil {
			return domain.ShoppingItemResponse{}, domain.ErrParseUUID
		}

		prod, err := s.productRepository.GetProductByID(ctx, req.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ShoppingItemResponse{}, domain.ErrProductNotFound
			}
			return domain.ShoppingItemResponse{}, err
		}

		if existing, err := s.shoppingListRepository.GetItemByProductID(ctx, req.ProductID); err == nil {
			existing.Quantity += req.Quantity
			if err := s.shoppingListRepository.UpdateItem(ctx, existing); err != nil {
				return domain.ShoppingItemResponse{}, err
			}
			return toResponse(existing), nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ShoppingItemResponse{}, err
		}

		item.ProductID = &productID
		item.Name = prod.Name
		item.Unit = prod.Unit
		item.SuggestedQuantity = suggestedQuantity(prod.Quantity)
		item.AutoUpdateStock = true
	} else if req.Name == "" {
		return domain.ShoppingItemResponse{}, domain.ErrMissingItemName
	}

	if err := s.shoppingListRepository.AddItem(ctx, item); err != nil {
		return domain.ShoppingItemResponse{}, err
	}

	return toResponse(item), nil
}

func (s *shoppingListService) UpdateItem(ctx context.Context, id string, req domain.UpdateShoppingItemRequest) error {
	item, err := s.shoppingListRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrShoppingItemNotFound
		}
		return err
	}

	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.AutoUpdateStock != nil {
		item.AutoUpdateStock = *req.AutoUpdateStock
	}

	return s.shoppingListRepository.UpdateItem(ctx, item)
}

func (s *shoppingListService) RemoveItem(ctx context.Context, id string) error {
	if _, err := s.shoppingListRepository.GetItemByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrShoppingItemNotFound
		}
		return err
	}
	return s.shoppingListRepository.DeleteItem(ctx, id)
}

// ValidatePurchase completes a shopping list entry: the item is removed and,
// when requested, the purchased quantity is added back to the referenced
// product's stock.
func (s *shoppingListService) ValidatePurchase(ctx context.Context, id string, req domain.ValidatePurchaseRequest) error {
	item, err := s.shoppingListRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrShoppingItemNotFound
		}
		return err
	}

	if req.UpdateStock && item.ProductID != nil {
		prod, err := s.productRepository.GetProductByID(ctx, item.ProductID.String())
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			// product deleted since the item was added, nothing to restock
		} else {
			prod.Quantity += req.Quantity
			if err := s.productRepository.UpdateProduct(ctx, prod); err != nil {
				return err
			}
		}
	}

	return s.shoppingListRepository.DeleteItem(ctx, id)
}

// GetLowStockSuggestions lists products at or below the low-stock threshold,
// flagging the ones already on the list.
func (s *shoppingListService) GetLowStockSuggestions(ctx context.Context) ([]domain.LowStockSuggestion, error) {
	products, err := s.productRepository.GetLowStockProducts(ctx, s.lowStockThreshold)
	if err != nil {
		return nil, err
	}

	suggestions := make([]domain.LowStockSuggestion, 0, len(products))
	for _, prod := range products {
		onList := false
		if _, err := s.shoppingListRepository.GetItemByProductID(ctx, prod.ID.String()); err == nil {
			onList = true
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		suggestions = append(suggestions, domain.LowStockSuggestion{
			ProductID: prod.ID.String(),
			Name:      prod.Name,
			Quantity:  prod.Quantity,
			Unit:      prod.Unit,
			OnList:    onList,
		})
	}

	return suggestions, nil
}

func (s *shoppingListService) ShareList(ctx context.Context, req domain.ShareShoppingListRequest) error {
	items, err := s.shoppingListRepository.GetItems(ctx)
	if err != nil {
		return err
	}

	var body strings.Builder
	body.WriteString("<h2>Liste de courses</h2><ul>")
	for _, item := range items {
		body.WriteString(fmt.Sprintf("<li>%s : %d %s</li>", item.Name, item.Quantity, item.Unit))
	}
	body.WriteString("</ul>")

	return s.mailer.Send(req.Email, "Liste de courses", body.String())
}

func suggestedQuantity(stock int) int {
	if stock < 1 {
		return 1
	}
	return stock
}

func toResponse(item *entities.ShoppingListItem) domain.ShoppingItemResponse {
	response := domain.ShoppingItemResponse{
		ID:                item.ID.String(),
		Name:              item.Name,
		Quantity:          item.Quantity,
		Unit:              item.Unit,
		SuggestedQuantity: item.SuggestedQuantity,
		AutoUpdateStock:   item.AutoUpdateStock,
		AddedAt:           item.AddedAt,
	}
	if item.ProductID != nil {
		response.ProductID = item.ProductID.String()
	}
	return response
}
