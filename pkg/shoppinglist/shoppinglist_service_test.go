package shoppinglist

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cladjidane/k-stockhome/domain"
	"github.com/cladjidane/k-stockhome/entities"
)

type fakeProductRepository struct {
	products map[string]*entities.Product
}

func (r *fakeProductRepository) AddProduct(_ context.Context, product *entities.Product) error {
	r.products[product.ID.String()] = product
	return nil
}

func (r *fakeProductRepository) GetProductByID(_ context.Context, id string) (*entities.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *product
	return &clone, nil
}

func (r *fakeProductRepository) GetProductByBarcode(_ context.Context, _ string, _ string) (*entities.Product, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProductRepository) UpdateProduct(_ context.Context, product *entities.Product) error {
	r.products[product.ID.String()] = product
	return nil
}

func (r *fakeProductRepository) DeleteProduct(_ context.Context, id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepository) GetProducts(_ context.Context, _ string, _, _ int) ([]*entities.Product, int64, error) {
	return nil, 0, nil
}

func (r *fakeProductRepository) GetAllProducts(_ context.Context, _ string) ([]entities.Product, error) {
	return nil, nil
}

func (r *fakeProductRepository) GetLowStockProducts(_ context.Context, threshold int) ([]*entities.Product, error) {
	products := make([]*entities.Product, 0)
	for _, product := range r.products {
		if product.Quantity <= threshold {
			products = append(products, product)
		}
	}
	return products, nil
}

type fakeShoppingListRepository struct {
	items map[string]*entities.ShoppingListItem
	order []string
}

func (r *fakeShoppingListRepository) AddItem(_ context.Context, item *entities.ShoppingListItem) error {
	r.items[item.ID.String()] = item
	r.order = append(r.order, item.ID.String())
	return nil
}

func (r *fakeShoppingListRepository) GetItemByID(_ context.Context, id string) (*entities.ShoppingListItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (r *fakeShoppingListRepository) GetItemByProductID(_ context.Context, productID string) (*entities.ShoppingListItem, error) {
	for _, item := range r.items {
		if item.ProductID != nil && item.ProductID.String() == productID {
			return item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeShoppingListRepository) UpdateItem(_ context.Context, item *entities.ShoppingListItem) error {
	r.items[item.ID.String()] = item
	return nil
}

func (r *fakeShoppingListRepository) DeleteItem(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeShoppingListRepository) GetItems(_ context.Context) ([]*entities.ShoppingListItem, error) {
	items := make([]*entities.ShoppingListItem, 0, len(r.items))
	for _, id := range r.order {
		if item, ok := r.items[id]; ok {
			items = append(items, item)
		}
	}
	return items, nil
}

type fakeMailer struct {
	to      string
	subject string
	body    string
	sent    int
}

func (m *fakeMailer) Send(toEmail, subject, body string) error {
	m.to = toEmail
	m.subject = subject
	m.body = body
	m.sent++
	return nil
}

func newFixture() (*fakeShoppingListRepository, *fakeProductRepository, *fakeMailer, ShoppingListService) {
	listRepo := &fakeShoppingListRepository{items: make(map[string]*entities.ShoppingListItem)}
	productRepo := &fakeProductRepository{products: make(map[string]*entities.Product)}
	mailer := &fakeMailer{}
	service := NewShoppingListService(listRepo, productRepo, mailer, 2)
	return listRepo, productRepo, mailer, service
}

func addStockProduct(repo *fakeProductRepository, name string, quantity int) *entities.Product {
	product := &entities.Product{
		ID:       uuid.New(),
		Name:     name,
		Quantity: quantity,
		Unit:     "unité",
	}
	repo.products[product.ID.String()] = product
	return product
}

func TestAddManualItem(t *testing.T) {
	_, _, _, service := newFixture()

	res, err := service.AddItem(context.Background(), domain.AddShoppingItemRequest{
		Name: "Essuie-tout", Quantity: 2, Unit: "rouleau",
	})
	require.NoError(t, err)

	assert.Equal(t, "Essuie-tout", res.Name)
	assert.Equal(t, 2, res.Quantity)
	assert.Empty(t, res.ProductID)
	assert.False(t, res.AutoUpdateStock)
}

func TestAddItemFromProduct(t *testing.T) {
	_, productRepo, _, service := newFixture()
	product := addStockProduct(productRepo, "Lait", 1)

	res, err := service.AddItem(context.Background(), domain.AddShoppingItemRequest{
		ProductID: product.ID.String(), Quantity: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, "Lait", res.Name)
	assert.Equal(t, "unité", res.Unit)
	assert.Equal(t, product.ID.String(), res.ProductID)
	assert.Equal(t, 1, res.SuggestedQuantity)
	assert.True(t, res.AutoUpdateStock)
}

func TestAddItemForSameProductBumpsQuantity(t *testing.T) {
	listRepo, productRepo, _, service := newFixture()
	product := addStockProduct(productRepo, "Lait", 0)

	_, err := service.AddItem(context.Background(), domain.AddShoppingItemRequest{
		ProductID: product.ID.String(), Quantity: 1,
	})
	require.NoError(t, err)

	res, err := service.AddItem(context.Background(), domain.AddShoppingItemRequest{
		ProductID: product.ID.String(), Quantity: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, res.Quantity)
	assert.Len(t, listRepo.items, 1)
}

func TestAddItemUnknownProduct(t *testing.T) {
	_, _, _, service := newFixture()

	_, err := service.AddItem(context.Background(), domain.AddShoppingItemRequest{
		ProductID: uuid.NewString(), Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestValidatePurchaseRestocksProduct(t *testing.T) {
	listRepo, productRepo, _, service := newFixture()
	product := addStockProduct(productRepo, "Lait", 0)

	res, err := service.AddItem(context.Background(), domain.AddShoppingItemRequest{
		ProductID: product.ID.String(), Quantity: 1,
	})
	require.NoError(t, err)

	err = service.ValidatePurchase(context.Background(), res.ID, domain.ValidatePurchaseRequest{
		Quantity: 6, UpdateStock: true,
	})
	require.NoError(t, err)

	assert.Empty(t, listRepo.items)
	assert.Equal(t, 6, productRepo.products[product.ID.String()].Quantity)
}

func TestValidatePurchaseWithoutStockUpdate(t *testing.T) {
	listRepo, productRepo, _, service := newFixture()
	product := addStockProduct(productRepo, "Lait", 1)

	res, err := service.AddItem(context.Background(), domain.AddShoppingItemRequest{
		ProductID: product.ID.String(), Quantity: 1,
	})
	require.NoError(t, err)

	err = service.ValidatePurchase(context.Background(), res.ID, domain.ValidatePurchaseRequest{
		Quantity: 6, UpdateStock: false,
	})
	require.NoError(t, err)

	assert.Empty(t, listRepo.items)
	assert.Equal(t, 1, productRepo.products[product.ID.String()].Quantity)
}

func TestValidatePurchaseProductDeletedMeanwhile(t *testing.T) {
	listRepo, productRepo, _, service := newFixture()
	product := addStockProduct(productRepo, "Lait", 1)

	res, err := service.AddItem(context.Background(), domain.AddShoppingItemRequest{
		ProductID: product.ID.String(), Quantity: 1,
	})
	require.NoError(t, err)

	delete(productRepo.products, product.ID.String())

	err = service.ValidatePurchase(context.Background(), res.ID, domain.ValidatePurchaseRequest{
		Quantity: 2, UpdateStock: true,
	})
	require.NoError(t, err)
	assert.Empty(t, listRepo.items)
}

func TestRemoveItem(t *testing.T) {
	listRepo, _, _, service := newFixture()

	res, err := service.AddItem(context.Background(), domain.AddShoppingItemRequest{
		Name: "Essuie-tout", Quantity: 1,
	})
	require.NoError(t, err)

	require.NoError(t, service.RemoveItem(context.Background(), res.ID))
	assert.Empty(t, listRepo.items)

	assert.ErrorIs(t, service.RemoveItem(context.Background(), res.ID), domain.ErrShoppingItemNotFound)
}

func TestUpdateItem(t *testing.T) {
	_, _, _, service := newFixture()

	res, err := service.AddItem(context.Background(), domain.AddShoppingItemRequest{
		Name: "Essuie-tout", Quantity: 1,
	})
	require.NoError(t, err)

	quantity := 4
	auto := true
	err = service.UpdateItem(context.Background(), res.ID, domain.UpdateShoppingItemRequest{
		Quantity: &quantity, AutoUpdateStock: &auto,
	})
	require.NoError(t, err)

	items, err := service.GetItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)
	assert.True(t, items[0].AutoUpdateStock)
}

func TestGetLowStockSuggestions(t *testing.T) {
	_, productRepo, _, service := newFixture()
	low := addStockProduct(productRepo, "Lait", 1)
	addStockProduct(productRepo, "Pâtes", 8)
	listed := addStockProduct(productRepo, "Œufs", 0)

	_, err := service.AddItem(context.Background(), domain.AddShoppingItemRequest{
		ProductID: listed.ID.String(), Quantity: 1,
	})
	require.NoError(t, err)

	suggestions, err := service.GetLowStockSuggestions(context.Background())
	require.NoError(t, err)
	require.Len(t, suggestions, 2)

	byID := make(map[string]domain.LowStockSuggestion, len(suggestions))
	for _, suggestion := range suggestions {
		byID[suggestion.ProductID] = suggestion
	}
	assert.False(t, byID[low.ID.String()].OnList)
	assert.True(t, byID[listed.ID.String()].OnList)
}

func TestShareList(t *testing.T) {
	_, _, mailer, service := newFixture()

	_, err := service.AddItem(context.Background(), domain.AddShoppingItemRequest{
		Name: "Lait", Quantity: 2, Unit: "L",
	})
	require.NoError(t, err)

	err = service.ShareList(context.Background(), domain.ShareShoppingListRequest{Email: "famille@example.com"})
	require.NoError(t, err)

	assert.Equal(t, 1, mailer.sent)
	assert.Equal(t, "famille@example.com", mailer.to)
	assert.Contains(t, mailer.body, "Lait")
	assert.Contains(t, mailer.body, "2 L")
}
