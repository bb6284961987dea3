package product

import (
	"context"

	"gorm.io/gorm"

	"github.com/cladjidane/k-stockhome/entities"
)

type (
	ProductRepository interface {
		AddProduct(ctx context.Context, product *entities.Product) error
		GetProductByID(ctx context.Context, id string) (*entities.Product, error)
		GetProductByBarcode(ctx context.Context, barcode string, excludeID string) (*entities.Product, error)
		UpdateProduct(ctx context.Context, product *entities.Product) error
		DeleteProduct(ctx context.Context, id string) error
		GetProducts(ctx context.Context, search string, page, limit int) ([]*entities.Product, int64, error)
		GetAllProducts(ctx context.Context, search string) ([]entities.Product, error)
		GetLowStockProducts(ctx context.Context, threshold int) ([]*entities.Product, error)
	}

	productRepository struct {
		db *gorm.DB
	}
)

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) AddProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetProductByID(ctx context.Context, id string) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetProductByBarcode(ctx context.Context, barcode string, excludeID string) (*entities.Product, error) {
	var product entities.Product
	query := r.db.WithContext(ctx).Where("barcode = ?", barcode)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) DeleteProduct(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Product{}).Error
}

func searchClause(db *gorm.DB, search string) *gorm.DB {
	if search == "" {
		return db
	}
	pattern := "%" + search + "%"
	return db.Where(
		"name ILIKE ? OR categories ILIKE ? OR labels ILIKE ? OR location ILIKE ? OR barcode LIKE ?",
		pattern, pattern, pattern, pattern, pattern,
	)
}

func (r *productRepository) GetProducts(ctx context.Context, search string, page, limit int) ([]*entities.Product, int64, error) {
	var products []*entities.Product
	var count int64

	offset := (page - 1) * limit

	query := searchClause(r.db.WithContext(ctx), search)

	if err := query.Model(&entities.Product{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, count, nil
}

func (r *productRepository) GetAllProducts(ctx context.Context, search string) ([]entities.Product, error) {
	var products []entities.Product
	query := searchClause(r.db.WithContext(ctx), search)
	if err := query.Order("name asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) GetLowStockProducts(ctx context.Context, threshold int) ([]*entities.Product, error) {
	var products []*entities.Product
	if err := r.db.WithContext(ctx).
		Where("quantity <= ?", threshold).
		Order("quantity asc").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
