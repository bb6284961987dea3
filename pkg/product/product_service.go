package product

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cladjidane/k-stockhome/domain"
	"github.com/cladjidane/k-stockhome/entities"
	"github.com/cladjidane/k-stockhome/pkg/catalog"
	"github.com/cladjidane/k-stockhome/pkg/openfoodfacts"
)

type (
	ProductService interface {
		AddProduct(ctx context.Context, req domain.AddProductRequest) (domain.ProductResponse, error)
		UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest) error
		DeleteProduct(ctx context.Context, id string) error
		GetProducts(ctx context.Context, search string, page, limit int) ([]domain.ProductResponse, int64, error)
		GetProductByID(ctx context.Context, id string) (domain.ProductResponse, error)
		AdjustQuantity(ctx context.Context, id string, delta int) (domain.AdjustQuantityResponse, error)
		GetGroupedByCategory(ctx context.Context, search string) (domain.GroupedProductsResponse, error)
		GetGroupedByLocation(ctx context.Context, search string) (domain.GroupedProductsResponse, error)
		ScanBarcode(ctx context.Context, barcode string) (domain.ScanBarcodeResponse, error)
		CheckBarcode(ctx context.Context, barcode string, excludeID string) (domain.CheckBarcodeResponse, error)
	}

	productService struct {
		productRepository ProductRepository
		lookup            openfoodfacts.Client
		taxonomy          catalog.Taxonomy
		lowStockThreshold int
	}
)

func NewProductService(productRepository ProductRepository, lookup openfoodfacts.Client, taxonomy catalog.Taxonomy, lowStockThreshold int) ProductService {
	return &productService{
		productRepository: productRepository,
		lookup:            lookup,
		taxonomy:          taxonomy,
		lowStockThreshold: lowStockThreshold,
	}
}

func (s *productService) AddProduct(ctx context.Context, req domain.AddProductRequest) (domain.ProductResponse, error) {
	if req.Quantity < 0 {
		return domain.ProductResponse{}, domain.ErrInvalidQuantity
	}

	if req.Barcode != "" {
		if _, err := s.productRepository.GetProductByBarcode(ctx, req.Barcode, ""); err == nil {
			return domain.ProductResponse{}, domain.ErrBarcodeTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProductResponse{}, err
		}
	}

	product := &entities.Product{
		ID:         uuid.New(),
		Name:       req.Name,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		Location:   req.Location,
		Barcode:    req.Barcode,
		Categories: req.Categories,
		Labels:     req.Labels,
		Nutriscore: req.Nutriscore,
		ImageURL:   req.ImageURL,
	}

	if req.Nutriments != nil {
		product.Energy = req.Nutriments.Energy
		product.Proteins = req.Nutriments.Proteins
		product.Carbs = req.Nutriments.Carbs
		product.Fat = req.Nutriments.Fat
	}

	// Pre-fill location and diet/allergen chips from the free-text metadata.
	info := catalog.ExtractProductInfo(req.Categories, req.Labels)
	if product.Location == "" {
		product.Location = info.Location
	}
	product.DietInfo = joinTags(info.DietInfo)
	product.Allergens = joinTags(info.Allergens)

	if err := s.productRepository.AddProduct(ctx, product); err != nil {
		return domain.ProductResponse{}, err
	}

	return s.toResponse(product), nil
}

func (s *productService) UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest) error {
	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	if req.Barcode != "" && req.Barcode != product.Barcode {
		if _, err := s.productRepository.GetProductByBarcode(ctx, req.Barcode, id); err == nil {
			return domain.ErrBarcodeTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		product.Barcode = req.Barcode
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return domain.ErrInvalidQuantity
		}
		product.Quantity = *req.Quantity
	}
	if req.Unit != "" {
		product.Unit = req.Unit
	}
	if req.Location != "" {
		product.Location = req.Location
	}
	if req.Nutriscore != "" {
		product.Nutriscore = req.Nutriscore
	}
	if req.ImageURL != "" {
		product.ImageURL = req.ImageURL
	}
	if req.Nutriments != nil {
		product.Energy = req.Nutriments.Energy
		product.Proteins = req.Nutriments.Proteins
		product.Carbs = req.Nutriments.Carbs
		product.Fat = req.Nutriments.Fat
	}

	if req.Categories != "" || req.Labels != "" {
		if req.Categories != "" {
			product.Categories = req.Categories
		}
		if req.Labels != "" {
			product.Labels = req.Labels
		}
		info := catalog.ExtractProductInfo(product.Categories, product.Labels)
		product.DietInfo = joinTags(info.DietInfo)
		product.Allergens = joinTags(info.Allergens)
		if req.Location == "" {
			product.Location = info.Location
		}
	}

	return s.productRepository.UpdateProduct(ctx, product)
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	if _, err := s.productRepository.GetProductByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}
	return s.productRepository.DeleteProduct(ctx, id)
}

func (s *productService) GetProducts(ctx context.Context, search string, page, limit int) ([]domain.ProductResponse, int64, error) {
	products, count, err := s.productRepository.GetProducts(ctx, search, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.ProductResponse, 0, len(products))
	for _, product := range products {
		response = append(response, s.toResponse(product))
	}

	return response, count, nil
}

func (s *productService) GetProductByID(ctx context.Context, id string) (domain.ProductResponse, error) {
	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProductResponse{}, domain.ErrProductNotFound
		}
		return domain.ProductResponse{}, err
	}
	return s.toResponse(product), nil
}

// AdjustQuantity applies a delta to the stock of a product, clamping at zero.
// The response reports whether the result is at or below the low-stock
// threshold so the caller can offer a shopping-list suggestion.
func (s *productService) AdjustQuantity(ctx context.Context, id string, delta int) (domain.AdjustQuantityResponse, error) {
	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AdjustQuantityResponse{}, domain.ErrProductNotFound
		}
		return domain.AdjustQuantityResponse{}, err
	}

	product.Quantity += delta
	if product.Quantity < 0 {
		product.Quantity = 0
	}

	if err := s.productRepository.UpdateProduct(ctx, product); err != nil {
		return domain.AdjustQuantityResponse{}, err
	}

	return domain.AdjustQuantityResponse{
		Product:  s.toResponse(product),
		LowStock: product.Quantity <= s.lowStockThreshold,
	}, nil
}

func (s *productService) GetGroupedByCategory(ctx context.Context, search string) (domain.GroupedProductsResponse, error) {
	products, err := s.productRepository.GetAllProducts(ctx, search)
	if err != nil {
		return domain.GroupedProductsResponse{}, err
	}

	grouped := catalog.GroupByCategory(products, s.taxonomy)

	response := domain.GroupedProductsResponse{
		Groups: make(map[string][]domain.ProductResponse, len(grouped)),
		Order:  catalog.BucketNames(s.taxonomy),
	}
	for name, bucket := range grouped {
		responses := make([]domain.ProductResponse, 0, len(bucket))
		for i := range bucket {
			responses = append(responses, s.toResponse(&bucket[i]))
		}
		response.Groups[name] = responses
	}

	return response, nil
}

func (s *productService) GetGroupedByLocation(ctx context.Context, search string) (domain.GroupedProductsResponse, error) {
	products, err := s.productRepository.GetAllProducts(ctx, search)
	if err != nil {
		return domain.GroupedProductsResponse{}, err
	}

	grouped := catalog.GroupByLocation(products)

	response := domain.GroupedProductsResponse{
		Groups: make(map[string][]domain.ProductResponse, len(grouped)),
		Order:  locationOrder(grouped),
	}
	for name, bucket := range grouped {
		responses := make([]domain.ProductResponse, 0, len(bucket))
		for i := range bucket {
			responses = append(responses, s.toResponse(&bucket[i]))
		}
		response.Groups[name] = responses
	}

	return response, nil
}

// ScanBarcode looks a barcode up in the food database and returns a prefilled
// product form: suggested location plus diet/allergen chips derived from the
// returned free text. When the barcode is already in stock the existing
// product id is reported so the caller can offer an increment instead.
func (s *productService) ScanBarcode(ctx context.Context, barcode string) (domain.ScanBarcodeResponse, error) {
	data, err := s.lookup.FetchProduct(ctx, barcode)
	if err != nil {
		if errors.Is(err, openfoodfacts.ErrProductNotFound) {
			return domain.ScanBarcodeResponse{}, domain.ErrProductNotInBase
		}
		return domain.ScanBarcodeResponse{}, err
	}

	info := catalog.ExtractProductInfo(data.Categories, data.Labels)

	response := domain.ScanBarcodeResponse{
		Barcode:    barcode,
		Name:       data.Name,
		Categories: data.Categories,
		Labels:     data.Labels,
		Location:   info.Location,
		DietInfo:   info.DietInfo,
		Allergens:  info.Allergens,
		Nutriscore: data.Nutriscore,
		ImageURL:   data.ImageURL,
		Nutriments: domain.Nutriments{
			Energy:   data.Nutriments.Energy,
			Proteins: data.Nutriments.Proteins,
			Carbs:    data.Nutriments.Carbs,
			Fat:      data.Nutriments.Fat,
		},
	}

	existing, err := s.productRepository.GetProductByBarcode(ctx, barcode, "")
	if err == nil {
		response.ExistingProductID = existing.ID.String()
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ScanBarcodeResponse{}, err
	}

	return response, nil
}

func (s *productService) CheckBarcode(ctx context.Context, barcode string, excludeID string) (domain.CheckBarcodeResponse, error) {
	_, err := s.productRepository.GetProductByBarcode(ctx, barcode, excludeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CheckBarcodeResponse{Exists: false}, nil
		}
		return domain.CheckBarcodeResponse{}, err
	}
	return domain.CheckBarcodeResponse{Exists: true}, nil
}

func (s *productService) toResponse(product *entities.Product) domain.ProductResponse {
	return domain.ProductResponse{
		ID:         product.ID.String(),
		Name:       product.Name,
		Quantity:   product.Quantity,
		Unit:       product.Unit,
		Location:   product.Location,
		Barcode:    product.Barcode,
		Categories: product.Categories,
		Labels:     product.Labels,
		DietInfo:   splitTags(product.DietInfo),
		Allergens:  splitTags(product.Allergens),
		Nutriscore: product.Nutriscore,
		ImageURL:   product.ImageURL,
		Nutriments: domain.Nutriments{
			Energy:   product.Energy,
			Proteins: product.Proteins,
			Carbs:    product.Carbs,
			Fat:      product.Fat,
		},
		LowStock:  product.Quantity <= s.lowStockThreshold,
		CreatedAt: product.CreatedAt,
	}
}

func joinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

func splitTags(joined string) []string {
	if joined == "" {
		return []string{}
	}
	parts := strings.Split(joined, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// locationOrder lists the known storage locations first, in their canonical
// order, then any remaining ad hoc bucket names alphabetically.
func locationOrder(grouped map[string][]entities.Product) []string {
	order := make([]string, 0, len(grouped))
	seen := make(map[string]bool, len(grouped))

	for _, location := range catalog.AvailableLocations {
		if _, ok := grouped[location]; ok {
			order = append(order, location)
			seen[location] = true
		}
	}

	extras := make([]string, 0)
	for name := range grouped {
		if !seen[name] {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)

	return append(order, extras...)
}
