package handlers

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/cladjidane/k-stockhome/domain"
	"github.com/cladjidane/k-stockhome/internal/api/presenters"
	"github.com/cladjidane/k-stockhome/pkg/product"
)

type (
	ProductHandler interface {
		AddProduct(c *fiber.Ctx) error
		UpdateProduct(c *fiber.Ctx) error
		DeleteProduct(c *fiber.Ctx) error
		GetProducts(c *fiber.Ctx) error
		GetProductDetails(c *fiber.Ctx) error
		GetGroupedProducts(c *fiber.Ctx) error
		AdjustQuantity(c *fiber.Ctx) error
		ScanBarcode(c *fiber.Ctx) error
		CheckBarcode(c *fiber.Ctx) error
	}

	productHandler struct {
		productService product.ProductService
		validator      *validator.Validate
	}
)

func NewProductHandler(productService product.ProductService, validator *validator.Validate) ProductHandler {
	return &productHandler{
		productService: productService,
		validator:      validator,
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrShoppingItemNotFound),
		errors.Is(err, domain.ErrProductNotInBase):
		return fiber.StatusNotFound
	default:
		return fiber.StatusBadRequest
	}
}

func (h *productHandler) AddProduct(c *fiber.Ctx) error {
	req := new(domain.AddProductRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddProduct, err)
	}

	res, err := h.productService.AddProduct(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddProduct, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddProduct)
}

func (h *productHandler) UpdateProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	req := new(domain.UpdateProductRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProduct, err)
	}

	if err := h.productService.UpdateProduct(c.Context(), productID, *req); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateProduct, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateProduct)
}

func (h *productHandler) DeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")

	if err := h.productService.DeleteProduct(c.Context(), productID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeleteProduct, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteProduct)
}

func (h *productHandler) GetProducts(c *fiber.Ctx) error {
	search := c.Query("search")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	items, count, err := h.productService.GetProducts(c.Context(), search, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProducts, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *productHandler) GetProductDetails(c *fiber.Ctx) error {
	productID := c.Params("id")

	item, err := h.productService.GetProductByID(c.Context(), productID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetProducts, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *productHandler) GetGroupedProducts(c *fiber.Ctx) error {
	search := c.Query("search")

	var res domain.GroupedProductsResponse
	var err error

	switch c.Query("by", "category") {
	case "category":
		res, err = h.productService.GetGroupedByCategory(c.Context(), search)
	case "location":
		res, err = h.productService.GetGroupedByLocation(c.Context(), search)
	default:
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGroupProducts,
			errors.New("unknown grouping key, expected category or location"))
	}

	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGroupProducts, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGroupProducts)
}

func (h *productHandler) AdjustQuantity(c *fiber.Ctx) error {
	productID := c.Params("id")
	req := new(domain.AdjustQuantityRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAdjustQuantity, err)
	}

	res, err := h.productService.AdjustQuantity(c.Context(), productID, req.Delta)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAdjustQuantity, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAdjustQuantity)
}

func (h *productHandler) ScanBarcode(c *fiber.Ctx) error {
	barcode := c.Params("barcode")

	res, err := h.productService.ScanBarcode(c.Context(), barcode)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedScanBarcode, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessScanBarcode)
}

func (h *productHandler) CheckBarcode(c *fiber.Ctx) error {
	barcode := c.Params("barcode")
	excludeID := c.Query("excludeId")

	res, err := h.productService.CheckBarcode(c.Context(), barcode, excludeID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCheckBarcode, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCheckBarcode)
}
