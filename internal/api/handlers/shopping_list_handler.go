package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/cladjidane/k-stockhome/domain"
	"github.com/cladjidane/k-stockhome/internal/api/presenters"
	"github.com/cladjidane/k-stockhome/pkg/shoppinglist"
)

type (
	ShoppingListHandler interface {
		GetItems(c *fiber.Ctx) error
		AddItem(c *fiber.Ctx) error
		UpdateItem(c *fiber.Ctx) error
		RemoveItem(c *fiber.Ctx) error
		ValidatePurchase(c *fiber.Ctx) error
		GetLowStockSuggestions(c *fiber.Ctx) error
		ShareList(c *fiber.Ctx) error
	}

	shoppingListHandler struct {
		shoppingListService shoppinglist.ShoppingListService
		validator           *validator.Validate
	}
)

func NewShoppingListHandler(shoppingListService shoppinglist.ShoppingListService, validator *validator.Validate) ShoppingListHandler {
	return &shoppingListHandler{
		shoppingListService: shoppingListService,
		validator:           validator,
	}
}

func (h *shoppingListHandler) GetItems(c *fiber.Ctx) error {
	items, err := h.shoppingListService.GetItems(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetShoppingList, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetShoppingList)
}

func (h *shoppingListHandler) AddItem(c *fiber.Ctx) error {
	req := new(domain.AddShoppingItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddShoppingItem, err)
	}

	res, err := h.shoppingListService.AddItem(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddShoppingItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddShoppingItem)
}

func (h *shoppingListHandler) UpdateItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	req := new(domain.UpdateShoppingItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateShoppingItem, err)
	}

	if err := h.shoppingListService.UpdateItem(c.Context(), itemID, *req); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateShoppingItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateShoppingItem)
}

func (h *shoppingListHandler) RemoveItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	if err := h.shoppingListService.RemoveItem(c.Context(), itemID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedRemoveShoppingItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveShoppingItem)
}

func (h *shoppingListHandler) ValidatePurchase(c *fiber.Ctx) error {
	itemID := c.Params("id")
	req := new(domain.ValidatePurchaseRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedValidatePurchase, err)
	}

	if err := h.shoppingListService.ValidatePurchase(c.Context(), itemID, *req); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedValidatePurchase, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessValidatePurchase)
}

func (h *shoppingListHandler) GetLowStockSuggestions(c *fiber.Ctx) error {
	suggestions, err := h.shoppingListService.GetLowStockSuggestions(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLowStock, err)
	}

	return presenters.SuccessResponse(c, suggestions, fiber.StatusOK, domain.MessageSuccessGetLowStock)
}

func (h *shoppingListHandler) ShareList(c *fiber.Ctx) error {
	req := new(domain.ShareShoppingListRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedShareList, err)
	}

	if err := h.shoppingListService.ShareList(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedShareList, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessShareList)
}
