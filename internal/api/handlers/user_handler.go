package handlers

import (
	"fmt"

	"github.com/Aamirnihanms/RestuarentFoodOrder/domain"
	"github.com/Aamirnihanms/RestuarentFoodOrder/internal/api/presenters"
	"github.com/Aamirnihanms/RestuarentFoodOrder/pkg/auditlog"
	"github.com/Aamirnihanms/RestuarentFoodOrder/pkg/user"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		Register(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
		UpdateUser(c *fiber.Ctx) error

		AddToCart(c *fiber.Ctx) error
		GetCart(c *fiber.Ctx) error
		UpdateCartItem(c *fiber.Ctx) error
		RemoveCartItem(c *fiber.Ctx) error
		ClearCart(c *fiber.Ctx) error
	}

	userHandler struct {
		userService  user.UserService
		auditService auditlog.AuditService
		validator    *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, auditService auditlog.AuditService, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService:  userService,
		auditService: auditService,
		validator:    validator,
	}
}

func (h *userHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
	}

	res, err := h.userService.Register(c.Context(), *req)
	if err != nil {
		h.auditService.Record(failedAuditEntry(c, "User Registration Error", err.Error()))
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedRegister, err)
	}

	h.auditService.Record(auditEntry(c, "User Registered", fmt.Sprintf("New user registered: %s", res.User.Email)))
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRegister)
}

func (h *userHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	res, err := h.userService.Login(c.Context(), *req)
	if err != nil {
		h.auditService.Record(failedAuditEntry(c, "User Login Error", fmt.Sprintf("Login failed for %s", req.Email)))
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedLogin, err)
	}

	h.auditService.Record(auditEntry(c, "User Login", fmt.Sprintf("User logged in: %s", req.Email)))
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}

func (h *userHandler) Me(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.userService.Me(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedGetMe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMe)
}

func (h *userHandler) UpdateUser(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UpdateUserRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateUser, err)
	}

	res, err := h.userService.UpdateUser(c.Context(), userID, *req)
	if err != nil {
		h.auditService.Record(failedAuditEntry(c, "Update Profile Error", err.Error()))
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedUpdateUser, err)
	}

	h.auditService.Record(auditEntry(c, "Update Profile", "User updated profile"))
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateUser)
}

func (h *userHandler) AddToCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddToCartRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddToCart, err)
	}

	res, err := h.userService.AddToCart(c.Context(), userID, *req)
	if err != nil {
		h.auditService.Record(failedAuditEntry(c, "Add To Cart Error", err.Error()))
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedAddToCart, err)
	}

	h.auditService.Record(auditEntry(c, "Add To Cart", fmt.Sprintf("Added %s x%d to cart", res.Name, res.Quantity)))
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddToCart)
}

func (h *userHandler) GetCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.userService.GetCart(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedGetCart, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCart)
}

func (h *userHandler) UpdateCartItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")
	req := new(domain.UpdateCartItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCartItem, err)
	}

	res, err := h.userService.UpdateCartItem(c.Context(), userID, itemID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedUpdateCartItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateCartItem)
}

func (h *userHandler) RemoveCartItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	if err := h.userService.RemoveCartItem(c.Context(), userID, itemID); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedRemoveCartItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveCartItem)
}

func (h *userHandler) ClearCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.userService.ClearCart(c.Context(), userID); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedClearCart, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessClearCart)
}
