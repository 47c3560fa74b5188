package handlers

import (
	"fmt"

	"github.com/Aamirnihanms/RestuarentFoodOrder/domain"
	"github.com/Aamirnihanms/RestuarentFoodOrder/internal/api/presenters"
	"github.com/Aamirnihanms/RestuarentFoodOrder/pkg/auditlog"
	"github.com/Aamirnihanms/RestuarentFoodOrder/pkg/order"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	OrderHandler interface {
		CreateOrder(c *fiber.Ctx) error
		GetMyOrders(c *fiber.Ctx) error
		GetAllOrders(c *fiber.Ctx) error
		UpdateOrderStatus(c *fiber.Ctx) error
	}

	orderHandler struct {
		orderService order.OrderService
		auditService auditlog.AuditService
		validator    *validator.Validate
	}
)

func NewOrderHandler(orderService order.OrderService, auditService auditlog.AuditService, validator *validator.Validate) OrderHandler {
	return &orderHandler{
		orderService: orderService,
		auditService: auditService,
		validator:    validator,
	}
}

func (h *orderHandler) CreateOrder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateOrderRequest)

	if err := c.BodyParser(req); err != nil {
		h.auditService.Record(failedAuditEntry(c, "Order Creation", "Order failed — malformed request body"))
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		h.auditService.Record(failedAuditEntry(c, "Order Creation", fmt.Sprintf("Order failed — %s", err.Error())))
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateOrder, err)
	}

	res, err := h.orderService.CreateOrder(c.Context(), userID, *req)
	if err != nil {
		h.auditService.Record(failedAuditEntry(c, "Order Creation", fmt.Sprintf("Order failed — %s", err.Error())))
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedCreateOrder, err)
	}

	h.auditService.Record(auditEntry(c, "Order Placed",
		fmt.Sprintf("Order placed successfully — %d items, total %.2f", len(res.Items), res.TotalPrice)))
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateOrder)
}

func (h *orderHandler) GetMyOrders(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	orders, err := h.orderService.GetMyOrders(c.Context(), userID)
	if err != nil {
		h.auditService.Record(failedAuditEntry(c, "Get My Orders Error", err.Error()))
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedGetMyOrders, err)
	}

	h.auditService.Record(auditEntry(c, "View My Orders", fmt.Sprintf("User viewed %d orders", len(orders))))
	return presenters.SuccessResponse(c, orders, fiber.StatusOK, domain.MessageSuccessGetMyOrders)
}

func (h *orderHandler) GetAllOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.GetAllOrders(c.Context())
	if err != nil {
		h.auditService.Record(failedAuditEntry(c, "Get All Orders Error", err.Error()))
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedGetAllOrders, err)
	}

	return presenters.SuccessResponse(c, orders, fiber.StatusOK, domain.MessageSuccessGetAllOrders)
}

func (h *orderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")
	req := new(domain.UpdateOrderStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateOrderStatus, err)
	}

	res, err := h.orderService.UpdateOrderStatus(c.Context(), orderID, *req)
	if err != nil {
		h.auditService.Record(failedAuditEntry(c, "Update Order Status Attempt",
			fmt.Sprintf("Failed — %s (%s)", err.Error(), orderID)))
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedUpdateOrderStatus, err)
	}

	h.auditService.Record(auditEntry(c, "Update Order Status",
		fmt.Sprintf("Order %s marked as %s", res.ID, res.Status)))
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateOrderStatus)
}
