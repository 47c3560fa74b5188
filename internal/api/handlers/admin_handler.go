package handlers

import (
	"fmt"
	"strconv"

	"github.com/Aamirnihanms/RestuarentFoodOrder/domain"
	"github.com/Aamirnihanms/RestuarentFoodOrder/internal/api/presenters"
	"github.com/Aamirnihanms/RestuarentFoodOrder/pkg/admin"
	"github.com/Aamirnihanms/RestuarentFoodOrder/pkg/auditlog"
	"github.com/Aamirnihanms/RestuarentFoodOrder/pkg/user"
	"github.com/gofiber/fiber/v2"
)

type (
	AdminHandler interface {
		GetDashboard(c *fiber.Ctx) error
		GetAllUsers(c *fiber.Ctx) error
		SoftDeleteUser(c *fiber.Ctx) error
		RestoreUser(c *fiber.Ctx) error
		GetReviewAnalytics(c *fiber.Ctx) error
		GetLogs(c *fiber.Ctx) error
	}

	adminHandler struct {
		adminService admin.AdminService
		userService  user.UserService
		auditService auditlog.AuditService
	}
)

func NewAdminHandler(adminService admin.AdminService, userService user.UserService, auditService auditlog.AuditService) AdminHandler {
	return &adminHandler{
		adminService: adminService,
		userService:  userService,
		auditService: auditService,
	}
}

func (h *adminHandler) GetDashboard(c *fiber.Ctx) error {
	res, err := h.adminService.GetDashboard(c.Context())
	if err != nil {
		h.auditService.Record(failedAuditEntry(c, "Get Dashboard Error", err.Error()))
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedGetDashboard, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}

func (h *adminHandler) GetAllUsers(c *fiber.Ctx) error {
	res, err := h.userService.GetAllUsers(c.Context())
	if err != nil {
		h.auditService.Record(failedAuditEntry(c, "Get All Users Error", err.Error()))
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedGetAllUsers, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAllUsers)
}

func (h *adminHandler) SoftDeleteUser(c *fiber.Ctx) error {
	userID := c.Params("id")

	if err := h.userService.SoftDeleteUser(c.Context(), userID); err != nil {
		h.auditService.Record(failedAuditEntry(c, "Soft Delete User Attempt",
			fmt.Sprintf("Failed — %s (%s)", err.Error(), userID)))
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedSoftDeleteUser, err)
	}

	h.auditService.Record(auditEntry(c, "Soft Delete User", fmt.Sprintf("User %s marked as deleted", userID)))
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSoftDeleteUser)
}

func (h *adminHandler) RestoreUser(c *fiber.Ctx) error {
	userID := c.Params("id")

	if err := h.userService.RestoreUser(c.Context(), userID); err != nil {
		h.auditService.Record(failedAuditEntry(c, "Restore User Attempt",
			fmt.Sprintf("Failed — %s (%s)", err.Error(), userID)))
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedRestoreUser, err)
	}

	h.auditService.Record(auditEntry(c, "Restore User", fmt.Sprintf("User %s restored", userID)))
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRestoreUser)
}

func (h *adminHandler) GetReviewAnalytics(c *fiber.Ctx) error {
	res, err := h.adminService.GetReviewAnalytics(c.Context())
	if err != nil {
		h.auditService.Record(failedAuditEntry(c, "Get Review Analytics Error", err.Error()))
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedGetReviewAnalytics, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReviewAnalytics)
}

func (h *adminHandler) GetLogs(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "50"))
	if err != nil || limit < 1 {
		limit = 50
	}

	logs, count, err := h.auditService.GetLogs(c.Context(), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedGetLogs, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"logs": logs,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetLogs)
}
