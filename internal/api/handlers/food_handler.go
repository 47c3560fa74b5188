package handlers

import (
	"fmt"

	"github.com/Aamirnihanms/RestuarentFoodOrder/domain"
	"github.com/Aamirnihanms/RestuarentFoodOrder/internal/api/presenters"
	"github.com/Aamirnihanms/RestuarentFoodOrder/pkg/auditlog"
	"github.com/Aamirnihanms/RestuarentFoodOrder/pkg/food"
	"github.com/Aamirnihanms/RestuarentFoodOrder/pkg/user"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		GetFoods(c *fiber.Ctx) error
		GetFoodByID(c *fiber.Ctx) error
		AddFood(c *fiber.Ctx) error
		UpdateFood(c *fiber.Ctx) error
		DeleteFood(c *fiber.Ctx) error
		AddReview(c *fiber.Ctx) error
		UploadFoodImage(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService  food.FoodService
		userService  user.UserService
		auditService auditlog.AuditService
		validator    *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, userService user.UserService, auditService auditlog.AuditService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService:  foodService,
		userService:  userService,
		auditService: auditService,
		validator:    validator,
	}
}

func (h *foodHandler) GetFoods(c *fiber.Ctx) error {
	foods, err := h.foodService.GetFoods(c.Context())
	if err != nil {
		h.auditService.Record(failedAuditEntry(c, "Get Foods Error", err.Error()))
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedGetFoods, err)
	}

	return presenters.SuccessResponse(c, foods, fiber.StatusOK, domain.MessageSuccessGetFoods)
}

func (h *foodHandler) GetFoodByID(c *fiber.Ctx) error {
	foodID := c.Params("id")

	item, err := h.foodService.GetFoodByID(c.Context(), foodID)
	if err != nil {
		h.auditService.Record(failedAuditEntry(c, "Get Food By ID Error", err.Error()))
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedGetFoods, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessGetFoods)
}

func (h *foodHandler) AddFood(c *fiber.Ctx) error {
	req := new(domain.AddFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFood, err)
	}

	res, err := h.foodService.AddFood(c.Context(), *req)
	if err != nil {
		h.auditService.Record(failedAuditEntry(c, "Add Food Error", err.Error()))
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedAddFood, err)
	}

	h.auditService.Record(auditEntry(c, "Add Food", fmt.Sprintf("Added new food item: %s", res.Name)))
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFood)
}

func (h *foodHandler) UpdateFood(c *fiber.Ctx) error {
	foodID := c.Params("id")
	req := new(domain.UpdateFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFood, err)
	}

	res, err := h.foodService.UpdateFood(c.Context(), foodID, *req)
	if err != nil {
		h.auditService.Record(failedAuditEntry(c, "Update Food Attempt", fmt.Sprintf("Failed to update food %s: %s", foodID, err.Error())))
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedUpdateFood, err)
	}

	h.auditService.Record(auditEntry(c, "Update Food", fmt.Sprintf("Updated food item: %s", res.Name)))
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateFood)
}

func (h *foodHandler) DeleteFood(c *fiber.Ctx) error {
	foodID := c.Params("id")

	name, err := h.foodService.DeleteFood(c.Context(), foodID)
	if err != nil {
		h.auditService.Record(failedAuditEntry(c, "Delete Food Attempt", fmt.Sprintf("Failed to delete food %s: %s", foodID, err.Error())))
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedDeleteFood, err)
	}

	h.auditService.Record(auditEntry(c, "Delete Food", fmt.Sprintf("Deleted food item: %s", name)))
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFood)
}

func (h *foodHandler) AddReview(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	foodID := c.Params("id")
	req := new(domain.AddReviewRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddReview, err)
	}

	profile, err := h.userService.Me(c.Context(), userID)
	if err != nil {
		h.auditService.Record(failedAuditEntry(c, "Add Food Review Error", err.Error()))
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedAddReview, err)
	}

	res, err := h.foodService.AddReview(c.Context(), foodID, *req, userID, profile.Name)
	if err != nil {
		h.auditService.Record(failedAuditEntry(c, "Add Food Review Error", err.Error()))
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedAddReview, err)
	}

	h.auditService.Record(auditEntry(c, "Add Food Review", fmt.Sprintf("User reviewed food %s with %d stars", foodID, req.Rating)))
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddReview)
}

func (h *foodHandler) UploadFoodImage(c *fiber.Ctx) error {
	req := new(domain.UploadFoodImageRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	imageURL, err := h.foodService.UploadFoodImage(c.Context(), *req)
	if err != nil {
		h.auditService.Record(failedAuditEntry(c, "Upload Food Image Error", err.Error()))
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedUploadImage, err)
	}

	h.auditService.Record(auditEntry(c, "Upload Food Image", fmt.Sprintf("Uploaded image for food %s", req.FoodID)))
	return presenters.SuccessResponse(c, fiber.Map{"image_url": imageURL}, fiber.StatusOK, domain.MessageSuccessUploadImage)
}
