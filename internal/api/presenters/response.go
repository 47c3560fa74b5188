package presenters

import (
	"errors"

	"github.com/Aamirnihanms/RestuarentFoodOrder/domain"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, code int, message string) error {
	return c.Status(code).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	res := Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}
	return c.Status(code).JSON(res)
}

// StatusForError maps domain errors onto HTTP statuses. Anything unmapped is a
// server-side failure.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrFoodNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrCartItemNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyReviewed),
		errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrCredentialsInvalid),
		errors.Is(err, domain.ErrAccountDeleted),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenNotFound):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrInvalidFoodID),
		errors.Is(err, domain.ErrMissingFoodFields),
		errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrEmptySelection),
		errors.Is(err, domain.ErrNoItemsToOrder):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
