package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessGetMe          = "profile retrieved successfully"
	MessageSuccessUpdateUser     = "profile updated successfully"
	MessageSuccessAddToCart      = "item added to cart"
	MessageSuccessGetCart        = "cart retrieved successfully"
	MessageSuccessUpdateCartItem = "cart item updated"
	MessageSuccessRemoveCartItem = "item removed from cart"
	MessageSuccessClearCart      = "cart cleared"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "invalid email or password"
	MessageFailedGetMe          = "failed to retrieve profile"
	MessageFailedUpdateUser     = "failed to update profile"
	MessageFailedAddToCart      = "failed to add item to cart"
	MessageFailedGetCart        = "failed to retrieve cart"
	MessageFailedUpdateCartItem = "failed to update cart item"
	MessageFailedRemoveCartItem = "failed to remove item from cart"
	MessageFailedClearCart      = "failed to clear cart"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrCredentialsInvalid = errors.New("invalid email or password")
	ErrAccountDeleted     = errors.New("account has been deleted")
	ErrCartItemNotFound   = errors.New("cart item not found")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	AuthResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	UserResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		Role      string    `json:"role"`
		Address   string    `json:"address,omitempty"`
		IsActive  bool      `json:"is_active"`
		IsDeleted bool      `json:"is_deleted"`
		CreatedAt time.Time `json:"created_at"`
	}

	UpdateUserRequest struct {
		Name    string `json:"name" validate:"omitempty"`
		Address string `json:"address" validate:"omitempty"`
	}

	AddToCartRequest struct {
		FoodID   string `json:"food_id" validate:"required,uuid"`
		Quantity int    `json:"quantity" validate:"required,min=1"`
		Size     string `json:"size"`
	}

	UpdateCartItemRequest struct {
		Quantity int `json:"quantity" validate:"required,min=1"`
	}

	CartItemResponse struct {
		ID         string  `json:"id"`
		FoodID     string  `json:"food_id"`
		Name       string  `json:"name"`
		Category   string  `json:"category,omitempty"`
		Price      float64 `json:"price"`
		Quantity   int     `json:"quantity"`
		Size       string  `json:"size"`
		ImageURL   string  `json:"image_url,omitempty"`
		PrepTime   string  `json:"prep_time,omitempty"`
		TotalPrice float64 `json:"total_price"`
	}
)
