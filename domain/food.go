package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetFoods    = "food items retrieved successfully"
	MessageSuccessAddFood     = "food item added successfully"
	MessageSuccessUpdateFood  = "food item updated successfully"
	MessageSuccessDeleteFood  = "food deleted successfully"
	MessageSuccessAddReview   = "review added successfully"
	MessageSuccessUploadImage = "food image uploaded successfully"

	MessageFailedGetFoods    = "failed to retrieve food items"
	MessageFailedAddFood     = "please fill all required fields"
	MessageFailedUpdateFood  = "failed to update food item"
	MessageFailedDeleteFood  = "failed to delete food item"
	MessageFailedAddReview   = "failed to add review"
	MessageFailedUploadImage = "failed to upload food image"

	ErrFoodNotFound      = errors.New("food item not found")
	ErrInvalidFoodID     = errors.New("invalid food ID")
	ErrMissingFoodFields = errors.New("please fill all required fields")
	ErrAlreadyReviewed   = errors.New("you have already reviewed this food")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
)

type (
	AddFoodRequest struct {
		Name            string  `json:"name" validate:"required"`
		Description     string  `json:"description" validate:"required"`
		LongDescription string  `json:"long_description"`
		Category        string  `json:"category" validate:"required"`
		Price           float64 `json:"price" validate:"required,gt=0"`
		PrepTime        string  `json:"prep_time"`
		Available       *bool   `json:"available"`
		ImageURL        string  `json:"image_url"`
		Images          string  `json:"images"`
		NutritionInfo   string  `json:"nutrition_info"`
		Ingredients     string  `json:"ingredients"`
		Sizes           string  `json:"sizes"`
		Allergens       string  `json:"allergens"`
	}

	UpdateFoodRequest struct {
		Name            string   `json:"name" validate:"omitempty"`
		Description     string   `json:"description" validate:"omitempty"`
		LongDescription string   `json:"long_description" validate:"omitempty"`
		Category        string   `json:"category" validate:"omitempty"`
		Price           *float64 `json:"price" validate:"omitempty,gt=0"`
		PrepTime        string   `json:"prep_time" validate:"omitempty"`
		Available       *bool    `json:"available"`
		ImageURL        string   `json:"image_url" validate:"omitempty"`
		Images          string   `json:"images" validate:"omitempty"`
		NutritionInfo   string   `json:"nutrition_info" validate:"omitempty"`
		Ingredients     string   `json:"ingredients" validate:"omitempty"`
		Sizes           string   `json:"sizes" validate:"omitempty"`
		Allergens       string   `json:"allergens" validate:"omitempty"`
	}

	AddReviewRequest struct {
		Rating  int    `json:"rating" validate:"required,min=1,max=5"`
		Comment string `json:"comment"`
	}

	ReviewResponse struct {
		ID        string    `json:"id"`
		UserID    string    `json:"user_id"`
		UserName  string    `json:"user_name"`
		Rating    int       `json:"rating"`
		Comment   string    `json:"comment"`
		CreatedAt time.Time `json:"created_at"`
	}

	AddReviewResponse struct {
		Reviews       []ReviewResponse `json:"reviews"`
		AverageRating float64          `json:"average_rating"`
	}

	UploadFoodImageRequest struct {
		FoodID string                `json:"food_id" form:"food_id" validate:"required,uuid"`
		Image  *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	FoodResponse struct {
		ID              string    `json:"id"`
		Name            string    `json:"name"`
		Description     string    `json:"description"`
		LongDescription string    `json:"long_description,omitempty"`
		Category        string    `json:"category"`
		Price           float64   `json:"price"`
		PrepTime        string    `json:"prep_time,omitempty"`
		Available       bool      `json:"available"`
		ImageURL        string    `json:"image_url,omitempty"`
		Images          string    `json:"images,omitempty"`
		NutritionInfo   string    `json:"nutrition_info,omitempty"`
		Ingredients     string    `json:"ingredients,omitempty"`
		Sizes           string    `json:"sizes,omitempty"`
		Allergens       string    `json:"allergens,omitempty"`
		Rating          float64   `json:"rating"`
		Reviews         int       `json:"reviews"`
		CreatedAt       time.Time `json:"created_at"`
	}
)
