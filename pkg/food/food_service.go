package food

import (
	"context"
	"errors"
	"fmt"

	"github.com/Aamirnihanms/RestuarentFoodOrder/domain"
	"github.com/Aamirnihanms/RestuarentFoodOrder/entities"
	"github.com/Aamirnihanms/RestuarentFoodOrder/internal/utils/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodService interface {
		AddFood(ctx context.Context, req domain.AddFoodRequest) (domain.FoodResponse, error)
		GetFoods(ctx context.Context) ([]domain.FoodResponse, error)
		GetFoodByID(ctx context.Context, id string) (domain.FoodResponse, error)
		UpdateFood(ctx context.Context, id string, req domain.UpdateFoodRequest) (domain.FoodResponse, error)
		DeleteFood(ctx context.Context, id string) (string, error)
		AddReview(ctx context.Context, foodID string, req domain.AddReviewRequest, userID, userName string) (domain.AddReviewResponse, error)
		UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest) (string, error)
	}

	foodService struct {
		foodRepository FoodRepository
		s3             storage.AwsS3
	}
)

func NewFoodService(foodRepository FoodRepository, s3 storage.AwsS3) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		s3:             s3,
	}
}

func (s *foodService) AddFood(ctx context.Context, req domain.AddFoodRequest) (domain.FoodResponse, error) {
	if req.Name == "" || req.Category == "" || req.Price <= 0 || req.Description == "" {
		return domain.FoodResponse{}, domain.ErrMissingFoodFields
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	food := &entities.Food{
		ID:              uuid.New(),
		Name:            req.Name,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Category:        req.Category,
		Price:           req.Price,
		PrepTime:        req.PrepTime,
		Available:       available,
		ImageURL:        req.ImageURL,
		Images:          req.Images,
		NutritionInfo:   req.NutritionInfo,
		Ingredients:     req.Ingredients,
		Sizes:           req.Sizes,
		Allergens:       req.Allergens,
	}

	if err := s.foodRepository.AddFood(ctx, food); err != nil {
		return domain.FoodResponse{}, err
	}

	return toFoodResponse(food), nil
}

func (s *foodService) GetFoods(ctx context.Context) ([]domain.FoodResponse, error) {
	foods, err := s.foodRepository.GetFoods(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.FoodResponse, 0, len(foods))
	for _, food := range foods {
		response = append(response, toFoodResponse(food))
	}
	return response, nil
}

func (s *foodService) GetFoodByID(ctx context.Context, id string) (domain.FoodResponse, error) {
	food, err := s.getFood(ctx, id)
	if err != nil {
		return domain.FoodResponse{}, err
	}
	return toFoodResponse(food), nil
}

func (s *foodService) UpdateFood(ctx context.Context, id string, req domain.UpdateFoodRequest) (domain.FoodResponse, error) {
	food, err := s.getFood(ctx, id)
	if err != nil {
		return domain.FoodResponse{}, err
	}

	if req.Name != "" {
		food.Name = req.Name
	}
	if req.Description != "" {
		food.Description = req.Description
	}
	if req.LongDescription != "" {
		food.LongDescription = req.LongDescription
	}
	if req.Category != "" {
		food.Category = req.Category
	}
	if req.Price != nil {
		food.Price = *req.Price
	}
	if req.PrepTime != "" {
		food.PrepTime = req.PrepTime
	}
	if req.Available != nil {
		food.Available = *req.Available
	}
	if req.ImageURL != "" {
		food.ImageURL = req.ImageURL
	}
	if req.Images != "" {
		food.Images = req.Images
	}
	if req.NutritionInfo != "" {
		food.NutritionInfo = req.NutritionInfo
	}
	if req.Ingredients != "" {
		food.Ingredients = req.Ingredients
	}
	if req.Sizes != "" {
		food.Sizes = req.Sizes
	}
	if req.Allergens != "" {
		food.Allergens = req.Allergens
	}

	if err := s.foodRepository.UpdateFood(ctx, food); err != nil {
		return domain.FoodResponse{}, err
	}
	return toFoodResponse(food), nil
}

func (s *foodService) DeleteFood(ctx context.Context, id string) (string, error) {
	food, err := s.getFood(ctx, id)
	if err != nil {
		return "", err
	}

	if food.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(food.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return food.Name, s.foodRepository.DeleteFood(ctx, id)
}

// AddReview enforces one review per (food, user) pair and recomputes the
// aggregate count and arithmetic-mean rating from the full review list.
func (s *foodService) AddReview(ctx context.Context, foodID string, req domain.AddReviewRequest, userID, userName string) (domain.AddReviewResponse, error) {
	food, err := s.getFood(ctx, foodID)
	if err != nil {
		return domain.AddReviewResponse{}, err
	}

	if req.Rating < 1 || req.Rating > 5 {
		return domain.AddReviewResponse{}, domain.ErrInvalidRating
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.AddReviewResponse{}, domain.ErrParseUUID
	}

	_, err = s.foodRepository.GetReviewByFoodAndUser(ctx, foodID, userID)
	if err == nil {
		return domain.AddReviewResponse{}, domain.ErrAlreadyReviewed
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.AddReviewResponse{}, err
	}

	existing, err := s.foodRepository.GetReviews(ctx, foodID)
	if err != nil {
		return domain.AddReviewResponse{}, err
	}

	review := &entities.FoodReview{
		ID:       uuid.New(),
		FoodID:   food.ID,
		UserID:   userUUID,
		UserName: userName,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}

	all := append(existing, review)
	sum := 0
	for _, r := range all {
		sum += r.Rating
	}
	rating := float64(sum) / float64(len(all))

	if err := s.foodRepository.AddReview(ctx, review, len(all), rating); err != nil {
		return domain.AddReviewResponse{}, err
	}

	reviews := make([]domain.ReviewResponse, 0, len(all))
	for _, r := range all {
		reviews = append(reviews, domain.ReviewResponse{
			ID:        r.ID.String(),
			UserID:    r.UserID.String(),
			UserName:  r.UserName,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
		})
	}

	return domain.AddReviewResponse{
		Reviews:       reviews,
		AverageRating: rating,
	}, nil
}

func (s *foodService) UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest) (string, error) {
	food, err := s.getFood(ctx, req.FoodID)
	if err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("food-%s", food.ID.String())
	var objectKey string
	var uploadErr error

	if food.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(food.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "foods", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "foods", storage.AllowImage...)
	}
	if uploadErr != nil {
		return "", uploadErr
	}

	food.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.foodRepository.UpdateFood(ctx, food); err != nil {
		return "", err
	}
	return food.ImageURL, nil
}

func (s *foodService) getFood(ctx context.Context, id string) (*entities.Food, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidFoodID
	}

	food, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodNotFound
		}
		return nil, err
	}
	return food, nil
}

func toFoodResponse(food *entities.Food) domain.FoodResponse {
	return domain.FoodResponse{
		ID:              food.ID.String(),
		Name:            food.Name,
		Description:     food.Description,
		LongDescription: food.LongDescription,
		Category:        food.Category,
		Price:           food.Price,
		PrepTime:        food.PrepTime,
		Available:       food.Available,
		ImageURL:        food.ImageURL,
		Images:          food.Images,
		NutritionInfo:   food.NutritionInfo,
		Ingredients:     food.Ingredients,
		Sizes:           food.Sizes,
		Allergens:       food.Allergens,
		Rating:          food.Rating,
		Reviews:         food.Reviews,
		CreatedAt:       food.CreatedAt,
	}
}
