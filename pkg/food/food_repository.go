package food

import (
	"context"

	"github.com/Aamirnihanms/RestuarentFoodOrder/entities"
	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		AddFood(ctx context.Context, food *entities.Food) error
		GetFoods(ctx context.Context) ([]*entities.Food, error)
		GetFoodByID(ctx context.Context, id string) (*entities.Food, error)
		UpdateFood(ctx context.Context, food *entities.Food) error
		DeleteFood(ctx context.Context, id string) error

		GetReviews(ctx context.Context, foodID string) ([]*entities.FoodReview, error)
		GetReviewByFoodAndUser(ctx context.Context, foodID, userID string) (*entities.FoodReview, error)
		AddReview(ctx context.Context, review *entities.FoodReview, reviews int, rating float64) error
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepository) GetFoods(ctx context.Context) ([]*entities.Food, error) {
	var foods []*entities.Food
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) GetFoodByID(ctx context.Context, id string) (*entities.Food, error) {
	var food entities.Food
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) UpdateFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Save(food).Error
}

func (r *foodRepository) DeleteFood(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Food{}).Error
}

func (r *foodRepository) GetReviews(ctx context.Context, foodID string) ([]*entities.FoodReview, error) {
	var reviews []*entities.FoodReview
	if err := r.db.WithContext(ctx).
		Where("food_id = ?", foodID).
		Order("created_at asc").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *foodRepository) GetReviewByFoodAndUser(ctx context.Context, foodID, userID string) (*entities.FoodReview, error) {
	var review entities.FoodReview
	if err := r.db.WithContext(ctx).
		Where("food_id = ? AND user_id = ?", foodID, userID).
		First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// AddReview persists the review together with the recomputed aggregates so the
// count and mean never drift from the review list.
func (r *foodRepository) AddReview(ctx context.Context, review *entities.FoodReview, reviews int, rating float64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}
		return tx.Model(&entities.Food{}).
			Where("id = ?", review.FoodID).
			Updates(map[string]interface{}{"reviews": reviews, "rating": rating}).Error
	})
}
