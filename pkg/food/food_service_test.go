package food

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/Aamirnihanms/RestuarentFoodOrder/domain"
	"github.com/Aamirnihanms/RestuarentFoodOrder/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeFoodRepository struct {
	foods   map[string]*entities.Food
	reviews map[string][]*entities.FoodReview

	savedReviews int
	savedRating  float64
}

func newFakeFoodRepository() *fakeFoodRepository {
	return &fakeFoodRepository{
		foods:   make(map[string]*entities.Food),
		reviews: make(map[string][]*entities.FoodReview),
	}
}

func (f *fakeFoodRepository) AddFood(ctx context.Context, food *entities.Food) error {
	f.foods[food.ID.String()] = food
	return nil
}

func (f *fakeFoodRepository) GetFoods(ctx context.Context) ([]*entities.Food, error) {
	var foods []*entities.Food
	for _, food := range f.foods {
		foods = append(foods, food)
	}
	return foods, nil
}

func (f *fakeFoodRepository) GetFoodByID(ctx context.Context, id string) (*entities.Food, error) {
	food, ok := f.foods[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return food, nil
}

func (f *fakeFoodRepository) UpdateFood(ctx context.Context, food *entities.Food) error {
	f.foods[food.ID.String()] = food
	return nil
}

func (f *fakeFoodRepository) DeleteFood(ctx context.Context, id string) error {
	delete(f.foods, id)
	return nil
}

func (f *fakeFoodRepository) GetReviews(ctx context.Context, foodID string) ([]*entities.FoodReview, error) {
	return f.reviews[foodID], nil
}

func (f *fakeFoodRepository) GetReviewByFoodAndUser(ctx context.Context, foodID, userID string) (*entities.FoodReview, error) {
	for _, review := range f.reviews[foodID] {
		if review.UserID.String() == userID {
			return review, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeFoodRepository) AddReview(ctx context.Context, review *entities.FoodReview, reviews int, rating float64) error {
	foodID := review.FoodID.String()
	f.reviews[foodID] = append(f.reviews[foodID], review)
	f.savedReviews = reviews
	f.savedRating = rating
	if food, ok := f.foods[foodID]; ok {
		food.Reviews = reviews
		food.Rating = rating
	}
	return nil
}

func seedFood(repo *fakeFoodRepository) *entities.Food {
	food := &entities.Food{
		ID:          uuid.New(),
		Name:        "Paneer Tikka",
		Description: "Char-grilled paneer skewers",
		Category:    "Starters",
		Price:       180,
		Available:   true,
	}
	repo.foods[food.ID.String()] = food
	return food
}

func TestAddFoodMissingFields(t *testing.T) {
	tests := []struct {
		name string
		req  domain.AddFoodRequest
	}{
		{"no name", domain.AddFoodRequest{Description: "d", Category: "c", Price: 10}},
		{"no description", domain.AddFoodRequest{Name: "n", Category: "c", Price: 10}},
		{"no category", domain.AddFoodRequest{Name: "n", Description: "d", Price: 10}},
		{"zero price", domain.AddFoodRequest{Name: "n", Description: "d", Category: "c"}},
	}

	service := NewFoodService(newFakeFoodRepository(), nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.AddFood(context.Background(), tt.req)
			if !errors.Is(err, domain.ErrMissingFoodFields) {
				t.Errorf("got %v, want ErrMissingFoodFields", err)
			}
		})
	}
}

func TestUpdateFoodPartial(t *testing.T) {
	repo := newFakeFoodRepository()
	food := seedFood(repo)
	service := NewFoodService(repo, nil)

	newPrice := 200.0
	res, err := service.UpdateFood(context.Background(), food.ID.String(), domain.UpdateFoodRequest{
		Price: &newPrice,
	})
	if err != nil {
		t.Fatalf("UpdateFood returned error: %v", err)
	}

	if res.Price != 200 {
		t.Errorf("got price %.2f, want 200", res.Price)
	}
	if res.Name != "Paneer Tikka" {
		t.Errorf("untouched field changed: got name %q", res.Name)
	}
}

func TestGetFoodByIDErrors(t *testing.T) {
	service := NewFoodService(newFakeFoodRepository(), nil)

	if _, err := service.GetFoodByID(context.Background(), "not-a-uuid"); !errors.Is(err, domain.ErrInvalidFoodID) {
		t.Errorf("got %v, want ErrInvalidFoodID", err)
	}
	if _, err := service.GetFoodByID(context.Background(), uuid.NewString()); !errors.Is(err, domain.ErrFoodNotFound) {
		t.Errorf("got %v, want ErrFoodNotFound", err)
	}
}

func TestAddReviewComputesMeanRating(t *testing.T) {
	repo := newFakeFoodRepository()
	food := seedFood(repo)
	service := NewFoodService(repo, nil)
	foodID := food.ID.String()

	ratings := []int{4, 5, 3}
	wantMeans := []float64{4.0, 4.5, 4.0}

	for i, rating := range ratings {
		res, err := service.AddReview(context.Background(), foodID, domain.AddReviewRequest{
			Rating:  rating,
			Comment: "tasty",
		}, uuid.NewString(), "Reviewer")
		if err != nil {
			t.Fatalf("AddReview #%d returned error: %v", i+1, err)
		}

		if math.Abs(res.AverageRating-wantMeans[i]) > 1e-9 {
			t.Errorf("after %d reviews got mean %.4f, want %.4f", i+1, res.AverageRating, wantMeans[i])
		}
		if repo.savedReviews != i+1 {
			t.Errorf("after %d reviews got stored count %d", i+1, repo.savedReviews)
		}
	}
}

func TestAddReviewDuplicateRejected(t *testing.T) {
	repo := newFakeFoodRepository()
	food := seedFood(repo)
	service := NewFoodService(repo, nil)
	foodID := food.ID.String()
	userID := uuid.NewString()

	if _, err := service.AddReview(context.Background(), foodID, domain.AddReviewRequest{Rating: 5}, userID, "Asha"); err != nil {
		t.Fatalf("first review returned error: %v", err)
	}

	_, err := service.AddReview(context.Background(), foodID, domain.AddReviewRequest{Rating: 1}, userID, "Asha")
	if !errors.Is(err, domain.ErrAlreadyReviewed) {
		t.Fatalf("got %v, want ErrAlreadyReviewed", err)
	}

	// The rejected review must not disturb the stored aggregates.
	if repo.savedReviews != 1 || repo.savedRating != 5 {
		t.Errorf("aggregates changed after rejected review: count %d rating %.2f", repo.savedReviews, repo.savedRating)
	}
}

func TestAddReviewRatingBounds(t *testing.T) {
	repo := newFakeFoodRepository()
	food := seedFood(repo)
	service := NewFoodService(repo, nil)

	for _, rating := range []int{0, 6, -1} {
		_, err := service.AddReview(context.Background(), food.ID.String(), domain.AddReviewRequest{Rating: rating}, uuid.NewString(), "Asha")
		if !errors.Is(err, domain.ErrInvalidRating) {
			t.Errorf("rating %d: got %v, want ErrInvalidRating", rating, err)
		}
	}
}

func TestDeleteFoodReturnsName(t *testing.T) {
	repo := newFakeFoodRepository()
	food := seedFood(repo)
	service := NewFoodService(repo, nil)

	name, err := service.DeleteFood(context.Background(), food.ID.String())
	if err != nil {
		t.Fatalf("DeleteFood returned error: %v", err)
	}
	if name != "Paneer Tikka" {
		t.Errorf("got name %q, want Paneer Tikka", name)
	}
	if _, ok := repo.foods[food.ID.String()]; ok {
		t.Error("food still present after delete")
	}
}
