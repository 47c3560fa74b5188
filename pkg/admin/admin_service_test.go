package admin

import (
	"context"
	"math"
	"testing"

	"github.com/Aamirnihanms/RestuarentFoodOrder/entities"
	"github.com/google/uuid"
)

type fakeAdminRepository struct {
	totalUsers   int64
	activeUsers  int64
	totalFoods   int64
	byStatus     map[string]int64
	revenue      float64
	recent       []*entities.Order
	reviewed     []*entities.Food
	totalReviews int64
}

func (f *fakeAdminRepository) CountUsers(ctx context.Context) (int64, int64, error) {
	return f.totalUsers, f.activeUsers, nil
}

func (f *fakeAdminRepository) CountFoods(ctx context.Context) (int64, error) {
	return f.totalFoods, nil
}

func (f *fakeAdminRepository) CountOrdersByStatus(ctx context.Context) (map[string]int64, error) {
	return f.byStatus, nil
}

func (f *fakeAdminRepository) TotalRevenue(ctx context.Context) (float64, error) {
	return f.revenue, nil
}

func (f *fakeAdminRepository) GetRecentOrders(ctx context.Context, limit int) ([]*entities.Order, error) {
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

func (f *fakeAdminRepository) GetReviewStats(ctx context.Context) ([]*entities.Food, int64, error) {
	return f.reviewed, f.totalReviews, nil
}

func TestGetDashboard(t *testing.T) {
	repo := &fakeAdminRepository{
		totalUsers:  12,
		activeUsers: 9,
		totalFoods:  30,
		byStatus: map[string]int64{
			entities.OrderStatusPending:   4,
			entities.OrderStatusDelivered: 6,
		},
		revenue: 1540.50,
		recent: []*entities.Order{
			{ID: uuid.New(), UserID: uuid.New(), UserName: "Asha", TotalPrice: 250},
		},
	}
	service := NewAdminService(repo)

	res, err := service.GetDashboard(context.Background())
	if err != nil {
		t.Fatalf("GetDashboard returned error: %v", err)
	}

	if res.TotalUsers != 12 || res.ActiveUsers != 9 {
		t.Errorf("user counts: got %d/%d, want 12/9", res.TotalUsers, res.ActiveUsers)
	}
	if res.TotalOrders != 10 {
		t.Errorf("got total orders %d, want the summed 10", res.TotalOrders)
	}
	if res.TotalRevenue != 1540.50 {
		t.Errorf("got revenue %.2f, want 1540.50", res.TotalRevenue)
	}
	if len(res.RecentOrders) != 1 || res.RecentOrders[0].UserName != "Asha" {
		t.Errorf("recent orders mismatch: %+v", res.RecentOrders)
	}
}

func TestGetReviewAnalyticsWeightedAverage(t *testing.T) {
	repo := &fakeAdminRepository{
		reviewed: []*entities.Food{
			{ID: uuid.New(), Name: "Pizza", Reviews: 4, Rating: 5},
			{ID: uuid.New(), Name: "Dosa", Reviews: 6, Rating: 3},
		},
		totalReviews: 10,
	}
	service := NewAdminService(repo)

	res, err := service.GetReviewAnalytics(context.Background())
	if err != nil {
		t.Fatalf("GetReviewAnalytics returned error: %v", err)
	}

	// (5*4 + 3*6) / 10 = 3.8
	if math.Abs(res.AverageRating-3.8) > 1e-9 {
		t.Errorf("got average %.4f, want 3.8", res.AverageRating)
	}
	if len(res.PerFood) != 2 {
		t.Errorf("got %d per-food rows, want 2", len(res.PerFood))
	}
}

func TestGetReviewAnalyticsNoReviews(t *testing.T) {
	service := NewAdminService(&fakeAdminRepository{})

	res, err := service.GetReviewAnalytics(context.Background())
	if err != nil {
		t.Fatalf("GetReviewAnalytics returned error: %v", err)
	}
	if res.AverageRating != 0 {
		t.Errorf("got average %.4f, want 0 when nothing is reviewed", res.AverageRating)
	}
}
