package admin

import (
	"context"

	"github.com/Aamirnihanms/RestuarentFoodOrder/domain"
)

type (
	AdminService interface {
		GetDashboard(ctx context.Context) (domain.DashboardResponse, error)
		GetReviewAnalytics(ctx context.Context) (domain.ReviewAnalyticsResponse, error)
	}

	adminService struct {
		adminRepository AdminRepository
	}
)

func NewAdminService(adminRepository AdminRepository) AdminService {
	return &adminService{adminRepository: adminRepository}
}

func (s *adminService) GetDashboard(ctx context.Context) (domain.DashboardResponse, error) {
	totalUsers, activeUsers, err := s.adminRepository.CountUsers(ctx)
	if err != nil {
		return domain.DashboardResponse{}, err
	}

	totalFoods, err := s.adminRepository.CountFoods(ctx)
	if err != nil {
		return domain.DashboardResponse{}, err
	}

	ordersByStatus, err := s.adminRepository.CountOrdersByStatus(ctx)
	if err != nil {
		return domain.DashboardResponse{}, err
	}

	var totalOrders int64
	for _, count := range ordersByStatus {
		totalOrders += count
	}

	revenue, err := s.adminRepository.TotalRevenue(ctx)
	if err != nil {
		return domain.DashboardResponse{}, err
	}

	recent, err := s.adminRepository.GetRecentOrders(ctx, 10)
	if err != nil {
		return domain.DashboardResponse{}, err
	}

	recentOrders := make([]domain.OrderResponse, 0, len(recent))
	for _, order := range recent {
		items := make([]domain.OrderItemResponse, 0, len(order.Items))
		for _, item := range order.Items {
			items = append(items, domain.OrderItemResponse{
				FoodID:         item.FoodID.String(),
				Name:           item.Name,
				ImageURL:       item.ImageURL,
				Category:       item.Category,
				Size:           item.Size,
				Quantity:       item.Quantity,
				Price:          item.Price,
				TotalItemPrice: item.TotalItemPrice,
			})
		}
		recentOrders = append(recentOrders, domain.OrderResponse{
			ID:              order.ID.String(),
			UserID:          order.UserID.String(),
			UserName:        order.UserName,
			Items:           items,
			Subtotal:        order.Subtotal,
			Tax:             order.Tax,
			DeliveryFee:     order.DeliveryFee,
			Discount:        order.Discount,
			TotalPrice:      order.TotalPrice,
			AppliedPromo:    order.AppliedPromo,
			DeliveryAddress: order.DeliveryAddress,
			Status:          order.Status,
			PaymentMethod:   order.PaymentMethod,
			CreatedAt:       order.CreatedAt,
		})
	}

	return domain.DashboardResponse{
		TotalUsers:     totalUsers,
		ActiveUsers:    activeUsers,
		TotalFoods:     totalFoods,
		TotalOrders:    totalOrders,
		TotalRevenue:   revenue,
		OrdersByStatus: ordersByStatus,
		RecentOrders:   recentOrders,
	}, nil
}

func (s *adminService) GetReviewAnalytics(ctx context.Context) (domain.ReviewAnalyticsResponse, error) {
	foods, totalReviews, err := s.adminRepository.GetReviewStats(ctx)
	if err != nil {
		return domain.ReviewAnalyticsResponse{}, err
	}

	perFood := make([]domain.FoodReviewAnalytics, 0, len(foods))
	ratingSum := 0.0
	for _, food := range foods {
		perFood = append(perFood, domain.FoodReviewAnalytics{
			FoodID:        food.ID.String(),
			Name:          food.Name,
			Reviews:       food.Reviews,
			AverageRating: food.Rating,
		})
		ratingSum += food.Rating * float64(food.Reviews)
	}

	average := 0.0
	if totalReviews > 0 {
		average = ratingSum / float64(totalReviews)
	}

	return domain.ReviewAnalyticsResponse{
		TotalReviews:  totalReviews,
		AverageRating: average,
		PerFood:       perFood,
	}, nil
}
