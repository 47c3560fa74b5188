package domain

import (
	"time"
)

var (
	MessageSuccessGetDashboard       = "dashboard statistics retrieved successfully"
	MessageSuccessGetAllUsers        = "users retrieved successfully"
	MessageSuccessSoftDeleteUser     = "user deleted successfully"
	MessageSuccessRestoreUser        = "user restored successfully"
	MessageSuccessGetReviewAnalytics = "review analytics retrieved successfully"
	MessageSuccessGetLogs            = "logs retrieved successfully"

	MessageFailedGetDashboard       = "failed to retrieve dashboard statistics"
	MessageFailedGetAllUsers        = "failed to retrieve users"
	MessageFailedSoftDeleteUser     = "failed to delete user"
	MessageFailedRestoreUser        = "failed to restore user"
	MessageFailedGetReviewAnalytics = "failed to retrieve review analytics"
	MessageFailedGetLogs            = "failed to retrieve logs"
)

type (
	DashboardResponse struct {
		TotalUsers     int64            `json:"total_users"`
		ActiveUsers    int64            `json:"active_users"`
		TotalFoods     int64            `json:"total_foods"`
		TotalOrders    int64            `json:"total_orders"`
		TotalRevenue   float64          `json:"total_revenue"`
		OrdersByStatus map[string]int64 `json:"orders_by_status"`
		RecentOrders   []OrderResponse  `json:"recent_orders"`
	}

	FoodReviewAnalytics struct {
		FoodID        string  `json:"food_id"`
		Name          string  `json:"name"`
		Reviews       int     `json:"reviews"`
		AverageRating float64 `json:"average_rating"`
	}

	ReviewAnalyticsResponse struct {
		TotalReviews  int64                 `json:"total_reviews"`
		AverageRating float64               `json:"average_rating"`
		PerFood       []FoodReviewAnalytics `json:"per_food"`
	}

	AuditLogResponse struct {
		ID          string    `json:"id"`
		UserID      string    `json:"user_id,omitempty"`
		Action      string    `json:"action"`
		Description string    `json:"description"`
		IPAddress   string    `json:"ip_address"`
		Method      string    `json:"method"`
		Endpoint    string    `json:"endpoint"`
		Status      string    `json:"status"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
