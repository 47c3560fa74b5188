package admin

import (
	"context"

	"github.com/Aamirnihanms/RestuarentFoodOrder/entities"
	"gorm.io/gorm"
)

type (
	AdminRepository interface {
		CountUsers(ctx context.Context) (total, active int64, err error)
		CountFoods(ctx context.Context) (int64, error)
		CountOrdersByStatus(ctx context.Context) (map[string]int64, error)
		TotalRevenue(ctx context.Context) (float64, error)
		GetRecentOrders(ctx context.Context, limit int) ([]*entities.Order, error)
		GetReviewStats(ctx context.Context) ([]*entities.Food, int64, error)
	}

	adminRepository struct {
		db *gorm.DB
	}
)

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) CountUsers(ctx context.Context) (int64, int64, error) {
	var total, active int64

	if err := r.db.WithContext(ctx).Model(&entities.User{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.WithContext(ctx).Model(&entities.User{}).
		Where("is_active = ? AND is_deleted = ?", true, false).
		Count(&active).Error; err != nil {
		return 0, 0, err
	}

	return total, active, nil
}

func (r *adminRepository) CountFoods(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Food{}).Count(&count).Error
	return count, err
}

func (r *adminRepository) CountOrdersByStatus(ctx context.Context) (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}

	var rows []statusCount
	if err := r.db.WithContext(ctx).Model(&entities.Order{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *adminRepository) TotalRevenue(ctx context.Context) (float64, error) {
	var revenue float64
	err := r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("status != ?", entities.OrderStatusCancelled).
		Select("coalesce(sum(total_price), 0)").
		Scan(&revenue).Error
	return revenue, err
}

func (r *adminRepository) GetRecentOrders(ctx context.Context, limit int) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at desc").
		Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *adminRepository) GetReviewStats(ctx context.Context) ([]*entities.Food, int64, error) {
	var foods []*entities.Food
	if err := r.db.WithContext(ctx).
		Where("reviews > 0").
		Order("rating desc").
		Find(&foods).Error; err != nil {
		return nil, 0, err
	}

	var totalReviews int64
	if err := r.db.WithContext(ctx).Model(&entities.FoodReview{}).Count(&totalReviews).Error; err != nil {
		return nil, 0, err
	}

	return foods, totalReviews, nil
}
