package order

import (
	"context"

	"github.com/Aamirnihanms/RestuarentFoodOrder/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderRepository interface {
		CreateOrder(ctx context.Context, order *entities.Order, consumedFoodIDs []uuid.UUID) error
		GetOrderByID(ctx context.Context, id string) (*entities.Order, error)
		GetOrdersByUser(ctx context.Context, userID string) ([]*entities.Order, error)
		GetAllOrders(ctx context.Context) ([]*entities.Order, error)
		UpdateOrderStatus(ctx context.Context, id string, status string) error
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder persists the order snapshot and removes the consumed cart entries
// in one transaction, so a concurrent order from the same user can never see a
// half-cleared cart.
func (r *orderRepository) CreateOrder(ctx context.Context, order *entities.Order, consumedFoodIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		if len(consumedFoodIDs) == 0 {
			return nil
		}
		return tx.Where("user_id = ? AND food_id IN ?", order.UserID, consumedFoodIDs).
			Delete(&entities.CartItem{}).Error
	})
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetOrdersByUser(ctx context.Context, userID string) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) GetAllOrders(ctx context.Context) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id string, status string) error {
	return r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status}).Error
}
