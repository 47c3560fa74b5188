package order

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Aamirnihanms/RestuarentFoodOrder/domain"
	"github.com/Aamirnihanms/RestuarentFoodOrder/entities"
	"github.com/Aamirnihanms/RestuarentFoodOrder/internal/utils/mailing"
	"github.com/Aamirnihanms/RestuarentFoodOrder/pkg/food"
	"github.com/Aamirnihanms/RestuarentFoodOrder/pkg/payment"
	"github.com/Aamirnihanms/RestuarentFoodOrder/pkg/user"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const fallbackAddress = "No address provided"

type (
	OrderService interface {
		CreateOrder(ctx context.Context, userID string, req domain.CreateOrderRequest) (domain.OrderResponse, error)
		GetMyOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error)
		GetAllOrders(ctx context.Context) ([]domain.OrderResponse, error)
		UpdateOrderStatus(ctx context.Context, orderID string, req domain.UpdateOrderStatusRequest) (domain.OrderResponse, error)
	}

	orderService struct {
		orderRepository OrderRepository
		userRepository  user.UserRepository
		foodRepository  food.FoodRepository
		paymentService  payment.PaymentService
	}
)

func NewOrderService(
	orderRepository OrderRepository,
	userRepository user.UserRepository,
	foodRepository food.FoodRepository,
	paymentService payment.PaymentService,
) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		userRepository:  userRepository,
		foodRepository:  foodRepository,
		paymentService:  paymentService,
	}
}

// CreateOrder turns a selection of catalog items into an immutable order
// snapshot, recomputes pricing server-side unless the caller supplied a full
// breakdown, and clears the consumed cart entries. Selections that no longer
// resolve in the catalog are dropped rather than failing the whole order.
func (s *orderService) CreateOrder(ctx context.Context, userID string, req domain.CreateOrderRequest) (domain.OrderResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return domain.OrderResponse{}, domain.ErrParseUUID
	}

	orderUser, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrUserNotFound
		}
		return domain.OrderResponse{}, err
	}
	if orderUser.IsDeleted {
		return domain.OrderResponse{}, domain.ErrUserNotFound
	}

	if len(req.SelectedItems) == 0 {
		return domain.OrderResponse{}, domain.ErrEmptySelection
	}

	orderID := uuid.New()
	var items []*entities.OrderItem
	var consumed []uuid.UUID
	subtotal := 0.0

	for _, sel := range req.SelectedItems {
		foodID, err := uuid.Parse(sel.FoodID)
		if err != nil {
			continue
		}

		foodItem, err := s.foodRepository.GetFoodByID(ctx, sel.FoodID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return domain.OrderResponse{}, err
		}

		price := foodItem.Price
		if sel.Price != nil && *sel.Price > 0 {
			price = *sel.Price
		}

		size := sel.Size
		if size == "" {
			size = "Regular"
		}

		lineTotal := price * float64(sel.Quantity)
		subtotal += lineTotal

		items = append(items, &entities.OrderItem{
			ID:             uuid.New(),
			OrderID:        orderID,
			FoodID:         foodItem.ID,
			Name:           foodItem.Name,
			ImageURL:       foodItem.ImageURL,
			Category:       foodItem.Category,
			Size:           size,
			Quantity:       sel.Quantity,
			Price:          price,
			TotalItemPrice: lineTotal,
		})
		consumed = append(consumed, foodID)
	}

	if len(items) == 0 {
		return domain.OrderResponse{}, domain.ErrNoItemsToOrder
	}

	pricing := domain.PricingBreakdown{
		Subtotal:   subtotal,
		TotalPrice: subtotal,
	}
	if req.Pricing != nil {
		pricing = *req.Pricing
	}

	address := req.DeliveryAddress
	if address == "" {
		address = orderUser.Address
	}
	if address == "" {
		address = fallbackAddress
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = entities.PaymentMethodCOD
	}

	order := &entities.Order{
		ID:              orderID,
		UserID:          orderUser.ID,
		UserName:        orderUser.Name,
		Items:           items,
		Subtotal:        pricing.Subtotal,
		Tax:             pricing.Tax,
		DeliveryFee:     pricing.DeliveryFee,
		Discount:        pricing.Discount,
		TotalPrice:      pricing.TotalPrice,
		AppliedPromo:    req.AppliedPromo,
		DeliveryAddress: address,
		Status:          entities.OrderStatusPending,
		PaymentMethod:   paymentMethod,
	}

	if err := s.orderRepository.CreateOrder(ctx, order, consumed); err != nil {
		return domain.OrderResponse{}, err
	}

	response := toOrderResponse(order)

	// Online orders get a hosted payment page. Gateway trouble is logged but
	// never voids the already-persisted order.
	if paymentMethod == entities.PaymentMethodOnline {
		paymentURL, err := s.paymentService.CreateInvoice(order.ID.String(), int64(order.TotalPrice), orderUser.Email)
		if err != nil {
			log.Printf("payment invoice for order %s failed: %v", order.ID, err)
		} else {
			response.PaymentURL = paymentURL
		}
	}

	go func(name, email string, itemCount int, total float64) {
		body := fmt.Sprintf(
			"<p>Hi %s,</p><p>Your order of %d items totalling %.2f has been placed.</p>",
			name, itemCount, total,
		)
		if err := mailing.SendMail(email, "Order confirmation", body); err != nil {
			log.Printf("failed to send order confirmation to %s: %v", email, err)
		}
	}(orderUser.Name, orderUser.Email, len(items), order.TotalPrice)

	return response, nil
}

func (s *orderService) GetMyOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrParseUUID
	}

	orders, err := s.orderRepository.GetOrdersByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

func (s *orderService) GetAllOrders(ctx context.Context) ([]domain.OrderResponse, error) {
	orders, err := s.orderRepository.GetAllOrders(ctx)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// UpdateOrderStatus overwrites the status with whatever the admin supplied. A
// request without a status is an accepted no-op that re-reports the current
// value. Legal transitions of the status enum are not enforced here.
func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID string, req domain.UpdateOrderStatusRequest) (domain.OrderResponse, error) {
	if _, err := uuid.Parse(orderID); err != nil {
		return domain.OrderResponse{}, domain.ErrParseUUID
	}

	order, err := s.orderRepository.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrOrderNotFound
		}
		return domain.OrderResponse{}, err
	}

	if req.Status != "" && req.Status != order.Status {
		if err := s.orderRepository.UpdateOrderStatus(ctx, orderID, req.Status); err != nil {
			return domain.OrderResponse{}, err
		}
		order.Status = req.Status
	}

	return toOrderResponse(order), nil
}

func toOrderResponse(order *entities.Order) domain.OrderResponse {
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

	return domain.OrderResponse{
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
	}
}

func toOrderResponses(orders []*entities.Order) []domain.OrderResponse {
	response := make([]domain.OrderResponse, 0, len(orders))
	for _, order := range orders {
		response = append(response, toOrderResponse(order))
	}
	return response
}
