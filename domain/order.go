package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateOrder       = "order placed successfully"
	MessageSuccessGetMyOrders       = "orders retrieved successfully"
	MessageSuccessGetAllOrders      = "all orders retrieved successfully"
	MessageSuccessUpdateOrderStatus = "order status updated"

	MessageFailedCreateOrder       = "failed to place order"
	MessageFailedGetMyOrders       = "failed to retrieve orders"
	MessageFailedGetAllOrders      = "failed to retrieve all orders"
	MessageFailedUpdateOrderStatus = "failed to update order status"

	ErrOrderNotFound  = errors.New("order not found")
	ErrNoItemsToOrder = errors.New("no valid items found to order")
	ErrEmptySelection = errors.New("no items selected")
)

type (
	// SelectedItem references a catalog food. Price, when supplied by the
	// client, is accepted as the authoritative unit price for that line.
	SelectedItem struct {
		FoodID   string   `json:"food_id" validate:"required,uuid"`
		Quantity int      `json:"quantity" validate:"required,min=1"`
		Size     string   `json:"size"`
		Price    *float64 `json:"price" validate:"omitempty,gt=0"`
	}

	PricingBreakdown struct {
		Subtotal    float64 `json:"subtotal" validate:"min=0"`
		Tax         float64 `json:"tax" validate:"min=0"`
		DeliveryFee float64 `json:"delivery_fee" validate:"min=0"`
		Discount    float64 `json:"discount" validate:"min=0"`
		TotalPrice  float64 `json:"total_price" validate:"min=0"`
	}

	CreateOrderRequest struct {
		SelectedItems   []SelectedItem    `json:"selected_items" validate:"required,dive"`
		PaymentMethod   string            `json:"payment_method" validate:"omitempty,oneof=COD Online"`
		DeliveryAddress string            `json:"delivery_address"`
		Pricing         *PricingBreakdown `json:"pricing"`
		AppliedPromo    string            `json:"applied_promo"`
	}

	OrderItemResponse struct {
		FoodID         string  `json:"food_id"`
		Name           string  `json:"name"`
		ImageURL       string  `json:"image_url,omitempty"`
		Category       string  `json:"category,omitempty"`
		Size           string  `json:"size"`
		Quantity       int     `json:"quantity"`
		Price          float64 `json:"price"`
		TotalItemPrice float64 `json:"total_item_price"`
	}

	OrderResponse struct {
		ID              string              `json:"id"`
		UserID          string              `json:"user_id"`
		UserName        string              `json:"user_name"`
		Items           []OrderItemResponse `json:"items"`
		Subtotal        float64             `json:"subtotal"`
		Tax             float64             `json:"tax"`
		DeliveryFee     float64             `json:"delivery_fee"`
		Discount        float64             `json:"discount"`
		TotalPrice      float64             `json:"total_price"`
		AppliedPromo    string              `json:"applied_promo,omitempty"`
		DeliveryAddress string              `json:"delivery_address"`
		Status          string              `json:"status"`
		PaymentMethod   string              `json:"payment_method"`
		PaymentURL      string              `json:"payment_url,omitempty"`
		CreatedAt       time.Time           `json:"created_at"`
	}

	UpdateOrderStatusRequest struct {
		Status string `json:"status" validate:"omitempty,oneof=Pending Confirmed Delivered Cancelled"`
	}
)
