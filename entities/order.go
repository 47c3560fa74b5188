package entities

import (
	"github.com/google/uuid"
)

const (
	OrderStatusPending   = "Pending"
	OrderStatusConfirmed = "Confirmed"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"

	PaymentMethodCOD    = "COD"
	PaymentMethodOnline = "Online"
)

// Order is immutable after creation except for Status.
type Order struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"index" json:"user_id"`
	UserName string    `json:"user_name"`

	Items []*OrderItem `gorm:"foreignKey:OrderID" json:"items"`

	// Pricing breakdown. TotalPrice = Subtotal + Tax + DeliveryFee - Discount
	// unless the caller supplied an authoritative total.
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `gorm:"default:0" json:"tax"`
	DeliveryFee float64 `gorm:"default:0" json:"delivery_fee"`
	Discount    float64 `gorm:"default:0" json:"discount"`
	TotalPrice  float64 `json:"total_price"`

	AppliedPromo    string `json:"applied_promo,omitempty"`
	DeliveryAddress string `json:"delivery_address"`
	Status          string `gorm:"default:Pending" json:"status"` // Pending, Confirmed, Delivered, Cancelled
	PaymentMethod   string `gorm:"default:COD" json:"payment_method"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}

// OrderItem is a snapshot of the food at order time, immune to later catalog changes.
type OrderItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrderID        uuid.UUID `gorm:"index" json:"order_id"`
	FoodID         uuid.UUID `json:"food_id"`
	Name           string    `json:"name"`
	ImageURL       string    `json:"image_url,omitempty"`
	Category       string    `json:"category,omitempty"`
	Size           string    `gorm:"default:Regular" json:"size"`
	Quantity       int       `json:"quantity"`
	Price          float64   `json:"price"`
	TotalItemPrice float64   `json:"total_item_price"`

	Order *Order `gorm:"foreignKey:OrderID" json:"-"`
	Timestamp
}
