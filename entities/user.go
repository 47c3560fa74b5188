package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name     string    `json:"name"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Password string    `json:"-"`
	Role     string    `gorm:"default:user" json:"role"` // user, admin, moderator
	Address  string    `json:"address,omitempty"`

	// Soft delete and active control. IsDeleted keeps the record around for
	// audit/restore; a deleted user is treated as inactive regardless of IsActive.
	IsActive  bool `gorm:"default:true" json:"is_active"`
	IsDeleted bool `gorm:"default:false" json:"is_deleted"`

	Cart []*CartItem `gorm:"foreignKey:UserID" json:"cart,omitempty"`
	Timestamp
}

// CartItem is a denormalized snapshot taken when the food was added to the cart.
// It survives later catalog edits until consumed by an order or removed.
type CartItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID `gorm:"index" json:"user_id"`
	FoodID     uuid.UUID `json:"food_id"`
	Name       string    `json:"name"`
	Category   string    `json:"category,omitempty"`
	Price      float64   `json:"price"`
	Quantity   int       `json:"quantity"`
	Size       string    `gorm:"default:Regular" json:"size"`
	ImageURL   string    `json:"image_url,omitempty"`
	PrepTime   string    `json:"prep_time,omitempty"`
	TotalPrice float64   `json:"total_price"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
