package entities

import (
	"github.com/google/uuid"
)

type Food struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name            string    `json:"name"`
	Description     string    `gorm:"type:text" json:"description"`
	LongDescription string    `gorm:"type:text" json:"long_description,omitempty"`
	Category        string    `gorm:"index" json:"category"`
	Price           float64   `json:"price"`
	PrepTime        string    `json:"prep_time,omitempty"`
	Available       bool      `gorm:"default:true" json:"available"`
	ImageURL        string    `json:"image_url,omitempty"`
	Images          string    `gorm:"type:text" json:"images,omitempty"`
	NutritionInfo   string    `gorm:"type:text" json:"nutrition_info,omitempty"`
	Ingredients     string    `gorm:"type:text" json:"ingredients,omitempty"`
	Sizes           string    `gorm:"type:text" json:"sizes,omitempty"`
	Allergens       string    `gorm:"type:text" json:"allergens,omitempty"`

	// Derived from ReviewsList: Reviews is the count, Rating the arithmetic mean.
	Rating  float64 `gorm:"default:0" json:"rating"`
	Reviews int     `gorm:"default:0" json:"reviews"`

	ReviewsList []*FoodReview `gorm:"foreignKey:FoodID" json:"reviews_list,omitempty"`
	Timestamp
}

type FoodReview struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FoodID   uuid.UUID `gorm:"index;uniqueIndex:idx_food_reviewer" json:"food_id"`
	UserID   uuid.UUID `gorm:"uniqueIndex:idx_food_reviewer" json:"user_id"`
	UserName string    `json:"user_name"`
	Rating   int       `json:"rating"` // 1-5
	Comment  string    `gorm:"type:text" json:"comment"`

	Food *Food `gorm:"foreignKey:FoodID" json:"-"`
	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
