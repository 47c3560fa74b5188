package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	AuditStatusSuccess = "success"
	AuditStatusFailed  = "failed"
)

// AuditLog is append-only. UserID is optional since some failures happen before
// the caller is authenticated.
type AuditLog struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      *uuid.UUID `gorm:"index" json:"user_id,omitempty"`
	Action      string     `gorm:"index" json:"action"`
	Description string     `gorm:"type:text" json:"description"`
	IPAddress   string     `json:"ip_address"`
	Method      string     `json:"method"`
	Endpoint    string     `json:"endpoint"`
	Status      string     `gorm:"default:success" json:"status"` // success, failed
	CreatedAt   time.Time  `gorm:"type:timestamp" json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}
