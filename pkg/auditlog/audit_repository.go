package auditlog

import (
	"context"

	"github.com/Aamirnihanms/RestuarentFoodOrder/entities"
	"gorm.io/gorm"
)

type (
	AuditRepository interface {
		CreateLog(ctx context.Context, entry *entities.AuditLog) error
		GetLogs(ctx context.Context, page, limit int) ([]*entities.AuditLog, int64, error)
	}

	auditRepository struct {
		db *gorm.DB
	}
)

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) CreateLog(ctx context.Context, entry *entities.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *auditRepository) GetLogs(ctx context.Context, page, limit int) ([]*entities.AuditLog, int64, error) {
	var logs []*entities.AuditLog
	var count int64

	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.AuditLog{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, count, nil
}
