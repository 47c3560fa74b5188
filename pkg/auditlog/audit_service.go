package auditlog

import (
	"context"
	"log"
	"time"

	"github.com/Aamirnihanms/RestuarentFoodOrder/domain"
	"github.com/Aamirnihanms/RestuarentFoodOrder/entities"
	"github.com/google/uuid"
)

type (
	// AuditService records actions best-effort. Record returns immediately and
	// a failed write never reaches the caller; it is only reported to the
	// process log.
	AuditService interface {
		Record(entry domain.AuditEntry)
		GetLogs(ctx context.Context, page, limit int) ([]domain.AuditLogResponse, int64, error)
	}

	auditService struct {
		auditRepository AuditRepository
	}
)

func NewAuditService(auditRepository AuditRepository) AuditService {
	return &auditService{auditRepository: auditRepository}
}

func (s *auditService) Record(entry domain.AuditEntry) {
	status := entry.Status
	if status == "" {
		status = entities.AuditStatusSuccess
	}

	record := &entities.AuditLog{
		ID:          uuid.New(),
		Action:      entry.Action,
		Description: entry.Description,
		IPAddress:   entry.IPAddress,
		Method:      entry.Method,
		Endpoint:    entry.Endpoint,
		Status:      status,
	}

	if entry.UserID != "" {
		if userUUID, err := uuid.Parse(entry.UserID); err == nil {
			record.UserID = &userUUID
		}
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.auditRepository.CreateLog(ctx, record); err != nil {
			log.Printf("audit log write failed for action %q: %v", entry.Action, err)
		}
	}()
}

func (s *auditService) GetLogs(ctx context.Context, page, limit int) ([]domain.AuditLogResponse, int64, error) {
	logs, count, err := s.auditRepository.GetLogs(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.AuditLogResponse, 0, len(logs))
	for _, entry := range logs {
		item := domain.AuditLogResponse{
			ID:          entry.ID.String(),
			Action:      entry.Action,
			Description: entry.Description,
			IPAddress:   entry.IPAddress,
			Method:      entry.Method,
			Endpoint:    entry.Endpoint,
			Status:      entry.Status,
			CreatedAt:   entry.CreatedAt,
		}
		if entry.UserID != nil {
			item.UserID = entry.UserID.String()
		}
		response = append(response, item)
	}

	return response, count, nil
}
