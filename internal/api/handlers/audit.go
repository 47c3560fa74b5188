package handlers

import (
	"github.com/Aamirnihanms/RestuarentFoodOrder/domain"
	"github.com/Aamirnihanms/RestuarentFoodOrder/entities"
	"github.com/gofiber/fiber/v2"
)

// auditEntry captures the request metadata every log line carries. The user id
// may be empty for failures that happen before authentication.
func auditEntry(c *fiber.Ctx, action, description string) domain.AuditEntry {
	userID, _ := c.Locals("user_id").(string)
	return domain.AuditEntry{
		UserID:      userID,
		Action:      action,
		Description: description,
		IPAddress:   c.IP(),
		Method:      c.Method(),
		Endpoint:    c.Path(),
	}
}

func failedAuditEntry(c *fiber.Ctx, action, description string) domain.AuditEntry {
	entry := auditEntry(c, action, description)
	entry.Status = entities.AuditStatusFailed
	return entry
}
