package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/tosinajy/carrier-code-verify/internal/domain/audit"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/persistence/models"
)

func AuditEntryToModel(e *audit.Entry) (*models.AuditLogModel, error) {
	changes, err := json.Marshal(e.Changes)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal audit changes: %w", err)
	}
	return &models.AuditLogModel{
		AuditID:   e.ID,
		CarrierID: e.CarrierID,
		Action:    e.Action,
		ChangedBy: e.ChangedBy,
		ChangedAt: e.ChangedAt,
		Changes:   datatypes.JSON(changes),
	}, nil
}

// AuditEntryToDomain tolerates malformed JSON in changes; the row is still shown.
func AuditEntryToDomain(m *models.AuditLogModel) *audit.Entry {
	if m == nil {
		return nil
	}
	e := &audit.Entry{
		ID:        m.AuditID,
		CarrierID: m.CarrierID,
		Action:    m.Action,
		ChangedBy: m.ChangedBy,
		ChangedAt: m.ChangedAt,
	}
	if len(m.Changes) > 0 {
		_ = json.Unmarshal(m.Changes, &e.Changes)
	}
	return e
}
