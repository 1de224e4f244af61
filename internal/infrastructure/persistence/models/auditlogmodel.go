package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLogModel is the GORM model for the append-only audit_log table
type AuditLogModel struct {
	AuditID   uint           `gorm:"column:audit_id;primaryKey;autoIncrement"`
	CarrierID uint           `gorm:"column:carrier_id;not null;index:idx_audit_carrier_changed,priority:1"`
	Action    string         `gorm:"column:action;type:varchar(50);not null"`
	ChangedBy string         `gorm:"column:changed_by;type:varchar(100);not null"`
	ChangedAt time.Time      `gorm:"column:changed_at;not null;index:idx_audit_carrier_changed,priority:2"`
	Changes   datatypes.JSON `gorm:"column:changes"`
}

func (AuditLogModel) TableName() string {
	return "audit_log"
}
