package models

import "time"

// CarrierModel is the GORM model for the carriers table
type CarrierModel struct {
	CarrierID uint      `gorm:"column:carrier_id;primaryKey;autoIncrement"`
	PayerID   uint      `gorm:"column:payer_id;not null;uniqueIndex:uk_carriers_payer_id"`
	NaicID    uint      `gorm:"column:naic_id;not null;index:idx_carriers_naic_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (CarrierModel) TableName() string {
	return "carriers"
}
