package models

// PayerModel is the GORM model for the payers table
type PayerModel struct {
	PayerID       uint   `gorm:"column:payer_id;primaryKey;autoIncrement"`
	PayerCode     string `gorm:"column:payer_code;type:varchar(100);not null;uniqueIndex:uk_payer_code_clearing_house,priority:1"`
	PayerName     string `gorm:"column:payer_name;type:varchar(255);not null;index:idx_payers_name"`
	ClearingHouse string `gorm:"column:clearing_house;type:varchar(100);not null;uniqueIndex:uk_payer_code_clearing_house,priority:2"`
	NaicID        *uint  `gorm:"column:naic_id;index:idx_payers_naic_id"`
	MappingStatus string `gorm:"column:mapping_status;type:varchar(20);not null;default:'unassigned';index:idx_payers_mapping_status"`
}

func (PayerModel) TableName() string {
	return "payers"
}
