package models

// NaicModel is the GORM model for the naic table
type NaicModel struct {
	NaicID      uint   `gorm:"column:naic_id;primaryKey;autoIncrement"`
	Cocode      string `gorm:"column:cocode;type:varchar(20);not null;uniqueIndex:uk_naic_cocode"`
	CompanyName string `gorm:"column:company_name;type:varchar(255);not null;index:idx_naic_company_name"`
}

func (NaicModel) TableName() string {
	return "naic"
}
