package models

// All lists every table the application owns, in dependency order.
func All() []interface{} {
	return []interface{}{
		&NaicModel{},
		&PayerModel{},
		&CarrierModel{},
		&AuditLogModel{},
		&UserModel{},
		&SessionModel{},
		&SystemSettingModel{},
	}
}
