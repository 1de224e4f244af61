package setting

import "errors"

var (
	ErrSettingNotFound   = errors.New("setting not found")
	ErrInvalidSettingKey = errors.New("invalid setting key")
	// ErrInvalidValueType covers both unknown types and typed setters called on the wrong setting.
	ErrInvalidValueType = errors.New("invalid value type")
)
