package setting

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tosinajy/carrier-code-verify/internal/shared/biztime"
)

// ValueType defines the type of a setting value
type ValueType string

const (
	ValueTypeString ValueType = "string"
	ValueTypeInt    ValueType = "int"
	ValueTypeBool   ValueType = "bool"
)

// SystemSetting is one runtime-editable setting, addressed by (category, key).
type SystemSetting struct {
	id          uint
	category    string // e.g. "display"
	key         string
	value       string // stored as text, parsed by valueType
	valueType   ValueType
	description string
	updatedBy   uint
	version     int
	createdAt   time.Time
	updatedAt   time.Time
}

func NewSystemSetting(category, key string, valueType ValueType, description string) (*SystemSetting, error) {
	if category == "" {
		return nil, fmt.Errorf("category is required")
	}
	if key == "" {
		return nil, ErrInvalidSettingKey
	}
	if !isValidValueType(valueType) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidValueType, valueType)
	}

	now := biztime.NowUTC()
	return &SystemSetting{
		category:    category,
		key:         key,
		valueType:   valueType,
		description: description,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructSystemSetting reconstructs a SystemSetting from persistence layer
func ReconstructSystemSetting(
	id uint,
	category string,
	key string,
	value string,
	valueType ValueType,
	description string,
	updatedBy uint,
	version int,
	createdAt, updatedAt time.Time,
) *SystemSetting {
	return &SystemSetting{
		id:          id,
		category:    category,
		key:         key,
		value:       value,
		valueType:   valueType,
		description: description,
		updatedBy:   updatedBy,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *SystemSetting) ID() uint             { return s.id }
func (s *SystemSetting) Category() string     { return s.category }
func (s *SystemSetting) Key() string          { return s.key }
func (s *SystemSetting) Value() string        { return s.value }
func (s *SystemSetting) ValueType() ValueType { return s.valueType }
func (s *SystemSetting) Description() string  { return s.description }
func (s *SystemSetting) UpdatedBy() uint      { return s.updatedBy }
func (s *SystemSetting) Version() int         { return s.version }
func (s *SystemSetting) CreatedAt() time.Time { return s.createdAt }
func (s *SystemSetting) UpdatedAt() time.Time { return s.updatedAt }

// SetID sets the setting ID (only for persistence layer use)
func (s *SystemSetting) SetID(id uint) {
	s.id = id
}

func (s *SystemSetting) HasValue() bool {
	return s.value != ""
}

func (s *SystemSetting) GetStringValue() string {
	return s.value
}

func (s *SystemSetting) GetIntValue() (int, error) {
	if s.value == "" {
		return 0, nil
	}
	return strconv.Atoi(s.value)
}

func (s *SystemSetting) GetBoolValue() (bool, error) {
	if s.value == "" {
		return false, nil
	}
	return strconv.ParseBool(s.value)
}

func (s *SystemSetting) SetStringValue(value string, updatedBy uint) error {
	return s.set(ValueTypeString, value, updatedBy)
}

func (s *SystemSetting) SetIntValue(value int, updatedBy uint) error {
	return s.set(ValueTypeInt, strconv.Itoa(value), updatedBy)
}

func (s *SystemSetting) SetBoolValue(value bool, updatedBy uint) error {
	return s.set(ValueTypeBool, strconv.FormatBool(value), updatedBy)
}

func (s *SystemSetting) set(vt ValueType, raw string, updatedBy uint) error {
	if s.valueType != vt {
		return fmt.Errorf("%w: expected %s, got %s", ErrInvalidValueType, s.valueType, vt)
	}
	s.value = raw
	s.updatedBy = updatedBy
	s.version++
	s.updatedAt = biztime.NowUTC()
	return nil
}

func isValidValueType(vt ValueType) bool {
	switch vt {
	case ValueTypeString, ValueTypeInt, ValueTypeBool:
		return true
	default:
		return false
	}
}
