package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

type BaseModel struct {
	ID        string    `gorm:"primaryKey;default:uuid_generate_v4()" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StringArray: liste de chaînes stockée en jsonb.
type StringArray []string

func (a StringArray) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}

func (a *StringArray) Scan(value any) error {
	if err := json.Unmarshal(value.([]byte), &a); err != nil {
		return err
	}
	return nil
}

func (a StringArray) Contains(value string) bool {
	for _, item := range a {
		if item == value {
			return true
		}
	}
	return false
}
