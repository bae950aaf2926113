package models

import "time"

// Setting is one row of the key/value store configuration. Values are stored
// as text and parsed by the settings service, which supplies fallbacks for
// missing or malformed entries.
type Setting struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     string    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
