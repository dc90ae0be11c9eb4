package models

import "time"

// BaseModel is embedded by every persisted entity. The store owns all
// three fields; the service layer never writes them directly.
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
