package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryModel mirrors the 'entries' table. UserID references users.id (UUID).
type EntryModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Description  string          `gorm:"type:varchar(255);not null"`
	Month        int             `gorm:"not null"`
	Year         int             `gorm:"not null"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount       decimal.Decimal `gorm:"type:numeric(16,2);not null"`
	Type         string          `gorm:"type:varchar(16);not null"`
	Status       string          `gorm:"type:varchar(16);not null"`
	RegisteredAt time.Time       `gorm:"type:date;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (EntryModel) TableName() string {
	return "entries"
}
