package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Account lifecycle lives in the
// external auth service; this table carries the alert-pipeline fields.
// AlertPreferences is a JSON array of alert kinds stored in jsonb.
type UserModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email            string    `gorm:"type:varchar(255);unique;not null"`
	Name             string    `gorm:"type:varchar(100)"`
	Phone            string    `gorm:"type:varchar(50)"`
	AlertPreferences string    `gorm:"type:jsonb;not null;default:'[\"safe-zone\",\"battery\"]'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
