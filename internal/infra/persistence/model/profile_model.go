package model

import (
	"time"

	"github.com/google/uuid"
)

// UsernameUniqueIndex is the constraint Postgres names in a duplicate username violation.
const UsernameUniqueIndex = "users_username_key"

// ProfileModel mirrors the 'users' table. ID is the identity provider's user id, never generated here.
type ProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"type:varchar(50);uniqueIndex:users_username_key;not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	Bio       *string   `gorm:"type:text"`
	AvatarURL *string   `gorm:"column:avatar_url;type:text"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "users"
}
