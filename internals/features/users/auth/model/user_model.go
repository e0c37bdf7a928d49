package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- MODEL users -------------------------------------------------------------
type UserModel struct {
	UserID uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey"`

	UserName  string `json:"user_name" gorm:"column:user_name;type:varchar(120);not null"`
	UserEmail string `json:"user_email" gorm:"column:user_email;type:varchar(120);not null;uniqueIndex:uq_users_email"`

	// bcrypt hash, never serialized
	UserPassword string `json:"-" gorm:"column:user_password;type:varchar(100);not null"`

	// admin | member
	UserRole string `json:"user_role" gorm:"column:user_role;type:varchar(20);not null;default:'member';index:idx_users_role"`

	UserGoogleID *string `json:"user_google_id,omitempty" gorm:"column:user_google_id;type:varchar(40);uniqueIndex:uq_users_google_id"`
	UserIsActive bool    `json:"user_is_active" gorm:"column:user_is_active;type:boolean;not null;default:true"`

	UserCreatedAt time.Time      `json:"user_created_at" gorm:"column:user_created_at;type:timestamptz;not null;autoCreateTime"`
	UserUpdatedAt time.Time      `json:"user_updated_at" gorm:"column:user_updated_at;type:timestamptz;not null;autoUpdateTime"`
	UserDeletedAt gorm.DeletedAt `json:"user_deleted_at,omitempty" gorm:"column:user_deleted_at;type:timestamptz;index"`
}

func (UserModel) TableName() string { return "users" }
