package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lgwakano/workflow-api/internals/constants"
)

// UserModel represents the users table. Password holds the bcrypt hash and
// never serializes.
type UserModel struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	UID      string `gorm:"type:uuid;uniqueIndex;not null" json:"uid"`
	Username string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"type:varchar(20);not null;default:'user'" json:"role"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues fills defaults before validation.
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = constants.RoleUser
	}
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UID == "" {
		u.UID = uuid.NewString()
	}
	u.SetDefaultValues()
	return nil
}
