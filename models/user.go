package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultProfileImage is the placeholder every new account starts with.
const DefaultProfileImage = "default.jpg"

type User struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	Username     string    `json:"username" gorm:"size:25;not null"`
	Email        string    `json:"email" gorm:"size:120;not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"size:60;not null"` // bcrypt hash, never plaintext
	ImageProfile string    `json:"image_profile" gorm:"size:41;not null;default:default.jpg"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Requests []TransferRequest `json:"-" gorm:"foreignKey:TeacherID"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.ImageProfile == "" {
		u.ImageProfile = DefaultProfileImage
	}
	return nil
}
