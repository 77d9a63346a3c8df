package models

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email        string     `gorm:"type:text;uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"type:text;not null" json:"-"`
	FullName     string     `gorm:"type:text;not null" json:"full_name"`
	Phone        string     `gorm:"type:text" json:"phone,omitempty"`
	Location     string     `gorm:"type:text" json:"location,omitempty"`
	Bio          string     `gorm:"type:text" json:"bio,omitempty"`
	IsAdmin      bool       `gorm:"default:false" json:"is_admin"`
	CreatedAt    time.Time  `gorm:"type:timestamp;default:now()" json:"created_at"`
	LastLogin    *time.Time `gorm:"type:timestamp" json:"last_login,omitempty"`

	SavedJobs []Job `gorm:"many2many:saved_jobs" json:"-"`
}

func (u *User) TableName() string {
	return "users"
}

func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
