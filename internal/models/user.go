package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account. The IsOnline flag is a durable mirror
// of the in-memory presence registry and is reset to stale on process restart.
type User struct {
	gorm.Model
	Name         string     `gorm:"not null" json:"name"`
	Email        string     `gorm:"unique;not null" json:"email"`
	Avatar       *string    `json:"avatar"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Password     string     `gorm:"-" json:"password,omitempty"`
	IsOnline     bool       `gorm:"default:false" json:"online"`
	LastSeen     *time.Time `json:"last_seen"`
}

func (user *User) ToUserResponse() *UserResponse {
	return &UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Avatar:   user.Avatar,
		IsOnline: user.IsOnline,
		LastSeen: user.LastSeen,
	}
}
