package models

import "time"

type UserResponse struct {
	ID       uint       `json:"id"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Avatar   *string    `json:"avatar"`
	IsOnline bool       `json:"online"`
	LastSeen *time.Time `json:"last_seen"`
}

type GetUsersResponse struct {
	Users []*UserResponse `json:"users"`
	Page  int             `json:"page"`
	Size  int             `json:"size"`
	Total int64           `json:"total"`
}
