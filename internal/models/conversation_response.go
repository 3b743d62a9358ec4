package models

import "time"

type ConversationResponse struct {
	ID           uint            `json:"id"`
	Participants []*UserResponse `json:"participants"`
	LastMessage  *Message        `json:"last_message"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type ConversationListResponse struct {
	Conversations []ConversationResponse `json:"conversations"`
	Page          int                    `json:"page"`
	Size          int                    `json:"size"`
	Total         int64                  `json:"total"`
}
