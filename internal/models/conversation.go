package models

import (
	"gorm.io/gorm"
)

// Conversation is the single thread between an unordered pair of users.
// The pair is stored ordered (UserOneID < UserTwoID) so the composite unique
// index makes find-or-create atomic under concurrent first sends.
type Conversation struct {
	gorm.Model
	UserOneID     uint     `gorm:"not null;uniqueIndex:idx_conversation_pair" json:"user_one_id"`
	UserTwoID     uint     `gorm:"not null;uniqueIndex:idx_conversation_pair" json:"user_two_id"`
	UserOne       *User    `gorm:"foreignKey:UserOneID" json:"-"`
	UserTwo       *User    `gorm:"foreignKey:UserTwoID" json:"-"`
	LastMessageID *uint    `json:"last_message_id"`
	LastMessage   *Message `gorm:"foreignKey:LastMessageID" json:"last_message"`
}

// OrderedPair returns the two user ids with the smaller one first.
func OrderedPair(a, b uint) (uint, uint) {
	if a > b {
		return b, a
	}
	return a, b
}

func (conversation *Conversation) HasParticipant(userID uint) bool {
	return conversation.UserOneID == userID || conversation.UserTwoID == userID
}

func (conversation *Conversation) ToConversationResponse() ConversationResponse {
	participants := []*UserResponse{}
	if conversation.UserOne != nil {
		participants = append(participants, conversation.UserOne.ToUserResponse())
	}
	if conversation.UserTwo != nil {
		participants = append(participants, conversation.UserTwo.ToUserResponse())
	}
	return ConversationResponse{
		ID:           conversation.ID,
		Participants: participants,
		LastMessage:  conversation.LastMessage,
		UpdatedAt:    conversation.UpdatedAt,
	}
}
