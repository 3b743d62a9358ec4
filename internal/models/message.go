package models

import (
	"gorm.io/gorm"
)

// Message is immutable once created; there is no update or delete path.
// Either Text or Image must be non-empty, enforced before persistence.
type Message struct {
	gorm.Model
	ConversationID uint   `gorm:"not null;index" json:"conversation_id"`
	SenderID       uint   `gorm:"not null" json:"sender"`
	ReceiverID     uint   `gorm:"not null" json:"receiver"`
	Text           string `gorm:"default:''" json:"text"`
	Image          string `gorm:"default:''" json:"img"`
	Sender         *User  `gorm:"foreignKey:SenderID" json:"sender_info,omitempty"`
	Receiver       *User  `gorm:"foreignKey:ReceiverID" json:"receiver_info,omitempty"`
}
