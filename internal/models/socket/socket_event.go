package socket

import (
	"encoding/json"
	"time"

	"pairchat/internal/models"
)

// SocketEvent is the inbound envelope read from a client connection.
type SocketEvent struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// ServerEvent is the outbound envelope written to client connections.
type ServerEvent struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// RoomPayload accompanies joinRoom, leaveRoom, typing and stopTyping.
type RoomPayload struct {
	ConversationID uint `json:"conversationId"`
}

// ReceiptPayload accompanies messageReceived.
type ReceiptPayload struct {
	MessageID      uint `json:"messageId"`
	ConversationID uint `json:"conversationId"`
}

type OnlineUsersPayload struct {
	Users []string `json:"users"`
}

type UserStatusPayload struct {
	UserID string `json:"userId"`
}

type MessageSentPayload struct {
	MessageID      uint            `json:"messageId"`
	Timestamp      time.Time       `json:"timestamp"`
	Message        *models.Message `json:"message"`
	ConversationID uint            `json:"conversationId"`
}

type MessageDeliveredPayload struct {
	MessageID  uint   `json:"messageId"`
	ReceivedBy string `json:"receivedBy"`
}
