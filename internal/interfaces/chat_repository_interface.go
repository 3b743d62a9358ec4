package interfaces

import "pairchat/internal/models"

type ChatRepository interface {
	FindOrCreateConversation(userOneID, userTwoID uint) (*models.Conversation, error)
	SaveMessage(message *models.Message) (*models.Message, error)
	GetMessagesBetween(userID, peerID uint) ([]models.Message, error)
	GetUserConversations(userID uint, page, size int) (*models.ConversationListResponse, error)
	CheckUserInConversation(userID, conversationID uint) bool
}
