package services

import (
	"pairchat/internal/errs"
	"pairchat/internal/interfaces"
	"pairchat/internal/models"
)

type ChatService struct {
	chatRepo    interfaces.ChatRepository
	fileManager *FileManagerService
}

func NewChatService(chatRepo interfaces.ChatRepository, fileManager *FileManagerService) *ChatService {
	return &ChatService{
		chatRepo:    chatRepo,
		fileManager: fileManager,
	}
}

// SendMessage validates, uploads the image if one was attached, finds or
// creates the pair's conversation and persists the message. A rejected send
// never creates a conversation or message.
func (cs *ChatService) SendMessage(senderID, receiverID uint, text, image string) (*models.Message, error) {
	if receiverID == 0 {
		return nil, errs.ErrReceiverRequired
	}
	if senderID == receiverID {
		return nil, errs.ErrSelfConversation
	}
	if text == "" && image == "" {
		return nil, errs.ErrMessageContentRequired
	}

	imageURL := ""
	if image != "" {
		url, err := cs.fileManager.UploadMessageImage(image)
		if err != nil {
			return nil, errs.ErrImageUploadFailed
		}
		imageURL = url
	}

	conversation, err := cs.chatRepo.FindOrCreateConversation(senderID, receiverID)
	if err != nil {
		return nil, err
	}

	message := &models.Message{
		ConversationID: conversation.ID,
		SenderID:       senderID,
		ReceiverID:     receiverID,
		Text:           text,
		Image:          imageURL,
	}
	return cs.chatRepo.SaveMessage(message)
}

// GetMessagesBetween returns the history of the pair, ascending by creation
// time.
func (cs *ChatService) GetMessagesBetween(userID, peerID uint) ([]models.Message, error) {
	if peerID == 0 {
		return nil, errs.ErrReceiverRequired
	}
	return cs.chatRepo.GetMessagesBetween(userID, peerID)
}

func (cs *ChatService) GetUserConversations(userID uint, page, size int) (*models.ConversationListResponse, error) {
	return cs.chatRepo.GetUserConversations(userID, page, size)
}

func (cs *ChatService) CheckUserInConversation(userID, conversationID uint) bool {
	return cs.chatRepo.CheckUserInConversation(userID, conversationID)
}
