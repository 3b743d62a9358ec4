package repositories

import (
	"errors"

	"pairchat/internal/errs"
	"pairchat/internal/models"
	"pairchat/internal/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{
		db: db,
	}
}

// FindOrCreateConversation returns the single conversation between the pair,
// creating it on first contact. The insert rides the unique index on the
// ordered pair with conflict-as-success semantics, so two concurrent first
// sends converge on one row.
func (chr *ChatRepository) FindOrCreateConversation(userOneID, userTwoID uint) (*models.Conversation, error) {
	low, high := models.OrderedPair(userOneID, userTwoID)

	conversation := models.Conversation{
		UserOneID: low,
		UserTwoID: high,
	}
	if err := chr.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&conversation).Error; err != nil {
		return nil, err
	}

	// On conflict the insert returns no row; read back whichever insert won.
	var existing models.Conversation
	if err := chr.db.
		Where("user_one_id = ? AND user_two_id = ?", low, high).
		First(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// SaveMessage persists the message and moves the conversation's last-message
// pointer in one transaction, then reloads it with participants resolved.
func (chr *ChatRepository) SaveMessage(message *models.Message) (*models.Message, error) {
	transactionErr := chr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return err
		}
		return tx.Model(&models.Conversation{}).
			Where("id = ?", message.ConversationID).
			Update("last_message_id", message.ID).Error
	})
	if transactionErr != nil {
		return nil, transactionErr
	}

	var saved models.Message
	if err := chr.db.
		Preload("Sender").
		Preload("Receiver").
		First(&saved, message.ID).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

// GetMessagesBetween returns the full exchange between two users, ascending
// by creation time.
func (chr *ChatRepository) GetMessagesBetween(userID, peerID uint) ([]models.Message, error) {
	var messages []models.Message
	if err := chr.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, peerID, peerID, userID).
		Order("created_at ASC").
		Preload("Sender").
		Preload("Receiver").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (chr *ChatRepository) GetConversationByID(conversationID uint) (*models.Conversation, error) {
	var conversation models.Conversation
	if err := chr.db.
		Preload("UserOne").
		Preload("UserTwo").
		Preload("LastMessage").
		First(&conversation, conversationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrConversationNotFound
		}
		return nil, err
	}
	return &conversation, nil
}

func (chr *ChatRepository) CheckUserInConversation(userID, conversationID uint) bool {
	var count int64
	chr.db.Model(&models.Conversation{}).
		Where("id = ? AND (user_one_id = ? OR user_two_id = ?)", conversationID, userID, userID).
		Count(&count)
	return count > 0
}

func (chr *ChatRepository) GetUserConversations(userID uint, page, size int) (*models.ConversationListResponse, error) {
	var conversations []models.Conversation
	var total int64

	transactionErr := chr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Scopes(utils.Paginate(page, size)).
			Preload("UserOne").
			Preload("UserTwo").
			Preload("LastMessage").
			Where("user_one_id = ? OR user_two_id = ?", userID, userID).
			Order("updated_at DESC").
			Find(&conversations).Error; err != nil {
			return err
		}
		return tx.Model(&models.Conversation{}).
			Where("user_one_id = ? OR user_two_id = ?", userID, userID).
			Count(&total).Error
	})
	if transactionErr != nil {
		return nil, transactionErr
	}

	conversationResponses := make([]models.ConversationResponse, 0, len(conversations))
	for _, conversation := range conversations {
		conversationResponses = append(conversationResponses, conversation.ToConversationResponse())
	}

	return &models.ConversationListResponse{
		Conversations: conversationResponses,
		Page:          page,
		Size:          size,
		Total:         total,
	}, nil
}
