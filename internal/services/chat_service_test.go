package services

import (
	"encoding/base64"
	"testing"

	"pairchat/internal/errs"

	"github.com/stretchr/testify/require"
)

func TestChatService_SendMessage(t *testing.T) {
	t.Run("should reject a message with empty text and image before persistence", func(t *testing.T) {
		req := require.New(t)
		chatRepo := newFakeChatRepo()
		svc := NewChatService(chatRepo, NewFileManagerService(&fakeFileManager{}))

		message, err := svc.SendMessage(1, 2, "", "")

		req.ErrorIs(err, errs.ErrMessageContentRequired)
		req.Nil(message)
		req.Zero(chatRepo.conversationCount(), "a rejected send must not create a conversation")
		req.Zero(chatRepo.messageCount())
	})

	t.Run("should reject a missing receiver", func(t *testing.T) {
		req := require.New(t)
		chatRepo := newFakeChatRepo()
		svc := NewChatService(chatRepo, NewFileManagerService(&fakeFileManager{}))

		_, err := svc.SendMessage(1, 0, "hi", "")

		req.ErrorIs(err, errs.ErrReceiverRequired)
		req.Zero(chatRepo.conversationCount())
	})

	t.Run("should reject sender messaging themselves", func(t *testing.T) {
		req := require.New(t)
		chatRepo := newFakeChatRepo()
		svc := NewChatService(chatRepo, NewFileManagerService(&fakeFileManager{}))

		_, err := svc.SendMessage(1, 1, "hi", "")

		req.ErrorIs(err, errs.ErrSelfConversation)
		req.Zero(chatRepo.conversationCount())
	})

	t.Run("should create exactly one conversation per unordered pair", func(t *testing.T) {
		req := require.New(t)
		chatRepo := newFakeChatRepo()
		svc := NewChatService(chatRepo, NewFileManagerService(&fakeFileManager{}))

		first, err := svc.SendMessage(1, 2, "hi", "")
		req.NoError(err)

		// Reply in the opposite direction lands in the same conversation.
		second, err := svc.SendMessage(2, 1, "hello back", "")
		req.NoError(err)

		req.Equal(1, chatRepo.conversationCount())
		req.Equal(first.ConversationID, second.ConversationID)
	})

	t.Run("should upload the image and persist its url", func(t *testing.T) {
		req := require.New(t)
		chatRepo := newFakeChatRepo()
		fileManager := &fakeFileManager{}
		svc := NewChatService(chatRepo, NewFileManagerService(fileManager))

		payload := base64.StdEncoding.EncodeToString([]byte("fake image bytes"))
		message, err := svc.SendMessage(1, 2, "", payload)

		req.NoError(err)
		req.NotEmpty(message.Image)
		req.Contains(message.Image, "chat-images")
		req.Len(fileManager.uploads, 1)
	})

	t.Run("should not persist anything when the image upload fails", func(t *testing.T) {
		req := require.New(t)
		chatRepo := newFakeChatRepo()
		svc := NewChatService(chatRepo, NewFileManagerService(&fakeFileManager{fail: true}))

		payload := base64.StdEncoding.EncodeToString([]byte("fake image bytes"))
		_, err := svc.SendMessage(1, 2, "", payload)

		req.ErrorIs(err, errs.ErrImageUploadFailed)
		req.Zero(chatRepo.conversationCount())
		req.Zero(chatRepo.messageCount())
	})
}

func TestChatService_GetMessagesBetween(t *testing.T) {
	req := require.New(t)
	chatRepo := newFakeChatRepo()
	svc := NewChatService(chatRepo, NewFileManagerService(&fakeFileManager{}))

	_, err := svc.SendMessage(1, 2, "one", "")
	req.NoError(err)
	_, err = svc.SendMessage(2, 1, "two", "")
	req.NoError(err)
	_, err = svc.SendMessage(1, 3, "other pair", "")
	req.NoError(err)

	messages, err := svc.GetMessagesBetween(1, 2)
	req.NoError(err)
	req.Len(messages, 2)
	req.Equal("one", messages[0].Text)
	req.Equal("two", messages[1].Text)
	req.False(messages[1].CreatedAt.Before(messages[0].CreatedAt))

	_, err = svc.GetMessagesBetween(1, 0)
	req.ErrorIs(err, errs.ErrReceiverRequired)
}
