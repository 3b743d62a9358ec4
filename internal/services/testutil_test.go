package services

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"pairchat/internal/errs"
	"pairchat/internal/models"
	"pairchat/internal/models/socket"

	"gorm.io/gorm"
)

// fakeConn records every envelope written to it.
type fakeConn struct {
	mu     sync.Mutex
	events []socket.ServerEvent
	closed bool
}

func (fc *fakeConn) WriteJSON(v any) error {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	event, ok := v.(socket.ServerEvent)
	if !ok {
		return errors.New("unexpected payload type")
	}
	fc.events = append(fc.events, event)
	return nil
}

func (fc *fakeConn) Close() error {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.closed = true
	return nil
}

func (fc *fakeConn) eventsNamed(name string) []socket.ServerEvent {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	var matched []socket.ServerEvent
	for _, event := range fc.events {
		if event.Event == name {
			matched = append(matched, event)
		}
	}
	return matched
}

func (fc *fakeConn) isClosed() bool {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.closed
}

// fakeUserRepo implements interfaces.UserRepository in memory.
type fakeUserRepo struct {
	mu            sync.Mutex
	users         map[uint]*models.User
	statusWrites  []statusWrite
	failSetStatus bool
}

type statusWrite struct {
	userID uint
	online bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User)}
}

func (f *fakeUserRepo) CreateUser(user *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user.ID = uint(len(f.users) + 1)
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) GetUserByEmail(email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errs.ErrUserNotFound
}

func (f *fakeUserRepo) GetUserByID(id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetAllUsersWithPagination(page, size int) (*models.GetUsersResponse, error) {
	return &models.GetUsersResponse{Page: page, Size: size}, nil
}

func (f *fakeUserRepo) SetOnlineStatus(userID uint, online bool) (*time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSetStatus {
		return nil, errors.New("database unreachable")
	}
	f.statusWrites = append(f.statusWrites, statusWrite{userID: userID, online: online})
	now := time.Now()
	return &now, nil
}

func (f *fakeUserRepo) lastStatus() (statusWrite, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.statusWrites) == 0 {
		return statusWrite{}, false
	}
	return f.statusWrites[len(f.statusWrites)-1], true
}

// fakePresenceCache records mirror writes.
type fakePresenceCache struct {
	mu     sync.Mutex
	writes []statusWrite
}

func (f *fakePresenceCache) SetOnlineStatus(userID uint, online bool, lastSeen time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, statusWrite{userID: userID, online: online})
	return nil
}

func (f *fakePresenceCache) GetOnlineStatus(userID uint) (bool, *time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.writes) - 1; i >= 0; i-- {
		if f.writes[i].userID == userID {
			now := time.Now()
			return f.writes[i].online, &now, nil
		}
	}
	return false, nil, errors.New("not cached")
}

// fakeChatRepo implements interfaces.ChatRepository, deduplicating
// conversations by ordered pair like the unique index does.
type fakeChatRepo struct {
	mu            sync.Mutex
	conversations map[[2]uint]*models.Conversation
	messages      []models.Message
	nextConvID    uint
	failSave      bool
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{
		conversations: make(map[[2]uint]*models.Conversation),
	}
}

func (f *fakeChatRepo) FindOrCreateConversation(userOneID, userTwoID uint) (*models.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	low, high := models.OrderedPair(userOneID, userTwoID)
	key := [2]uint{low, high}
	if conversation, ok := f.conversations[key]; ok {
		return conversation, nil
	}
	f.nextConvID++
	conversation := &models.Conversation{
		Model:     gorm.Model{ID: f.nextConvID},
		UserOneID: low,
		UserTwoID: high,
	}
	f.conversations[key] = conversation
	return conversation, nil
}

func (f *fakeChatRepo) SaveMessage(message *models.Message) (*models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSave {
		return nil, errors.New("database unreachable")
	}
	message.ID = uint(len(f.messages) + 1)
	message.CreatedAt = time.Now()
	f.messages = append(f.messages, *message)
	return message, nil
}

func (f *fakeChatRepo) GetMessagesBetween(userID, peerID uint) ([]models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []models.Message
	for _, message := range f.messages {
		if (message.SenderID == userID && message.ReceiverID == peerID) ||
			(message.SenderID == peerID && message.ReceiverID == userID) {
			matched = append(matched, message)
		}
	}
	return matched, nil
}

func (f *fakeChatRepo) GetUserConversations(userID uint, page, size int) (*models.ConversationListResponse, error) {
	return &models.ConversationListResponse{Page: page, Size: size}, nil
}

func (f *fakeChatRepo) CheckUserInConversation(userID, conversationID uint) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, conversation := range f.conversations {
		if conversation.ID == conversationID && conversation.HasParticipant(userID) {
			return true
		}
	}
	return false
}

func (f *fakeChatRepo) conversationCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.conversations)
}

func (f *fakeChatRepo) messageCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages)
}

// fakeFileManager implements interfaces.FileManager.
type fakeFileManager struct {
	mu      sync.Mutex
	uploads []string
	fail    bool
}

func (f *fakeFileManager) UploadFile(fileName string, file io.Reader, fileSize int64, contentType string, bucketName string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return "", errors.New("object store unreachable")
	}
	f.uploads = append(f.uploads, fileName)
	return fmt.Sprintf("http://minio/%s/%s", bucketName, fileName), nil
}
