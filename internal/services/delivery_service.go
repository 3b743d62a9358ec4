package services

import (
	"log"

	"pairchat/internal/enums"
	"pairchat/internal/hub"
	"pairchat/internal/models"
	"pairchat/internal/models/socket"
)

// DeliveryService fans a persisted message out to its live targets and relays
// client acknowledgments. Every emission is best effort: failures are logged,
// never surfaced, and the durable record stays the source of truth.
type DeliveryService struct {
	registry *hub.PresenceRegistry
	rooms    *hub.RoomManager
}

func NewDeliveryService(registry *hub.PresenceRegistry, rooms *hub.RoomManager) *DeliveryService {
	return &DeliveryService{
		registry: registry,
		rooms:    rooms,
	}
}

// Dispatch must only be called with an already persisted message. It emits
// newMessage to the conversation room, falls back to the receiver's direct
// connection when the receiver is online but not in the room, and confirms to
// the sender with messageSent. Offline targets are skipped; they catch up via
// history.
func (ds *DeliveryService) Dispatch(message *models.Message) {
	conversationID := message.ConversationID

	ds.rooms.Broadcast(conversationID, enums.SOCKET_EVENT_NEW_MESSAGE, message, nil)

	if receiver := ds.registry.Lookup(message.ReceiverID); receiver != nil &&
		!ds.rooms.IsMember(receiver, conversationID) {
		if err := receiver.Send(enums.SOCKET_EVENT_NEW_MESSAGE, message); err != nil {
			log.Printf("Error delivering message %v to receiver %v: %v", message.ID, message.ReceiverID, err)
		}
	}

	if sender := ds.registry.Lookup(message.SenderID); sender != nil {
		if err := sender.Send(enums.SOCKET_EVENT_MESSAGE_SENT, socket.MessageSentPayload{
			MessageID:      message.ID,
			Timestamp:      message.CreatedAt,
			Message:        message,
			ConversationID: conversationID,
		}); err != nil {
			log.Printf("Error confirming message %v to sender %v: %v", message.ID, message.SenderID, err)
		}
	}
}

// RelayReceipt forwards a client's delivery acknowledgment to the rest of the
// room. The signal is transient; nothing is persisted.
func (ds *DeliveryService) RelayReceipt(conversationID, messageID uint, receivedBy string, from *hub.Client) {
	ds.rooms.Broadcast(conversationID, enums.SOCKET_EVENT_MESSAGE_DELIVERED, socket.MessageDeliveredPayload{
		MessageID:  messageID,
		ReceivedBy: receivedBy,
	}, from)
}

// RelayTyping forwards a typing signal to the other members of the room.
func (ds *DeliveryService) RelayTyping(conversationID uint, userID string, from *hub.Client) {
	ds.rooms.Broadcast(conversationID, enums.SOCKET_EVENT_USER_TYPING, socket.UserStatusPayload{
		UserID: userID,
	}, from)
}

func (ds *DeliveryService) RelayStopTyping(conversationID uint, userID string, from *hub.Client) {
	ds.rooms.Broadcast(conversationID, enums.SOCKET_EVENT_USER_STOPPED_TYPING, socket.UserStatusPayload{
		UserID: userID,
	}, from)
}
