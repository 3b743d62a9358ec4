package services

import (
	"log"
	"strconv"
	"time"

	"pairchat/internal/enums"
	"pairchat/internal/hub"
	"pairchat/internal/interfaces"
	"pairchat/internal/models/socket"
)

// PresenceService drives the presence registry around connect and disconnect:
// the in-memory table, the durable online flag, the redis mirror and the
// status broadcasts to every live connection.
type PresenceService struct {
	registry *hub.PresenceRegistry
	rooms    *hub.RoomManager
	userRepo interfaces.UserRepository
	cache    interfaces.PresenceCache
}

func NewPresenceService(
	registry *hub.PresenceRegistry,
	rooms *hub.RoomManager,
	userRepo interfaces.UserRepository,
	cache interfaces.PresenceCache,
) *PresenceService {
	return &PresenceService{
		registry: registry,
		rooms:    rooms,
		userRepo: userRepo,
		cache:    cache,
	}
}

// Connect registers the client as the user's active session. If the durable
// write of the online flag fails the registry keeps the mapping and the error
// is returned for logging; the divergence is tolerated, not retried.
func (ps *PresenceService) Connect(userID uint, client *hub.Client) error {
	if replaced := ps.registry.Register(userID, client); replaced != nil {
		ps.rooms.DropClient(replaced)
		if err := replaced.Close(); err != nil {
			log.Printf("Error closing replaced session of user %v: %v", userID, err)
		}
	}

	var persistErr error
	lastSeen, err := ps.userRepo.SetOnlineStatus(userID, true)
	if err != nil {
		persistErr = err
	} else {
		ps.mirrorStatus(userID, true, lastSeen)
	}

	ps.registry.Broadcast(enums.SOCKET_EVENT_USER_ONLINE, socket.UserStatusPayload{
		UserID: formatUserID(userID),
	}, client)

	if err := client.Send(enums.SOCKET_EVENT_ONLINE_USERS, socket.OnlineUsersPayload{
		Users: ps.OnlineUsers(),
	}); err != nil {
		log.Printf("Error sending online users to user %v: %v", userID, err)
	}

	return persistErr
}

// Disconnect unregisters the client. A disconnect that arrives after the user
// re-registered on a new connection is a no-op apart from room cleanup.
func (ps *PresenceService) Disconnect(userID uint, client *hub.Client) {
	ps.rooms.DropClient(client)

	if !ps.registry.Unregister(userID, client) {
		return
	}

	lastSeen, err := ps.userRepo.SetOnlineStatus(userID, false)
	if err != nil {
		log.Printf("Failed to persist offline status of user %v: %v", userID, err)
	} else {
		ps.mirrorStatus(userID, false, lastSeen)
	}

	ps.registry.Broadcast(enums.SOCKET_EVENT_USER_OFFLINE, socket.UserStatusPayload{
		UserID: formatUserID(userID),
	}, nil)
}

func (ps *PresenceService) JoinRoom(client *hub.Client, conversationID uint) {
	ps.rooms.Join(client, conversationID)
}

func (ps *PresenceService) LeaveRoom(client *hub.Client, conversationID uint) {
	ps.rooms.Leave(client, conversationID)
}

// OnlineUsers answers "who is online" from the registry snapshot.
func (ps *PresenceService) OnlineUsers() []string {
	ids := ps.registry.Snapshot()
	users := make([]string, 0, len(ids))
	for _, id := range ids {
		users = append(users, formatUserID(id))
	}
	return users
}

func (ps *PresenceService) Shutdown() {
	ps.registry.CloseAll()
}

func (ps *PresenceService) mirrorStatus(userID uint, online bool, lastSeen *time.Time) {
	if ps.cache == nil || lastSeen == nil {
		return
	}
	if err := ps.cache.SetOnlineStatus(userID, online, *lastSeen); err != nil {
		log.Printf("Error while updating user %v online status on cache: %v", userID, err)
	}
}

func formatUserID(userID uint) string {
	return strconv.FormatUint(uint64(userID), 10)
}
