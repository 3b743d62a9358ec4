package hub

import (
	"log"
	"sync"
)

// RoomManager keeps per-conversation broadcast groups. Membership is purely
// in-memory and connection-scoped; it disappears with the connection.
type RoomManager struct {
	mu          sync.Mutex
	rooms       map[uint]map[*Client]struct{}
	memberships map[*Client]map[uint]struct{}
}

func NewRoomManager() *RoomManager {
	return &RoomManager{
		rooms:       make(map[uint]map[*Client]struct{}),
		memberships: make(map[*Client]map[uint]struct{}),
	}
}

func (rm *RoomManager) Join(client *Client, conversationID uint) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	room, ok := rm.rooms[conversationID]
	if !ok {
		room = make(map[*Client]struct{})
		rm.rooms[conversationID] = room
	}
	room[client] = struct{}{}

	joined, ok := rm.memberships[client]
	if !ok {
		joined = make(map[uint]struct{})
		rm.memberships[client] = joined
	}
	joined[conversationID] = struct{}{}
}

func (rm *RoomManager) Leave(client *Client, conversationID uint) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	rm.leaveLocked(client, conversationID)
}

func (rm *RoomManager) leaveLocked(client *Client, conversationID uint) {
	if room, ok := rm.rooms[conversationID]; ok {
		delete(room, client)
		if len(room) == 0 {
			delete(rm.rooms, conversationID)
		}
	}
	if joined, ok := rm.memberships[client]; ok {
		delete(joined, conversationID)
		if len(joined) == 0 {
			delete(rm.memberships, client)
		}
	}
}

func (rm *RoomManager) IsMember(client *Client, conversationID uint) bool {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	_, ok := rm.rooms[conversationID][client]
	return ok
}

// DropClient clears every membership of a terminated connection.
func (rm *RoomManager) DropClient(client *Client) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	for conversationID := range rm.memberships[client] {
		rm.leaveLocked(client, conversationID)
	}
	delete(rm.memberships, client)
}

// Broadcast sends an event to every member of the conversation room except
// exclude. Write failures are logged and swallowed.
func (rm *RoomManager) Broadcast(conversationID uint, event string, payload any, exclude *Client) {
	for _, member := range rm.members(conversationID, exclude) {
		if err := member.Send(event, payload); err != nil {
			log.Printf("Error broadcasting %v to room %v member %v: %v", event, conversationID, member.UserID, err)
		}
	}
}

func (rm *RoomManager) members(conversationID uint, exclude *Client) []*Client {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	room := rm.rooms[conversationID]
	targets := make([]*Client, 0, len(room))
	for member := range room {
		if member == exclude {
			continue
		}
		targets = append(targets, member)
	}
	return targets
}
