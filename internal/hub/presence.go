package hub

import (
	"log"
	"sync"
)

// PresenceRegistry is the process-wide table of online users. One active
// connection per user: registering again silently replaces the previous
// session (single-session simplification). The table is empty on process
// start, so every user appears offline until they reconnect.
type PresenceRegistry struct {
	mu      sync.Mutex
	clients map[uint]*Client
}

func NewPresenceRegistry() *PresenceRegistry {
	return &PresenceRegistry{
		clients: make(map[uint]*Client),
	}
}

// Register upserts the mapping for userID and returns the displaced client,
// if any, so the caller can close it.
func (pr *PresenceRegistry) Register(userID uint, client *Client) *Client {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	replaced := pr.clients[userID]
	pr.clients[userID] = client
	return replaced
}

// Unregister removes the mapping only while it still points at client. A
// disconnect of a session that has already been replaced is a no-op, which
// keeps the table last-writer-wins when events interleave around I/O.
func (pr *PresenceRegistry) Unregister(userID uint, client *Client) bool {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	current, ok := pr.clients[userID]
	if !ok || current != client {
		return false
	}
	delete(pr.clients, userID)
	return true
}

func (pr *PresenceRegistry) Lookup(userID uint) *Client {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	return pr.clients[userID]
}

// Snapshot returns the ids of all currently registered users, observed as one
// consistent set.
func (pr *PresenceRegistry) Snapshot() []uint {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	ids := make([]uint, 0, len(pr.clients))
	for id := range pr.clients {
		ids = append(ids, id)
	}
	return ids
}

// Broadcast sends an event to every registered connection except exclude.
// Write failures are logged and swallowed.
func (pr *PresenceRegistry) Broadcast(event string, payload any, exclude *Client) {
	for _, client := range pr.collect(exclude) {
		if err := client.Send(event, payload); err != nil {
			log.Printf("Error broadcasting %v to user %v: %v", event, client.UserID, err)
		}
	}
}

func (pr *PresenceRegistry) collect(exclude *Client) []*Client {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	targets := make([]*Client, 0, len(pr.clients))
	for _, client := range pr.clients {
		if client == exclude {
			continue
		}
		targets = append(targets, client)
	}
	return targets
}

// CloseAll tears down every registered connection, used on shutdown.
func (pr *PresenceRegistry) CloseAll() {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	for userID, client := range pr.clients {
		if err := client.Close(); err != nil {
			log.Printf("Error closing connection of user %v: %v", userID, err)
		}
		delete(pr.clients, userID)
	}
}
