package interfaces

import "time"

// PresenceCache mirrors the durable online flag into a fast store for status
// queries. All writes are best effort.
type PresenceCache interface {
	SetOnlineStatus(userID uint, online bool, lastSeen time.Time) error
	GetOnlineStatus(userID uint) (bool, *time.Time, error)
}
