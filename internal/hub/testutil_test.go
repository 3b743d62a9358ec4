package hub

import (
	"errors"
	"sync"

	"pairchat/internal/models/socket"
)

// fakeConn records every envelope written to it.
type fakeConn struct {
	mu         sync.Mutex
	events     []socket.ServerEvent
	closed     bool
	failWrites bool
}

func (fc *fakeConn) WriteJSON(v any) error {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if fc.failWrites {
		return errors.New("write failed")
	}
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
