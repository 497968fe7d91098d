// Package spectate streams world snapshots to read-only websocket viewers.
package spectate

import (
	"encoding/json"
	"sync"

	"github.com/samdwyer/straightahead/internal/world"
)

// sendBuffer is how many snapshots a viewer may lag behind before it is dropped.
const sendBuffer = 16

// Hub fans snapshots out to connected viewers. Publish never blocks the caller.
type Hub struct {
	mu      sync.RWMutex
	viewers map[*viewer]struct{}
	last    []byte
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		viewers: make(map[*viewer]struct{}),
	}
}

// Publish encodes the snapshot and queues it for every viewer. Viewers whose
// queue is full are disconnected.
func (h *Hub) Publish(s world.Snapshot) error {
	msg, err := json.Marshal(s)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.last = msg
	for v := range h.viewers {
		select {
		case v.send <- msg:
		default:
			h.removeLocked(v)
		}
	}
	return nil
}

// Count returns the number of connected viewers.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.viewers)
}

// add registers a viewer and queues the latest snapshot for it.
func (h *Hub) add(v *viewer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.viewers[v] = struct{}{}
	if h.last != nil {
		v.send <- h.last
	}
}

// remove unregisters a viewer and closes its queue.
func (h *Hub) remove(v *viewer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(v)
}

func (h *Hub) removeLocked(v *viewer) {
	if _, ok := h.viewers[v]; !ok {
		return
	}
	delete(h.viewers, v)
	close(v.send)
}
