package events

import (
	"sync"
)

// Hub is the in-process wake-up registry for SSE subscribers. Each
// subscriber holds a 1-buffered channel; Wake performs a non-blocking
// send, so a slow subscriber coalesces wake-ups instead of queueing
// them. Correctness never depends on a wake arriving: the SSE poll loop
// re-queries on its own timer regardless.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[chan struct{}]struct{}
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[chan struct{}]struct{})}
}

// Subscribe registers a wake channel for a patient. The returned cancel
// function must be called when the subscriber disconnects.
func (h *Hub) Subscribe(patientID string) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	h.mu.Lock()
	if h.subs[patientID] == nil {
		h.subs[patientID] = make(map[chan struct{}]struct{})
	}
	h.subs[patientID][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if set := h.subs[patientID]; set != nil {
			delete(set, ch)
			if len(set) == 0 {
				delete(h.subs, patientID)
			}
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Wake nudges every subscriber of the patient.
func (h *Hub) Wake(patientID string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs[patientID] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// SubscriberCount reports active subscribers for a patient.
func (h *Hub) SubscriberCount(patientID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[patientID])
}
