package ws

import (
	"log"
	"sync"
)

// Subscriber is a live connection the hub can push events to.
// *websocket.Conn satisfies it; tests substitute fakes.
type Subscriber interface {
	WriteJSON(v interface{}) error
}

// SummaryEvent is the only message the server ever pushes.
type SummaryEvent struct {
	Type    string `json:"type"`
	Summary string `json:"summary"`
}

// Hub ดูแล subscriber ที่ต่อ websocket อยู่ และ fan-out summary ให้ทุกตัว
// Constructed once per process and injected where needed.
// The transport allows at most one concurrent writer per connection, so
// each subscriber carries its own write lock: broadcasts racing on
// separate request goroutines serialize per connection instead of
// panicking inside the websocket library.
type Hub struct {
	mu   sync.Mutex
	subs map[Subscriber]*sync.Mutex
}

func NewHub() *Hub {
	return &Hub{subs: make(map[Subscriber]*sync.Mutex)}
}

// Register adds a live subscriber. Registering the same handle twice
// is a no-op (set semantics).
func (h *Hub) Register(s Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[s]; !ok {
		h.subs[s] = &sync.Mutex{}
	}
}

// Unregister removes a subscriber if present; no-op if absent.
func (h *Hub) Unregister(s Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs, s)
}

// Count returns the number of live subscribers.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// BroadcastSummary sends {type:"summary_updated", summary} to every
// registered subscriber. The set is snapshotted first, so connects and
// disconnects racing the broadcast cannot corrupt iteration; each write
// happens under that subscriber's write lock, so overlapping broadcasts
// never write to one connection at the same time. A failed write means
// the connection is gone: the subscriber is dropped and the fan-out
// continues. Never returns an error to the caller.
func (h *Hub) BroadcastSummary(summary string) {
	type target struct {
		sub Subscriber
		wmu *sync.Mutex
	}

	h.mu.Lock()
	snapshot := make([]target, 0, len(h.subs))
	for s, wmu := range h.subs {
		snapshot = append(snapshot, target{sub: s, wmu: wmu})
	}
	h.mu.Unlock()

	event := SummaryEvent{Type: "summary_updated", Summary: summary}

	for _, t := range snapshot {
		t.wmu.Lock()
		err := t.sub.WriteJSON(event)
		t.wmu.Unlock()
		if err != nil {
			log.Println("⚠️ ws broadcast failed, dropping subscriber:", err)
			h.Unregister(t.sub)
		}
	}
}
