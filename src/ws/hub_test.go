package ws

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubscriber struct {
	mu     sync.Mutex
	events []SummaryEvent
	err    error
}

func (f *fakeSubscriber) WriteJSON(v interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	ev, ok := v.(SummaryEvent)
	if !ok {
		return errors.New("unexpected payload type")
	}
	f.events = append(f.events, ev)
	return nil
}

func (f *fakeSubscriber) received() []SummaryEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]SummaryEvent, len(f.events))
	copy(out, f.events)
	return out
}

func TestBroadcastSummaryNoSubscribers(t *testing.T) {
	hub := NewHub()

	// must not panic or block with nobody listening
	hub.BroadcastSummary("ผลสรุปรอบแรก")

	assert.Equal(t, 0, hub.Count())
}

func TestBroadcastSummaryDeliversToAll(t *testing.T) {
	hub := NewHub()
	a := &fakeSubscriber{}
	b := &fakeSubscriber{}
	hub.Register(a)
	hub.Register(b)

	hub.BroadcastSummary("consensus is emerging")

	for _, sub := range []*fakeSubscriber{a, b} {
		events := sub.received()
		require.Len(t, events, 1)
		assert.Equal(t, "summary_updated", events[0].Type)
		assert.Equal(t, "consensus is emerging", events[0].Summary)
	}
}

func TestBroadcastSummaryDropsFailedSubscriber(t *testing.T) {
	hub := NewHub()
	healthy := &fakeSubscriber{}
	broken := &fakeSubscriber{err: errors.New("connection reset")}
	hub.Register(healthy)
	hub.Register(broken)
	require.Equal(t, 2, hub.Count())

	hub.BroadcastSummary("first")

	// broken connection is pruned, healthy one still gets everything
	assert.Equal(t, 1, hub.Count())
	require.Len(t, healthy.received(), 1)

	hub.BroadcastSummary("second")
	assert.Len(t, healthy.received(), 2)
	assert.Empty(t, broken.received())
}

func TestRegisterIsIdempotent(t *testing.T) {
	hub := NewHub()
	sub := &fakeSubscriber{}

	hub.Register(sub)
	hub.Register(sub)
	assert.Equal(t, 1, hub.Count())

	hub.BroadcastSummary("once only")
	assert.Len(t, sub.received(), 1)

	hub.Unregister(sub)
	hub.Unregister(sub) // double unregister is a no-op
	assert.Equal(t, 0, hub.Count())
}

// serialSubscriber flags any overlapping WriteJSON invocations, which
// the real websocket connection forbids.
type serialSubscriber struct {
	inFlight int32
	overlap  int32
	writes   int32
}

func (s *serialSubscriber) WriteJSON(v interface{}) error {
	if atomic.AddInt32(&s.inFlight, 1) > 1 {
		atomic.StoreInt32(&s.overlap, 1)
	}
	time.Sleep(time.Millisecond)
	atomic.AddInt32(&s.inFlight, -1)
	atomic.AddInt32(&s.writes, 1)
	return nil
}

func TestBroadcastSummarySerializesWritesPerSubscriber(t *testing.T) {
	hub := NewHub()
	sub := &serialSubscriber{}
	hub.Register(sub)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hub.BroadcastSummary("overlapping push")
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(0), atomic.LoadInt32(&sub.overlap),
		"WriteJSON must never run concurrently on one subscriber")
	assert.Equal(t, int32(8), atomic.LoadInt32(&sub.writes))
}

func TestHubConcurrentRegisterBroadcast(t *testing.T) {
	hub := NewHub()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			sub := &fakeSubscriber{}
			hub.Register(sub)
			hub.Unregister(sub)
		}()
		go func() {
			defer wg.Done()
			hub.BroadcastSummary("racing")
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, hub.Count())
}
