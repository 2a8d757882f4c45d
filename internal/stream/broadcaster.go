// Package stream fans emitted alerts out to live subscribers (the SSE
// endpoint). Slow subscribers are skipped, never blocked on.
package stream

import (
	"sync"
	"sync/atomic"

	"github.com/invincible-jha/aumai-jaldrishti/internal/models"
)

// subscriber channel depth; ingestion bursts beyond this drop for that
// subscriber only.
const subscriberBuffer = 100

type Broadcaster struct {
	subscribers map[uint64]chan models.WaterAlert
	nextID      atomic.Uint64
	mu          sync.RWMutex
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[uint64]chan models.WaterAlert),
	}
}

func (b *Broadcaster) Subscribe() (uint64, <-chan models.WaterAlert) {
	id := b.nextID.Add(1)
	ch := make(chan models.WaterAlert, subscriberBuffer)

	b.mu.Lock()
	b.subscribers[id] = ch
	b.mu.Unlock()

	return id, ch
}

func (b *Broadcaster) Unsubscribe(id uint64) {
	b.mu.Lock()
	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
	}
	b.mu.Unlock()
}

func (b *Broadcaster) Broadcast(alert models.WaterAlert) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- alert:
		default:
			// Skip slow subscribers
		}
	}
}

func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Close closes every subscriber channel so streams exit gracefully.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, ch := range b.subscribers {
		close(ch)
		delete(b.subscribers, id)
	}
}
