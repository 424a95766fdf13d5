package device

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Update is one published evaluation outcome.
type Update struct {
	SessionID      uuid.UUID
	Trigger        Trigger
	Classification Classification
}

// Subscriber receives classification updates from a session. Safe for
// concurrent use. Slow subscribers drop updates rather than block the
// evaluation pipeline.
type Subscriber struct {
	ch     chan Update
	closed bool
	mu     sync.RWMutex
}

func newSubscriber(bufferSize int) *Subscriber {
	return &Subscriber{ch: make(chan Update, bufferSize)}
}

// Updates returns the channel updates arrive on. Closed when the
// subscription is released.
func (s *Subscriber) Updates() <-chan Update {
	return s.ch
}

// Close releases the subscription. Idempotent.
func (s *Subscriber) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		close(s.ch)
		s.closed = true
	}
	return nil
}

func (s *Subscriber) send(u Update) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false
	}
	select {
	case s.ch <- u:
		return true
	default:
		return false
	}
}

// hub fans evaluation results out to subscribers without ever blocking
// the single-threaded evaluation path.
type hub struct {
	subscribers map[*Subscriber]struct{}
	bufferSize  int
	done        bool
	stop        chan struct{}
	mu          sync.RWMutex
	cleanupWg   sync.WaitGroup
}

func newHub(bufferSize int) *hub {
	return &hub{
		subscribers: make(map[*Subscriber]struct{}),
		bufferSize:  max(bufferSize, 1),
		stop:        make(chan struct{}),
	}
}

// subscribe registers a new subscriber scoped to ctx: cancellation
// releases it on every exit path, including abnormal teardown.
func (h *hub) subscribe(ctx context.Context) *Subscriber {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub := newSubscriber(h.bufferSize)
	if h.done {
		_ = sub.Close()
		return sub
	}
	h.subscribers[sub] = struct{}{}

	if ctx.Done() != nil {
		h.cleanupWg.Add(1)
		go func() {
			defer h.cleanupWg.Done()
			select {
			case <-ctx.Done():
				h.unsubscribe(sub)
			case <-h.stop:
				// Hub closed first; it already released the subscriber.
			}
		}()
	}

	return sub
}

func (h *hub) publish(u Update) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.done {
		return
	}
	for sub := range h.subscribers {
		if !sub.send(u) {
			// Slow or closed subscriber: drop it asynchronously so the
			// publish path never takes the write lock.
			go h.unsubscribe(sub)
		}
	}
}

func (h *hub) close() error {
	h.mu.Lock()
	if h.done {
		h.mu.Unlock()
		return nil
	}
	h.done = true
	close(h.stop)
	for sub := range h.subscribers {
		_ = sub.Close()
	}
	clear(h.subscribers)
	h.mu.Unlock()

	h.cleanupWg.Wait()
	return nil
}

func (h *hub) unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subscribers, sub)
	_ = sub.Close()
}
