// Package transport exposes the dispatcher over SSE, plain HTTP, and stdio
package transport

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

const (
	// inboundDepth bounds the per-session request queue; a full queue
	// rejects the POST with 429 instead of blocking the sender
	inboundDepth = 64

	// outboundDepth caps buffered responses; past it the oldest is dropped
	// so a stalled reader cannot pin memory
	outboundDepth = 256
)

// session is the state behind one open SSE stream
type session struct {
	id       string
	inbound  chan []byte
	outbound chan []byte
	ctx      context.Context
	cancel   context.CancelFunc
}

// offer enqueues one raw request without blocking
// false means the inbound queue is full
func (s *session) offer(raw []byte) bool {
	select {
	case s.inbound <- raw:
		return true
	default:
		return false
	}
}

// emit queues one response, dropping the oldest buffered one when full
func (s *session) emit(raw []byte) {
	for {
		select {
		case s.outbound <- raw:
			return
		default:
			select {
			case <-s.outbound:
			default:
			}
		}
	}
}

// sessionTable maps session ids to live sessions
// contention is bounded by the number of open SSE streams
type sessionTable struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

func newSessionTable() *sessionTable {
	return &sessionTable{sessions: map[string]*session{}}
}

// add creates a session whose lifetime follows ctx
func (t *sessionTable) add(ctx context.Context) *session {
	sctx, cancel := context.WithCancel(ctx)
	s := &session{
		id:       uuid.NewString(),
		inbound:  make(chan []byte, inboundDepth),
		outbound: make(chan []byte, outboundDepth),
		ctx:      sctx,
		cancel:   cancel,
	}
	t.mu.Lock()
	t.sessions[s.id] = s
	t.mu.Unlock()
	return s
}

func (t *sessionTable) get(id string) (*session, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.sessions[id]
	return s, ok
}

// remove tears the session down: pending inbound messages are dropped and
// any in-flight handler sees the cancelation on its context
func (t *sessionTable) remove(id string) {
	t.mu.Lock()
	s, ok := t.sessions[id]
	delete(t.sessions, id)
	t.mu.Unlock()
	if ok {
		s.cancel()
	}
}

func (t *sessionTable) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.sessions)
}
