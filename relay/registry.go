package relay

import "sync"

// Channel is one user's live bidirectional connection. *websocket.Conn
// satisfies it.
type Channel interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Registry tracks at most one live channel per user. All access goes through
// the mutex; the map is never handed out.
type Registry struct {
	mu    sync.Mutex
	conns map[uint]Channel
}

func NewRegistry() *Registry {
	return &Registry{conns: make(map[uint]Channel)}
}

// Register maps userID to ch, replacing any previous channel. Last writer
// wins; there is no multi-device queueing.
func (r *Registry) Register(userID uint, ch Channel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[userID] = ch
}

// Unregister removes the mapping only if it still points at ch, so a stale
// disconnect cannot clobber a newer connection. Idempotent.
func (r *Registry) Unregister(userID uint, ch Channel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conns[userID] == ch {
		delete(r.conns, userID)
	}
}

// Lookup returns the live channel for userID, if any.
func (r *Registry) Lookup(userID uint) (Channel, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ch, ok := r.conns[userID]
	return ch, ok
}
