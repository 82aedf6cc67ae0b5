package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Armeldehe/ivoirestore-client/internal/cart"
	"github.com/Armeldehe/ivoirestore-client/internal/checkout"
)

// Session groups the per-shopper state: the cart and its UI coordinator.
// Sessions live in memory only; a cart does not survive the process or the
// TTL window.
type Session struct {
	ID   string
	Cart *cart.Store
	UI   *checkout.Coordinator
}

type entry struct {
	session  *Session
	lastSeen time.Time
}

// Manager hands out sessions keyed by uuid and evicts the ones idle longer
// than the TTL window.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	nowFunc  func() time.Time
	logger   *zap.Logger
}

// NewManager returns a Manager evicting sessions idle longer than ttl.
func NewManager(ttl time.Duration, logger *zap.Logger) *Manager {
	return &Manager{
		sessions: map[string]*entry{},
		ttl:      ttl,
		nowFunc:  time.Now,
		logger:   logger,
	}
}

// Create mints a new session with an empty cart.
func (m *Manager) Create() *Session {
	crt := cart.NewStore()
	sess := &Session{
		ID:   uuid.NewString(),
		Cart: crt,
		UI:   checkout.NewCoordinator(crt),
	}

	m.mu.Lock()
	m.sessions[sess.ID] = &entry{session: sess, lastSeen: m.nowFunc()}
	m.mu.Unlock()
	return sess
}

// Get returns the session for id, refreshing its idle timer. The second
// return is false when the id is unknown or already evicted.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = m.nowFunc()
	return e.session, true
}

// GetOrCreate resolves id to a live session, minting a fresh one when id is
// empty or expired.
func (m *Manager) GetOrCreate(id string) *Session {
	if id != "" {
		if sess, ok := m.Get(id); ok {
			return sess
		}
	}
	return m.Create()
}

// Sweep evicts idle sessions and returns how many were removed.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.nowFunc().Add(-m.ttl)
	var evicted int
	for id, e := range m.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// StartSweeper runs Sweep every interval until ctx is done.
func (m *Manager) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := m.Sweep(); n > 0 {
					m.logger.Info("evicted idle sessions", zap.Int("count", n))
				}
			}
		}
	}()
}
