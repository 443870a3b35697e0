package disclosure

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/unweave/dashboard/errors"
	"github.com/unweave/dashboard/internal/logger"
)

const (
	// DefaultIdleTTL is how long a mounted menu survives without being touched.
	DefaultIdleTTL = 30 * time.Minute
	// DefaultMaxMenus caps how many menus are mounted at once.
	DefaultMaxMenus = 10000
)

// Store keeps the menus of every Account currently mounted in a browser.
// Menus are never shared: each Mount creates a fresh one.
type Store struct {
	ttl    time.Duration
	max    int
	now    func() time.Time
	logger logger.Logger
	opts   []MenuOption

	mu    sync.RWMutex
	menus map[string]*Menu
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithIdleTTL sets how long an untouched menu is kept.
func WithIdleTTL(ttl time.Duration) StoreOption {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithMaxMenus caps the number of mounted menus. Mounting past the cap
// evicts the least recently used menu.
func WithMaxMenus(n int) StoreOption {
	return func(s *Store) {
		if n > 0 {
			s.max = n
		}
	}
}

// WithStoreClock sets the time source for the store and the menus it mounts.
func WithStoreClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the store logger.
func WithLogger(l logger.Logger) StoreOption {
	return func(s *Store) { s.logger = logger.OrNoop(l) }
}

// WithMenuOptions sets options applied to every mounted menu.
func WithMenuOptions(opts ...MenuOption) StoreOption {
	return func(s *Store) { s.opts = append(s.opts, opts...) }
}

// NewStore creates an empty store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		ttl:    DefaultIdleTTL,
		max:    DefaultMaxMenus,
		now:    time.Now,
		logger: logger.NewNoopLogger(),
		menus:  make(map[string]*Menu),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Mount creates a closed menu with a new id. When the store is full the
// least recently used menu is unmounted first.
func (s *Store) Mount() *Menu {
	opts := make([]MenuOption, 0, len(s.opts)+1)
	opts = append(opts, WithClock(s.now))
	opts = append(opts, s.opts...)

	m := NewMenu(uuid.NewString(), opts...)

	s.mu.Lock()
	defer s.mu.Unlock()

	for len(s.menus) >= s.max {
		id := s.oldestLocked()
		delete(s.menus, id)

		s.logger.Debug("evicted account menu", logger.String("menu_id", id))
	}

	s.menus[m.ID()] = m

	return m
}

func (s *Store) oldestLocked() string {
	var (
		oldestID string
		oldest   time.Time
	)

	for id, m := range s.menus {
		if used := m.LastUsed(); oldestID == "" || used.Before(oldest) {
			oldestID, oldest = id, used
		}
	}

	return oldestID
}

// Get returns a mounted menu.
func (s *Store) Get(id string) (*Menu, error) {
	s.mu.RLock()
	m, ok := s.menus[id]
	s.mu.RUnlock()

	if !ok {
		return nil, errors.ErrMenuNotFound(id)
	}

	return m, nil
}

// Unmount drops a menu. It reports whether the id was mounted.
func (s *Store) Unmount(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.menus[id]; !ok {
		return false
	}

	delete(s.menus, id)

	return true
}

// Len returns the number of mounted menus.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.menus)
}

// Sweep unmounts menus idle for longer than the TTL and returns how many
// were removed. Pages navigated away from never unmount explicitly, so this
// is what reclaims them.
func (s *Store) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0

	for id, m := range s.menus {
		if now.Sub(m.LastUsed()) > s.ttl {
			delete(s.menus, id)
			removed++
		}
	}

	return removed
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(s.now()); n > 0 {
				s.logger.Debug("swept idle account menus",
					logger.Int("removed", n),
					logger.Int("mounted", s.Len()),
				)
			}
		}
	}
}
