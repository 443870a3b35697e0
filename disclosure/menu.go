// Package disclosure holds the open/closed state of account menus.
//
// Each Menu belongs to exactly one rendered Account. The logical state flips
// synchronously on Toggle; the enter/leave animation is tracked separately
// with its own clock and is only ever used to pick CSS classes.
package disclosure

import (
	"sync"
	"time"
)

// State is the logical disclosure state.
type State int

const (
	// Closed is the initial state: only the trigger is shown.
	Closed State = iota
	// Open means the panel is revealed.
	Open
)

// String returns the string representation of the state.
func (s State) String() string {
	if s == Open {
		return "open"
	}

	return "closed"
}

// Menu is one account menu instance.
type Menu struct {
	id  string
	now func() time.Time

	mu       sync.Mutex
	state    State
	anim     transition
	lastUsed time.Time
}

// MenuOption configures a Menu.
type MenuOption func(*Menu)

// WithClock sets the time source used for the transition overlay and idle
// tracking.
func WithClock(now func() time.Time) MenuOption {
	return func(m *Menu) {
		if now != nil {
			m.now = now
		}
	}
}

// WithTransition overrides the animation classes and timing.
func WithTransition(spec TransitionSpec) MenuOption {
	return func(m *Menu) { m.anim.spec = spec }
}

// NewMenu creates a closed menu.
func NewMenu(id string, opts ...MenuOption) *Menu {
	m := &Menu{
		id:    id,
		now:   time.Now,
		state: Closed,
		anim:  transition{spec: DefaultTransition()},
	}

	for _, opt := range opts {
		opt(m)
	}

	m.lastUsed = m.now()

	return m
}

// ID returns the instance id.
func (m *Menu) ID() string { return m.id }

// Toggle flips the state and returns the new one.
func (m *Menu) Toggle() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == Open {
		m.setLocked(Closed)
	} else {
		m.setLocked(Open)
	}

	return m.state
}

// Close closes the menu if it is open. It reports whether anything changed.
func (m *Menu) Close() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == Closed {
		m.lastUsed = m.now()
		return false
	}

	m.setLocked(Closed)

	return true
}

func (m *Menu) setLocked(s State) {
	now := m.now()

	m.state = s
	m.anim.opening = s == Open
	m.anim.started = now
	m.lastUsed = now
}

// State returns the logical state.
func (m *Menu) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// IsOpen reports whether the menu is open.
func (m *Menu) IsOpen() bool {
	return m.State() == Open
}

// Visible reports whether the panel is interactable. It follows State only.
func (m *Menu) Visible() bool {
	return m.IsOpen()
}

// Phase returns the current animation phase.
func (m *Menu) Phase() Phase {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.anim.phaseAt(m.now())
}

// Classes returns the panel classes for the current animation phase.
func (m *Menu) Classes() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.anim.spec.Classes(m.anim.phaseAt(m.now()))
}

// Transition returns the animation spec.
func (m *Menu) Transition() TransitionSpec {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.anim.spec
}

// LastUsed returns when the menu was mounted or last changed.
func (m *Menu) LastUsed() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.lastUsed
}

// Snapshot is a read-only view of a menu.
type Snapshot struct {
	ID    string `json:"id"`
	State string `json:"state"`
	Phase string `json:"phase"`
	Open  bool   `json:"open"`

	// Classes are the panel classes for Phase.
	Classes string `json:"-"`
}

// Snapshot captures state and phase consistently.
func (m *Menu) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	phase := m.anim.phaseAt(m.now())

	return Snapshot{
		ID:      m.id,
		State:   m.state.String(),
		Phase:   phase.String(),
		Open:    m.state == Open,
		Classes: m.anim.spec.Classes(phase),
	}
}
