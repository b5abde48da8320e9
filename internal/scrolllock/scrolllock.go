// Package scrolllock coordinates the single page-wide scroll lock shared by
// every overlay in a program.
//
// Overlays never toggle the target directly. Each one takes a Handle from a
// Manager and releases it when it is done; the target is locked while at
// least one handle is outstanding.
package scrolllock

import (
	"sync"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/glint/internal/logger"
)

// Target is the surface whose scrolling gets suppressed.
type Target interface {
	SetScrollLocked(locked bool)
}

// Manager reference-counts scroll lock holders.
type Manager struct {
	mu      sync.Mutex
	target  Target
	holders map[string]string
	log     *logger.Logger
}

// NewManager creates a manager for target. Either argument may be nil; a
// target can be attached later with SetTarget.
func NewManager(target Target, log *logger.Logger) *Manager {
	return &Manager{
		target:  target,
		holders: make(map[string]string),
		log:     log.Component("scrolllock"),
	}
}

var (
	defaultOnce    sync.Once
	defaultManager *Manager
)

// Default returns the process-wide manager.
func Default() *Manager {
	defaultOnce.Do(func() {
		defaultManager = NewManager(nil, nil)
	})
	return defaultManager
}

// SetTarget replaces the locked surface. The new target immediately
// reflects the current lock state and the old one is unlocked.
func (m *Manager) SetTarget(target Target) {
	m.mu.Lock()
	defer m.mu.Unlock()

	locked := len(m.holders) > 0
	if m.target != nil && locked {
		m.target.SetScrollLocked(false)
	}
	m.target = target
	if m.target != nil {
		m.target.SetScrollLocked(locked)
	}
}

// Acquire registers a new holder and locks the target when it is the first.
func (m *Manager) Acquire(owner string) *Handle {
	h := &Handle{id: uuid.NewString(), owner: owner, manager: m}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.holders[h.id] = owner
	count := len(m.holders)
	if count == 1 && m.target != nil {
		m.target.SetScrollLocked(true)
	}
	m.log.DebugFields("scroll lock acquired", map[string]any{"owner": owner, "handle": h.id, "holders": count})
	return h
}

func (m *Manager) release(h *Handle) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.holders[h.id]; !ok {
		return
	}
	delete(m.holders, h.id)
	count := len(m.holders)
	if count == 0 && m.target != nil {
		m.target.SetScrollLocked(false)
	}
	m.log.DebugFields("scroll lock released", map[string]any{"owner": h.owner, "handle": h.id, "holders": count})
}

// Locked reports whether any holder is outstanding.
func (m *Manager) Locked() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.holders) > 0
}

// Holders returns the number of outstanding handles.
func (m *Manager) Holders() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.holders)
}

// Handle is one outstanding hold on the scroll lock.
type Handle struct {
	id      string
	owner   string
	manager *Manager
	once    sync.Once
}

// ID returns the unique handle identifier.
func (h *Handle) ID() string { return h.id }

// Owner returns the name supplied at acquisition.
func (h *Handle) Owner() string { return h.owner }

// Release drops the hold. Calling it more than once has no further effect.
func (h *Handle) Release() {
	if h == nil {
		return
	}
	h.once.Do(func() {
		h.manager.release(h)
	})
}
