package dashboard

import "sync"

// Modals tracks which dialog is open and whether body scrolling is locked.
// Only one modal is expected open at a time; closing any modal releases the
// scroll lock regardless of which one it was.
type Modals struct {
	mu     sync.Mutex
	open   string
	locked bool
}

// Open marks the given modal as open and locks scrolling.
func (m *Modals) Open(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = id
	m.locked = true
}

// Close marks the modal as closed. The scroll lock is released
// unconditionally, even if a different modal was recorded as open.
func (m *Modals) Close(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.open == id {
		m.open = ""
	}
	m.locked = false
}

// OpenModal returns the id of the currently open modal, or "".
func (m *Modals) OpenModal() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

// ScrollLocked reports whether body scrolling is locked.
func (m *Modals) ScrollLocked() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.locked
}
