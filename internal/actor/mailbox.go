package actor

import "sync"

// mailbox is the bounded command queue shared by every Client cloned from
// the same Launch. It counts live handles and closes the channel when the
// last one is released.
type mailbox struct {
	mu     sync.RWMutex
	ch     chan command
	refs   int
	closed bool
}

func newMailbox(capacity int) *mailbox {
	return &mailbox{ch: make(chan command, capacity), refs: 1}
}

// submit enqueues cmd without blocking.
func (m *mailbox) submit(cmd command) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return ErrClosed
	}
	select {
	case m.ch <- cmd:
		return nil
	default:
		return ErrMailboxFull
	}
}

func (m *mailbox) retain() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return false
	}
	m.refs++
	return true
}

func (m *mailbox) release() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.refs--
	if m.refs == 0 {
		m.closed = true
		close(m.ch)
	}
}

func (m *mailbox) len() int { return len(m.ch) }
func (m *mailbox) cap() int { return cap(m.ch) }
