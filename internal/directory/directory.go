// Package directory is the lock-based ticket store used by the HTTP service.
//
// A Directory maps ticket ids to records. The map is guarded by a
// read/write lock and every record carries its own read/write lock. Locks
// are always taken top-down and never nested: the directory lock is released
// before a record lock is acquired, and no operation holds two record locks.
//
// Because lookup and record access are two separate critical sections, a
// sequence such as Get followed by Patch is not atomic. Each individual read
// still observes a complete ticket value, never a partially applied write.
package directory

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/yungbote/ticketdesk/internal/ticket"
)

// ErrLockPoisoned is returned by every operation once a mutation panicked
// while holding a record lock. The directory cannot be used afterwards.
var ErrLockPoisoned = errors.New("directory: lock poisoned")

type record struct {
	mu     sync.RWMutex
	ticket ticket.Ticket
}

type Directory struct {
	mu       sync.RWMutex
	records  map[ticket.ID]*record
	counter  uint64
	poisoned atomic.Bool

	// testHookAfterLookup runs after the directory lock is released and
	// before the record lock is taken.
	testHookAfterLookup func(ticket.ID)
}

func New() *Directory {
	return &Directory{records: make(map[ticket.ID]*record)}
}

// Add stores a new ToDo ticket and returns its id. Ids are assigned under
// the directory write lock, so they are gap-free and start at 0.
func (d *Directory) Add(draft ticket.Draft) (ticket.ID, error) {
	if d.poisoned.Load() {
		return 0, ErrLockPoisoned
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	id := ticket.ID(d.counter)
	d.counter++
	d.records[id] = &record{ticket: ticket.Ticket{
		ID:          id,
		Title:       draft.Title,
		Description: draft.Description,
		Status:      ticket.ToDo,
	}}
	return id, nil
}

// Get returns a copy of the current ticket value.
func (d *Directory) Get(id ticket.ID) (ticket.Ticket, error) {
	rec, err := d.lookup(id)
	if err != nil {
		return ticket.Ticket{}, err
	}
	rec.mu.RLock()
	defer rec.mu.RUnlock()
	return rec.ticket, nil
}

// Patch applies the present fields of p to the addressed ticket. A patch
// with no fields only checks that the id exists and never takes the record
// lock.
func (d *Directory) Patch(p ticket.Patch) error {
	if p.IsEmpty() {
		_, err := d.lookup(p.ID)
		return err
	}
	return d.Update(p.ID, p.Apply)
}

// Update runs fn on a copy of the ticket under the record write lock and
// stores the result. The id field is restored after fn returns. If fn
// panics the directory is poisoned and the panic propagates.
func (d *Directory) Update(id ticket.ID, fn func(*ticket.Ticket)) error {
	rec, err := d.lookup(id)
	if err != nil {
		return err
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if d.poisoned.Load() {
		return ErrLockPoisoned
	}

	defer func() {
		if r := recover(); r != nil {
			d.poisoned.Store(true)
			panic(r)
		}
	}()
	next := rec.ticket
	fn(&next)
	next.ID = rec.ticket.ID
	rec.ticket = next
	return nil
}

func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.records)
}

func (d *Directory) Poisoned() bool { return d.poisoned.Load() }

// lookup finds the record for id under the directory read lock and returns
// with that lock released.
func (d *Directory) lookup(id ticket.ID) (*record, error) {
	if d.poisoned.Load() {
		return nil, ErrLockPoisoned
	}
	d.mu.RLock()
	rec, ok := d.records[id]
	d.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("ticket %d: %w", id, ticket.ErrNotFound)
	}
	if d.testHookAfterLookup != nil {
		d.testHookAfterLookup(id)
	}
	return rec, nil
}
