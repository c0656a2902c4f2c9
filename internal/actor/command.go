package actor

import "github.com/yungbote/ticketdesk/internal/ticket"

// command is a unit of work for the worker. run executes it against the
// store and reports whether the reply reached the caller.
type command interface {
	run(store *ticket.Store) bool
	kind() string
}

type insertCommand struct {
	draft ticket.Draft
	reply chan<- ticket.ID
}

func (c insertCommand) run(store *ticket.Store) bool { return deliver(c.reply, store.Add(c.draft)) }
func (insertCommand) kind() string                  { return "insert" }

type lookup struct {
	ticket ticket.Ticket
	found  bool
}

type getCommand struct {
	id    ticket.ID
	reply chan<- lookup
}

func (c getCommand) run(store *ticket.Store) bool {
	t, ok := store.Get(c.id)
	return deliver(c.reply, lookup{ticket: t, found: ok})
}
func (getCommand) kind() string { return "get" }

type patchCommand struct {
	patch ticket.Patch
	reply chan<- bool
}

func (c patchCommand) run(store *ticket.Store) bool { return deliver(c.reply, store.Patch(c.patch)) }
func (patchCommand) kind() string                  { return "patch" }

// deliver never blocks the worker. A reply that cannot be placed is dropped.
func deliver[T any](reply chan<- T, v T) bool {
	select {
	case reply <- v:
		return true
	default:
		return false
	}
}
