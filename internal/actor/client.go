package actor

import (
	"context"
	"sync/atomic"

	"github.com/yungbote/ticketdesk/internal/platform/logger"
	"github.com/yungbote/ticketdesk/internal/ticket"
)

// Client is a handle to a running ticket worker. A Client is safe for
// concurrent use; Clone gives an independent handle that keeps the worker
// alive until it is closed as well.
type Client struct {
	box      *mailbox
	done     <-chan struct{}
	released atomic.Bool
}

// Launch starts a worker with a mailbox of the given capacity and returns
// the first handle to it. Capacities below 1 are raised to 1.
func Launch(capacity int, opts ...Option) *Client {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.Nop()
	}
	if o.store == nil {
		o.store = ticket.NewStore()
	}
	if capacity < 1 {
		capacity = 1
	}

	box := newMailbox(capacity)
	w := &worker{
		inbox: box.ch,
		store: o.store,
		log:   o.log.With("component", "TicketWorker", "mailbox_capacity", capacity),
		done:  make(chan struct{}),
	}
	go w.run()

	return &Client{box: box, done: w.done}
}

// Insert creates a ticket from draft and returns its id.
func (c *Client) Insert(ctx context.Context, draft ticket.Draft) (ticket.ID, error) {
	reply := make(chan ticket.ID, 1)
	if err := c.send(insertCommand{draft: draft, reply: reply}); err != nil {
		return 0, err
	}
	return await(ctx, c.done, reply)
}

// Get looks up a ticket. A missing id is reported through the boolean, not
// as an error.
func (c *Client) Get(ctx context.Context, id ticket.ID) (ticket.Ticket, bool, error) {
	reply := make(chan lookup, 1)
	if err := c.send(getCommand{id: id, reply: reply}); err != nil {
		return ticket.Ticket{}, false, err
	}
	res, err := await(ctx, c.done, reply)
	if err != nil {
		return ticket.Ticket{}, false, err
	}
	return res.ticket, res.found, nil
}

// Patch applies p on the worker. It returns ticket.ErrNotFound when the id
// does not exist.
func (c *Client) Patch(ctx context.Context, p ticket.Patch) error {
	reply := make(chan bool, 1)
	if err := c.send(patchCommand{patch: p, reply: reply}); err != nil {
		return err
	}
	found, err := await(ctx, c.done, reply)
	if err != nil {
		return err
	}
	if !found {
		return ticket.ErrNotFound
	}
	return nil
}

// Clone returns a new handle to the same worker. Cloning a closed Client
// yields a closed Client.
func (c *Client) Clone() *Client {
	clone := &Client{box: c.box, done: c.done}
	if c.released.Load() || !c.box.retain() {
		clone.released.Store(true)
	}
	return clone
}

// Close releases this handle. When every handle is closed the worker drains
// the mailbox and exits. Close is idempotent.
func (c *Client) Close() {
	if c.released.CompareAndSwap(false, true) {
		c.box.release()
	}
}

// Done is closed once the worker has exited.
func (c *Client) Done() <-chan struct{} { return c.done }

// Pending reports how many commands are queued but not yet picked up.
func (c *Client) Pending() int { return c.box.len() }

// Capacity is the mailbox bound fixed at Launch.
func (c *Client) Capacity() int { return c.box.cap() }

func (c *Client) send(cmd command) error {
	if c.released.Load() {
		return ErrClosed
	}
	select {
	case <-c.done:
		return ErrWorkerUnavailable
	default:
	}
	return c.box.submit(cmd)
}

func await[T any](ctx context.Context, done <-chan struct{}, reply <-chan T) (T, error) {
	var zero T
	select {
	case v := <-reply:
		return v, nil
	case <-done:
		// The worker may have answered right before exiting.
		select {
		case v := <-reply:
			return v, nil
		default:
			return zero, ErrWorkerUnavailable
		}
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
