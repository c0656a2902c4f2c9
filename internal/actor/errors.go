package actor

import "errors"

var (
	// ErrMailboxFull is returned when a command cannot be enqueued because
	// the mailbox is at capacity. The command was not executed.
	ErrMailboxFull = errors.New("actor: mailbox full")

	// ErrWorkerUnavailable is returned when the worker terminated before
	// replying. It indicates a crashed worker and is not retryable.
	ErrWorkerUnavailable = errors.New("actor: worker unavailable")

	// ErrClosed is returned by a Client that has already been closed.
	ErrClosed = errors.New("actor: client closed")
)
