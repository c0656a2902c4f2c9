// Package actor runs a ticket.Store on a single worker goroutine and exposes
// it through cloneable Client handles.
//
// Clients never touch the store. Each call builds a command carrying a fresh
// reply channel of capacity 1, submits it to a bounded mailbox without
// blocking, and then waits for the worker's answer. A full mailbox is
// reported immediately as ErrMailboxFull so callers can retry or shed load;
// nothing is buffered beyond the configured capacity.
//
// The worker processes commands strictly in enqueue order. When the last
// Client is closed the mailbox channel is closed, the worker drains whatever
// is still queued and exits. No stop command exists.
package actor
