package actor

import (
	"github.com/yungbote/ticketdesk/internal/platform/logger"
	"github.com/yungbote/ticketdesk/internal/ticket"
)

// Option customises Launch.
type Option func(*options)

type options struct {
	log   *logger.Logger
	store *ticket.Store
}

// WithLogger sets the logger the worker reports to. The default discards.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithStore hands an existing store to the worker. The caller must not use
// it afterwards.
func WithStore(store *ticket.Store) Option {
	return func(o *options) { o.store = store }
}
