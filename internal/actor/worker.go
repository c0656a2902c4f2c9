package actor

import (
	"runtime/debug"

	"github.com/yungbote/ticketdesk/internal/platform/logger"
	"github.com/yungbote/ticketdesk/internal/ticket"
)

type worker struct {
	inbox <-chan command
	store *ticket.Store
	log   *logger.Logger
	done  chan struct{}
}

func (w *worker) run() {
	defer close(w.done)
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("Ticket worker panic; store is gone", "panic", r, "stack", string(debug.Stack()))
		}
	}()

	w.log.Debug("Ticket worker started")
	for cmd := range w.inbox {
		if !cmd.run(w.store) {
			w.log.Warn("Dropping reply; receiver gone", "command", cmd.kind())
		}
	}
	w.log.Info("Mailbox closed; ticket worker stopped", "tickets", w.store.Len())
}
