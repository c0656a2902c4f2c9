package app

import (
	"fmt"

	"github.com/yungbote/ticketdesk/internal/actor"
	"github.com/yungbote/ticketdesk/internal/config"
	"github.com/yungbote/ticketdesk/internal/directory"
	"github.com/yungbote/ticketdesk/internal/observability"
	"github.com/yungbote/ticketdesk/internal/platform/logger"
	"github.com/yungbote/ticketdesk/internal/services"
)

type Services struct {
	Tickets services.TicketService
}

// wireServices builds the ticket service for the configured backend. The
// returned client is nil unless the actor backend was chosen.
func wireServices(log *logger.Logger, cfg *config.Config, metrics *observability.Metrics) (Services, *actor.Client, error) {
	log.Info("Wiring services...", "backend", cfg.Store.Backend)
	switch cfg.Store.Backend {
	case config.BackendShared:
		return Services{
			Tickets: services.NewSharedTicketService(log, metrics, directory.New()),
		}, nil, nil
	case config.BackendActor:
		client := actor.Launch(cfg.Store.MailboxCapacity, actor.WithLogger(log))
		return Services{
			Tickets: services.NewActorTicketService(log, metrics, client, cfg.Store.ReplyTimeout.Duration),
		}, client, nil
	default:
		return Services{}, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
