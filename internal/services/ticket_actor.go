package services

import (
	"context"
	"fmt"
	"time"

	"github.com/yungbote/ticketdesk/internal/actor"
	"github.com/yungbote/ticketdesk/internal/config"
	"github.com/yungbote/ticketdesk/internal/observability"
	"github.com/yungbote/ticketdesk/internal/platform/logger"
	"github.com/yungbote/ticketdesk/internal/ticket"
)

type actorTicketService struct {
	client       *actor.Client
	replyTimeout time.Duration
	metrics      *observability.Metrics
	call         storeCall
}

// NewActorTicketService serves tickets through the actor worker behind
// client. The service borrows client; closing it stays with the caller.
// A positive replyTimeout bounds each wait for the worker.
func NewActorTicketService(baseLog *logger.Logger, metrics *observability.Metrics, client *actor.Client, replyTimeout time.Duration) TicketService {
	return &actorTicketService{
		client:       client,
		replyTimeout: replyTimeout,
		metrics:      metrics,
		call: storeCall{
			log:     baseLog.With("service", "TicketService", "backend", config.BackendActor),
			metrics: metrics,
			backend: config.BackendActor,
		},
	}
}

func (s *actorTicketService) Backend() string { return config.BackendActor }

func (s *actorTicketService) Create(ctx context.Context, draft ticket.Draft) (ticket.ID, error) {
	var id ticket.ID
	err := s.call.do(ctx, "insert", &id, func(ctx context.Context) error {
		if err := draft.Validate(); err != nil {
			return err
		}
		ctx, cancel := s.bound(ctx)
		defer cancel()
		var err error
		id, err = s.client.Insert(ctx, draft)
		return err
	})
	return id, err
}

func (s *actorTicketService) Get(ctx context.Context, id ticket.ID) (ticket.Ticket, error) {
	var t ticket.Ticket
	err := s.call.do(ctx, "get", &id, func(ctx context.Context) error {
		ctx, cancel := s.bound(ctx)
		defer cancel()
		got, found, err := s.client.Get(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("ticket %d: %w", id, ticket.ErrNotFound)
		}
		t = got
		return nil
	})
	return t, err
}

func (s *actorTicketService) Update(ctx context.Context, patch ticket.Patch) error {
	return s.call.do(ctx, "patch", &patch.ID, func(ctx context.Context) error {
		if err := validatePatch(patch); err != nil {
			return err
		}
		ctx, cancel := s.bound(ctx)
		defer cancel()
		if err := s.client.Patch(ctx, patch); err != nil {
			return fmt.Errorf("ticket %d: %w", patch.ID, err)
		}
		return nil
	})
}

// bound applies the reply timeout and samples mailbox depth.
func (s *actorTicketService) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	s.metrics.SetMailboxDepth(s.client.Pending(), s.client.Capacity())
	if s.replyTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.replyTimeout)
}
