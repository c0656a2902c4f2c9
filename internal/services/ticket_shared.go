package services

import (
	"context"

	"github.com/yungbote/ticketdesk/internal/config"
	"github.com/yungbote/ticketdesk/internal/directory"
	"github.com/yungbote/ticketdesk/internal/observability"
	"github.com/yungbote/ticketdesk/internal/platform/logger"
	"github.com/yungbote/ticketdesk/internal/ticket"
)

type sharedTicketService struct {
	dir  *directory.Directory
	call storeCall
}

// NewSharedTicketService serves tickets from a lock-based directory shared
// by every request goroutine.
func NewSharedTicketService(baseLog *logger.Logger, metrics *observability.Metrics, dir *directory.Directory) TicketService {
	return &sharedTicketService{
		dir: dir,
		call: storeCall{
			log:     baseLog.With("service", "TicketService", "backend", config.BackendShared),
			metrics: metrics,
			backend: config.BackendShared,
		},
	}
}

func (s *sharedTicketService) Backend() string { return config.BackendShared }

func (s *sharedTicketService) Create(ctx context.Context, draft ticket.Draft) (ticket.ID, error) {
	var id ticket.ID
	err := s.call.do(ctx, "insert", &id, func(context.Context) error {
		if err := draft.Validate(); err != nil {
			return err
		}
		var err error
		id, err = s.dir.Add(draft)
		return err
	})
	return id, err
}

func (s *sharedTicketService) Get(ctx context.Context, id ticket.ID) (ticket.Ticket, error) {
	var t ticket.Ticket
	err := s.call.do(ctx, "get", &id, func(context.Context) error {
		var err error
		t, err = s.dir.Get(id)
		return err
	})
	return t, err
}

func (s *sharedTicketService) Update(ctx context.Context, patch ticket.Patch) error {
	return s.call.do(ctx, "patch", &patch.ID, func(context.Context) error {
		if err := validatePatch(patch); err != nil {
			return err
		}
		return s.dir.Patch(patch)
	})
}
