package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/yungbote/ticketdesk/internal/actor"
	"github.com/yungbote/ticketdesk/internal/directory"
	"github.com/yungbote/ticketdesk/internal/observability"
	"github.com/yungbote/ticketdesk/internal/platform/apierr"
	"github.com/yungbote/ticketdesk/internal/platform/ctxutil"
	"github.com/yungbote/ticketdesk/internal/platform/logger"
	"github.com/yungbote/ticketdesk/internal/ticket"
)

// TicketService is the store surface the HTTP layer talks to. Errors are
// *apierr.Error values carrying the status they should be rendered with.
type TicketService interface {
	Create(ctx context.Context, draft ticket.Draft) (ticket.ID, error)
	Get(ctx context.Context, id ticket.ID) (ticket.Ticket, error)
	Update(ctx context.Context, patch ticket.Patch) error
	Backend() string
}

// mailboxRetryAfter is the Retry-After hint sent with a full mailbox.
const mailboxRetryAfter = time.Second

// storeCall wraps one backend operation in a span, a metrics sample and an
// error translation.
type storeCall struct {
	log     *logger.Logger
	metrics *observability.Metrics
	backend string
}

func (c storeCall) do(ctx context.Context, op string, id *ticket.ID, fn func(context.Context) error) error {
	ctx, span := observability.Tracer().Start(ctx, "ticket."+op)
	defer span.End()
	span.SetAttributes(attribute.String("ticket.backend", c.backend))
	if id != nil {
		span.SetAttributes(attribute.Int64("ticket.id", int64(*id)))
	}

	start := time.Now()
	err := fn(ctx)
	if id != nil && err == nil {
		// Create learns its id inside fn.
		span.SetAttributes(attribute.Int64("ticket.id", int64(*id)))
	}
	mapped := Translate(err)
	c.metrics.ObserveStore(c.backend, op, outcome(mapped), time.Since(start))

	if mapped != nil {
		span.RecordError(err)
		if mapped.Status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, mapped.Code)
			fields := append([]any{"op", op, "code", mapped.Code, "error", err}, ctxutil.LogFields(ctx)...)
			c.log.Error("Ticket store failure", fields...)
		} else if mapped.Status == http.StatusServiceUnavailable {
			c.log.Warn("Ticket mailbox full", append([]any{"op", op}, ctxutil.LogFields(ctx)...)...)
		}
		return mapped
	}
	return nil
}

// Translate maps store errors onto their HTTP form. Nil stays nil.
func Translate(err error) *apierr.Error {
	if err == nil {
		return nil
	}
	var ae *apierr.Error
	if errors.As(err, &ae) {
		return ae
	}
	switch {
	case errors.Is(err, ticket.ErrNotFound):
		return apierr.New(http.StatusNotFound, "ticket_not_found", err)
	case errors.Is(err, ticket.ErrInvalidTitle),
		errors.Is(err, ticket.ErrInvalidDescription),
		errors.Is(err, ticket.ErrInvalidStatus):
		return apierr.New(http.StatusUnprocessableEntity, "invalid_ticket", err)
	case errors.Is(err, actor.ErrMailboxFull):
		return apierr.New(http.StatusServiceUnavailable, "mailbox_full", err).Retry(mailboxRetryAfter)
	case errors.Is(err, actor.ErrWorkerUnavailable), errors.Is(err, actor.ErrClosed):
		return apierr.New(http.StatusInternalServerError, "worker_unavailable", err)
	case errors.Is(err, directory.ErrLockPoisoned):
		return apierr.New(http.StatusInternalServerError, "store_poisoned", err)
	case errors.Is(err, context.DeadlineExceeded):
		return apierr.New(http.StatusGatewayTimeout, "store_timeout", err)
	case errors.Is(err, context.Canceled):
		return apierr.New(499, "request_canceled", err)
	default:
		return apierr.New(http.StatusInternalServerError, "internal_error", err)
	}
}

func outcome(err *apierr.Error) string {
	if err == nil {
		return "ok"
	}
	return err.Code
}

func validatePatch(p ticket.Patch) error {
	if p.Title != nil && p.Title.IsZero() {
		return fmt.Errorf("%w: the title cannot be empty", ticket.ErrInvalidTitle)
	}
	if p.Description != nil && p.Description.IsZero() {
		return fmt.Errorf("%w: the description cannot be empty", ticket.ErrInvalidDescription)
	}
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("%w: %d", ticket.ErrInvalidStatus, int(*p.Status))
	}
	return nil
}
