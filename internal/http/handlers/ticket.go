package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/ticketdesk/internal/http/response"
	"github.com/yungbote/ticketdesk/internal/platform/apierr"
	"github.com/yungbote/ticketdesk/internal/services"
	"github.com/yungbote/ticketdesk/internal/ticket"
)

type TicketHandler struct {
	tickets services.TicketService
}

func NewTicketHandler(tickets services.TicketService) *TicketHandler {
	return &TicketHandler{tickets: tickets}
}

// POST /create-ticket
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var draft ticket.Draft
	if !bindJSON(c, &draft) {
		return
	}
	id, err := h.tickets.Create(c.Request.Context(), draft)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, id)
}

// GET /get-ticket
//
// The id travels as a bare JSON number in the request body.
func (h *TicketHandler) GetTicket(c *gin.Context) {
	var id ticket.ID
	if !bindJSON(c, &id) {
		return
	}
	t, err := h.tickets.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, t)
}

// POST /update-ticket
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	var patch ticket.Patch
	if !bindJSON(c, &patch) {
		return
	}
	err := h.tickets.Update(c.Request.Context(), patch)
	switch {
	case err == nil:
		c.String(http.StatusOK, "Ticket %d updated", patch.ID)
	case errors.Is(err, ticket.ErrNotFound):
		_ = c.Error(err)
		c.String(http.StatusNotFound, "Ticket %d not found", patch.ID)
	default:
		response.RespondAPIError(c, err)
	}
}

func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}
	ae := decodeError(err)
	_ = c.Error(err)
	response.RespondError(c, ae.Status, ae.Code, err)
	return false
}

// decodeError classifies a request body failure: oversize bodies are 413,
// well-formed JSON with bad field values is 422, anything else is 400.
func decodeError(err error) *apierr.Error {
	var tooLarge *http.MaxBytesError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &tooLarge):
		return apierr.New(http.StatusRequestEntityTooLarge, "request_too_large", err)
	case errors.Is(err, ticket.ErrInvalidTitle),
		errors.Is(err, ticket.ErrInvalidDescription),
		errors.Is(err, ticket.ErrInvalidStatus),
		errors.As(err, &typeErr):
		return apierr.New(http.StatusUnprocessableEntity, "invalid_ticket", err)
	default:
		return apierr.New(http.StatusBadRequest, "invalid_json", err)
	}
}
