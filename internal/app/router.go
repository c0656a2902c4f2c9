package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/ticketdesk/internal/config"
	server "github.com/yungbote/ticketdesk/internal/http"
	"github.com/yungbote/ticketdesk/internal/http/handlers"
	"github.com/yungbote/ticketdesk/internal/observability"
	"github.com/yungbote/ticketdesk/internal/platform/logger"
)

type Handlers struct {
	Ticket *handlers.TicketHandler
	Health *handlers.HealthHandler
}

func wireHandlers(log *logger.Logger, cfg *config.Config, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Ticket: handlers.NewTicketHandler(services.Tickets),
		Health: handlers.NewHealthHandler(cfg.Tracing.ServiceName),
	}
}

func wireRouter(log *logger.Logger, cfg *config.Config, metrics *observability.Metrics, h Handlers) *gin.Engine {
	if cfg.Env == "production" || cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	return server.NewRouter(server.RouterConfig{
		Log:             log.With("component", "HTTP"),
		Metrics:         metrics,
		ServiceName:     cfg.Tracing.ServiceName,
		CORSOrigins:     cfg.HTTP.CORSOrigins,
		MaxRequestBytes: cfg.HTTP.MaxRequestBytes,
		TicketHandler:   h.Ticket,
		HealthHandler:   h.Health,
	})
}
