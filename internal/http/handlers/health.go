package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	banner string
}

func NewHealthHandler(serviceName string) *HealthHandler {
	if serviceName == "" {
		serviceName = "ticketd"
	}
	return &HealthHandler{banner: "Hello, " + serviceName + "!"}
}

// GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, h.banner)
}

// GET /healthz
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
