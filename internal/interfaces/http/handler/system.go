package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SystemHandler serves operational endpoints
type SystemHandler struct {
	ping func() error
}

// NewSystemHandler creates a SystemHandler. ping checks the storage
// collaborator and may be nil.
func NewSystemHandler(ping func() error) *SystemHandler {
	return &SystemHandler{ping: ping}
}

// Health reports service liveness and storage reachability
func (h *SystemHandler) Health(c *gin.Context) {
	status := "ok"
	code := http.StatusOK
	if h.ping != nil {
		if err := h.ping(); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
	}
	c.JSON(code, gin.H{"status": status})
}
