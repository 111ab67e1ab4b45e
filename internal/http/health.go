package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	version string
}

func NewHealthController(version string) *HealthController {
	return &HealthController{version: version}
}

// Status answers liveness probes with a plain-text OK.
// GET /books/health
func (h *HealthController) Status(c *gin.Context) {
	if h.version != "" {
		c.Header("X-App-Version", h.version)
	}
	c.String(http.StatusOK, "OK")
}
