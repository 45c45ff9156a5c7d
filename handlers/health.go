package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports process liveness and the storage connection state.
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := dbContext(c)
	defer cancel()

	mongoState := "connected"
	if err := h.DB.Client().Ping(ctx, nil); err != nil {
		mongoState = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "mongo": mongoState})
}
