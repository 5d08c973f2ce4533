package content

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Menu(c.Request.Context()))
}

func (h *Handler) GetEvents(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Events(c.Request.Context()))
}

func (h *Handler) GetEvent(c *gin.Context) {
	event, ok := h.service.Event(c.Request.Context(), c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, event)
}
