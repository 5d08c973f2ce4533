package site

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Handler serves the static site content: liveness, team bios and
// testimonials.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Backend is running!"})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Backend is active",
		"timestamp": time.Now().Format("2006-01-02T15:04:05"),
	})
}

func (h *Handler) Team(c *gin.Context) {
	c.JSON(http.StatusOK, team)
}

func (h *Handler) Testimonials(c *gin.Context) {
	c.JSON(http.StatusOK, testimonials)
}
