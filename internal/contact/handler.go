package contact

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Notifier sends the contact notice; the mailer satisfies it.
type Notifier interface {
	SendContact(form Form) error
}

type Handler struct {
	notifier Notifier
}

func NewHandler(notifier Notifier) *Handler {
	return &Handler{notifier: notifier}
}

// Submit validates the form and sends the email before responding. The
// outcome is a structured status payload, never a 5xx for a relay failure.
func (h *Handler) Submit(c *gin.Context) {
	var form Form
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact form: " + err.Error()})
		return
	}

	if err := h.notifier.SendContact(form); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"status":  "error",
			"message": fmt.Sprintf("Failed to send email: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Email sent"})
}
