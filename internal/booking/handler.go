package booking

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

// BookEvent accepts the booking DTO and answers with a synthetic id. No
// booking state is kept by this system.
func (h *Handler) BookEvent(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking request: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"message":    "Event booked successfully",
		"booking_id": h.service.Book(req),
	})
}

// AvailableSlots returns a fixed slot list. It deliberately ignores existing
// bookings; see the design notes.
func (h *Handler) AvailableSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = "2024-07-01"
	}

	c.JSON(http.StatusOK, gin.H{
		"available_slots": []gin.H{
			{
				"date":  date,
				"slots": []string{"09:00", "10:00", "11:00", "14:00", "15:00"},
			},
		},
	})
}

// BookEventEmail validates the DTO, answers immediately, and hands the email
// plus the sheet audit write to the background runner.
func (h *Handler) BookEventEmail(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking request: " + err.Error()})
		return
	}

	h.service.Dispatch(req)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Solicitud enviada por correo",
	})
}
