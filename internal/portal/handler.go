package portal

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserStore inserts a signup record; *store.Store satisfies it.
type UserStore interface {
	StoreUser(ctx context.Context, fullName, email string) error
}

type Handler struct {
	store UserStore
}

func NewHandler(store UserStore) *Handler {
	return &Handler{store: store}
}

// StoreUser does a single best-effort insert. Store failures come back as a
// structured error payload, not an exception.
func (h *Handler) StoreUser(c *gin.Context) {
	var user User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user payload: " + err.Error()})
		return
	}

	if err := h.store.StoreUser(c.Request.Context(), user.FullName, user.Email); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"status":  "error",
			"message": "Failed to store user",
			"details": fmt.Sprint(err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User stored in Supabase",
	})
}
