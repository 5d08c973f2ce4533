package imageproxy

import (
	"errors"
	"io"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// fileIDPattern is the one real security check in this system: it keeps the
// identifier from smuggling path segments or headers into the upstream URL.
var fileIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Google Drive rejects requests without a browser-like agent.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Handler re-streams Google Drive images with permissive CORS so the
// frontend can use share links directly.
type Handler struct {
	client  *http.Client
	baseURL string
}

func NewHandler() *Handler {
	return &Handler{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: "https://drive.google.com/uc?export=view&id=",
	}
}

func (h *Handler) GetImage(c *gin.Context) {
	fileID := c.Param("fileId")
	if !fileIDPattern.MatchString(fileID) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid file ID format"})
		return
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, h.baseURL+fileID, nil)
	if err != nil {
		log.Printf("Error proxying image %s: %v", fileID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			c.JSON(http.StatusGatewayTimeout, gin.H{"detail": "Timeout fetching image"})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "Error fetching image"})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Image not found"})
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		contentType = "image/jpeg"
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("Error proxying image %s: %v", fileID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.Header("Access-Control-Allow-Origin", "*")
	c.Data(http.StatusOK, contentType, body)
}
