package admin

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"listinghub/internal/usage"
)

var dayRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Handler serves the read-only operator endpoints. The allow-list is
// mutated exclusively through proctl; this surface only inspects state.
type Handler struct {
	Store usage.AdminStore
}

func NewHandler(store usage.AdminStore) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/usage", h.usageForDay)
	rg.GET("/pro", h.proEmails)
}

func (h *Handler) usageForDay(c *gin.Context) {
	day := strings.TrimSpace(c.Query("date"))
	if day == "" {
		day = time.Now().UTC().Format("2006-01-02")
	}
	if !dayRe.MatchString(day) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	counts, err := h.Store.UsageForDay(c.Request.Context(), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "usage lookup failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":   day,
		"emails": len(counts),
		"counts": counts,
	})
}

func (h *Handler) proEmails(c *gin.Context) {
	emails, err := h.Store.ProEmails(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "pro list lookup failed"})
		return
	}
	if emails == nil {
		emails = []string{}
	}
	c.JSON(http.StatusOK, gin.H{
		"total":  len(emails),
		"emails": emails,
	})
}
