package listing

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"listinghub/internal/events"
	"listinghub/internal/usage"
	"listinghub/pkg/models"
)

type Handler struct {
	Gate *usage.Gate
	Hub  *events.Hub
}

func NewHandler(gate *usage.Gate, hub *events.Hub) *Handler {
	return &Handler{Gate: gate, Hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate", h.generate)
	rg.GET("/seasons", h.seasons)
}

type generateReq struct {
	Email string              `json:"email"`
	Input models.ListingInput `json:"input"`

	// KeywordsText mirrors the form's comma-separated keyword box; when
	// set it replaces Input.Keywords.
	KeywordsText string `json:"keywords_text,omitempty"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	email := CanonicalEmail(req.Email)
	if !ValidEmail(email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "enter a valid email to use the generator"})
		return
	}

	if req.KeywordsText != "" {
		req.Input.Keywords = SplitKeywords(req.KeywordsText)
	}

	if err := h.Gate.Check(c.Request.Context(), email); err != nil {
		if errors.Is(err, usage.ErrLimitReached) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "free limit reached for today; upgrade to pro for unlimited generations",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "usage check failed"})
		return
	}

	pack := Generate(req.Input)

	if err := h.Gate.Consume(c.Request.Context(), email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "usage update failed"})
		return
	}

	snap, err := h.Gate.Snapshot(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "usage lookup failed"})
		return
	}

	if h.Hub != nil {
		ev := events.GenerationEvent{
			Type:       "listing.generated",
			Email:      events.MaskEmail(email),
			PackID:     pack.ID,
			TitleCount: len(pack.Titles),
			Pro:        snap.Pro,
			At:         time.Now().UTC(),
		}
		go h.Hub.BroadcastJSON(ev)
	}

	c.JSON(http.StatusOK, gin.H{
		"pack":  pack,
		"usage": snap,
	})
}

// seasons exposes the selector options so clients render the same closed
// enum the pack data defines.
func (h *Handler) seasons(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"seasons": Seasons()})
}

// PlanHandler serves the account standing lookup used by the sidebar.
func PlanHandler(gate *usage.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := CanonicalEmail(c.Query("email"))
		if !ValidEmail(email) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "enter a valid email"})
			return
		}

		snap, err := gate.Snapshot(c.Request.Context(), email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "usage lookup failed"})
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}
