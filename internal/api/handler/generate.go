package handler

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/jorren/quotespark/internal/api/auth"
	"github.com/jorren/quotespark/internal/api/models"
	"github.com/jorren/quotespark/internal/generate"
	"github.com/jorren/quotespark/internal/store"
)

// GenerateQuote produces a new quote from a prompt. Public; a logged-in
// user's AI settings take precedence over the server defaults. Provider
// failures are never surfaced, the fallback pool keeps the endpoint
// available.
func (h *Handler) GenerateQuote(c *gin.Context) {
	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Prompt is required"})
		return
	}

	var settings *store.Settings
	if userID, ok := auth.UserID(c); ok {
		if s, err := h.store.GetSettings(userID); err == nil {
			settings = s
		}
	}

	quote, result := h.generator.Generate(c.Request.Context(), req.Prompt, req.Category, settings)
	if result.Source == generate.SourceFallback {
		log.Debug("served fallback quote", "reason", result.Reason)
	}

	c.JSON(http.StatusOK, quote)
}
