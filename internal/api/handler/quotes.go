package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/jorren/quotespark/internal/api/auth"
	"github.com/jorren/quotespark/internal/api/models"
	"github.com/jorren/quotespark/internal/store"
)

// ListQuotes returns one page of quotes. isFavorite is resolved for the
// logged-in user, never cached across sessions.
func (h *Handler) ListQuotes(c *gin.Context) {
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", h.pageSize)

	quotes := h.store.GetQuotesWithCategory(page, limit)

	if userID, ok := auth.UserID(c); ok {
		for i := range quotes {
			quotes[i].IsFavorite = h.store.IsFavorite(userID, quotes[i].ID)
		}
	}

	c.JSON(http.StatusOK, quotes)
}

// RandomQuote returns a random quote, optionally restricted to a
// comma-separated list of category ids.
func (h *Handler) RandomQuote(c *gin.Context) {
	var categoryIDs []int
	if raw := c.Query("categories"); raw != "" {
		categoryIDs = lo.FilterMap(strings.Split(raw, ","), func(part string, _ int) (int, bool) {
			id, err := strconv.Atoi(strings.TrimSpace(part))
			return id, err == nil
		})
	}

	quote, err := h.store.GetRandomQuote(categoryIDs)
	if err != nil {
		notFound(c, "No quotes found")
		return
	}

	h.respondWithQuote(c, quote.ID)
}

// DailyQuote returns the quote of the day.
func (h *Handler) DailyQuote(c *gin.Context) {
	quote, err := h.daily.Quote()
	if err != nil {
		notFound(c, "No quotes found")
		return
	}

	if userID, ok := auth.UserID(c); ok {
		quote.IsFavorite = h.store.IsFavorite(userID, quote.ID)
	}
	c.JSON(http.StatusOK, quote)
}

// GetQuote returns a single quote joined with its category.
func (h *Handler) GetQuote(c *gin.Context) {
	id, ok := parseIntParam(c, "id")
	if !ok {
		return
	}
	h.respondWithQuote(c, id)
}

// CreateQuote creates a quote. Admin only.
func (h *Handler) CreateQuote(c *gin.Context) {
	var req models.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	quote := h.store.CreateQuote(store.InsertQuote{
		Text:          req.Text,
		Author:        req.Author,
		CategoryID:    req.CategoryID,
		BackgroundURL: req.BackgroundURL,
		IsAiGenerated: req.IsAiGenerated,
	})
	c.JSON(http.StatusCreated, quote)
}

// UpdateQuote applies a partial update to a quote. Admin only.
func (h *Handler) UpdateQuote(c *gin.Context) {
	id, ok := parseIntParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	quote, err := h.store.UpdateQuote(id, req.Patch())
	if err != nil {
		notFound(c, "Quote not found")
		return
	}
	c.JSON(http.StatusOK, quote)
}

// DeleteQuote removes a quote. Admin only.
func (h *Handler) DeleteQuote(c *gin.Context) {
	id, ok := parseIntParam(c, "id")
	if !ok {
		return
	}
	if !h.store.DeleteQuote(id) {
		notFound(c, "Quote not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quote deleted successfully"})
}

// respondWithQuote writes the joined quote with isFavorite resolved for the
// current session.
func (h *Handler) respondWithQuote(c *gin.Context, id int) {
	quote, err := h.store.GetQuoteWithCategory(id)
	if err != nil {
		notFound(c, "Quote not found")
		return
	}
	if userID, ok := auth.UserID(c); ok {
		quote.IsFavorite = h.store.IsFavorite(userID, quote.ID)
	}
	c.JSON(http.StatusOK, quote)
}
