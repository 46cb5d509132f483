package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jorren/quotespark/internal/api/auth"
	"github.com/jorren/quotespark/internal/api/models"
)

// ListFavorites returns the logged-in user's favorited quotes.
func (h *Handler) ListFavorites(c *gin.Context) {
	userID, _ := auth.UserID(c)
	c.JSON(http.StatusOK, h.store.GetFavorites(userID))
}

// AddFavorite bookmarks a quote for the logged-in user. Adding the same
// quote twice is a conflict, not a silent no-op.
func (h *Handler) AddFavorite(c *gin.Context) {
	userID, _ := auth.UserID(c)

	var req models.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Quote ID is required"})
		return
	}

	if _, err := h.store.GetQuote(req.QuoteID); err != nil {
		notFound(c, "Quote not found")
		return
	}

	if h.store.IsFavorite(userID, req.QuoteID) {
		c.JSON(http.StatusConflict, models.ErrorResponse{Message: "Quote already favorited"})
		return
	}

	favorite := h.store.AddFavorite(userID, req.QuoteID)
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Quote added to favorites",
		"favorite": favorite,
	})
}

// RemoveFavorite removes a bookmark of the logged-in user.
func (h *Handler) RemoveFavorite(c *gin.Context) {
	userID, _ := auth.UserID(c)

	quoteID, ok := parseIntParam(c, "quoteId")
	if !ok {
		return
	}

	if !h.store.RemoveFavorite(userID, quoteID) {
		notFound(c, "Favorite not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quote removed from favorites"})
}
