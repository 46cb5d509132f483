package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jorren/quotespark/internal/api/models"
	"github.com/jorren/quotespark/internal/store"
)

// ListCategories returns all categories. Public.
func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetCategories())
}

// CreateCategory creates a category. Admin only, names are unique.
func (h *Handler) CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if _, err := h.store.GetCategoryByName(req.Name); err == nil {
		c.JSON(http.StatusConflict, models.ErrorResponse{Message: "Category name already exists"})
		return
	}

	c.JSON(http.StatusCreated, h.store.CreateCategory(req.Name))
}

// UpdateCategory renames a category. Admin only.
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := parseIntParam(c, "id")
	if !ok {
		return
	}

	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if existing, err := h.store.GetCategoryByName(req.Name); err == nil && existing.ID != id {
		c.JSON(http.StatusConflict, models.ErrorResponse{Message: "Category name already exists"})
		return
	}

	category, err := h.store.UpdateCategory(id, store.CategoryPatch{Name: &req.Name})
	if err != nil {
		notFound(c, "Category not found")
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory removes a category, leaving its quotes with a dangling
// category id. Admin only.
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := parseIntParam(c, "id")
	if !ok {
		return
	}
	if !h.store.DeleteCategory(id) {
		notFound(c, "Category not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
