// Package handler maps the REST surface onto the store and the generation
// policy. It is the only place where internal failures are translated into
// client-visible responses.
package handler

import (
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/jorren/quotespark/internal/api/models"
	"github.com/jorren/quotespark/internal/daily"
	"github.com/jorren/quotespark/internal/generate"
	"github.com/jorren/quotespark/internal/store"
)

type Handler struct {
	store     *store.Store
	generator *generate.Generator
	daily     *daily.Service
	pageSize  int
}

func New(s *store.Store, generator *generate.Generator, dailySvc *daily.Service, pageSize int) *Handler {
	return &Handler{
		store:     s,
		generator: generator,
		daily:     dailySvc,
		pageSize:  pageSize,
	}
}

// badRequest reports a binding failure as a structured validation error.
func badRequest(c *gin.Context, err error) {
	log.Debug("request validation failed", "error", err)
	c.JSON(http.StatusBadRequest, models.ValidationError(err))
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{Message: message})
}

// parseIntParam parses a numeric path parameter.
func parseIntParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid " + name})
		return 0, false
	}
	return id, true
}

// intQuery coerces a query parameter to an int, falling back to the default
// for absent or non-numeric values.
func intQuery(c *gin.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
