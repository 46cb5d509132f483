package handler

import (
	"encoding/gob"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/jorren/quotespark/internal/api/auth"
	"github.com/jorren/quotespark/internal/api/models"
	"github.com/jorren/quotespark/internal/store"
)

const sessionKeyDraft = "draft_settings"

func init() {
	// The cookie session store gob-encodes its values.
	gob.Register(models.SettingsDraft{})
}

// GetSettings returns the logged-in user's settings, or the anonymous
// session's draft (defaults if none was saved yet).
func (h *Handler) GetSettings(c *gin.Context) {
	if userID, ok := auth.UserID(c); ok {
		settings, err := h.store.GetSettings(userID)
		if err == nil {
			c.JSON(http.StatusOK, settings)
			return
		}
		if !errors.Is(err, store.ErrNotFound) {
			log.Error("failed to load settings", "error", err)
		}
	}

	session := sessions.Default(c)
	if draft, ok := session.Get(sessionKeyDraft).(models.SettingsDraft); ok {
		c.JSON(http.StatusOK, draft)
		return
	}
	c.JSON(http.StatusOK, models.DefaultDraft())
}

// SaveSettings persists a partial settings update. Logged-in users write to
// the settings table; anonymous users get a draft scoped to their session,
// which is never merged into the table.
func (h *Handler) SaveSettings(c *gin.Context) {
	var req models.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if userID, ok := auth.UserID(c); ok {
		c.JSON(http.StatusOK, h.store.CreateOrUpdateSettings(userID, req.Patch()))
		return
	}

	session := sessions.Default(c)
	draft, ok := session.Get(sessionKeyDraft).(models.SettingsDraft)
	if !ok {
		draft = models.DefaultDraft()
	}
	draft.Apply(req)

	session.Set(sessionKeyDraft, draft)
	if err := session.Save(); err != nil {
		log.Error("failed to save session draft", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Session not available"})
		return
	}
	c.JSON(http.StatusOK, draft)
}

// GetAISettings returns only the AI-related settings of the logged-in user.
func (h *Handler) GetAISettings(c *gin.Context) {
	userID, _ := auth.UserID(c)

	resp := models.AISettingsResponse{
		AIModel:       store.DefaultAIModel,
		DefaultPrompt: store.DefaultPrompt,
	}
	if settings, err := h.store.GetSettings(userID); err == nil {
		if settings.APIKey != nil {
			resp.APIKey = *settings.APIKey
		}
		if settings.AIModel != "" {
			resp.AIModel = settings.AIModel
		}
		if settings.DefaultPrompt != "" {
			resp.DefaultPrompt = settings.DefaultPrompt
		}
	}
	c.JSON(http.StatusOK, resp)
}

// SaveAISettings updates only the AI-related settings of the logged-in
// user.
func (h *Handler) SaveAISettings(c *gin.Context) {
	userID, _ := auth.UserID(c)

	var req models.AISettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	settings := h.store.CreateOrUpdateSettings(userID, store.SettingsPatch{
		APIKey:        req.APIKey,
		AIModel:       req.AIModel,
		DefaultPrompt: req.DefaultPrompt,
	})

	resp := models.AISettingsResponse{
		AIModel:       settings.AIModel,
		DefaultPrompt: settings.DefaultPrompt,
	}
	if settings.APIKey != nil {
		resp.APIKey = *settings.APIKey
	}
	c.JSON(http.StatusOK, resp)
}
