package handler

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/jorren/quotespark/internal/api/auth"
	"github.com/jorren/quotespark/internal/api/models"
	"github.com/jorren/quotespark/internal/store"
)

// Register creates a new account. Usernames are unique.
func (h *Handler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if _, err := h.store.GetUserByUsername(req.Username); err == nil {
		c.JSON(http.StatusConflict, models.ErrorResponse{Message: "Username already exists"})
		return
	}

	user := h.store.CreateUser(store.InsertUser{
		Username: req.Username,
		Password: req.Password,
		IsAdmin:  req.IsAdmin,
	})
	c.JSON(http.StatusCreated, user)
}

// Login checks the credentials and stores the user in the session.
func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Username and password are required"})
		return
	}

	user, err := h.store.GetUserByUsername(req.Username)
	if err != nil || user.Password != req.Password {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "Invalid username or password"})
		return
	}

	if err := auth.Login(c, user.ID, user.IsAdmin); err != nil {
		log.Error("failed to save session", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Session not available"})
		return
	}

	c.JSON(http.StatusOK, models.SessionUser{
		ID:       user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	})
}

// Logout clears the session. Logging out while not logged in is a no-op.
func (h *Handler) Logout(c *gin.Context) {
	if err := auth.Logout(c); err != nil {
		log.Error("failed to clear session", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to logout"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Me returns the currently logged-in user.
func (h *Handler) Me(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "Not logged in"})
		return
	}

	user, err := h.store.GetUser(userID)
	if err != nil {
		notFound(c, "User not found")
		return
	}

	c.JSON(http.StatusOK, models.SessionUser{
		ID:       user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	})
}

// GetProfile returns a user's profile merged with their display settings.
// Users can only read their own profile.
func (h *Handler) GetProfile(c *gin.Context) {
	userID, ok := parseIntParam(c, "id")
	if !ok {
		return
	}
	if sessionUserID, ok := auth.UserID(c); !ok || sessionUserID != userID {
		c.JSON(http.StatusForbidden, models.ErrorResponse{Message: "Unauthorized to access this profile"})
		return
	}

	user, err := h.store.GetUser(userID)
	if err != nil {
		notFound(c, "User not found")
		return
	}

	profile := models.ProfileResponse{
		ID:       user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
		Language: store.DefaultLanguage,
		Theme:    store.DefaultTheme,
		Font:     store.DefaultFont,
	}
	if settings, err := h.store.GetSettings(userID); err == nil {
		profile.Language = settings.Language
		profile.EnableNotifications = settings.EnableNotifications
		profile.Theme = settings.Theme
		profile.Font = settings.Font
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to load settings", "error", err)
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile writes the display settings of a user's profile. Users can
// only update their own profile. Omitted fields fall back to defaults.
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, ok := parseIntParam(c, "id")
	if !ok {
		return
	}
	if sessionUserID, ok := auth.UserID(c); !ok || sessionUserID != userID {
		c.JSON(http.StatusForbidden, models.ErrorResponse{Message: "Unauthorized to update this profile"})
		return
	}

	if _, err := h.store.GetUser(userID); err != nil {
		notFound(c, "User not found")
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	theme := valueOr(req.Theme, store.DefaultTheme)
	font := valueOr(req.Font, store.DefaultFont)
	language := valueOr(req.Language, store.DefaultLanguage)
	selected := req.SelectedCategories
	if selected == nil {
		selected = []string{}
	}
	h.store.CreateOrUpdateSettings(userID, store.SettingsPatch{
		Theme:               &theme,
		Font:                &font,
		Language:            &language,
		TextToSpeech:        &req.TextToSpeech,
		EnableNotifications: &req.EnableNotifications,
		SelectedCategories:  selected,
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully",
	})
}

func valueOr(v *string, fallback string) string {
	if v != nil && *v != "" {
		return *v
	}
	return fallback
}
