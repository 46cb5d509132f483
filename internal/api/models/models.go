// Package models holds the request and response shapes of the REST API.
package models

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/jorren/quotespark/internal/store"
)

// ErrorResponse is the envelope for every client-visible failure.
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError reports a single failing field of a write body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError converts a binding failure into the structured 400
// envelope, listing the failing fields when the error came from the
// validator.
func ValidationError(err error) ErrorResponse {
	resp := ErrorResponse{Message: "Validation error"}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			resp.Errors = append(resp.Errors, FieldError{
				Field:   fe.Field(),
				Message: fe.Tag(),
			})
		}
	}
	return resp
}

// SessionUser is the public view of the logged-in account.
type SessionUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	IsAdmin  bool   `json:"isAdmin"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ProfileResponse merges account fields with display settings.
type ProfileResponse struct {
	ID                  int    `json:"id"`
	Username            string `json:"username"`
	IsAdmin             bool   `json:"isAdmin"`
	Language            string `json:"language"`
	EnableNotifications bool   `json:"enableNotifications"`
	Theme               string `json:"theme"`
	Font                string `json:"font"`
}

// UpdateProfileRequest carries the profile fields a user may change.
// Omitted fields fall back to their defaults.
type UpdateProfileRequest struct {
	Username            *string  `json:"username"`
	Theme               *string  `json:"theme"`
	Font                *string  `json:"font"`
	Language            *string  `json:"language"`
	TextToSpeech        bool     `json:"textToSpeech"`
	EnableNotifications bool     `json:"enableNotifications"`
	SelectedCategories  []string `json:"selectedCategories"`
}

type CreateQuoteRequest struct {
	Text          string  `json:"text" binding:"required"`
	Author        string  `json:"author" binding:"required"`
	CategoryID    *int    `json:"categoryId"`
	BackgroundURL *string `json:"backgroundUrl"`
	IsAiGenerated bool    `json:"isAiGenerated"`
}

// UpdateQuoteRequest is a partial quote update. Nil means "leave unchanged".
type UpdateQuoteRequest struct {
	Text          *string `json:"text"`
	Author        *string `json:"author"`
	CategoryID    *int    `json:"categoryId"`
	BackgroundURL *string `json:"backgroundUrl"`
	IsAiGenerated *bool   `json:"isAiGenerated"`
}

func (r UpdateQuoteRequest) Patch() store.QuotePatch {
	return store.QuotePatch{
		Text:          r.Text,
		Author:        r.Author,
		CategoryID:    r.CategoryID,
		BackgroundURL: r.BackgroundURL,
		IsAiGenerated: r.IsAiGenerated,
	}
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type FavoriteRequest struct {
	QuoteID int `json:"quoteId" binding:"required"`
}

// SettingsRequest is a partial settings update. Nil means "leave unchanged";
// explicit values, including false, are applied.
type SettingsRequest struct {
	Theme               *string  `json:"theme"`
	Font                *string  `json:"font"`
	Language            *string  `json:"language"`
	TextToSpeech        *bool    `json:"textToSpeech"`
	EnableNotifications *bool    `json:"enableNotifications"`
	SelectedCategories  []string `json:"selectedCategories"`
	APIKey              *string  `json:"apiKey"`
	AIModel             *string  `json:"aiModel"`
	DefaultPrompt       *string  `json:"defaultPrompt"`
}

func (r SettingsRequest) Patch() store.SettingsPatch {
	return store.SettingsPatch{
		Theme:               r.Theme,
		Font:                r.Font,
		Language:            r.Language,
		TextToSpeech:        r.TextToSpeech,
		EnableNotifications: r.EnableNotifications,
		SelectedCategories:  r.SelectedCategories,
		APIKey:              r.APIKey,
		AIModel:             r.AIModel,
		DefaultPrompt:       r.DefaultPrompt,
	}
}

type AISettingsRequest struct {
	APIKey        *string `json:"apiKey"`
	AIModel       *string `json:"aiModel"`
	DefaultPrompt *string `json:"defaultPrompt"`
}

// AISettingsResponse exposes only the AI-related settings fields.
type AISettingsResponse struct {
	APIKey        string `json:"apiKey"`
	AIModel       string `json:"aiModel"`
	DefaultPrompt string `json:"defaultPrompt"`
}

type GenerateRequest struct {
	Prompt   string `json:"prompt"`
	Category any    `json:"category"`
}

// SettingsDraft is the transient settings bag for anonymous sessions. It
// lives in the session cookie only and is never merged into the settings
// table.
type SettingsDraft struct {
	Theme               string   `json:"theme"`
	Font                string   `json:"font"`
	Language            string   `json:"language"`
	TextToSpeech        bool     `json:"textToSpeech"`
	EnableNotifications bool     `json:"enableNotifications"`
	SelectedCategories  []string `json:"selectedCategories"`
	APIKey              *string  `json:"apiKey,omitempty"`
	AIModel             *string  `json:"aiModel,omitempty"`
	DefaultPrompt       *string  `json:"defaultPrompt,omitempty"`
}

// DefaultDraft returns the settings an anonymous session starts out with.
func DefaultDraft() SettingsDraft {
	return SettingsDraft{
		Theme:               store.DefaultTheme,
		Font:                store.DefaultFont,
		Language:            store.DefaultLanguage,
		TextToSpeech:        false,
		EnableNotifications: true,
		SelectedCategories:  []string{},
	}
}

// Apply merges a settings request into the draft.
func (d *SettingsDraft) Apply(r SettingsRequest) {
	if r.Theme != nil {
		d.Theme = *r.Theme
	}
	if r.Font != nil {
		d.Font = *r.Font
	}
	if r.Language != nil {
		d.Language = *r.Language
	}
	if r.TextToSpeech != nil {
		d.TextToSpeech = *r.TextToSpeech
	}
	if r.EnableNotifications != nil {
		d.EnableNotifications = *r.EnableNotifications
	}
	if r.SelectedCategories != nil {
		d.SelectedCategories = r.SelectedCategories
	}
	if r.APIKey != nil {
		d.APIKey = r.APIKey
	}
	if r.AIModel != nil {
		d.AIModel = r.AIModel
	}
	if r.DefaultPrompt != nil {
		d.DefaultPrompt = r.DefaultPrompt
	}
}
