package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	aiclient "github.com/jorren/quotespark/internal/ai"
	"github.com/jorren/quotespark/internal/api"
	"github.com/jorren/quotespark/internal/config"
	"github.com/jorren/quotespark/internal/daily"
	"github.com/jorren/quotespark/internal/generate"
	"github.com/jorren/quotespark/internal/store"
)

// fakeCompleter stands in for the completion provider. Tests flip text/err
// to exercise both generation paths.
type fakeCompleter struct {
	text string
	err  error
}

func (f *fakeCompleter) Complete(_ context.Context, _ aiclient.CompletionRequest) (string, error) {
	return f.text, f.err
}

type APITestSuite struct {
	suite.Suite
	store     *store.Store
	router    *gin.Engine
	daily     *daily.Service
	completer *fakeCompleter
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func (s *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.store = store.New()
	s.completer = &fakeCompleter{text: "Keep going."}

	var err error
	s.daily, err = daily.New(s.store, "0 0 * * *")
	s.Require().NoError(err)

	cfg := &config.Config{
		Listen:        "127.0.0.1:0",
		SessionKey:    "test-secret",
		SessionMaxAge: 3600,
		PageSize:      10,
		OpenAI:        &config.OpenAIConfig{},
	}
	server := api.New(cfg, s.store, generate.New(s.store, s.completer), s.daily, true)
	s.router = server.Router()
}

func (s *APITestSuite) TearDownTest() {
	_ = s.daily.Stop()
}

func (s *APITestSuite) request(method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *APITestSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func (s *APITestSuite) decodeList(w *httptest.ResponseRecorder) []map[string]any {
	var body []map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// login creates the account if needed and returns the session cookies.
func (s *APITestSuite) login(username, password string, isAdmin bool) []*http.Cookie {
	if _, err := s.store.GetUserByUsername(username); err != nil {
		s.store.CreateUser(store.InsertUser{Username: username, Password: password, IsAdmin: isAdmin})
	}
	w := s.request(http.MethodPost, "/api/login", gin.H{"username": username, "password": password}, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	return w.Result().Cookies()
}

func (s *APITestSuite) TestRegisterAndConflict() {
	w := s.request(http.MethodPost, "/api/users", gin.H{"username": "alice", "password": "pw"}, nil)
	s.Equal(http.StatusCreated, w.Code)
	s.Equal("alice", s.decode(w)["username"])

	w = s.request(http.MethodPost, "/api/users", gin.H{"username": "alice", "password": "other"}, nil)
	s.Equal(http.StatusConflict, w.Code)
	s.Equal("Username already exists", s.decode(w)["message"])
}

func (s *APITestSuite) TestRegisterValidation() {
	w := s.request(http.MethodPost, "/api/users", gin.H{"username": "alice"}, nil)
	s.Equal(http.StatusBadRequest, w.Code)

	body := s.decode(w)
	s.Equal("Validation error", body["message"])
	s.NotEmpty(body["errors"])
}

func (s *APITestSuite) TestLoginLogoutMe() {
	s.store.CreateUser(store.InsertUser{Username: "alice", Password: "pw"})

	w := s.request(http.MethodPost, "/api/login", gin.H{"username": "alice", "password": "wrong"}, nil)
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.request(http.MethodPost, "/api/login", gin.H{"username": "alice"}, nil)
	s.Equal(http.StatusBadRequest, w.Code)

	cookies := s.login("alice", "pw", false)

	w = s.request(http.MethodGet, "/api/me", nil, cookies)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("alice", s.decode(w)["username"])

	w = s.request(http.MethodGet, "/api/me", nil, nil)
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.request(http.MethodPost, "/api/logout", nil, cookies)
	s.Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodGet, "/api/me", nil, w.Result().Cookies())
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *APITestSuite) TestRandomQuoteCategoryFilter() {
	category := s.store.CreateCategory("Motivation")
	s.store.CreateQuote(store.InsertQuote{Text: "X", Author: "Y", CategoryID: &category.ID})

	w := s.request(http.MethodGet, "/api/quotes/random?categories=1", nil, nil)
	s.Equal(http.StatusOK, w.Code)
	body := s.decode(w)
	s.Equal("X", body["text"])
	s.Equal("Motivation", body["categoryName"])

	w = s.request(http.MethodGet, "/api/quotes/random?categories=2", nil, nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("No quotes found", s.decode(w)["message"])
}

func (s *APITestSuite) TestListQuotesPagination() {
	for i := 0; i < 15; i++ {
		s.store.CreateQuote(store.InsertQuote{Text: "q", Author: "a"})
	}

	w := s.request(http.MethodGet, "/api/quotes", nil, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Len(s.decodeList(w), 10)

	w = s.request(http.MethodGet, "/api/quotes?page=2", nil, nil)
	s.Len(s.decodeList(w), 5)

	w = s.request(http.MethodGet, "/api/quotes?page=99", nil, nil)
	s.Empty(s.decodeList(w))

	// Non-numeric values coerce to defaults.
	w = s.request(http.MethodGet, "/api/quotes?page=abc&limit=xyz", nil, nil)
	s.Len(s.decodeList(w), 10)
}

func (s *APITestSuite) TestQuoteAdminGating() {
	quote := gin.H{"text": "X", "author": "Y"}

	w := s.request(http.MethodPost, "/api/quotes", quote, nil)
	s.Equal(http.StatusForbidden, w.Code)

	userCookies := s.login("user", "pw", false)
	w = s.request(http.MethodPost, "/api/quotes", quote, userCookies)
	s.Equal(http.StatusForbidden, w.Code)

	adminCookies := s.login("boss", "pw", true)
	w = s.request(http.MethodPost, "/api/quotes", quote, adminCookies)
	s.Equal(http.StatusCreated, w.Code)

	w = s.request(http.MethodPost, "/api/quotes", gin.H{"author": "Y"}, adminCookies)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *APITestSuite) TestQuoteUpdateAndDelete() {
	adminCookies := s.login("boss", "pw", true)
	quote := s.store.CreateQuote(store.InsertQuote{Text: "old", Author: "a"})

	w := s.request(http.MethodPut, "/api/quotes/999", gin.H{"text": "new"}, adminCookies)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.request(http.MethodPut, "/api/quotes/1", gin.H{"text": "new"}, adminCookies)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("new", s.decode(w)["text"])
	s.Equal("a", s.decode(w)["author"])

	w = s.request(http.MethodDelete, "/api/quotes/1", nil, adminCookies)
	s.Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodDelete, "/api/quotes/1", nil, adminCookies)
	s.Equal(http.StatusNotFound, w.Code)

	_, err := s.store.GetQuote(quote.ID)
	s.ErrorIs(err, store.ErrNotFound)
}

func (s *APITestSuite) TestCategoryConflicts() {
	adminCookies := s.login("boss", "pw", true)

	w := s.request(http.MethodPost, "/api/categories", gin.H{"name": "Motivation"}, adminCookies)
	s.Equal(http.StatusCreated, w.Code)

	w = s.request(http.MethodPost, "/api/categories", gin.H{"name": "motivation"}, adminCookies)
	s.Equal(http.StatusConflict, w.Code)

	w = s.request(http.MethodPost, "/api/categories", gin.H{"name": "Wisdom"}, adminCookies)
	s.Equal(http.StatusCreated, w.Code)

	w = s.request(http.MethodPut, "/api/categories/2", gin.H{"name": "Motivation"}, adminCookies)
	s.Equal(http.StatusConflict, w.Code)

	// Renaming a category to itself is fine.
	w = s.request(http.MethodPut, "/api/categories/1", gin.H{"name": "Motivation"}, adminCookies)
	s.Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodDelete, "/api/categories/2", nil, adminCookies)
	s.Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodDelete, "/api/categories/2", nil, adminCookies)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *APITestSuite) TestFavoritesFlow() {
	quote := s.store.CreateQuote(store.InsertQuote{Text: "X", Author: "Y"})

	w := s.request(http.MethodGet, "/api/favorites", nil, nil)
	s.Equal(http.StatusUnauthorized, w.Code)

	cookies := s.login("alice", "pw", false)

	w = s.request(http.MethodPost, "/api/favorites", gin.H{"quoteId": 999}, cookies)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.request(http.MethodPost, "/api/favorites", gin.H{"quoteId": quote.ID}, cookies)
	s.Equal(http.StatusCreated, w.Code)

	w = s.request(http.MethodPost, "/api/favorites", gin.H{"quoteId": quote.ID}, cookies)
	s.Equal(http.StatusConflict, w.Code)
	s.Equal("Quote already favorited", s.decode(w)["message"])

	w = s.request(http.MethodGet, "/api/quotes/1", nil, cookies)
	s.Equal(http.StatusOK, w.Code)
	s.Equal(true, s.decode(w)["isFavorite"])

	// Another user must not see alice's favorite flag.
	bobCookies := s.login("bob", "pw", false)
	w = s.request(http.MethodGet, "/api/quotes/1", nil, bobCookies)
	s.Equal(false, s.decode(w)["isFavorite"])

	w = s.request(http.MethodGet, "/api/favorites", nil, cookies)
	s.Len(s.decodeList(w), 1)

	w = s.request(http.MethodDelete, "/api/favorites/1", nil, cookies)
	s.Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodDelete, "/api/favorites/1", nil, cookies)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *APITestSuite) TestProfileOwnerOnly() {
	cookies := s.login("alice", "pw", false)
	s.login("bob", "pw", false)

	w := s.request(http.MethodGet, "/api/users/1", nil, nil)
	s.Equal(http.StatusForbidden, w.Code)

	w = s.request(http.MethodGet, "/api/users/2", nil, cookies)
	s.Equal(http.StatusForbidden, w.Code)

	w = s.request(http.MethodGet, "/api/users/1", nil, cookies)
	s.Equal(http.StatusOK, w.Code)
	body := s.decode(w)
	s.Equal("alice", body["username"])
	s.Equal("light", body["theme"])

	w = s.request(http.MethodPut, "/api/users/1", gin.H{"theme": "dark", "enableNotifications": true}, cookies)
	s.Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodGet, "/api/users/1", nil, cookies)
	body = s.decode(w)
	s.Equal("dark", body["theme"])
	s.Equal(true, body["enableNotifications"])
}

func (s *APITestSuite) TestSettingsAnonymousDraft() {
	w := s.request(http.MethodGet, "/api/settings", nil, nil)
	s.Equal(http.StatusOK, w.Code)
	body := s.decode(w)
	s.Equal("light", body["theme"])
	s.Equal(true, body["enableNotifications"])

	w = s.request(http.MethodPost, "/api/settings", gin.H{"theme": "dark"}, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("dark", s.decode(w)["theme"])
	draftCookies := w.Result().Cookies()

	w = s.request(http.MethodGet, "/api/settings", nil, draftCookies)
	body = s.decode(w)
	s.Equal("dark", body["theme"])
	s.Equal("playfair", body["font"])

	// The draft never reaches the settings table.
	_, err := s.store.GetSettings(1)
	s.ErrorIs(err, store.ErrNotFound)
}

func (s *APITestSuite) TestSettingsLoggedInMerge() {
	cookies := s.login("alice", "pw", false)

	w := s.request(http.MethodPost, "/api/settings", gin.H{"theme": "dark"}, cookies)
	s.Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodPost, "/api/settings", gin.H{"font": "poppins"}, cookies)
	s.Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodGet, "/api/settings", nil, cookies)
	body := s.decode(w)
	s.Equal("dark", body["theme"])
	s.Equal("poppins", body["font"])
}

func (s *APITestSuite) TestAISettings() {
	w := s.request(http.MethodGet, "/api/settings/ai", nil, nil)
	s.Equal(http.StatusUnauthorized, w.Code)

	cookies := s.login("alice", "pw", false)

	w = s.request(http.MethodGet, "/api/settings/ai", nil, cookies)
	s.Equal(http.StatusOK, w.Code)
	body := s.decode(w)
	s.Equal("", body["apiKey"])
	s.Equal("gpt-4o", body["aiModel"])

	w = s.request(http.MethodPost, "/api/settings/ai", gin.H{"apiKey": "sk-user", "aiModel": "gpt-4o-mini"}, cookies)
	s.Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodGet, "/api/settings/ai", nil, cookies)
	body = s.decode(w)
	s.Equal("sk-user", body["apiKey"])
	s.Equal("gpt-4o-mini", body["aiModel"])
}

func (s *APITestSuite) TestGenerateQuote() {
	w := s.request(http.MethodPost, "/api/quotes/generate", gin.H{}, nil)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Prompt is required", s.decode(w)["message"])

	w = s.request(http.MethodPost, "/api/quotes/generate", gin.H{"prompt": "a quote about grit"}, nil)
	s.Equal(http.StatusOK, w.Code)
	body := s.decode(w)
	s.Equal("Keep going.", body["text"])
	s.Equal("AI Generated", body["author"])
	s.Equal(true, body["isAiGenerated"])
}

func (s *APITestSuite) TestGenerateQuoteProviderFailure() {
	s.completer.err = errors.New("provider unreachable")

	w := s.request(http.MethodPost, "/api/quotes/generate", gin.H{"prompt": "a quote about success"}, nil)
	s.Equal(http.StatusOK, w.Code)
	body := s.decode(w)
	s.Equal("Inspiration Engine", body["author"])
	s.Equal(true, body["isAiGenerated"])
	s.NotEmpty(body["text"])
}

func (s *APITestSuite) TestGenerateQuoteResolvesCategory() {
	s.store.CreateCategory("Motivation")

	w := s.request(http.MethodPost, "/api/quotes/generate", gin.H{"prompt": "push on", "category": "motivation"}, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("Motivation", s.decode(w)["categoryName"])
}

func (s *APITestSuite) TestDailyQuoteStable() {
	s.store.CreateQuote(store.InsertQuote{Text: "one", Author: "a"})
	s.store.CreateQuote(store.InsertQuote{Text: "two", Author: "a"})

	w := s.request(http.MethodGet, "/api/quotes/daily", nil, nil)
	s.Equal(http.StatusOK, w.Code)
	first := s.decode(w)

	w = s.request(http.MethodGet, "/api/quotes/daily", nil, nil)
	s.Equal(first["id"], s.decode(w)["id"])
}
