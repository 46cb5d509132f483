// Package api wires the HTTP server: sessions, middleware and the route
// table.
package api

import (
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/jorren/quotespark/internal/api/auth"
	"github.com/jorren/quotespark/internal/api/handler"
	"github.com/jorren/quotespark/internal/config"
	"github.com/jorren/quotespark/internal/daily"
	"github.com/jorren/quotespark/internal/generate"
	"github.com/jorren/quotespark/internal/store"
)

type Server struct {
	cfg       *config.Config
	ginEngine *gin.Engine
	store     *store.Store
	generator *generate.Generator
	daily     *daily.Service
}

func New(cfg *config.Config, s *store.Store, generator *generate.Generator, dailySvc *daily.Service, debug bool) *Server {
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}
	server := &Server{
		cfg:       cfg,
		ginEngine: gin.Default(),
		store:     s,
		generator: generator,
		daily:     dailySvc,
	}
	server.setupRoutes()
	return server
}

func (s *Server) setupSession() {
	store := cookie.NewStore([]byte(s.cfg.SessionKey))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   s.cfg.SessionMaxAge,
		HttpOnly: true,
		Secure:   false, // Set to true in production
		SameSite: http.SameSiteLaxMode,
	})
	s.ginEngine.Use(sessions.Sessions("quotespark_session", store))
}

func (s *Server) setupRoutes() {
	s.setupSession()
	s.ginEngine.Use(gzip.Gzip(gzip.DefaultCompression))

	h := handler.New(s.store, s.generator, s.daily, s.cfg.PageSize)

	api := s.ginEngine.Group("/api")

	// Public
	api.POST("/users", h.Register)
	api.POST("/login", h.Login)
	api.POST("/logout", h.Logout)
	api.GET("/me", h.Me)
	api.GET("/quotes", h.ListQuotes)
	api.GET("/quotes/random", h.RandomQuote)
	api.GET("/quotes/daily", h.DailyQuote)
	api.GET("/quotes/:id", h.GetQuote)
	api.POST("/quotes/generate", h.GenerateQuote)
	api.GET("/categories", h.ListCategories)
	api.GET("/settings", h.GetSettings)
	api.POST("/settings", h.SaveSettings)

	// Owner checks happen in the handlers.
	api.GET("/users/:id", h.GetProfile)
	api.PUT("/users/:id", h.UpdateProfile)

	// Login required
	session := api.Group("/")
	session.Use(auth.RequireAuth())
	session.GET("/favorites", h.ListFavorites)
	session.POST("/favorites", h.AddFavorite)
	session.DELETE("/favorites/:quoteId", h.RemoveFavorite)
	session.GET("/settings/ai", h.GetAISettings)
	session.POST("/settings/ai", h.SaveAISettings)

	// Admin only
	admin := api.Group("/")
	admin.Use(auth.RequireAdmin())
	admin.POST("/quotes", h.CreateQuote)
	admin.PUT("/quotes/:id", h.UpdateQuote)
	admin.DELETE("/quotes/:id", h.DeleteQuote)
	admin.POST("/categories", h.CreateCategory)
	admin.PUT("/categories/:id", h.UpdateCategory)
	admin.DELETE("/categories/:id", h.DeleteCategory)
}

// Router exposes the configured gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.ginEngine
}

func (s *Server) Run() error {
	return s.ginEngine.Run(s.cfg.Listen)
}
