package store

import (
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// User represents a registered account. Passwords are stored as-is, the
// service makes no hardening promises.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Category is a named grouping for quotes.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Quote is a stored inspirational sentence. CategoryID may reference a
// category that has since been deleted; dangling references are tolerated.
type Quote struct {
	ID            int     `json:"id"`
	Text          string  `json:"text"`
	Author        string  `json:"author"`
	CategoryID    *int    `json:"categoryId"`
	BackgroundURL *string `json:"backgroundUrl"`
	IsAiGenerated bool    `json:"isAiGenerated"`
}

// Favorite links a user to a quote they bookmarked.
type Favorite struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	QuoteID   int       `json:"quoteId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Settings holds the per-user preference bundle, including the AI
// generation configuration.
type Settings struct {
	ID                  int      `json:"id"`
	UserID              int      `json:"userId"`
	Theme               string   `json:"theme"`
	Font                string   `json:"font"`
	Language            string   `json:"language"`
	TextToSpeech        bool     `json:"textToSpeech"`
	EnableNotifications bool     `json:"enableNotifications"`
	SelectedCategories  []string `json:"selectedCategories"`
	APIKey              *string  `json:"apiKey"`
	AIModel             string   `json:"aiModel"`
	DefaultPrompt       string   `json:"defaultPrompt"`
}

// QuoteWithCategory is a quote joined with its category name. IsFavorite
// depends on the requesting user and must be resolved per request, never
// cached across users.
type QuoteWithCategory struct {
	Quote
	CategoryName *string `json:"categoryName"`
	IsFavorite   bool    `json:"isFavorite"`
}

// Store is an in-memory collection of all entities. All state lives for the
// process lifetime only. A single RWMutex serializes mutations so that
// multi-step operations (duplicate checks, favorite add/remove) stay atomic
// per call even though gin handles requests on concurrent goroutines.
type Store struct {
	mu sync.RWMutex

	users      map[int]*User
	categories map[int]*Category
	quotes     map[int]*Quote
	favorites  map[int][]*Favorite // keyed by user id
	settings   map[int]*Settings   // keyed by user id

	// quoteOrder preserves insertion order for pagination.
	quoteOrder []int

	nextUserID     int
	nextCategoryID int
	nextQuoteID    int
	nextFavoriteID int
	nextSettingsID int
}

// New creates an empty store.
func New() *Store {
	return &Store{
		users:          make(map[int]*User),
		categories:     make(map[int]*Category),
		quotes:         make(map[int]*Quote),
		favorites:      make(map[int][]*Favorite),
		settings:       make(map[int]*Settings),
		nextUserID:     1,
		nextCategoryID: 1,
		nextQuoteID:    1,
		nextFavoriteID: 1,
		nextSettingsID: 1,
	}
}

// NewSeeded creates a store preloaded with the default categories, quotes
// and admin account.
func NewSeeded() *Store {
	s := New()
	s.seed()
	return s
}
