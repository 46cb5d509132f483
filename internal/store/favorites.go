package store

import (
	"time"

	"github.com/samber/lo"
)

// AddFavorite appends a favorite with a server-generated timestamp. The
// duplicate check belongs to the API layer, not here.
func (s *Store) AddFavorite(userID, quoteID int) *Favorite {
	s.mu.Lock()
	defer s.mu.Unlock()

	favorite := &Favorite{
		ID:        s.nextFavoriteID,
		UserID:    userID,
		QuoteID:   quoteID,
		CreatedAt: time.Now(),
	}
	s.nextFavoriteID++
	s.favorites[userID] = append(s.favorites[userID], favorite)
	f := *favorite
	return &f
}

// RemoveFavorite drops all favorites of the user for the given quote and
// reports whether anything was removed.
func (s *Store) RemoveFavorite(userID, quoteID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	favorites := s.favorites[userID]
	remaining := lo.Filter(favorites, func(f *Favorite, _ int) bool {
		return f.QuoteID != quoteID
	})
	s.favorites[userID] = remaining
	return len(remaining) < len(favorites)
}

func (s *Store) IsFavorite(userID, quoteID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.isFavorite(userID, quoteID)
}

// GetFavorites returns the favorited quotes of a user, joined with their
// categories. Favorites whose quote has been deleted are skipped.
func (s *Store) GetFavorites(userID int) []QuoteWithCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []QuoteWithCategory{}
	for _, favorite := range s.favorites[userID] {
		quote, ok := s.quotes[favorite.QuoteID]
		if !ok {
			continue
		}
		joined := s.joinCategory(quote)
		joined.IsFavorite = true
		result = append(result, joined)
	}
	return result
}

func (s *Store) isFavorite(userID, quoteID int) bool {
	for _, favorite := range s.favorites[userID] {
		if favorite.QuoteID == quoteID {
			return true
		}
	}
	return false
}
