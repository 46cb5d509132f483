package store

import (
	"math/rand"

	"github.com/samber/lo"
)

// InsertQuote carries the fields needed to create a quote.
type InsertQuote struct {
	Text          string
	Author        string
	CategoryID    *int
	BackgroundURL *string
	IsAiGenerated bool
}

// QuotePatch describes a partial quote update. Nil fields are left
// unchanged.
type QuotePatch struct {
	Text          *string
	Author        *string
	CategoryID    *int
	BackgroundURL *string
	IsAiGenerated *bool
}

func (s *Store) CreateQuote(in InsertQuote) *Quote {
	s.mu.Lock()
	defer s.mu.Unlock()

	quote := &Quote{
		ID:            s.nextQuoteID,
		Text:          in.Text,
		Author:        in.Author,
		CategoryID:    in.CategoryID,
		BackgroundURL: in.BackgroundURL,
		IsAiGenerated: in.IsAiGenerated,
	}
	s.nextQuoteID++
	s.quotes[quote.ID] = quote
	s.quoteOrder = append(s.quoteOrder, quote.ID)
	q := *quote
	return &q
}

func (s *Store) GetQuote(id int) (*Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	quote, ok := s.quotes[id]
	if !ok {
		return nil, ErrNotFound
	}
	q := *quote
	return &q, nil
}

// GetRandomQuote picks a quote uniformly at random, optionally restricted to
// the given category ids.
func (s *Store) GetRandomQuote(categoryIDs []int) (*Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	candidates := s.orderedQuotes()
	if len(categoryIDs) > 0 {
		candidates = lo.Filter(candidates, func(q *Quote, _ int) bool {
			return q.CategoryID != nil && lo.Contains(categoryIDs, *q.CategoryID)
		})
	}
	if len(candidates) == 0 {
		return nil, ErrNotFound
	}
	q := *candidates[rand.Intn(len(candidates))]
	return &q, nil
}

func (s *Store) UpdateQuote(id int, patch QuotePatch) (*Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	quote, ok := s.quotes[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Text != nil {
		quote.Text = *patch.Text
	}
	if patch.Author != nil {
		quote.Author = *patch.Author
	}
	if patch.CategoryID != nil {
		quote.CategoryID = patch.CategoryID
	}
	if patch.BackgroundURL != nil {
		quote.BackgroundURL = patch.BackgroundURL
	}
	if patch.IsAiGenerated != nil {
		quote.IsAiGenerated = *patch.IsAiGenerated
	}
	q := *quote
	return &q, nil
}

func (s *Store) DeleteQuote(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.quotes[id]; !ok {
		return false
	}
	delete(s.quotes, id)
	s.quoteOrder = lo.Without(s.quoteOrder, id)
	return true
}

// GetQuoteWithCategory joins a quote with its category name. The category
// name is nil when the quote has no category or the reference dangles.
// IsFavorite is always false here, the caller resolves it per user.
func (s *Store) GetQuoteWithCategory(id int) (*QuoteWithCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	quote, ok := s.quotes[id]
	if !ok {
		return nil, ErrNotFound
	}
	joined := s.joinCategory(quote)
	return &joined, nil
}

// GetQuotesWithCategory returns one page of quotes in insertion order,
// joined with their category names.
func (s *Store) GetQuotesWithCategory(page, limit int) []QuoteWithCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	quotes := s.orderedQuotes()
	start := (page - 1) * limit
	if start >= len(quotes) || start < 0 {
		return []QuoteWithCategory{}
	}
	end := min(start+limit, len(quotes))

	return lo.Map(quotes[start:end], func(q *Quote, _ int) QuoteWithCategory {
		return s.joinCategory(q)
	})
}

// orderedQuotes returns the live quotes in insertion order. Callers must
// hold at least a read lock.
func (s *Store) orderedQuotes() []*Quote {
	quotes := make([]*Quote, 0, len(s.quoteOrder))
	for _, id := range s.quoteOrder {
		if q, ok := s.quotes[id]; ok {
			quotes = append(quotes, q)
		}
	}
	return quotes
}

// joinCategory resolves the category name for a quote. Callers must hold at
// least a read lock.
func (s *Store) joinCategory(quote *Quote) QuoteWithCategory {
	joined := QuoteWithCategory{Quote: *quote}
	if quote.CategoryID != nil {
		if category, ok := s.categories[*quote.CategoryID]; ok {
			name := category.Name
			joined.CategoryName = &name
		}
	}
	return joined
}
