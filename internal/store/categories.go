package store

import (
	"sort"
	"strings"
)

// CategoryPatch describes a partial category update. Nil fields are left
// unchanged.
type CategoryPatch struct {
	Name *string
}

func (s *Store) CreateCategory(name string) *Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	category := &Category{
		ID:   s.nextCategoryID,
		Name: name,
	}
	s.nextCategoryID++
	s.categories[category.ID] = category
	return category
}

func (s *Store) GetCategories() []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]Category, 0, len(s.categories))
	for _, category := range s.categories {
		categories = append(categories, *category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories
}

func (s *Store) GetCategory(id int) (*Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	category, ok := s.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	c := *category
	return &c, nil
}

// GetCategoryByName matches category names case-insensitively.
func (s *Store) GetCategoryByName(name string) (*Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, category := range s.categories {
		if strings.EqualFold(category.Name, name) {
			c := *category
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Store) UpdateCategory(id int, patch CategoryPatch) (*Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, ok := s.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Name != nil {
		category.Name = *patch.Name
	}
	c := *category
	return &c, nil
}

// DeleteCategory removes a category. Quotes referencing it keep their
// dangling category id.
func (s *Store) DeleteCategory(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return false
	}
	delete(s.categories, id)
	return true
}
