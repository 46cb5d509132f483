package store

// InsertUser carries the fields needed to create a user.
type InsertUser struct {
	Username string
	Password string
	IsAdmin  bool
}

func (s *Store) CreateUser(in InsertUser) *User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := &User{
		ID:       s.nextUserID,
		Username: in.Username,
		Password: in.Password,
		IsAdmin:  in.IsAdmin,
	}
	s.nextUserID++
	s.users[user.ID] = user
	return user
}

func (s *Store) GetUser(id int) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	u := *user
	return &u, nil
}

func (s *Store) GetUserByUsername(username string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			u := *user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}
