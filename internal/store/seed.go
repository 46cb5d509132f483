package store

func ptr[T any](v T) *T { return &v }

// seed loads the default categories, a starter set of quotes and the admin
// account. Quote category ids reference the seeded categories by position.
func (s *Store) seed() {
	for _, name := range []string{
		"Motivation", "Leadership", "Success", "Happiness",
		"Mindfulness", "Inspiration", "Perseverance", "Wisdom",
	} {
		s.CreateCategory(name)
	}

	for _, quote := range []InsertQuote{
		{
			Text:          "The only limit to our realization of tomorrow will be our doubts of today.",
			Author:        "Franklin D. Roosevelt",
			CategoryID:    ptr(1), // Motivation
			BackgroundURL: ptr("https://images.unsplash.com/photo-1469474968028-56623f02e42e?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"),
		},
		{
			Text:          "The best way to predict the future is to create it.",
			Author:        "Abraham Lincoln",
			CategoryID:    ptr(3), // Success
			BackgroundURL: ptr("https://images.unsplash.com/photo-1470770903676-69b98201ea1c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"),
		},
		{
			Text:          "The journey of a thousand miles begins with one step.",
			Author:        "Lao Tzu",
			CategoryID:    ptr(6), // Inspiration
			BackgroundURL: ptr("https://images.unsplash.com/photo-1501785888041-af3ef285b470?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"),
		},
		{
			Text:          "We become what we think about most of the time.",
			Author:        "Earl Nightingale",
			CategoryID:    ptr(5), // Mindfulness
			BackgroundURL: ptr("https://images.unsplash.com/photo-1517021897933-0e0319cfbc28?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"),
		},
		{
			Text:          "The greatest glory in living lies not in never falling, but in rising every time we fall.",
			Author:        "Nelson Mandela",
			CategoryID:    ptr(7), // Perseverance
			BackgroundURL: ptr("https://images.unsplash.com/photo-1506744038136-46273834b3fb?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"),
		},
		{
			Text:          "Life is what happens when you're busy making other plans.",
			Author:        "John Lennon",
			CategoryID:    ptr(4), // Happiness
			BackgroundURL: ptr("https://images.unsplash.com/photo-1519681393784-d120267933ba?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"),
		},
		{
			Text:          "Twenty years from now you will be more disappointed by the things you didn't do than by the ones you did.",
			Author:        "Mark Twain",
			CategoryID:    ptr(8), // Wisdom
			BackgroundURL: ptr("https://images.unsplash.com/photo-1476611317561-60117649dd94?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"),
		},
		{
			Text:          "Your potential is the sum of all the possibilities you have yet to explore.",
			Author:        "AI Generated",
			CategoryID:    ptr(1), // Motivation
			BackgroundURL: ptr("https://images.unsplash.com/photo-1470770903676-69b98201ea1c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"),
			IsAiGenerated: true,
		},
	} {
		s.CreateQuote(quote)
	}

	s.CreateUser(InsertUser{
		Username: "admin",
		Password: "admin123",
		IsAdmin:  true,
	})
}
