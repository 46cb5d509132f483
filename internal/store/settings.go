package store

// Defaults applied when settings are created lazily on first write.
const (
	DefaultTheme    = "light"
	DefaultFont     = "playfair"
	DefaultLanguage = "en"
	DefaultAIModel  = "gpt-4o"
	DefaultPrompt   = "Create a motivational quote that inspires action and positive change."
)

// SettingsPatch describes a partial settings update. Nil fields are left
// unchanged; explicit values, including false booleans, are applied.
// APIKey is the only field that can be cleared, by setting ClearAPIKey.
type SettingsPatch struct {
	Theme               *string
	Font                *string
	Language            *string
	TextToSpeech        *bool
	EnableNotifications *bool
	SelectedCategories  []string
	APIKey              *string
	ClearAPIKey         bool
	AIModel             *string
	DefaultPrompt       *string
}

// DefaultSettings returns the settings a user starts out with.
func DefaultSettings(userID int) Settings {
	return Settings{
		UserID:              userID,
		Theme:               DefaultTheme,
		Font:                DefaultFont,
		Language:            DefaultLanguage,
		TextToSpeech:        false,
		EnableNotifications: true,
		SelectedCategories:  []string{},
		AIModel:             DefaultAIModel,
		DefaultPrompt:       DefaultPrompt,
	}
}

func (s *Store) GetSettings(userID int) (*Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	settings, ok := s.settings[userID]
	if !ok {
		return nil, ErrNotFound
	}
	out := *settings
	return &out, nil
}

// CreateOrUpdateSettings merges the patch into the user's settings, creating
// the row with defaults on first write. Fields already set are never reset
// to defaults by later partial updates.
func (s *Store) CreateOrUpdateSettings(userID int, patch SettingsPatch) *Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, ok := s.settings[userID]
	if !ok {
		defaults := DefaultSettings(userID)
		defaults.ID = s.nextSettingsID
		s.nextSettingsID++
		settings = &defaults
		s.settings[userID] = settings
	}

	if patch.Theme != nil {
		settings.Theme = *patch.Theme
	}
	if patch.Font != nil {
		settings.Font = *patch.Font
	}
	if patch.Language != nil {
		settings.Language = *patch.Language
	}
	if patch.TextToSpeech != nil {
		settings.TextToSpeech = *patch.TextToSpeech
	}
	if patch.EnableNotifications != nil {
		settings.EnableNotifications = *patch.EnableNotifications
	}
	if patch.SelectedCategories != nil {
		settings.SelectedCategories = patch.SelectedCategories
	}
	if patch.ClearAPIKey {
		settings.APIKey = nil
	} else if patch.APIKey != nil {
		settings.APIKey = patch.APIKey
	}
	if patch.AIModel != nil {
		settings.AIModel = *patch.AIModel
	}
	if patch.DefaultPrompt != nil {
		settings.DefaultPrompt = *patch.DefaultPrompt
	}

	out := *settings
	return &out
}
