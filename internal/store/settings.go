package store

// SettingsPatch is a partial update for the user settings singleton.
// Notifications, like every nested struct, is replaced wholesale when set.
type SettingsPatch struct {
	DefaultReporter   *string
	DefaultSupervisor *string
	FavoriteTemplates *[]string
	Notifications     *NotificationSettings
}

func defaultSettings() UserSettings {
	return UserSettings{
		FavoriteTemplates: []string{},
		Notifications: NotificationSettings{
			DailyReminder: true,
			ReminderTime:  "08:00",
			WeeklyReport:  false,
		},
	}
}

// Settings returns a copy of the current user settings.
func (s *Store) Settings() UserSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdateSettings shallow-merges patch over the settings and persists.
func (s *Store) UpdateSettings(patch SettingsPatch) error {
	s.mu.Lock()
	if patch.DefaultReporter != nil {
		s.settings.DefaultReporter = *patch.DefaultReporter
	}
	if patch.DefaultSupervisor != nil {
		s.settings.DefaultSupervisor = *patch.DefaultSupervisor
	}
	if patch.FavoriteTemplates != nil {
		s.settings.FavoriteTemplates = *patch.FavoriteTemplates
	}
	if patch.Notifications != nil {
		s.settings.Notifications = *patch.Notifications
	}
	err := s.save()
	s.mu.Unlock()

	s.notify()
	return err
}
