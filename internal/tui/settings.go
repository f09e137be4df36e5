package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/genbadev/genba/internal/store"
)

type settingsModel struct {
	store  *store.Store
	width  int
	height int

	settings   store.UserSettings
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	reporter      *string
	supervisor    *string
	reminderTime  *string
	dailyReminder *bool
	weeklyReport  *bool
}

func newSettingsModel(s *store.Store) settingsModel {
	var rep, sup, rt string
	var daily, weekly bool
	return settingsModel{
		store:         s,
		reporter:      &rep,
		supervisor:    &sup,
		reminderTime:  &rt,
		dailyReminder: &daily,
		weeklyReport:  &weekly,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type settingsDataMsg struct {
	settings store.UserSettings
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return settingsDataMsg{settings: s.store.Settings()}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.settings = msg.settings
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.Edit):
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	*s.reporter = s.settings.DefaultReporter
	*s.supervisor = s.settings.DefaultSupervisor
	*s.reminderTime = s.settings.Notifications.ReminderTime
	*s.dailyReminder = s.settings.Notifications.DailyReminder
	*s.weeklyReport = s.settings.Notifications.WeeklyReport

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Default reporter").Value(s.reporter),
			huh.NewInput().Title("Default supervisor").Value(s.supervisor),
		).Title("Defaults"),
		huh.NewGroup(
			huh.NewConfirm().Title("Daily reminder").Value(s.dailyReminder),
			huh.NewInput().Title("Reminder time (HH:MM)").Value(s.reminderTime),
			huh.NewConfirm().Title("Weekly report").Value(s.weeklyReport),
		).Title("Notifications"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		return s, s.saveSettings()
	}

	return s, cmd
}

func (s settingsModel) saveSettings() tea.Cmd {
	notifications := store.NotificationSettings{
		DailyReminder: *s.dailyReminder,
		ReminderTime:  *s.reminderTime,
		WeeklyReport:  *s.weeklyReport,
	}
	patch := store.SettingsPatch{
		DefaultReporter:   s.reporter,
		DefaultSupervisor: s.supervisor,
		Notifications:     &notifications,
	}
	return func() tea.Msg {
		if err := s.store.UpdateSettings(patch); err != nil {
			return statusMsg{text: fmt.Sprintf("Save error: %v", err), isError: true}
		}
		return settingsDataMsg{settings: s.store.Settings()}
	}
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		title := titleStyle.Render("Settings")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View()),
		)
	}

	title := titleStyle.Render("Settings")
	hint := mutedStyle.Render("Press enter to edit settings")

	onOff := func(b bool) string {
		if b {
			return successStyle.Render("on")
		}
		return mutedStyle.Render("off")
	}

	rows := []string{
		title,
		"",
		fmt.Sprintf("  %-24s %s", "Default reporter", highlightStyle.Render(s.settings.DefaultReporter)),
		fmt.Sprintf("  %-24s %s", "Default supervisor", highlightStyle.Render(s.settings.DefaultSupervisor)),
		fmt.Sprintf("  %-24s %s", "Daily reminder", onOff(s.settings.Notifications.DailyReminder)),
		fmt.Sprintf("  %-24s %s", "Reminder time", highlightStyle.Render(s.settings.Notifications.ReminderTime)),
		fmt.Sprintf("  %-24s %s", "Weekly report", onOff(s.settings.Notifications.WeeklyReport)),
		"",
		hint,
	}

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
