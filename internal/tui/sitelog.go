package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/genbadev/genba/internal/store"
	"github.com/genbadev/genba/internal/validate"
)

// siteLogModel records changes, client requests, worker feedback and
// concerns against today's report.
type siteLogModel struct {
	store  *store.Store
	width  int
	height int

	today *store.DailyReport

	formActive bool
	form       *huh.Form
	formType   string // "change", "request", "feedback", "concern", "photo"

	// Form field pointers (survive value copies)
	formCategory *string
	formText     *string
	formLevel    *string
	formPerson   *string
	formExtra    *string
	formAction   *string
}

func newSiteLogModel(s *store.Store) siteLogModel {
	var cat, text, level, person, extra, action string
	return siteLogModel{
		store:        s,
		formCategory: &cat,
		formText:     &text,
		formLevel:    &level,
		formPerson:   &person,
		formExtra:    &extra,
		formAction:   &action,
	}
}

func (m *siteLogModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

type todayReportMsg struct {
	report *store.DailyReport
}

func (m siteLogModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return todayReportMsg{report: m.store.GetTodayReport()}
	}
}

func (m siteLogModel) update(msg tea.Msg) (siteLogModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case todayReportMsg:
		m.today = msg.report
		return m, nil

	case tea.KeyMsg:
		if m.today == nil {
			return m, nil
		}
		switch msg.String() {
		case "c":
			return m.showForm("change")
		case "r":
			return m.showForm("request")
		case "f":
			return m.showForm("feedback")
		case "w":
			return m.showForm("concern")
		case "p":
			return m.showForm("photo")
		}
	}
	return m, nil
}

func options(values ...string) []huh.Option[string] {
	out := make([]huh.Option[string], len(values))
	for i, v := range values {
		out[i] = huh.NewOption(v, v)
	}
	return out
}

func (m siteLogModel) showForm(kind string) (siteLogModel, tea.Cmd) {
	settings := m.store.Settings()
	*m.formCategory = ""
	*m.formText = ""
	*m.formLevel = ""
	*m.formPerson = settings.DefaultReporter
	*m.formExtra = ""
	*m.formAction = ""
	m.formType = kind

	var group *huh.Group
	switch kind {
	case "change":
		*m.formCategory = string(store.ChangeEnvironment)
		*m.formLevel = string(store.ImpactMinor)
		group = huh.NewGroup(
			huh.NewSelect[string]().Title("Category").
				Options(options("environment", "equipment", "neighbor", "other")...).
				Value(m.formCategory),
			huh.NewText().Title("Description").Value(m.formText),
			huh.NewSelect[string]().Title("Impact").
				Options(options("minor", "caution", "critical")...).
				Value(m.formLevel),
			huh.NewInput().Title("Action required").Value(m.formAction),
			huh.NewInput().Title("Reported by").Value(m.formPerson),
		)
	case "request":
		*m.formCategory = string(store.RequestAddition)
		*m.formLevel = string(store.PriorityMedium)
		group = huh.NewGroup(
			huh.NewSelect[string]().Title("Type").
				Options(options("addition", "change", "complaint", "question", "evaluation")...).
				Value(m.formCategory),
			huh.NewText().Title("Content").Value(m.formText),
			huh.NewSelect[string]().Title("Priority").
				Options(options("low", "medium", "high")...).
				Value(m.formLevel),
			huh.NewInput().Title("Contact person").Value(m.formPerson),
			huh.NewInput().Title("Response so far").Value(m.formExtra),
		)
	case "feedback":
		*m.formCategory = string(store.FeedbackObservation)
		*m.formLevel = string(store.PriorityLow)
		group = huh.NewGroup(
			huh.NewSelect[string]().Title("Type").
				Options(options("observation", "suggestion", "issue", "consultation")...).
				Value(m.formCategory),
			huh.NewText().Title("Content").Value(m.formText),
			huh.NewInput().Title("Worker name").Value(m.formPerson),
			huh.NewSelect[string]().Title("Priority").
				Options(options("low", "medium", "high")...).
				Value(m.formLevel),
			huh.NewInput().Title("Action taken").Value(m.formAction),
		)
	case "concern":
		*m.formCategory = string(store.ConcernSafety)
		*m.formLevel = string(store.RiskMedium)
		group = huh.NewGroup(
			huh.NewSelect[string]().Title("Category").
				Options(options("safety", "quality", "schedule", "cost", "other")...).
				Value(m.formCategory),
			huh.NewText().Title("Description").Value(m.formText),
			huh.NewSelect[string]().Title("Risk level").
				Options(options("low", "medium", "high", "urgent")...).
				Value(m.formLevel),
			huh.NewInput().Title("Potential impact").Value(m.formExtra),
			huh.NewInput().Title("Recommended action").Value(m.formAction),
		)
	case "photo":
		*m.formCategory = string(store.PhotoDuring)
		group = huh.NewGroup(
			huh.NewInput().Title("Filename").Value(m.formText),
			huh.NewSelect[string]().Title("Category").
				Options(options("before_work", "during_work", "after_work", "issue_area", "completed", "other")...).
				Value(m.formCategory),
			huh.NewInput().Title("Caption").Value(m.formExtra),
		)
	}

	m.form = huh.NewForm(group).WithShowHelp(true).WithShowErrors(true)
	m.formActive = true
	return m, m.form.Init()
}

func (m siteLogModel) updateForm(msg tea.Msg) (siteLogModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		return m, m.submitRecord()
	}

	return m, cmd
}

func (m siteLogModel) submitRecord() tea.Cmd {
	if m.today == nil {
		return nil
	}
	reportID := m.today.ID
	kind := m.formType
	category, text, level := *m.formCategory, *m.formText, *m.formLevel
	person, extra, action := *m.formPerson, *m.formExtra, *m.formAction

	return func() tea.Msg {
		var err error
		switch kind {
		case "change":
			form := validate.ChangeForm{Category: category, Description: text, Impact: level, ReportedBy: person}
			if errs := validate.Check(form); errs != nil {
				return statusMsg{text: firstError(errs), isError: true}
			}
			err = m.store.AddChange(reportID, store.ChangeRecord{
				Category:       store.ChangeCategory(category),
				Description:    text,
				Impact:         store.ImpactLevel(level),
				ActionRequired: action,
				ReportedBy:     person,
			})
		case "request":
			form := validate.ClientRequestForm{Type: category, Content: text, Priority: level, Status: string(store.RequestOpen)}
			if errs := validate.Check(form); errs != nil {
				return statusMsg{text: firstError(errs), isError: true}
			}
			err = m.store.AddClientRequest(reportID, store.ClientRequest{
				Type:          store.RequestType(category),
				Content:       text,
				Priority:      store.Priority(level),
				Response:      extra,
				Status:        store.RequestOpen,
				ContactPerson: person,
			})
		case "feedback":
			form := validate.FeedbackForm{Type: category, Content: text, WorkerName: person, Priority: level}
			if errs := validate.Check(form); errs != nil {
				return statusMsg{text: firstError(errs), isError: true}
			}
			err = m.store.AddWorkerFeedback(reportID, store.WorkerFeedback{
				Type:        store.FeedbackType(category),
				Content:     text,
				WorkerName:  person,
				ActionTaken: action,
				Priority:    store.Priority(level),
			})
		case "concern":
			form := validate.ConcernForm{
				Category: category, Description: text, RiskLevel: level,
				PotentialImpact: extra, RecommendedAction: action, ReportedBy: person,
			}
			if errs := validate.Check(form); errs != nil {
				return statusMsg{text: firstError(errs), isError: true}
			}
			err = m.store.AddConcern(reportID, store.Concern{
				Category:          store.ConcernCategory(category),
				Description:       text,
				RiskLevel:         store.RiskLevel(level),
				PotentialImpact:   extra,
				RecommendedAction: action,
				ReportedBy:        person,
			})
		case "photo":
			if text == "" {
				return statusMsg{text: "Filename: required", isError: true}
			}
			err = m.store.AddPhoto(reportID, store.Photo{
				Filename: text,
				Caption:  extra,
				Category: store.PhotoCategory(category),
			})
		}
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Save error: %v", err), isError: true}
		}
		return recordAddedMsg{kind: kind}
	}
}

func (m siteLogModel) view() string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		title := titleStyle.Render("Site Log — " + m.formType)
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View())
		return panelStyle.Width(w).Render(content)
	}

	title := titleStyle.Render("Site Log")

	if m.today == nil {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No report for today. Create one in the Reports tab first."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, subtitleStyle.Render(fmt.Sprintf("  %s — %s", m.today.ProjectName, formatDateLong(m.today.Date))))
	rows = append(rows, "")
	rows = append(rows, fmt.Sprintf("  Changes: %d   Requests: %d   Feedback: %d   Concerns: %d   Photos: %d",
		len(m.today.Changes), len(m.today.ClientRequests), len(m.today.WorkerFeedback),
		len(m.today.Concerns), len(m.today.Photos)))
	rows = append(rows, "")

	for _, c := range m.today.Changes {
		rows = append(rows, fmt.Sprintf("  %s change [%s] %s",
			riskStyle(string(c.Impact)).Render("●"), c.Category, c.Description))
	}
	for _, cr := range m.today.ClientRequests {
		rows = append(rows, fmt.Sprintf("  %s request [%s] %s",
			riskStyle(string(cr.Priority)).Render("●"), cr.Type, cr.Content))
	}
	for _, fb := range m.today.WorkerFeedback {
		rows = append(rows, fmt.Sprintf("  %s feedback [%s] %s",
			riskStyle(string(fb.Priority)).Render("●"), fb.Type, fb.Content))
	}
	for _, c := range m.today.Concerns {
		rows = append(rows, fmt.Sprintf("  %s concern [%s] %s",
			riskStyle(string(c.RiskLevel)).Render("●"), c.Category, c.Description))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  c: change  r: request  f: feedback  w: concern  p: photo"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
