package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/genbadev/genba/internal/store"
	"github.com/genbadev/genba/internal/validate"
)

type reportsModel struct {
	store  *store.Store
	width  int
	height int

	summaries []store.ReportSummary
	cursor    int

	viewingDetail bool
	detail        *store.DailyReport

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	formProject    *string
	formLocation   *string
	formWeather    *string
	formTemp       *string
	formReporter   *string
	formSupervisor *string
	formStart      *string
	formEnd        *string
	formPlanned    *string
	formActual     *string
	formNotes      *string
	formPlan       *string
}

func newReportsModel(s *store.Store) reportsModel {
	var proj, loc, weather, temp, rep, sup, start, end, planned, actual, notes, plan string
	return reportsModel{
		store:          s,
		formProject:    &proj,
		formLocation:   &loc,
		formWeather:    &weather,
		formTemp:       &temp,
		formReporter:   &rep,
		formSupervisor: &sup,
		formStart:      &start,
		formEnd:        &end,
		formPlanned:    &planned,
		formActual:     &actual,
		formNotes:      &notes,
		formPlan:       &plan,
	}
}

func (r *reportsModel) setSize(w, h int) {
	r.width = w
	r.height = h
}

type summariesDataMsg struct {
	summaries []store.ReportSummary
}

type reportDetailMsg struct {
	report *store.DailyReport
}

func (r reportsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		summaries := r.store.GetReportSummaries()
		sort.SliceStable(summaries, func(i, j int) bool {
			return summaries[i].Date.After(summaries[j].Date)
		})
		return summariesDataMsg{summaries: summaries}
	}
}

func (r reportsModel) update(msg tea.Msg) (reportsModel, tea.Cmd) {
	if r.formActive && r.form != nil {
		return r.updateForm(msg)
	}

	switch msg := msg.(type) {
	case summariesDataMsg:
		r.summaries = msg.summaries
		r.cursor = clampCursor(r.cursor, len(r.summaries))
		return r, nil

	case reportDetailMsg:
		r.detail = msg.report
		r.viewingDetail = r.detail != nil
		return r, nil

	case tea.KeyMsg:
		if r.viewingDetail {
			if key.Matches(msg, keys.Back) {
				r.viewingDetail = false
				r.detail = nil
			}
			return r, nil
		}
		return r.updateList(msg)
	}
	return r, nil
}

func (r reportsModel) updateList(msg tea.KeyMsg) (reportsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if r.cursor > 0 {
			r.cursor--
		}
	case key.Matches(msg, keys.Down):
		if r.cursor < len(r.summaries)-1 {
			r.cursor++
		}
	case key.Matches(msg, keys.Enter):
		if len(r.summaries) > 0 {
			id := r.summaries[r.cursor].ID
			return r, func() tea.Msg {
				return reportDetailMsg{report: r.store.GetReportByID(id)}
			}
		}
	case key.Matches(msg, keys.New):
		return r.showNewReportForm()
	case key.Matches(msg, keys.Delete):
		if len(r.summaries) > 0 {
			id := r.summaries[r.cursor].ID
			return r, func() tea.Msg {
				if err := r.store.DeleteReport(id); err != nil {
					return statusMsg{text: fmt.Sprintf("Delete error: %v", err), isError: true}
				}
				return reportDeletedMsg{}
			}
		}
	}
	return r, nil
}

func (r reportsModel) showNewReportForm() (reportsModel, tea.Cmd) {
	projects := r.store.GetActiveProjects()
	if len(projects) == 0 {
		return r, func() tea.Msg {
			return statusMsg{text: "Create an active project first", isError: true}
		}
	}

	settings := r.store.Settings()
	*r.formProject = projects[0].Name
	*r.formLocation = projects[0].Location
	*r.formWeather = weatherChoices[0]
	*r.formTemp = "20"
	*r.formReporter = settings.DefaultReporter
	*r.formSupervisor = settings.DefaultSupervisor
	*r.formStart = "08:00"
	*r.formEnd = "17:00"
	*r.formPlanned = "0"
	*r.formActual = "0"
	*r.formNotes = ""
	*r.formPlan = ""

	projectOptions := make([]huh.Option[string], len(projects))
	for i, p := range projects {
		projectOptions[i] = huh.NewOption(p.Name, p.Name)
	}
	weatherOptions := make([]huh.Option[string], len(weatherChoices))
	for i, w := range weatherChoices {
		weatherOptions[i] = huh.NewOption(w, w)
	}

	r.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Project").Options(projectOptions...).Value(r.formProject),
			huh.NewInput().Title("Location").Value(r.formLocation),
			huh.NewSelect[string]().Title("Weather").Options(weatherOptions...).Value(r.formWeather),
			huh.NewInput().Title("Temperature (°C)").Value(r.formTemp),
		).Title("Site"),
		huh.NewGroup(
			huh.NewInput().Title("Reporter").Value(r.formReporter),
			huh.NewInput().Title("Supervisor").Value(r.formSupervisor),
			huh.NewInput().Title("Work start (HH:MM)").Value(r.formStart),
			huh.NewInput().Title("Work end (HH:MM)").Value(r.formEnd),
		).Title("People & hours"),
		huh.NewGroup(
			huh.NewInput().Title("Planned progress %").Value(r.formPlanned),
			huh.NewInput().Title("Actual progress %").Value(r.formActual),
			huh.NewText().Title("Notes").Value(r.formNotes),
			huh.NewText().Title("Tomorrow's plan").Value(r.formPlan),
		).Title("Progress"),
	).WithShowHelp(true).WithShowErrors(true)

	r.formActive = true
	return r, r.form.Init()
}

func (r reportsModel) updateForm(msg tea.Msg) (reportsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			r.formActive = false
			r.form = nil
			return r, nil
		}
	}

	form, cmd := r.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		r.form = f
	}

	if r.form.State == huh.StateCompleted {
		r.formActive = false
		return r, r.submitReport()
	}

	return r, cmd
}

func (r reportsModel) submitReport() tea.Cmd {
	temp, _ := strconv.ParseFloat(*r.formTemp, 64)
	planned, _ := strconv.Atoi(*r.formPlanned)
	actual, _ := strconv.Atoi(*r.formActual)

	form := validate.ReportForm{
		ProjectName: *r.formProject,
		Location:    *r.formLocation,
		Weather:     *r.formWeather,
		Temperature: temp,
		Reporter:    *r.formReporter,
		Supervisor:  *r.formSupervisor,
		WorkStart:   *r.formStart,
		WorkEnd:     *r.formEnd,
		Planned:     planned,
		Actual:      actual,
	}
	report := store.DailyReport{
		Date:         time.Now(),
		ProjectName:  *r.formProject,
		Location:     *r.formLocation,
		Weather:      *r.formWeather,
		Temperature:  temp,
		Reporter:     *r.formReporter,
		Supervisor:   *r.formSupervisor,
		WorkHours:    store.WorkHours{Start: *r.formStart, End: *r.formEnd},
		Progress:     store.Progress{Planned: planned, Actual: actual},
		Notes:        *r.formNotes,
		TomorrowPlan: *r.formPlan,
	}

	return func() tea.Msg {
		if errs := validate.Check(form); errs != nil {
			return statusMsg{text: firstError(errs), isError: true}
		}
		created, err := r.store.CreateReport(report)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Save error: %v", err), isError: true}
		}
		return reportCreatedMsg{report: created}
	}
}

func firstError(errs map[string]string) string {
	for field, msg := range errs {
		return field + ": " + msg
	}
	return "invalid input"
}

func (r reportsModel) view() string {
	w := r.width - 4

	if r.formActive && r.form != nil {
		title := titleStyle.Render("New Daily Report")
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", r.form.View())
		return panelStyle.Width(w).Render(content)
	}

	if r.viewingDetail && r.detail != nil {
		return r.renderDetail(w)
	}
	return r.renderList(w)
}

func (r reportsModel) renderList(w int) string {
	title := titleStyle.Render("Daily Reports")

	if len(r.summaries) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No reports yet. Press n to create one."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	header := mutedStyle.Render(fmt.Sprintf("  %-12s %-24s %-10s %-4s %-4s %-4s %s",
		"Date", "Project", "Status", "Chg", "Req", "Cnc", "Photos"))
	rows = append(rows, header)

	for i, sum := range r.summaries {
		cursor := "  "
		style := normalItemStyle
		if i == r.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		row := style.Render(fmt.Sprintf("%s%-12s %-24s %-10s  %s    %s    %s   %d",
			cursor, formatDate(sum.Date), sum.ProjectName, sum.Status,
			boolMark(sum.HasChanges), boolMark(sum.HasRequests), boolMark(sum.HasConcerns),
			sum.PhotoCount,
		))
		rows = append(rows, row)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new  d: delete  enter: detail  esc: back"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (r reportsModel) renderDetail(w int) string {
	d := r.detail
	title := titleStyle.Render(fmt.Sprintf("%s — %s", d.ProjectName, formatDateLong(d.Date)))

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	rows = append(rows, fmt.Sprintf("  %s %s, %.1f°C", subtitleStyle.Render("Weather:"), d.Weather, d.Temperature))
	rows = append(rows, fmt.Sprintf("  %s %s", subtitleStyle.Render("Location:"), d.Location))
	rows = append(rows, fmt.Sprintf("  %s %s / %s", subtitleStyle.Render("Reporter/Supervisor:"), d.Reporter, d.Supervisor))
	rows = append(rows, fmt.Sprintf("  %s %s–%s", subtitleStyle.Render("Hours:"), d.WorkHours.Start, d.WorkHours.End))
	rows = append(rows, fmt.Sprintf("  %s planned %d%%, actual %d%%", subtitleStyle.Render("Progress:"), d.Progress.Planned, d.Progress.Actual))
	rows = append(rows, "")

	if len(d.Changes) > 0 {
		rows = append(rows, highlightStyle.Render("  Changes"))
		for _, c := range d.Changes {
			rows = append(rows, fmt.Sprintf("   %s [%s] %s",
				riskStyle(string(c.Impact)).Render("●"), c.Category, c.Description))
		}
	}
	if len(d.ClientRequests) > 0 {
		rows = append(rows, highlightStyle.Render("  Client Requests"))
		for _, cr := range d.ClientRequests {
			rows = append(rows, fmt.Sprintf("   %s [%s/%s] %s",
				riskStyle(string(cr.Priority)).Render("●"), cr.Type, cr.Status, cr.Content))
		}
	}
	if len(d.WorkerFeedback) > 0 {
		rows = append(rows, highlightStyle.Render("  Worker Feedback"))
		for _, fb := range d.WorkerFeedback {
			rows = append(rows, fmt.Sprintf("   %s [%s] %s — %s",
				riskStyle(string(fb.Priority)).Render("●"), fb.Type, fb.Content, fb.WorkerName))
		}
	}
	if len(d.Concerns) > 0 {
		rows = append(rows, highlightStyle.Render("  Concerns"))
		for _, c := range d.Concerns {
			rows = append(rows, fmt.Sprintf("   %s [%s/%s] %s",
				riskStyle(string(c.RiskLevel)).Render("●"), c.Category, c.Status, c.Description))
		}
	}
	if len(d.Photos) > 0 {
		rows = append(rows, highlightStyle.Render(fmt.Sprintf("  Photos (%d)", len(d.Photos))))
		for _, p := range d.Photos {
			rows = append(rows, fmt.Sprintf("   [%s] %s %s", p.Category, p.Filename, mutedStyle.Render(p.Caption)))
		}
	}
	if d.Notes != "" {
		rows = append(rows, "")
		rows = append(rows, fmt.Sprintf("  %s %s", subtitleStyle.Render("Notes:"), d.Notes))
	}
	if d.TomorrowPlan != "" {
		rows = append(rows, fmt.Sprintf("  %s %s", subtitleStyle.Render("Tomorrow:"), d.TomorrowPlan))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  esc: back"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
