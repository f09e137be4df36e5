package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/genbadev/genba/internal/store"
)

type dashboardModel struct {
	store  *store.Store
	width  int
	height int

	today          *store.DailyReport
	weekReports    []store.DailyReport
	activeProjects int
	openConcerns   int
	recent         []store.ReportSummary

	chart barchart.Model
}

func newDashboardModel(s *store.Store) dashboardModel {
	return dashboardModel{
		store: s,
		chart: barchart.New(60, 10),
	}
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

func (d dashboardModel) Init() tea.Cmd {
	return d.loadData()
}

type dashboardDataMsg struct {
	today          *store.DailyReport
	weekReports    []store.DailyReport
	activeProjects int
	openConcerns   int
	recent         []store.ReportSummary
}

func (d dashboardModel) loadData() tea.Cmd {
	return func() tea.Msg {
		now := time.Now()
		todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
		weekStart := todayStart.AddDate(0, 0, -6)
		tomorrow := todayStart.AddDate(0, 0, 1)

		week := d.store.FilterReports(store.ReportFilter{From: &weekStart, To: &tomorrow})

		open := 0
		for _, r := range week {
			for _, c := range r.Concerns {
				if c.Status != store.ConcernResolved {
					open++
				}
			}
		}

		recent := d.store.GetRecentReports(5)
		summaries := make([]store.ReportSummary, 0, len(recent))
		for _, r := range recent {
			summaries = append(summaries, store.ReportSummary{
				ID:          r.ID,
				Date:        r.Date,
				ProjectName: r.ProjectName,
				Status:      store.StatusSubmitted,
				HasChanges:  len(r.Changes) > 0,
				HasRequests: len(r.ClientRequests) > 0,
				HasConcerns: len(r.Concerns) > 0,
				PhotoCount:  len(r.Photos),
			})
		}

		return dashboardDataMsg{
			today:          d.store.GetTodayReport(),
			weekReports:    week,
			activeProjects: len(d.store.GetActiveProjects()),
			openConcerns:   open,
			recent:         summaries,
		}
	}
}

func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		d.today = msg.today
		d.weekReports = msg.weekReports
		d.activeProjects = msg.activeProjects
		d.openConcerns = msg.openConcerns
		d.recent = msg.recent
		d.buildChart()
		return d, nil
	}
	return d, nil
}

// buildChart draws actual progress per day over the trailing week.
func (d *dashboardModel) buildChart() {
	chartWidth := d.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 10
	if d.height > 30 {
		chartHeight = 14
	}

	d.chart = barchart.New(chartWidth, chartHeight)

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)

	var bars []barchart.BarData
	for i := 6; i >= 0; i-- {
		day := todayStart.AddDate(0, 0, -i)
		label := day.Format("Mon 02")

		var values []barchart.BarValue
		for _, r := range d.weekReports {
			if formatDate(r.Date) == formatDate(day) {
				style := lipgloss.NewStyle().Foreground(colorPrimary)
				if r.Progress.Actual < r.Progress.Planned {
					style = lipgloss.NewStyle().Foreground(colorWarning)
				}
				values = append(values, barchart.BarValue{
					Name:  r.ProjectName,
					Value: float64(r.Progress.Actual),
					Style: style,
				})
			}
		}
		if len(values) == 0 {
			values = []barchart.BarValue{{Name: "", Value: 0, Style: lipgloss.NewStyle().Foreground(colorSubtle)}}
		}

		bars = append(bars, barchart.BarData{
			Label:  label,
			Values: values,
		})
	}

	d.chart.PushAll(bars)
	d.chart.Draw()
}

func (d dashboardModel) view() string {
	w := d.width - 4

	todayLine := warningStyle.Render("  No report yet for today")
	if d.today != nil {
		todayLine = successStyle.Render(fmt.Sprintf("  Today: %s, %s %.1f°C, progress %d%%/%d%%",
			d.today.ProjectName, d.today.Weather, d.today.Temperature,
			d.today.Progress.Actual, d.today.Progress.Planned))
	}

	stats := fmt.Sprintf("  Reports this week: %s   Open concerns: %s   Active projects: %s",
		highlightStyle.Render(fmt.Sprintf("%d", len(d.weekReports))),
		riskStyle(concernTone(d.openConcerns)).Render(fmt.Sprintf("%d", d.openConcerns)),
		highlightStyle.Render(fmt.Sprintf("%d", d.activeProjects)),
	)

	var recentRows []string
	if len(d.recent) > 0 {
		recentRows = append(recentRows, highlightStyle.Render("  Recent reports"))
		for _, sum := range d.recent {
			flags := ""
			if sum.HasConcerns {
				flags += errorStyle.Render(" !")
			}
			recentRows = append(recentRows, fmt.Sprintf("   %-12s %-24s %d photos%s",
				formatDate(sum.Date), sum.ProjectName, sum.PhotoCount, flags))
		}
	}

	sections := []string{
		titleStyle.Render("Dashboard"),
		"",
		todayLine,
		stats,
		"",
		subtitleStyle.Render("  Actual progress, trailing week"),
		d.chart.View(),
	}
	if len(recentRows) > 0 {
		sections = append(sections, "")
		sections = append(sections, strings.Join(recentRows, "\n"))
	}

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func concernTone(n int) string {
	switch {
	case n == 0:
		return "low"
	case n < 3:
		return "high"
	}
	return "urgent"
}
