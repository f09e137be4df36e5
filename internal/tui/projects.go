package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/genbadev/genba/internal/store"
	"github.com/genbadev/genba/internal/validate"
)

type projectsModel struct {
	store  *store.Store
	width  int
	height int

	projects []store.ProjectInfo
	cursor   int

	formActive bool
	form       *huh.Form
	editingID  string // empty = creating

	// Form field pointers (survive value copies)
	formName       *string
	formLocation   *string
	formClient     *string
	formSupervisor *string
	formStart      *string
	formEnd        *string
	formDesc       *string
	formActiveFlag *bool
}

func newProjectsModel(s *store.Store) projectsModel {
	var name, loc, client, sup, start, end, desc string
	active := true
	return projectsModel{
		store:          s,
		formName:       &name,
		formLocation:   &loc,
		formClient:     &client,
		formSupervisor: &sup,
		formStart:      &start,
		formEnd:        &end,
		formDesc:       &desc,
		formActiveFlag: &active,
	}
}

func (p *projectsModel) setSize(w, h int) {
	p.width = w
	p.height = h
}

type projectsDataMsg struct {
	projects []store.ProjectInfo
}

func (p projectsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return projectsDataMsg{projects: p.store.Projects()}
	}
}

func (p projectsModel) update(msg tea.Msg) (projectsModel, tea.Cmd) {
	if p.formActive && p.form != nil {
		return p.updateForm(msg)
	}

	switch msg := msg.(type) {
	case projectsDataMsg:
		p.projects = msg.projects
		p.cursor = clampCursor(p.cursor, len(p.projects))
		return p, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if p.cursor > 0 {
				p.cursor--
			}
		case key.Matches(msg, keys.Down):
			if p.cursor < len(p.projects)-1 {
				p.cursor++
			}
		case key.Matches(msg, keys.New):
			return p.showProjectForm(nil)
		case key.Matches(msg, keys.Edit):
			if len(p.projects) > 0 {
				proj := p.projects[p.cursor]
				return p.showProjectForm(&proj)
			}
		case key.Matches(msg, keys.Delete):
			if len(p.projects) > 0 {
				id := p.projects[p.cursor].ID
				return p, func() tea.Msg {
					if err := p.store.DeleteProject(id); err != nil {
						return statusMsg{text: fmt.Sprintf("Delete error: %v", err), isError: true}
					}
					return projectSavedMsg{}
				}
			}
		}
	}
	return p, nil
}

func (p projectsModel) showProjectForm(existing *store.ProjectInfo) (projectsModel, tea.Cmd) {
	if existing != nil {
		p.editingID = existing.ID
		*p.formName = existing.Name
		*p.formLocation = existing.Location
		*p.formClient = existing.Client
		*p.formSupervisor = existing.Supervisor
		*p.formStart = formatDate(existing.StartDate)
		*p.formEnd = formatDate(existing.EndDate)
		*p.formDesc = existing.Description
		*p.formActiveFlag = existing.IsActive
	} else {
		p.editingID = ""
		*p.formName = ""
		*p.formLocation = ""
		*p.formClient = ""
		*p.formSupervisor = ""
		*p.formStart = formatDate(time.Now())
		*p.formEnd = ""
		*p.formDesc = ""
		*p.formActiveFlag = true
	}

	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Project name").Value(p.formName),
			huh.NewInput().Title("Location").Value(p.formLocation),
			huh.NewInput().Title("Client").Value(p.formClient),
			huh.NewInput().Title("Supervisor").Value(p.formSupervisor),
		),
		huh.NewGroup(
			huh.NewInput().Title("Start date (YYYY-MM-DD)").Value(p.formStart),
			huh.NewInput().Title("End date (YYYY-MM-DD)").Value(p.formEnd),
			huh.NewText().Title("Description").Value(p.formDesc),
			huh.NewConfirm().Title("Active").Value(p.formActiveFlag),
		),
	).WithShowHelp(true).WithShowErrors(true)

	p.formActive = true
	return p, p.form.Init()
}

func (p projectsModel) updateForm(msg tea.Msg) (projectsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			p.formActive = false
			p.form = nil
			return p, nil
		}
	}

	form, cmd := p.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		p.form = f
	}

	if p.form.State == huh.StateCompleted {
		p.formActive = false
		return p, p.submitProject()
	}

	return p, cmd
}

func (p projectsModel) submitProject() tea.Cmd {
	form := validate.ProjectForm{
		Name:       *p.formName,
		Location:   *p.formLocation,
		Client:     *p.formClient,
		Supervisor: *p.formSupervisor,
	}
	start, _ := time.ParseInLocation("2006-01-02", *p.formStart, time.Local)
	end, _ := time.ParseInLocation("2006-01-02", *p.formEnd, time.Local)
	name, loc := *p.formName, *p.formLocation
	client, sup := *p.formClient, *p.formSupervisor
	desc, active := *p.formDesc, *p.formActiveFlag
	editingID := p.editingID

	return func() tea.Msg {
		if errs := validate.Check(form); errs != nil {
			return statusMsg{text: firstError(errs), isError: true}
		}

		var err error
		if editingID != "" {
			err = p.store.UpdateProject(editingID, store.ProjectPatch{
				Name:        &name,
				Location:    &loc,
				StartDate:   &start,
				EndDate:     &end,
				Client:      &client,
				Supervisor:  &sup,
				Description: &desc,
				IsActive:    &active,
			})
		} else {
			_, err = p.store.CreateProject(store.ProjectInfo{
				Name:        name,
				Location:    loc,
				StartDate:   start,
				EndDate:     end,
				Client:      client,
				Supervisor:  sup,
				Description: desc,
				IsActive:    active,
			})
		}
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Save error: %v", err), isError: true}
		}
		return projectSavedMsg{}
	}
}

func (p projectsModel) view() string {
	w := p.width - 4

	if p.formActive && p.form != nil {
		title := titleStyle.Render("New Project")
		if p.editingID != "" {
			title = titleStyle.Render("Edit Project")
		}
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", p.form.View())
		return panelStyle.Width(w).Render(content)
	}

	title := titleStyle.Render("Projects")

	if len(p.projects) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No projects yet. Press n to create one."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	header := mutedStyle.Render(fmt.Sprintf("  %-3s %-24s %-18s %-14s %s", "", "Name", "Client", "Supervisor", "Period"))
	rows = append(rows, header)

	for i, proj := range p.projects {
		mark := mutedStyle.Render("○")
		if proj.IsActive {
			mark = successStyle.Render("●")
		}
		cursor := "  "
		style := normalItemStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		period := fmt.Sprintf("%s – %s", formatDate(proj.StartDate), formatDate(proj.EndDate))
		row := style.Render(fmt.Sprintf("%s%s %-24s %-18s %-14s %s",
			cursor, mark, proj.Name, proj.Client, proj.Supervisor, period))
		rows = append(rows, row)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new  e: edit  d: delete (reports are kept)"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
