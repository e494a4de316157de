package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ogison/daily-planner/internal/cli/formatter"
	"github.com/ogison/daily-planner/internal/domain"
)

// dayLoadedMsg signals that the day's items have been (re)loaded.
type dayLoadedMsg struct {
	items []*domain.ScheduleItem
	err   error
}

// itemDeletedMsg signals that a delete completed and the view must reload.
type itemDeletedMsg struct{ err error }

// itemSavedMsg signals that an add or edit form committed.
type itemSavedMsg struct{ err error }

// dayModel is the bubbletea model for the interactive day view. It
// toggles between the item list and the per-category summary.
type dayModel struct {
	app     *App
	date    string
	items   []*domain.ScheduleItem
	cursor  int
	summary bool
	loading bool
	err     error
	width   int
	height  int

	// Non-nil while the add/edit form is open.
	form       *huh.Form
	formValues *itemFormValues
	editingID  string
}

func newDayModel(app *App, date string) dayModel {
	return dayModel{app: app, date: date, loading: true}
}

func (m dayModel) shortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "categories")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (m dayModel) loadDay() tea.Cmd {
	app, date := m.app, m.date
	return func() tea.Msg {
		day, err := app.Schedules.GetCurrentSchedule(context.Background(), date)
		if err != nil {
			return dayLoadedMsg{err: err}
		}
		return dayLoadedMsg{items: day.Items}
	}
}

func (m dayModel) deleteUnderCursor() tea.Cmd {
	if m.cursor >= len(m.items) {
		return nil
	}
	app, date, id := m.app, m.date, m.items[m.cursor].ID
	return func() tea.Msg {
		return itemDeletedMsg{err: app.Schedules.DeleteItem(context.Background(), id, date)}
	}
}

func (m dayModel) openAddForm() dayModel {
	m.formValues = &itemFormValues{Category: string(domain.CategoryOther)}
	m.form = itemForm(m.formValues)
	m.editingID = ""
	return m
}

func (m dayModel) openEditForm() dayModel {
	if m.cursor >= len(m.items) {
		return m
	}
	it := m.items[m.cursor]
	m.formValues = &itemFormValues{
		Title:    it.Title,
		Start:    domain.FormatTime(it.StartMin),
		End:      domain.FormatTime(it.EndMin),
		Category: string(it.Category),
		Notes:    it.Notes,
	}
	m.form = itemForm(m.formValues)
	m.editingID = it.ID
	return m
}

// saveForm turns completed form state into a service call.
func (m dayModel) saveForm() tea.Cmd {
	app, date, id := m.app, m.date, m.editingID
	values := *m.formValues
	return func() tea.Msg {
		draft, err := draftFromValues(values)
		if err != nil {
			return itemSavedMsg{err: err}
		}
		ctx := context.Background()
		if id == "" {
			_, err = app.Schedules.AddItem(ctx, draft, date)
			return itemSavedMsg{err: err}
		}
		patch := domain.ItemPatch{
			Title:    &draft.Title,
			StartMin: &draft.StartMin,
			EndMin:   &draft.EndMin,
			Category: &draft.Category,
			Notes:    &draft.Notes,
		}
		return itemSavedMsg{err: app.Schedules.UpdateItem(ctx, id, patch, date)}
	}
}

func (m dayModel) closeForm() dayModel {
	m.form = nil
	m.formValues = nil
	m.editingID = ""
	return m
}

func (m dayModel) Init() tea.Cmd {
	return m.loadDay()
}

// updateForm routes messages to the open form until it completes or the
// user cancels with escape.
func (m dayModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m.closeForm(), nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		saveCmd := m.saveForm()
		m = m.closeForm()
		m.loading = true
		return m, tea.Batch(cmd, saveCmd)
	}

	return m, cmd
}

func (m dayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form != nil {
		if _, sized := msg.(tea.WindowSizeMsg); !sized {
			return m.updateForm(msg)
		}
	}

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dayLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.items = msg.items
		if m.cursor >= len(m.items) && len(m.items) > 0 {
			m.cursor = len(m.items) - 1
		}
		return m, nil

	case itemDeletedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.loading = true
		return m, m.loadDay()

	case itemSavedMsg:
		if msg.err != nil {
			m.loading = false
			m.err = msg.err
			return m, nil
		}
		m.loading = true
		return m, m.loadDay()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "a":
			m = m.openAddForm()
			return m, m.form.Init()
		case "e":
			if !m.summary {
				m = m.openEditForm()
				if m.form != nil {
					return m, m.form.Init()
				}
			}
		case "c":
			m.summary = !m.summary
		case "r":
			m.loading = true
			return m, m.loadDay()
		case "x":
			if !m.summary {
				return m, m.deleteUnderCursor()
			}
		}
	}

	return m, nil
}

func (m dayModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.StyleHeader.Render(m.date))
	b.WriteString("\n\n")

	if m.form != nil {
		b.WriteString(m.form.View())
		return b.String()
	}

	switch {
	case m.loading:
		b.WriteString(formatter.Dim("loading..."))
		b.WriteString("\n")
	case m.err != nil:
		b.WriteString(formatter.StyleErr.Render(fmt.Sprintf("error: %v", m.err)))
		b.WriteString("\n")
	case m.summary:
		b.WriteString(formatter.CategorySummary(m.items))
	default:
		b.WriteString(m.viewItems())
	}

	b.WriteString("\n")
	b.WriteString(m.viewHelp())
	return b.String()
}

func (m dayModel) viewItems() string {
	if len(m.items) == 0 {
		return formatter.Dim("no items scheduled") + "\n"
	}
	var b strings.Builder
	for i, it := range m.items {
		marker := "  "
		line := fmt.Sprintf("%s  %s  %s",
			formatter.TimeRange(it), it.Title, formatter.CategoryBadge(it.Category))
		if i == m.cursor {
			marker = formatter.StyleHeader.Render("> ")
			line = formatter.StyleBold.Render(fmt.Sprintf("%s  %s  ", formatter.TimeRange(it), it.Title)) +
				formatter.CategoryBadge(it.Category)
		}
		b.WriteString(marker)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m dayModel) viewHelp() string {
	parts := make([]string, 0, 6)
	for _, binding := range m.shortHelp() {
		h := binding.Help()
		parts = append(parts, fmt.Sprintf("%s %s", h.Key, formatter.Dim(h.Desc)))
	}
	return formatter.Dim(strings.Join(parts, "  "))
}
