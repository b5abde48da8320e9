// Package preview is the interactive component browser started by
// `glint preview`. Stories scroll in a document; a modal can be opened over
// it to show the scroll lock at work.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/glint/internal/components"
	"github.com/alexisbeaulieu97/glint/internal/document"
	"github.com/alexisbeaulieu97/glint/internal/gallery"
	"github.com/alexisbeaulieu97/glint/internal/logger"
	"github.com/alexisbeaulieu97/glint/internal/scrolllock"
)

// Options configures a preview model.
type Options struct {
	Theme    components.Theme
	Registry *gallery.Registry
	Logger   *logger.Logger
}

// Model is the preview's bubbletea model. Callbacks handed to components
// mutate it, so it is always used through a pointer.
type Model struct {
	log      *logger.Logger
	themes   *components.ThemeManager
	cycle    []components.Theme
	current  int
	registry *gallery.Registry

	doc       *document.Document
	locks     *scrolllock.Manager
	modal     *components.Modal
	modalOpen bool
	alerts    []*components.Alert

	keys keyMap
	help help.Model

	width  int
	height int
	err    error
}

// New creates a preview model. The document starts at 80x24 until the first
// window size message arrives.
func New(opts Options) *Model {
	theme := opts.Theme
	if theme.Name == "" {
		theme = components.DefaultTheme()
	}
	reg := opts.Registry
	if reg == nil {
		reg = gallery.Builtin()
	}

	m := &Model{
		log:      opts.Logger.Component("preview"),
		themes:   components.NewThemeManager(theme),
		cycle:    themeCycle(theme),
		registry: reg,
		doc:      document.New(80, 22),
		keys:     defaultKeyMap(),
		help:     help.New(),
		width:    80,
		height:   24,
	}
	m.locks = scrolllock.NewManager(m.doc, opts.Logger)
	m.modal = components.NewModal(m.locks, m.closeModal).WithName("preview")
	m.alerts = m.seedAlerts()
	m.refresh()
	return m
}

// themeCycle puts the starting theme first, followed by the built-ins it is
// not already one of.
func themeCycle(start components.Theme) []components.Theme {
	cycle := []components.Theme{start}
	for _, name := range components.ThemeNames() {
		if name == start.Name {
			continue
		}
		theme, _ := components.ThemeByName(name)
		cycle = append(cycle, theme)
	}
	return cycle
}

func (m *Model) seedAlerts() []*components.Alert {
	seeds := []*components.Alert{
		components.InfoAlert("Welcome to the glint preview.").WithTitle("Hello"),
		components.SuccessAlert("Press m to open a modal; scrolling stops until it closes."),
		components.WarningAlert("Press x to dismiss the first alert."),
	}
	for _, a := range seeds {
		a.WithOnClose(func() { m.removeAlert(a) }).WithFullWidth(true)
	}
	return seeds
}

func (m *Model) removeAlert(target *components.Alert) {
	for i, a := range m.alerts {
		if a == target {
			m.alerts = append(m.alerts[:i], m.alerts[i+1:]...)
			m.log.DebugFields("alert dismissed", map[string]any{"message": a.Message()})
			return
		}
	}
}

func (m *Model) closeModal() {
	m.modalOpen = false
}

func (m *Model) context() components.RenderContext {
	return components.DefaultContext().
		WithTheme(m.themes.Theme()).
		WithSize(m.width, m.height)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.doc.SetSize(msg.Width, max(msg.Height-2, 1))
		m.refresh()
		m.syncModal()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.modal.HandleMouse(msg) {
			m.syncModal()
			return m, nil
		}
		return m, m.doc.Update(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.Close()
		return m, tea.Quit
	}

	if m.modal.HandleKey(msg) {
		m.syncModal()
		return m, nil
	}
	if m.modal.Visible() {
		// The dialog owns the keyboard; only quit and esc get through.
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Modal):
		m.modalOpen = true
		m.syncModal()
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		m.current = (m.current + 1) % len(m.cycle)
		m.themes.SetTheme(m.cycle[m.current])
		m.log.DebugFields("theme changed", map[string]any{"theme": m.cycle[m.current].Name})
		m.refresh()
		m.syncModal()
		return m, nil

	case key.Matches(msg, m.keys.Dismiss):
		m.dismissFirstAlert()
		m.refresh()
		return m, nil
	}

	return m, m.doc.Update(msg)
}

// dismissFirstAlert activates the close control of the first alert, the
// same path a click on × takes.
func (m *Model) dismissFirstAlert() {
	if len(m.alerts) == 0 {
		return
	}
	node, err := m.alerts[0].Render(m.context())
	if err != nil {
		m.err = err
		return
	}
	node.Find("alert.close").Activate()
}

// syncModal renders the modal with the current open flag so it can take or
// release its scroll lock.
func (m *Model) syncModal() {
	holders := m.locks.Holders()
	if m.modalOpen && !m.modal.Visible() {
		holders++
	}
	body := fmt.Sprintf("The page behind this dialog cannot scroll.\n\nScroll lock holders: %d", holders)
	_, err := m.modal.Render(m.context(), components.ModalProps{
		IsOpen:     m.modalOpen,
		Title:      "Scroll lock",
		Body:       body,
		ShowFooter: true,
		Footer:     "esc or click outside to close",
	})
	if err != nil {
		m.err = err
		m.log.Error(err, "render modal")
	}
}

func (m *Model) refresh() {
	ctx := m.context()
	var sections []string

	for _, a := range m.alerts {
		node, err := a.Render(ctx)
		if err != nil {
			m.err = err
			continue
		}
		sections = append(sections, node.View())
	}

	heading := components.TypographyStyle(ctx.Theme, components.TypographyTitle)
	caption := components.TypographyStyle(ctx.Theme, components.TypographyMuted)
	group := ""
	for _, s := range m.registry.List() {
		if s.Group != group {
			group = s.Group
			sections = append(sections, "", heading.Render(group))
		}
		out, err := s.Render(ctx.WithSize(m.width, 0))
		if err != nil {
			out = fmt.Sprintf("render %s: %v", s.ID, err)
		}
		sections = append(sections, caption.Render(s.Title), out, "")
	}

	m.doc.SetContent(strings.Join(sections, "\n"))
}

// View implements tea.Model.
func (m *Model) View() string {
	if node := m.modal.Node(); node != nil {
		return node.View()
	}

	theme := m.themes.Theme()
	title := components.TypographyStyle(theme, components.TypographyTitle).Render("glint preview")
	status := components.TypographyStyle(theme, components.TypographyMuted).Render("theme: " + theme.Name)
	header := lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", status)
	if m.err != nil {
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, "  ",
			lipgloss.NewStyle().Foreground(theme.Palette.Danger.Base).Render(m.err.Error()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, m.doc.View(), m.help.View(m.keys))
}

// Close releases anything the preview still holds.
func (m *Model) Close() {
	m.modalOpen = false
	m.modal.Unmount()
}
