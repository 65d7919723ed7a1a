package tui

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/unitix/internal/domain"
	"github.com/aalvaropc/unitix/internal/usecase"
)

type model struct {
	theme   Theme
	deps    Deps
	log     *slog.Logger
	convert *usecase.ConvertUnit

	categories list.Model
	from       list.Model
	to         list.Model
	input      textinput.Model
	focused    field

	conv    domain.Conversion
	convErr error
	note    string

	width, height    int
	pickerW, pickerH int

	workspaceFound bool
	workspaceRoot  string
	toast          string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	conv := deps.Convert
	if conv == nil {
		conv = usecase.NewConvertUnit(deps.Units, usecase.WithLogger(log))
	}

	ti := textinput.New()
	ti.Placeholder = "value"
	ti.Prompt = "> "
	ti.CharLimit = 64

	m := model{
		theme:          DefaultTheme(),
		deps:           deps,
		log:            log,
		convert:        conv,
		input:          ti,
		pickerW:        28,
		pickerH:        10,
		workspaceFound: deps.WorkspaceRoot != "",
		workspaceRoot:  deps.WorkspaceRoot,
	}

	m.categories = newPicker("Category", deps.Units.ListCategories(), m.pickerW, m.pickerH)
	m.applyDefaults(deps.Config.Defaults)
	m.focus(fieldValue)
	return m
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case workspaceRefreshedMsg:
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		return m, nil

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.log.Error("workspace.init.failed", "root", msg.root, "err", msg.err)
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.log.Info("workspace.init.ok", "root", msg.root)
		m.toast = "Workspace created. Restart unitix to load its tables."
		return m, cmdRefreshWorkspace(m.deps)

	case tea.KeyMsg:
		m.toast = ""
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			return m, m.nextField(1)
		case "shift+tab":
			return m, m.nextField(-1)
		case "ctrl+s":
			m.swapUnits()
			return m, nil
		case "ctrl+n":
			if m.workspaceFound {
				m.toast = "Workspace already at " + m.workspaceRoot
				return m, nil
			}
			return m, cmdInitWorkspaceHere(m.deps)
		case "s":
			if m.focused != fieldValue {
				m.swapUnits()
				return m, nil
			}
		}

		if m.focused == fieldValue {
			return m, m.routeToInput(msg)
		}
		if isNavKey(msg) {
			return m, m.routeToPicker(msg)
		}
		return m, nil
	}

	if m.focused == fieldValue {
		return m, m.routeToInput(msg)
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Unit Converter") + "\n" +
		m.theme.Subtitle.Render("Pick a category, type a value, read the formula") + "\n"

	var banner string
	if m.workspaceFound {
		banner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		banner = m.theme.Help.Render("No workspace (builtin tables). ctrl+n creates one here.")
	}

	left := m.card(fieldCategory, m.categories.View())

	valueBox := m.card(fieldValue, m.theme.Label.Render("Input Value")+"\n"+m.input.View())
	fromBox := m.card(fieldFrom, m.from.View())
	middle := lipgloss.JoinVertical(lipgloss.Left, valueBox, fromBox)

	equals := m.theme.Equals.Render("=")

	resultBox := m.theme.Card.Render(m.theme.Label.Render("Result") + "\n" + m.renderResult())
	toBox := m.card(fieldTo, m.to.View())
	right := lipgloss.JoinVertical(lipgloss.Left, resultBox, toBox)

	form := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", middle, equals, right)

	body := header + "\n" + banner + "\n\n" + form + "\n" + m.renderFormula()
	if m.note != "" {
		body += "\n" + m.theme.Note.Render(m.note)
	}
	if m.toast != "" {
		body += "\n" + m.theme.Toast.Render(m.toast)
	}

	help := m.theme.Help.Render("tab/shift+tab move • ↑/↓ select • s swap (ctrl+s anywhere) • esc quit")
	return wrap.Render(body + "\n" + help)
}

func (m model) card(f field, content string) string {
	if m.focused == f {
		return m.theme.Focused.Render(content)
	}
	return m.theme.Card.Render(content)
}
