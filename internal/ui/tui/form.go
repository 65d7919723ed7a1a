package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/unitix/internal/domain"
)

type field int

const (
	fieldCategory field = iota
	fieldValue
	fieldFrom
	fieldTo
	fieldCount
)

func (f field) String() string {
	switch f {
	case fieldCategory:
		return "category"
	case fieldValue:
		return "value"
	case fieldFrom:
		return "from"
	case fieldTo:
		return "to"
	default:
		return "unknown"
	}
}

type pickItem struct {
	name string
	desc string
}

func (p pickItem) Title() string       { return p.name }
func (p pickItem) Description() string { return p.desc }
func (p pickItem) FilterValue() string { return p.name }

// compactDelegate renders one line per item so three pickers fit side by side.
func compactDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)
	return d
}

func newPicker(title string, names []string, width, height int) list.Model {
	items := make([]list.Item, 0, len(names))
	for _, n := range names {
		items = append(items, pickItem{name: n})
	}

	l := list.New(items, compactDelegate(), width, height)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.KeyMap.Quit.SetEnabled(false)
	return l
}

func selectedName(l list.Model) string {
	it, ok := l.SelectedItem().(pickItem)
	if !ok {
		return ""
	}
	return it.name
}

// selectName moves the cursor to name and reports whether it exists.
func selectName(l *list.Model, name string) bool {
	for i, it := range l.Items() {
		if p, ok := it.(pickItem); ok && p.name == name {
			l.Select(i)
			return true
		}
	}
	return false
}

// isNavKey reports keys that are routed to the focused picker.
func isNavKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "up", "down", "k", "j", "home", "end", "pgup", "pgdown":
		return true
	}
	return false
}

func (m *model) focus(f field) tea.Cmd {
	m.focused = f
	if f == fieldValue {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func (m *model) nextField(delta int) tea.Cmd {
	n := (int(m.focused) + delta + int(fieldCount)) % int(fieldCount)
	return m.focus(field(n))
}

// loadUnits fills the unit pickers for the selected category, preferring
// the given names and falling back to the first and second unit.
func (m *model) loadUnits(preferFrom, preferTo string) {
	cat := selectedName(m.categories)
	names, err := m.deps.Units.ListUnits(cat)
	if err != nil {
		m.log.Warn("tui.units.failed", "category", cat, "err", err)
		names = nil
	}

	m.from = newPicker("From", names, m.pickerW, m.pickerH)
	m.to = newPicker("To", names, m.pickerW, m.pickerH)

	if !selectName(&m.from, preferFrom) && len(names) > 0 {
		m.from.Select(0)
	}
	if !selectName(&m.to, preferTo) && len(names) > 1 {
		m.to.Select(1)
	}
}

func (m *model) swapUnits() {
	from, to := selectedName(m.from), selectedName(m.to)
	selectName(&m.from, to)
	selectName(&m.to, from)
	m.recompute()
}

// recompute refreshes the result and formula from the current form state.
func (m *model) recompute() {
	cat := selectedName(m.categories)
	from := selectedName(m.from)
	to := selectedName(m.to)

	m.note = ""
	if c, err := m.deps.Units.Category(cat); err == nil {
		m.note = c.Note()
	}

	conv, err := m.convert.Execute(cat, from, to, m.input.Value())
	m.conv = conv
	m.convErr = err
}

// resultText is what the result box shows: the value, "Invalid input", empty,
// or a short error message.
func (m model) resultText() string {
	if m.convErr != nil {
		return userMessage(m.convErr)
	}
	return m.conv.Outcome.String()
}

func (m model) formulaText() string {
	if m.convErr != nil {
		return ""
	}
	return m.conv.Formula
}

// routeToPicker forwards a navigation key to the focused picker and
// reloads dependent state when the selection moved.
func (m *model) routeToPicker(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focused {
	case fieldCategory:
		before := m.categories.Index()
		m.categories, cmd = m.categories.Update(msg)
		if m.categories.Index() != before {
			m.loadUnits("", "")
			m.recompute()
		}
	case fieldFrom:
		before := m.from.Index()
		m.from, cmd = m.from.Update(msg)
		if m.from.Index() != before {
			m.recompute()
		}
	case fieldTo:
		before := m.to.Index()
		m.to, cmd = m.to.Update(msg)
		if m.to.Index() != before {
			m.recompute()
		}
	}
	return cmd
}

func (m *model) routeToInput(msg tea.Msg) tea.Cmd {
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.recompute()
	}
	return cmd
}

// applyDefaults preselects the configured category and units. Unknown names
// fall back to the first category and its first two units.
func (m *model) applyDefaults(d domain.DefaultsConfig) {
	if strings.TrimSpace(d.Category) != "" && !selectName(&m.categories, d.Category) {
		m.log.Info("tui.defaults.ignored", "category", d.Category)
	}
	m.loadUnits(d.From, d.To)
	m.input.SetValue(d.Value)
	m.recompute()
}

// resize keeps selections stable; list pagination depends on the height.
func (m *model) resize(w, h int) {
	m.width, m.height = w, h
	m.pickerW = max(20, (w-8)/3)
	m.pickerH = max(5, h-16)

	cat, from, to := selectedName(m.categories), selectedName(m.from), selectedName(m.to)
	m.categories.SetSize(m.pickerW, m.pickerH)
	m.from.SetSize(m.pickerW, m.pickerH)
	m.to.SetSize(m.pickerW, m.pickerH)
	selectName(&m.categories, cat)
	selectName(&m.from, from)
	selectName(&m.to, to)
	m.input.Width = max(10, m.pickerW-4)
}
