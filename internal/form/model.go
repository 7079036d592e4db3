package form

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/contacts/internal/logging"
)

// helpBarHeight is the number of lines reserved for the help bar at the bottom.
const helpBarHeight = 1

// statusBarHeight is the number of lines reserved for the status line.
const statusBarHeight = 1

// borderChrome is the number of lines consumed by top + bottom borders.
const borderChrome = 2

// labelWidth is the column width of the field labels.
const labelWidth = 8

// fieldLabels are the input labels in focus order after the table.
var fieldLabels = [3]string{"Name", "Phone", "Email"}

// Model is the root Bubble Tea model for the contact form.
type Model struct {
	book      ContactBook
	mode      Mode
	focus     Focus
	selected  int // Selected row, -1 when idle.
	table     table.Model
	inputs    [3]textinput.Model
	status    string
	statusErr bool
	width     int
	height    int
	help      help.Model
	log       *logging.Logger
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger for form events.
func WithLogger(l *logging.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// WithLoadError shows a startup load failure on the status line. The form
// still opens, on whatever the book holds.
func WithLoadError(err error) Option {
	return func(m *Model) {
		if err != nil {
			m.setError(msgLoadErrorPrefix + err.Error())
		}
	}
}

// NewModel creates a form Model over b, idle with table focus.
func NewModel(b ContactBook, opts ...Option) Model {
	t := table.New(
		table.WithColumns(columns(MinLeftWidth-borderChrome)),
		table.WithFocused(true),
		table.WithHeight(10),
		table.WithStyles(tableStyles()),
	)

	m := Model{
		book:     b,
		mode:     ModeForm,
		focus:    FocusTable,
		selected: -1,
		table:    t,
		help:     help.New(),
		log:      logging.Nop(),
	}
	for i, label := range fieldLabels {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = strings.ToLower(label)
		ti.CharLimit = 0 // unlimited
		m.inputs[i] = ti
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.refreshRows()
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Mode returns the current view mode.
func (m Model) Mode() Mode {
	return m.mode
}

// State reports whether a row is selected for editing.
func (m Model) State() State {
	if m.selected >= 0 {
		return StateEditing
	}
	return StateIdle
}

// Status returns the status line text and whether it reports an error.
func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

// Fields returns the current name, phone and email input text.
func (m Model) Fields() (name, phone, email string) {
	return m.inputs[0].Value(), m.inputs[1].Value(), m.inputs[2].Value()
}

// Update handles incoming messages with mode-based routing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocused(msg)
}

// handleKey processes key messages with global and mode-specific routing.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.mode == ModeList {
		m.mode = ModeForm
		return m, nil
	}

	keys := FormKeyMap()
	switch {
	case key.Matches(msg, keys.Quit) && m.focus == FocusTable:
		return m, tea.Quit
	case key.Matches(msg, keys.Next):
		return m, m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, keys.Prev):
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
	case key.Matches(msg, keys.Add):
		m.add()
		return m, nil
	case key.Matches(msg, keys.Update):
		m.update()
		return m, nil
	case key.Matches(msg, keys.Delete):
		m.remove()
		return m, nil
	case key.Matches(msg, keys.Clear):
		m.clear()
		return m, nil
	case key.Matches(msg, keys.View):
		m.viewAll()
		return m, nil
	case key.Matches(msg, keys.Enter):
		if m.focus == FocusTable {
			return m, m.selectRow()
		}
		m.submit()
		return m, nil
	}

	return m.updateFocused(msg)
}

// updateFocused forwards msg to the focused widget.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == FocusTable {
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	i := int(m.focus - FocusName)
	m.inputs[i], cmd = m.inputs[i].Update(msg)
	return m, cmd
}

// setFocus moves keyboard focus to f, blurring everything else.
func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f
	if f == FocusTable {
		m.table.Focus()
	} else {
		m.table.Blur()
	}

	var cmd tea.Cmd
	for i := range m.inputs {
		if Focus(i)+FocusName == f {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

// resize recomputes widget sizes from the window size.
func (m *Model) resize() {
	leftWidth, rightWidth := PaneWidths(m.width)
	inner := leftWidth - borderChrome
	if inner < 0 {
		inner = 0
	}
	m.table.SetColumns(columns(inner))
	m.table.SetWidth(inner)
	m.table.SetHeight(m.contentHeight())

	inputWidth := rightWidth - borderChrome - labelWidth - 1
	if inputWidth < 1 {
		inputWidth = 1
	}
	for i := range m.inputs {
		m.inputs[i].Width = inputWidth
	}
}

// contentHeight returns the usable height for pane content,
// accounting for border chrome, the status line and the help bar.
func (m Model) contentHeight() int {
	h := m.height - borderChrome - statusBarHeight - helpBarHeight
	if h < 1 {
		return 1
	}
	return h
}

// View renders the two-pane layout with status line and help bar.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	helpView := m.help.View(HelpBindings(m.mode))

	if m.mode == ModeList {
		box := FocusedBorder().
			Width(m.width - borderChrome).
			Height(m.contentHeight() + statusBarHeight)
		return lipgloss.JoinVertical(lipgloss.Left, box.Render(m.viewListing()), helpView)
	}

	leftWidth, rightWidth := PaneWidths(m.width)
	contentHeight := m.contentHeight()

	var leftStyle, rightStyle lipgloss.Style
	if m.focus == FocusTable {
		leftStyle = FocusedBorder()
		rightStyle = UnfocusedBorder()
	} else {
		leftStyle = UnfocusedBorder()
		rightStyle = FocusedBorder()
	}

	leftStyle = leftStyle.
		Width(leftWidth - borderChrome).
		Height(contentHeight)
	rightStyle = rightStyle.
		Width(rightWidth - borderChrome).
		Height(contentHeight)

	leftPane := leftStyle.Render(m.viewTable())
	rightPane := rightStyle.Render(m.viewFields())
	panes := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)

	return lipgloss.JoinVertical(lipgloss.Left, panes, m.viewStatus(), helpView)
}

// viewTable renders the table pane, or a hint when there are no rows.
func (m Model) viewTable() string {
	if len(m.table.Rows()) == 0 {
		return mutedText.Render("No contacts yet. Fill in the fields and press ctrl+n.")
	}
	return m.table.View()
}

// viewFields renders the form pane: a title and the three labelled inputs.
func (m Model) viewFields() string {
	var b strings.Builder
	if m.selected >= 0 {
		b.WriteString(titleText.Render("Edit contact " + strconv.Itoa(m.selected+1)))
	} else {
		b.WriteString(titleText.Render("New contact"))
	}
	b.WriteString("\n")

	for i, label := range fieldLabels {
		style := labelText
		if Focus(i)+FocusName == m.focus {
			style = focusedLabelText
		}
		b.WriteString("\n")
		b.WriteString(style.Render(label + ":"))
		b.WriteString(" ")
		b.WriteString(m.inputs[i].View())
	}
	return b.String()
}

// viewStatus renders the status line.
func (m Model) viewStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return errorText.Render(m.status)
	}
	return infoText.Render(m.status)
}
