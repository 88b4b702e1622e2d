package ui

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"staffgrip/internal/config"
	"staffgrip/internal/domain"
	"staffgrip/internal/eventbus"
	"staffgrip/internal/roster"
	"staffgrip/internal/ui/state"
	"staffgrip/internal/ui/views"
	"staffgrip/internal/windowing"
)

// Rows taken by the header and status bar around the list
const chromeRows = 4

// Lines scrolled per mouse wheel tick
const wheelLines = 3

type inputMode int

const (
	modeNone inputMode = iota
	modeJump
	modeFilter
)

func (m inputMode) String() string {
	switch m {
	case modeJump:
		return "jump"
	case modeFilter:
		return "filter"
	}
	return ""
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState
	store  roster.Store

	// The windowing engine owns the scroll offset; the memo skips
	// re-slicing when successive offsets land in the same window
	engine *windowing.Engine[domain.Employee]
	memo   windowing.Memo[domain.Employee]

	width  int
	height int

	inputMode inputMode
	textInput textinput.Model

	renderer *views.Renderer
	helpOps  *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. Geometry problems in the configuration
// surface here, before the program starts.
func NewModel(cfg *config.Config, store roster.Store, bus eventbus.EventBus) (*Model, error) {
	// Engine geometry is rebuilt on the first WindowSizeMsg; 24 rows is
	// only the pre-resize placeholder
	engine, err := buildEngine(cfg, 24-chromeRows)
	if err != nil {
		return nil, err
	}

	ti := textinput.New()
	ti.CharLimit = 64

	return &Model{
		bus:       bus,
		config:    cfg,
		state:     state.NewAppState(),
		store:     store,
		engine:    engine,
		textInput: ti,
		renderer:  views.NewRenderer(),
		helpOps:   NewHelpOps(),
	}, nil
}

// buildEngine constructs a windowing engine sized to the given list rows
func buildEngine(cfg *config.Config, rows int) (*windowing.Engine[domain.Employee], error) {
	if rows < 1 {
		rows = 1
	}
	geom := cfg.Geometry(float64(rows) * cfg.List.ItemHeight)
	return windowing.New[domain.Employee](geom)
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	if m.helpOps != nil {
		m.helpOps.SetProgram(p)
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeEngine(msg.Height - chromeRows)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.state.ShowHelp {
			return m.handleHelpKey(msg)
		}
		if m.inputMode != modeNone {
			return m.handleInputKey(msg)
		}
		return m.handleKey(msg)

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			m.state.StatusMessage = fmt.Sprintf("pager failed: %v", msg.err)
		}
		return m, nil
	}

	return m, nil
}

// resizeEngine rebuilds the engine for a new viewport height, carrying the
// scroll offset over since geometry itself is immutable per engine
func (m *Model) resizeEngine(rows int) {
	offset := m.engine.ScrollTop()
	engine, err := buildEngine(m.config, rows)
	if err != nil {
		// Can only happen with broken config values, which main rejects
		// at startup; log and keep the old engine
		log.Printf("Failed to resize engine: %v", err)
		return
	}
	engine.OnScroll(offset)
	m.engine = engine
	m.ensureSelectedVisible()
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	geom := m.engine.Geometry()
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.engine.OnScroll(m.engine.ScrollTop() - wheelLines*geom.ItemHeight)
	case tea.MouseButtonWheelDown:
		m.engine.OnScroll(m.engine.ScrollTop() + wheelLines*geom.ItemHeight)
	}
	return m, nil
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.state.HelpScrollOffset++
	case "k", "up":
		if m.state.HelpScrollOffset > 0 {
			m.state.HelpScrollOffset--
		}
	case "?", "esc", "q":
		m.state.ShowHelp = false
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.cancelInput()
		return m, nil
	case "enter":
		m.commitInput()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		m.state.ShowHelp = true
		m.state.HelpScrollOffset = 0

	case "j", "down":
		m.moveSelection(1)
	case "k", "up":
		m.moveSelection(-1)

	case "pgdown", "ctrl+d":
		m.moveSelection(m.pageStep())
	case "pgup", "ctrl+u":
		m.moveSelection(-m.pageStep())

	case "g", "home":
		m.state.SelectedIndex = 0
		m.engine.ScrollToIndex(0)
	case "G", "end":
		n := len(m.displayed())
		if n > 0 {
			m.state.SelectedIndex = n - 1
			m.ensureSelectedVisible()
		}

	case ":":
		m.startInput(modeJump, "row number")
	case "/":
		m.startInput(modeFilter, "name, title, department…")

	case "esc":
		if m.state.IsFiltered {
			m.clearFilter()
		}

	case "r":
		m.bus.Publish(eventbus.RosterReloadRequestedEvent{})
		m.state.StatusMessage = "reloading roster"

	case "P":
		content := m.renderer.HelpPlain()
		return m, func() tea.Msg {
			return helpPagerMsg{err: m.helpOps.ShowHelpInPager(content)}
		}
	}

	return m, nil
}

func (m *Model) startInput(mode inputMode, placeholder string) {
	m.inputMode = mode
	m.textInput.Placeholder = placeholder
	m.textInput.SetValue("")
	m.textInput.Focus()
}

func (m *Model) cancelInput() {
	m.inputMode = modeNone
	m.textInput.Blur()
	m.textInput.SetValue("")
}

func (m *Model) commitInput() {
	value := strings.TrimSpace(m.textInput.Value())
	mode := m.inputMode
	m.cancelInput()

	switch mode {
	case modeJump:
		row, err := strconv.Atoi(value)
		if err != nil {
			m.state.StatusMessage = fmt.Sprintf("not a row number: %q", value)
			return
		}
		m.jumpToRow(row)
	case modeFilter:
		m.state.FilterQuery = value
		m.state.IsFiltered = value != ""
		m.state.SelectedIndex = 0
		m.engine.OnScroll(0)
		m.memo.Invalidate()
	}
}

// jumpToRow goes to a 1-based row number. Out-of-range rows clamp rather
// than erroring, same as the engine's own index handling.
func (m *Model) jumpToRow(row int) {
	n := len(m.displayed())
	if n == 0 {
		return
	}
	index := row - 1
	if index < 0 {
		index = 0
	}
	if index > n-1 {
		index = n - 1
	}
	m.state.SelectedIndex = index
	m.engine.ScrollToIndex(index)
}

func (m *Model) clearFilter() {
	m.state.FilterQuery = ""
	m.state.IsFiltered = false
	m.state.SelectedIndex = 0
	m.engine.OnScroll(0)
	m.memo.Invalidate()
}

func (m *Model) moveSelection(delta int) {
	n := len(m.displayed())
	if n == 0 {
		return
	}
	sel := m.state.SelectedIndex + delta
	if sel < 0 {
		sel = 0
	}
	if sel > n-1 {
		sel = n - 1
	}
	m.state.SelectedIndex = sel
	m.ensureSelectedVisible()
}

// ensureSelectedVisible scrolls just enough to bring the selection into the
// viewport band: top-aligns when it went above, bottom-aligns when below
func (m *Model) ensureSelectedVisible() {
	geom := m.engine.Geometry()
	top := m.engine.ScrollTop()
	selTop := float64(m.state.SelectedIndex) * geom.ItemHeight
	selBottom := selTop + geom.ItemHeight

	if selTop < top {
		m.engine.ScrollToIndex(m.state.SelectedIndex)
	} else if selBottom > top+geom.ContainerHeight {
		m.engine.OnScroll(selBottom - geom.ContainerHeight)
	}
}

// pageStep returns how many items fit in one viewport, which is what a page
// jump should move by regardless of the configured item height
func (m *Model) pageStep() int {
	geom := m.engine.Geometry()
	step := int(geom.ContainerHeight / geom.ItemHeight)
	if step < 1 {
		step = 1
	}
	return step
}

// displayed returns the list the window is computed over: the full roster,
// or the filtered subset when a filter is active
func (m *Model) displayed() []domain.Employee {
	employees := m.store.Employees()
	if !m.state.IsFiltered {
		return employees
	}

	query := strings.ToLower(m.state.FilterQuery)
	filtered := make([]domain.Employee, 0, len(employees))
	for _, e := range employees {
		if employeeMatches(e, query) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func employeeMatches(e domain.Employee, query string) bool {
	for _, field := range []string{e.Name, e.Title, e.Department, e.Location, e.ID} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.RosterLoadStartedEvent:
		m.state.Progress = domain.LoadProgress{IsLoading: true, Source: e.Source}
		m.state.StatusMessage = ""

	case eventbus.EmployeesLoadedBatchEvent:
		m.state.Progress.EmployeesRead += len(e.Employees)
		// A reload can replace rows without changing the roster length,
		// which the memo key cannot see
		m.memo.Invalidate()

	case eventbus.RosterLoadCompletedEvent:
		m.state.Progress.IsLoading = false
		m.memo.Invalidate()
		if e.Err != nil {
			m.state.StatusMessage = fmt.Sprintf("load failed: %v", e.Err)
		} else {
			m.state.StatusMessage = fmt.Sprintf("loaded %d employees", e.EmployeesRead)
		}

	case eventbus.ErrorEvent:
		m.state.StatusMessage = e.Message
	}
}

// View implements tea.Model
func (m *Model) View() string {
	items := m.displayed()
	n := len(items)

	// The roster may have shrunk since the selection was set
	if m.state.SelectedIndex > n-1 && n > 0 {
		m.state.SelectedIndex = n - 1
	}

	geom := m.engine.Geometry()
	win := m.memo.Window(items, geom, m.engine.ScrollTop())

	return m.renderer.Render(views.ViewState{
		Width:           m.width,
		Height:          m.height,
		Window:          win,
		TotalCount:      n,
		RosterCount:     m.store.Len(),
		SelectedIndex:   m.state.SelectedIndex,
		ScrollTop:       m.engine.ScrollTop(),
		ContainerHeight: geom.ContainerHeight,
		Loading:         m.state.Progress.IsLoading,
		LoadedCount:     m.state.Progress.EmployeesRead,
		StatusMessage:   m.state.StatusMessage,
		ShowHelp:        m.state.ShowHelp,
		HelpScroll:      m.state.HelpScrollOffset,
		FilterQuery:     m.state.FilterQuery,
		IsFiltered:      m.state.IsFiltered,
		InputMode:       m.inputMode.String(),
		TextInput:       m.textInput.View(),
		ShowDepartment:  m.config.UISettings.ShowDepartment,
		ShowLocation:    m.config.UISettings.ShowLocation,
	})
}
