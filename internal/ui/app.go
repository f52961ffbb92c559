package ui

import (
	"context"
	"errors"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/astrodash/internal/almanac"
	"github.com/five82/astrodash/internal/config"
	"github.com/five82/astrodash/internal/prefs"
	"github.com/five82/astrodash/internal/state"
	"github.com/five82/astrodash/internal/weatherbit"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Config    *config.Config
	PollTick  time.Duration
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	config    *config.Config
	prefsPath string
	pollTick  time.Duration
	keys      keyMap

	// UI state
	theme   Theme
	width   int
	height  int
	ready   bool
	help    help.Model
	spinner spinner.Model

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time

	// Filter state
	search    textinput.Model
	searching bool
	phase     string

	// Table state
	selectedRow int
	offset      int

	// Overlays
	modal      Modal
	alertShown bool
	showHelp   bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = 100 * time.Millisecond
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = defaultThemeName
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	ti := textinput.New()
	ti.Placeholder = "Enter Date"
	ti.Prompt = "/ "
	ti.CharLimit = 32

	m := Model{
		ctx:       ctx,
		store:     opts.Store,
		config:    opts.Config,
		prefsPath: prefsPath,
		pollTick:  pollTick,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(themeName),
		help:      help.New(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		search:    ti,
	}
	m.applyTheme()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(m.pollTick),
		m.spinner.Tick,
	}
	// Fetch snapshot immediately on start
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.syncTable()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		return m.handleSnapshot(state.Snapshot(msg))

	case spinner.TickMsg:
		if m.snapshot.Loaded {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The alert blocks everything until dismissed
	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = modal
		}
		return m, cmd
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyTheme()
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
				log.Printf("save prefs failed: %v", err)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.NextPhase):
		m.cyclePhase(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevPhase):
		m.cyclePhase(-1)
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.clearFilters()
		return m, nil
	}

	return m.handleTableKey(msg)
}

// handleSearchInput handles keyboard input while the date input is focused.
// Every keystroke re-filters the table.
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.search.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.resetSelection()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.resetSelection()
	}
	return m, cmd
}

// handleTableKey moves the selection through the visible rows.
func (m Model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := len(m.visibleDays())
	if rows == 0 {
		return m, nil
	}
	page := max(m.tableCapacity(), 1)

	switch {
	case key.Matches(msg, m.keys.Up):
		m.selectedRow--
	case key.Matches(msg, m.keys.Down):
		m.selectedRow++
	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selectedRow = rows - 1
	case key.Matches(msg, m.keys.PageUp):
		m.selectedRow -= page
	case key.Matches(msg, m.keys.PageDown):
		m.selectedRow += page
	default:
		return m, nil
	}
	m.syncTable()
	return m, nil
}

// handleTick polls the store until the single load has completed.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.snapshot.Loaded || m.store == nil {
		return m, nil
	}
	return m, tea.Batch(fetchSnapshotCmd(m.store), tickCmd(m.pollTick))
}

// handleSnapshot applies a store snapshot and raises the alert the first
// time a failed load is seen.
func (m Model) handleSnapshot(snap state.Snapshot) (tea.Model, tea.Cmd) {
	m.snapshot = snap
	m.lastUpdated = time.Now()

	if snap.Failed() && !m.alertShown {
		m.alertShown = true
		m.modal = newAlertModal(weatherbit.AlertText(snap.LastError))
	}

	if m.phase != "" && !slices.Contains(almanac.PhaseOptions(snap.Days), m.phase) {
		m.phase = ""
	}
	m.syncTable()
	return m, nil
}

// criteria returns the active filter.
func (m Model) criteria() almanac.Criteria {
	return almanac.Criteria{Search: m.search.Value(), Phase: m.phase}
}

// visibleDays returns the rows left after filtering.
func (m Model) visibleDays() []almanac.EnrichedDay {
	return almanac.Filter(m.snapshot.Days, m.criteria())
}

// cyclePhase moves the phase selector through "" followed by the phases
// present in the data.
func (m *Model) cyclePhase(step int) {
	options := append([]string{""}, almanac.PhaseOptions(m.snapshot.Days)...)
	idx := 0
	for i, opt := range options {
		if opt == m.phase {
			idx = i
			break
		}
	}
	n := len(options)
	m.phase = options[((idx+step)%n+n)%n]
	m.resetSelection()
}

// clearFilters drops the search text and the phase selection.
func (m *Model) clearFilters() {
	if m.criteria().IsZero() {
		return
	}
	m.search.SetValue("")
	m.phase = ""
	m.resetSelection()
}

func (m *Model) resetSelection() {
	m.selectedRow = 0
	m.offset = 0
	m.syncTable()
}

// syncTable clamps the selection to the visible rows and scrolls the table
// window so the selection stays on screen.
func (m *Model) syncTable() {
	rows := len(m.visibleDays())
	if rows == 0 {
		m.selectedRow = 0
		m.offset = 0
		return
	}
	m.selectedRow = min(max(m.selectedRow, 0), rows-1)

	capacity := m.tableCapacity()
	if capacity <= 0 {
		m.offset = m.selectedRow
		return
	}
	if m.selectedRow < m.offset {
		m.offset = m.selectedRow
	}
	if m.selectedRow >= m.offset+capacity {
		m.offset = m.selectedRow - capacity + 1
	}
	m.offset = min(max(m.offset, 0), max(rows-capacity, 0))
}

// applyTheme pushes theme colors into the bubbles components.
func (m *Model) applyTheme() {
	styles := m.theme.Styles()

	m.spinner.Style = styles.AccentText
	m.search.PromptStyle = styles.AccentText
	m.search.TextStyle = styles.Text
	m.search.PlaceholderStyle = styles.FaintText
	m.search.Cursor.Style = styles.AccentText

	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.FullKey = styles.AccentText
	m.help.Styles.FullDesc = styles.MutedText
	m.help.Styles.FullSeparator = styles.FaintText
}

// renderMain renders the dashboard.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCards())
	b.WriteString("\n")
	b.WriteString(m.renderControls())
	b.WriteString("\n")
	b.WriteString(m.renderTable())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// Message types
type tickMsg time.Time

type snapshotMsg state.Snapshot

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program. Cancelling the options context stops
// the program and is not reported as an error.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
