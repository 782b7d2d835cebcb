package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"hnstories/internal/config"
	"hnstories/internal/domain"
	"hnstories/internal/eventbus"
	"hnstories/internal/session"
	"hnstories/internal/ui/handlers"
	"hnstories/internal/ui/input"
	inputtypes "hnstories/internal/ui/input/types"
	"hnstories/internal/ui/logic"
	"hnstories/internal/ui/state"
	"hnstories/internal/ui/viewmodels"
	"hnstories/internal/ui/views"
)

// E2EEnv enables the ready signal used by the terminal tests
const E2EEnv = "HNSTORIES_E2E_TEST"

// reservedLines is the height taken by everything except the story list
const reservedLines = 12

// Model represents the UI state
type Model struct {
	config  *config.Config
	session *session.Session
	state   *state.AppState // centralized state
	bus     eventbus.EventBus
	logger  *zap.SugaredLogger

	// UI-specific state not in AppState
	width      int
	height     int
	ready      bool
	help       help.Model
	keys       keyMap
	searchKeys searchKeyMap
	spinner    spinner.Model

	// Handlers
	navigator    *logic.Navigator       // navigation and viewport handler
	renderer     *views.Renderer        // view renderer
	eventHandler *handlers.EventHandler // event processing handler
	viewModel    *viewmodels.ViewModel  // view model for rendering
	inputHandler *input.Handler         // input handling
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
	e2e     bool
}

// NewModel creates a new UI model around sess. The search box has focus
// when the model starts. UI errors are published on bus; with a nil bus
// they go straight to the status line.
func NewModel(sess *session.Session, cfg *config.Config, bus eventbus.EventBus, logger *zap.SugaredLogger) *Model {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	appState := state.NewAppState()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		config:       cfg,
		session:      sess,
		state:        appState,
		bus:          bus,
		logger:       logger,
		help:         help.New(),
		keys:         newKeyMap(),
		searchKeys:   newSearchKeyMap(),
		spinner:      sp,
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(cfg.UISettings.ShowMeta),
		eventHandler: handlers.NewEventHandler(appState),
		inputHandler: input.New(),
		helpRenderer: NewHelpRenderer(),
		e2e:          os.Getenv(E2EEnv) == "1",
	}
	m.spinner.Style = m.renderer.Styles().StatusLoading

	m.inputHandler.ChangeMode(inputtypes.ModeSearch, sess.Query())
	m.viewModel = viewmodels.NewViewModel(appState, cfg, sess, *m.inputHandler.TextInput())

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Init starts the first search
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.session.Init(), m.spinner.Tick, textinput.Blink)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()
		if m.e2e && !m.ready {
			m.ready = true
			return m, func() tea.Msg { return readyMsg{} }
		}
		return m, nil

	case tea.KeyMsg:
		if m.state.InPagerMode {
			return m, nil
		}

		items := m.viewModel.Items()
		ctx := &input.ModelContext{
			State:   m.state,
			Visible: items,
			Query:   m.session.Query(),
			Recent:  m.session.Recent(),
		}

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		m.syncSelection()

		return m, tea.Batch(cmds...)

	case session.FetchResultMsg:
		m.session.Handle(msg)
		m.syncSelection()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case handlers.ClearStatusMsg:
		m.state.ClearStatus()
		return m, nil

	case pagerMsg:
		if msg.err != nil {
			m.logger.Warnw("pager failed", "error", msg.err)
			return m, m.reportError(eventbus.ErrorEvent{Message: "pager failed", Err: msg.err})
		}
		return m, nil

	case pauseRenderingMsg:
		m.state.InPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.state.InPagerMode = false
		return m, nil

	case readyMsg:
		fmt.Fprintln(os.Stderr, "__READY__")
		return m, nil
	}
	return m, nil
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.syncNavigatorState()
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(a.Direction)
		m.state.SelectedID = m.idAt(m.state.SelectedIndex)

	case inputtypes.UpdateTextAction:
		if a.Text == m.session.Query() {
			return nil
		}
		m.resetSelection()
		return m.session.OnQueryChange(a.Text)

	case inputtypes.SubmitTextAction:
		m.session.Commit()

	case inputtypes.RemoveItemAction:
		m.session.OnRemove(a.ID)

	case inputtypes.RetryAction:
		return m.session.OnQueryChange(m.session.Query())

	case inputtypes.RecentSearchAction:
		m.inputHandler.SetText(a.Query)
		m.resetSelection()
		cmd := m.session.OnQueryChange(a.Query)
		m.session.Commit()
		return cmd

	case inputtypes.OpenDetailsAction:
		item, ok := m.session.State().Find(a.ID)
		if !ok {
			return nil
		}
		return m.showInPager(buildStoryDetails(item))

	case inputtypes.CycleSortAction:
		m.state.CycleSort()
		m.state.SetStatus("Sorted by "+m.state.Sort.String(), false)
		return m.clearStatusLater()

	case inputtypes.ReverseSortAction:
		m.state.ToggleReverse()

	case inputtypes.ToggleHelpAction:
		return m.showInPager(m.helpRenderer.RenderHelpContentPlain())

	case inputtypes.QuitAction:
		m.session.Close()
		return tea.Quit
	}
	return nil
}

// View renders the UI
func (m *Model) View() string {
	if m.state.InPagerMode {
		return ""
	}
	if m.width == 0 {
		return views.LoadingText
	}

	m.viewModel.SetDimensions(m.width, m.height)

	if m.inputHandler.CurrentMode() == inputtypes.ModeSearch {
		m.viewModel.SetInputMode(viewmodels.InputModeSearch)
		m.viewModel.SetHelp(m.help, m.searchKeys)
	} else {
		m.viewModel.SetInputMode(viewmodels.InputModeNormal)
		m.viewModel.SetHelp(m.help, m.keys)
	}
	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.UpdateTextInput(*ti)
	}

	if m.session.State().IsLoading {
		m.viewModel.SetSpinner(m.spinner.View())
	} else {
		m.viewModel.SetSpinner("")
	}

	return m.renderer.Render(m.viewModel.BuildViewState())
}

// syncNavigatorState updates the navigator with current model state
func (m *Model) syncNavigatorState() {
	m.navigator.UpdateState(
		m.state.SelectedIndex,
		m.state.ViewportOffset,
		m.state.ViewportHeight,
		len(m.viewModel.Items()),
	)
}

// syncSelection keeps the cursor on the same story when the list changes
// underneath it, and inside the list when that story is gone.
func (m *Model) syncSelection() {
	items := m.viewModel.Items()
	if m.state.SelectedID != "" {
		for i, item := range items {
			if item.ID == m.state.SelectedID {
				m.state.SelectedIndex = i
				break
			}
		}
	}
	m.syncNavigatorState()
	m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(m.state.SelectedIndex)
	m.state.SelectedID = m.idAt(m.state.SelectedIndex)
}

func (m *Model) resetSelection() {
	m.state.SelectedIndex = 0
	m.state.ViewportOffset = 0
	m.state.SelectedID = ""
}

func (m *Model) idAt(index int) string {
	items := m.viewModel.Items()
	if index < 0 || index >= len(items) {
		return ""
	}
	return items[index].ID
}

// updateViewportHeight calculates the available height for the story list
func (m *Model) updateViewportHeight() {
	m.state.ViewportHeight = m.height - reservedLines
	if m.state.ViewportHeight < 1 {
		m.state.ViewportHeight = 1
	}
	m.syncSelection()
}

// showInPager returns a command that hands the terminal to the ov pager
func (m *Model) showInPager(content string) tea.Cmd {
	if m.program == nil {
		return func() tea.Msg {
			return pagerMsg{err: errors.New("pager needs a running program")}
		}
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowInPager(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return pagerMsg{err: err}
	}
}

// reportError publishes ev for the bus subscribers, which forward it back
// as an EventMsg
func (m *Model) reportError(ev eventbus.ErrorEvent) tea.Cmd {
	if m.bus == nil {
		return m.eventHandler.HandleEvent(ev)
	}
	m.bus.Publish(ev)
	return nil
}

func (m *Model) clearStatusLater() tea.Cmd {
	return tea.Tick(handlers.StatusTimeout, func(t time.Time) tea.Msg { return handlers.ClearStatusMsg{} })
}

// Selected returns the story under the cursor
func (m *Model) Selected() (domain.Item, bool) {
	items := m.viewModel.Items()
	if m.state.SelectedIndex < 0 || m.state.SelectedIndex >= len(items) {
		return domain.Item{}, false
	}
	return items[m.state.SelectedIndex], true
}
