package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"hnstories/internal/config"
	"hnstories/internal/domain"
	"hnstories/internal/stories"
	"hnstories/internal/ui/state"
	"hnstories/internal/ui/views"
)

// StorySource is the read side of a session
type StorySource interface {
	State() stories.State
	Query() string
	Visible() []domain.Item
	Recent() []string
}

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	config           *config.Config
	source           StorySource
	width            int
	height           int
	help             help.Model
	helpKeys         help.KeyMap
	spinner          string
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, source StorySource, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:            appState,
		config:           cfg,
		source:           source,
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetHelp sets the help model and the bindings it shows
func (vm *ViewModel) SetHelp(helpModel help.Model, keys help.KeyMap) {
	vm.help = helpModel
	vm.helpKeys = keys
}

// SetSpinner sets the current spinner frame
func (vm *ViewModel) SetSpinner(frame string) {
	vm.spinner = frame
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode InputMode) {
	vm.inputTransformer.SetMode(mode)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// Items returns the visible stories in display order
func (vm *ViewModel) Items() []domain.Item {
	return stories.Sort(vm.source.Visible(), vm.state.Sort, vm.state.Reverse)
}

// SortLabel describes the active ordering, empty for source order
func (vm *ViewModel) SortLabel() string {
	label := ""
	if vm.state.Sort != stories.SortNone {
		label = vm.state.Sort.String()
	}
	if vm.state.Reverse {
		if label == "" {
			label = "none"
		}
		label += " (reversed)"
	}
	return label
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	st := vm.source.State()

	helpView := ""
	if vm.helpKeys != nil {
		vm.help.Width = vm.width
		helpView = vm.help.View(vm.helpKeys)
	}

	headline := vm.config.Welcome.Headline()
	if headline == "" {
		headline = "hnstories"
	}

	return views.ViewState{
		Width:          vm.width,
		Height:         vm.height,
		Headline:       headline,
		Items:          vm.Items(),
		SelectedIndex:  vm.state.SelectedIndex,
		ViewportOffset: vm.state.ViewportOffset,
		ViewportHeight: vm.state.ViewportHeight,
		IsLoading:      st.IsLoading,
		IsError:        st.IsError,
		SearchQuery:    vm.source.Query(),
		InputMode:      vm.inputTransformer.GetInputModeString(),
		TextInput:      vm.inputTransformer.GetInputText(),
		Spinner:        vm.spinner,
		SortLabel:      vm.SortLabel(),
		Recent:         vm.source.Recent(),
		StatusMessage:  vm.state.StatusMessage,
		StatusIsError:  vm.state.StatusIsError,
		HelpView:       helpView,
	}
}
