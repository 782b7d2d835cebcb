package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"github.com/noborus/ov/oviewer"
)

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	err error
}

// keyMap lists the bindings shown in the footer and the help page. Input
// handling itself lives in the input package.
type keyMap struct {
	Search   key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Remove   key.Binding
	Open     key.Binding
	Sort     key.Binding
	Reverse  key.Binding
	Retry    key.Binding
	Recent   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "page down")),
		Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home/gg", "first story")),
		Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end/G", "last story")),
		Remove:   key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d/x", "dismiss")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Sort:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Reverse:  key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "reverse")),
		Retry:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Recent:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "recent search")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Remove, k.Sort, k.Retry, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Top, k.Bottom, k.Open},
		{k.Search, k.Recent, k.Retry},
		{k.Remove, k.Sort, k.Reverse},
		{k.Help, k.Quit},
	}
}

// searchKeyMap is shown while the search input has focus
type searchKeyMap struct {
	Accept key.Binding
	Leave  key.Binding
}

func newSearchKeyMap() searchKeyMap {
	return searchKeyMap{
		Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
		Leave:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to list")),
	}
}

func (k searchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Accept, k.Leave}
}

func (k searchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys keyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{keys: newKeyMap()}
}

// RenderHelpContentPlain generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("208"))

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(10)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	sections := []struct {
		name     string
		bindings []key.Binding
	}{
		{"Navigation", []key.Binding{r.keys.Up, r.keys.Down, r.keys.PageUp, r.keys.PageDown, r.keys.Top, r.keys.Bottom, r.keys.Open}},
		{"Search", []key.Binding{r.keys.Search, r.keys.Recent, r.keys.Retry}},
		{"Stories", []key.Binding{r.keys.Remove, r.keys.Sort, r.keys.Reverse}},
		{"Other", []key.Binding{r.keys.Help, r.keys.Quit}},
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render("hnstories Help"))
	help.WriteString("\n")

	for _, section := range sections {
		help.WriteString("\n")
		help.WriteString(sectionStyle.Render(section.name))
		help.WriteString("\n")
		for _, b := range section.bindings {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
		}
	}

	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("  Typing in the search box searches as you type. Press q to leave this page."))
	return help.String()
}

// HelpOps shows long text in the ov pager
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowInPager hands the terminal to ov until the user leaves it
func (h *HelpOps) ShowInPager(content string) error {
	if h == nil || h.program == nil {
		return errors.New("program not set")
	}

	if err := h.program.ReleaseTerminal(); err != nil {
		return errors.Wrap(err, "release terminal")
	}

	defer func() {
		// give ov time to leave the alternate screen
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return errors.Wrap(err, "create pager")
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
