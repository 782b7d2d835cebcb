package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hnstories/internal/domain"
)

// Empty state texts
const (
	LoadingText = "Loading..."
	ErrorText   = "Something went wrong ..."
	NoMatchText = "No stories match"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Headline       string
	Items          []domain.Item
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int
	IsLoading      bool
	IsError        bool
	SearchQuery    string
	InputMode      string
	TextInput      string
	Spinner        string
	SortLabel      string
	Recent         []string
	StatusMessage  string
	StatusIsError  bool
	HelpView       string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	storyRender *StoryRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showMeta bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		storyRender: NewStoryRenderer(styles, showMeta),
	}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n\n")

	content.WriteString(r.renderSearchLine(state))
	content.WriteString("\n\n")

	if state.IsError {
		content.WriteString(r.styles.StatusError.Render(ErrorText))
		content.WriteString("\n")
	}

	switch {
	case state.IsLoading && len(state.Items) == 0:
		content.WriteString(r.styles.Dim.Render(LoadingText))
	case len(state.Items) == 0:
		content.WriteString(r.styles.Dim.Render(NoMatchText))
	default:
		content.WriteString(r.renderStoryList(state))
	}

	if len(state.Recent) > 0 {
		content.WriteString("\n\n")
		content.WriteString(r.renderRecent(state.Recent))
	}

	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = style.Foreground(lipgloss.Color("203"))
		}
		content.WriteString("\n")
		content.WriteString(style.Render(state.StatusMessage))
	}

	if state.HelpView != "" {
		currentLines := strings.Count(content.String(), "\n") + 1
		// container padding takes two lines
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22
		}
		if padding := availableLines - currentLines - 1; padding > 0 {
			content.WriteString(strings.Repeat("\n", padding))
		}
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// renderTitleLine renders the headline with right-aligned indicators
func (r *Renderer) renderTitleLine(state ViewState) string {
	logo := r.styles.Title.Render(state.Headline)

	var indicators []string
	if state.IsLoading {
		indicators = append(indicators, r.styles.StatusLoading.Render(strings.TrimSpace(state.Spinner+" Searching")))
	}
	if state.SortLabel != "" {
		indicators = append(indicators, r.styles.Sort.Render(fmt.Sprintf("[Sort: %s]", state.SortLabel)))
	}
	if len(indicators) == 0 {
		return logo
	}

	rightContent := strings.Join(indicators, "  ")

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	availableWidth := termWidth - 4 // main container padding
	paddingWidth := availableWidth - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if paddingWidth > 0 {
		return logo + strings.Repeat(" ", paddingWidth) + rightContent
	}
	return logo + "  " + rightContent
}

// renderSearchLine shows the live input while searching, the term otherwise
func (r *Renderer) renderSearchLine(state ViewState) string {
	if state.InputMode != "" {
		return r.styles.Prompt.Render(state.TextInput)
	}
	if state.SearchQuery == "" {
		return r.styles.Dim.Render("Search: (press / to search)")
	}
	return r.styles.Dim.Render("Search: ") + state.SearchQuery
}

// renderStoryList renders the visible window of the list
func (r *Renderer) renderStoryList(state ViewState) string {
	total := len(state.Items)
	height := state.ViewportHeight
	if height <= 0 || height > total {
		height = total
	}

	start := state.ViewportOffset
	if start < 0 || start >= total {
		start = 0
	}
	end := start + height
	if end > total {
		end = total
	}

	lines := make([]string, 0, end-start+2)
	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above", start)))
	}
	for i := start; i < end; i++ {
		lines = append(lines, r.storyRender.RenderStory(state.Items[i], i == state.SelectedIndex, state.SearchQuery, state.Width))
	}
	if end < total {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below", total-end)))
	}
	return strings.Join(lines, "\n")
}

// renderRecent lists recent searches with the key that reruns them
func (r *Renderer) renderRecent(recent []string) string {
	parts := make([]string, 0, len(recent))
	for i, q := range recent {
		parts = append(parts, fmt.Sprintf("%s %s", r.styles.Prompt.Render(fmt.Sprintf("%d", i+1)), q))
	}
	return r.styles.Dim.Render("Recent: ") + strings.Join(parts, "  ")
}
