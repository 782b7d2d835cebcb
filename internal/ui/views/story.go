package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hnstories/internal/domain"
)

// StoryRenderer handles rendering of list rows
type StoryRenderer struct {
	styles   *Styles
	showMeta bool
}

// NewStoryRenderer creates a new story renderer
func NewStoryRenderer(styles *Styles, showMeta bool) *StoryRenderer {
	return &StoryRenderer{
		styles:   styles,
		showMeta: showMeta,
	}
}

// RenderStory renders one row: title, then author, comments and points
func (r *StoryRenderer) RenderStory(item domain.Item, isSelected bool, searchQuery string, width int) string {
	bgColor := ""
	if isSelected {
		bgColor = "238"
	}
	base := lipgloss.NewStyle().Background(lipgloss.Color(bgColor))

	cursor := "  "
	if isSelected {
		cursor = "> "
	}

	title := item.Title
	if title == "" {
		title = "(untitled)"
	}
	if width > 0 {
		title = truncate(title, width/2)
	}

	var renderedTitle string
	if searchQuery != "" && strings.Contains(strings.ToLower(title), strings.ToLower(searchQuery)) {
		renderedTitle = r.highlightMatch(title, searchQuery,
			base.Foreground(lipgloss.Color("226")).Bold(true), base.Bold(isSelected))
	} else {
		renderedTitle = base.Bold(isSelected).Render(title)
	}

	parts := []string{base.Render(cursor), renderedTitle}

	if r.showMeta {
		parts = append(parts,
			base.Render("  "),
			r.styles.Author.Background(lipgloss.Color(bgColor)).Render(item.Author),
			base.Render(" · "),
			r.styles.Comments.Background(lipgloss.Color(bgColor)).Render(fmt.Sprintf("%d comments", item.NumComments)),
			base.Render(" · "),
			r.styles.Points.Background(lipgloss.Color(bgColor)).Render(fmt.Sprintf("%d points", item.Points)),
		)
	}

	return strings.Join(parts, "")
}

// highlightMatch highlights the first case-insensitive match of query
func (r *StoryRenderer) highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	index := strings.Index(lowerText, lowerQuery)
	// lowering can change byte lengths outside ASCII
	if index == -1 || len(lowerText) != len(text) || len(lowerQuery) != len(query) {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(query)]
	after := text[index+len(query):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}

// truncate shortens s to at most max cells
func truncate(s string, max int) string {
	if max <= 3 || lipgloss.Width(s) <= max {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > max-3 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
