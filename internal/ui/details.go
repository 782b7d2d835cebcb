package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hnstories/internal/domain"
)

// buildStoryDetails renders the pager page for one story
func buildStoryDetails(item domain.Item) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Width(12)

	var b strings.Builder
	title := item.Title
	if title == "" {
		title = "(untitled)"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	row := func(label, value string) {
		if value == "" {
			value = "-"
		}
		b.WriteString(labelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("URL", item.URL)
	row("Author", item.Author)
	row("Comments", fmt.Sprintf("%d", item.NumComments))
	row("Points", fmt.Sprintf("%d", item.Points))
	if !item.CreatedAt.IsZero() {
		row("Posted", item.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	row("Discussion", "https://news.ycombinator.com/item?id="+item.ID)

	return b.String()
}
