package ui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestRenderHelpContentPlain_ListsNavigationKeys(t *testing.T) {
	content := ansi.Strip(NewHelpRenderer().RenderHelpContentPlain())

	assert.Contains(t, content, "hnstories Help")
	for _, want := range []string{"↑/k", "↓/j", "pgup", "pgdown", "home/gg", "end/G", "enter"} {
		assert.Contains(t, content, want)
	}
	assert.Contains(t, content, "first story")
	assert.Contains(t, content, "last story")
}

func TestKeyMap_FullHelpCoversNavigation(t *testing.T) {
	keys := newKeyMap()

	var helpKeys []string
	for _, column := range keys.FullHelp() {
		for _, b := range column {
			helpKeys = append(helpKeys, b.Help().Key)
		}
	}
	assert.Subset(t, helpKeys, []string{"pgup", "pgdown", "home/gg", "end/G"})
}
