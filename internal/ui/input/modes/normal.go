package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hnstories/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		if id := ctx.CurrentItemID(); id != "" {
			return []types.Action{types.OpenDetailsAction{ID: id}}, true
		}
		return nil, false

	case tea.KeyDelete:
		if id := ctx.CurrentItemID(); id != "" {
			return []types.Action{types.RemoveItemAction{ID: id}}, true
		}
		return nil, true
	}

	key := msg.String()
	if key != "g" {
		m.lastKeyWasG = false
	}

	switch key {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "d", "x":
		if id := ctx.CurrentItemID(); id != "" {
			return []types.Action{types.RemoveItemAction{ID: id}}, true
		}
		return nil, true

	case "r":
		return []types.Action{types.RetryAction{}}, true

	case "s":
		return []types.Action{types.CycleSortAction{}}, true

	case "S":
		return []types.Action{types.ReverseSortAction{}}, true

	case "1", "2", "3", "4", "5":
		n := int(key[0] - '1')
		if recent := ctx.RecentSearches(); n < len(recent) {
			return []types.Action{types.RecentSearchAction{Query: recent[n]}}, true
		}
		return nil, true

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.SearchQuery()}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	}

	return nil, false
}
