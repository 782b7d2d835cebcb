package logic

// Navigator handles navigation and viewport management for a flat list
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	total          int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{viewportHeight: 1}
}

// UpdateState updates the navigator's state
func (n *Navigator) UpdateState(selectedIndex, viewportOffset, viewportHeight, total int) {
	n.selectedIndex = selectedIndex
	n.viewportOffset = viewportOffset
	n.viewportHeight = viewportHeight
	if n.viewportHeight < 1 {
		n.viewportHeight = 1
	}
	n.total = total
	n.clamp()
}

// GetSelectedIndex returns the current selected index
func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

// GetViewportOffset returns the current viewport offset
func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// SetSelectedIndex sets the selected index and ensures it's visible
func (n *Navigator) SetSelectedIndex(index int) (int, int) {
	n.selectedIndex = index
	n.clamp()
	return n.selectedIndex, n.viewportOffset
}

// Move applies a direction and returns the new index and offset. Directions
// are "up", "down", "pageup", "pagedown", "home" and "end".
func (n *Navigator) Move(direction string) (int, int) {
	page := n.viewportHeight - 1
	if page < 1 {
		page = 1
	}

	switch direction {
	case "up":
		n.selectedIndex--
	case "down":
		n.selectedIndex++
	case "pageup":
		n.selectedIndex -= page
	case "pagedown":
		n.selectedIndex += page
	case "home":
		n.selectedIndex = 0
	case "end":
		n.selectedIndex = n.total - 1
	}
	n.clamp()
	return n.selectedIndex, n.viewportOffset
}

// GetMaxIndex returns the maximum selectable index
func (n *Navigator) GetMaxIndex() int {
	if n.total == 0 {
		return 0
	}
	return n.total - 1
}

// clamp keeps the selection inside the list and the viewport around it
func (n *Navigator) clamp() {
	if n.selectedIndex > n.GetMaxIndex() {
		n.selectedIndex = n.GetMaxIndex()
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}

	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}
	if n.selectedIndex >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.selectedIndex - n.viewportHeight + 1
	}

	maxOffset := n.total - n.viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
