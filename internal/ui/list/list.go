package list

import (
	"strings"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/exp/ordered"
)

// List is a scrollable view over the rows of an Adapter. Rows are rendered
// lazily, only when they are needed to fill or scroll the viewport, and are
// stacked vertically from top to bottom.
type List struct {
	// Viewport size
	width, height int

	adapter Adapter
	render  Renderer

	// Focus and selection state
	focused     bool
	selectedIdx int // The current selected index -1 means no selection

	// offsetIdx is the index of the first visible item in the viewport.
	offsetIdx int
	// offsetLine is the number of lines of the item at offsetIdx that are
	// scrolled out of view (above the viewport).
	// It must always be >= 0.
	offsetLine int
}

// renderedItem holds the rendered content and height of an item.
type renderedItem struct {
	content string
	height  int
}

// New creates a list over adapter. A nil renderer means PlainRenderer.
func New(adapter Adapter, render Renderer) *List {
	if render == nil {
		render = PlainRenderer
	}
	return &List{
		adapter:     adapter,
		render:      render,
		selectedIdx: -1,
	}
}

// SetSize sets the size of the list viewport.
func (l *List) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.clampOffset()
}

// Width returns the width of the list viewport.
func (l *List) Width() int {
	return l.width
}

// Height returns the height of the list viewport.
func (l *List) Height() int {
	return l.height
}

// ItemCount returns the number of items the adapter currently reports.
func (l *List) ItemCount() int {
	return l.adapter.ItemCount()
}

// FirstVisible returns the index of the first item in the viewport, or -1
// when the list is empty.
func (l *List) FirstVisible() int {
	if l.ItemCount() == 0 {
		return -1
	}
	return l.offsetIdx
}

// VisibleCount returns how many items are at least partly in the viewport.
func (l *List) VisibleCount() int {
	if l.ItemCount() == 0 || l.height <= 0 {
		return 0
	}
	startIdx, endIdx := l.VisibleItemIndices()
	return endIdx - startIdx + 1
}

// NotifyDataSetChanged tells the list that the adapter's rows changed. The
// whole viewport is re-rendered on the next draw and offsets that no longer
// fit are pulled back.
func (l *List) NotifyDataSetChanged() {
	count := l.ItemCount()
	if l.selectedIdx >= count {
		l.selectedIdx = count - 1
	}
	l.clampOffset()
}

// getItem renders and returns the item at the given index.
func (l *List) getItem(idx int) renderedItem {
	if idx < 0 || idx >= l.ItemCount() {
		return renderedItem{}
	}

	row := l.adapter.Bind(idx)
	rendered := l.render(row, l.width, l.focused && idx == l.selectedIdx)
	rendered = strings.TrimRight(rendered, "\n")
	return renderedItem{
		content: rendered,
		height:  max(countLines(rendered), 1),
	}
}

// itemSpan returns the lines the item at idx occupies.
func (l *List) itemSpan(idx int) int {
	return l.getItem(idx).height
}

// bottomOffset returns the offset that anchors the last item to the bottom
// of the viewport. It is the largest valid offset.
func (l *List) bottomOffset() (idx, line int) {
	count := l.ItemCount()
	var totalHeight int
	for i := count - 1; i >= 0; i-- {
		totalHeight += l.getItem(i).height
		if totalHeight >= l.height {
			return i, totalHeight - l.height
		}
	}
	// All items fit in the viewport
	return 0, 0
}

// clampOffset keeps the offset within the range reachable by scrolling.
func (l *List) clampOffset() {
	if l.ItemCount() == 0 {
		l.offsetIdx, l.offsetLine = 0, 0
		return
	}
	lastIdx, lastLine := l.bottomOffset()
	if l.offsetIdx > lastIdx || (l.offsetIdx == lastIdx && l.offsetLine > lastLine) {
		l.offsetIdx, l.offsetLine = lastIdx, lastLine
	}
}

// ScrollToIndex scrolls the list so the given item is at the top, as far as
// the end of the list allows.
func (l *List) ScrollToIndex(index int) {
	l.offsetIdx = ordered.Clamp(index, 0, max(l.ItemCount()-1, 0))
	l.offsetLine = 0
	l.clampOffset()
}

// ScrollBy scrolls the list by the given number of lines.
func (l *List) ScrollBy(lines int) {
	if l.ItemCount() == 0 || lines == 0 {
		return
	}

	if lines > 0 {
		// Scroll down, stopping once the last item is anchored to the
		// bottom of the viewport.
		lastIdx, lastLine := l.bottomOffset()
		l.offsetLine += lines
		for {
			if l.offsetIdx > lastIdx || (l.offsetIdx == lastIdx && l.offsetLine > lastLine) {
				l.offsetIdx, l.offsetLine = lastIdx, lastLine
				break
			}
			span := l.itemSpan(l.offsetIdx)
			if l.offsetLine < span {
				break
			}
			// Move to next item
			l.offsetLine -= span
			l.offsetIdx++
		}
		return
	}

	// Scroll up
	l.offsetLine += lines // lines is negative
	for l.offsetLine < 0 {
		if l.offsetIdx <= 0 {
			// Reached top
			l.ScrollToTop()
			break
		}

		// Move to previous item
		l.offsetIdx--
		l.offsetLine += l.itemSpan(l.offsetIdx)
	}
}

// VisibleItemIndices finds the range of items that are visible in the viewport.
// This is used for checking if selected item is in view.
func (l *List) VisibleItemIndices() (startIdx, endIdx int) {
	count := l.ItemCount()
	if count == 0 {
		return 0, 0
	}

	startIdx = l.offsetIdx
	currentIdx := startIdx
	visibleHeight := -l.offsetLine

	for currentIdx < count {
		visibleHeight += l.itemSpan(currentIdx)
		if visibleHeight >= l.height {
			break
		}
		currentIdx++
	}

	endIdx = currentIdx
	if endIdx >= count {
		endIdx = count - 1
	}

	return startIdx, endIdx
}

// Render renders the list and returns the visible lines.
func (l *List) Render() string {
	count := l.ItemCount()
	if count == 0 {
		return ""
	}

	var lines []string
	currentIdx := l.offsetIdx
	currentOffset := l.offsetLine

	linesNeeded := l.height

	for linesNeeded > 0 && currentIdx < count {
		item := l.getItem(currentIdx)
		itemLines := strings.Split(item.content, "\n")
		itemHeight := len(itemLines)

		if currentOffset < itemHeight {
			lines = append(lines, itemLines[currentOffset:]...)
		}

		linesNeeded = l.height - len(lines)
		currentIdx++
		currentOffset = 0 // Reset offset for subsequent items
	}

	if len(lines) > l.height {
		lines = lines[:l.height]
	}

	return strings.Join(lines, "\n")
}

// Draw draws the visible lines of the list into area.
func (l *List) Draw(scr uv.Screen, area uv.Rectangle) {
	uv.NewStyledString(l.Render()).Draw(scr, area)
}

// Focus sets the focus state of the list.
func (l *List) Focus() {
	l.focused = true
}

// ScrollToTop scrolls the list to the top.
func (l *List) ScrollToTop() {
	l.ScrollToIndex(0)
}

// ScrollToBottom scrolls the list to the bottom.
func (l *List) ScrollToBottom() {
	if l.ItemCount() == 0 {
		return
	}
	l.offsetIdx, l.offsetLine = l.bottomOffset()
}

// AtBottom returns whether the last item is anchored to the bottom of the
// viewport.
func (l *List) AtBottom() bool {
	lastIdx, lastLine := l.bottomOffset()
	return l.offsetIdx > lastIdx || (l.offsetIdx == lastIdx && l.offsetLine >= lastLine)
}

// ScrollToSelected scrolls the list to the selected item.
func (l *List) ScrollToSelected() {
	if l.selectedIdx < 0 || l.selectedIdx >= l.ItemCount() {
		return
	}

	startIdx, endIdx := l.VisibleItemIndices()
	if l.selectedIdx < startIdx {
		// Selected item is above the visible range
		l.offsetIdx = l.selectedIdx
		l.offsetLine = 0
	} else if l.selectedIdx > endIdx || (l.selectedIdx == endIdx && !l.fullyVisible(endIdx)) {
		// Selected item is below the visible range
		// Scroll so that the selected item is at the bottom
		var totalHeight int
		for i := l.selectedIdx; i >= 0; i-- {
			totalHeight += l.getItem(i).height
			if totalHeight >= l.height {
				l.offsetIdx = i
				l.offsetLine = totalHeight - l.height
				return
			}
		}
		// All items fit in the viewport
		l.ScrollToTop()
	}
}

// fullyVisible reports whether the bottom edge of the item at idx is within
// the viewport.
func (l *List) fullyVisible(idx int) bool {
	bottom := -l.offsetLine
	for i := l.offsetIdx; i <= idx; i++ {
		bottom += l.getItem(i).height
	}
	return bottom <= l.height
}

// SelectedItemInView returns whether the selected item is currently in view.
func (l *List) SelectedItemInView() bool {
	if l.selectedIdx < 0 || l.selectedIdx >= l.ItemCount() {
		return false
	}
	startIdx, endIdx := l.VisibleItemIndices()
	return l.selectedIdx >= startIdx && l.selectedIdx <= endIdx
}

// SetSelected sets the selected item index in the list. Out of range indices
// clear the selection.
func (l *List) SetSelected(index int) {
	if index < 0 || index >= l.ItemCount() {
		l.selectedIdx = -1
	} else {
		l.selectedIdx = index
	}
}

// Selected returns the index of the currently selected item. It returns -1 if
// no item is selected.
func (l *List) Selected() int {
	return l.selectedIdx
}

// SelectedRow returns the bound row of the selected item.
func (l *List) SelectedRow() (Row, bool) {
	if l.selectedIdx < 0 || l.selectedIdx >= l.ItemCount() {
		return Row{}, false
	}
	return l.adapter.Bind(l.selectedIdx), true
}

// SelectPrev selects the previous item in the list.
// It returns whether the selection changed.
func (l *List) SelectPrev() bool {
	if l.selectedIdx > 0 {
		l.selectedIdx--
		return true
	}
	return false
}

// SelectNext selects the next item in the list.
// It returns whether the selection changed.
func (l *List) SelectNext() bool {
	if l.selectedIdx < l.ItemCount()-1 {
		l.selectedIdx++
		return true
	}
	return false
}

// SelectFirst selects the first item in the list.
// It returns whether the selection changed.
func (l *List) SelectFirst() bool {
	if l.ItemCount() > 0 {
		l.selectedIdx = 0
		return true
	}
	return false
}

// ItemIndexAtPosition returns the item at the given viewport-relative y
// coordinate. Returns the item index and the y offset within that item. It
// returns -1, -1 if no item is found.
func (l *List) ItemIndexAtPosition(x, y int) (itemIdx int, itemY int) {
	return l.findItemAtY(x, y)
}

// findItemAtY finds the item at the given viewport y coordinate.
// Returns the item index and the y offset within that item. It returns -1, -1
// if no item is found.
func (l *List) findItemAtY(_, y int) (itemIdx int, itemY int) {
	if y < 0 || y >= l.height {
		return -1, -1
	}

	// Walk through visible items to find which one contains this y
	count := l.ItemCount()
	currentIdx := l.offsetIdx
	currentLine := -l.offsetLine // Negative because offsetLine is how many lines are hidden

	for currentIdx < count && currentLine < l.height {
		item := l.getItem(currentIdx)
		itemEndLine := currentLine + item.height

		// Check if y is within this item's visible range
		if y >= currentLine && y < itemEndLine {
			return currentIdx, y - currentLine
		}

		// Move to next item
		currentLine = itemEndLine
		currentIdx++
	}

	return -1, -1
}

// countLines counts the number of lines in a string.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
