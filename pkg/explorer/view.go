package explorer

// ViewState places the viewport over a listing.
// CursorRow is 1-based within the viewport; ScrollOffset indexes the first
// rendered entry; VisibleCount is the number of entries in the viewport.
type ViewState struct {
	CursorRow    int
	ScrollOffset int
	VisibleCount int
}

func newViewState() ViewState {
	return ViewState{CursorRow: 1}
}

// AbsoluteIndex is the listing index under the cursor.
// No other code converts between cursor rows and listing indexes.
func (v ViewState) AbsoluteIndex() int {
	return v.ScrollOffset + v.CursorRow - 1
}

// Fit recomputes VisibleCount for a listing of total entries shown in a
// viewport of rows lines, keeping the selected index where possible.
func (v *ViewState) Fit(total, rows int) {
	if rows < 1 {
		rows = 1
	}
	if total <= 0 {
		*v = ViewState{CursorRow: 1}
		return
	}
	index := min(max(v.AbsoluteIndex(), 0), total-1)
	offset := min(max(v.ScrollOffset, 0), max(total-rows, 0))
	if index < offset {
		offset = index
	}
	if index >= offset+rows {
		offset = index - rows + 1
	}
	v.ScrollOffset = offset
	v.CursorRow = index - offset + 1
	v.VisibleCount = min(total-offset, rows)
}

func (v *ViewState) moveUp() {
	if v.CursorRow > 1 {
		v.CursorRow--
		return
	}
	if v.ScrollOffset > 0 {
		v.ScrollOffset--
	}
}

// moveDown scrolls only when entries remain below the viewport.
func (v *ViewState) moveDown(total int) {
	if v.CursorRow < v.VisibleCount {
		v.CursorRow++
		return
	}
	if v.ScrollOffset+v.VisibleCount < total {
		v.ScrollOffset++
	}
}

func (v *ViewState) toTop() {
	v.ScrollOffset = 0
	v.CursorRow = 1
}

func (v *ViewState) toViewportBottom() {
	if v.VisibleCount > 0 {
		v.CursorRow = v.VisibleCount
	}
}
