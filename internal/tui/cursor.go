package tui

func clampCursor(cursor, size int) int {
	if size <= 0 {
		return 0
	}
	return min(max(cursor, 0), size-1)
}

// pageStep is how many list rows fit between the header and footer.
func pageStep(height int, hasStatus bool) int {
	if height <= 0 {
		return 10
	}
	chrome := 6
	if hasStatus {
		chrome++
	}
	return max(height-chrome, 3)
}

// visibleWindow returns the [start, end) rows to draw so the cursor stays
// near the middle of a list taller than height.
func visibleWindow(total, cursor, height int) (int, int) {
	if total <= 0 {
		return 0, 0
	}
	if height <= 0 || total <= height {
		return 0, total
	}
	start := clampCursor(cursor, total) - height/2
	start = min(max(start, 0), total-height)
	return start, start + height
}
