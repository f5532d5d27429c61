package pagination

// windowRadius is how many page numbers are shown on each side of the
// current page before collapsing to an ellipsis.
const windowRadius = 2

// Page slices one page out of an ordered sequence. Page numbers are
// 1-based; out-of-range pages yield an empty slice rather than panicking.
func Page[T any](items []T, pageNumber, pageSize int) []T {
	if pageNumber < 1 || pageSize < 1 {
		return nil
	}
	start := (pageNumber - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages is ceil(count/pageSize). Zero items yields zero pages;
// callers suppress pagination controls in that case instead of rendering
// a single empty page.
func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize < 1 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// PageItem is one entry of the display window: either a page number or an
// ellipsis gap marker.
type PageItem struct {
	Number int  `json:"number,omitempty"`
	Gap    bool `json:"gap,omitempty"`
}

// Window builds the page-number strip for display: first and last page
// always shown, up to windowRadius pages around the current one, gaps
// collapsed into ellipsis markers.
func Window(current, total int) []PageItem {
	if total < 1 {
		return nil
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	var items []PageItem
	previous := 0
	for page := 1; page <= total; page++ {
		show := page == 1 || page == total ||
			(page >= current-windowRadius && page <= current+windowRadius)
		if !show {
			continue
		}
		if previous != 0 && page-previous > 1 {
			items = append(items, PageItem{Gap: true})
		}
		items = append(items, PageItem{Number: page})
		previous = page
	}
	return items
}
