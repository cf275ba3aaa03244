package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/mmcdole/artworks/internal/tui/styles"
)

// pageLinkWindow is how many numbered links surround the current page
const pageLinkWindow = 5

// PageLinks tracks the server-side page position and renders numbered links.
// Pages are 1-based at this API; the embedded paginator is 0-based.
type PageLinks struct {
	p     paginator.Model
	total int // collection total, 0 until reported
}

// NewPageLinks creates page links for the given page size
func NewPageLinks(pageSize int) PageLinks {
	p := paginator.New()
	p.Type = paginator.Arabic
	p.PerPage = max(pageSize, 1)
	return PageLinks{p: p}
}

// SetTotal updates the page count from a collection total; 0 means unknown
func (l *PageLinks) SetTotal(total int) {
	if total <= 0 {
		return
	}
	l.total = total
	l.p.SetTotalPages(total)
}

// SetCurrent sets the current 1-based page
func (l *PageLinks) SetCurrent(page int) {
	l.p.Page = max(page-1, 0)
}

// Current returns the current 1-based page
func (l PageLinks) Current() int {
	return l.p.Page + 1
}

// TotalPages returns the known page count (0 when unknown)
func (l PageLinks) TotalPages() int {
	return l.known()
}

// Clamp bounds a requested 1-based page to the known range
func (l PageLinks) Clamp(page int) int {
	if page < 1 {
		return 1
	}
	if total := l.known(); total > 0 && page > total {
		return total
	}
	return page
}

// Next returns the page after the current one, bounded by the last page
func (l PageLinks) Next() int {
	if l.p.OnLastPage() && l.known() > 0 {
		return l.Current()
	}
	return l.Current() + 1
}

// Prev returns the page before the current one, bounded by the first page
func (l PageLinks) Prev() int {
	return max(l.Current()-1, 1)
}

// Last returns the last known page, or the current page when unknown
func (l PageLinks) Last() int {
	if total := l.known(); total > 0 {
		return total
	}
	return l.Current()
}

// Links returns the 1-based page numbers to display, centered on the current page
func (l PageLinks) Links() []int {
	total := l.known()
	if total == 0 {
		return []int{l.Current()}
	}

	start := l.Current() - pageLinkWindow/2
	start = max(min(start, total-pageLinkWindow+1), 1)
	end := min(start+pageLinkWindow-1, total)

	links := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		links = append(links, i)
	}
	return links
}

// View renders the links with first/last markers
func (l PageLinks) View() string {
	links := l.Links()
	total := l.known()

	var b strings.Builder
	if len(links) > 0 && links[0] > 1 {
		b.WriteString(styles.DimStyle.Render("« "))
	}
	for _, n := range links {
		if n == l.Current() {
			b.WriteString(styles.CurrentPageStyle.Render(strconv.Itoa(n)))
		} else {
			b.WriteString(styles.PageLinkStyle.Render(strconv.Itoa(n)))
		}
	}
	if len(links) > 0 && total > 0 && links[len(links)-1] < total {
		b.WriteString(styles.DimStyle.Render(" »"))
	}
	return b.String()
}

// known returns the page count only when a total has been reported
func (l PageLinks) known() int {
	if l.total == 0 {
		return 0
	}
	return l.p.TotalPages
}
