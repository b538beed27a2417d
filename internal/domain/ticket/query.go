package ticket

import (
	"sort"
	"strings"

	"quickdesk/internal/shared/constants"
)

// Sort orders recognised by the ticket list.
const (
	SortRecent  = "recent"
	SortReplies = "replies"
)

// FilterAll is the status/category filter wildcard.
const FilterAll = "all"

// Query captures the dashboard list controls. Status and Category hold
// slug values ("in-progress", "feature-request") or the "all" wildcard;
// an empty value also means no filtering.
type Query struct {
	Status   string
	Category string
	OnlyMine bool
	Search   string
	Sort     string
	Page     int
	PageSize int
}

// QueryResult is one page of matches plus the pagination facts needed
// to render the pager. Page is the clamped effective page, which may
// differ from the requested one.
type QueryResult struct {
	Tickets    []*Ticket
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// Slug normalises a status or category label into its filter value:
// lowercased with spaces replaced by hyphens.
func Slug(label string) string {
	return strings.ReplaceAll(strings.ToLower(label), " ", "-")
}

// RunQuery filters, sorts, and paginates the given tickets for the
// acting user. The input slice is not modified. Sorting is stable, so
// tickets that compare equal keep their store order.
func RunQuery(tickets []*Ticket, actorID uint, q Query) QueryResult {
	search := strings.ToLower(q.Search)

	matched := make([]*Ticket, 0, len(tickets))
	for _, t := range tickets {
		if !matchesFilter(q.Status, Slug(t.Status().String())) {
			continue
		}
		if !matchesFilter(q.Category, Slug(t.Category())) {
			continue
		}
		if q.OnlyMine && t.CreatorID() != actorID {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Subject()), search) &&
			!strings.Contains(strings.ToLower(t.Description()), search) {
			continue
		}
		matched = append(matched, t)
	}

	switch q.Sort {
	case SortRecent:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].LastModified().After(matched[j].LastModified())
		})
	case SortReplies:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].CommentCount() > matched[j].CommentCount()
		})
	}

	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = constants.DefaultPageSize
	}

	total := len(matched)
	totalPages := (total + pageSize - 1) / pageSize

	// The effective page stays within [1, totalPages], with an empty
	// result set still reported as page 1 of 1.
	page := q.Page
	if page < 1 {
		page = 1
	}
	if maxPage := max(1, totalPages); page > maxPage {
		page = maxPage
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, total)
	if start > total {
		start = total
	}

	return QueryResult{
		Tickets:    matched[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: max(1, totalPages),
	}
}

func matchesFilter(filter, slug string) bool {
	return filter == "" || filter == FilterAll || filter == slug
}
