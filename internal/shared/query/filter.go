package query

import (
	"math"
	"strings"

	"github.com/tosinajy/carrier-code-verify/internal/shared/constants"
)

// PageFilter is a 1-based page request. Pages past the end are legal and yield no rows.
type PageFilter struct {
	Page     int
	PageSize int
}

// MaxOffset caps Offset. Any page that would start beyond it is served from
// MaxOffset, which is past the end of every table this service holds.
const MaxOffset = math.MaxInt32

func (f PageFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	limit := f.Limit()
	if f.Page-1 > MaxOffset/limit {
		return MaxOffset
	}
	return (f.Page - 1) * limit
}

func (f PageFilter) Limit() int {
	if f.PageSize <= 0 || f.PageSize > constants.MaxPageSize {
		return constants.DefaultPageSize
	}
	return f.PageSize
}

// CurrentPage returns the page number actually served.
func (f PageFilter) CurrentPage() int {
	if f.Page <= 0 {
		return constants.DefaultPage
	}
	return f.Page
}

// SearchFilter carries the free-text term of list screens.
type SearchFilter struct {
	Search string
}

func (f SearchFilter) Term() string {
	return strings.TrimSpace(f.Search)
}

func (f SearchFilter) HasTerm() bool {
	return f.Term() != ""
}

// LikePattern wraps the term for a substring LIKE match, escaping LIKE metacharacters.
func (f SearchFilter) LikePattern() string {
	return Contains(f.Term())
}

// LikeEscape is the escape character paired with Contains patterns. It is the
// same literal in MySQL and SQLite, unlike the backslash.
const LikeEscape = "!"

// Contains builds a `%term%` pattern, escaping LIKE metacharacters with LikeEscape.
func Contains(term string) string {
	r := strings.NewReplacer(`!`, `!!`, `%`, `!%`, `_`, `!_`)
	return "%" + r.Replace(term) + "%"
}

type BaseFilter struct {
	PageFilter
	SearchFilter
}

type FilterOption func(*BaseFilter)

func WithPage(page, pageSize int) FilterOption {
	return func(f *BaseFilter) {
		f.Page = page
		f.PageSize = pageSize
	}
}

func WithSearch(search string) FilterOption {
	return func(f *BaseFilter) {
		f.Search = search
	}
}

func NewBaseFilter(opts ...FilterOption) BaseFilter {
	f := BaseFilter{
		PageFilter: PageFilter{
			Page:     constants.DefaultPage,
			PageSize: constants.DefaultPageSize,
		},
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// TotalPages is ceil(total/pageSize); zero rows means zero pages.
func TotalPages(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
