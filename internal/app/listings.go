package app

import (
	"fmt"
	"sort"
	"strings"

	"propshare/internal/domain"
)

const DefaultPageSize = 10

var (
	ErrInvalidPage     = fmt.Errorf("invalid page: %w", domain.ErrInvalidInput)
	ErrInvalidPageSize = fmt.Errorf("invalid page size: %w", domain.ErrInvalidInput)
	ErrInvalidState    = fmt.Errorf("invalid state: %w", domain.ErrInvalidInput)
	ErrInvalidSort     = fmt.Errorf("invalid sort: %w", domain.ErrInvalidInput)
)

// isAll reports the "no filter" sentinels the UI sends.
func isAll(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", "all types", "all locations":
		return true
	}
	return false
}

type matcher struct {
	anyType bool
	pt      domain.PropertyType
	ptKnown bool
	anyStat bool
	state   string
	keyword string
}

func compileFilter(f domain.ListingFilter, withState bool) (matcher, error) {
	m := matcher{anyType: isAll(f.PropertyType), anyStat: true}
	if !m.anyType {
		m.pt, m.ptKnown = domain.ParsePropertyType(f.PropertyType)
	}
	if withState && !isAll(f.State) {
		st := strings.TrimSpace(f.State)
		if !domain.IsStateCodeShape(st) {
			return matcher{}, fmt.Errorf("%w: %q", ErrInvalidState, f.State)
		}
		m.anyStat = false
		m.state = strings.ToUpper(st)
	}
	m.keyword = strings.ToLower(strings.TrimSpace(f.Keyword))
	return m, nil
}

func (m matcher) match(l domain.Listing) bool {
	if !m.anyType && (!m.ptKnown || l.PropertyType != m.pt) {
		return false
	}
	if !m.anyStat && (l.State == "" || !strings.EqualFold(l.State, m.state)) {
		return false
	}
	if m.keyword != "" &&
		!strings.Contains(strings.ToLower(l.Title), m.keyword) &&
		!strings.Contains(strings.ToLower(l.Description), m.keyword) &&
		!strings.Contains(strings.ToLower(l.Location), m.keyword) {
		return false
	}
	return true
}

func lessFor(s domain.SortOrder) (func(a, b domain.Listing) bool, error) {
	switch s {
	case domain.SortNone:
		return nil, nil
	case domain.SortPriceAsc:
		return func(a, b domain.Listing) bool { return a.Price < b.Price }, nil
	case domain.SortPriceDesc:
		return func(a, b domain.Listing) bool { return a.Price > b.Price }, nil
	case domain.SortNewest:
		// no timestamp exists; ids are assigned in creation order
		return func(a, b domain.Listing) bool { return a.ID > b.ID }, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidSort, s)
}

// QueryListings filters, orders and paginates all. page and pageSize are 1-indexed; zero
// selects the default. A page past the end is an empty, valid result.
func QueryListings(all []domain.Listing, f domain.ListingFilter, page, pageSize int) (domain.ListingPage, error) {
	if page < 0 {
		return domain.ListingPage{}, fmt.Errorf("%w: %d", ErrInvalidPage, page)
	}
	if pageSize < 0 {
		return domain.ListingPage{}, fmt.Errorf("%w: %d", ErrInvalidPageSize, pageSize)
	}
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	m, err := compileFilter(f, true)
	if err != nil {
		return domain.ListingPage{}, err
	}
	less, err := lessFor(f.Sort)
	if err != nil {
		return domain.ListingPage{}, err
	}

	matched := make([]domain.Listing, 0, len(all))
	for _, l := range all {
		if m.match(l) {
			matched = append(matched, l)
		}
	}
	if less != nil {
		sort.SliceStable(matched, func(i, j int) bool { return less(matched[i], matched[j]) })
	}

	total := len(matched)
	out := domain.ListingPage{
		Items:      []domain.Listing{},
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: total / pageSize,
	}
	if total%pageSize != 0 {
		out.TotalPages++
	}
	if page > out.TotalPages {
		return out, nil
	}
	// page <= TotalPages keeps start below total; end is clamped without adding
	start := (page - 1) * pageSize
	end := total
	if pageSize < total-start {
		end = start + pageSize
	}
	out.Items = make([]domain.Listing, 0, end-start)
	for _, l := range matched[start:end] {
		out.Items = append(out.Items, l.Clone())
	}
	return out, nil
}

// CountByState counts listings per state under every filter except the state filter, so
// the map and dropdown keep showing the full distribution.
func CountByState(all []domain.Listing, f domain.ListingFilter) (map[string]int, error) {
	m, err := compileFilter(f, false)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, l := range all {
		if l.State != "" && m.match(l) {
			counts[strings.ToUpper(l.State)]++
		}
	}
	return counts, nil
}

// FillFor is the choropleth bucket for one state.
func FillFor(counts map[string]int, selected, code string) domain.StateFill {
	if !isAll(selected) && strings.EqualFold(strings.TrimSpace(selected), code) {
		return domain.FillSelected
	}
	if counts[code] > 0 {
		return domain.FillHasListings
	}
	return domain.FillNone
}

// StateMap expands counts to one entry per known state, sorted by code.
func StateMap(counts map[string]int, selected string) []domain.StateCount {
	codes := domain.StateCodes()
	out := make([]domain.StateCount, 0, len(codes))
	for _, c := range codes {
		name, _ := domain.StateName(c)
		out = append(out, domain.StateCount{
			Code:  c,
			Name:  name,
			Count: counts[c],
			Fill:  FillFor(counts, selected, c),
		})
	}
	return out
}
