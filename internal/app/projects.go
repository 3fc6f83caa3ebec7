package app

import (
	"sort"

	"propshare/internal/domain"
)

// VisibleCaseStudies returns the visible case studies in display order.
func VisibleCaseStudies(cs []domain.CaseStudy) []domain.CaseStudy {
	out := make([]domain.CaseStudy, 0, len(cs))
	for _, c := range cs {
		if c.IsVisible {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out
}

// QueryCaseStudies runs the listing query engine over the visible case studies, so the
// projects page filters, paginates and sorts exactly like the listings page.
func QueryCaseStudies(cs []domain.CaseStudy, f domain.ListingFilter, page, pageSize int) (domain.CaseStudyPage, error) {
	visible := VisibleCaseStudies(cs)
	byID := make(map[int64]domain.CaseStudy, len(visible))
	views := make([]domain.Listing, 0, len(visible))
	for _, c := range visible {
		byID[c.ID] = c
		views = append(views, c.AsListing())
	}

	lp, err := QueryListings(views, f, page, pageSize)
	if err != nil {
		return domain.CaseStudyPage{}, err
	}
	out := domain.CaseStudyPage{
		Items:      make([]domain.CaseStudy, 0, len(lp.Items)),
		Total:      lp.Total,
		Page:       lp.Page,
		PageSize:   lp.PageSize,
		TotalPages: lp.TotalPages,
	}
	for _, l := range lp.Items {
		out.Items = append(out.Items, byID[l.ID])
	}
	return out, nil
}

// CountCaseStudiesByState is CountByState over the visible case studies.
func CountCaseStudiesByState(cs []domain.CaseStudy, f domain.ListingFilter) (map[string]int, error) {
	visible := VisibleCaseStudies(cs)
	views := make([]domain.Listing, 0, len(visible))
	for _, c := range visible {
		views = append(views, c.AsListing())
	}
	return CountByState(views, f)
}
