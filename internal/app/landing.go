package app

import (
	"sort"

	"propshare/internal/domain"
)

// KnownSections are the section keys the front-end has renderers for.
var KnownSections = map[string]bool{
	"hero":         true,
	"about":        true,
	"previousWork": true,
	"featured":     true,
	"beforeAfter":  true,
	"roiEstimator": true,
	"trust":        true,
	"cta":          true,
}

// VisibleSections returns the visible sections that have a renderer, in render order.
func VisibleSections(ss []domain.LandingSection, known map[string]bool) []domain.LandingSection {
	out := make([]domain.LandingSection, 0, len(ss))
	for _, s := range ss {
		if s.IsVisible && known[s.SectionKey] {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func visiblePartners(ps []domain.TrustPartner) []domain.TrustPartner {
	out := make([]domain.TrustPartner, 0, len(ps))
	for _, p := range ps {
		if p.IsVisible {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func featured(ls []domain.Listing) []domain.Listing {
	out := make([]domain.Listing, 0)
	for _, l := range ls {
		if l.IsFeatured {
			out = append(out, l.Clone())
		}
	}
	return out
}

func visibleBeforeAfter(bs []domain.BeforeAfter) []domain.BeforeAfter {
	out := make([]domain.BeforeAfter, 0, len(bs))
	for _, b := range bs {
		if b.IsVisible {
			out = append(out, b)
		}
	}
	return out
}

// BuildLanding assembles the landing payload from one snapshot.
func BuildLanding(snap domain.Snapshot, content domain.LandingContent, caseStudies []domain.CaseStudy) domain.Landing {
	return domain.Landing{
		Sections:      VisibleSections(snap.Sections, KnownSections),
		Hero:          content.Hero,
		CTA:           content.CTA,
		TrustPartners: visiblePartners(content.TrustPartners),
		Marquee:       content.Marquee,
		Featured:      featured(snap.Listings),
		PreviousWork:  VisibleCaseStudies(caseStudies),
		BeforeAfter:   visibleBeforeAfter(content.BeforeAfter),
	}
}

func Stats(snap domain.Snapshot) domain.DashboardStats {
	st := domain.DashboardStats{
		TotalProperties: len(snap.Listings),
		VisibleSections: len(VisibleSections(snap.Sections, KnownSections)),
	}
	for _, l := range snap.Listings {
		if l.IsFeatured {
			st.FeaturedProperties++
		}
	}
	return st
}
