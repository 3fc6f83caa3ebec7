package app_test

import (
	"reflect"
	"testing"

	"propshare/internal/app"
	"propshare/internal/domain"
)

func TestVisibleSections_OrderAndFiltering(t *testing.T) {
	ss := []domain.LandingSection{
		{SectionKey: "cta", IsVisible: true, Order: 7},
		{SectionKey: "hero", IsVisible: true, Order: 0},
		{SectionKey: "about", IsVisible: false, Order: 1},
		{SectionKey: "blog", IsVisible: true, Order: 2}, // no renderer
		{SectionKey: "featured", IsVisible: true, Order: 3},
	}
	got := app.VisibleSections(ss, app.KnownSections)
	var keys []string
	for _, s := range got {
		keys = append(keys, s.SectionKey)
	}
	if !reflect.DeepEqual(keys, []string{"hero", "featured", "cta"}) {
		t.Fatalf("unexpected sections: %v", keys)
	}
}

func TestBuildLanding(t *testing.T) {
	snap := domain.Snapshot{
		Listings: []domain.Listing{
			{ID: 1, IsFeatured: true},
			{ID: 2},
			{ID: 3, IsFeatured: true},
		},
		Sections: []domain.LandingSection{{SectionKey: "hero", IsVisible: true}},
	}
	content := domain.LandingContent{
		Hero: domain.Hero{Headline: "Find Your Dream Property"},
		TrustPartners: []domain.TrustPartner{
			{Name: "Bloomberg", IsVisible: true, Order: 1},
			{Name: "Hidden", IsVisible: false, Order: 0},
			{Name: "Forbes", IsVisible: true, Order: 0},
		},
		BeforeAfter: []domain.BeforeAfter{
			{ID: 1, Title: "Plot", IsVisible: true},
			{ID: 2, Title: "Hidden", IsVisible: false},
		},
		Marquee: domain.MarqueeSettings{IsEnabled: true, Speed: 50},
	}
	cases := []domain.CaseStudy{
		{ID: 1, Title: "Later", IsVisible: true, DisplayOrder: 2},
		{ID: 2, Title: "Hidden", IsVisible: false, DisplayOrder: 0},
		{ID: 3, Title: "First", IsVisible: true, DisplayOrder: 1},
	}

	got := app.BuildLanding(snap, content, cases)
	if !reflect.DeepEqual(ids(got.Featured), []int64{1, 3}) {
		t.Fatalf("featured: %v", ids(got.Featured))
	}
	if len(got.TrustPartners) != 2 || got.TrustPartners[0].Name != "Forbes" || got.TrustPartners[1].Name != "Bloomberg" {
		t.Fatalf("partners: %+v", got.TrustPartners)
	}
	if len(got.PreviousWork) != 2 || got.PreviousWork[0].Title != "First" || got.PreviousWork[1].Title != "Later" {
		t.Fatalf("previous work: %+v", got.PreviousWork)
	}
	if len(got.BeforeAfter) != 1 || got.BeforeAfter[0].ID != 1 {
		t.Fatalf("before/after: %+v", got.BeforeAfter)
	}
	if !got.Marquee.IsEnabled || got.Marquee.Speed != 50 {
		t.Fatalf("marquee: %+v", got.Marquee)
	}
		if got.Hero.Headline != "Find Your Dream Property" || len(got.Sections) != 1 {
		t.Fatalf("unexpected landing: %+v", got)
	}
}

func TestBuildLanding_NoFeatured(t *testing.T) {
	got := app.BuildLanding(domain.Snapshot{Listings: []domain.Listing{{ID: 1}}}, domain.LandingContent{}, nil)
	if got.Featured == nil || len(got.Featured) != 0 {
		t.Fatalf("want empty featured, got %v", got.Featured)
	}
}

func TestStats(t *testing.T) {
	snap := domain.Snapshot{
		Listings: []domain.Listing{{ID: 1, IsFeatured: true}, {ID: 2}, {ID: 3}},
		Sections: []domain.LandingSection{
			{SectionKey: "hero", IsVisible: true, Order: 0},
			{SectionKey: "about", IsVisible: false, Order: 1},
			{SectionKey: "trust", IsVisible: true, Order: 2},
		},
	}
	want := domain.DashboardStats{TotalProperties: 3, FeaturedProperties: 1, VisibleSections: 2}
	if got := app.Stats(snap); got != want {
		t.Fatalf("want %+v, got %+v", want, got)
	}
}
