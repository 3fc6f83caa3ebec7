package domain_test

import (
	"errors"
	"math"
	"testing"

	"propshare/internal/domain"
)

func validListing() domain.Listing {
	return domain.Listing{
		ID: 1, Title: "Skyline Towers", Description: "Mixed use", Location: "New York City, NY",
		Price: 2500000, PropertyType: domain.Residential, Bedrooms: 3, Bathrooms: 2, Area: 2200,
		ImageURL: "https://img/1.jpg",
	}
}

func TestListing_Validate(t *testing.T) {
	if err := validListing().Validate(); err != nil {
		t.Fatalf("valid listing rejected: %v", err)
	}

	cases := map[string]func(*domain.Listing){
		"no title":        func(l *domain.Listing) { l.Title = "  " },
		"no description":  func(l *domain.Listing) { l.Description = "" },
		"no location":     func(l *domain.Listing) { l.Location = "" },
		"negative price":  func(l *domain.Listing) { l.Price = -1 },
		"nan price":       func(l *domain.Listing) { l.Price = math.NaN() },
		"unknown type":    func(l *domain.Listing) { l.PropertyType = "Castle" },
		"lowercase type":  func(l *domain.Listing) { l.PropertyType = "villa" },
		"negative beds":   func(l *domain.Listing) { l.Bedrooms = -1 },
		"inf area":        func(l *domain.Listing) { l.Area = math.Inf(1) },
		"unknown state":   func(l *domain.Listing) { l.State = "ZZ" },
		"no image":        func(l *domain.Listing) { l.ImageURL = "" },
		"bad media type":  func(l *domain.Listing) { l.Media = []domain.Media{{Type: "gif", URL: "u"}} },
		"media no url":    func(l *domain.Listing) { l.Media = []domain.Media{{Type: domain.MediaVideo}} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			l := validListing()
			mutate(&l)
			if err := l.Validate(); !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("want invalid input, got %v", err)
			}
		})
	}
}

func TestListing_Normalize(t *testing.T) {
	l := domain.Listing{Title: "  Lofts ", Location: "Portland, or", PropertyType: "commercial"}.Normalize()
	if l.Title != "Lofts" || l.State != "OR" || l.PropertyType != domain.Commercial {
		t.Fatalf("unexpected: %+v", l)
	}
	// explicit state wins over location
	l = domain.Listing{Location: "Portland, OR", State: "wa"}.Normalize()
	if l.State != "WA" {
		t.Fatalf("state: %q", l.State)
	}
}

func TestListing_Gallery(t *testing.T) {
	l := validListing()
	g := l.Gallery()
	if len(g) != 1 || g[0].Type != domain.MediaImage || g[0].URL != l.ImageURL {
		t.Fatalf("fallback gallery: %+v", g)
	}

	l.Media = []domain.Media{{Type: domain.MediaVideo, URL: "v"}, {Type: domain.Media360, URL: "p", Badge: "360°"}}
	g = l.Gallery()
	if len(g) != 2 || g[1].Badge != "360°" {
		t.Fatalf("media gallery: %+v", g)
	}
	g[0].URL = "changed"
	if l.Media[0].URL != "v" {
		t.Fatalf("gallery aliases listing media")
	}
}

func TestListing_Clone(t *testing.T) {
	l := validListing()
	l.Media = []domain.Media{{Type: domain.MediaImage, URL: "a"}}
	c := l.Clone()
	c.Media[0].URL = "b"
	if l.Media[0].URL != "a" {
		t.Fatalf("clone shares media")
	}
}

func TestStateFromLocation(t *testing.T) {
	for loc, want := range map[string]string{
		"Scottsdale, AZ":       "AZ",
		"Washington, dc":       "DC",
		"Austin, Texas":        "",
		"Somewhere":            "",
		"Kansas City, MO, USA": "",
	} {
		if got := domain.StateFromLocation(loc); got != want {
			t.Fatalf("%q: want %q, got %q", loc, want, got)
		}
	}
}

func TestParsePropertyType(t *testing.T) {
	if pt, ok := domain.ParsePropertyType(" VILLA "); !ok || pt != domain.Villa {
		t.Fatalf("got %q %v", pt, ok)
	}
	if _, ok := domain.ParsePropertyType("Castle"); ok {
		t.Fatalf("Castle accepted")
	}
	types := domain.PropertyTypes()
	types[0] = "mutated"
	if domain.PropertyTypes()[0] != domain.Residential {
		t.Fatalf("PropertyTypes exposes internal slice")
	}
}
