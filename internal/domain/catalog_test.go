package domain_test

import (
	"errors"
	"testing"

	"propshare/internal/domain"
)

func validCatalog() domain.Catalog {
	return domain.Catalog{
		Listings:   []domain.Listing{validListing()},
		ROIConfigs: []domain.ROIConfig{{PropertyType: domain.Residential, RoiPercentageMin: 7, RoiPercentageMax: 10}},
		Sections: []domain.LandingSection{
			{SectionKey: "hero", Order: 0},
			{SectionKey: "cta", Order: 1},
		},
	}
}

func TestCatalog_Validate(t *testing.T) {
	if err := validCatalog().Validate(); err != nil {
		t.Fatalf("valid catalog rejected: %v", err)
	}

	cases := map[string]func(*domain.Catalog){
		"duplicate id": func(c *domain.Catalog) { c.Listings = append(c.Listings, c.Listings[0]) },
		"zero id":      func(c *domain.Catalog) { c.Listings[0].ID = 0 },
		"missing band": func(c *domain.Catalog) { c.Listings[0].PropertyType = domain.Villa },
		"duplicate band": func(c *domain.Catalog) {
			c.ROIConfigs = append(c.ROIConfigs, c.ROIConfigs[0])
		},
		"inverted band":     func(c *domain.Catalog) { c.ROIConfigs[0].RoiPercentageMin = 11 },
		"duplicate section": func(c *domain.Catalog) { c.Sections[1].SectionKey = "hero" },
		"shared order":      func(c *domain.Catalog) { c.Sections[1].Order = 0 },
		"invalid listing":   func(c *domain.Catalog) { c.Listings[0].Title = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := validCatalog()
			mutate(&c)
			if err := c.Validate(); !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("want invalid input, got %v", err)
			}
		})
	}
}

func TestROITable_Configs(t *testing.T) {
	table, err := domain.NewROITable([]domain.ROIConfig{
		{PropertyType: domain.Plot, RoiPercentageMin: 6, RoiPercentageMax: 10},
		{PropertyType: domain.Residential, RoiPercentageMin: 7, RoiPercentageMax: 10},
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	cfgs := table.Configs()
	if len(cfgs) != 2 || cfgs[0].PropertyType != domain.Residential || cfgs[1].PropertyType != domain.Plot {
		t.Fatalf("unexpected order: %+v", cfgs)
	}
	if _, ok := table.Lookup(domain.Shop); ok {
		t.Fatalf("Shop should have no band")
	}
}
