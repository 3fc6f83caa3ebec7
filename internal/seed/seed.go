// Package seed holds the catalog compiled into the binary.
package seed

import (
	"context"
	"embed"
	"fmt"

	"gopkg.in/yaml.v2"

	"propshare/internal/domain"
)

//go:embed data/*.yaml
var files embed.FS

// Embedded is the CatalogSource backed by data/*.yaml.
type Embedded struct{}

func (Embedded) LoadCatalog(ctx context.Context) (domain.Catalog, error) {
	read := func(name string) ([]byte, error) {
		b, err := files.ReadFile("data/" + name)
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", name, err)
		}
		return b, nil
	}
	ls, err := read("listings.yaml")
	if err != nil {
		return domain.Catalog{}, err
	}
	roi, err := read("roi.yaml")
	if err != nil {
		return domain.Catalog{}, err
	}
	landing, err := read("landing.yaml")
	if err != nil {
		return domain.Catalog{}, err
	}
	cases, err := read("case_studies.yaml")
	if err != nil {
		return domain.Catalog{}, err
	}
	return Parse(ls, roi, landing, cases)
}

// Parse decodes the seed documents. Unknown keys are rejected; semantic checks are
// left to domain.Catalog.Validate.
func Parse(listingsYAML, roiYAML, landingYAML, caseStudiesYAML []byte) (domain.Catalog, error) {
	var recs []listingRecord
	if err := yaml.UnmarshalStrict(listingsYAML, &recs); err != nil {
		return domain.Catalog{}, fmt.Errorf("seed listings: %w", err)
	}
	var rf roiFile
	if err := yaml.UnmarshalStrict(roiYAML, &rf); err != nil {
		return domain.Catalog{}, fmt.Errorf("seed roi: %w", err)
	}
	var lf landingFile
	if err := yaml.UnmarshalStrict(landingYAML, &lf); err != nil {
		return domain.Catalog{}, fmt.Errorf("seed landing: %w", err)
	}
	var csRecs []caseStudyRecord
	if err := yaml.UnmarshalStrict(caseStudiesYAML, &csRecs); err != nil {
		return domain.Catalog{}, fmt.Errorf("seed case studies: %w", err)
	}

	cat := domain.Catalog{
		Listings:    make([]domain.Listing, 0, len(recs)),
		CaseStudies: make([]domain.CaseStudy, 0, len(csRecs)),
		ROIConfigs:  make([]domain.ROIConfig, 0, len(rf.Configs)),
	}
	for _, r := range recs {
		cat.Listings = append(cat.Listings, mapListing(r))
	}
	for _, r := range csRecs {
		cat.CaseStudies = append(cat.CaseStudies, mapCaseStudy(r))
	}
	for _, r := range rf.Configs {
		cat.ROIConfigs = append(cat.ROIConfigs, mapROI(r))
	}
	cat.Sections, cat.Content = mapLanding(lf)
	return cat, nil
}
