package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"propshare/internal/domain"
)

type QueryService struct {
	store    domain.ListingStore
	roi      domain.ROITable
	content  domain.LandingContent
	cases    []domain.CaseStudy
	pageSize int
}

func NewQueryService(s domain.ListingStore, roi domain.ROITable, content domain.LandingContent, cases []domain.CaseStudy, pageSize int) *QueryService {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	cs := make([]domain.CaseStudy, 0, len(cases))
	for _, c := range cases {
		cs = append(cs, c.Normalize())
	}
	return &QueryService{store: s, roi: roi, content: content, cases: cs, pageSize: pageSize}
}

func (s *QueryService) ListListings(f domain.ListingFilter, page, pageSize int) (domain.ListingPage, error) {
	if pageSize == 0 {
		pageSize = s.pageSize
	}
	return QueryListings(s.store.Snapshot().Listings, f, page, pageSize)
}

func (s *QueryService) GetListing(id int64) (domain.Listing, error) {
	return s.store.Get(id)
}

// StateCounts returns the map/dropdown distribution; f.State only picks the selected state.
func (s *QueryService) StateCounts(f domain.ListingFilter) ([]domain.StateCount, error) {
	if !isAll(f.State) && !domain.IsStateCodeShape(strings.TrimSpace(f.State)) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidState, f.State)
	}
	counts, err := CountByState(s.store.Snapshot().Listings, f)
	if err != nil {
		return nil, err
	}
	return StateMap(counts, f.State), nil
}

func (s *QueryService) ListCaseStudies(f domain.ListingFilter, page, pageSize int) (domain.CaseStudyPage, error) {
	if pageSize == 0 {
		pageSize = s.pageSize
	}
	return QueryCaseStudies(s.cases, f, page, pageSize)
}

// CaseStudyStateCounts is StateCounts for the projects map.
func (s *QueryService) CaseStudyStateCounts(f domain.ListingFilter) ([]domain.StateCount, error) {
	if !isAll(f.State) && !domain.IsStateCodeShape(strings.TrimSpace(f.State)) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidState, f.State)
	}
	counts, err := CountCaseStudiesByState(s.cases, f)
	if err != nil {
		return nil, err
	}
	return StateMap(counts, f.State), nil
}

func (s *QueryService) EstimateROI(propertyType string, amount float64, years int) (domain.ROIResult, error) {
	return EstimateROI(s.roi, propertyType, amount, years)
}

func (s *QueryService) ROIConfigs() []domain.ROIConfig { return s.roi.Configs() }

func (s *QueryService) PropertyTypes() []domain.PropertyType { return domain.PropertyTypes() }

func (s *QueryService) Landing() domain.Landing {
	return BuildLanding(s.store.Snapshot(), s.content, s.cases)
}

func (s *QueryService) Stats() domain.DashboardStats {
	return Stats(s.store.Snapshot())
}

// LoadCatalog reads the catalog from src and validates it before anything serves it.
func LoadCatalog(ctx context.Context, src domain.CatalogSource) (domain.Catalog, domain.ROITable, error) {
	cat, err := src.LoadCatalog(ctx)
	if err != nil {
		return domain.Catalog{}, domain.ROITable{}, fmt.Errorf("load catalog: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return domain.Catalog{}, domain.ROITable{}, fmt.Errorf("validate catalog: %w", err)
	}
	table, err := domain.NewROITable(cat.ROIConfigs)
	if err != nil {
		return domain.Catalog{}, domain.ROITable{}, err
	}
	log.Info().
		Int("listings", len(cat.Listings)).
		Int("case_studies", len(cat.CaseStudies)).
		Int("roi_configs", len(cat.ROIConfigs)).
		Int("sections", len(cat.Sections)).
		Msg("catalog loaded")
	return cat, table, nil
}
