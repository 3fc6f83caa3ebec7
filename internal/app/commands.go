package app

import (
	"fmt"

	"propshare/internal/domain"
)

// AdminService applies admin writes to the store. Writes live only as long as the process.
type AdminService struct {
	store domain.ListingStore
	roi   domain.ROITable
}

func NewAdminService(s domain.ListingStore, roi domain.ROITable) *AdminService {
	return &AdminService{store: s, roi: roi}
}

func (s *AdminService) CreateListing(l domain.Listing) (domain.Listing, error) {
	l = l.Normalize()
	if err := s.requireBand(l.PropertyType); err != nil {
		return domain.Listing{}, err
	}
	return s.store.Create(l)
}

func (s *AdminService) UpdateListing(id int64, l domain.Listing) (domain.Listing, error) {
	l = l.Normalize()
	if err := s.requireBand(l.PropertyType); err != nil {
		return domain.Listing{}, err
	}
	return s.store.Update(id, l)
}

func (s *AdminService) DeleteListing(id int64) error {
	return s.store.Delete(id)
}

func (s *AdminService) SetFeatured(id int64, featured bool) (domain.Listing, error) {
	return s.store.SetFeatured(id, featured)
}

func (s *AdminService) UpdateSection(key string, p domain.SectionPatch) (domain.LandingSection, error) {
	return s.store.UpdateSection(key, p)
}

// requireBand keeps the catalog invariant that every listed type has an ROI band.
func (s *AdminService) requireBand(pt domain.PropertyType) error {
	if !pt.Valid() {
		return fmt.Errorf("%w: unknown property type %q", domain.ErrInvalidInput, pt)
	}
	if _, ok := s.roi.Lookup(pt); !ok {
		return fmt.Errorf("%w: no roi config for %s", domain.ErrInvalidInput, pt)
	}
	return nil
}
