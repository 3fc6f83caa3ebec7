package domain

import "fmt"

// Catalog is everything the service serves, as loaded at process start.
type Catalog struct {
	Listings    []Listing
	CaseStudies []CaseStudy
	ROIConfigs  []ROIConfig
	Sections    []LandingSection
	Content     LandingContent
}

// Validate rejects malformed entries at load time so they are never discovered mid-query.
func (c Catalog) Validate() error {
	table, err := NewROITable(c.ROIConfigs)
	if err != nil {
		return err
	}
	seen := make(map[int64]bool, len(c.Listings))
	for _, l := range c.Listings {
		if l.ID <= 0 {
			return invalid(fmt.Sprintf("listing %q: id must be positive", l.Title))
		}
		if seen[l.ID] {
			return invalid(fmt.Sprintf("duplicate listing id %d", l.ID))
		}
		seen[l.ID] = true
		if err := l.Validate(); err != nil {
			return fmt.Errorf("listing %d: %w", l.ID, err)
		}
		if _, ok := table.Lookup(l.PropertyType); !ok {
			return invalid(fmt.Sprintf("listing %d: no roi config for %s", l.ID, l.PropertyType))
		}
	}
	csSeen := make(map[int64]bool, len(c.CaseStudies))
	for _, cs := range c.CaseStudies {
		if err := cs.Validate(); err != nil {
			return err
		}
		if csSeen[cs.ID] {
			return invalid(fmt.Sprintf("duplicate case study id %d", cs.ID))
		}
		csSeen[cs.ID] = true
	}
	baSeen := make(map[int64]bool, len(c.Content.BeforeAfter))
	for _, b := range c.Content.BeforeAfter {
		if err := b.Validate(); err != nil {
			return err
		}
		if baSeen[b.ID] {
			return invalid(fmt.Sprintf("duplicate before/after id %d", b.ID))
		}
		baSeen[b.ID] = true
	}
	if c.Content.Marquee.Speed < 0 {
		return invalid("marquee speed must be non-negative")
	}
	return ValidateSections(c.Sections)
}

// ValidateSections checks that keys and order values are unique.
func ValidateSections(ss []LandingSection) error {
	keys := make(map[string]bool, len(ss))
	orders := make(map[int]string, len(ss))
	for _, s := range ss {
		if s.SectionKey == "" {
			return invalid("section key is required")
		}
		if keys[s.SectionKey] {
			return invalid(fmt.Sprintf("duplicate section %q", s.SectionKey))
		}
		keys[s.SectionKey] = true
		if other, dup := orders[s.Order]; dup {
			return invalid(fmt.Sprintf("sections %q and %q share order %d", other, s.SectionKey, s.Order))
		}
		orders[s.Order] = s.SectionKey
	}
	return nil
}
