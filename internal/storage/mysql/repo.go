package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"propshare/internal/domain"
)

func valStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}
func valJSON(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(b) == "null" {
		return nil, nil
	}
	return string(b), nil
}

// Repo is the MySQL catalog store. It is read once at startup (CatalogSource) and
// filled by cmd/seeder (CatalogWriter).
type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertListing(ctx context.Context, l domain.Listing) error {
	media, err := valJSON(l.Media)
	if err != nil {
		return fmt.Errorf("listing %d media: %w", l.ID, err)
	}
	_, err = r.db.ExecContext(ctx, upsertListingSQL,
		l.ID,
		l.Title,
		l.Description,
		l.Location,
		valStr(l.State),
		l.Price,
		string(l.PropertyType),
		l.Bedrooms,
		l.Bathrooms,
		l.Area,
		l.IsFeatured,
		l.ImageURL,
		media,
	)
	return err
}

func (r *Repo) UpsertCaseStudy(ctx context.Context, c domain.CaseStudy) error {
	_, err := r.db.ExecContext(ctx, upsertCaseStudySQL,
		c.ID,
		c.Title,
		c.Location,
		valStr(c.State),
		string(c.Category),
		c.Description,
		c.ImageURL,
		c.Year,
		c.Status,
		c.IsVisible,
		c.DisplayOrder,
	)
	return err
}

func (r *Repo) UpsertROIConfig(ctx context.Context, c domain.ROIConfig) error {
	_, err := r.db.ExecContext(ctx, upsertROIConfigSQL,
		string(c.PropertyType),
		c.RoiPercentageMin,
		c.RoiPercentageMax,
		c.ImageURL,
		c.DisclaimerText,
	)
	return err
}

func (r *Repo) UpsertSection(ctx context.Context, s domain.LandingSection) error {
	_, err := r.db.ExecContext(ctx, upsertSectionSQL, s.SectionKey, s.Title, s.IsVisible, s.Order)
	return err
}

func (r *Repo) UpsertContent(ctx context.Context, c domain.LandingContent) error {
	hero, err := json.Marshal(c.Hero)
	if err != nil {
		return err
	}
	cta, err := json.Marshal(c.CTA)
	if err != nil {
		return err
	}
	partners := c.TrustPartners
	if partners == nil {
		partners = []domain.TrustPartner{}
	}
	tp, err := json.Marshal(partners)
	if err != nil {
		return err
	}
	ba, err := valJSON(c.BeforeAfter)
	if err != nil {
		return err
	}
	mq, err := json.Marshal(c.Marquee)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, upsertContentSQL, string(hero), string(cta), string(tp), ba, string(mq))
	return err
}

// LoadCatalog reads every table. A missing landing_content row yields empty copy.
func (r *Repo) LoadCatalog(ctx context.Context) (domain.Catalog, error) {
	var cat domain.Catalog
	var err error
	if cat.Listings, err = r.listings(ctx); err != nil {
		return domain.Catalog{}, fmt.Errorf("listings: %w", err)
	}
	if cat.CaseStudies, err = r.caseStudies(ctx); err != nil {
		return domain.Catalog{}, fmt.Errorf("case_studies: %w", err)
	}
	if cat.ROIConfigs, err = r.roiConfigs(ctx); err != nil {
		return domain.Catalog{}, fmt.Errorf("roi_configs: %w", err)
	}
	if cat.Sections, err = r.sections(ctx); err != nil {
		return domain.Catalog{}, fmt.Errorf("landing_sections: %w", err)
	}
	if cat.Content, err = r.content(ctx); err != nil {
		return domain.Catalog{}, fmt.Errorf("landing_content: %w", err)
	}
	return cat, nil
}

func (r *Repo) listings(ctx context.Context) ([]domain.Listing, error) {
	rows, err := r.db.QueryContext(ctx, selectListingsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Listing
	for rows.Next() {
		var l domain.Listing
		var state sql.NullString
		var pt string
		var media []byte
		if err := rows.Scan(
			&l.ID, &l.Title, &l.Description, &l.Location, &state, &l.Price, &pt,
			&l.Bedrooms, &l.Bathrooms, &l.Area, &l.IsFeatured, &l.ImageURL, &media,
		); err != nil {
			return nil, err
		}
		if state.Valid {
			l.State = state.String
		}
		l.PropertyType = domain.PropertyType(pt)
		if len(media) > 0 {
			if err := json.Unmarshal(media, &l.Media); err != nil {
				return nil, fmt.Errorf("listing %d media: %w", l.ID, err)
			}
		}
		out = append(out, l.Normalize())
	}
	return out, rows.Err()
}

func (r *Repo) caseStudies(ctx context.Context) ([]domain.CaseStudy, error) {
	rows, err := r.db.QueryContext(ctx, selectCaseStudiesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CaseStudy
	for rows.Next() {
		var c domain.CaseStudy
		var state sql.NullString
		var category string
		if err := rows.Scan(
			&c.ID, &c.Title, &c.Location, &state, &category, &c.Description, &c.ImageURL,
			&c.Year, &c.Status, &c.IsVisible, &c.DisplayOrder,
		); err != nil {
			return nil, err
		}
		if state.Valid {
			c.State = state.String
		}
		c.Category = domain.PropertyType(category)
		out = append(out, c.Normalize())
	}
	return out, rows.Err()
}

func (r *Repo) roiConfigs(ctx context.Context) ([]domain.ROIConfig, error) {
	rows, err := r.db.QueryContext(ctx, selectROIConfigsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ROIConfig
	for rows.Next() {
		var c domain.ROIConfig
		var pt string
		if err := rows.Scan(&pt, &c.RoiPercentageMin, &c.RoiPercentageMax, &c.ImageURL, &c.DisclaimerText); err != nil {
			return nil, err
		}
		c.PropertyType = domain.PropertyType(pt)
		if p, ok := domain.ParsePropertyType(pt); ok {
			c.PropertyType = p
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repo) sections(ctx context.Context) ([]domain.LandingSection, error) {
	rows, err := r.db.QueryContext(ctx, selectSectionsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.LandingSection
	for rows.Next() {
		var s domain.LandingSection
		if err := rows.Scan(&s.SectionKey, &s.Title, &s.IsVisible, &s.Order); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repo) content(ctx context.Context) (domain.LandingContent, error) {
	var hero, cta, tp, ba, mq []byte
	err := r.db.QueryRowContext(ctx, selectContentSQL).Scan(&hero, &cta, &tp, &ba, &mq)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.LandingContent{TrustPartners: []domain.TrustPartner{}, BeforeAfter: []domain.BeforeAfter{}}, nil
	}
	if err != nil {
		return domain.LandingContent{}, err
	}
	var c domain.LandingContent
	if err := json.Unmarshal(hero, &c.Hero); err != nil {
		return domain.LandingContent{}, fmt.Errorf("hero: %w", err)
	}
	if err := json.Unmarshal(cta, &c.CTA); err != nil {
		return domain.LandingContent{}, fmt.Errorf("cta: %w", err)
	}
	if err := json.Unmarshal(tp, &c.TrustPartners); err != nil {
		return domain.LandingContent{}, fmt.Errorf("trust_partners: %w", err)
	}
	c.BeforeAfter = []domain.BeforeAfter{}
	if len(ba) > 0 {
		if err := json.Unmarshal(ba, &c.BeforeAfter); err != nil {
			return domain.LandingContent{}, fmt.Errorf("before_after: %w", err)
		}
	}
	if len(mq) > 0 {
		if err := json.Unmarshal(mq, &c.Marquee); err != nil {
			return domain.LandingContent{}, fmt.Errorf("marquee: %w", err)
		}
	}
	return c, nil
}
