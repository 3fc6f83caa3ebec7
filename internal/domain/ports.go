package domain

import "context"

// CatalogSource loads the catalog at process start (embedded seed or MySQL).
type CatalogSource interface {
	LoadCatalog(ctx context.Context) (Catalog, error)
}

type CatalogWriter interface {
	UpsertListing(ctx context.Context, l Listing) error
	UpsertCaseStudy(ctx context.Context, c CaseStudy) error
	UpsertROIConfig(ctx context.Context, c ROIConfig) error
	UpsertSection(ctx context.Context, s LandingSection) error
	UpsertContent(ctx context.Context, c LandingContent) error
}

// ListingStore holds the live listing collection. Every write returns a new snapshot;
// snapshots already handed out are never modified.
type ListingStore interface {
	Snapshot() Snapshot
	List() []Listing
	Get(id int64) (Listing, error)
	Create(l Listing) (Listing, error)
	Update(id int64, l Listing) (Listing, error)
	Delete(id int64) error
	SetFeatured(id int64, featured bool) (Listing, error)
	UpdateSection(key string, patch SectionPatch) (LandingSection, error)
}

// Snapshot is an immutable view of the store.
type Snapshot struct {
	Version  uint64
	Listings []Listing
	Sections []LandingSection
}

type SectionPatch struct {
	IsVisible *bool `json:"isVisible"`
	Order     *int  `json:"order"`
}

// Read models & queries

type SortOrder string

const (
	SortNone      SortOrder = ""
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
	SortNewest    SortOrder = "newest"
)

type ListingFilter struct {
	PropertyType string // "" or "All" = any
	State        string // "" or "All" = any
	Keyword      string
	Sort         SortOrder
}

type ListingPage struct {
	Items      []Listing `json:"items"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalPages int       `json:"totalPages"`
}

type StateFill string

const (
	FillSelected    StateFill = "selected"
	FillHasListings StateFill = "has_listings"
	FillNone        StateFill = "none"
)

type StateCount struct {
	Code  string    `json:"code"`
	Name  string    `json:"name"`
	Count int       `json:"count"`
	Fill  StateFill `json:"fill"`
}

type Landing struct {
	Sections      []LandingSection `json:"sections"`
	Hero          Hero             `json:"hero"`
	CTA           CTA              `json:"cta"`
	TrustPartners []TrustPartner   `json:"trustPartners"`
	Marquee       MarqueeSettings  `json:"marquee"`
	Featured      []Listing        `json:"featured"`
	PreviousWork  []CaseStudy      `json:"previousWork"`
	BeforeAfter   []BeforeAfter    `json:"beforeAfter"`
}

type DashboardStats struct {
	TotalProperties    int `json:"totalProperties"`
	FeaturedProperties int `json:"featuredProperties"`
	VisibleSections    int `json:"visibleSections"`
}
