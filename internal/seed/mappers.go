package seed

import "propshare/internal/domain"

/********** file records (yaml shape) **********/

type mediaRecord struct {
	Type  string `yaml:"type"`
	URL   string `yaml:"url"`
	Badge string `yaml:"badge"`
}

type listingRecord struct {
	ID           int64         `yaml:"id"`
	Title        string        `yaml:"title"`
	Description  string        `yaml:"description"`
	Location     string        `yaml:"location"`
	State        string        `yaml:"state"`
	Price        float64       `yaml:"price"`
	PropertyType string        `yaml:"property_type"`
	Bedrooms     int           `yaml:"bedrooms"`
	Bathrooms    int           `yaml:"bathrooms"`
	Area         float64       `yaml:"area"`
	Featured     bool          `yaml:"featured"`
	ImageURL     string        `yaml:"image_url"`
	Media        []mediaRecord `yaml:"media"`
}

type caseStudyRecord struct {
	ID           int64  `yaml:"id"`
	Title        string `yaml:"title"`
	Location     string `yaml:"location"`
	State        string `yaml:"state"`
	Category     string `yaml:"category"`
	Description  string `yaml:"description"`
	ImageURL     string `yaml:"image_url"`
	Year         int    `yaml:"year"`
	Status       string `yaml:"status"`
	Visible      bool   `yaml:"visible"`
	DisplayOrder int    `yaml:"display_order"`
}

type roiFile struct {
	Disclaimer string      `yaml:"disclaimer"` // anchor holder
	Configs    []roiRecord `yaml:"configs"`
}

type roiRecord struct {
	PropertyType string  `yaml:"property_type"`
	Min          float64 `yaml:"min"`
	Max          float64 `yaml:"max"`
	ImageURL     string  `yaml:"image_url"`
	Disclaimer   string  `yaml:"disclaimer"`
}

type landingFile struct {
	Hero struct {
		Headline    string `yaml:"headline"`
		Subheadline string `yaml:"subheadline"`
		CTAText     string `yaml:"cta_text"`
		CTALink     string `yaml:"cta_link"`
		BgImageURL  string `yaml:"bg_image_url"`
	} `yaml:"hero"`
	CTA struct {
		Heading        string `yaml:"heading"`
		Subheading     string `yaml:"subheading"`
		CTAText        string `yaml:"cta_text"`
		CTALink        string `yaml:"cta_link"`
		WhatsappNumber string `yaml:"whatsapp_number"`
	} `yaml:"cta"`
	Sections []struct {
		Key     string `yaml:"key"`
		Title   string `yaml:"title"`
		Visible bool   `yaml:"visible"`
		Order   int    `yaml:"order"`
	} `yaml:"sections"`
	TrustPartners []struct {
		Name      string `yaml:"name"`
		TextBased bool   `yaml:"text_based"`
		Visible   bool   `yaml:"visible"`
		Order     int    `yaml:"order"`
	} `yaml:"trust_partners"`
	Marquee struct {
		Enabled bool `yaml:"enabled"`
		Speed   int  `yaml:"speed"`
	} `yaml:"marquee"`
	BeforeAfter []struct {
		ID             int64  `yaml:"id"`
		Title          string `yaml:"title"`
		Description    string `yaml:"description"`
		BeforeImageURL string `yaml:"before_image_url"`
		AfterImageURL  string `yaml:"after_image_url"`
		Visible        bool   `yaml:"visible"`
	} `yaml:"before_after"`
}

/********** record -> domain **********/

func mapListing(r listingRecord) domain.Listing {
	l := domain.Listing{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		Location:     r.Location,
		State:        r.State,
		Price:        r.Price,
		PropertyType: domain.PropertyType(r.PropertyType),
		Bedrooms:     r.Bedrooms,
		Bathrooms:    r.Bathrooms,
		Area:         r.Area,
		IsFeatured:   r.Featured,
		ImageURL:     r.ImageURL,
	}
	for _, m := range r.Media {
		l.Media = append(l.Media, domain.Media{Type: domain.MediaType(m.Type), URL: m.URL, Badge: m.Badge})
	}
	return l.Normalize()
}

func mapCaseStudy(r caseStudyRecord) domain.CaseStudy {
	return domain.CaseStudy{
		ID:           r.ID,
		Title:        r.Title,
		Location:     r.Location,
		State:        r.State,
		Category:     domain.PropertyType(r.Category),
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		Year:         r.Year,
		Status:       r.Status,
		IsVisible:    r.Visible,
		DisplayOrder: r.DisplayOrder,
	}.Normalize()
}

func mapROI(r roiRecord) domain.ROIConfig {
	pt := domain.PropertyType(r.PropertyType)
	if p, ok := domain.ParsePropertyType(r.PropertyType); ok {
		pt = p
	}
	return domain.ROIConfig{
		PropertyType:     pt,
		RoiPercentageMin: r.Min,
		RoiPercentageMax: r.Max,
		ImageURL:         r.ImageURL,
		DisclaimerText:   r.Disclaimer,
	}
}

func mapLanding(f landingFile) ([]domain.LandingSection, domain.LandingContent) {
	sections := make([]domain.LandingSection, 0, len(f.Sections))
	for _, s := range f.Sections {
		sections = append(sections, domain.LandingSection{
			SectionKey: s.Key, Title: s.Title, IsVisible: s.Visible, Order: s.Order,
		})
	}
	content := domain.LandingContent{
		Hero: domain.Hero{
			Headline:    f.Hero.Headline,
			Subheadline: f.Hero.Subheadline,
			CTAText:     f.Hero.CTAText,
			CTALink:     f.Hero.CTALink,
			BgImageURL:  f.Hero.BgImageURL,
		},
		CTA: domain.CTA{
			Heading:        f.CTA.Heading,
			Subheading:     f.CTA.Subheading,
			CTAText:        f.CTA.CTAText,
			CTALink:        f.CTA.CTALink,
			WhatsappNumber: f.CTA.WhatsappNumber,
		},
		TrustPartners: make([]domain.TrustPartner, 0, len(f.TrustPartners)),
		BeforeAfter:   make([]domain.BeforeAfter, 0, len(f.BeforeAfter)),
		Marquee:       domain.MarqueeSettings{IsEnabled: f.Marquee.Enabled, Speed: f.Marquee.Speed},
	}
	for _, p := range f.TrustPartners {
		content.TrustPartners = append(content.TrustPartners, domain.TrustPartner{
			Name: p.Name, IsTextBased: p.TextBased, IsVisible: p.Visible, Order: p.Order,
		})
	}
	for _, b := range f.BeforeAfter {
		content.BeforeAfter = append(content.BeforeAfter, domain.BeforeAfter{
			ID:             b.ID,
			Title:          b.Title,
			Description:    b.Description,
			BeforeImageURL: b.BeforeImageURL,
			AfterImageURL:  b.AfterImageURL,
			IsVisible:      b.Visible,
		})
	}
	return sections, content
}
