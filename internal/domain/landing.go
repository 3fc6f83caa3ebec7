package domain

// LandingSection toggles and orders one landing page block.
type LandingSection struct {
	SectionKey string `json:"sectionKey"`
	Title      string `json:"title"`
	IsVisible  bool   `json:"isVisible"`
	Order      int    `json:"order"`
}

type Hero struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
	CTAText     string `json:"ctaText"`
	CTALink     string `json:"ctaLink"`
	BgImageURL  string `json:"bgImageUrl"`
}

type CTA struct {
	Heading        string `json:"heading"`
	Subheading     string `json:"subheading"`
	CTAText        string `json:"ctaText"`
	CTALink        string `json:"ctaLink"`
	WhatsappNumber string `json:"whatsappNumber"`
}

type TrustPartner struct {
	Name        string `json:"name"`
	IsTextBased bool   `json:"isTextBased"`
	IsVisible   bool   `json:"isVisible"`
	Order       int    `json:"order"`
}

// LandingContent is the static copy rendered by the hero, cta, trust and before/after blocks.
type LandingContent struct {
	Hero          Hero            `json:"hero"`
	CTA           CTA             `json:"cta"`
	TrustPartners []TrustPartner  `json:"trustPartners"`
	BeforeAfter   []BeforeAfter   `json:"beforeAfter"`
	Marquee       MarqueeSettings `json:"marquee"`
}
