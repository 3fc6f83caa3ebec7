package domain

import (
	"fmt"
	"strings"
)

// CaseStudy is a completed or ongoing project shown on the previous-work page.
type CaseStudy struct {
	ID           int64        `json:"id"`
	Title        string       `json:"title"`
	Location     string       `json:"location"`
	State        string       `json:"state,omitempty"`
	Category     PropertyType `json:"category"`
	Description  string       `json:"description"`
	ImageURL     string       `json:"imageUrl"`
	Year         int          `json:"year"`
	Status       string       `json:"status"`
	IsVisible    bool         `json:"isVisible"`
	DisplayOrder int          `json:"displayOrder"`
}

type CaseStudyPage struct {
	Items      []CaseStudy `json:"items"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

// Normalize trims display strings, canonicalises the category and fills State from
// Location when it is empty.
func (c CaseStudy) Normalize() CaseStudy {
	c.Title = strings.TrimSpace(c.Title)
	c.Location = strings.TrimSpace(c.Location)
	c.State = strings.ToUpper(strings.TrimSpace(c.State))
	if c.State == "" {
		c.State = StateFromLocation(c.Location)
	}
	if pt, ok := ParsePropertyType(string(c.Category)); ok {
		c.Category = pt
	}
	return c
}

func (c CaseStudy) Validate() error {
	switch {
	case c.ID <= 0:
		return invalid(fmt.Sprintf("case study %q: id must be positive", c.Title))
	case strings.TrimSpace(c.Title) == "":
		return invalid(fmt.Sprintf("case study %d: title is required", c.ID))
	case strings.TrimSpace(c.Location) == "":
		return invalid(fmt.Sprintf("case study %d: location is required", c.ID))
	case !c.Category.Valid():
		return invalid(fmt.Sprintf("case study %d: unknown category %q", c.ID, c.Category))
	case c.Year < 0:
		return invalid(fmt.Sprintf("case study %d: year must be non-negative", c.ID))
	}
	if c.State != "" {
		if _, ok := StateName(c.State); !ok {
			return invalid(fmt.Sprintf("case study %d: unknown state %q", c.ID, c.State))
		}
	}
	return nil
}

// AsListing projects the fields the listing query engine filters on, so case studies
// share its type, state and keyword semantics.
func (c CaseStudy) AsListing() Listing {
	return Listing{
		ID:           c.ID,
		Title:        c.Title,
		Description:  c.Description,
		Location:     c.Location,
		State:        c.State,
		PropertyType: c.Category,
		ImageURL:     c.ImageURL,
	}
}

// BeforeAfter is one transformation pair on the landing page.
type BeforeAfter struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	BeforeImageURL string `json:"beforeImageUrl"`
	AfterImageURL  string `json:"afterImageUrl"`
	IsVisible      bool   `json:"isVisible"`
}

func (b BeforeAfter) Validate() error {
	switch {
	case b.ID <= 0:
		return invalid(fmt.Sprintf("before/after %q: id must be positive", b.Title))
	case strings.TrimSpace(b.Title) == "":
		return invalid(fmt.Sprintf("before/after %d: title is required", b.ID))
	case b.BeforeImageURL == "" || b.AfterImageURL == "":
		return invalid(fmt.Sprintf("before/after %d: both images are required", b.ID))
	}
	return nil
}

// MarqueeSettings drives the scrolling trust-partner strip. Speed is in pixels per second.
type MarqueeSettings struct {
	IsEnabled bool `json:"isEnabled"`
	Speed     int  `json:"speed"`
}
