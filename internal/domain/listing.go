package domain

import (
	"fmt"
	"math"
	"strings"
)

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
	Media360   MediaType = "360"
)

type Media struct {
	Type  MediaType `json:"type"`
	URL   string    `json:"url"`
	Badge string    `json:"badge,omitempty"`
}

// Listing is a property (or case study) available for browsing and ROI estimation.
type Listing struct {
	ID           int64        `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Location     string       `json:"location"`
	State        string       `json:"state,omitempty"` // 2-letter code, empty when unknown
	Price        float64      `json:"price"`
	PropertyType PropertyType `json:"propertyType"`
	Bedrooms     int          `json:"bedrooms"`
	Bathrooms    int          `json:"bathrooms"`
	Area         float64      `json:"area"`
	IsFeatured   bool         `json:"isFeatured"`
	ImageURL     string       `json:"imageUrl"`
	Media        []Media      `json:"media,omitempty"`
}

// Gallery returns the media list, falling back to the primary image.
func (l Listing) Gallery() []Media {
	if len(l.Media) > 0 {
		out := make([]Media, len(l.Media))
		copy(out, l.Media)
		return out
	}
	if l.ImageURL == "" {
		return []Media{}
	}
	return []Media{{Type: MediaImage, URL: l.ImageURL}}
}

// Clone returns a copy that shares no slices with l.
func (l Listing) Clone() Listing {
	if l.Media != nil {
		m := make([]Media, len(l.Media))
		copy(m, l.Media)
		l.Media = m
	}
	return l
}

// Normalize trims display strings and fills State from Location when it is empty.
func (l Listing) Normalize() Listing {
	l.Title = strings.TrimSpace(l.Title)
	l.Description = strings.TrimSpace(l.Description)
	l.Location = strings.TrimSpace(l.Location)
	l.State = strings.ToUpper(strings.TrimSpace(l.State))
	if l.State == "" {
		l.State = StateFromLocation(l.Location)
	}
	if pt, ok := ParsePropertyType(string(l.PropertyType)); ok {
		l.PropertyType = pt
	}
	return l
}

// Validate checks the listing's fields. ID is not checked; callers that require an
// assigned id check it themselves.
func (l Listing) Validate() error {
	switch {
	case strings.TrimSpace(l.Title) == "":
		return invalid("title is required")
	case strings.TrimSpace(l.Description) == "":
		return invalid("description is required")
	case strings.TrimSpace(l.Location) == "":
		return invalid("location is required")
	case !finiteNonNeg(l.Price):
		return invalid("price must be a non-negative number")
	case !l.PropertyType.Valid():
		return invalid(fmt.Sprintf("unknown property type %q", l.PropertyType))
	case l.Bedrooms < 0 || l.Bathrooms < 0:
		return invalid("bedrooms and bathrooms must be non-negative")
	case !finiteNonNeg(l.Area):
		return invalid("area must be a non-negative number")
	}
	if l.State != "" {
		if _, ok := StateName(l.State); !ok {
			return invalid(fmt.Sprintf("unknown state %q", l.State))
		}
	}
	if l.ImageURL == "" && len(l.Media) == 0 {
		return invalid("imageUrl or media is required")
	}
	for i, m := range l.Media {
		switch m.Type {
		case MediaImage, MediaVideo, Media360:
		default:
			return invalid(fmt.Sprintf("media[%d]: unknown type %q", i, m.Type))
		}
		if strings.TrimSpace(m.URL) == "" {
			return invalid(fmt.Sprintf("media[%d]: url is required", i))
		}
	}
	return nil
}

func finiteNonNeg(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f >= 0
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}
