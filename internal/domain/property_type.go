package domain

import "strings"

type PropertyType string

const (
	Residential PropertyType = "Residential"
	Commercial  PropertyType = "Commercial"
	Villa       PropertyType = "Villa"
	Plot        PropertyType = "Plot"
	Building    PropertyType = "Building"
	Shop        PropertyType = "Shop"
)

// propertyTypes is the single source of truth for the asset classes: ROI table keys,
// listing validation and the dropdown options are all derived from it.
var propertyTypes = []PropertyType{Residential, Commercial, Villa, Plot, Building, Shop}

// PropertyTypes returns the known types in display order.
func PropertyTypes() []PropertyType {
	out := make([]PropertyType, len(propertyTypes))
	copy(out, propertyTypes)
	return out
}

// ParsePropertyType canonicalises s ("villa" -> Villa). ok is false for unknown types.
func ParsePropertyType(s string) (PropertyType, bool) {
	s = strings.TrimSpace(s)
	for _, pt := range propertyTypes {
		if strings.EqualFold(s, string(pt)) {
			return pt, true
		}
	}
	return "", false
}

// Valid reports whether pt is one of the canonical types (exact spelling).
func (pt PropertyType) Valid() bool {
	for _, p := range propertyTypes {
		if p == pt {
			return true
		}
	}
	return false
}
