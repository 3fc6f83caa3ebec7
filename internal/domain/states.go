package domain

import (
	"sort"
	"strings"
)

var usStates = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"DC": "District of Columbia", "FL": "Florida", "GA": "Georgia", "HI": "Hawaii",
	"ID": "Idaho", "IL": "Illinois", "IN": "Indiana", "IA": "Iowa",
	"KS": "Kansas", "KY": "Kentucky", "LA": "Louisiana", "ME": "Maine",
	"MD": "Maryland", "MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota",
	"MS": "Mississippi", "MO": "Missouri", "MT": "Montana", "NE": "Nebraska",
	"NV": "Nevada", "NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico",
	"NY": "New York", "NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio",
	"OK": "Oklahoma", "OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island",
	"SC": "South Carolina", "SD": "South Dakota", "TN": "Tennessee", "TX": "Texas",
	"UT": "Utah", "VT": "Vermont", "VA": "Virginia", "WA": "Washington",
	"WV": "West Virginia", "WI": "Wisconsin", "WY": "Wyoming",
}

// StateName returns the full name for a 2-letter code.
func StateName(code string) (string, bool) {
	n, ok := usStates[strings.ToUpper(code)]
	return n, ok
}

// StateCodes returns every known code, sorted.
func StateCodes() []string {
	out := make([]string, 0, len(usStates))
	for c := range usStates {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// IsStateCodeShape reports whether s is two ASCII letters. It says nothing about
// whether the code is a real state.
func IsStateCodeShape(s string) bool {
	if len(s) != 2 {
		return false
	}
	for i := 0; i < 2; i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}

// StateFromLocation extracts "AZ" from "Scottsdale, AZ". Returns "" when the suffix is not
// a known state code.
func StateFromLocation(location string) string {
	i := strings.LastIndex(location, ",")
	if i < 0 {
		return ""
	}
	code := strings.ToUpper(strings.TrimSpace(location[i+1:]))
	if _, ok := usStates[code]; !ok {
		return ""
	}
	return code
}
