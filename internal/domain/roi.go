package domain

import (
	"fmt"
	"math"
)

// ROIConfig is the min/max return band for one asset class, in percentage points.
type ROIConfig struct {
	PropertyType     PropertyType `json:"propertyType"`
	RoiPercentageMin float64      `json:"roiPercentageMin"`
	RoiPercentageMax float64      `json:"roiPercentageMax"`
	ImageURL         string       `json:"imageUrl"`
	DisclaimerText   string       `json:"disclaimerText"`
}

func (c ROIConfig) Validate() error {
	if !c.PropertyType.Valid() {
		return invalid(fmt.Sprintf("roi config: unknown property type %q", c.PropertyType))
	}
	lo, hi := c.RoiPercentageMin, c.RoiPercentageMax
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return invalid(fmt.Sprintf("roi config %s: band must be finite", c.PropertyType))
	}
	if lo < 0 || lo > hi {
		return invalid(fmt.Sprintf("roi config %s: need 0 <= min <= max, got %v..%v", c.PropertyType, lo, hi))
	}
	return nil
}

// ROITable indexes ROI configs by property type. Build it with NewROITable.
type ROITable struct {
	byType map[PropertyType]ROIConfig
}

// NewROITable validates every config and rejects duplicate property types.
func NewROITable(cfgs []ROIConfig) (ROITable, error) {
	t := ROITable{byType: make(map[PropertyType]ROIConfig, len(cfgs))}
	for _, c := range cfgs {
		if err := c.Validate(); err != nil {
			return ROITable{}, err
		}
		if _, dup := t.byType[c.PropertyType]; dup {
			return ROITable{}, invalid(fmt.Sprintf("duplicate roi config for %s", c.PropertyType))
		}
		t.byType[c.PropertyType] = c
	}
	return t, nil
}

func (t ROITable) Lookup(pt PropertyType) (ROIConfig, bool) {
	c, ok := t.byType[pt]
	return c, ok
}

// Configs returns the table in PropertyTypes() order.
func (t ROITable) Configs() []ROIConfig {
	out := make([]ROIConfig, 0, len(t.byType))
	for _, pt := range propertyTypes {
		if c, ok := t.byType[pt]; ok {
			out = append(out, c)
		}
	}
	return out
}

// ROIResult is the projected compounded return for one estimate.
type ROIResult struct {
	InvestmentAmount     float64      `json:"investmentAmount"`
	Years                int          `json:"years"`
	PropertyType         PropertyType `json:"propertyType"`
	RoiPercentageMin     float64      `json:"roiPercentageMin"`
	RoiPercentageMax     float64      `json:"roiPercentageMax"`
	AvgRoiPercentage     float64      `json:"avgRoiPercentage"`
	EstimatedTotalReturn float64      `json:"estimatedTotalReturn"`
	EstimatedProfit      float64      `json:"estimatedProfit"`
	DisclaimerText       string       `json:"disclaimerText,omitempty"`
}
