package app

import (
	"fmt"
	"math"

	"propshare/internal/domain"
)

var (
	ErrNoSuchAssetClass = fmt.Errorf("no such asset class: %w", domain.ErrNotFound)
	ErrInvalidAmount    = fmt.Errorf("invalid amount: %w", domain.ErrInvalidInput)
	ErrInvalidDuration  = fmt.Errorf("invalid duration: %w", domain.ErrInvalidInput)
	ErrEstimateOverflow = fmt.Errorf("estimate out of range: %w", domain.ErrInvalidInput)
)

// EstimateROI projects investmentAmount over years of annual compounding at the midpoint
// of the property type's ROI band. years = 0 is the identity case.
func EstimateROI(table domain.ROITable, propertyType string, investmentAmount float64, years int) (domain.ROIResult, error) {
	if math.IsNaN(investmentAmount) || math.IsInf(investmentAmount, 0) || investmentAmount < 0 {
		return domain.ROIResult{}, fmt.Errorf("%w: %v", ErrInvalidAmount, investmentAmount)
	}
	if years < 0 {
		return domain.ROIResult{}, fmt.Errorf("%w: %d years", ErrInvalidDuration, years)
	}
	pt, ok := domain.ParsePropertyType(propertyType)
	if !ok {
		return domain.ROIResult{}, fmt.Errorf("%w: %q", ErrNoSuchAssetClass, propertyType)
	}
	cfg, ok := table.Lookup(pt)
	if !ok {
		return domain.ROIResult{}, fmt.Errorf("%w: %q", ErrNoSuchAssetClass, propertyType)
	}

	avg := (cfg.RoiPercentageMin + cfg.RoiPercentageMax) / 2
	var total float64
	if investmentAmount != 0 {
		total = investmentAmount * math.Pow(1+avg/100, float64(years))
	}
	if math.IsInf(total, 0) || math.IsNaN(total) {
		return domain.ROIResult{}, fmt.Errorf("%w: %v over %d years", ErrEstimateOverflow, investmentAmount, years)
	}

	return domain.ROIResult{
		InvestmentAmount:     investmentAmount,
		Years:                years,
		PropertyType:         pt,
		RoiPercentageMin:     cfg.RoiPercentageMin,
		RoiPercentageMax:     cfg.RoiPercentageMax,
		AvgRoiPercentage:     avg,
		EstimatedTotalReturn: total,
		EstimatedProfit:      total - investmentAmount,
		DisclaimerText:       cfg.DisclaimerText,
	}, nil
}
