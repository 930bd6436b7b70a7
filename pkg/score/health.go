package score

import "github.com/raterudder/solarledger/pkg/types"

// Health thresholds on the performance ratio, in percent.
const (
	healthExcellent = 95
	healthGood      = 85
	healthFair      = 70
)

// Health compares nameplate production with the California average for a
// system of the profile's size.
func Health(p types.InstallationProfile) types.SystemHealth {
	expected := p.SystemSizeKW * types.ExpectedKWHPerKW
	h := types.SystemHealth{ExpectedProductionKWH: expected}
	if expected > 0 {
		h.PerformanceRatio = p.AnnualProductionKWH / expected * 100
	}
	switch {
	case h.PerformanceRatio >= healthExcellent:
		h.Status = types.HealthExcellent
		h.Message = "System performing above expectations"
	case h.PerformanceRatio >= healthGood:
		h.Status = types.HealthGood
		h.Message = "System performing as expected"
	case h.PerformanceRatio >= healthFair:
		h.Status = types.HealthFair
		h.Message = "System producing below expectations, check for shading or soiling"
	default:
		h.Status = types.HealthPoor
		h.Message = "System significantly underproducing, a repair may be needed"
	}
	return h
}
