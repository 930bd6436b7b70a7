// Package solar models how production and household usage change after a
// system is installed.
package solar

import "math"

// DegradationRate is the fraction of output panels lose every year.
const DegradationRate = 0.0055

// Degrade returns the annual production after yearsElapsed years of panel
// degradation. yearsElapsed may be fractional.
func Degrade(baseKWH, yearsElapsed float64) float64 {
	if yearsElapsed == 0 {
		return baseKWH
	}
	return baseKWH * math.Pow(1-DegradationRate, yearsElapsed)
}

// ImpliedGrowthRate returns the compound annual usage growth that turns
// usageAtInstall into usageNow over yearsElapsed. It is 0 when no time has
// elapsed. A non-positive usageAtInstall produces NaN or Inf.
func ImpliedGrowthRate(usageAtInstall, usageNow, yearsElapsed float64) float64 {
	if yearsElapsed == 0 {
		return 0
	}
	return math.Pow(usageNow/usageAtInstall, 1/yearsElapsed) - 1
}

// ProjectedUsage returns the annual usage yearOffset years after install.
func ProjectedUsage(usageAtInstall, growthRate, yearOffset float64) float64 {
	return usageAtInstall * math.Pow(1+growthRate, yearOffset)
}
