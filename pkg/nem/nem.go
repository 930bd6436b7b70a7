// Package nem reconciles a year of production against usage under the
// California net energy metering tariffs.
package nem

import (
	"math"

	"github.com/raterudder/solarledger/pkg/types"
)

// NEM3ExportRate is the $/kWh paid for exports under NEM 3.0.
const NEM3ExportRate = 0.05

// CompensationRate returns the $/kWh paid for net exports.
func CompensationRate(v types.NEMVersion, retailRate, exportRate float64) float64 {
	switch v {
	case types.NEM1:
		return retailRate
	case types.NEM2:
		return exportRate
	default:
		return NEM3ExportRate
	}
}

// Impact returns the annual credit for overproduction or the true-up owed for
// a shortfall. Shortfalls are always charged at the retail rate. Production
// exactly equal to usage is a true-up of 0. Connection fees are not included.
func Impact(productionKWH, usageKWH, retailRate float64, v types.NEMVersion, exportRate float64) types.NEMImpact {
	net := productionKWH - usageKWH
	if net > 0 {
		rate := CompensationRate(v, retailRate, exportRate)
		return types.NEMImpact{
			Type:     types.NEMImpactCredit,
			Amount:   net * rate,
			Quantity: net,
			Rate:     rate,
		}
	}
	shortage := math.Abs(net)
	return types.NEMImpact{
		Type:     types.NEMImpactTrueUp,
		Amount:   shortage * retailRate,
		Quantity: shortage,
		Rate:     retailRate,
	}
}
