// Package battery estimates savings from shifting stored energy between
// time-of-use periods.
package battery

import (
	"github.com/raterudder/solarledger/pkg/types"
	"github.com/raterudder/solarledger/pkg/utility"
)

const (
	cyclesPerDay = 1
	daysPerYear  = 365
)

// ArbitrageSavings returns the annual savings from charging off-peak and
// discharging on-peak once a day. It is 0 unless the battery is present and
// the household is on a TOU plan.
func ArbitrageSavings(b types.BatterySettings, u types.UtilityID) (float64, error) {
	if !b.Present || !b.UseTOU {
		return 0, nil
	}
	tou, err := utility.TOU(u)
	if err != nil {
		return 0, err
	}
	usable := b.CapacityKWH * (b.EfficiencyPercent / 100)
	daily := usable * (tou.Peak - tou.OffPeak)
	return daily * cyclesPerDay * daysPerYear, nil
}

// MonthlyCost returns the battery payment for a month, 0 without a battery.
func MonthlyCost(b types.BatterySettings) float64 {
	if !b.Present {
		return 0
	}
	return b.MonthlyPayment
}

// ScheduledTotal is the battery's contribution to total investment, ten
// years of payments.
func ScheduledTotal(b types.BatterySettings) float64 {
	if !b.Present || b.MonthlyPayment <= 0 {
		return 0
	}
	return b.MonthlyPayment * 12 * 10
}
