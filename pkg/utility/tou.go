package utility

import (
	"fmt"
	"time"

	"github.com/raterudder/solarledger/pkg/types"
)

var touRates = map[types.UtilityID]types.TOURates{
	types.UtilitySCE:  {Peak: 0.55, OffPeak: 0.27, SuperOffPeak: 0.24},
	types.UtilityPGE:  {Peak: 0.58, OffPeak: 0.30, SuperOffPeak: 0.26},
	types.UtilitySDGE: {Peak: 0.73, OffPeak: 0.45, SuperOffPeak: 0.32},
}

var weekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
}

// touPeriods are checked in order, anything unmatched is off-peak.
var touPeriods = []types.TOUPeriod{
	{Name: types.TOUPeak, HourStart: 16, HourEnd: 21},
	{Name: types.TOUSuperOffPeak, HourStart: 8, HourEnd: 16, DaysOfTheWeek: weekdays},
}

// TOU returns the utility's time-of-use rates.
func TOU(u types.UtilityID) (types.TOURates, error) {
	r, ok := touRates[u]
	if !ok {
		return types.TOURates{}, fmt.Errorf("%w: %q", ErrUnknownUtility, u)
	}
	return r, nil
}

// PeriodAt returns the TOU period containing t.
func PeriodAt(t time.Time) types.TOUPeriodName {
	t = t.In(ptLocation)
	for _, p := range touPeriods {
		if p.Contains(t) {
			return p.Name
		}
	}
	return types.TOUOffPeak
}

// PriceAt returns the TOU price for the hour containing t.
func PriceAt(u types.UtilityID, t time.Time) (types.Price, error) {
	rates, err := TOU(u)
	if err != nil {
		return types.Price{}, err
	}
	t = t.In(ptLocation)
	start := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, ptLocation)

	p := types.Price{
		Utility: u,
		Period:  PeriodAt(start),
		TSStart: start,
		TSEnd:   start.Add(time.Hour),
	}
	switch p.Period {
	case types.TOUPeak:
		p.DollarsPerKWH = rates.Peak
	case types.TOUSuperOffPeak:
		p.DollarsPerKWH = rates.SuperOffPeak
	default:
		p.DollarsPerKWH = rates.OffPeak
	}
	return p, nil
}

// PricesBetween returns the hourly prices fully contained in [start, end).
func PricesBetween(u types.UtilityID, start, end time.Time) ([]types.Price, error) {
	var prices []types.Price

	current := start.Truncate(time.Hour)
	for current.Before(end) {
		p, err := PriceAt(u, current)
		if err != nil {
			return nil, err
		}
		if !p.TSStart.Before(start) && !p.TSEnd.After(end) {
			prices = append(prices, p)
		}
		current = current.Add(time.Hour)
	}

	return prices, nil
}

// PricesOnDay returns the hourly prices for the Pacific calendar day
// containing t. DST days have 23 or 25 entries.
func PricesOnDay(u types.UtilityID, t time.Time) ([]types.Price, error) {
	t = t.In(ptLocation)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, ptLocation)
	return PricesBetween(u, start, start.AddDate(0, 0, 1))
}
