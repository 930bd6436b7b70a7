package utility

import (
	"fmt"
	"math"

	"github.com/raterudder/solarledger/pkg/types"
)

// ErrUnknownUtility is returned for a utility without a rate table.
var ErrUnknownUtility = types.ErrUnknownUtility

// CAREDiscount is the fraction taken off every rate for CARE customers.
const CAREDiscount = 0.30

// tabulatedRate is a published average residential rate.
type tabulatedRate struct {
	year int
	rate float64
}

// rateTables holds each utility's average residential $/kWh by year. Years
// are contiguous and ascending.
var rateTables = map[types.UtilityID][]tabulatedRate{
	types.UtilityPGE: {
		{2014, 0.189}, {2015, 0.191}, {2016, 0.199}, {2017, 0.216}, {2018, 0.229},
		{2019, 0.245}, {2020, 0.263}, {2021, 0.285}, {2022, 0.329}, {2023, 0.375},
		{2024, 0.420}, {2025, 0.480}, {2026, 0.495},
	},
	types.UtilitySCE: {
		{2014, 0.172}, {2015, 0.171}, {2016, 0.177}, {2017, 0.188}, {2018, 0.198},
		{2019, 0.213}, {2020, 0.226}, {2021, 0.248}, {2022, 0.284}, {2023, 0.303},
		{2024, 0.316}, {2025, 0.314}, {2026, 0.341},
	},
	types.UtilitySDGE: {
		{2014, 0.232}, {2015, 0.235}, {2016, 0.249}, {2017, 0.265}, {2018, 0.285},
		{2019, 0.315}, {2020, 0.265}, {2021, 0.340}, {2022, 0.420}, {2023, 0.440},
		{2024, 0.450}, {2025, 0.490}, {2026, 0.51},
	},
}

func table(u types.UtilityID) ([]tabulatedRate, error) {
	t, ok := rateTables[u]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUtility, u)
	}
	return t, nil
}

// TableYears returns the first and last year with a published rate.
func TableYears(u types.UtilityID) (first, last int, err error) {
	t, err := table(u)
	if err != nil {
		return 0, 0, err
	}
	return t[0].year, t[len(t)-1].year, nil
}

// Rate returns the $/kWh for the given year. Years before the table use the
// first rate, years after it compound the growth between the last two
// published years and years in between are linearly interpolated. The CARE
// discount is applied last.
func Rate(u types.UtilityID, year float64, care bool) (float64, error) {
	t, err := table(u)
	if err != nil {
		return 0, err
	}
	rate := resolve(t, year)
	if care {
		rate *= 1 - CAREDiscount
	}
	return rate, nil
}

// MustRate is like Rate but panics on an unknown utility. The profile must
// already be validated.
func MustRate(u types.UtilityID, year float64, care bool) float64 {
	r, err := Rate(u, year, care)
	if err != nil {
		panic(err)
	}
	return r
}

func resolve(t []tabulatedRate, year float64) float64 {
	first, last := t[0], t[len(t)-1]
	switch {
	case year <= float64(first.year):
		return first.rate
	case year >= float64(last.year):
		prev := t[len(t)-2]
		avgIncrease := (last.rate - prev.rate) / prev.rate
		return last.rate * math.Pow(1+avgIncrease, year-float64(last.year))
	}
	for i := 0; i < len(t)-1; i++ {
		lower, upper := t[i], t[i+1]
		if float64(lower.year) <= year && float64(upper.year) > year {
			ratio := (year - float64(lower.year)) / float64(upper.year-lower.year)
			return lower.rate + (upper.rate-lower.rate)*ratio
		}
	}
	// unreachable with a contiguous table
	return last.rate
}

// RatesBetween resolves the rate for every year in [from, to].
func RatesBetween(u types.UtilityID, from, to int, care bool) ([]types.UtilityRateInYear, error) {
	t, err := table(u)
	if err != nil {
		return nil, err
	}
	if to < from {
		return nil, fmt.Errorf("invalid year range: %d > %d", from, to)
	}
	out := make([]types.UtilityRateInYear, 0, to-from+1)
	for y := from; y <= to; y++ {
		rate := resolve(t, float64(y))
		if care {
			rate *= 1 - CAREDiscount
		}
		out = append(out, types.UtilityRateInYear{
			Year:          y,
			DollarsPerKWH: rate,
			Tabulated:     y >= t[0].year && y <= t[len(t)-1].year,
		})
	}
	return out, nil
}
