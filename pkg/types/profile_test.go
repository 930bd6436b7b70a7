package types

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearMonth(t *testing.T) {
	install := YearMonth{Year: 2020, Month: 1}
	assert.Equal(t, 60, install.MonthsUntil(YearMonth{Year: 2025, Month: 1}))
	assert.Equal(t, 65, install.MonthsUntil(YearMonth{Year: 2025, Month: 6}))
	assert.Equal(t, -1, install.MonthsUntil(YearMonth{Year: 2019, Month: 12}))
	assert.Equal(t, "2020-01", install.String())
	assert.Equal(t, YearMonth{Year: 2026, Month: 10}, YearMonthOf(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)))

	ym, err := ParseYearMonth("2023-07")
	require.NoError(t, err)
	assert.Equal(t, YearMonth{Year: 2023, Month: 7}, ym)
	_, err = ParseYearMonth("July 2023")
	assert.Error(t, err)
}

func TestProfileValidate(t *testing.T) {
	base := DefaultProfile(YearMonth{Year: 2025, Month: 1})
	require.NoError(t, base.Validate())

	t.Run("unknown utility", func(t *testing.T) {
		p := base
		p.Utility = "LADWP"
		assert.ErrorIs(t, p.Validate(), ErrUnknownUtility)
	})

	t.Run("unknown nem", func(t *testing.T) {
		p := base
		p.NEM.Version = "NEM4"
		assert.ErrorIs(t, p.Validate(), ErrUnknownNEMVersion)
	})

	t.Run("now before install", func(t *testing.T) {
		p := base
		p.Now = YearMonth{Year: 2019, Month: 1}
		assert.Error(t, p.Validate())
	})

	t.Run("numeric fields are not checked", func(t *testing.T) {
		p := base
		p.UsageAtInstallKWH = 0
		p.NEM.ExportRate = math.NaN()
		assert.NoError(t, p.Validate())
	})
}

func TestSummaryCheckFinite(t *testing.T) {
	s := ProjectionSummary{CumulativeSavings: 100}
	assert.NoError(t, s.CheckFinite())

	s.PaybackYears = math.Inf(1)
	assert.ErrorContains(t, s.CheckFinite(), "paybackYears")

	s = ProjectionSummary{Yearly: []YearlyRecord{{Year: 2021, AnnualSavings: math.NaN()}}}
	assert.ErrorContains(t, s.CheckFinite(), "2021")
}

func TestSummaryRounded(t *testing.T) {
	s := ProjectionSummary{
		CumulativeSavings:  1234.5678,
		CurrentUtilityRate: 0.31449,
		OffsetPercent:      101.5,
		Yearly:             []YearlyRecord{{Year: 2020, AnnualSavings: 1366.4999, NEMImpact: -12.5}},
	}
	r := s.Rounded()
	assert.Equal(t, 1234.57, r.CumulativeSavings)
	assert.Equal(t, 0.314, r.CurrentUtilityRate)
	assert.Equal(t, 102.0, r.OffsetPercent)
	assert.Equal(t, 1366.0, r.Yearly[0].AnnualSavings)
	assert.Equal(t, -13.0, r.Yearly[0].NEMImpact)
	// the receiver is untouched
	assert.Equal(t, 1234.5678, s.CumulativeSavings)
	assert.Equal(t, "1234.57", FormatDollars(s.CumulativeSavings))
}
