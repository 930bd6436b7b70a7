package projection

import (
	"context"
	"log/slog"
	"testing"

	"github.com/raterudder/solarledger/pkg/financing"
	"github.com/raterudder/solarledger/pkg/log"
	"github.com/raterudder/solarledger/pkg/score"
	"github.com/raterudder/solarledger/pkg/types"
	"github.com/raterudder/solarledger/pkg/utility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetDefaultLogLevel(slog.LevelError)
}

// scenarioProfile is an SCE loan customer five years after install.
func scenarioProfile() types.InstallationProfile {
	return types.InstallationProfile{
		Utility:             types.UtilitySCE,
		Installed:           types.YearMonth{Year: 2020, Month: 1},
		Now:                 types.YearMonth{Year: 2025, Month: 1},
		SystemSizeKW:        8,
		AnnualProductionKWH: 12000,
		UsageAtInstallKWH:   10000,
		CurrentUsageKWH:     11500,
		Financing: types.Financing{Program: types.LoanTerms{
			Principal:         24000,
			AnnualRatePercent: 5.99,
			TermYears:         20,
		}},
		NEM: types.NEMSettings{Version: types.NEM2, ExportRate: 0.07},
	}
}

func TestProjectScenario(t *testing.T) {
	ctx := context.Background()
	p := scenarioProfile()

	s, err := Project(ctx, p)
	require.NoError(t, err)
	require.NoError(t, s.CheckFinite())

	payment := financing.MonthlyPayment(24000, 5.99, 240)
	assert.Equal(t, 60, s.MonthsSinceInstall)
	assert.Equal(t, 5.0, s.YearsSinceInstall)
	assert.Greater(t, s.CumulativeSavings, 0.0)
	assert.Equal(t, payment, s.PaymentStructure.InitialPayment)
	assert.Equal(t, payment, s.PaymentStructure.ReducedPayment)
	assert.InDelta(t, 7200, s.TaxCredit, 1e-9)
	assert.Equal(t, 24000.0, s.TotalInvestment)

	// an exact anniversary replays the final year in full
	require.Len(t, s.Yearly, 6)
	assert.Equal(t, 2020, s.Yearly[0].Year)
	assert.Equal(t, 2025, s.Yearly[5].Year)
	assert.InDelta(t, payment*72, s.CumulativeCost, 1e-6)
	assert.InDelta(t, 12*72, s.CumulativeConnectionFees, 1e-9)
	for _, y := range s.Yearly {
		assert.InDelta(t, payment*12, y.SolarCost, 1e-9, "year %d", y.Year)
		assert.Equal(t, 144.0, y.ConnectionFees)
	}

	// the kept tax credit is the only difference between the series and
	// the total
	assert.InDelta(t, s.Yearly[5].CumulativeSavings+7200, s.CumulativeSavings, 1e-6)

	assert.Equal(t, utility.MustRate(types.UtilitySCE, 2020, false), s.InitialUtilityRate)
	assert.Equal(t, utility.MustRate(types.UtilitySCE, 2025, false), s.CurrentUtilityRate)
	assert.InDelta(t, 2.8347, s.UsageGrowthRatePercent, 1e-3)
	assert.InDelta(t, 11500, s.Yearly[5].ProjectedUsageKWH, 1e-6)

	assert.Equal(t, types.NEMImpactCredit, s.CurrentNEMImpact.Type)
	assert.InDelta(t, (payment+12)*12, s.CurrentAnnualCost, 1e-9)
	assert.InDelta(t, s.TotalInvestment/(s.CumulativeSavings/5), s.PaybackYears, 1e-9)
	assert.InDelta(t, s.CumulativeSavings/24000*100, s.ROIPercent, 1e-9)

	r := score.Score(score.InputFromSummary(p, s))
	assert.Contains(t, []types.Grade{types.GradeB, types.GradeC}, r.Grade)
}

func TestProjectPartialYear(t *testing.T) {
	p := scenarioProfile()
	p.Now = types.YearMonth{Year: 2025, Month: 6}

	s, err := Project(context.Background(), p)
	require.NoError(t, err)

	payment := financing.MonthlyPayment(24000, 5.99, 240)
	assert.Equal(t, 65, s.MonthsSinceInstall)
	require.Len(t, s.Yearly, 5)
	assert.Equal(t, 2024, s.Yearly[4].Year)
	assert.InDelta(t, payment*65, s.CumulativeCost, 1e-6)
	assert.Greater(t, s.CumulativeSavings-7200, s.Yearly[4].CumulativeSavings)
}

func TestProjectIdempotent(t *testing.T) {
	ctx := context.Background()
	p := scenarioProfile()
	p.Battery = types.BatterySettings{Present: true, CapacityKWH: 13.5, EfficiencyPercent: 90, MonthlyPayment: 150, UseTOU: true}

	a, err := Project(ctx, p)
	require.NoError(t, err)
	b, err := Project(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestProjectTaxCreditApplied(t *testing.T) {
	p := scenarioProfile()
	loan := p.Financing.Program.(types.LoanTerms)
	loan.TaxCreditApplied = true
	p.Financing.Program = loan

	s, err := Project(context.Background(), p)
	require.NoError(t, err)

	initial := financing.MonthlyPayment(24000, 5.99, 240)
	reduced := financing.MonthlyPayment(16800, 5.99, 222)
	assert.InDelta(t, initial*18+reduced*54, s.CumulativeCost, 1e-6)
	assert.InDelta(t, initial*12, s.Yearly[0].SolarCost, 1e-9)
	assert.InDelta(t, initial*6+reduced*6, s.Yearly[1].SolarCost, 1e-9)
	assert.InDelta(t, reduced*12, s.Yearly[2].SolarCost, 1e-9)
	// the credit went to the lender
	assert.InDelta(t, s.Yearly[5].CumulativeSavings, s.CumulativeSavings, 1e-6)
	assert.True(t, s.PaymentStructure.CreditAppliedToPrincipal)
}

func TestProjectLoanPaidOff(t *testing.T) {
	p := scenarioProfile()
	loan := p.Financing.Program.(types.LoanTerms)
	loan.PaidOff = true
	loan.PaidOffYear = 2023
	p.Financing.Program = loan

	s, err := Project(context.Background(), p)
	require.NoError(t, err)

	payment := financing.MonthlyPayment(24000, 5.99, 240)
	payoff := financing.RemainingPrincipal(24000, 5.99, 240, 36)
	assert.InDelta(t, payoff, s.PayoffCost, 1e-9)
	assert.InDelta(t, payment*36+payoff, s.CumulativeCost, 1e-6)
	assert.Equal(t, 0.0, s.Yearly[3].SolarCost)
	assert.InDelta(t, 144, s.CurrentAnnualCost, 1e-9)
}

func TestProjectCash(t *testing.T) {
	p := scenarioProfile()
	p.Now = types.YearMonth{Year: 2023, Month: 1}
	p.Financing = types.Financing{Program: types.CashTerms{NetCost: 16800}}
	p.NEM = types.NEMSettings{Version: types.NEM1}

	s, err := Project(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, 0.0, s.CumulativeCost)
	assert.Equal(t, 0.0, s.CumulativeConnectionFees)
	assert.Equal(t, 16800.0, s.TotalInvestment)
	require.Len(t, s.Yearly, 4)
	assert.InDelta(t, s.Yearly[3].CumulativeSavings+7200, s.CumulativeSavings, 1e-6)
	assert.Equal(t, types.PaymentStructure{}, s.PaymentStructure)
}

func TestProjectPPA(t *testing.T) {
	p := scenarioProfile()
	p.Financing = types.Financing{Program: types.PPATerms{InitialRate: 0.12, EscalatorPercent: 2.9}}

	s, err := Project(context.Background(), p)
	require.NoError(t, err)

	sched, err := financing.New(p)
	require.NoError(t, err)
	assert.InDelta(t, sched.TotalInvestment(), s.TotalInvestment, 1e-6)
	assert.InDelta(t, 1440, s.Yearly[0].SolarCost, 1e-9)
	assert.Greater(t, s.Yearly[1].SolarCost, s.Yearly[0].SolarCost)
	assert.Equal(t, 0.0, s.TaxCredit)
}

func TestProjectBattery(t *testing.T) {
	p := scenarioProfile()
	p.Battery = types.BatterySettings{Present: true, CapacityKWH: 13.5, EfficiencyPercent: 90, MonthlyPayment: 150, UseTOU: true}

	s, err := Project(context.Background(), p)
	require.NoError(t, err)

	arbitrage := 13.5 * 0.9 * (0.55 - 0.27) * 365
	assert.InDelta(t, arbitrage/12*72, s.CumulativeArbitrageSavings, 1e-6)
	assert.InDelta(t, 150*72, s.CumulativeBatteryCost, 1e-9)
	assert.Equal(t, 24000.0+18000, s.TotalInvestment)
	assert.InDelta(t, arbitrage, s.Yearly[0].ArbitrageSavings, 1e-9)
	assert.Equal(t, 1800.0, s.Yearly[0].BatteryCost)
}

func TestProjectNowIsInstall(t *testing.T) {
	p := scenarioProfile()
	p.Now = p.Installed

	s, err := Project(context.Background(), p)
	require.NoError(t, err)
	require.NoError(t, s.CheckFinite())
	assert.Equal(t, 0, s.MonthsSinceInstall)
	assert.Equal(t, 0.0, s.UsageGrowthRatePercent)
	assert.Equal(t, 0.0, s.AvgMonthlySavings)
	// savings over 0 years is infinite, so payback shows 0 years
	assert.Equal(t, 0.0, s.PaybackYears)
	assert.Len(t, s.Yearly, 1)
	assert.Equal(t, 12000.0, s.CurrentProductionKWH)
}

func TestProjectDegenerate(t *testing.T) {
	p := scenarioProfile()
	p.UsageAtInstallKWH = 0

	s, err := Project(context.Background(), p)
	require.NoError(t, err)
	assert.Error(t, s.CheckFinite())
}

func TestProjectInvalid(t *testing.T) {
	p := scenarioProfile()
	p.Utility = "LADWP"
	_, err := Project(context.Background(), p)
	assert.ErrorIs(t, err, types.ErrUnknownUtility)

	p = scenarioProfile()
	p.Financing = types.Financing{}
	_, err = Project(context.Background(), p)
	assert.ErrorIs(t, err, types.ErrUnknownProgram)
}
