// Package score grades a projection and checks system health.
package score

import (
	"github.com/raterudder/solarledger/pkg/types"
)

const (
	// approxConnectionFees is the yearly cost of staying connected to the
	// grid. A system whose owner pays no more than this, plus a 20% buffer,
	// covers the whole bill.
	approxConnectionFees = 120
	connectionFeeBuffer  = 1.2
)

// Input is everything the grade depends on.
type Input struct {
	AnnualUtilityCost float64
	CumulativeSavings float64
	CurrentNEMImpact  types.NEMImpact
	HasBattery        bool
	Program           types.ProgramType
	Yearly            []types.YearlyRecord

	// ProgramName is how the program is named to the homeowner, "Lease" for
	// a leased PPA. Defaults to Program.
	ProgramName string
}

// InputFromSummary builds the score input for a projected profile.
func InputFromSummary(p types.InstallationProfile, s types.ProjectionSummary) Input {
	return Input{
		AnnualUtilityCost: s.CurrentAnnualCost,
		CumulativeSavings: s.CumulativeSavings,
		CurrentNEMImpact:  s.CurrentNEMImpact,
		HasBattery:        p.Battery.Present,
		Program:           p.Financing.Type(),
		ProgramName:       p.Financing.Name(),
		Yearly:            s.Yearly,
	}
}

// trendingPositive compares the last two years of savings. With fewer than
// two years there is no trend and it is assumed positive.
func trendingPositive(yearly []types.YearlyRecord) bool {
	if len(yearly) < 2 {
		return true
	}
	last, prev := yearly[len(yearly)-1], yearly[len(yearly)-2]
	return last.AnnualSavings >= prev.AnnualSavings
}

// Score grades the system. The grades are checked in order S, A, B, C, F, D
// and the first match wins, falling back to C.
func Score(in Input) types.ScoreResult {
	m := types.ScoreMetrics{
		AnnualUtilityCost:        in.AnnualUtilityCost,
		OnlyPayingConnectionFees: in.AnnualUtilityCost <= approxConnectionFees*connectionFeeBuffer,
		CumulativeSavings:        in.CumulativeSavings,
		SavingsTrendingPositive:  trendingPositive(in.Yearly),
		AnnualTrueUp:             in.CurrentNEMImpact.TrueUp(),
		AnnualCredit:             in.CurrentNEMImpact.Credit(),
	}
	saving := m.CumulativeSavings > 0 && m.SavingsTrendingPositive

	r := types.ScoreResult{Metrics: m}
	switch {
	case m.OnlyPayingConnectionFees && saving && m.AnnualCredit > 250:
		r.Grade = types.GradeS
		r.Status = types.ScoreStatusSuperSolar
		r.Message = "SuperSolar Performance! Your system is exceeding expectations."
		r.Recommendation = "No changes needed. Your system is performing amazingly and you have saved boatloads of money! You are earning money and there is room to grow usage!"
		if !in.HasBattery {
			r.Recommendation += " Battery will add backup capabilities."
		}
	case m.OnlyPayingConnectionFees && saving && m.AnnualCredit >= 0 && m.AnnualCredit <= 250:
		r.Grade = types.GradeA
		r.Status = types.ScoreStatusExcellent
		r.Message = "Excellent system performance with strong savings!"
		r.Recommendation = "No changes needed to system, you are earning money and your system has saved you thousands!"
		if !in.HasBattery {
			r.Recommendation += " Battery may improve system savings and add backup capabilities."
		}
	case saving && m.AnnualTrueUp >= 0 && m.AnnualTrueUp <= 500:
		r.Grade = types.GradeB
		r.Status = types.ScoreStatusGood
		r.Message = "Good system performance with solid savings."
		r.Recommendation = "Your system is doing well and you've saved a lot. However, you may want to consider adding extra solar" +
			batteryClause(in.HasBattery, " and a battery may improve system savings while adding backup capabilities") + "."
	case saving && m.AnnualTrueUp > 500 && m.AnnualTrueUp <= 2000:
		r.Grade = types.GradeC
		r.Status = types.ScoreStatusFair
		r.Message = "Fair performance - system working but could be optimized."
		r.Recommendation = "You've saved money with solar, it's better than having no solar! However, your system may need an update. Consider adding more panels" +
			batteryClause(in.HasBattery, " and/or a battery") + " to reduce your annual true-up."
	case m.CumulativeSavings < 100 || m.AnnualTrueUp >= 1000:
		r.Grade = types.GradeF
		r.Status = types.ScoreStatusFailing
		r.Message = "System significantly underperforming - immediate action needed."
		r.Recommendation = "Shoot! We believe in solar and what it can do for people. However there are many variables that can lead to a poor experience for a few systems. You may need a system repair or whole new system. "
		if in.Program == types.ProgramPPA {
			name := in.ProgramName
			if name == "" {
				name = string(in.Program)
			}
			r.Recommendation += "Since you have a " + name + ", reach out to the company who owns the system for repairs or pursue other actions such as buying out the system or consulting with an installation company."
		} else {
			r.Recommendation += "Consult with a repair company or installation company."
		}
	case !m.SavingsTrendingPositive || m.AnnualTrueUp >= 1000:
		r.Grade = types.GradeD
		r.Status = types.ScoreStatusPoor
		r.Message = "Below expectations - system needs attention."
		r.Recommendation = "You've saved money with solar, it's better than having no solar! However, your system may need an update or repair. It is highly recommended you consult a repair firm or add more panels" +
			batteryClause(in.HasBattery, " and a battery") + " to reduce your annual true-up."
	default:
		r.Grade = types.GradeC
		r.Status = types.ScoreStatusFair
		r.Message = "System performance is adequate but could be improved."
		r.Recommendation = "Your system is working, but there's room for improvement. Consider adding more panels" +
			batteryClause(in.HasBattery, " and/or a battery") + " to reduce your annual true-up."
	}
	return r
}

func batteryClause(hasBattery bool, clause string) string {
	if hasBattery {
		return ""
	}
	return clause
}
