package types

import (
	"fmt"
	"math"
)

// NEMImpactType is the outcome of a year's net metering reconciliation.
type NEMImpactType string

const (
	// NEMImpactCredit means production exceeded usage and the excess is compensated.
	NEMImpactCredit NEMImpactType = "credit"
	// NEMImpactTrueUp means usage met or exceeded production and the shortfall is owed.
	NEMImpactTrueUp NEMImpactType = "trueup"
)

// NEMImpact is the annual net metering result.
type NEMImpact struct {
	Type   NEMImpactType `json:"type"`
	Amount float64       `json:"amount"` // always >= 0
	// Quantity is the net production (credit) or shortage (true-up) in kWh.
	Quantity float64 `json:"quantity"`
	// Rate is the $/kWh the quantity was valued at.
	Rate float64 `json:"rate"`
}

// Signed returns the amount as positive for a credit and negative for a true-up.
func (n NEMImpact) Signed() float64 {
	if n.Type == NEMImpactCredit {
		return n.Amount
	}
	return -n.Amount
}

// Credit returns the amount if this is a credit, otherwise 0.
func (n NEMImpact) Credit() float64 {
	if n.Type == NEMImpactCredit {
		return n.Amount
	}
	return 0
}

// TrueUp returns the amount if this is a true-up, otherwise 0.
func (n NEMImpact) TrueUp() float64 {
	if n.Type == NEMImpactTrueUp {
		return n.Amount
	}
	return 0
}

// YearlyRecord is one full calendar year of the projection. All dollar
// figures are annual totals.
type YearlyRecord struct {
	Year              int     `json:"year"`
	UtilityRate       float64 `json:"utilityRate"`
	ProjectedUsageKWH float64 `json:"projectedUsageKWH"`
	ProductionKWH     float64 `json:"productionKWH"`
	UtilityCost       float64 `json:"utilityCost"` // what the utility would have billed without solar
	SolarCost         float64 `json:"solarCost"`
	BatteryCost       float64 `json:"batteryCost"`
	ConnectionFees    float64 `json:"connectionFees"`
	ArbitrageSavings  float64 `json:"arbitrageSavings"`
	NEMImpact         float64 `json:"nemImpact"`        // credit positive, true-up negative
	NetProductionKWH  float64 `json:"netProductionKWH"` // net production or shortage magnitude
	AnnualSavings     float64 `json:"annualSavings"`
	CumulativeSavings float64 `json:"cumulativeSavings"`
}

// PaymentStructure describes how a loan payment changes over its life.
type PaymentStructure struct {
	InitialPayment float64 `json:"initialPayment"`
	// ReducedPayment is the payment after the tax credit is paid into the
	// principal. It equals InitialPayment when the credit isn't applied.
	ReducedPayment           float64 `json:"reducedPayment"`
	MonthsBeforeCredit       int     `json:"monthsBeforeCredit"`
	CreditAppliedToPrincipal bool    `json:"creditAppliedToPrincipal"`
}

// ProjectionSummary is the result of projecting an InstallationProfile from
// install through now.
type ProjectionSummary struct {
	MonthsSinceInstall int     `json:"monthsSinceInstall"`
	YearsSinceInstall  float64 `json:"yearsSinceInstall"`

	CumulativeSavings          float64 `json:"cumulativeSavings"`
	CumulativeCost             float64 `json:"cumulativeCost"`
	CumulativeBatteryCost      float64 `json:"cumulativeBatteryCost"`
	CumulativeArbitrageSavings float64 `json:"cumulativeArbitrageSavings"`
	CumulativeNEMCredits       float64 `json:"cumulativeNEMCredits"`
	CumulativeTrueUpCharges    float64 `json:"cumulativeTrueUpCharges"`
	CumulativeConnectionFees   float64 `json:"cumulativeConnectionFees"`
	PayoffCost                 float64 `json:"payoffCost"` // loan payoff or PPA buyout lump sum
	AvgMonthlySavings          float64 `json:"avgMonthlySavings"`

	InitialUtilityRate         float64 `json:"initialUtilityRate"`
	CurrentUtilityRate         float64 `json:"currentUtilityRate"`
	RateIncreasePercent        float64 `json:"rateIncreasePercent"`
	UtilityBillAtInstall       float64 `json:"utilityBillAtInstall"` // monthly
	UtilityBillNow             float64 `json:"utilityBillNow"`       // monthly
	UtilityBillIncreasePercent float64 `json:"utilityBillIncreasePercent"`
	UsageGrowthRatePercent     float64 `json:"usageGrowthRatePercent"`

	CurrentProductionKWH float64 `json:"currentProductionKWH"`
	OffsetPercent        float64 `json:"offsetPercent"`

	TotalInvestment   float64 `json:"totalInvestment"`
	TaxCredit         float64 `json:"taxCredit"`
	PaybackYears      float64 `json:"paybackYears"`
	PaybackMonths     float64 `json:"paybackMonths"`
	ROIPercent        float64 `json:"roiPercent"`
	CurrentAnnualCost float64 `json:"currentAnnualCost"`

	CurrentNEMImpact NEMImpact        `json:"currentNEMImpact"`
	PaymentStructure PaymentStructure `json:"paymentStructure"`

	Yearly []YearlyRecord `json:"yearly"`
}

// CheckFinite returns an error naming the first figure that is NaN or
// infinite.
func (s ProjectionSummary) CheckFinite() error {
	figures := []struct {
		name string
		v    float64
	}{
		{"yearsSinceInstall", s.YearsSinceInstall},
		{"cumulativeSavings", s.CumulativeSavings},
		{"cumulativeCost", s.CumulativeCost},
		{"cumulativeBatteryCost", s.CumulativeBatteryCost},
		{"cumulativeArbitrageSavings", s.CumulativeArbitrageSavings},
		{"cumulativeNEMCredits", s.CumulativeNEMCredits},
		{"cumulativeTrueUpCharges", s.CumulativeTrueUpCharges},
		{"cumulativeConnectionFees", s.CumulativeConnectionFees},
		{"payoffCost", s.PayoffCost},
		{"avgMonthlySavings", s.AvgMonthlySavings},
		{"initialUtilityRate", s.InitialUtilityRate},
		{"currentUtilityRate", s.CurrentUtilityRate},
		{"rateIncreasePercent", s.RateIncreasePercent},
		{"utilityBillAtInstall", s.UtilityBillAtInstall},
		{"utilityBillNow", s.UtilityBillNow},
		{"utilityBillIncreasePercent", s.UtilityBillIncreasePercent},
		{"usageGrowthRatePercent", s.UsageGrowthRatePercent},
		{"currentProductionKWH", s.CurrentProductionKWH},
		{"offsetPercent", s.OffsetPercent},
		{"totalInvestment", s.TotalInvestment},
		{"taxCredit", s.TaxCredit},
		{"paybackYears", s.PaybackYears},
		{"paybackMonths", s.PaybackMonths},
		{"roiPercent", s.ROIPercent},
		{"currentAnnualCost", s.CurrentAnnualCost},
		{"currentNEMImpact.amount", s.CurrentNEMImpact.Amount},
		{"currentNEMImpact.quantity", s.CurrentNEMImpact.Quantity},
		{"currentNEMImpact.rate", s.CurrentNEMImpact.Rate},
		{"paymentStructure.initialPayment", s.PaymentStructure.InitialPayment},
		{"paymentStructure.reducedPayment", s.PaymentStructure.ReducedPayment},
	}
	for _, f := range figures {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s is not finite: %v", f.name, f.v)
		}
	}
	for _, y := range s.Yearly {
		for _, v := range []float64{
			y.UtilityRate, y.ProjectedUsageKWH, y.ProductionKWH, y.UtilityCost,
			y.SolarCost, y.BatteryCost, y.ConnectionFees, y.ArbitrageSavings,
			y.NEMImpact, y.NetProductionKWH, y.AnnualSavings, y.CumulativeSavings,
		} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("record for %d is not finite: %v", y.Year, v)
			}
		}
	}
	return nil
}
