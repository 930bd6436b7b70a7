package types

// Grade is the letter grade assigned to a system. S is "SuperSolar".
type Grade string

const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// ScoreStatus is the label shown next to a grade.
type ScoreStatus string

const (
	ScoreStatusSuperSolar ScoreStatus = "supersolar"
	ScoreStatusExcellent  ScoreStatus = "excellent"
	ScoreStatusGood       ScoreStatus = "good"
	ScoreStatusFair       ScoreStatus = "fair"
	ScoreStatusPoor       ScoreStatus = "poor"
	ScoreStatusFailing    ScoreStatus = "failing"
)

// ScoreMetrics are the inputs that produced a grade.
type ScoreMetrics struct {
	AnnualUtilityCost        float64 `json:"annualUtilityCost"`
	OnlyPayingConnectionFees bool    `json:"onlyPayingConnectionFees"`
	CumulativeSavings        float64 `json:"cumulativeSavings"`
	SavingsTrendingPositive  bool    `json:"savingsTrendingPositive"`
	AnnualTrueUp             float64 `json:"annualTrueUp"`
	AnnualCredit             float64 `json:"annualCredit"`
}

// ScoreResult is the graded outcome of a projection.
type ScoreResult struct {
	Grade          Grade        `json:"grade"`
	Status         ScoreStatus  `json:"status"`
	Message        string       `json:"message"`
	Recommendation string       `json:"recommendation"`
	Metrics        ScoreMetrics `json:"metrics"`
}

// HealthStatus buckets the ratio of nameplate production to the regional
// expectation for the system size.
type HealthStatus string

const (
	HealthExcellent HealthStatus = "excellent"
	HealthGood      HealthStatus = "good"
	HealthFair      HealthStatus = "fair"
	HealthPoor      HealthStatus = "poor"
)

// SystemHealth compares production against what a system of this size
// typically produces in California.
type SystemHealth struct {
	PerformanceRatio      float64      `json:"performanceRatio"`
	Status                HealthStatus `json:"status"`
	Message               string       `json:"message"`
	ExpectedProductionKWH float64      `json:"expectedProductionKWH"`
}

// Report bundles everything shown for one evaluation of a profile.
type Report struct {
	ID        string            `json:"id"`
	Evaluated YearMonth         `json:"evaluated"`
	Summary   ProjectionSummary `json:"summary"`
	Score     ScoreResult       `json:"score"`
	Health    SystemHealth      `json:"health"`
	// Fallback is set when the projection could not be computed and the
	// placeholder values were substituted.
	Fallback bool `json:"fallback"`
}

// PlaceholderReport is shown instead of a crash when a profile can't be
// projected.
func PlaceholderReport(p InstallationProfile) Report {
	return Report{
		Evaluated: p.Now,
		Summary: ProjectionSummary{
			CurrentNEMImpact: NEMImpact{Type: NEMImpactTrueUp},
			Yearly:           []YearlyRecord{},
		},
		Score: ScoreResult{
			Grade:          GradeC,
			Status:         ScoreStatusFair,
			Message:        "Calculating...",
			Recommendation: "Please wait while we calculate your system score.",
			Metrics: ScoreMetrics{
				SavingsTrendingPositive: true,
			},
		},
		Health: SystemHealth{
			PerformanceRatio:      95,
			Status:                HealthGood,
			Message:               "System performing as expected",
			ExpectedProductionKWH: p.SystemSizeKW * ExpectedKWHPerKW,
		},
		Fallback: true,
	}
}

// ExpectedKWHPerKW is the average annual California production per installed kW.
const ExpectedKWHPerKW = 1400
