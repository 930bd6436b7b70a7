package types

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnknownUtility    = errors.New("unknown utility")
	ErrUnknownNEMVersion = errors.New("unknown nem version")
	ErrUnknownProgram    = errors.New("unknown financing program")
)

// UtilityID identifies one of the supported California investor-owned utilities.
type UtilityID string

const (
	UtilitySCE  UtilityID = "SCE"
	UtilityPGE  UtilityID = "PGE"
	UtilitySDGE UtilityID = "SDGE"
)

// Valid returns true if the utility is one of the supported utilities.
func (u UtilityID) Valid() bool {
	switch u {
	case UtilitySCE, UtilityPGE, UtilitySDGE:
		return true
	}
	return false
}

// NEMVersion is the net energy metering tariff the system was interconnected under.
type NEMVersion string

const (
	NEM1 NEMVersion = "NEM1"
	NEM2 NEMVersion = "NEM2"
	NEM3 NEMVersion = "NEM3"
)

// Valid returns true if the version is NEM1, NEM2 or NEM3.
func (v NEMVersion) Valid() bool {
	switch v {
	case NEM1, NEM2, NEM3:
		return true
	}
	return false
}

// YearMonth is a calendar month. Month is 1-12.
type YearMonth struct {
	Year  int `json:"year" yaml:"year"`
	Month int `json:"month" yaml:"month"`
}

// YearMonthOf returns the calendar month containing t.
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: int(t.Month())}
}

// IsZero returns true if neither year nor month is set.
func (ym YearMonth) IsZero() bool {
	return ym.Year == 0 && ym.Month == 0
}

// MonthsUntil returns the number of whole months from ym to later. It is
// negative if later is before ym.
func (ym YearMonth) MonthsUntil(later YearMonth) int {
	return (later.Year-ym.Year)*12 + (later.Month - ym.Month)
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, ym.Month)
}

// ParseYearMonth parses a "2006-01" formatted month.
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid year-month %q: %w", s, err)
	}
	return YearMonthOf(t), nil
}

// NEMSettings describes how exported energy is compensated.
type NEMSettings struct {
	Version NEMVersion `json:"version" yaml:"version"`
	// ExportRate is the $/kWh paid for net exports under NEM2.
	ExportRate float64 `json:"exportRate" yaml:"exportRate"`
}

// BatterySettings describes an optional home battery.
type BatterySettings struct {
	Present           bool    `json:"present" yaml:"present"`
	CapacityKWH       float64 `json:"capacityKWH" yaml:"capacityKWH"`
	EfficiencyPercent float64 `json:"efficiencyPercent" yaml:"efficiencyPercent"` // round-trip, 0-100
	MonthlyPayment    float64 `json:"monthlyPayment" yaml:"monthlyPayment"`
	UseTOU            bool    `json:"useTOU" yaml:"useTOU"`
}

// InstallationProfile is the complete set of facts about a solar
// installation. It is always evaluated as a whole.
type InstallationProfile struct {
	Version int `json:"version,omitempty" yaml:"version,omitempty"`

	Utility      UtilityID `json:"utility" yaml:"utility"`
	CareDiscount bool      `json:"careDiscount" yaml:"careDiscount"`

	Installed YearMonth `json:"installed" yaml:"installed"`
	// Now is the evaluation month. It is never read from the clock by the
	// projection, callers stamp it.
	Now YearMonth `json:"now" yaml:"now"`

	SystemSizeKW        float64 `json:"systemSizeKW" yaml:"systemSizeKW"`
	AnnualProductionKWH float64 `json:"annualProductionKWH" yaml:"annualProductionKWH"` // nameplate, at install
	UsageAtInstallKWH   float64 `json:"usageAtInstallKWH" yaml:"usageAtInstallKWH"`
	CurrentUsageKWH     float64 `json:"currentUsageKWH" yaml:"currentUsageKWH"`

	Financing Financing       `json:"financing" yaml:"financing"`
	NEM       NEMSettings     `json:"nem" yaml:"nem"`
	Battery   BatterySettings `json:"battery" yaml:"battery"`
}

// Validate checks the structural fields of the profile. Numeric fields are
// intentionally not checked, degenerate values flow through the projection.
func (p InstallationProfile) Validate() error {
	if !p.Utility.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownUtility, p.Utility)
	}
	if !p.NEM.Version.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownNEMVersion, p.NEM.Version)
	}
	if p.Financing.Program == nil {
		return fmt.Errorf("%w: missing", ErrUnknownProgram)
	}
	if p.Installed.MonthsUntil(p.Now) < 0 {
		return fmt.Errorf("now (%s) is before install (%s)", p.Now, p.Installed)
	}
	return nil
}

// DefaultProfile returns the profile a new user starts with, evaluated at now.
func DefaultProfile(now YearMonth) InstallationProfile {
	return InstallationProfile{
		Version:             CurrentProfileVersion,
		Utility:             UtilitySCE,
		Installed:           YearMonth{Year: 2020, Month: 1},
		Now:                 now,
		SystemSizeKW:        8.0,
		AnnualProductionKWH: 12000,
		UsageAtInstallKWH:   10000,
		CurrentUsageKWH:     11500,
		Financing: Financing{Program: LoanTerms{
			Principal:         24000,
			AnnualRatePercent: 5.99,
			TermYears:         DefaultLoanTermYears,
			TaxCredit:         7200,
			PaidOffYear:       now.Year,
		}},
		NEM: NEMSettings{
			Version:    NEM2,
			ExportRate: 0.07,
		},
		Battery: BatterySettings{
			CapacityKWH:       13.5,
			EfficiencyPercent: 90,
		},
	}
}
