package utility

import (
	"fmt"
	"slices"

	"github.com/raterudder/solarledger/pkg/types"
)

var utilityNames = map[types.UtilityID]string{
	types.UtilitySCE:  "Southern California Edison (SCE)",
	types.UtilityPGE:  "Pacific Gas & Electric (PG&E)",
	types.UtilitySDGE: "San Diego Gas & Electric (SDG&E)",
}

// supported is the display order.
var supported = []types.UtilityID{types.UtilitySCE, types.UtilityPGE, types.UtilitySDGE}

// Info returns the metadata for a single utility including its published rates.
func Info(u types.UtilityID) (types.UtilityProviderInfo, error) {
	t, err := table(u)
	if err != nil {
		return types.UtilityProviderInfo{}, err
	}
	tou, err := TOU(u)
	if err != nil {
		return types.UtilityProviderInfo{}, err
	}
	info := types.UtilityProviderInfo{
		ID:    u,
		Name:  utilityNames[u],
		TOU:   tou,
		Rates: make([]types.UtilityRateInYear, len(t)),
	}
	for i, r := range t {
		info.Rates[i] = types.UtilityRateInYear{Year: r.year, DollarsPerKWH: r.rate, Tabulated: true}
	}
	return info, nil
}

// ListUtilities returns metadata for every supported utility.
func ListUtilities() []types.UtilityProviderInfo {
	out := make([]types.UtilityProviderInfo, 0, len(supported))
	for _, u := range supported {
		info, err := Info(u)
		if err != nil {
			panic(fmt.Errorf("utility %s is missing data: %w", u, err))
		}
		out = append(out, info)
	}
	return out
}

// NEMOptions lists the selectable NEM versions.
func NEMOptions() []types.Option {
	return []types.Option{
		{Value: string(types.NEM1), Label: "NEM 1.0", Description: "Retail rate compensation"},
		{Value: string(types.NEM2), Label: "NEM 2.0", Description: "Wholesale rate compensation"},
		{Value: string(types.NEM3), Label: "NEM 3.0", Description: "Significantly reduced export rate"},
	}
}

// ProgramOptions lists the selectable financing programs.
func ProgramOptions() []types.Option {
	return []types.Option{
		{Value: string(types.ProgramPPA), Label: "Power Purchase Agreement (PPA)/Lease"},
		{Value: string(types.ProgramCash), Label: "Cash"},
		{Value: string(types.ProgramLoan), Label: "Loan"},
		{Value: string(types.ProgramOther), Label: "Other"},
	}
}

// EscalatorPresets are the common PPA escalators in percent.
var EscalatorPresets = []float64{0, 0.9, 1.9, 2.9, 3.5, 3.9}

// IsEscalatorPreset returns true if pct is one of EscalatorPresets.
func IsEscalatorPreset(pct float64) bool {
	return slices.Contains(EscalatorPresets, pct)
}
