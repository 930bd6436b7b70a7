package types

import "time"

// TOURates are a utility's residential time-of-use prices in $/kWh.
type TOURates struct {
	Peak         float64 `json:"peak"`
	OffPeak      float64 `json:"offPeak"`
	SuperOffPeak float64 `json:"superOffPeak"`
}

// UtilityProviderInfo provides metadata about a utility provider.
type UtilityProviderInfo struct {
	ID    UtilityID           `json:"id"`
	Name  string              `json:"name"`
	TOU   TOURates            `json:"tou"`
	Rates []UtilityRateInYear `json:"rates"`
}

// UtilityRateInYear is a utility's average residential $/kWh for a year.
type UtilityRateInYear struct {
	Year          int     `json:"year"`
	DollarsPerKWH float64 `json:"dollarsPerKWH"`
	// Tabulated is false for rates that were interpolated or extrapolated.
	Tabulated bool `json:"tabulated"`
}

// TOUPeriodName names a time-of-use price window.
type TOUPeriodName string

const (
	TOUPeak         TOUPeriodName = "peak"
	TOUOffPeak      TOUPeriodName = "offPeak"
	TOUSuperOffPeak TOUPeriodName = "superOffPeak"
)

// TOUPeriod is an hour window that a TOU price applies in.
type TOUPeriod struct {
	Name          TOUPeriodName  `json:"name"`
	HourStart     int            `json:"hourStart"`
	HourEnd       int            `json:"hourEnd"` // exclusive
	DaysOfTheWeek []time.Weekday `json:"daysOfTheWeek,omitempty"`
}

// Contains checks if a time falls within the period. t should already be in
// the utility's location.
func (p TOUPeriod) Contains(t time.Time) bool {
	if h := t.Hour(); h < p.HourStart || h >= p.HourEnd {
		return false
	}
	if len(p.DaysOfTheWeek) > 0 {
		var found bool
		dow := t.Weekday()
		for _, d := range p.DaysOfTheWeek {
			if d == dow {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Price is the TOU price at an instant.
type Price struct {
	Utility       UtilityID     `json:"utility"`
	Period        TOUPeriodName `json:"period"`
	TSStart       time.Time     `json:"tsStart"`
	TSEnd         time.Time     `json:"tsEnd"`
	DollarsPerKWH float64       `json:"dollarsPerKWH"`
}

// Option is a selectable value with a display label.
type Option struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// MonitorProviderInfo provides metadata about a production monitoring API.
type MonitorProviderInfo struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Credentials []MonitorCredential `json:"credentials"`
}

// MonitorCredential defines a single credential field for a monitoring API.
type MonitorCredential struct {
	Field    string `json:"field"`
	Name     string `json:"name"`
	Type     string `json:"type"` // e.g. "string" or "password"
	Required bool   `json:"required"`
}

// MonitorCredentials are the credentials entered to connect a monitoring API.
type MonitorCredentials struct {
	Provider string `json:"provider"`
	APIKey   string `json:"apiKey"`
	SystemID string `json:"systemID"`
}

// MonitorStatus is the result of a connection attempt.
type MonitorStatus struct {
	Connected bool       `json:"connected"`
	LastSync  *time.Time `json:"lastSync,omitempty"`
	Error     string     `json:"error,omitempty"`
}
