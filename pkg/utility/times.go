package utility

import (
	"fmt"
	"time"
)

var (
	// SCE, PG&E and SDG&E all bill TOU periods in Pacific Time
	ptLocation = func() *time.Location {
		loc, err := time.LoadLocation("America/Los_Angeles")
		if err != nil {
			panic(fmt.Errorf("failed to load pacific time location: %w", err))
		}
		return loc
	}()
)

// Location returns the time zone every supported utility bills in.
func Location() *time.Location {
	return ptLocation
}
