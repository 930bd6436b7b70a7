package utility

import "github.com/raterudder/solarledger/pkg/types"

// NEM2ConnectionFee is the monthly non-bypassable charge for NEM 2.0 customers.
const NEM2ConnectionFee = 12.0

// ConnectionFee returns the monthly grid connection fee for a NEM version.
func ConnectionFee(v types.NEMVersion) float64 {
	if v == types.NEM2 {
		return NEM2ConnectionFee
	}
	return 0
}
