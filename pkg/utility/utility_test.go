package utility

import (
	"log/slog"
	"testing"

	"github.com/raterudder/solarledger/pkg/log"
	"github.com/raterudder/solarledger/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetDefaultLogLevel(slog.LevelError)
}

func TestListUtilities(t *testing.T) {
	list := ListUtilities()
	require.Len(t, list, 3)
	assert.Equal(t, types.UtilitySCE, list[0].ID)
	assert.Equal(t, "Pacific Gas & Electric (PG&E)", list[1].Name)
	assert.Equal(t, 0.73, list[2].TOU.Peak)
	for _, u := range list {
		assert.Len(t, u.Rates, 13)
		assert.Equal(t, 2014, u.Rates[0].Year)
		assert.True(t, u.Rates[0].Tabulated)
	}

	_, err := Info("LADWP")
	assert.ErrorIs(t, err, ErrUnknownUtility)
}

func TestOptions(t *testing.T) {
	assert.Len(t, NEMOptions(), 3)
	assert.Equal(t, "Power Purchase Agreement (PPA)/Lease", ProgramOptions()[0].Label)
	assert.True(t, IsEscalatorPreset(2.9))
	assert.False(t, IsEscalatorPreset(2.5))
}

func TestConnectionFee(t *testing.T) {
	assert.Equal(t, 12.0, ConnectionFee(types.NEM2))
	assert.Equal(t, 0.0, ConnectionFee(types.NEM1))
	assert.Equal(t, 0.0, ConnectionFee(types.NEM3))
}
