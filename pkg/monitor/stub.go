package monitor

import (
	"context"
	"log/slog"
	"time"

	"github.com/raterudder/solarledger/pkg/log"
	"github.com/raterudder/solarledger/pkg/types"
)

// Stub accepts any non-empty credentials after a fixed delay. It makes no
// network requests.
type Stub struct {
	delay time.Duration
	now   func() time.Time
}

// NewStub returns a Stub that waits delay before answering.
func NewStub(delay time.Duration) *Stub {
	return &Stub{
		delay: delay,
		now:   time.Now,
	}
}

// Connect implements Connector. It returns ErrInvalidCredentials, along with
// a status describing it, when the API key or system ID is missing.
func (s *Stub) Connect(ctx context.Context, creds types.MonitorCredentials) (types.MonitorStatus, error) {
	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return types.MonitorStatus{}, ctx.Err()
		}
	}

	if creds.APIKey == "" || creds.SystemID == "" {
		log.Ctx(ctx).DebugContext(ctx, "rejected monitor credentials", slog.String("provider", creds.Provider))
		return types.MonitorStatus{Error: invalidCredentialsMessage}, ErrInvalidCredentials
	}

	synced := s.now()
	log.Ctx(ctx).InfoContext(
		ctx,
		"connected monitor",
		slog.String("provider", creds.Provider),
		slog.String("systemID", creds.SystemID),
	)
	return types.MonitorStatus{Connected: true, LastSync: &synced}, nil
}
