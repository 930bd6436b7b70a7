package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/raterudder/solarledger/pkg/log"
	"github.com/raterudder/solarledger/pkg/report"
	"github.com/raterudder/solarledger/pkg/types"
	"github.com/raterudder/solarledger/pkg/utility"
)

const maxProfileBytes = 1 << 20

// currentMonth is the evaluation month for requests that omit one.
func (s *Server) currentMonth() types.YearMonth {
	return types.YearMonthOf(s.now().In(utility.Location()))
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var p types.InstallationProfile
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxProfileBytes)).Decode(&p); err != nil {
		writeJSONError(w, "invalid profile: "+err.Error(), http.StatusBadRequest)
		return
	}
	if p.Now.IsZero() {
		p.Now = s.currentMonth()
	}

	// an unversioned profile is taken as current
	if p.Version > 0 && p.Version < types.CurrentProfileVersion {
		migrated, changed, err := types.MigrateProfile(p, p.Version)
		if err != nil {
			log.Ctx(ctx).ErrorContext(ctx, "failed to migrate profile", slog.Any("error", err))
			writeJSONError(w, "invalid profile version", http.StatusBadRequest)
			return
		}
		if changed {
			log.Ctx(ctx).DebugContext(
				ctx,
				"migrated profile",
				slog.Int("from", p.Version),
				slog.Int("to", migrated.Version),
			)
		}
		p = migrated
	}

	if err := p.Validate(); err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, report.Build(ctx, p))
}

func (s *Server) handleDefaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, types.DefaultProfile(s.currentMonth()))
}
