// Package report evaluates a profile for display. It never fails: a profile
// that can't be projected gets the placeholder report.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/raterudder/solarledger/pkg/log"
	"github.com/raterudder/solarledger/pkg/metrics"
	"github.com/raterudder/solarledger/pkg/projection"
	"github.com/raterudder/solarledger/pkg/score"
	"github.com/raterudder/solarledger/pkg/types"
)

var errPanicked = errors.New("projection panicked")

// Build projects and scores p, rounding the summary for display. Any error,
// panic or non-finite figure is logged and the placeholder report is returned
// with Fallback set.
func Build(ctx context.Context, p types.InstallationProfile) types.Report {
	id := uuid.NewString()
	ctx = log.WithAttrs(ctx, slog.String("evaluationID", id))
	start := time.Now()

	r, reason, err := build(ctx, p)
	if err != nil {
		log.Ctx(ctx).ErrorContext(
			ctx,
			"failed to evaluate profile, using placeholder",
			slog.Any("error", err),
			slog.String("reason", reason),
			slog.String("utility", string(p.Utility)),
			slog.String("program", string(p.Financing.Type())),
			slog.String("installed", p.Installed.String()),
			slog.String("now", p.Now.String()),
			slog.Float64("usageAtInstallKWH", p.UsageAtInstallKWH),
			slog.Float64("currentUsageKWH", p.CurrentUsageKWH),
		)
		metrics.ObserveFallback(reason)
		r = types.PlaceholderReport(p)
	} else {
		metrics.ObserveEvaluation(string(p.Utility), string(p.Financing.Type()), string(r.Score.Grade), start)
	}
	r.ID = id
	return r
}

func build(ctx context.Context, p types.InstallationProfile) (r types.Report, reason string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			reason = metrics.FallbackPanic
			err = fmt.Errorf("%w: %v", errPanicked, rec)
		}
	}()

	s, err := projection.Project(ctx, p)
	if err != nil {
		return types.Report{}, metrics.FallbackInvalid, err
	}
	if err := s.CheckFinite(); err != nil {
		return types.Report{}, metrics.FallbackNotFinite, err
	}

	res := score.Score(score.InputFromSummary(p, s))
	log.Ctx(ctx).DebugContext(
		ctx,
		"scored profile",
		slog.String("grade", string(res.Grade)),
		slog.Float64("cumulativeSavings", s.CumulativeSavings),
	)

	return types.Report{
		Evaluated: p.Now,
		Summary:   s.Rounded(),
		Score:     res,
		Health:    score.Health(p),
	}, "", nil
}
