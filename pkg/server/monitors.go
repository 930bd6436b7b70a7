package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/raterudder/solarledger/pkg/log"
	"github.com/raterudder/solarledger/pkg/metrics"
	"github.com/raterudder/solarledger/pkg/monitor"
	"github.com/raterudder/solarledger/pkg/types"
)

func (s *Server) handleListMonitors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, monitor.Providers())
}

func (s *Server) handleMonitorConnect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var creds types.MonitorCredentials
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&creds); err != nil {
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	status, err := s.monitors.Connect(ctx, creds)
	switch {
	case err == nil:
		metrics.ObserveConnect(creds.Provider, true)
		writeJSON(w, status)
	case errors.Is(err, monitor.ErrInvalidCredentials):
		metrics.ObserveConnect(creds.Provider, false)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		if err := json.NewEncoder(w).Encode(status); err != nil {
			panic(http.ErrAbortHandler)
		}
	case errors.Is(err, monitor.ErrUnknownProvider):
		writeJSONError(w, err.Error(), http.StatusBadRequest)
	case ctx.Err() != nil:
		// client went away, nobody is listening for the response
		log.Ctx(ctx).DebugContext(ctx, "monitor connect canceled", slog.String("provider", creds.Provider))
	default:
		log.Ctx(ctx).ErrorContext(ctx, "failed to connect monitor", slog.String("provider", creds.Provider), slog.Any("error", err))
		writeJSONError(w, "failed to connect", http.StatusBadGateway)
	}
}
