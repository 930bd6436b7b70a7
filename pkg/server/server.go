package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/levenlabs/go-lflag"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/raterudder/solarledger/pkg/common"
	"github.com/raterudder/solarledger/pkg/log"
	"github.com/raterudder/solarledger/pkg/monitor"
)

// Server serves the JSON API used by the calculator UI. It holds no per-user
// state, every evaluation request carries the whole profile.
type Server struct {
	monitors *monitor.Map
	now      func() time.Time

	listenAddr       string
	devProxy         string
	webDir           string
	corsOrigins      []string
	metricsPath      string
	webCacheDuration time.Duration
	serverName       string
	httpServer       *http.Server
}

// Configured initializes the Server with dependencies.
// It uses lflag to register command-line flags for configuration.
func Configured(m *monitor.Map) *Server {
	srv := &Server{
		monitors:   m,
		now:        time.Now,
		serverName: common.ServerName(),
	}
	revision := os.Getenv("K_REVISION")
	if revision != "" {
		srv.serverName = revision
	}

	// get the port from PORT when running in cloud run
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	listenAddr := lflag.String("http-listen", ":"+port, "HTTP server listen address")
	devProxy := lflag.String("dev-proxy", "", "Address of the dev server (e.g. http://localhost:5173)")
	webDir := lflag.String("web-dir", "", "Directory of built web files to serve at /")
	corsOrigins := lflag.String("cors-origins", "", "comma-delimited list of origins allowed to call the API")
	metricsPath := lflag.String("metrics-path", "/metrics", "Path to serve prometheus metrics on. Empty disables it.")
	webCacheDuration := lflag.Duration("web-cache-duration", 0, "Duration to cache web files (e.g. 1h, 5m). 0 means no cache.")

	lflag.Do(func() {
		srv.listenAddr = *listenAddr
		srv.devProxy = *devProxy
		srv.webDir = *webDir
		if *corsOrigins != "" {
			for _, o := range strings.Split(*corsOrigins, ",") {
				if o = strings.TrimSpace(o); o != "" {
					srv.corsOrigins = append(srv.corsOrigins, o)
				}
			}
		}
		srv.metricsPath = *metricsPath
		srv.webCacheDuration = *webCacheDuration
	})

	return srv
}

func (s *Server) setupHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/evaluate", s.handleEvaluate)
	mux.HandleFunc("GET /api/defaults", s.handleDefaults)
	mux.HandleFunc("GET /api/rates", s.handleRates)
	mux.HandleFunc("GET /api/tou", s.handleTOU)
	mux.HandleFunc("GET /api/list/utilities", s.handleListUtilities)
	mux.HandleFunc("GET /api/list/options", s.handleListOptions)
	mux.HandleFunc("GET /api/list/monitors", s.handleListMonitors)
	mux.HandleFunc("POST /api/monitor/connect", s.handleMonitorConnect)
	mux.HandleFunc("/healthz", s.handleHealthz)
	if s.metricsPath != "" {
		mux.Handle("GET "+s.metricsPath, promhttp.Handler())
	}

	// serve the web frontend, either from a directory or from the dev server
	switch {
	case s.devProxy != "":
		u, err := url.Parse(s.devProxy)
		if err != nil {
			panic(fmt.Errorf("invalid dev-proxy url (%s): %w", s.devProxy, err))
		}
		mux.Handle("/", httputil.NewSingleHostReverseProxy(u))
	case s.webDir != "":
		dir := os.DirFS(s.webDir)
		mux.Handle("/", s.webHandler(dir, http.FileServer(http.FS(dir))))
	default:
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			writeJSONError(w, "not found", http.StatusNotFound)
		})
	}

	return s.revisionMiddleware(
		s.metricsMiddleware(
			s.corsMiddleware(
				gziphandler.GzipHandler(s.securityHeadersMiddleware(mux)),
			),
		),
	)
}

// Run starts the HTTP server and blocks until the context is canceled or an error occurs.
// It also handles graceful shutdown when the context is done.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:         s.listenAddr,
		Handler:      s.setupHandler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		defer close(errChan)
		log.Ctx(ctx).InfoContext(ctx, "starting server", slog.String("addr", s.listenAddr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Ctx(ctx).InfoContext(ctx, "shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("failed to write response", slog.Any("error", err))
		panic(http.ErrAbortHandler)
	}
}

func writeJSONError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{Error: msg}); err != nil {
		slog.Warn("failed to write error response", slog.Any("error", err))
		panic(http.ErrAbortHandler)
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		panic(http.ErrAbortHandler)
	}
}

func (s *Server) webHandler(dir fs.FS, h http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Default to serving index.html for unknown paths (SPA)
		if r.URL.Path != "/" {
			f, err := dir.Open(strings.TrimPrefix(r.URL.Path, "/"))
			if err == nil {
				f.Close()
			} else if errors.Is(err, fs.ErrNotExist) {
				if strings.HasPrefix(r.URL.Path, "/.well-known/") || strings.HasPrefix(r.URL.Path, "/api/") {
					http.Error(w, "not found", http.StatusNotFound)
					return
				}
				r.URL.Path = "/"
			} else {
				log.Ctx(r.Context()).ErrorContext(r.Context(), "failed to open file", slog.Any("error", err))
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
		}
		if s.webCacheDuration > 0 {
			w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(s.webCacheDuration.Seconds())))
		}

		h.ServeHTTP(w, r)
	}
}

func (s *Server) revisionMiddleware(next http.Handler) http.Handler {
	if s.serverName == "" {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", s.serverName)
		next.ServeHTTP(w, r)
	})
}

// corsMiddleware allows the configured origins to call the API from a
// browser. With no origins configured it is a no-op.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	if len(s.corsOrigins) == 0 {
		return next
	}
	c := cors.New(cors.Options{
		AllowedOrigins: s.corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         600,
	})
	return c.Handler(next)
}
