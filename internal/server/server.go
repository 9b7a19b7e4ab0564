package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/LoadoutCalc_Go/docs"
	"github.com/osse101/LoadoutCalc_Go/internal/handler"
	"github.com/osse101/LoadoutCalc_Go/internal/info"
	"github.com/osse101/LoadoutCalc_Go/internal/logger"
	"github.com/osse101/LoadoutCalc_Go/internal/metrics"
	"github.com/osse101/LoadoutCalc_Go/internal/sse"
)

// CatalogStore serves catalog snapshots, reloads them and reports readiness.
// *catalog.Store satisfies it.
type CatalogStore interface {
	handler.CatalogReloader
	handler.HealthChecker
}

// Options configures NewServer
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Store          CatalogStore
	Info           *info.Loader
	Changelog      []info.ChangelogEntry
	// Hub serves /api/v1/events when set
	Hub *sse.Hub
	// Detector overrides the default rate limiter when set
	Detector *SuspiciousActivityDetector
}

type Server struct {
	httpServer *http.Server
	store      CatalogStore
}

// NewServer creates a new Server instance
func NewServer(opts Options) *Server {
	detector := opts.Detector
	if detector == nil {
		detector = NewSuspiciousActivityDetector()
	}
	if opts.APIKey == "" {
		slog.Default().Warn(LogMsgAuthDisabled)
	}

	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(opts.Store))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	catalogHandler := handler.NewCatalogHandler(opts.Store)
	loadoutHandler := handler.NewLoadoutHandler(opts.Store)
	adminHandler := handler.NewAdminHandler(opts.Store)
	infoHandler := handler.NewInfoHandler(opts.Info, opts.Changelog)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(CompressionMiddleware(CompressionLevel))

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", catalogHandler.HandleOverview)
			r.Get("/{category}", catalogHandler.HandleListCategory)
		})

		r.Route("/items/{id}", func(r chi.Router) {
			r.Get("/", catalogHandler.HandleGetItem)
			r.Get("/cost", catalogHandler.HandleGetItemCost)
		})

		r.Post("/loadout/totals", loadoutHandler.HandleTotals)
		r.Get("/materials", catalogHandler.HandleListMaterials)

		r.Route("/recycle", func(r chi.Router) {
			r.Get("/", catalogHandler.HandleListRecyclable)
			r.Get("/{materialID}", catalogHandler.HandleGetRecycleSources)
		})

		r.Route("/info", func(r chi.Router) {
			r.Get("/", infoHandler.HandleListFeatures)
			r.Get("/{topic}", infoHandler.HandleGetTopic)
		})
		r.Get("/changelog", infoHandler.HandleChangelog)
		if opts.Hub != nil {
			r.Get("/events", sse.Handler(opts.Hub))
		}
		r.Get("/audit", adminHandler.HandleAudit)

		r.Route("/admin", func(r chi.Router) {
			r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
			r.Post("/reload", adminHandler.HandleReload)
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		store: opts.Store,
	}
}

// Handler returns the root router
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush passes through so event streams are not buffered by the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func isQuietPath(path string) bool {
	for _, prefix := range QuietPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
