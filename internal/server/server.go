package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-mdguide"
	"github.com/alnah/go-mdguide/internal/health"
)

// Documents is the part of mdguide.Service the handlers use.
type Documents interface {
	Document(ctx context.Context, raw string) (*mdguide.Page, error)
	Asset(ctx context.Context, raw string) (*mdguide.Asset, error)
	GuideRoot() string
	CacheMaxAge() time.Duration
}

var _ Documents = (*mdguide.Service)(nil)

// Config holds listener settings.
type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DefaultShutdownTimeout bounds graceful shutdown when Config leaves it zero.
const DefaultShutdownTimeout = 10 * time.Second

// Server routes guide requests to a Documents implementation.
type Server struct {
	docs   Documents
	health *health.Checker
	log    *zap.Logger
	root   string
}

// New creates a Server. A nil logger means no logging.
func New(docs Documents, checker *health.Checker, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		docs:   docs,
		health: checker,
		log:    logger,
		root:   docs.GuideRoot(),
	}
}

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	if s.root != "" {
		mux.HandleFunc("GET "+s.root, s.handleIndex)
	}
	mux.HandleFunc("GET "+s.root+"/{$}", s.handleIndex)
	mux.HandleFunc("GET "+s.root+"/assets/{path...}", s.handleAsset)
	mux.HandleFunc("GET "+s.root+"/{path...}", s.handleDocument)
	mux.HandleFunc("GET /health", s.handleHealth)

	var h http.Handler = mux
	h = s.rejectTraversal(h)
	h = s.recoverPanics(h)
	h = s.accessLog(h)
	h = requestID(h)
	return h
}

// Serve handles connections on ln until ctx is done, then shuts down
// gracefully. Returns nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener, cfg Config) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ErrorLog:          zap.NewStdLog(s.log),
	}

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = DefaultShutdownTimeout
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("guide server listening",
			zap.String("addr", ln.Addr().String()),
			zap.String("guide_root", s.root+"/"))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.log.Info("shutting down guide server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// ListenAndServe listens on cfg.Addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context, cfg Config) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln, cfg)
}
