package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/skilltrail/internal/logger"
	"github.com/abhisek/skilltrail/internal/predict"
	"github.com/abhisek/skilltrail/internal/progress"
	"github.com/abhisek/skilltrail/internal/quiz"
	"github.com/abhisek/skilltrail/internal/recommend"
	"github.com/abhisek/skilltrail/internal/store"
)

// Deps are the collaborators the HTTP surface exposes.
type Deps struct {
	Progress  *progress.Service
	Quiz      *quiz.Service
	Predict   *predict.Service
	Recommend *recommend.Service
	Sessions  store.SessionRepo
}

// Server is the HTTP front end over the curriculum services.
type Server struct {
	cfg    Config
	log    *logger.Logger
	engine *gin.Engine
}

// New builds the server and registers all routes.
func New(cfg Config, log *logger.Logger, deps Deps) *Server {
	if cfg.Mode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestID(), requestLogger(log))

	s := &Server{cfg: cfg, log: log, engine: engine}
	s.registerRoutes(&handlers{
		progress:  deps.Progress,
		quiz:      deps.Quiz,
		predict:   deps.Predict,
		recommend: deps.Recommend,
		sessions:  deps.Sessions,
		now:       time.Now,
	})
	return s
}

func (s *Server) registerRoutes(h *handlers) {
	s.engine.GET("/healthz", h.healthz)

	api := s.engine.Group("/api")

	// Stateless: the caller supplies all inputs, so no identity is
	// required.
	api.POST("/predict", h.postPredict)

	authed := api.Group("", requireUser())
	authed.GET("/roadmap", h.getRoadmap)
	authed.POST("/skills/:id/status", h.setStatus)
	authed.GET("/skills/:id/quiz", h.getQuiz)
	authed.POST("/skills/:id/quiz", h.submitQuiz)
	authed.GET("/skills/:id/attempts", h.getAttempts)
	authed.GET("/recommendations", h.getRecommendations)
	authed.POST("/sessions", h.postSession)
	authed.GET("/forecast", h.getForecast)
}

// Handler exposes the routed engine, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the context is canceled or SIGINT/SIGTERM arrives,
// then drains in-flight requests within the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", s.cfg.Addr, "mode", s.cfg.Mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down", "timeout", s.cfg.ShutdownTimeout.String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
