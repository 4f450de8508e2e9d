package httpserver

import (
	"net/http"
	"strings"

	"github.com/Sententiaregum/flux-container/adapters/httpserver/model"
	"github.com/Sententiaregum/flux-container/domain"
	"github.com/Sententiaregum/flux-container/domain/journal"
	"github.com/Sententiaregum/flux-container/pkg/apperror"
	"github.com/Sententiaregum/flux-container/pkg/config"
	"github.com/Sententiaregum/flux-container/pkg/sentry"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Options func(s *Server) error

type Server struct {
	router *echo.Echo
	Config *config.Config
	Logger *zap.SugaredLogger

	// event bus
	EventDispatcher   domain.EventDispatcher
	ListenerInspector domain.ListenerInspector

	// storage adapters
	JournalStore journal.Store
}

func WithEventDispatcher(ed domain.EventDispatcher) Options {
	return func(s *Server) error {
		s.EventDispatcher = ed
		if inspector, ok := ed.(domain.ListenerInspector); ok {
			s.ListenerInspector = inspector
		}
		return nil
	}
}

func WithJournalStore(store journal.Store) Options {
	return func(s *Server) error {
		s.JournalStore = store
		return nil
	}
}

func New(cfg *config.Config, logger *zap.SugaredLogger, options ...Options) (*Server, error) {
	if cfg == nil {
		cfg = &config.Config{}
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	s := Server{
		router: echo.New(),
		Config: cfg,
		Logger: logger,
	}
	s.router.HideBanner = true

	for _, fn := range options {
		if err := fn(&s); err != nil {
			return nil, err
		}
	}

	s.RegisterGlobalMiddlewares()
	s.RegisterHealthCheck(s.router.Group(""))

	if s.EventDispatcher != nil {
		s.RegisterListenerRoutes(s.router.Group("/api/listeners"))
		s.RegisterEventRoutes(s.router.Group("/api/events"))
	}
	if s.JournalStore != nil {
		s.RegisterJournalRoutes(s.router.Group("/api/journal"))
	}

	return &s, nil
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.router.Use(middleware.Recover())
	s.router.Use(middleware.Secure())
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.Gzip())
	s.router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	// CORS
	if s.Config.AllowOrigins != "" {
		aos := strings.Split(s.Config.AllowOrigins, ",")
		s.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: aos,
		}))
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) RegisterHealthCheck(router *echo.Group) {
	router.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK!!!")
	})
}

func (s *Server) error(c echo.Context, err error) error {
	s.Logger.Errorw(
		err.Error(),
		zap.String("request_id", s.requestID(c)),
	)

	var appErr apperror.Error
	if !errors.As(err, &appErr) {
		sentry.WithContext(c).Error(err)

		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Code:    "000000",
			Message: "Internal Server Error",
			Info:    err.Error(),
		})
	}

	if appErr.HTTPCode >= http.StatusInternalServerError {
		sentry.WithContext(c).Error(err)
	}

	var errMessage string
	if appErr.Raw != nil {
		errMessage = appErr.Raw.Error()
	}

	return c.JSON(appErr.HTTPCode, model.ErrorResponse{
		Code:    appErr.ErrorCode,
		Message: appErr.Message,
		Info:    errMessage,
	})
}

func (s *Server) success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, model.SuccessResponse{
		Message: "OK",
		Data:    data,
	})
}

func (s *Server) requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
