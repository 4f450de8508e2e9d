package httpserver

import (
	"github.com/Sententiaregum/flux-container/adapters/httpserver/model"
	"github.com/Sententiaregum/flux-container/pkg/apperror"
	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterEventRoutes(router *echo.Group) {
	router.POST("/:name", s.DispatchEvent)
}

// DispatchEvent runs every listener of the event with the request payload.
func (s *Server) DispatchEvent(c echo.Context) error {
	var req model.DispatchRequest

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(c.Request().Context()); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	var listeners int
	if s.ListenerInspector != nil {
		listeners = len(s.ListenerInspector.Listeners(req.Event))
	}

	if err := s.EventDispatcher.Dispatch(req.Event, req.Payload); err != nil {
		return s.error(c, apperror.FromDispatch(err))
	}

	return s.success(c, model.DispatchResponse{
		Event:     req.Event,
		Listeners: listeners,
	})
}
