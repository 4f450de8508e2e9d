package httpserver

import (
	"errors"

	"github.com/Sententiaregum/flux-container/adapters/httpserver/model"
	"github.com/Sententiaregum/flux-container/domain"
	"github.com/Sententiaregum/flux-container/pkg/apperror"
	"github.com/Sententiaregum/flux-container/pkg/pagination"
	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterListenerRoutes(router *echo.Group) {
	router.GET("", s.ListListeners)
	router.DELETE("/:id", s.RemoveListener)
}

// ListListeners returns the registered listeners, optionally filtered by
// event name, in registration order.
func (s *Server) ListListeners(c echo.Context) error {
	var req model.ListListenersRequest

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(c.Request().Context()); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	var listeners []domain.Listener
	if s.ListenerInspector != nil {
		listeners = s.ListenerInspector.Listeners(req.Event)
	}

	page, err := pagination.Slice(listeners, &req.Paging)
	if err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	return s.success(c, model.ListListenersResponse{
		Listeners: page,
		Cursor:    req.NextCursor,
	})
}

func (s *Server) RemoveListener(c echo.Context) error {
	var req model.RemoveListenerRequest

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	if err := s.EventDispatcher.RemoveListener(domain.ListenerID(req.ID)); err != nil {
		if errors.Is(err, domain.ErrMissingListenerID) {
			return s.error(c, apperror.ErrMissingListenerID(err))
		}

		return s.error(c, apperror.ErrInternalServer(err))
	}

	return s.success(c, nil)
}
