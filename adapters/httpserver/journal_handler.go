package httpserver

import (
	"errors"

	"github.com/Sententiaregum/flux-container/adapters/httpserver/model"
	"github.com/Sententiaregum/flux-container/pkg/apperror"
	"github.com/Sententiaregum/flux-container/pkg/pagination"
	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterJournalRoutes(router *echo.Group) {
	router.GET("", s.ListJournal)
}

func (s *Server) ListJournal(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.ListJournalRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	entries, err := s.JournalStore.List(ctx, req.Event, &req.Paging)
	if err != nil {
		if errors.Is(err, pagination.ErrInvalidCursor) {
			return s.error(c, apperror.ErrInvalidParam(err))
		}

		return s.error(c, apperror.ErrInternalServer(err))
	}

	return s.success(c, model.ListJournalResponse{
		Entries: entries,
		Cursor:  req.NextCursor,
	})
}
