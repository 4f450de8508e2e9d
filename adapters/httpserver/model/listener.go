package model

import (
	"context"

	"github.com/Sententiaregum/flux-container/domain"
	"github.com/Sententiaregum/flux-container/pkg/pagination"
	"github.com/Sententiaregum/flux-container/pkg/validation"
)

type ListListenersRequest struct {
	Event string `query:"event" mod:"trim"`
	pagination.Paging
}

func (r *ListListenersRequest) Validate(ctx context.Context) error {
	if err := validation.Modify().Struct(ctx, r); err != nil {
		return err
	}

	return r.Paging.Validate()
}

type ListListenersResponse struct {
	Listeners []domain.Listener `json:"listeners"`
	Cursor    string            `json:"cursor"`
}

type RemoveListenerRequest struct {
	ID string `param:"id" validate:"required"`
}

func (r *RemoveListenerRequest) Validate() error {
	return validation.Validate().Struct(r)
}
