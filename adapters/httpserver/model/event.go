package model

import (
	"context"

	"github.com/Sententiaregum/flux-container/domain/journal"
	"github.com/Sententiaregum/flux-container/pkg/pagination"
	"github.com/Sententiaregum/flux-container/pkg/validation"
)

type DispatchRequest struct {
	Event   string `json:"-" param:"name" mod:"trim" validate:"required,max=255"`
	Payload any    `json:"payload" mod:"-"`
}

func (r *DispatchRequest) Validate(ctx context.Context) error {
	return validation.Conform(ctx, r)
}

type DispatchResponse struct {
	Event     string `json:"event"`
	Listeners int    `json:"listeners"`
}

type ListJournalRequest struct {
	Event string `query:"event" mod:"trim"`
	pagination.Paging
}

func (r *ListJournalRequest) Validate(ctx context.Context) error {
	if err := validation.Modify().Struct(ctx, r); err != nil {
		return err
	}

	return r.Paging.Validate()
}

type ListJournalResponse struct {
	Entries []journal.Entry `json:"entries"`
	Cursor  string          `json:"cursor"`
}
