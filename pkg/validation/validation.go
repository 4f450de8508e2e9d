package validation

import (
	"context"
	"sync"

	"github.com/go-playground/mold/v4"
	"github.com/go-playground/mold/v4/modifiers"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	onceValidate sync.Once

	conform     *mold.Transformer
	onceConform sync.Once
)

func Validate() *validator.Validate {
	onceValidate.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	return validate
}

func Modify() *mold.Transformer {
	onceConform.Do(func() {
		conform = modifiers.New()
	})

	return conform
}

// Conform applies `mod` tags and then validates v.
func Conform(ctx context.Context, v interface{}) error {
	if err := Modify().Struct(ctx, v); err != nil {
		return err
	}

	return Validate().Struct(v)
}
