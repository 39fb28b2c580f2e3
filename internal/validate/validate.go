package validate

// This package adds struct and field validation as a thin wrapper around the go-playground/validator package.
//
// e.g. internal/scene/scene.go
//   type Overlay struct {
//       ID       string         `json:"id" validate:"required"`
//       Position geometry.Point `json:"position"`
//   }
//   type Scene struct {
//       Overlays []Overlay `json:"overlays" validate:"unique=ID,dive"`
//   }
//
// Besides the built-in tags it registers "finite", which rejects NaN and
// infinite float values coming from hand-written scene files.

import (
	"math"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoglobals // Shared validator singleton.
var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

// get returns a process-wide singleton of the validator.
func get() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
		_ = validatorInst.RegisterValidation("finite", isFinite)
	})
	return validatorInst
}

func isFinite(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() { //nolint:exhaustive // Only float kinds carry non-finite values.
	case reflect.Float32, reflect.Float64:
		v := f.Float()
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	default:
		return true
	}
}

// Struct validates a struct using the shared validator instance.
func Struct(v any) error {
	return get().Struct(v)
}

// Var validates a single variable against the provided tag constraints.
func Var(field any, tag string) error {
	return get().Var(field, tag)
}
