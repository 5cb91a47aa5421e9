package model

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Route is the user supplied start/end location pair. The values are
// passed through verbatim, there is no geocoding.
type Route struct {
	Start string `validate:"required"`
	End   string `validate:"required"`
}

// ErrMissingLocation is returned when either endpoint of a route is
// empty or absent. The message is shown to the user as is.
var ErrMissingLocation = errors.New("Start and end locations must be provided.")

var validate = validator.New()

// Validate checks that both locations are present.
func (route Route) Validate() error {
	if err := validate.Struct(route); err != nil {
		return ErrMissingLocation
	}
	return nil
}
