// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package acquire

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pdiddy/bldb-fetch/pkg/types"
)

var validate = validator.New()

// ValidateConfig checks a FetchConfig before a run starts.
func ValidateConfig(cfg types.FetchConfig) error {
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "http_url":
		return fmt.Sprintf("%s must be an http or https URL, got %q", field, e.Value())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, e.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
