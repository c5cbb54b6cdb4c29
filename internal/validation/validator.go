// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/trendlens/internal/models"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is one failed rule on one request parameter.
type FieldError struct {
	field   string
	tag     string
	value   interface{}
	message string
}

// Field returns the parameter name, with an index for list elements
// (countries[1]).
func (e FieldError) Field() string { return e.field }

// Tag returns the rule that failed.
func (e FieldError) Tag() string { return e.tag }

func (e FieldError) Error() string { return e.message }

// RequestValidationError collects every failed rule of one request.
type RequestValidationError struct {
	errors []FieldError
}

// Errors returns the individual failures in validation order.
func (ve *RequestValidationError) Errors() []FieldError {
	return ve.errors
}

func (ve *RequestValidationError) Error() string {
	return strings.Join(ve.messages(), "; ")
}

func (ve *RequestValidationError) messages() []string {
	out := make([]string, len(ve.errors))
	for i, e := range ve.errors {
		out[i] = e.message
	}
	return out
}

// ToAPIError converts the failures into a VALIDATION_ERROR body. A single
// failure carries its field, tag and value in Details; several carry a
// "fields" list.
func (ve *RequestValidationError) ToAPIError() *models.APIError {
	apiErr := &models.APIError{Code: "VALIDATION_ERROR", Message: "Validation failed"}

	switch len(ve.errors) {
	case 0:
	case 1:
		e := ve.errors[0]
		apiErr.Message = e.message
		apiErr.Details = map[string]interface{}{"field": e.field, "tag": e.tag, "value": e.value}
	default:
		fields := make([]map[string]interface{}, len(ve.errors))
		for i, e := range ve.errors {
			fields[i] = map[string]interface{}{"field": e.field, "tag": e.tag, "message": e.message}
		}
		apiErr.Message = strings.Join(ve.messages(), "; ")
		apiErr.Details = map[string]interface{}{"fields": fields}
	}
	return apiErr
}

// GetValidator returns the shared validator. Errors name the "query" tag
// of a field, so messages use the request parameter name.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			switch name := strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]; name {
			case "-":
				return ""
			case "":
				return fld.Name
			default:
				return name
			}
		})
		// Registration only fails on an empty tag or nil func.
		_ = validate.RegisterValidation("printable", isPrintable)
	})
	return validate
}

// isPrintable rejects strings containing control characters.
func isPrintable(fl validator.FieldLevel) bool {
	return strings.IndexFunc(fl.Field().String(), unicode.IsControl) < 0
}

// ValidateStruct validates s and returns nil when every rule passes.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &RequestValidationError{errors: []FieldError{{field: "request", tag: "invalid", message: err.Error()}}}
	}

	out := make([]FieldError, len(fieldErrs))
	for i, fe := range fieldErrs {
		out[i] = FieldError{field: fe.Field(), tag: fe.Tag(), value: fe.Value(), message: message(fe)}
	}
	return &RequestValidationError{errors: out}
}

// message renders fe for the rules request structs use. Bounds name their
// unit for strings and lists.
func message(fe validator.FieldError) string {
	var unit string
	switch fe.Kind() {
	case reflect.String:
		unit = " characters"
	case reflect.Slice:
		unit = " values"
	}

	switch fe.Tag() {
	case "printable":
		return fmt.Sprintf("%s must not contain control characters", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s%s", fe.Field(), fe.Param(), unit)
	case "max":
		return fmt.Sprintf("%s must be at most %s%s", fe.Field(), fe.Param(), unit)
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
