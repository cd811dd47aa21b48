// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationError lists the messages for each offending field, keyed by
// JSON path (e.g. "answers[1].is_correct").
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// DecodeAndValidate parses the JSON body into v and runs its validate tags.
// Malformed JSON is returned as is. Rule failures and values of the wrong
// JSON type come back as *ValidationError.
func DecodeAndValidate(r *http.Request, v interface{}) error {
	if err := ParseJSONBody(r, v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return &ValidationError{Fields: map[string][]string{
				typeErr.Field: {typeMessage(typeErr.Type)},
			}}
		}
		return err
	}

	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		key := fe.Namespace()
		// Drop the struct name prefix
		if _, rest, ok := strings.Cut(key, "."); ok {
			key = rest
		}
		fields[key] = append(fields[key], validationMessage(fe))
	}
	return &ValidationError{Fields: fields}
}

func typeMessage(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "Not a valid integer."
	case reflect.Bool:
		return "Not a valid boolean."
	case reflect.String:
		return "Not a valid string."
	case reflect.Slice:
		return "Not a valid list."
	}
	return "Invalid value."
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Missing data for required field."
	case "max":
		return "Longer than maximum length " + fe.Param() + "."
	}
	return "Invalid value."
}
