// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"errors"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// MaxLookupKeys bounds the keys accepted by one batch lookup.
const MaxLookupKeys = 200

// maxKeyLength bounds a single key; registered keys are far shorter.
const maxKeyLength = 128

// LookupRequest represents the JSON request body for the batch lookup endpoint.
//
// @Description Resolve several message keys for one locale preference
// @Example {"keys": ["ER_NO_CURLYBRACE", "ER_CANNOT_ADD"], "lang": "de"}
type LookupRequest struct {
	// Keys are the message keys to resolve, at most 200.
	Keys []string `json:"keys" example:"ER_NO_CURLYBRACE,ER_CANNOT_ADD"`
	// Lang is a locale or Accept-Language value. Defaults to the request's Accept-Language.
	Lang string `json:"lang,omitempty" example:"de"`
} // @name LookupRequest

// Validate checks the request with ozzo-validation rules.
func (r LookupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Keys,
			validation.Required,
			validation.Length(1, MaxLookupKeys),
			validation.Each(validation.Required, validation.Length(1, maxKeyLength)),
		),
		validation.Field(&r.Lang, validation.Length(0, 256)),
	)
}

// ValidationDetails flattens validation errors into field/message pairs.
// Errors on slice elements are reported as "field.index".
func ValidationDetails(err error) map[string]string {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return nil
	}
	details := make(map[string]string)
	flatten("", errs, details)
	return details
}

func flatten(prefix string, errs validation.Errors, out map[string]string) {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		name := k
		if prefix != "" {
			name = prefix + "." + k
		}
		var nested validation.Errors
		if errors.As(errs[k], &nested) {
			flatten(name, nested, out)
			continue
		}
		out[name] = strings.TrimSuffix(errs[k].Error(), ".")
	}
}
