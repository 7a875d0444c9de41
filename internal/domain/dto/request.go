// Package dto defines the HTTP request and response bodies of the tour API.
package dto

import "strings"

// QuoteRequest is the body of POST /api/v1/pricing/quote.
//
// GroupSize and MarginPercent must be JSON integers when present; a fraction
// or a string fails binding. Missing values take the configured defaults.
//
// @Description Request a price quote for one package
type QuoteRequest struct {
	Package       string `json:"package" binding:"required" example:"Budget"`
	GroupSize     *int   `json:"group_size,omitempty" example:"10"`
	MarginPercent *int   `json:"margin_percent,omitempty" example:"25"`
} // @name QuoteRequest

// ValidationError is a single rejected field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ErrMissingPackage is returned for an empty or blank package name.
var ErrMissingPackage = &ValidationError{Field: "package", Message: "is required"}

// Validate rejects a blank package name. Group size and margin accept any
// integer.
func (r *QuoteRequest) Validate() error {
	if strings.TrimSpace(r.Package) == "" {
		return ErrMissingPackage
	}
	return nil
}

// Resolve returns the group size and margin, falling back to the defaults.
func (r *QuoteRequest) Resolve(defaultGroupSize, defaultMargin int) (groupSize, marginPercent int) {
	groupSize, marginPercent = defaultGroupSize, defaultMargin
	if r.GroupSize != nil {
		groupSize = *r.GroupSize
	}
	if r.MarginPercent != nil {
		marginPercent = *r.MarginPercent
	}
	return groupSize, marginPercent
}
