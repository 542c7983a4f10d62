package levelup

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSubmission is wrapped by Errors.Err.
var ErrInvalidSubmission = errors.New("invalid level-up submission")

// Field names used in FieldError.Field.
const (
	FieldLevel        = "level"
	FieldAdvancements = "advancements"
	FieldDomainCard   = "domain_card"
	FieldTraits       = "traits"
	FieldExperiences  = "experiences"
	FieldExchange     = "exchange"
	FieldVitalSlots   = "vital_slots"
)

// FieldError is one human-readable validation failure tagged with the submission field it
// concerns.
type FieldError struct {
	Field   string `json:"field" yaml:"field"`
	Message string `json:"message" yaml:"message"`
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Message
}

// Errors is an ordered list of validation failures. A nil or empty list means valid.
type Errors []FieldError

func (errs *Errors) add(field, message string) {
	*errs = append(*errs, FieldError{Field: field, Message: message})
}

func (errs *Errors) addf(field, format string, args ...any) {
	errs.add(field, fmt.Sprintf(format, args...))
}

// Valid reports whether the list is empty.
func (errs Errors) Valid() bool {
	return len(errs) == 0
}

// Fields groups messages by field, preserving message order within each field.
func (errs Errors) Fields() map[string][]string {
	out := make(map[string][]string, len(errs))
	for _, e := range errs {
		out[e.Field] = append(out[e.Field], e.Message)
	}
	return out
}

// Err converts the list into an error wrapping ErrInvalidSubmission, or nil when empty.
func (errs Errors) Err() error {
	if errs.Valid() {
		return nil
	}
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.String()
	}
	return fmt.Errorf("%w: %s", ErrInvalidSubmission, strings.Join(parts, "; "))
}
