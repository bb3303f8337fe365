package signup

import (
	"context"

	"github.com/km-arc/go-signup/framework/http/validation"
)

// Status is the submission state of a Form.
type Status int

const (
	Idle Status = iota
	Validating
	Valid
	Invalid
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	}
	return "unknown"
}

// CompletionFunc receives every user that passes validation.
type CompletionFunc func(ctx context.Context, user ValidatedUser)

// Form is the state of one registration form: the raw values being edited,
// the error bag of the last attempt and, after a valid submission, the user.
type Form struct {
	schema   validation.Schema
	complete CompletionFunc

	status  Status
	outcome Status
	values  map[string]string
	errors  *validation.Errors
	user    *ValidatedUser
}

// NewForm creates an idle, empty form. complete may be nil.
func NewForm(schema validation.Schema, complete CompletionFunc) *Form {
	return &Form{
		schema:   schema,
		complete: complete,
		values:   make(map[string]string),
		errors:   &validation.Errors{},
	}
}

// Set updates one raw field value.
func (f *Form) Set(field, value string) { f.values[field] = value }

// Value returns the raw value of a field.
func (f *Form) Value(field string) string { return f.values[field] }

// Status returns the current state.
func (f *Form) Status() Status { return f.status }

// Outcome returns Valid or Invalid for the last submission, Idle before the
// first one.
func (f *Form) Outcome() Status { return f.outcome }

// Errors returns the error bag of the last submission.
func (f *Form) Errors() *validation.Errors { return f.errors }

// User returns the validated user of the last valid submission.
func (f *Form) User() (ValidatedUser, bool) {
	if f.user == nil {
		return ValidatedUser{}, false
	}
	return *f.user, true
}

// Submit validates the current values. A valid record is handed to the
// completion callback and the form ends in Valid; otherwise the error bag
// is rebuilt and the form returns to Idle for the next attempt.
func (f *Form) Submit(ctx context.Context) (ValidatedUser, bool) {
	f.status = Validating
	f.user = nil

	values, errs := f.schema.Validate(f.values)
	f.errors = errs
	if errs.Has() {
		f.outcome = Invalid
		f.status = Idle
		return ValidatedUser{}, false
	}

	user := userFromValues(values)
	f.user = &user
	f.outcome = Valid
	f.status = Valid
	if f.complete != nil {
		f.complete(ctx, user)
	}
	return user, true
}

// SubmitValues replaces all raw values and submits.
func (f *Form) SubmitValues(ctx context.Context, values map[string]string) (ValidatedUser, bool) {
	f.values = make(map[string]string, len(values))
	for k, v := range values {
		f.values[k] = v
	}
	return f.Submit(ctx)
}
