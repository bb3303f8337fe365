package signup

import (
	"fmt"
	"log/slog"

	"github.com/km-arc/go-signup/framework/http/validation"
)

// Options tunes the createUser schema.
type Options struct {
	EmailDomain string // required suffix, e.g. "@gmail.com"
	PasswordMin int
}

// DefaultOptions matches the stock form.
func DefaultOptions() Options {
	return Options{EmailDomain: "@gmail.com", PasswordMin: 6}
}

// NewSchema builds the registration schema.
func NewSchema(opts Options) validation.Schema {
	def := DefaultOptions()
	if opts.EmailDomain == "" {
		opts.EmailDomain = def.EmailDomain
	}
	if opts.PasswordMin <= 0 {
		opts.PasswordMin = def.PasswordMin
	}

	return validation.Schema{
		Fields: []validation.FieldRules{
			validation.Field(FieldName,
				validation.Required(msgNameRequired),
				validation.Transform(TitleCase),
			),
			validation.Field(FieldAge,
				validation.NotEmpty(msgAgeRequired),
				validation.TransformErr(ParseAge, validation.KindNotANumber, msgAgeNotANumber),
			),
			validation.Field(FieldEmail,
				validation.NotEmpty(msgEmailRequired),
				validation.Email(msgEmailFormat),
				validation.HasSuffix(opts.EmailDomain, msgEmailDomain),
			),
			validation.Field(FieldPassword,
				validation.MinLength(opts.PasswordMin, fmt.Sprintf(msgPasswordMin, opts.PasswordMin)),
			),
			validation.Field(FieldConfirmPassword,
				validation.NotEmpty(msgConfirmRequired),
			),
		},
		Refinements: []validation.Refinement{
			validation.Refine(FieldConfirmPassword,
				[]string{FieldPassword, FieldConfirmPassword},
				validation.Equal(FieldPassword, FieldConfirmPassword),
				validation.KindMismatch, msgPasswordsMismatch),
		},
	}
}

// ValidatedUser is a registration that passed every rule.
type ValidatedUser struct {
	Name     string `json:"name" yaml:"name"`
	Age      int    `json:"age" yaml:"age"`
	Email    string `json:"email" yaml:"email"`
	Password string `json:"-" yaml:"-"`
}

// LogValue keeps the password out of logs.
func (u ValidatedUser) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", u.Name),
		slog.Int("age", u.Age),
		slog.String("email", u.Email),
		slog.String("password", "[redacted]"),
	)
}

func userFromValues(v validation.Values) ValidatedUser {
	return ValidatedUser{
		Name:     v.String(FieldName),
		Age:      v.Int(FieldAge),
		Email:    v.String(FieldEmail),
		Password: v.String(FieldPassword),
	}
}
