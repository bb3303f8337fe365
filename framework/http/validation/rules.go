package validation

import (
	"fmt"
	"html"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// emailPattern accepts local@label.label.tld with a letters-only TLD of at
// least two characters. Leading dots and ".." are rejected separately.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9_'+\-.]*[A-Za-z0-9_+\-]@([A-Za-z0-9][A-Za-z0-9\-]*\.)+[A-Za-z]{2,}$`)

var (
	strictPolicyOnce sync.Once
	strictPolicy     *bluemonday.Policy
)

// ── Presence ─────────────────────────────────────────────────────────────────

// Required fails when the value is empty after trimming whitespace.
func Required(msg string) Step {
	return stringStep(func(s string) (any, *Failure) {
		if strings.TrimSpace(s) == "" {
			return nil, Fail(KindEmpty, msg)
		}
		return s, nil
	})
}

// NotEmpty fails only on the empty string; whitespace counts as content.
func NotEmpty(msg string) Step {
	return stringStep(func(s string) (any, *Failure) {
		if s == "" {
			return nil, Fail(KindEmpty, msg)
		}
		return s, nil
	})
}

// ── Length & format ──────────────────────────────────────────────────────────

// MinLength fails when the value has fewer than n characters.
// An empty value is reported as KindEmpty.
func MinLength(n int, msg string) Step {
	return stringStep(func(s string) (any, *Failure) {
		if utf8.RuneCountInString(s) >= n {
			return s, nil
		}
		if s == "" {
			return nil, Fail(KindEmpty, msg)
		}
		return nil, Fail(KindTooShort, msg)
	})
}

// Email fails when the value is not a well-formed address.
func Email(msg string) Step {
	return stringStep(func(s string) (any, *Failure) {
		if !IsEmail(s) {
			return nil, Fail(KindFormat, msg)
		}
		return s, nil
	})
}

// IsEmail reports whether s is a well-formed email address.
func IsEmail(s string) bool {
	if strings.HasPrefix(s, ".") || strings.Contains(s, "..") {
		return false
	}
	return emailPattern.MatchString(s)
}

// HasSuffix fails unless the value ends with suffix (case-sensitive).
func HasSuffix(suffix, msg string) Step {
	return stringStep(func(s string) (any, *Failure) {
		if !strings.HasSuffix(s, suffix) {
			return nil, Fail(KindDomain, msg)
		}
		return s, nil
	})
}

// ── Transforms ───────────────────────────────────────────────────────────────

// Sanitize strips all markup from the value and decodes entities, so the
// plain text survives while tags do not.
func Sanitize() Step {
	return stringStep(func(s string) (any, *Failure) {
		return html.UnescapeString(policy().Sanitize(s)), nil
	})
}

// Transform replaces the value with fn(value).
func Transform(fn func(string) string) Step {
	return stringStep(func(s string) (any, *Failure) {
		return fn(s), nil
	})
}

// TransformErr replaces the value with fn(value), failing with kind/msg
// when fn reports ok == false.
func TransformErr[T any](fn func(string) (T, bool), kind Kind, msg string) Step {
	return stringStep(func(s string) (any, *Failure) {
		out, ok := fn(s)
		if !ok {
			return nil, Fail(kind, msg)
		}
		return out, nil
	})
}

// ── helpers ─────────────────────────────────────────────────────────────────

func stringStep(fn func(string) (any, *Failure)) Step {
	return func(value any) (any, *Failure) {
		s, ok := value.(string)
		if !ok {
			panic(fmt.Sprintf("validation: string rule applied to %T", value))
		}
		return fn(s)
	}
}

func policy() *bluemonday.Policy {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}
