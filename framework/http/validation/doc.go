// Package validation provides schema-driven input validation with field
// transforms and cross-field refinements.
//
// # Overview
//
// A Schema is an ordered list of fields, each with an ordered chain of
// steps. A step either checks the current value (predicate) or replaces it
// (transform). The chain for a field stops at the first failing step, so
// each invalid field carries exactly one message.
//
// # Basic Usage
//
//	s := validation.Schema{
//	    Fields: []validation.FieldRules{
//	        validation.Field("name",
//	            validation.Required("O nome é obrigatório"),
//	            validation.Transform(strings.ToUpper),
//	        ),
//	        validation.Field("password", validation.MinLength(6, "Senha curta")),
//	        validation.Field("confirm", validation.NotEmpty("Confirme a senha")),
//	    },
//	    Refinements: []validation.Refinement{
//	        validation.Refine("confirm", []string{"password", "confirm"},
//	            validation.Equal("password", "confirm"),
//	            validation.KindMismatch, "As senhas precisam ser iguais"),
//	    },
//	}
//
//	values, errs := s.Validate(map[string]string{"name": "ana", ...})
//	if errs.Has() {
//	    // errs.First("name"), errs.Kind("name")
//	    // JSON: {"errors": {"field": ["message"]}}
//	}
//
// # Available Steps
//
// Presence:
//   - Required(msg)  — non-empty after trimming whitespace
//   - NotEmpty(msg)  — non-empty raw string
//
// Length and format:
//   - MinLength(n, msg) — at least n UTF-8 characters
//   - Email(msg)        — well-formed address (local@domain.tld)
//   - HasSuffix(s, msg) — value ends with s, case-sensitive
//
// Transforms:
//   - Sanitize()                   — strip markup with a strict HTML policy
//   - Transform(fn)                — infallible string transform
//   - TransformErr(fn, kind, msg)  — transform that may reject the value
//
// # Refinements
//
// A Refinement runs after the field chains, and only when every field it
// depends on passed. Its failure is attached to its own path, which need
// not be one of the fields it reads.
//
// # Error Bag
//
// Errors keeps one entry per field, holding the message and Kind of the
// first failing rule:
//
//	{
//	  "errors": {
//	    "email":           ["O e-mail precisa ser do gmail."],
//	    "confirmPassword": ["As senhas precisam ser iguais"]
//	  }
//	}
package validation
