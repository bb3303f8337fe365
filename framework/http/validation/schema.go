package validation

// ── Types ────────────────────────────────────────────────────────────────────

// Step checks or transforms one field value. A step that returns a non-nil
// Failure stops the chain for its field.
type Step func(value any) (any, *Failure)

// FieldRules is the ordered chain of steps for one input field.
type FieldRules struct {
	Name  string
	Steps []Step
}

// Field builds the fail-fast chain for name.
func Field(name string, steps ...Step) FieldRules {
	return FieldRules{Name: name, Steps: steps}
}

// Predicate is a cross-field check over the transformed values.
type Predicate func(values Values) bool

// Refinement is a cross-field rule whose failure is reported on Path.
type Refinement struct {
	Path      string
	DependsOn []string
	Check     Predicate
	Failure   *Failure
}

// Refine builds a Refinement that only runs when every field in deps passed.
func Refine(path string, deps []string, check Predicate, kind Kind, msg string) Refinement {
	return Refinement{Path: path, DependsOn: deps, Check: check, Failure: Fail(kind, msg)}
}

// Equal reports whether two transformed fields hold the same value.
func Equal(a, b string) Predicate {
	return func(values Values) bool {
		return values[a] == values[b]
	}
}

// Values holds the transformed output of every field, keyed by field name.
type Values map[string]any

// String returns a string value, or "" when absent or of another type.
func (v Values) String(key string) string {
	s, _ := v[key].(string)
	return s
}

// Int returns an int value, or 0 when absent or of another type.
func (v Values) Int(key string) int {
	i, _ := v[key].(int)
	return i
}

// ── Schema ───────────────────────────────────────────────────────────────────

// Schema is a set of field chains plus cross-field refinements.
type Schema struct {
	Fields      []FieldRules
	Refinements []Refinement
}

// Validate runs every field chain, then every refinement whose
// dependencies passed. On any failure the returned Values is nil:
// output is never partially valid.
func (s Schema) Validate(input map[string]string) (Values, *Errors) {
	errs := &Errors{}
	values := make(Values, len(s.Fields))

	for _, field := range s.Fields {
		out, failure := runChain(input[field.Name], field.Steps)
		if failure != nil {
			errs.add(field.Name, failure)
			continue
		}
		values[field.Name] = out
	}

	for _, ref := range s.Refinements {
		if errs.HasField(ref.Path) || !passed(values, ref.DependsOn) {
			continue
		}
		if !ref.Check(values) {
			errs.add(ref.Path, ref.Failure)
		}
	}

	if errs.Has() {
		return nil, errs
	}
	return values, errs
}

func runChain(raw string, steps []Step) (any, *Failure) {
	var value any = raw
	for _, step := range steps {
		next, failure := step(value)
		if failure != nil {
			return nil, failure
		}
		value = next
	}
	return value, nil
}

func passed(values Values, deps []string) bool {
	for _, dep := range deps {
		if _, ok := values[dep]; !ok {
			return false
		}
	}
	return true
}
