package signup_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/km-arc/go-signup/app/signup"
)

func newTestForm(users *[]signup.ValidatedUser) *signup.Form {
	return signup.NewForm(signup.NewSchema(signup.DefaultOptions()), func(_ context.Context, u signup.ValidatedUser) {
		*users = append(*users, u)
	})
}

func TestForm_ValidSubmission(t *testing.T) {
	var users []signup.ValidatedUser
	form := newTestForm(&users)

	if form.Status() != signup.Idle || form.Outcome() != signup.Idle {
		t.Fatalf("new form: got %v/%v want idle/idle", form.Status(), form.Outcome())
	}

	user, ok := form.SubmitValues(context.Background(), validInput())
	if !ok {
		t.Fatalf("expected valid submission, errors: %v", form.Errors().Map())
	}

	want := signup.ValidatedUser{Name: "João Silva", Age: 25, Email: "joao@gmail.com", Password: "abcdef"}
	if diff := cmp.Diff(want, user); diff != "" {
		t.Errorf("user mismatch (-want +got):\n%s", diff)
	}
	if form.Status() != signup.Valid {
		t.Errorf("status: got %v want valid", form.Status())
	}
	if diff := cmp.Diff([]signup.ValidatedUser{want}, users); diff != "" {
		t.Errorf("completion calls (-want +got):\n%s", diff)
	}
	if got, ok := form.User(); !ok || got != want {
		t.Errorf("User(): got (%+v, %v)", got, ok)
	}
}

func TestForm_InvalidSubmissionReturnsToIdle(t *testing.T) {
	var users []signup.ValidatedUser
	form := newTestForm(&users)

	_, ok := form.SubmitValues(context.Background(), with(signup.FieldEmail, "user@yahoo.com"))
	if ok {
		t.Fatal("expected invalid submission")
	}
	if form.Status() != signup.Idle {
		t.Errorf("status: got %v want idle", form.Status())
	}
	if form.Outcome() != signup.Invalid {
		t.Errorf("outcome: got %v want invalid", form.Outcome())
	}
	if len(users) != 0 {
		t.Errorf("completion must not run on invalid input, ran %d times", len(users))
	}
	if _, ok := form.User(); ok {
		t.Error("invalid submission must not expose a user")
	}
}

func TestForm_ErrorsRebuiltOnEachAttempt(t *testing.T) {
	var users []signup.ValidatedUser
	form := newTestForm(&users)
	ctx := context.Background()

	form.SubmitValues(ctx, with(signup.FieldName, ""))
	if !form.Errors().HasField(signup.FieldName) {
		t.Fatal("expected name error after first attempt")
	}

	form.Set(signup.FieldName, "ana")
	form.Set(signup.FieldAge, "")
	form.Submit(ctx)

	if form.Errors().HasField(signup.FieldName) {
		t.Error("stale name error survived resubmission")
	}
	if !form.Errors().HasField(signup.FieldAge) {
		t.Error("expected age error after second attempt")
	}
}

func TestForm_ResubmitIsIdempotent(t *testing.T) {
	var users []signup.ValidatedUser
	form := newTestForm(&users)
	ctx := context.Background()

	first, _ := form.SubmitValues(ctx, validInput())
	second, _ := form.Submit(ctx)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("resubmission changed the user (-first +second):\n%s", diff)
	}
	if len(users) != 2 {
		t.Errorf("completion calls: got %d want 2", len(users))
	}
}

func TestForm_SubmitValuesCopiesInput(t *testing.T) {
	var users []signup.ValidatedUser
	form := newTestForm(&users)
	in := validInput()

	form.SubmitValues(context.Background(), in)
	in[signup.FieldName] = "changed"

	if got := form.Value(signup.FieldName); got != "joão silva" {
		t.Errorf("form value mutated through caller map: %q", got)
	}
}

func TestForm_NilCompletion(t *testing.T) {
	form := signup.NewForm(signup.NewSchema(signup.DefaultOptions()), nil)
	if _, ok := form.SubmitValues(context.Background(), validInput()); !ok {
		t.Fatalf("expected valid submission, errors: %v", form.Errors().Map())
	}
}

func TestStatus_String(t *testing.T) {
	for status, want := range map[signup.Status]string{
		signup.Idle:       "idle",
		signup.Validating: "validating",
		signup.Valid:      "valid",
		signup.Invalid:    "invalid",
		signup.Status(42): "unknown",
	} {
		if got := status.String(); got != want {
			t.Errorf("Status(%d).String(): got %q want %q", int(status), got, want)
		}
	}
}
