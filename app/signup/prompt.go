package signup

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/km-arc/go-signup/framework/http/validation"
)

// ErrInterrupted is returned when the user aborts the terminal form.
var ErrInterrupted = errors.New("signup: interrupted")

// Prompter asks the user for one value at a time.
type Prompter interface {
	Input(ctx context.Context, label, current string) (string, error)
	Password(ctx context.Context, label string) (string, error)
}

// SurveyPrompter is the interactive terminal Prompter.
type SurveyPrompter struct{}

func (SurveyPrompter) Input(ctx context.Context, label, current string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	if err := survey.AskOne(&survey.Input{Message: label, Default: current}, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (SurveyPrompter) Password(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	if err := survey.AskOne(&survey.Password{Message: label}, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrInterrupted
	}
	return err
}

// RunPrompt fills form through p and submits it, re-asking only the
// rejected fields until a submission is valid. onInvalid, when set, sees
// the error bag of every rejected attempt.
func RunPrompt(ctx context.Context, form *Form, p Prompter, onInvalid func(*validation.Errors)) (ValidatedUser, error) {
	ask := FieldNames()
	for {
		for _, in := range inputs {
			if !contains(ask, in.Name) {
				continue
			}
			var (
				value string
				err   error
			)
			if in.Type == "password" {
				value, err = p.Password(ctx, in.Label)
			} else {
				value, err = p.Input(ctx, in.Label, form.Value(in.Name))
			}
			if err != nil {
				return ValidatedUser{}, err
			}
			form.Set(in.Name, value)
		}

		if user, ok := form.Submit(ctx); ok {
			return user, nil
		}
		if onInvalid != nil {
			onInvalid(form.Errors())
		}
		ask = form.Errors().Fields()
		if form.Errors().HasField(FieldPassword) && !contains(ask, FieldConfirmPassword) {
			ask = append(ask, FieldConfirmPassword)
		}
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
