package main

import (
	"context"
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/km-arc/go-signup/app/signup"
	"github.com/km-arc/go-signup/framework/http/validation"
)

// errInvalid makes the command exit non-zero after the table is printed.
var errInvalid = errors.New("validation failed")

func validateCmd(envFiles *[]string) *cobra.Command {
	var (
		values = make(map[string]*string)
		output string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate one registration given as flags",
		Example: `  signup validate --name "joão silva" --age 25 --email joao@gmail.com \
      --password abcdef --confirm-password abcdef`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := make(map[string]string, len(values))
			for field, v := range values {
				in[field] = *v
			}

			var writeErr error
			form := signup.NewForm(schemaFromConfig(*envFiles), func(_ context.Context, user signup.ValidatedUser) {
				writeErr = writeUser(cmd.OutOrStdout(), output, user)
			})
			if _, ok := form.SubmitValues(cmd.Context(), in); !ok {
				writeErrors(cmd.OutOrStdout(), form.Errors())
				return errInvalid
			}
			return writeErr
		},
	}

	flags := cmd.Flags()
	values[signup.FieldName] = flags.String("name", "", "full name")
	values[signup.FieldAge] = flags.String("age", "", "age")
	values[signup.FieldEmail] = flags.String("email", "", "e-mail address")
	values[signup.FieldPassword] = flags.String("password", "", "password")
	values[signup.FieldConfirmPassword] = flags.String("confirm-password", "", "password confirmation")
	flags.StringVarP(&output, "output", "o", "json", "output format: json or yaml")
	return cmd
}

func promptCmd(envFiles *[]string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Fill in the registration form interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			form := signup.NewForm(schemaFromConfig(*envFiles), nil)
			user, err := signup.RunPrompt(cmd.Context(), form, signup.SurveyPrompter{}, func(errs *validation.Errors) {
				writeErrors(cmd.ErrOrStderr(), errs)
			})
			if err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "Cadastro realizado.")
			return writeUser(cmd.OutOrStdout(), output, user)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "json", "output format: json or yaml")
	return cmd
}
