package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/km-arc/go-signup/app/signup"
	"github.com/km-arc/go-signup/framework/config"
	"github.com/km-arc/go-signup/framework/http/validation"
)

// schemaFromConfig builds the schema with the form options of the env files.
func schemaFromConfig(envFiles []string) validation.Schema {
	cfg := config.Load(envFiles...)
	return signup.NewSchema(signup.Options{
		EmailDomain: cfg.Form.EmailDomain,
		PasswordMin: cfg.Form.PasswordMin,
	})
}

// writeUser encodes a validated user as json or yaml.
func writeUser(w io.Writer, format string, user signup.ValidatedUser) error {
	switch format {
	case "yaml", "yml":
		out, err := yaml.Marshal(user)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(user)
	}
	return fmt.Errorf("unknown output format %q (want json or yaml)", format)
}

// writeErrors prints one row per invalid field.
func writeErrors(w io.Writer, errs *validation.Errors) {
	color.New(color.FgRed, color.Bold).Fprintln(w, "Cadastro inválido:")

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Campo", "Erro", "Mensagem"})
	table.SetAutoWrapText(false)
	for _, field := range errs.Fields() {
		table.Append([]string{field, string(errs.Kind(field)), errs.First(field)})
	}
	table.Render()
}
