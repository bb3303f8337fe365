package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: ")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFiles []string

	rootCmd := &cobra.Command{
		Use:   "signup",
		Short: "Registration form with schema validation",
		Long: `signup serves a registration form (name, age, e-mail, password and
confirmation), validates it and logs every user that passes.

The same validation runs from the terminal with "validate" and "prompt".`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv files to load (default .env)")

	rootCmd.AddCommand(
		serveCmd(&envFiles),
		validateCmd(&envFiles),
		promptCmd(&envFiles),
		versionCmd(),
	)
	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "signup %s (%s)\n", version, commit)
		},
	}
}
