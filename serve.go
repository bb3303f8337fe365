package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/km-arc/go-signup/app/signup"
	"github.com/km-arc/go-signup/framework/app"
	"github.com/km-arc/go-signup/framework/providers"
)

// newApplication boots the HTTP application with the signup form mounted.
func newApplication(envFiles []string) *app.Application {
	application := app.New(envFiles...)
	application.Register(&providers.ViewServiceProvider{FS: signup.Views()})
	application.Register(&signup.ServiceProvider{})
	return application
}

func serveCmd(envFiles *[]string) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the registration form over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if port != "" {
				os.Setenv("APP_PORT", port)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return newApplication(*envFiles).Run(ctx)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides APP_PORT)")
	return cmd
}
