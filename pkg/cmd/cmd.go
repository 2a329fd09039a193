// Package cmd contains the command line interface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/cotishq/cloudnest/pkg/app"
	"github.com/cotishq/cloudnest/pkg/configs"
	"github.com/cotishq/cloudnest/pkg/log"
)

const shutdownTimeout = 10 * time.Second

var (
	configPath string

	rootCmd = &cobra.Command{
		Use:   "cloudnest",
		Short: "Personal cloud file storage service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app.NewApp(configPath)

			errCh := make(chan error, 1)
			go func() { errCh <- a.Run() }()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case sig := <-quit:
				log.Logger().Info().Str("signal", sig.String()).Msg("shutting down")
			}

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			return a.Shutdown(ctx)
		},
	}

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := configs.InitConfig(configPath); err != nil {
				return err
			}

			for key, value := range configs.GetViper().AllSettings() {
				fmt.Printf("%s: %v\n", key, value)
			}

			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file directory")
	rootCmd.AddCommand(serveCmd, configCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
