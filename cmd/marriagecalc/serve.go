package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rgehrsitz/marriagecalc/internal/api"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculator as a JSON API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := appConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("listen") {
			cfg.ListenAddr, _ = cmd.Flags().GetString("listen")
		}
		logger := newLogger(cfg)

		srv := api.NewServer(newEngine(cfg, logger), logger)
		srv.AllowedOrigins = cfg.AllowedOrigins
		srv.Timeout = cfg.Timeout
		if accessLog, _ := cmd.Flags().GetBool("access-log"); accessLog {
			srv.AccessLog = os.Stdout
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.ListenAndServe(ctx, cfg.ListenAddr)
	},
}

func init() {
	serveCmd.Flags().String("listen", ":8080", "Address to listen on")
	serveCmd.Flags().Bool("access-log", true, "Write a combined access log to stdout")
}
