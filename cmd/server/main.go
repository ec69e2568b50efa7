package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/srujalprusty/ChatAppServer/internal/app"
	"github.com/srujalprusty/ChatAppServer/internal/config"
	"github.com/srujalprusty/ChatAppServer/internal/log"
)

var (
	cfgPath  string
	addr     string
	mode     string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "chatapp-server",
	Short: "Realtime presence and room message relay",
	Long: `chatapp-server relays messages between clients over WebSocket.
Clients create or join named rooms and exchange messages fanned out to
room members, or (in direct mode) route messages point-to-point by
username.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&cfgPath, "config", "", "path to config file")
	rootCmd.Flags().StringVar(&addr, "addr", "", "HTTP listen address (overrides config)")
	rootCmd.Flags().StringVar(&mode, "mode", "", "presence mode: room or direct (overrides config)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
}

func run(cmd *cobra.Command, _ []string) error {
	bootLogger := log.New("info")

	cfg, path, err := config.Load(bootLogger, cfgPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.Addr = addr
	}
	if cmd.Flags().Changed("mode") {
		cfg.Mode = mode
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	logger := log.New(cfg.LogLevel)
	logger.Debug().Str("config", path).Msg("configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info().Str("addr", cfg.Addr).Str("mode", cfg.Mode).Msg("starting chatapp server")
	if err := application.Run(ctx); err != nil {
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
