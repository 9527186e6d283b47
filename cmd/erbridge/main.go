package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wheelibin/erbridge/internal/config"
	"github.com/wheelibin/erbridge/internal/easyremote"
	"github.com/wheelibin/erbridge/internal/lights"
	"gopkg.in/natefinch/lumberjack.v2"
)

type app struct {
	v          *viper.Viper
	configFile string
	cfg        *config.Config
	logger     *log.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "erbridge",
		Short:         "Expose Easy Remote lighting objects as HomeKit lights",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configFile, "config", "c", "", "config file (default: search /etc/erbridge, $HOME/.config/erbridge, .)")
	flags.String("host", "", "address of the machine running the lighting software")
	flags.String("mode", "", "colour mode of the lights (rgb or hs)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	_ = a.v.BindPFlag("host", flags.Lookup("host"))
	_ = a.v.BindPFlag("mode", flags.Lookup("mode"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))

	root.AddCommand(
		newServeCmd(a),
		newListCmd(a),
		newOnCmd(a),
		newOffCmd(a),
	)

	return root
}

func (a *app) load() error {
	cfg, err := config.ReadConfig(a.v, a.configFile)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

func newLogger(cfg config.LogConfig) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var out io.Writer = os.Stderr
	if cfg.File != "" {
		out = &lumberjack.Logger{
			Filename: cfg.File,
			MaxAge:   3,
		}
	}

	return log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		ReportCaller:    level == log.DebugLevel,
		TimeFormat:      "2006/01/02 15:04:05",
	}), nil
}

func (a *app) lightService() *lights.LightService {
	api := easyremote.NewEasyRemoteAPIService(*a.cfg, a.logger)
	return lights.NewLightService(*a.cfg, a.logger, api)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
