package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/mazerun"
	"github.com/pdrpinto/mazerun/internal/config"
	"github.com/pdrpinto/mazerun/internal/logging"
	"github.com/pdrpinto/mazerun/internal/telemetry"
)

// app carries what PersistentPreRunE prepared for the subcommands.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	options  []mazerun.Option
	closeLog func() error
	shutdown func(context.Context) error
}

// execute runs the command tree and always tears down what setup built,
// including when a subcommand fails. Cobra skips PersistentPostRunE on error.
func execute(ctx context.Context, state *app, args []string, stdout, stderr io.Writer, stdin io.Reader) error {
	cmd := newRootCmd(state)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetIn(stdin)
	err := cmd.ExecuteContext(ctx)
	return errors.Join(err, state.teardown(ctx))
}

func newRootCmd(state *app) *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	rootCmd := &cobra.Command{
		Use:           "mazerun",
		Short:         "Minimum-cost and all-optimal-path search over oriented grid mazes",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return state.setup(cmd.Context(), configPath, logLevel, cmd.ErrOrStderr())
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level")

	rootCmd.AddCommand(
		newSolveCmd(state),
		newBatchCmd(state),
		newViewCmd(state),
		newConfigCmd(),
	)
	return rootCmd
}

func (a *app) setup(ctx context.Context, configPath, logLevel string, stderr io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	logger, closeLog, err := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
		Output: stderr,
	})
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := telemetry.Init(ctx, telemetry.Config{
		TraceExporter:  cfg.Telemetry.TraceExporter,
		MetricExporter: cfg.Telemetry.MetricExporter,
		OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
		OTLPInsecure:   cfg.Telemetry.OTLPInsecure,
		Writer:         stderr,
	})
	if err != nil {
		_ = closeLog()
		return err
	}

	options, err := cfg.Search.Options()
	if err != nil {
		return errors.Join(err, shutdown(ctx), closeLog())
	}

	a.cfg = cfg
	a.logger = logger
	a.options = append(options, mazerun.WithLogger(logger))
	a.closeLog = closeLog
	a.shutdown = shutdown
	return nil
}

// teardown flushes telemetry and closes the log file. It is safe to call
// more than once and before setup.
func (a *app) teardown(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	var errs []error
	if a.shutdown != nil {
		errs = append(errs, a.shutdown(ctx))
		a.shutdown = nil
	}
	if a.closeLog != nil {
		errs = append(errs, a.closeLog())
		a.closeLog = nil
	}
	return errors.Join(errs...)
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create configuration files",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration to path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); err == nil {
				return fmt.Errorf("%s already exists", args[0])
			}
			if err := config.Write(args[0], config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	})
	return configCmd
}

// readGrid loads a maze from path, or from in when path is "-".
func readGrid(path string, in io.Reader) (*mazerun.Grid, string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}
	grid, err := mazerun.ParseGrid(string(data))
	if err != nil {
		return nil, "", fmt.Errorf("parse %s: %w", path, err)
	}
	return grid, string(data), nil
}
