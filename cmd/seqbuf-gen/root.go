package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cli carries state shared by all subcommands.
type cli struct {
	logLevel string
	logger   *zap.Logger
}

// newRootCmd constructs the root command and registers gen, check and init.
func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "seqbuf-gen",
		Short:         "Generate bounds-checked growable array types",
		Long:          "seqbuf-gen emits one non-generic sequence buffer type per manifest instance.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(c.logLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			c.logger = logger

			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = c.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "info", "Log level: debug|info|warn|error")

	root.AddCommand(newGenCmd(c))
	root.AddCommand(newCheckCmd(c))
	root.AddCommand(newInitCmd(c))

	return root
}

// newLogger builds a console logger writing to w.
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), lvl)

	return zap.New(core), nil
}
