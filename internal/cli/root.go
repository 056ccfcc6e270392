package cli

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/aurelia-labs/au/internal/branding"
	"github.com/aurelia-labs/au/internal/cliopts"
	"github.com/aurelia-labs/au/internal/commands"
	"github.com/aurelia-labs/au/internal/config"
	"github.com/aurelia-labs/au/internal/filesystem"
	"github.com/aurelia-labs/au/internal/logging"
	"github.com/aurelia-labs/au/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Execute runs the CLI with args, writing to stdout and stderr.
func Execute(build commands.BuildInfo, args []string, stdout, stderr io.Writer) error {
	if args == nil {
		args = []string{}
	}
	root := newRootCmd(build, stdout, stderr)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.Execute()
}

// newRootCmd builds the single cobra command. Flag parsing is disabled so
// commands and project tasks see their arguments untouched.
func newRootCmd(build commands.BuildInfo, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   branding.CLIName() + " <command> [args]",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` CLI runs the built-in commands (help, generate, config, version)
and the tasks defined in the enclosing project's ` + branding.ProjectDir() + `/tasks directory.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config.Load()

			u := ui.NewWithWriters(stdout, stderr)
			u.SetNonInteractive(config.GetBool(config.KeyNonInteractive))

			level := config.Get(config.KeyLogLevel)
			logger, err := logging.GetLogger(level)
			if err != nil {
				u.Warningf("ignoring %s %q: %v", config.KeyLogLevel, level, err)
				logger = zap.NewNop()
			}
			defer func() { _ = logger.Sync() }()

			fsys := filesystem.NewOs()
			opts := cliopts.New(nil, cliopts.WorkingDir())
			exe, _ := os.Executable()
			mode := cliopts.DetectMode(fsys, exe)
			mode.Apply(opts)
			logger.Debug("detected run mode", zap.Stringer("mode", mode), zap.String("executable", exe))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			r := NewRunner(RunnerConfig{
				FS:      fsys,
				UI:      u,
				Options: opts,
				Logger:  logger,
				Build:   build,
			})

			var name string
			rest := args
			if len(args) > 0 {
				name, rest = args[0], args[1:]
			}
			if err := r.Run(ctx, name, rest); err != nil {
				u.Error(err.Error())
				return err
			}
			return nil
		},
	}
}
