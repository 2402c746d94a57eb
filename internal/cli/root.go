// Package cli wires the cobra command tree. Every subcommand loads config,
// opens the store, performs one operation and exits; the bare command and
// `ui` start the interactive list instead.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/store/jsonstore"
	"github.com/idilsaglam/todolist/internal/tui"
	"github.com/idilsaglam/todolist/internal/ui"
)

// Version is stamped at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// usageError marks bad invocations so Execute can exit with ExitUsage.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, a ...interface{}) error {
	return usageError{fmt.Errorf(format, a...)}
}

// app carries what a command run needs; filled by PersistentPreRunE.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	logger *log.Logger
	closer io.Closer
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd, a := newRoot()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	a.teardown()
	if err != nil {
		ui.Fail(stderr, err.Error())
		var ue usageError
		if errors.As(err, &ue) {
			return ExitUsage
		}
		return ExitError
	}
	return ExitOK
}

// New builds the root command and its subcommands.
func New() *cobra.Command {
	cmd, _ := newRoot()
	return cmd
}

func newRoot() (*cobra.Command, *app) {
	a := &app{v: config.New()}

	cmd := &cobra.Command{
		Use:   "todo",
		Short: "A to-do list for the terminal.",
		Long: "todo keeps an ordered to-do list on disk.\n" +
			"Run it without a subcommand for the interactive list.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usagef("unknown command %q for %q", args[0], cmd.CommandPath())
			}
			return nil
		},
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { a.teardown() },
		RunE:              a.runUI,
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	bindFlags(a.v, cmd.PersistentFlags())

	addAdd(cmd, a)
	addList(cmd, a)
	addToggle(cmd, a)
	addRemove(cmd, a)
	addEdit(cmd, a)
	addDue(cmd, a)
	addMove(cmd, a)
	addBulk(cmd, a)
	addStats(cmd, a)
	addUI(cmd, a)
	addVersion(cmd)
	return cmd, a
}

// bindFlags declares the global flags and ties each to its config key, so a
// flag given on the command line beats the file and the environment.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.String("data-dir", "", "directory holding the saved list (default ~/.todo)")
	flags.Bool("dark", false, "start the interactive list in dark mode")
	flags.String("log-level", "", "debug, info, warn or error")
	flags.String("log-file", "", "log file (default <data-dir>/todo.log)")
	flags.String("color", "", "auto, always or never")
	for key, name := range map[string]string{
		config.KeyDataDir:  "data-dir",
		config.KeyDark:     "dark",
		config.KeyLogLevel: "log-level",
		config.KeyLogFile:  "log-file",
		config.KeyColor:    "color",
	} {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	if err := ui.SetColorMode(cfg.Color); err != nil {
		return usageError{err}
	}
	ui.SetTheme(cfg.Dark)

	logger, closer, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	a.logger, a.closer = logger, closer
	a.logger.Debug("command started", "cmd", cmd.CommandPath(), "config", cfg.File, "data_dir", cfg.DataDir)
	return nil
}

func (a *app) teardown() {
	if a.closer != nil {
		_ = a.closer.Close()
		a.closer = nil
	}
}

// openStore opens the on-disk list and reports a discarded snapshot on w.
func (a *app) openStore(w io.Writer) (*store.Store, error) {
	s, err := store.Open(jsonstore.New(a.cfg.DataDir), store.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}
	if lerr := s.LoadErr(); lerr != nil {
		ui.Warn(w, "saved list was unreadable and was set aside: "+lerr.Error())
	}
	s.Subscribe(func(ev store.Event) {
		a.logger.Info(strings.TrimSuffix(ev.Notice(), "!"), "op", ev.Kind, "id", ev.ID)
	})
	return s, nil
}

func (a *app) runUI(cmd *cobra.Command, _ []string) error {
	s, err := a.openStore(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	return tui.Run(s, tui.Options{Dark: a.cfg.Dark, Logger: a.logger})
}

func addUI(topLevel *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive list",
		Args:  noArgs,
		RunE:  a.runUI,
	}
	topLevel.AddCommand(cmd)
}

func addVersion(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "todo", Version)
			return err
		},
	}
	topLevel.AddCommand(cmd)
}
