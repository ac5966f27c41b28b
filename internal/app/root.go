package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/blackwell-systems/bookctl/internal/api"
	"github.com/blackwell-systems/bookctl/internal/config"
	"github.com/blackwell-systems/bookctl/internal/controller"
	"github.com/blackwell-systems/bookctl/internal/logging"
	"github.com/blackwell-systems/bookctl/internal/notify"
	"github.com/blackwell-systems/bookctl/internal/tui"
	"github.com/blackwell-systems/bookctl/internal/unified"
	"github.com/blackwell-systems/bookctl/internal/util"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfg       *config.Config
	ctrl      *controller.Controller
	log       *logrus.Entry
	logCloser io.Closer

	// where command output goes; swapped in tests
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	flagNoColor       bool
	flagNoInteractive bool
	flagConfig        string
	flagAPI           string
)

// annotation marking commands that run without a catalog client
const annotNoClient = "bookctl/no-client"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bookctl",
		Short: "Browse and edit a remote book catalog",
		Long: `bookctl manages the books held by a catalog service over its REST API.

List, inspect, add, edit and delete books from the command line, or run
'bookctl' with no arguments to open the interactive catalog browser.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tui.ShouldUseTUI(cmd) {
				return unified.Run(cmd.Context(), ctrl, log)
			}
			return cmd.Help()
		},
	}

	root.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	root.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/bookctl/config.yml)")
	root.PersistentFlags().StringVar(&flagAPI, "api", "", "Catalog service base URL (overrides api.base_url)")

	root.PersistentPreRunE = setup
	root.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if logCloser == nil {
			return nil
		}
		err := logCloser.Close()
		logCloser = nil
		return err
	}

	root.AddCommand(
		newListCmd(),
		newInfoCmd(),
		newAddCmd(),
		newEditCmd(),
		newDeleteCmd(),
		newExportCmd(),
		newConfigCmd(),
		newVersionCmd(),
		newCompletionCmd(),
	)
	return root
}

// setup loads config and wires the logger, API client and controller
// shared by every command.
func setup(cmd *cobra.Command, args []string) error {
	util.InitColor(flagNoColor)
	ctrl, log, logCloser = nil, nil, nil

	if flagConfig != "" {
		if err := os.Setenv("BOOKCTL_CONFIG", flagConfig); err != nil {
			return err
		}
	}

	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagAPI != "" {
		cfg.API.BaseURL = flagAPI
	}
	if cfg.UI.NoColor {
		color.NoColor = true
	}

	if skipsClient(cmd) {
		return nil
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config (%s): %w", config.Path(), err)
	}

	log, logCloser, err = logging.New(cfg.Log, appVersion)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}

	client := api.New(cfg.API.BaseURL,
		api.WithTimeout(cfg.API.Timeout),
		api.WithUserAgent(cfg.API.EffectiveUserAgent(appVersion)),
		api.WithLogger(log),
	)
	ctrl = controller.New(client,
		controller.WithQueue(notify.New(cfg.UI.NotifyTimeout)),
		controller.WithLogger(log),
	)
	log.WithFields(logrus.Fields{
		"command":  cmd.CommandPath(),
		"base_url": client.BaseURL(),
	}).Debug("client ready")
	return nil
}

func skipsClient(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[annotNoClient]; ok {
			return true
		}
	}
	return false
}

// Execute is the entry point called from main.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, color.RedString("error:"), err)
		stop()
		os.Exit(1)
	}
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Fprintln(stdout, color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Fprintln(stdout, color.CyanString(fmt.Sprintf(format, a...)))
}

func printField(label, value string) {
	fmt.Fprintf(stdout, "  %-14s %s\n", color.CyanString(label+":"), value)
}

// report prints the controller's notification after an intent succeeded.
func report() {
	n := ctrl.Snapshot().Notice
	if !n.Open {
		return
	}
	if n.Severity == notify.SeveritySuccess {
		ok("%s", n.Message)
		return
	}
	warn("%s", n.Message)
}

// failure turns a failed intent into the error shown to the user: the
// notification text when one is open.
func failure(err error) error {
	if errors.Is(err, controller.ErrUnknownBook) {
		return err
	}
	if n := ctrl.Snapshot().Notice; n.Open && n.Severity != notify.SeveritySuccess {
		return errors.New(n.Message)
	}
	return err
}
