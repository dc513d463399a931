// Package root contains the root command for the application
package root

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"fjacquet/finance-tracker/internal/alert"
	"fjacquet/finance-tracker/internal/config"
	"fjacquet/finance-tracker/internal/container"
	"fjacquet/finance-tracker/internal/dateutils"
	"fjacquet/finance-tracker/internal/models"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	DataFile   string
	ConfigFile string
	LogLevel   string
}

var (
	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "finance-tracker",
		Short: "A personal finance tracker for income, expenses, limits and savings targets.",
		Long: `finance-tracker records income and expenses per month, tracks spending
limits and savings targets, keeps notes and reminders, and stores everything
in a single JSON file that can be exported and imported.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	// SharedFlags holds the persistent flags of the root command
	SharedFlags = CommonFlags{}

	// ContainerOptions are appended when a session builds its container.
	// Tests use it to swap the logger or the state store.
	ContainerOptions []container.Option

	// Now returns the current time; the default period is derived from it.
	Now = time.Now
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.DataFile, "data", "d", "", "Finance data file (default from data.file)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.ConfigFile, "config", "", "Config file (default: config.yaml in $HOME/.finance-tracker, .finance-tracker or .)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level override (debug, info, warn, error)")
}

// NewContainer loads the configuration, applies the flag overrides and
// wires the application.
func NewContainer(out io.Writer) (*container.Container, error) {
	cfg, err := config.Load(SharedFlags.ConfigFile)
	if err != nil {
		return nil, err
	}
	if SharedFlags.DataFile != "" {
		cfg.Data.File = SharedFlags.DataFile
	}
	if SharedFlags.LogLevel != "" {
		cfg.Log.Level = SharedFlags.LogLevel
	}

	opts := []container.Option{container.WithAlertSink(NewAlertPrinter(out))}
	opts = append(opts, ContainerOptions...)
	return container.NewContainer(cfg, opts...)
}

// RunSession loads the persisted state, runs fn and, when mutate is set,
// saves the state back. Nothing is saved when fn fails.
func RunSession(cmd *cobra.Command, mutate bool, fn func(c *container.Container) error) error {
	c, err := NewContainer(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	if err := c.Load(); err != nil {
		return err
	}
	if err := fn(c); err != nil {
		return err
	}
	if mutate {
		return c.Save()
	}
	return nil
}

// ReplaceSession runs fn on an empty tracker and saves the result when fn
// succeeds. The persisted state is not read, so a data file that no longer
// decodes does not block commands that overwrite it.
func ReplaceSession(cmd *cobra.Command, fn func(c *container.Container) error) error {
	c, err := NewContainer(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	if err := fn(c); err != nil {
		return err
	}
	return c.Save()
}

// NewAlertPrinter returns a sink that prints alerts for the user.
func NewAlertPrinter(out io.Writer) alert.Sink {
	return alert.SinkFunc(func(a alert.Alert) {
		fmt.Fprintf(out, "! %s\n", a.Message)
	})
}

// CurrentPeriod returns the period containing Now.
func CurrentPeriod() models.Period {
	return models.Period(dateutils.PeriodOf(Now()))
}

// ParsePeriod resolves a --period flag value. Empty means the current
// month; "all" selects every period when allowAll is set.
func ParsePeriod(value string, allowAll bool) (models.Period, error) {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		return CurrentPeriod(), nil
	case allowAll && strings.EqualFold(value, "all"):
		return models.AllPeriods, nil
	}
	return models.ParsePeriod(value)
}

// ParseIndex parses a 0-based list index argument.
func ParseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: must be a number", arg)
	}
	return index, nil
}
