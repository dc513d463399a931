// Package roottest provides helpers for running commands against a
// throwaway data file.
package roottest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/internal/container"
	"fjacquet/finance-tracker/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Env describes the isolated environment created by Setup.
type Env struct {
	Dir      string
	DataFile string
	Logger   *logging.MockLogger
}

// Setup isolates the working directory, home and flags for one test and
// points the data file into a temp directory. Now is fixed to January 2024.
func Setup(t *testing.T) Env {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", dir)
	for _, key := range []string{"FINANCE_DATA_FILE", "FINANCE_DISPLAY_CURRENCY", "FINANCE_DISPLAY_LOCALE", "FINANCE_LOG_LEVEL"} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}

	env := Env{
		Dir:      dir,
		DataFile: filepath.Join(dir, "finance-data.json"),
		Logger:   logging.NewMockLogger(),
	}

	prevFlags, prevOpts, prevNow := root.SharedFlags, root.ContainerOptions, root.Now
	root.SharedFlags = root.CommonFlags{DataFile: env.DataFile}
	root.ContainerOptions = []container.Option{container.WithLogger(env.Logger)}
	root.Now = func() time.Time { return time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() {
		root.SharedFlags, root.ContainerOptions, root.Now = prevFlags, prevOpts, prevNow
	})
	return env
}

// Run executes cmd with args and returns everything it printed. Flags of cmd
// and its subcommands are reset to their defaults first, since cobra keeps
// values between runs.
func Run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	resetFlags(cmd)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}
