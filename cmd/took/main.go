// Copyright (C) 2026 the monotime developers.
// This file is part of monotime
//
// monotime is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// monotime is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with monotime.  If not, see <https://www.gnu.org/licenses/>.

// took runs a command under the monotonic clock and reports how long it took.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/monotime-go/monotime"
)

var (
	runs      int
	precision int
	quiet     bool
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "took [flags] -- command [args...]",
	Short: "Time a command on the monotonic clock",
	Long: `took runs a command one or more times, timing each run on the monotonic
clock, and reports per-run durations plus min, mean and max.`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return timeCommand(cmd.OutOrStdout(), args)
	},
}

func init() {
	rootCmd.Flags().IntVarP(&runs, "runs", "n", 1, "Number of times to run the command")
	rootCmd.Flags().IntVarP(&precision, "precision", "p", 3, "Decimal places in reported durations")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress the command's own output")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log each run as it completes")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func timeCommand(out io.Writer, argv []string) error {
	if runs < 1 {
		return fmt.Errorf("took: --runs must be at least 1, got %d", runs)
	}
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	stats := &runStats{}
	for i := 0; i < runs; i++ {
		took, err := timeOnce(argv)
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"run":  i + 1,
			"took": took.Format(precision),
		}).Debug("run complete")
		stats.record(took)
	}

	renderTable(out, stats)
	return nil
}

func timeOnce(argv []string) (monotime.Duration, error) {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	if !quiet {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	runErr, took := monotime.MeasureResult(cmd.Run)
	if runErr != nil {
		return monotime.Zero(), fmt.Errorf("took: running %q: %w", argv[0], runErr)
	}
	return took, nil
}
