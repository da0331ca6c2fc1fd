// This file is part of ts7200.
//
// ts7200 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ts7200 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ts7200.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/alexkursell/ts7200/curated"
	"github.com/alexkursell/ts7200/hardware"
	"github.com/alexkursell/ts7200/hardware/clock"
	"github.com/alexkursell/ts7200/logger"
	"github.com/alexkursell/ts7200/monitor"
	"github.com/alexkursell/ts7200/monitor/colorterm"
	"github.com/alexkursell/ts7200/statsview"
	"github.com/alexkursell/ts7200/version"
)

// exit values. 20 means the emulated software provoked undefined hardware
// behaviour.
const (
	exitOk    = 0
	exitError = 10
	exitAbort = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout, os.Stderr))
}

func launch(args []string, stdout io.Writer, stderr io.Writer) int {
	flgs := flag.NewFlagSet(version.ApplicationName, flag.ExitOnError)
	termType := flgs.String("term", "color", "terminal type for the monitor: color, plain")
	logEcho := flgs.Bool("log", false, "echo log entries to stderr as they happen")
	stats := flgs.Bool("stats", false, fmt.Sprintf("run the statsview http server on %s", statsview.Address))
	showVersion := flgs.Bool("version", false, "print version information and exit")

	// ExitOnError means Parse() never returns an error
	_ = flgs.Parse(args)

	if *showVersion {
		vers, rev, _ := version.Version()
		fmt.Fprintf(stdout, "%s %s (%s)\n", version.ApplicationName, vers, rev)
		return exitOk
	}

	if *logEcho {
		logger.SetEcho(stderr)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(stderr)
		} else {
			fmt.Fprintln(stderr, "* statsview not compiled in (build with -tags statsview)")
		}
	}

	var term monitor.Terminal
	switch *termType {
	case "color":
		term = colorterm.NewColorTerminal()
	case "plain":
		term = monitor.NewPlainTerminal(os.Stdin, stdout)
	default:
		fmt.Fprintf(stderr, "* unknown terminal type (%s)\n", *termType)
		return exitError
	}

	board, err := hardware.NewTS7200(clock.Wall())
	if err != nil {
		fmt.Fprintf(stderr, "* %v\n", err)
		return exitError
	}

	mon := monitor.NewMonitor(board, term)
	if err := mon.Run(); err != nil {
		fmt.Fprintf(stderr, "* %v\n", err)
		if curated.Is(err, monitor.Aborted) {
			return exitAbort
		}
		return exitError
	}

	return exitOk
}
