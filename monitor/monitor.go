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

package monitor

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/alexkursell/ts7200/curated"
	"github.com/alexkursell/ts7200/hardware"
	"github.com/alexkursell/ts7200/hardware/memory"
	"github.com/alexkursell/ts7200/hardware/vic"
	"github.com/alexkursell/ts7200/logger"
)

// Aborted is the error pattern returned by Run() when a device reports
// fatal configuration misuse.
const Aborted = "monitor: aborting session: %v"

const helpText = `PEEK <addr>          read the register at a physical address
POKE <addr> <val>    write the register at a physical address
PROBE <addr>         name the register at a physical address
ASSERT <source>      assert an interrupt source (0-63)
CLEAR <source>       clear an interrupt source (0-63)
LINES                show the state of the IRQ and FIQ lines
VECTOR               show the resolved service routine address
TIMERS               show a summary of the three timers
LOG [n]              show the last n entries of the central log
VIZ <file>           dump the device graph to a graphviz dot file
HELP                 show this text
QUIT                 end the session`

// Monitor is an interactive session with the emulated board.
type Monitor struct {
	board *hardware.TS7200
	term  Terminal
}

// NewMonitor is the preferred method of initialisation for the Monitor
// type.
func NewMonitor(board *hardware.TS7200, term Terminal) *Monitor {
	return &Monitor{
		board: board,
		term:  term,
	}
}

// Run the monitor until the input ends, the user quits, or a device
// reports fatal misuse. The fatal case returns an error matching the
// Aborted pattern; everything else returns nil.
func (mon *Monitor) Run() error {
	err := mon.term.Initialise()
	if err != nil {
		return err
	}
	defer mon.term.CleanUp()

	for {
		input, err := mon.term.ReadLine("ts7200 % ")
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		quit, err := mon.dispatch(input)
		if err != nil {
			// fatal misuse means the emulated software has relied on
			// undefined hardware behaviour. there is nothing sensible to
			// continue with
			if curated.Has(err, memory.FatalMisuse) {
				mon.term.PrintLine(StyleError, "%v", err)
				return curated.Errorf(Aborted, err)
			}
			mon.term.PrintLine(StyleError, "%v", err)
		}
		if quit {
			return nil
		}
	}
}

// dispatch a single line of input. the returned error is only returned to
// the caller of Run() if it indicates fatal misuse; the boolean indicates
// that the session should end.
func (mon *Monitor) dispatch(input string) (bool, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return false, nil
	}

	command := strings.ToUpper(fields[0])
	args := fields[1:]

	switch command {
	case "PEEK":
		addr, err := parseValue(args, 0)
		if err != nil {
			return false, err
		}
		v, err := mon.board.Read32(addr)
		if err != nil {
			return false, err
		}
		mon.term.PrintLine(StyleFeedback, "%s = %#08x", mon.probeName(addr), v)

	case "POKE":
		addr, err := parseValue(args, 0)
		if err != nil {
			return false, err
		}
		v, err := parseValue(args, 1)
		if err != nil {
			return false, err
		}
		if err := mon.board.Write32(addr, v); err != nil {
			return false, err
		}
		mon.term.PrintLine(StyleFeedback, "%s <- %#08x", mon.probeName(addr), v)

	case "PROBE":
		addr, err := parseValue(args, 0)
		if err != nil {
			return false, err
		}
		mon.term.PrintLine(StyleFeedback, "%s", mon.probeName(addr))

	case "ASSERT", "CLEAR":
		src, err := parseValue(args, 0)
		if err != nil {
			return false, err
		}
		if src > 63 {
			return false, curated.Errorf("monitor: no such interrupt source (%d)", src)
		}
		in := vic.Interrupt(src)
		if command == "ASSERT" {
			mon.board.VIC.Assert(in)
		} else {
			mon.board.VIC.Clear(in)
		}
		mon.term.PrintLine(StyleFeedback, "%s %sed", in, strings.ToLower(command))

	case "LINES":
		mon.term.PrintLine(StyleFeedback, "irq=%v fiq=%v", mon.board.VIC.IRQ(), mon.board.VIC.FIQ())

	case "VECTOR":
		mon.term.PrintLine(StyleFeedback, "isr address = %#08x", mon.board.VIC.ISRAddress())

	case "TIMERS":
		mon.term.PrintLine(StyleFeedback, "%s", mon.board.Timer1)
		mon.term.PrintLine(StyleFeedback, "%s", mon.board.Timer2)
		mon.term.PrintLine(StyleFeedback, "%s", mon.board.Timer3)

	case "LOG":
		number := 10
		if len(args) > 0 {
			n, err := parseValue(args, 0)
			if err != nil {
				return false, err
			}
			number = int(n)
		}
		s := &strings.Builder{}
		logger.Tail(s, number)
		for _, l := range strings.Split(strings.TrimRight(s.String(), "\n"), "\n") {
			if l != "" {
				mon.term.PrintLine(StyleLog, "%s", l)
			}
		}

	case "VIZ":
		if len(args) < 1 {
			return false, curated.Errorf("monitor: VIZ requires a filename")
		}
		f, err := os.Create(args[0])
		if err != nil {
			return false, err
		}
		defer f.Close()
		memviz.Map(f, mon.board)
		mon.term.PrintLine(StyleFeedback, "device graph written to %s", args[0])

	case "HELP":
		for _, l := range strings.Split(helpText, "\n") {
			mon.term.PrintLine(StyleFeedback, "%s", l)
		}

	case "QUIT", "Q":
		return true, nil

	default:
		return false, curated.Errorf("monitor: unknown command (%s)", command)
	}

	return false, nil
}

// probeName decorates an address with the register name, if there is one.
func (mon *Monitor) probeName(addr uint32) string {
	if name, ok := mon.board.Probe(addr); ok {
		return name
	}
	return fmt.Sprintf("%#08x", addr)
}

// parseValue reads the numbered argument as a 32 bit number. the 0x and
// 0b prefixes are understood.
func parseValue(args []string, idx int) (uint32, error) {
	if idx >= len(args) {
		return 0, curated.Errorf("monitor: not enough arguments")
	}
	v, err := strconv.ParseUint(args[idx], 0, 32)
	if err != nil {
		return 0, curated.Errorf("monitor: not a number (%s)", args[idx])
	}
	return uint32(v), nil
}
