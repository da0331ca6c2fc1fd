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

// Package colorterm implements the monitor.Terminal interface for posix
// terminals. It supports color output and byte-at-a-time input, wrapping
// the termios handling in "github.com/pkg/term/termios".
package colorterm

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/alexkursell/ts7200/monitor"
)

// ANSI pens used by PrintLine.
const (
	normalPen = "\033[0m"
	boldPen   = "\033[1m"
	dimPen    = "\033[2m"
	redPen    = "\033[31m"
)

// ASCII codes handled by ReadLine.
const (
	keyCtrlC          = 3
	keyCtrlD          = 4
	keyCarriageReturn = 13
	keyBackspace      = 127
)

// ColorTerminal implements the monitor.Terminal interface with a basic
// ANSI terminal.
type ColorTerminal struct {
	input  *os.File
	output *os.File

	// terminal attributes for canonical mode (how we found the terminal)
	// and cbreak mode (how ReadLine wants it)
	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// NewColorTerminal is the preferred method of initialisation for the
// ColorTerminal type. The terminal attaches to the process's stdin and
// stdout.
func NewColorTerminal() *ColorTerminal {
	return &ColorTerminal{
		input:  os.Stdin,
		output: os.Stdout,
	}
}

// Initialise implements the monitor.Terminal interface.
func (ct *ColorTerminal) Initialise() error {
	if err := termios.Tcgetattr(ct.input.Fd(), &ct.canAttr); err != nil {
		return err
	}
	ct.cbreakAttr = ct.canAttr
	termios.Cfmakecbreak(&ct.cbreakAttr)
	return nil
}

// CleanUp implements the monitor.Terminal interface. The terminal is
// returned to the mode it was found in.
func (ct *ColorTerminal) CleanUp() {
	_ = termios.Tcsetattr(ct.input.Fd(), termios.TCIFLUSH, &ct.canAttr)
	ct.print("\r")
}

func (ct *ColorTerminal) print(s string, a ...interface{}) {
	ct.output.WriteString(fmt.Sprintf(s, a...))
}

// ReadLine implements the monitor.Terminal interface. Input is read in
// cbreak mode so the line can be redrawn and edited as it is typed.
func (ct *ColorTerminal) ReadLine(prompt string) (string, error) {
	if err := termios.Tcsetattr(ct.input.Fd(), termios.TCIFLUSH, &ct.cbreakAttr); err != nil {
		return "", err
	}
	defer func() {
		_ = termios.Tcsetattr(ct.input.Fd(), termios.TCIFLUSH, &ct.canAttr)
	}()

	ct.print("%s%s%s", boldPen, prompt, normalPen)

	line := make([]byte, 0, 32)
	buf := make([]byte, 1)

	for {
		n, err := ct.input.Read(buf)
		if err != nil {
			return "", err
		}
		if n == 0 {
			continue
		}

		switch buf[0] {
		case '\n', keyCarriageReturn:
			ct.print("\r\n")
			return string(line), nil

		case keyCtrlC:
			ct.print("\r\n")
			return "", io.EOF

		case keyCtrlD:
			if len(line) == 0 {
				ct.print("\r\n")
				return "", io.EOF
			}

		case keyBackspace:
			if len(line) > 0 {
				line = line[:len(line)-1]
				ct.print("\b \b")
			}

		default:
			if buf[0] >= 32 && buf[0] < 127 {
				line = append(line, buf[0])
				ct.print("%c", buf[0])
			}
		}
	}
}

// PrintLine implements the monitor.Terminal interface.
func (ct *ColorTerminal) PrintLine(style monitor.Style, pattern string, a ...interface{}) {
	ct.print("\r")

	switch style {
	case monitor.StyleError:
		ct.print(redPen)
		ct.print("* ")
	case monitor.StyleLog:
		ct.print(dimPen)
	}

	ct.print(pattern, a...)
	ct.print(normalPen)
	ct.print("\n")
}
