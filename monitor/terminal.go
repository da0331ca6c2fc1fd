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
	"bufio"
	"fmt"
	"io"
)

// Style allows terminal implementations to decorate different classes of
// output differently.
type Style int

// List of valid Style values.
const (
	StyleFeedback Style = iota
	StyleError
	StyleLog
)

// Terminal defines the operations required for monitor input/output.
type Terminal interface {
	// Initialise performs any setting up required for the terminal
	Initialise() error

	// CleanUp performs any cleaning up required for the terminal
	CleanUp()

	// ReadLine returns the next line of input. io.EOF indicates the end
	// of the session
	ReadLine(prompt string) (string, error)

	// PrintLine prints a formatted line of output in the given style
	PrintLine(style Style, pattern string, a ...interface{})
}

// PlainTerminal is the simplest possible implementation of the Terminal
// interface. No decoration, no line editing.
type PlainTerminal struct {
	input  *bufio.Scanner
	output io.Writer
}

// NewPlainTerminal is the preferred method of initialisation for the
// PlainTerminal type.
func NewPlainTerminal(input io.Reader, output io.Writer) *PlainTerminal {
	return &PlainTerminal{
		input:  bufio.NewScanner(input),
		output: output,
	}
}

// Initialise implements the Terminal interface.
func (pt *PlainTerminal) Initialise() error {
	return nil
}

// CleanUp implements the Terminal interface.
func (pt *PlainTerminal) CleanUp() {
}

// ReadLine implements the Terminal interface.
func (pt *PlainTerminal) ReadLine(prompt string) (string, error) {
	io.WriteString(pt.output, prompt)
	if !pt.input.Scan() {
		if err := pt.input.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return pt.input.Text(), nil
}

// PrintLine implements the Terminal interface.
func (pt *PlainTerminal) PrintLine(style Style, pattern string, a ...interface{}) {
	s := fmt.Sprintf(pattern, a...)
	if style == StyleError {
		s = fmt.Sprintf("* %s", s)
	}
	io.WriteString(pt.output, s)
	io.WriteString(pt.output, "\n")
}
