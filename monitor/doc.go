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

// Package monitor is an interactive register monitor for the emulated
// board. It plays the role of the bus master and of the hardware
// interrupt sources: registers can be peeked and poked by physical
// address, interrupt lines asserted and cleared by source number, and the
// output lines and vector resolution inspected, all without a CPU in the
// loop.
//
// The monitor aborts when a device reports fatal configuration misuse.
// Recoverable access faults are printed and the session continues, which
// is the same split a CPU-driven bus layer would make.
//
// Input/output goes through the Terminal interface. PlainTerminal works
// with any reader and writer and is used by the tests; the colorterm
// package provides an ANSI terminal for interactive use.
package monitor
