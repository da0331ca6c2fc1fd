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

// Package timer emulates the decrementing timers of the EP9302, as
// described in section 18 of the EP93xx User's Guide. The TS-7200 board
// has two 16 bit timers and one 32 bit timer, all instances of the same
// register file: Load, Value, Control and the unimplemented Clear.
//
// The timer is not stepped. Its value is a pure function of elapsed time
// on the clock source it was created with, computed lazily at the moment
// of each register access. Sub-tick remainders of that computation are
// carried between accesses so no time is lost to rounding, no matter how
// often the registers are accessed.
package timer
