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

// Package memory defines how the rest of the emulation talks to a
// memory-mapped device. Devices implement the Memory interface and are
// addressed with an offset relative to their own base address; mapping a
// physical address to the owning device is the job of the bus (the TS7200
// type in the hardware package).
//
// The package also defines the error patterns shared by every device.
// There are four distinguishable kinds of register access fault and they
// must not be collapsed into one another:
//
// InvalidAccess is a read of a write-only register or a write to a
// read-only register. Recoverable; the bus layer decides what fault the
// emulated CPU sees.
//
// UnexpectedOffset is an offset inside a device's mapped window that
// corresponds to no register at all. Also recoverable.
//
// UnimplementedRegister is real hardware that the emulation deliberately
// does not model, such as the timer Clear register. Recoverable and
// distinguishable from UnexpectedOffset in diagnostics.
//
// FatalMisuse is a violation of the hardware contract by the emulated
// software, such as reading a timer's Load register before it has ever
// been written. The result on real hardware is undefined so there is
// nothing sensible the emulation can return. The surrounding harness must
// treat this kind as an abort condition. Test with:
//
//	if curated.Has(err, memory.FatalMisuse) {
//		...
//	}
package memory
