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

// Package hardware assembles the emulated peripherals of the TS-7200
// single board computer into one addressable machine. The TS7200 type owns
// the device instances for the lifetime of the emulation and decodes
// physical addresses into per-device register offsets.
//
// Nothing in this package or below it is safe for concurrent use. Register
// access and hardware interrupt assertion must be serialised by the
// caller; a single event loop around the whole board is the expected
// discipline.
package hardware
