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

package memory

// Memory is implemented by every device that exposes a register file. The
// offset is relative to the device's base address.
//
// Note that Read32 can mutate device state. The timers derive their
// current value from elapsed wall-clock time on every access, reads
// included.
type Memory interface {
	Read32(offset uint32) (uint32, error)
	Write32(offset uint32, val uint32) error
}

// DebugBus is implemented by devices that can name the register at a given
// offset. For the benefit of tracing tools only; probing never touches
// device state. The boolean return is false if the offset does not
// correspond to a register.
type DebugBus interface {
	Probe(offset uint32) (string, bool)
}

// Labelling is implemented by devices that can identify themselves in
// diagnostic output.
type Labelling interface {
	// the label given to this instance of the device. eg. "Timer1"
	Label() string

	// the kind of device. eg. "Timer"
	Kind() string
}
