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

// error patterns for register access faults. used by all devices with the
// curated package. the first placeholder is always the device label.
const (
	// read of a write-only register or write to a read-only register.
	InvalidAccess = "invalid access: %s: %s"

	// offset inside the device's window with no register behind it.
	UnexpectedOffset = "unexpected offset: %s: %#04x"

	// real hardware that the emulation deliberately does not model.
	UnimplementedRegister = "unimplemented register: %s: %s"

	// hardware contract violation by the emulated software. unrecoverable;
	// the simulation harness must abort when it sees this pattern.
	FatalMisuse = "fatal misuse: %s: %s"
)
