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

// Package logger is the central logging facility for the emulation. Devices
// log with a tag (usually the device label) and a detail string:
//
//	logger.Logf(logger.Allow, "VIC1", "stub read of %s register", "Protection")
//
// Entries accumulate in the central log and can be inspected after the fact
// with Write() and Tail(), or echoed to an io.Writer as they arrive with
// SetEcho(). Identical consecutive entries are collapsed into a repeat
// count, which matters for devices that log on every register access.
//
// The Permission argument controls whether the calling environment is
// allowed to make log entries at all. Pass logger.Allow when there is no
// reason to suppress the entry.
package logger
