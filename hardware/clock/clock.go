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

// Package clock abstracts the monotonic clock that drives the lazily
// updated devices. The real board uses Wall(); tests use a Manual clock so
// that elapsed time is exact and no test has to sleep.
package clock

import (
	"time"
)

// Source is any monotonic source of time. Implementations must guarantee
// that Now() never goes backwards.
type Source interface {
	Now() time.Time
}

type wall struct{}

func (_ wall) Now() time.Time {
	return time.Now()
}

// Wall returns a Source backed by the operating system's monotonic clock.
func Wall() Source {
	return wall{}
}

// Manual is a Source that only moves when told to. The zero value is usable
// and starts at an arbitrary fixed instant.
type Manual struct {
	now time.Time
}

// NewManual is the preferred method of initialisation for the Manual type.
func NewManual() *Manual {
	return &Manual{}
}

// Now implements the Source interface.
func (m *Manual) Now() time.Time {
	return m.now
}

// Advance the clock by the specified duration. Negative durations are
// ignored, keeping the source monotonic.
func (m *Manual) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	m.now = m.now.Add(d)
}
