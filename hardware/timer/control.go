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

package timer

import "fmt"

// Mode is the decrement/reload policy of a timer.
type Mode int

// List of valid Mode values.
const (
	FreeRunning Mode = iota
	Periodic
)

func (m Mode) String() string {
	switch m {
	case FreeRunning:
		return "free-running"
	case Periodic:
		return "periodic"
	}
	panic(fmt.Sprintf("unknown timer mode (%d)", int(m)))
}

// Rate is the clock select of a timer, one of the two decrement rates
// offered by the hardware.
type Rate int

// List of valid Rate values.
const (
	KHz2 Rate = iota
	KHz508
)

func (r Rate) String() string {
	switch r {
	case KHz2:
		return "2KHz"
	case KHz508:
		return "508KHz"
	}
	panic(fmt.Sprintf("unknown timer rate (%d)", int(r)))
}

// khz is the decrement rate in ticks per millisecond.
func (r Rate) khz() uint64 {
	if r == KHz508 {
		return 508
	}
	return 2
}

// bit assignments in the control register.
const (
	maskRate   = 0x00000008
	maskMode   = 0x00000040
	maskEnable = 0x00000080
)

// Control is the unpacked form of the timer's control register. Keeping
// the three fields explicit means the state machine can be tested
// independently of the wire encoding.
type Control struct {
	Rate    Rate
	Mode    Mode
	Enabled bool
}

// DecodeControl unpacks a value written to the control register.
func DecodeControl(v uint32) Control {
	ctrl := Control{}
	if v&maskRate != 0 {
		ctrl.Rate = KHz508
	}
	if v&maskMode != 0 {
		ctrl.Mode = Periodic
	}
	ctrl.Enabled = v&maskEnable != 0
	return ctrl
}

// Encode packs the control fields into the register's wire format.
func (ctrl Control) Encode() uint32 {
	v := uint32(0)
	if ctrl.Rate == KHz508 {
		v |= maskRate
	}
	if ctrl.Mode == Periodic {
		v |= maskMode
	}
	if ctrl.Enabled {
		v |= maskEnable
	}
	return v
}
