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

package hardware

import (
	"fmt"

	"github.com/alexkursell/ts7200/curated"
	"github.com/alexkursell/ts7200/hardware/clock"
	"github.com/alexkursell/ts7200/hardware/memory"
	"github.com/alexkursell/ts7200/hardware/timer"
	"github.com/alexkursell/ts7200/hardware/vic"
)

// physical base addresses of the devices modelled by the emulation.
const (
	VIC1Base  = 0x800b0000
	VIC2Base  = 0x800c0000
	TimerBase = 0x80810000
)

// each VIC occupies a 64KB window.
const vicWindow = 0x10000

// offsets of the individual timers within the timer block. each timer's
// register file is 0x10 bytes long but the stride between timers is
// uneven, matching the EP9302 memory map.
const (
	timer1Offset = 0x00
	timer2Offset = 0x20
	timer3Offset = 0x80
	timerFile    = 0x10
)

// UnmappedAddress is the error pattern for physical addresses that decode
// to no device at all.
const UnmappedAddress = "unmapped address: %#08x"

// NotCreated is the error pattern returned by NewTS7200.
const NotCreated = "ts7200: %v"

// TS7200 is the main container for the emulated peripherals of the board.
// Devices are created once and live for the whole emulation session.
type TS7200 struct {
	Timer1 *timer.Timer
	Timer2 *timer.Timer
	Timer3 *timer.Timer
	VIC    *vic.Manager
}

// NewTS7200 creates a new board with all peripherals attached. Timer1 and
// Timer2 are the 16 bit timers, Timer3 the 32 bit timer. All timers share
// the one clock source.
func NewTS7200(clk clock.Source) (*TS7200, error) {
	ts := &TS7200{
		VIC: vic.NewManager(),
	}

	var err error

	ts.Timer1, err = timer.NewTimer("Timer1", 16, clk)
	if err != nil {
		return nil, curated.Errorf(NotCreated, err)
	}

	ts.Timer2, err = timer.NewTimer("Timer2", 16, clk)
	if err != nil {
		return nil, curated.Errorf(NotCreated, err)
	}

	ts.Timer3, err = timer.NewTimer("Timer3", 32, clk)
	if err != nil {
		return nil, curated.Errorf(NotCreated, err)
	}

	return ts, nil
}

// decode maps a physical address to the owning device and the offset
// relative to that device's base.
func (ts *TS7200) decode(addr uint32) (memory.Memory, uint32, error) {
	switch {
	case addr >= VIC1Base && addr < VIC1Base+vicWindow:
		return ts.VIC.VIC1, addr - VIC1Base, nil

	case addr >= VIC2Base && addr < VIC2Base+vicWindow:
		return ts.VIC.VIC2, addr - VIC2Base, nil

	case addr >= TimerBase+timer1Offset && addr < TimerBase+timer1Offset+timerFile:
		return ts.Timer1, addr - TimerBase - timer1Offset, nil

	case addr >= TimerBase+timer2Offset && addr < TimerBase+timer2Offset+timerFile:
		return ts.Timer2, addr - TimerBase - timer2Offset, nil

	case addr >= TimerBase+timer3Offset && addr < TimerBase+timer3Offset+timerFile:
		return ts.Timer3, addr - TimerBase - timer3Offset, nil
	}

	return nil, 0, curated.Errorf(UnmappedAddress, addr)
}

// Read32 routes a physical address read to the owning device.
func (ts *TS7200) Read32(addr uint32) (uint32, error) {
	dev, offset, err := ts.decode(addr)
	if err != nil {
		return 0, err
	}
	return dev.Read32(offset)
}

// Write32 routes a physical address write to the owning device.
func (ts *TS7200) Write32(addr uint32, val uint32) error {
	dev, offset, err := ts.decode(addr)
	if err != nil {
		return err
	}
	return dev.Write32(offset, val)
}

// Probe returns a human-readable name for the register at a physical
// address, in the form "label/register". For tracing tools; probing never
// touches device state.
func (ts *TS7200) Probe(addr uint32) (string, bool) {
	dev, offset, err := ts.decode(addr)
	if err != nil {
		return "", false
	}

	db, ok := dev.(memory.DebugBus)
	if !ok {
		return "", false
	}

	name, ok := db.Probe(offset)
	if !ok {
		return "", false
	}

	if lab, ok := dev.(memory.Labelling); ok {
		return fmt.Sprintf("%s/%s", lab.Label(), name), true
	}

	return name, true
}
