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

import (
	"fmt"
	"time"

	"github.com/alexkursell/ts7200/curated"
	"github.com/alexkursell/ts7200/hardware/clock"
	"github.com/alexkursell/ts7200/hardware/memory"
	"github.com/alexkursell/ts7200/logger"
)

// register offsets, relative to the timer's base address.
const (
	AddrLoad    = 0x00
	AddrValue   = 0x04
	AddrControl = 0x08
	AddrClear   = 0x0c
)

// NotCreated is the error pattern returned by NewTimer on a bad bit width.
const NotCreated = "timer: %s: unsupported bit width (%d)"

// Timer emulates one instance of the EP9302 decrementing timer.
type Timer struct {
	label string
	clk   clock.Source

	// the load register is hardware-undefined until it is first written.
	// reading it, or reloading from it in periodic mode, before then is a
	// fatal misuse
	loadval uint32
	loadset bool

	val  uint32
	ctrl Control

	// 0x0000ffff for 16 bit timers, 0xffffffff for 32 bit timers
	wrapmask uint32

	// wall-clock point of the last lazy update
	lastSample time.Time

	// millionths of a tick carried over from the last lazy update
	microticks uint64
}

// NewTimer is the preferred method of initialisation for the Timer type.
// The bit width must be 16 or 32. The timer starts disabled, in
// free-running mode, at 2KHz, with no load value.
func NewTimer(label string, bits int, clk clock.Source) (*Timer, error) {
	if bits != 16 && bits != 32 {
		return nil, curated.Errorf(NotCreated, label, bits)
	}

	return &Timer{
		label:      label,
		clk:        clk,
		wrapmask:   uint32((uint64(1) << uint(bits)) - 1),
		lastSample: clk.Now(),
	}, nil
}

// Label implements the memory.Labelling interface.
func (tmr *Timer) Label() string {
	return tmr.label
}

// Kind implements the memory.Labelling interface.
func (tmr *Timer) Kind() string {
	return "Timer"
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("%s: val=%#08x %s %s enabled=%v",
		tmr.label, tmr.val, tmr.ctrl.Mode, tmr.ctrl.Rate, tmr.ctrl.Enabled)
}

// Probe implements the memory.DebugBus interface.
func (tmr *Timer) Probe(offset uint32) (string, bool) {
	switch offset {
	case AddrLoad:
		return "Load", true
	case AddrValue:
		return "Value", true
	case AddrControl:
		return "Control", true
	case AddrClear:
		return "Clear", true
	}
	return "", false
}

// catchup performs the lazy register update. it must run before every
// register access. the current value is derived from the time elapsed
// since the last access, converted to ticks at the selected rate.
func (tmr *Timer) catchup() error {
	now := tmr.clk.Now()
	elapsed := now.Sub(tmr.lastSample)
	tmr.lastSample = now

	if !tmr.ctrl.Enabled {
		return nil
	}

	// microticks are millionths of a tick. the truncated remainder is
	// carried to the next access so repeated accesses lose no time
	micro := uint64(elapsed.Nanoseconds())*tmr.ctrl.Rate.khz() + tmr.microticks
	ticks := uint32(micro / 1000000)
	tmr.microticks = micro % 1000000

	switch tmr.ctrl.Mode {
	case FreeRunning:
		tmr.val = (tmr.val - ticks) & tmr.wrapmask

	case Periodic:
		if tmr.val >= ticks {
			tmr.val -= ticks
			return nil
		}

		if !tmr.loadset {
			return curated.Errorf(memory.FatalMisuse, tmr.label,
				"periodic reload from Load register before it has been written")
		}

		excess := ticks - tmr.val
		if excess > tmr.loadval {
			// the reload rule below is defined for a single wrap. larger
			// gaps between accesses are reduced to the equivalent point in
			// the steady-state cycle, which is loadval ticks long
			logger.Logf(logger.Allow, tmr.label,
				"%d ticks span multiple periods of %d", ticks, tmr.loadval+1)
			if tmr.loadval == 0 {
				tmr.val = 0
				return nil
			}
			excess = ((excess - 1) % tmr.loadval) + 1
		}
		tmr.val = tmr.loadval - excess
	}

	return nil
}

// Read32 implements the memory.Memory interface. Note that reads mutate
// the timer because they trigger the lazy update.
func (tmr *Timer) Read32(offset uint32) (uint32, error) {
	if err := tmr.catchup(); err != nil {
		return 0, err
	}

	switch offset {
	case AddrLoad:
		if !tmr.loadset {
			return 0, curated.Errorf(memory.FatalMisuse, tmr.label,
				"read of Load register before it has been written")
		}
		return tmr.loadval, nil

	case AddrValue:
		return tmr.val, nil

	case AddrControl:
		return tmr.ctrl.Encode(), nil

	case AddrClear:
		// timer interrupt generation is not modelled so there is nothing
		// for the Clear register to clear
		return 0, curated.Errorf(memory.UnimplementedRegister, tmr.label, "Clear")
	}

	return 0, curated.Errorf(memory.UnexpectedOffset, tmr.label, offset)
}

// Write32 implements the memory.Memory interface.
func (tmr *Timer) Write32(offset uint32, val uint32) error {
	if err := tmr.catchup(); err != nil {
		return err
	}

	switch offset {
	case AddrLoad:
		// "The Load register should not be written after the Timer is
		// enabled because this causes the Timer Value register to be
		// updated with an undetermined value."
		if tmr.ctrl.Enabled {
			return curated.Errorf(memory.FatalMisuse, tmr.label,
				"write to Load register while the timer is enabled")
		}

		val &= tmr.wrapmask
		tmr.loadval = val
		tmr.loadset = true

		// "The Timer Value register is updated with the Timer Load value
		// as soon as the Timer Load register is written"
		tmr.val = val
		return nil

	case AddrValue:
		return curated.Errorf(memory.InvalidAccess, tmr.label,
			"write to read-only Value register")

	case AddrControl:
		ctrl := DecodeControl(val)

		// enabling resets the sub-tick remainder. disabling invalidates
		// the load value, which must be rewritten before re-enabling
		if ctrl.Enabled && !tmr.ctrl.Enabled {
			tmr.microticks = 0
		}
		if !ctrl.Enabled {
			tmr.loadset = false
		}

		tmr.ctrl = ctrl
		return nil

	case AddrClear:
		return curated.Errorf(memory.UnimplementedRegister, tmr.label, "Clear")
	}

	return curated.Errorf(memory.UnexpectedOffset, tmr.label, offset)
}
