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

package timer_test

import (
	"testing"
	"time"

	"github.com/alexkursell/ts7200/curated"
	"github.com/alexkursell/ts7200/hardware/clock"
	"github.com/alexkursell/ts7200/hardware/memory"
	"github.com/alexkursell/ts7200/hardware/timer"
	"github.com/alexkursell/ts7200/test"
)

// newTestTimer creates a timer on a manual clock. test fails immediately
// if the timer can't be created.
func newTestTimer(t *testing.T, bits int) (*timer.Timer, *clock.Manual) {
	t.Helper()
	clk := clock.NewManual()
	tmr, err := timer.NewTimer("Timer1", bits, clk)
	test.DemandSuccess(t, err)
	return tmr, clk
}

// poke writes a register and fails the test on error.
func poke(t *testing.T, tmr *timer.Timer, offset uint32, val uint32) {
	t.Helper()
	test.ExpectSuccess(t, tmr.Write32(offset, val))
}

// peek reads a register and fails the test on error.
func peek(t *testing.T, tmr *timer.Timer, offset uint32) uint32 {
	t.Helper()
	v, err := tmr.Read32(offset)
	test.ExpectSuccess(t, err)
	return v
}

func TestNewTimer(t *testing.T) {
	clk := clock.NewManual()

	_, err := timer.NewTimer("Timer1", 16, clk)
	test.ExpectSuccess(t, err)

	_, err = timer.NewTimer("Timer3", 32, clk)
	test.ExpectSuccess(t, err)

	_, err = timer.NewTimer("Timer?", 24, clk)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, timer.NotCreated))
}

func TestControlEncoding(t *testing.T) {
	// the decode/encode pair must agree for every combination of fields
	for _, rate := range []timer.Rate{timer.KHz2, timer.KHz508} {
		for _, mode := range []timer.Mode{timer.FreeRunning, timer.Periodic} {
			for _, enabled := range []bool{false, true} {
				ctrl := timer.Control{Rate: rate, Mode: mode, Enabled: enabled}
				test.ExpectEquality(t, timer.DecodeControl(ctrl.Encode()), ctrl, ctrl)
			}
		}
	}

	// bit assignments from the EP93xx User's Guide
	test.ExpectEquality(t,
		timer.Control{Rate: timer.KHz508, Mode: timer.Periodic, Enabled: true}.Encode(),
		uint32(0x08|0x40|0x80))

	// unassigned bits are ignored on decode
	test.ExpectEquality(t, timer.DecodeControl(0xffffff37), timer.Control{})
}

func TestLoadValueCoupling(t *testing.T) {
	tmr, _ := newTestTimer(t, 16)

	// writing Load while disabled updates Value immediately
	poke(t, tmr, timer.AddrLoad, 0x1234)
	test.ExpectEquality(t, peek(t, tmr, timer.AddrLoad), 0x1234)
	test.ExpectEquality(t, peek(t, tmr, timer.AddrValue), 0x1234)

	// the written value is masked to the timer's bit width
	poke(t, tmr, timer.AddrLoad, 0xcafe1234)
	test.ExpectEquality(t, peek(t, tmr, timer.AddrLoad), 0x1234)
	test.ExpectEquality(t, peek(t, tmr, timer.AddrValue), 0x1234)
}

func TestFreeRunningDecay(t *testing.T) {
	tmr, clk := newTestTimer(t, 32)

	poke(t, tmr, timer.AddrLoad, 0xffffffff)
	test.ExpectEquality(t, peek(t, tmr, timer.AddrValue), 0xffffffff)

	// scenario: 2KHz free-running timer loaded with 0xffffffff. 500ms is
	// 1000 ticks
	poke(t, tmr, timer.AddrControl, timer.Control{Enabled: true}.Encode())
	clk.Advance(500 * time.Millisecond)
	test.ExpectEquality(t, peek(t, tmr, timer.AddrValue), 0xffffffff-1000)

	// decay accumulates across accesses
	clk.Advance(500 * time.Millisecond)
	test.ExpectEquality(t, peek(t, tmr, timer.AddrValue), 0xffffffff-2000)
}

func TestFreeRunningWrap(t *testing.T) {
	tmr, clk := newTestTimer(t, 16)

	poke(t, tmr, timer.AddrLoad, 0x0005)
	poke(t, tmr, timer.AddrControl, timer.Control{Enabled: true}.Encode())

	// 10 ticks at 2KHz is 5ms. the counter wraps at its bit width
	clk.Advance(5 * time.Millisecond)
	test.ExpectEquality(t, peek(t, tmr, timer.AddrValue), uint32(0xfffb))

	// and keeps wrapping within [0, 0xffff]
	for i := 0; i < 20; i++ {
		clk.Advance(33 * time.Millisecond)
		v := peek(t, tmr, timer.AddrValue)
		test.ExpectSuccess(t, v <= 0xffff, i)
	}
}

func TestClockRates(t *testing.T) {
	tmr, clk := newTestTimer(t, 32)

	// 508KHz: one second is 508000 ticks
	poke(t, tmr, timer.AddrLoad, 0x00100000)
	poke(t, tmr, timer.AddrControl, timer.Control{Rate: timer.KHz508, Enabled: true}.Encode())
	clk.Advance(1 * time.Second)
	test.ExpectEquality(t, peek(t, tmr, timer.AddrValue), uint32(0x00100000-508000))
}

func TestFractionCarry(t *testing.T) {
	tmr, clk := newTestTimer(t, 16)

	// at 2KHz a tick is 500us. advancing by 750us repeatedly must not lose
	// the half-tick remainder: 4 x 750us = 6 ticks exactly
	poke(t, tmr, timer.AddrLoad, 1000)
	poke(t, tmr, timer.AddrControl, timer.Control{Enabled: true}.Encode())
	for i := 0; i < 4; i++ {
		clk.Advance(750 * time.Microsecond)
		peek(t, tmr, timer.AddrValue)
	}
	test.ExpectEquality(t, peek(t, tmr, timer.AddrValue), uint32(1000-6))
}

func TestEnableClearsFraction(t *testing.T) {
	tmr, clk := newTestTimer(t, 16)

	// accumulate half a tick of remainder
	poke(t, tmr, timer.AddrLoad, 1000)
	poke(t, tmr, timer.AddrControl, timer.Control{Enabled: true}.Encode())
	clk.Advance(750 * time.Microsecond)
	test.ExpectEquality(t, peek(t, tmr, timer.AddrValue), uint32(999))

	// disable, reconfigure and re-enable. the remainder must not carry
	// into the new enable period: the same 750us decrement the same 1 tick
	poke(t, tmr, timer.AddrControl, timer.Control{}.Encode())
	poke(t, tmr, timer.AddrLoad, 1000)
	poke(t, tmr, timer.AddrControl, timer.Control{Enabled: true}.Encode())
	clk.Advance(750 * time.Microsecond)
	test.ExpectEquality(t, peek(t, tmr, timer.AddrValue), uint32(999))
}

func TestDisabledTimerDoesNotDecay(t *testing.T) {
	tmr, clk := newTestTimer(t, 16)

	poke(t, tmr, timer.AddrLoad, 500)
	clk.Advance(10 * time.Second)
	test.ExpectEquality(t, peek(t, tmr, timer.AddrValue), uint32(500))

	// elapsed time while disabled must not be credited once enabled
	poke(t, tmr, timer.AddrControl, timer.Control{Enabled: true}.Encode())
	test.ExpectEquality(t, peek(t, tmr, timer.AddrValue), uint32(500))
}

func TestPeriodicReload(t *testing.T) {
	tmr, clk := newTestTimer(t, 16)

	poke(t, tmr, timer.AddrLoad, 100)
	poke(t, tmr, timer.AddrControl, timer.Control{Mode: timer.Periodic, Enabled: true}.Encode())

	// no wrap: plain decrement
	clk.Advance(15 * time.Millisecond) // 30 ticks
	test.ExpectEquality(t, peek(t, tmr, timer.AddrValue), uint32(70))

	// single wrap: 150 ticks from 70 passes through zero and reloads,
	// offset by the 80 excess ticks
	clk.Advance(75 * time.Millisecond) // 150 ticks
	test.ExpectEquality(t, peek(t, tmr, timer.AddrValue), uint32(100-80))
}

func TestPeriodicMultipleWrap(t *testing.T) {
	tmr, clk := newTestTimer(t, 16)

	poke(t, tmr, timer.AddrLoad, 10)
	poke(t, tmr, timer.AddrControl, timer.Control{Mode: timer.Periodic, Enabled: true}.Encode())

	// 1000 ticks from 10: the first 10 reach zero, the remaining 990 are
	// 99 whole steady-state cycles of 10 ticks
	clk.Advance(500 * time.Millisecond)
	test.ExpectEquality(t, peek(t, tmr, timer.AddrValue), uint32(0))

	// and one more tick into the next cycle
	clk.Advance(500 * time.Microsecond)
	test.ExpectEquality(t, peek(t, tmr, timer.AddrValue), uint32(9))
}

func TestFatalMisuse(t *testing.T) {
	tmr, clk := newTestTimer(t, 16)

	// reading Load before it has been written
	_, err := tmr.Read32(timer.AddrLoad)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, memory.FatalMisuse))

	// writing Load while the timer is enabled
	poke(t, tmr, timer.AddrLoad, 100)
	poke(t, tmr, timer.AddrControl, timer.Control{Enabled: true}.Encode())
	err = tmr.Write32(timer.AddrLoad, 200)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, memory.FatalMisuse))

	// disabling clears the load value. periodic reload before the load
	// register is rewritten is a fatal misuse
	poke(t, tmr, timer.AddrControl, timer.Control{}.Encode())
	poke(t, tmr, timer.AddrControl, timer.Control{Mode: timer.Periodic, Enabled: true}.Encode())
	clk.Advance(1 * time.Second)
	_, err = tmr.Read32(timer.AddrValue)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, memory.FatalMisuse))
}

func TestDisableClearsLoad(t *testing.T) {
	tmr, _ := newTestTimer(t, 16)

	poke(t, tmr, timer.AddrLoad, 100)
	test.ExpectEquality(t, peek(t, tmr, timer.AddrLoad), uint32(100))

	// any control write with the enable bit clear invalidates the load
	// value
	poke(t, tmr, timer.AddrControl, timer.Control{}.Encode())
	_, err := tmr.Read32(timer.AddrLoad)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, memory.FatalMisuse))
}

func TestAccessErrors(t *testing.T) {
	tmr, _ := newTestTimer(t, 16)

	// Value is read-only
	err := tmr.Write32(timer.AddrValue, 1)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidAccess))

	// Clear is real hardware but not modelled. distinguishable from both
	// invalid access and unexpected offsets
	_, err = tmr.Read32(timer.AddrClear)
	test.ExpectSuccess(t, curated.Is(err, memory.UnimplementedRegister))
	err = tmr.Write32(timer.AddrClear, 0)
	test.ExpectSuccess(t, curated.Is(err, memory.UnimplementedRegister))

	// offsets with no register behind them
	_, err = tmr.Read32(0x10)
	test.ExpectSuccess(t, curated.Is(err, memory.UnexpectedOffset))
	err = tmr.Write32(0xfc, 0)
	test.ExpectSuccess(t, curated.Is(err, memory.UnexpectedOffset))
}

func TestControlReadback(t *testing.T) {
	tmr, _ := newTestTimer(t, 16)

	ctrl := timer.Control{Rate: timer.KHz508, Mode: timer.Periodic}
	poke(t, tmr, timer.AddrControl, ctrl.Encode())
	test.ExpectEquality(t, timer.DecodeControl(peek(t, tmr, timer.AddrControl)), ctrl)
}

func TestProbe(t *testing.T) {
	tmr, _ := newTestTimer(t, 16)

	for _, p := range []struct {
		offset uint32
		name   string
	}{
		{timer.AddrLoad, "Load"},
		{timer.AddrValue, "Value"},
		{timer.AddrControl, "Control"},
		{timer.AddrClear, "Clear"},
	} {
		name, ok := tmr.Probe(p.offset)
		test.ExpectSuccess(t, ok, p.offset)
		test.ExpectEquality(t, name, p.name)
	}

	_, ok := tmr.Probe(0x10)
	test.ExpectFailure(t, ok)
}
