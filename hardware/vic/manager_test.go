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

package vic_test

import (
	"testing"

	"github.com/alexkursell/ts7200/hardware/vic"
	"github.com/alexkursell/ts7200/test"
)

func TestManagerBanking(t *testing.T) {
	mgr := vic.NewManager()

	// sources 0-31 land in VIC1, sources 32-63 in VIC2
	mgr.Assert(vic.Tc1Ui) // 4
	mgr.Assert(vic.Tc3Ui) // 51
	test.ExpectEquality(t, peek(t, mgr.VIC1, vic.AddrRawIntr), uint32(1<<4))
	test.ExpectEquality(t, peek(t, mgr.VIC2, vic.AddrRawIntr), uint32(1<<(51-32)))

	mgr.Clear(vic.Tc1Ui)
	test.ExpectEquality(t, peek(t, mgr.VIC1, vic.AddrRawIntr), uint32(0))
	test.ExpectEquality(t, peek(t, mgr.VIC2, vic.AddrRawIntr), uint32(1<<(51-32)))
}

func TestManagerOutputLines(t *testing.T) {
	mgr := vic.NewManager()

	test.ExpectFailure(t, mgr.IRQ())
	test.ExpectFailure(t, mgr.FIQ())

	// an enabled source on VIC2 alone drives the combined lines
	mgr.Assert(vic.IntUart1) // 52
	poke(t, mgr.VIC2, vic.AddrIntEnable, 1<<(52-32))
	test.ExpectSuccess(t, mgr.IRQ())
	test.ExpectFailure(t, mgr.FIQ())

	// moving it to FIQ
	poke(t, mgr.VIC2, vic.AddrIntSelect, 1<<(52-32))
	test.ExpectFailure(t, mgr.IRQ())
	test.ExpectSuccess(t, mgr.FIQ())
}

func TestManagerDaisyChain(t *testing.T) {
	mgr := vic.NewManager()

	poke(t, mgr.VIC1, vic.AddrDefVectAddr, 0x1000)
	poke(t, mgr.VIC2, vic.AddrDefVectAddr, 0x2000)

	// nothing pending: the head of the chain supplies its default vector
	test.ExpectEquality(t, mgr.ISRAddress(), uint32(0x1000))

	// an IRQ pending on VIC2 only is forwarded up the chain
	setVector(t, mgr.VIC2, 0, 51-32, 0x4000, true)
	mgr.Assert(vic.Tc3Ui)
	poke(t, mgr.VIC2, vic.AddrIntEnable, 1<<(51-32))
	test.ExpectEquality(t, mgr.ISRAddress(), uint32(0x4000))

	// an IRQ pending on VIC1 takes precedence over VIC2
	setVector(t, mgr.VIC1, 0, 4, 0x3000, true)
	mgr.Assert(vic.Tc1Ui)
	poke(t, mgr.VIC1, vic.AddrIntEnable, 1<<4)
	test.ExpectEquality(t, mgr.ISRAddress(), uint32(0x3000))
}

func TestInterruptNames(t *testing.T) {
	test.ExpectEquality(t, vic.Tc1Ui.String(), "TC1UI")
	test.ExpectEquality(t, vic.Tc3Ui.String(), "TC3UI")
	test.ExpectEquality(t, vic.IntUart2.String(), "INT_UART2")
	test.ExpectEquality(t, vic.Interrupt(60).String(), "INT60")
}
