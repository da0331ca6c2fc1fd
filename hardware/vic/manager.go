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

package vic

// Manager owns the daisy-chained pair of interrupt controllers on the
// EP9302 and presents them as a single 64-line controller to hardware
// sources and to the CPU. Register access goes to the individual VICs
// through the bus; the Manager is for everything that is not a register.
type Manager struct {
	VIC1 *VIC
	VIC2 *VIC
}

// NewManager is the preferred method of initialisation for the Manager
// type.
func NewManager() *Manager {
	return &Manager{
		VIC1: NewVIC("VIC1"),
		VIC2: NewVIC("VIC2"),
	}
}

// banked returns the controller an interrupt source is wired to.
func (mgr *Manager) banked(i Interrupt) *VIC {
	if i.bank() == 0 {
		return mgr.VIC1
	}
	return mgr.VIC2
}

// Assert the named interrupt on behalf of a hardware source.
func (mgr *Manager) Assert(i Interrupt) {
	mgr.banked(i).Assert(i.bit())
}

// Clear the named interrupt on behalf of a hardware source.
func (mgr *Manager) Clear(i Interrupt) {
	mgr.banked(i).Clear(i.bit())
}

// IRQ is true if either controller is requesting an IRQ.
func (mgr *Manager) IRQ() bool {
	return mgr.VIC1.IRQ() || mgr.VIC2.IRQ()
}

// FIQ is true if either controller is requesting an FIQ.
func (mgr *Manager) FIQ() bool {
	return mgr.VIC1.FIQ() || mgr.VIC2.FIQ()
}

// ISRAddress resolves the service routine address across the pair. VIC1 is
// earlier in the daisy chain so its vectors take precedence; VIC2 is only
// consulted when VIC1 has nothing pending. With nothing pending anywhere
// the result is VIC1's default vector, as it would be on the real chain.
func (mgr *Manager) ISRAddress() uint32 {
	if mgr.VIC1.IRQ() || !mgr.VIC2.IRQ() {
		return mgr.VIC1.isrAddress()
	}
	return mgr.VIC2.isrAddress()
}
