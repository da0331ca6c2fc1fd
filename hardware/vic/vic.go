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

import (
	"fmt"

	"github.com/alexkursell/ts7200/curated"
	"github.com/alexkursell/ts7200/hardware/memory"
	"github.com/alexkursell/ts7200/logger"
)

// register offsets, relative to the VIC's base address.
const (
	AddrIRQStatus    = 0x00
	AddrFIQStatus    = 0x04
	AddrRawIntr      = 0x08
	AddrIntSelect    = 0x0c
	AddrIntEnable    = 0x10
	AddrIntEnClear   = 0x14
	AddrSoftInt      = 0x18
	AddrSoftIntClear = 0x1c
	AddrProtection   = 0x20
	AddrVectAddr     = 0x30
	AddrDefVectAddr  = 0x34

	// two banks of 16 word-sized registers, one word per vector slot
	AddrVectAddrBase = 0x100
	AddrVectCntlBase = 0x200

	// hard-wired peripheral identification bytes
	AddrPeriphID0 = 0xfe0
	AddrPeriphID3 = 0xfec
)

// the number of slots in the vector table.
const NumVectors = 16

// bit assignments in a VectCntl register.
const (
	maskVectSource = 0x1f
	maskVectEnable = 0x20
)

// VectorEntry is one slot of the priority-ordered vector table. Slot 0 has
// the highest priority.
type VectorEntry struct {
	// interrupt source this slot responds to, always reduced to 5 bits
	Source uint8

	// address of the service routine
	ISR uint32

	Enabled bool
}

// VIC emulates a single 32-line vectored interrupt controller.
type VIC struct {
	label string

	// lines asserted by hardware sources
	status uint32

	// lines asserted through the SoftInt register
	softStatus uint32

	// lines that participate in the output lines at all
	enabled uint32

	// 1 = line routed to FIQ, 0 = routed to IRQ
	fiqSelect uint32

	// fallback service routine address
	defaultISR uint32

	vectors [NumVectors]VectorEntry
}

// NewVIC is the preferred method of initialisation for the VIC type. All
// state starts zeroed.
func NewVIC(label string) *VIC {
	return &VIC{label: label}
}

// Label implements the memory.Labelling interface.
func (vic *VIC) Label() string {
	return vic.label
}

// Kind implements the memory.Labelling interface.
func (vic *VIC) Kind() string {
	return "VIC"
}

func (vic *VIC) String() string {
	return fmt.Sprintf("%s: raw=%#08x enabled=%#08x select=%#08x irq=%v fiq=%v",
		vic.label, vic.rawStatus(), vic.enabled, vic.fiqSelect, vic.IRQ(), vic.FIQ())
}

// a line is active if it is asserted by hardware or by software.
func (vic *VIC) rawStatus() uint32 {
	return vic.status | vic.softStatus
}

// active lines that are also enabled.
func (vic *VIC) enabledActive() uint32 {
	return vic.rawStatus() & vic.enabled
}

// Assert the numbered interrupt line on behalf of a hardware source. A
// pure bitmap edit with no further side effects. The source number is
// reduced to 5 bits.
func (vic *VIC) Assert(source uint8) {
	vic.status |= 1 << (source & maskVectSource)
}

// Clear the numbered interrupt line on behalf of a hardware source. The
// counterpart of Assert().
func (vic *VIC) Clear(source uint8) {
	vic.status &^= 1 << (source & maskVectSource)
}

// IRQ is true if any enabled, active, non-FIQ-selected line is set. The
// CPU polls this line.
func (vic *VIC) IRQ() bool {
	return vic.enabledActive()&^vic.fiqSelect != 0
}

// FIQ is true if any enabled, active, FIQ-selected line is set. The CPU
// polls this line.
func (vic *VIC) FIQ() bool {
	return vic.enabledActive()&vic.fiqSelect != 0
}

// isrAddress resolves the address the CPU should jump to. an FIQ pending,
// or nothing pending, yields the default vector; otherwise the table is
// scanned in priority order for the first enabled slot whose source is
// among the pending IRQ lines.
func (vic *VIC) isrAddress() uint32 {
	if vic.FIQ() || !vic.IRQ() {
		return vic.defaultISR
	}

	irqs := vic.enabledActive() &^ vic.fiqSelect
	for i := range vic.vectors {
		ent := &vic.vectors[i]
		if ent.Enabled && irqs&(1<<ent.Source) != 0 {
			return ent.ISR
		}
	}

	return vic.defaultISR
}

// Probe implements the memory.DebugBus interface.
func (vic *VIC) Probe(offset uint32) (string, bool) {
	switch {
	case offset == AddrIRQStatus:
		return "IRQStatus", true
	case offset == AddrFIQStatus:
		return "FIQStatus", true
	case offset == AddrRawIntr:
		return "RawIntr", true
	case offset == AddrIntSelect:
		return "IntSelect", true
	case offset == AddrIntEnable:
		return "IntEnable", true
	case offset == AddrIntEnClear:
		return "IntEnClear", true
	case offset == AddrSoftInt:
		return "SoftInt", true
	case offset == AddrSoftIntClear:
		return "SoftIntClear", true
	case offset == AddrProtection:
		return "Protection", true
	case offset == AddrVectAddr:
		return "VectAddr", true
	case offset == AddrDefVectAddr:
		return "DefVectAddr", true
	case vectorIndex(offset, AddrVectAddrBase) >= 0:
		return fmt.Sprintf("VectAddr%d", vectorIndex(offset, AddrVectAddrBase)), true
	case vectorIndex(offset, AddrVectCntlBase) >= 0:
		return fmt.Sprintf("VectCntl%d", vectorIndex(offset, AddrVectCntlBase)), true
	case offset >= AddrPeriphID0 && offset <= AddrPeriphID3:
		return fmt.Sprintf("PeriphID%d", (offset-AddrPeriphID0)/4), true
	}
	return "", false
}

// vectorIndex converts an offset into one of the two vector register banks
// to a table index. returns -1 if the offset is outside the bank.
func vectorIndex(offset uint32, base uint32) int {
	if offset < base || offset >= base+NumVectors*4 {
		return -1
	}
	return int((offset - base) / 4)
}

// Read32 implements the memory.Memory interface.
func (vic *VIC) Read32(offset uint32) (uint32, error) {
	switch offset {
	case AddrIRQStatus:
		return vic.enabledActive() &^ vic.fiqSelect, nil
	case AddrFIQStatus:
		return vic.enabledActive() & vic.fiqSelect, nil
	case AddrRawIntr:
		return vic.rawStatus(), nil
	case AddrIntSelect:
		return vic.fiqSelect, nil
	case AddrIntEnable:
		return vic.enabled, nil
	case AddrIntEnClear:
		return 0, curated.Errorf(memory.InvalidAccess, vic.label,
			"read of write-only IntEnClear register")
	case AddrSoftInt:
		return vic.softStatus, nil
	case AddrSoftIntClear:
		return 0, curated.Errorf(memory.InvalidAccess, vic.label,
			"read of write-only SoftIntClear register")
	case AddrProtection:
		// protected-mode access control is not modelled. stubbed to zero
		logger.Log(logger.Allow, vic.label, "stub read of Protection register")
		return 0, nil
	case AddrVectAddr:
		return vic.isrAddress(), nil
	case AddrDefVectAddr:
		return vic.defaultISR, nil
	}

	if idx := vectorIndex(offset, AddrVectAddrBase); idx >= 0 {
		return vic.vectors[idx].ISR, nil
	}

	if idx := vectorIndex(offset, AddrVectCntlBase); idx >= 0 {
		ent := &vic.vectors[idx]
		v := uint32(ent.Source)
		if ent.Enabled {
			v |= maskVectEnable
		}
		return v, nil
	}

	// hard-wired hardware identification values
	switch offset {
	case 0xfe0:
		return 0x90, nil
	case 0xfe4:
		return 0x11, nil
	case 0xfe8:
		return 0x04, nil
	case 0xfec:
		return 0x00, nil
	}

	return 0, curated.Errorf(memory.UnexpectedOffset, vic.label, offset)
}

// Write32 implements the memory.Memory interface.
func (vic *VIC) Write32(offset uint32, val uint32) error {
	switch offset {
	case AddrIRQStatus, AddrFIQStatus, AddrRawIntr:
		name, _ := vic.Probe(offset)
		return curated.Errorf(memory.InvalidAccess, vic.label,
			fmt.Sprintf("write to read-only %s register", name))
	case AddrIntSelect:
		vic.fiqSelect = val
		return nil
	case AddrIntEnable:
		vic.enabled = val
		return nil
	case AddrIntEnClear:
		vic.enabled &^= val
		return nil
	case AddrSoftInt:
		vic.softStatus |= val
		return nil
	case AddrSoftIntClear:
		vic.softStatus &^= val
		return nil
	case AddrProtection:
		logger.Log(logger.Allow, vic.label, "stub write of Protection register")
		return nil
	case AddrVectAddr:
		// on real hardware this tells the VIC the current interrupt has
		// been serviced. the priority masking that depends on it is not
		// modelled so the write is a no-op
		return nil
	case AddrDefVectAddr:
		vic.defaultISR = val
		return nil
	}

	if idx := vectorIndex(offset, AddrVectAddrBase); idx >= 0 {
		vic.vectors[idx].ISR = val
		return nil
	}

	if idx := vectorIndex(offset, AddrVectCntlBase); idx >= 0 {
		vic.vectors[idx].Enabled = val&maskVectEnable != 0
		vic.vectors[idx].Source = uint8(val & maskVectSource)
		return nil
	}

	if offset >= AddrPeriphID0 && offset <= AddrPeriphID3 {
		name, _ := vic.Probe(offset)
		return curated.Errorf(memory.InvalidAccess, vic.label,
			fmt.Sprintf("write to read-only %s register", name))
	}

	return curated.Errorf(memory.UnexpectedOffset, vic.label, offset)
}
