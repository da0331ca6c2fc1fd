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

// Package vic emulates the vectored interrupt controllers of the EP9302,
// as described in section 6 of the EP93xx User's Guide.
//
// A single VIC aggregates 32 interrupt lines. A line is active if it is
// asserted by a hardware source (the Assert function) or by software (the
// SoftInt register). Active lines that are enabled drive one of two output
// lines: FIQ if the line's bit is set in the select mask, IRQ otherwise.
// Reading the VectAddr register resolves the highest-priority pending IRQ
// against the 16-slot vector table and returns the address of the service
// routine the CPU should jump to.
//
// The EP9302 has two VICs daisy-chained to give 64 sources. The Manager
// type owns the pair and routes named Interrupt sources to the right
// controller.
package vic
