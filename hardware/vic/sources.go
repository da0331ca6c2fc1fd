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

import "fmt"

// Interrupt identifies one of the EP9302 interrupt sources. Sources 0 to
// 31 are wired to VIC1 and sources 32 to 63 to VIC2.
type Interrupt uint8

// The interrupt sources relevant to the TS-7200. This is a fixed set; the
// emulation does not support arbitrary additional sources.
const (
	CommRx       Interrupt = 2
	CommTx       Interrupt = 3
	Tc1Ui        Interrupt = 4
	Tc2Ui        Interrupt = 5
	Uart1RxIntr1 Interrupt = 23
	Uart1TxIntr1 Interrupt = 24
	Uart2RxIntr2 Interrupt = 25
	Uart2TxIntr2 Interrupt = 26
	Uart3RxIntr3 Interrupt = 27
	Uart3TxIntr3 Interrupt = 28
	Tc3Ui        Interrupt = 51
	IntUart1     Interrupt = 52
	IntUart2     Interrupt = 54
	IntUart3     Interrupt = 55
)

func (i Interrupt) String() string {
	switch i {
	case CommRx:
		return "COMMRX"
	case CommTx:
		return "COMMTX"
	case Tc1Ui:
		return "TC1UI"
	case Tc2Ui:
		return "TC2UI"
	case Uart1RxIntr1:
		return "UART1RXINTR1"
	case Uart1TxIntr1:
		return "UART1TXINTR1"
	case Uart2RxIntr2:
		return "UART2RXINTR2"
	case Uart2TxIntr2:
		return "UART2TXINTR2"
	case Uart3RxIntr3:
		return "UART3RXINTR3"
	case Uart3TxIntr3:
		return "UART3TXINTR3"
	case Tc3Ui:
		return "TC3UI"
	case IntUart1:
		return "INT_UART1"
	case IntUart2:
		return "INT_UART2"
	case IntUart3:
		return "INT_UART3"
	}
	return fmt.Sprintf("INT%d", uint8(i))
}

// bank is 0 for sources wired to VIC1 and 1 for sources wired to VIC2.
func (i Interrupt) bank() int {
	return int(i) / 32
}

// bit is the source's line number within its controller.
func (i Interrupt) bit() uint8 {
	return uint8(i) % 32
}
