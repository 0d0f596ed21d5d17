package packet

import (
	"io"
	"strconv"
	"strings"
)

// Format writes the two-line debug rendering of p to w:
//
//	Lx<lx>y<ly>Rx<rx>y<ry>
//	<pressed buttons in declaration order, comma separated>
//
// The second line is empty when nothing is pressed.
func Format(w io.Writer, p InputsPacket) error {
	_, err := io.WriteString(w, p.String())
	return err
}

// String returns the same text Format writes.
func (p InputsPacket) String() string {
	var sb strings.Builder
	sb.WriteString("Lx")
	sb.WriteString(strconv.FormatUint(uint64(p.LeftStickX), 10))
	sb.WriteString("y")
	sb.WriteString(strconv.FormatUint(uint64(p.LeftStickY), 10))
	sb.WriteString("Rx")
	sb.WriteString(strconv.FormatUint(uint64(p.RightStickX), 10))
	sb.WriteString("y")
	sb.WriteString(strconv.FormatUint(uint64(p.RightStickY), 10))
	sb.WriteString("\n")

	for i, b := range p.PressedButtons() {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(b.String())
	}
	sb.WriteString("\n")
	return sb.String()
}
