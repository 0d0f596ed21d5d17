// Package packet implements the inputs packet: an 8-byte snapshot of a
// gamepad-style input device (16 buttons, two analog sticks) exchanged
// between two microcontrollers over a byte-oriented link.
//
// Wire format (fixed 8 bytes, least-significant bit first):
//
//	0:   ID (always 123)
//	1-2: Flags, little-endian uint16, one bit per button in declaration
//	     order (Select = byte 1 bit 0 ... RightStickButton = byte 2 bit 7).
//	     Flags are active-low: 0 = pressed, 1 = released.
//	3-7: 40-bit little-endian integer holding four 10-bit axes:
//	     LeftStickX bits 0-9, LeftStickY 10-19, RightStickX 20-29,
//	     RightStickY 30-39.
package packet

import (
	"errors"
	"fmt"
)

const (
	// ID identifies an inputs packet on a channel shared with other packet types.
	ID byte = 123
	// Size is the encoded size of an inputs packet in bytes.
	Size = 8
	// MaxAxis is the largest value a 10-bit axis can hold.
	MaxAxis = 1<<axisBits - 1

	axisBits = 10
	axisMask = MaxAxis
)

var (
	ErrBadLength       = errors.New("bad packet length")
	ErrUnexpectedID    = errors.New("unexpected packet id")
	ErrValueOutOfRange = errors.New("axis value out of range")
)

// InputsPacket is one sampled state of the input device.
//
// Flags holds the button bits exactly as they travel on the wire, so a zero
// bit means pressed. Use Pressed/Press/Release for an active-high view.
type InputsPacket struct {
	Flags Button

	LeftStickX  uint16
	LeftStickY  uint16
	RightStickX uint16
	RightStickY uint16
}

// New builds a packet and rejects any axis above MaxAxis.
func New(flags Button, lx, ly, rx, ry uint16) (InputsPacket, error) {
	p := InputsPacket{
		Flags:       flags,
		LeftStickX:  lx,
		LeftStickY:  ly,
		RightStickX: rx,
		RightStickY: ry,
	}
	if err := p.Validate(); err != nil {
		return InputsPacket{}, err
	}
	return p, nil
}

// Validate reports ErrValueOutOfRange for the first axis above MaxAxis.
func (p InputsPacket) Validate() error {
	for _, a := range p.axes() {
		if a.value > MaxAxis {
			return fmt.Errorf("%w: %s=%d (max %d)", ErrValueOutOfRange, a.name, a.value, MaxAxis)
		}
	}
	return nil
}

type axis struct {
	name  string
	value uint16
}

// axes returns the stick values in wire order.
func (p InputsPacket) axes() [4]axis {
	return [4]axis{
		{"left_stick_x", p.LeftStickX},
		{"left_stick_y", p.LeftStickY},
		{"right_stick_x", p.RightStickX},
		{"right_stick_y", p.RightStickY},
	}
}

// Pressed reports whether every button in b is held (its bit is 0).
func (p InputsPacket) Pressed(b Button) bool {
	return b != 0 && p.Flags&b == 0
}

// Press marks the buttons in b as held.
func (p *InputsPacket) Press(b Button) {
	p.Flags &^= b
}

// Release marks the buttons in b as released.
func (p *InputsPacket) Release(b Button) {
	p.Flags |= b
}

// PressedButtons lists the held buttons in declaration order.
func (p InputsPacket) PressedButtons() []Button {
	var out []Button
	for _, b := range Buttons {
		if p.Flags&b == 0 {
			out = append(out, b)
		}
	}
	return out
}
