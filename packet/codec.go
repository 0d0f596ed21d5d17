package packet

import (
	"encoding/binary"
	"fmt"
)

// Encode packs p into its 8-byte wire form. Axes above MaxAxis are rejected
// rather than truncated.
func Encode(p InputsPacket) ([Size]byte, error) {
	var b [Size]byte
	if err := p.Validate(); err != nil {
		return b, err
	}
	b[0] = ID
	binary.LittleEndian.PutUint16(b[1:3], uint16(p.Flags))

	v := uint64(p.LeftStickX) |
		uint64(p.LeftStickY)<<axisBits |
		uint64(p.RightStickX)<<(2*axisBits) |
		uint64(p.RightStickY)<<(3*axisBits)
	for i := 0; i < 5; i++ {
		b[3+i] = byte(v >> (8 * i))
	}
	return b, nil
}

// Decode unpacks an 8-byte wire buffer.
func Decode(data []byte) (InputsPacket, error) {
	if len(data) != Size {
		return InputsPacket{}, fmt.Errorf("%w: got %d bytes, want %d", ErrBadLength, len(data), Size)
	}
	if data[0] != ID {
		return InputsPacket{}, fmt.Errorf("%w: got %d, want %d", ErrUnexpectedID, data[0], ID)
	}

	var v uint64
	for i := 0; i < 5; i++ {
		v |= uint64(data[3+i]) << (8 * i)
	}
	return InputsPacket{
		Flags:       Button(binary.LittleEndian.Uint16(data[1:3])),
		LeftStickX:  uint16(v & axisMask),
		LeftStickY:  uint16(v >> axisBits & axisMask),
		RightStickX: uint16(v >> (2 * axisBits) & axisMask),
		RightStickY: uint16(v >> (3 * axisBits) & axisMask),
	}, nil
}

// PeekID returns the packet type byte so a receiver sharing one channel
// between several packet types can route a payload before decoding it.
func PeekID(data []byte) (byte, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("%w: empty buffer", ErrBadLength)
	}
	return data[0], nil
}

// MarshalBinary encodes InputsPacket to the fixed 8-byte wire format.
func (p InputsPacket) MarshalBinary() ([]byte, error) {
	return p.AppendBinary(make([]byte, 0, Size))
}

// AppendBinary appends the 8-byte wire form of p to b.
func (p InputsPacket) AppendBinary(b []byte) ([]byte, error) {
	enc, err := Encode(p)
	if err != nil {
		return b, err
	}
	return append(b, enc[:]...), nil
}

// UnmarshalBinary decodes InputsPacket from the fixed 8-byte wire format.
func (p *InputsPacket) UnmarshalBinary(data []byte) error {
	dec, err := Decode(data)
	if err != nil {
		return err
	}
	*p = dec
	return nil
}
