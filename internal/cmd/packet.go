package cmd

import (
	"github.com/robolink/padlink/packet"
)

// PacketFlags builds an inputs packet from the command line.
type PacketFlags struct {
	Press []string `help:"Buttons to hold, e.g. select,button1,L_STICK" sep:","`
	LX    uint16   `name:"lx" help:"Left stick X (0-1023)" default:"512"`
	LY    uint16   `name:"ly" help:"Left stick Y (0-1023)" default:"512"`
	RX    uint16   `name:"rx" help:"Right stick X (0-1023)" default:"512"`
	RY    uint16   `name:"ry" help:"Right stick Y (0-1023)" default:"512"`
}

// Packet returns the packet described by the flags.
func (f PacketFlags) Packet() (packet.InputsPacket, error) {
	held, err := packet.ParseButtons(f.Press)
	if err != nil {
		return packet.InputsPacket{}, err
	}
	return packet.New(packet.AllReleased&^held, f.LX, f.LY, f.RX, f.RY)
}
