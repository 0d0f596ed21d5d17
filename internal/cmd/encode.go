package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"

	"github.com/robolink/padlink/packet"
)

type Encode struct {
	PacketFlags `embed:""`

	Verbose bool `short:"v" help:"Also print the decoded rendering"`
}

// Run is called by Kong when the encode command is executed.
func (c *Encode) Run(logger *slog.Logger, out io.Writer) error {
	p, err := c.Packet()
	if err != nil {
		return err
	}
	b, err := packet.Encode(p)
	if err != nil {
		return err
	}
	logger.Debug("encoded packet", "flags", fmt.Sprintf("0x%04x", uint16(p.Flags)))

	if _, err := fmt.Fprintln(out, hex.EncodeToString(b[:])); err != nil {
		return err
	}
	if c.Verbose {
		return packet.Format(out, p)
	}
	return nil
}
