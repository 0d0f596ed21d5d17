package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/robolink/padlink/packet"
)

type Decode struct {
	Hex []string `arg:"" help:"Packet bytes as hex; spaces, colons and 0x prefixes are ignored"`
}

// Run is called by Kong when the decode command is executed.
func (c *Decode) Run(logger *slog.Logger, out io.Writer) error {
	data, err := parseHex(c.Hex)
	if err != nil {
		return err
	}
	if id, err := packet.PeekID(data); err == nil && id != packet.ID {
		logger.Warn("not an inputs packet", "id", id)
	}
	p, err := packet.Decode(data)
	if err != nil {
		return err
	}
	return packet.Format(out, p)
}

func parseHex(parts []string) ([]byte, error) {
	var sb strings.Builder
	for _, part := range parts {
		for _, f := range strings.FieldsFunc(part, func(r rune) bool { return r == ':' || r == ',' || r == ' ' || r == '-' }) {
			f = strings.TrimPrefix(strings.TrimPrefix(f, "0x"), "0X")
			sb.WriteString(f)
		}
	}
	data, err := hex.DecodeString(sb.String())
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	return data, nil
}
