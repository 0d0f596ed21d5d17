package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robolink/padlink/internal/link"
	"github.com/robolink/padlink/internal/log"
	"github.com/robolink/padlink/packet"
)

type Send struct {
	PacketFlags `embed:""`

	Port     string           `help:"Serial port device" required:"" env:"PADLINK_PORT"`
	Serial   link.PortOptions `embed:"" prefix:"serial."`
	Interval time.Duration    `help:"Delay between repeated packets" default:"20ms"`
	Count    int              `help:"Number of packets to send (0 = until interrupted)" default:"1"`
}

// Run is called by Kong when the send command is executed.
func (s *Send) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	p, err := s.Packet()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l, err := link.Open(s.Port, s.Serial, logger, rawLogger)
	if err != nil {
		return err
	}
	defer l.Close()

	sent, err := s.run(ctx, l, p)
	logger.Info("Sent inputs packets", "count", sent)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (s *Send) run(ctx context.Context, l *link.Link, p packet.InputsPacket) (int, error) {
	sent := 0
	if err := l.Send(p); err != nil {
		return sent, err
	}
	sent++
	if s.Count == 1 {
		return sent, nil
	}

	interval := s.Interval
	if interval <= 0 {
		interval = 20 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for s.Count <= 0 || sent < s.Count {
		select {
		case <-ctx.Done():
			return sent, ctx.Err()
		case <-ticker.C:
			if err := l.Send(p); err != nil {
				return sent, err
			}
			sent++
		}
	}
	return sent, nil
}
