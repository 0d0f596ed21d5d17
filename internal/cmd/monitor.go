package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/robolink/padlink/internal/link"
	"github.com/robolink/padlink/internal/log"
	"github.com/robolink/padlink/packet"
)

type Monitor struct {
	Port        string           `help:"Serial port device" required:"" env:"PADLINK_PORT"`
	Serial      link.PortOptions `embed:"" prefix:"serial."`
	ChangesOnly bool             `help:"Only print packets that differ from the previous one"`
}

// Run is called by Kong when the monitor command is executed.
func (m *Monitor) Run(logger *slog.Logger, rawLogger log.RawLogger, out io.Writer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l, err := link.Open(m.Port, m.Serial, logger, rawLogger)
	if err != nil {
		return err
	}
	defer l.Close()

	logger.Info("Monitoring inputs packets", "port", m.Port)
	err = m.run(ctx, l, out)
	if errors.Is(err, context.Canceled) {
		logger.Info("Stopping monitor")
		return nil
	}
	return err
}

func (m *Monitor) run(ctx context.Context, l *link.Link, out io.Writer) error {
	var (
		last    packet.InputsPacket
		started bool
		werr    error
	)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	err := l.Monitor(ctx, func(p packet.InputsPacket) {
		if m.ChangesOnly && started && p == last {
			return
		}
		last, started = p, true
		if err := packet.Format(out, p); err != nil {
			werr = err
			cancel()
		}
	})
	if werr != nil {
		return werr
	}
	return err
}
