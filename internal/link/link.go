// Package link moves single inputs packets over a byte-oriented serial port.
//
// There is no framing: every packet is exactly packet.Size bytes on the wire
// and the two ends are expected to stay aligned.
package link

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/robolink/padlink/internal/log"
	"github.com/robolink/padlink/packet"
	"go.bug.st/serial"
)

var ErrShortWrite = errors.New("short write to serial port")

// Port is the minimal interface needed from a serial port, so tests can run
// without hardware.
type Port interface {
	io.ReadWriter
	io.Closer
}

// Link sends and receives inputs packets over a Port.
type Link struct {
	port   Port
	logger *slog.Logger
	raw    log.RawLogger
	sendMu sync.Mutex
	recvMu sync.Mutex
}

// New wraps an already open port.
func New(port Port, logger *slog.Logger, raw log.RawLogger) *Link {
	if logger == nil {
		logger = slog.Default()
	}
	if raw == nil {
		raw = log.NewRaw(nil)
	}
	return &Link{port: port, logger: logger, raw: raw}
}

// Open opens the serial port at path and wraps it in a Link.
func Open(path string, opts PortOptions, logger *slog.Logger, raw log.RawLogger) (*Link, error) {
	mode, err := opts.SerialMode()
	if err != nil {
		return nil, err
	}
	port, err := serial.Open(path, mode)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	l := New(port, logger, raw)
	l.logger.Info("serial port open", "port", path, "baud", mode.BaudRate)
	return l, nil
}

// Send encodes p and writes its 8 bytes to the port.
func (l *Link) Send(p packet.InputsPacket) error {
	b, err := packet.Encode(p)
	if err != nil {
		return err
	}

	l.sendMu.Lock()
	defer l.sendMu.Unlock()
	l.raw.Log(log.Out, b[:])
	n, err := l.port.Write(b[:])
	if err != nil {
		return fmt.Errorf("write packet: %w", err)
	}
	if n != len(b) {
		return ErrShortWrite
	}
	return nil
}

// Receive blocks until one full payload has been read and decodes it.
// Decode failures wrap the packet sentinel errors.
func (l *Link) Receive() (packet.InputsPacket, error) {
	var b [packet.Size]byte

	l.recvMu.Lock()
	_, err := io.ReadFull(l.port, b[:])
	l.recvMu.Unlock()
	if err != nil {
		return packet.InputsPacket{}, fmt.Errorf("read packet: %w", err)
	}
	l.raw.Log(log.In, b[:])
	return packet.Decode(b[:])
}

// Monitor receives packets and hands each one to fn until ctx is done or the
// port fails. Payloads that do not decode are logged and skipped.
func (l *Link) Monitor(ctx context.Context, fn func(packet.InputsPacket)) error {
	type result struct {
		p   packet.InputsPacket
		err error
	}
	results := make(chan result)

	// Receive blocks without a context, so it runs on its own goroutine and
	// the select below decides when to stop.
	go func() {
		defer close(results)
		for {
			p, err := l.Receive()
			select {
			case results <- result{p, err}:
			case <-ctx.Done():
				return
			}
			if err != nil && !isDecodeError(err) {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case r, ok := <-results:
			if !ok {
				return ctx.Err()
			}
			switch {
			case r.err == nil:
				fn(r.p)
			case errors.Is(r.err, packet.ErrUnexpectedID):
				l.logger.Debug("skipping foreign packet", "error", r.err)
			case isDecodeError(r.err):
				l.logger.Warn("dropping malformed packet", "error", r.err)
			case errors.Is(r.err, io.EOF), errors.Is(r.err, io.ErrUnexpectedEOF):
				l.logger.Info("serial port closed")
				return r.err
			default:
				return r.err
			}
		}
	}
}

func isDecodeError(err error) bool {
	return errors.Is(err, packet.ErrUnexpectedID) || errors.Is(err, packet.ErrBadLength)
}

// Close closes the underlying port. Any blocked Receive returns an error.
func (l *Link) Close() error {
	return l.port.Close()
}
