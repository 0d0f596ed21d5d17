package log

import (
	"encoding/hex"
	"io"
	"sync"
	"time"
)

// Direction of a raw payload relative to this host.
type Direction bool

const (
	Out Direction = true
	In  Direction = false
)

func (d Direction) String() string {
	if d == Out {
		return ">>"
	}
	return "<<"
}

// RawLogger records every payload crossing the link as a hex line.
type RawLogger interface {
	Log(dir Direction, data []byte)
}

type rawLogger struct {
	mu  sync.Mutex
	w   io.Writer
	now func() time.Time
}

// NewRaw returns a RawLogger writing to w. A nil writer discards everything.
func NewRaw(w io.Writer) RawLogger {
	if w == nil {
		return nopRaw{}
	}
	return &rawLogger{w: w, now: time.Now}
}

func (r *rawLogger) Log(dir Direction, data []byte) {
	line := make([]byte, 0, 32+3*len(data))
	line = r.now().AppendFormat(line, "15:04:05.000000")
	line = append(line, ' ')
	line = append(line, dir.String()...)
	for _, b := range data {
		line = append(line, ' ')
		line = append(line, hex.EncodeToString([]byte{b})...)
	}
	line = append(line, '\n')

	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = r.w.Write(line)
}

type nopRaw struct{}

func (nopRaw) Log(Direction, []byte) {}
