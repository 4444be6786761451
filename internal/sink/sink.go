// Package sink implements the per-symbol append-only output stream.
package sink

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// Sink is one symbol's append-only text output file. Writes to a Sink are
// only ever issued from that symbol's own task chain (internal/scheduler),
// so no internal locking is required.
type Sink struct {
	file *os.File
	buf  *bufio.Writer
}

// New creates (or truncates) "<dir>/<symbol>.txt" and returns a buffered
// sink over it.
func New(dir, symbol string) (*Sink, error) {
	path := filepath.Join(dir, symbol+".txt")
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create sink for %s: %w", symbol, err)
	}
	return &Sink{file: f, buf: bufio.NewWriter(f)}, nil
}

// Write appends text to the sink. Empty text is a no-op.
func (s *Sink) Write(text string) error {
	if text == "" {
		return nil
	}
	if _, err := s.buf.WriteString(text); err != nil {
		return fmt.Errorf("write sink: %w", err)
	}
	return nil
}

// Close flushes buffered output and closes the underlying file.
func (s *Sink) Close() error {
	if err := s.buf.Flush(); err != nil {
		_ = s.file.Close()
		return fmt.Errorf("flush sink: %w", err)
	}
	return s.file.Close()
}
