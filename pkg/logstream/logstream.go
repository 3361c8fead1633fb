// Package logstream implements a lazy, restartable tail of a file that is
// still being written by a running job. Unlike a plain file tail, the
// end-of-stream condition is derived from external process state (the
// producing job's registry status) rather than from a bare EOF: a
// zero-byte read is not end-of-stream while the job is still Running.
//
// This is deliberately a polling design, not an inotify/kqueue watch, so
// that it survives log-file renames or truncations without needing to
// special-case them (out of scope per the spec).
package logstream

import (
	"errors"
	"io"
	"os"
	"time"
)

// Defaults for buffer size and poll backoff, per the spec.
const (
	DefaultBufSize      = 256
	DefaultPollInterval = 100 * time.Millisecond
)

// Stream is an io.ReadCloser that tails a log file from the beginning.
// Multiple Streams for the same file are independent: each opens its own
// file handle and holds no lock across reads.
type Stream struct {
	f            *os.File
	isRunning    func() bool
	pollInterval time.Duration
	bufSize      int
	closed       bool
}

// Open opens path from the beginning and returns a Stream that polls
// isRunning to decide whether a zero-byte read is real EOF. bufSize and
// pollInterval of <= 0 fall back to the package defaults; bufSize is
// exposed back via BufSize for callers that chunk reads (e.g. the gRPC
// server forwarding LogChunks).
func Open(path string, isRunning func() bool, pollInterval time.Duration, bufSize int) (*Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	if bufSize <= 0 {
		bufSize = DefaultBufSize
	}

	return &Stream{f: f, isRunning: isRunning, pollInterval: pollInterval, bufSize: bufSize}, nil
}

// BufSize returns the chunk size this Stream was opened with.
func (s *Stream) BufSize() int {
	return s.bufSize
}

// Read implements io.Reader. Each call either returns a non-empty chunk,
// blocks (sleeping the Stream's poll interval between attempts) until one is
// available or the job stops, or returns a terminal error.
func (s *Stream) Read(p []byte) (int, error) {
	if s.closed {
		return 0, io.EOF
	}

	for {
		n, err := s.f.Read(p)
		if n > 0 {
			return n, nil
		}
		if err != nil && !errors.Is(err, io.EOF) {
			s.closed = true
			return 0, err
		}

		if s.isRunning() {
			time.Sleep(s.pollInterval)
			continue
		}

		// The job is Stopped. The happens-before guarantee between the
		// reaper and status reads means every byte the child wrote before
		// exit is already in the file by the time isRunning() above
		// returned false -- but this exact read call may have raced that
		// transition, so take one more read before declaring end of
		// stream.
		n, err = s.f.Read(p)
		if n > 0 {
			return n, nil
		}
		if err != nil && !errors.Is(err, io.EOF) {
			s.closed = true
			return 0, err
		}

		s.closed = true
		return 0, io.EOF
	}
}

// Close releases the underlying file handle. Safe to call more than once.
func (s *Stream) Close() error {
	s.closed = true
	return s.f.Close()
}
