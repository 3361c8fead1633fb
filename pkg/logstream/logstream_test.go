package logstream_test

import (
	"io"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrhwick/jobrunner/pkg/logstream"
)

func tempLogFile(t *testing.T, contents string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "log-*.txt")
	require.NoError(t, err)
	_, err = f.WriteString(contents)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func TestReadReturnsEOFOnceStoppedAndDrained(t *testing.T) {
	path := tempLogFile(t, "hello\n")

	var running atomic.Bool
	running.Store(false)

	s, err := logstream.Open(path, running.Load, time.Millisecond, 0)
	require.NoError(t, err)
	defer s.Close()

	buf := make([]byte, 64)
	n, err := s.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(buf[:n]))

	_, err = s.Read(buf)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadWaitsWhileRunning(t *testing.T) {
	path := tempLogFile(t, "")

	var running atomic.Bool
	running.Store(true)

	s, err := logstream.Open(path, running.Load, time.Millisecond, 0)
	require.NoError(t, err)
	defer s.Close()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	require.NoError(t, err)

	done := make(chan struct{})
	var n int
	var readErr error
	buf := make([]byte, 64)

	go func() {
		n, readErr = s.Read(buf)
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Read returned before any data was written")
	case <-time.After(20 * time.Millisecond):
	}

	_, err = f.WriteString("world")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Read did not unblock after data was written")
	}

	require.NoError(t, readErr)
	assert.Equal(t, "world", string(buf[:n]))

	running.Store(false)
	_, err = s.Read(buf)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadAfterCloseIsEOF(t *testing.T) {
	path := tempLogFile(t, "x")

	s, err := logstream.Open(path, func() bool { return false }, time.Millisecond, 0)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	buf := make([]byte, 8)
	_, err = s.Read(buf)
	assert.ErrorIs(t, err, io.EOF)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := logstream.Open("/nonexistent/path/does-not-exist.txt", func() bool { return false }, 0, 0)
	assert.Error(t, err)
}

func TestBufSizeDefaultsAndOverrides(t *testing.T) {
	path := tempLogFile(t, "")

	s, err := logstream.Open(path, func() bool { return false }, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, logstream.DefaultBufSize, s.BufSize())
	require.NoError(t, s.Close())

	s, err = logstream.Open(path, func() bool { return false }, 0, 4096)
	require.NoError(t, err)
	assert.Equal(t, 4096, s.BufSize())
	require.NoError(t, s.Close())
}
