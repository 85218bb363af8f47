// Package stream provides a fake byte stream for tests. A Stream presents a
// cursor-based read/write/seek surface over either an in-memory buffer it
// owns or an external handle it wraps, enforces per-instance capability
// flags, and records every chunk returned by Read so tests can assert on the
// exact sequence of reads afterwards.
//
// Example usage:
//
//	s := stream.New([]byte("abcdef"))
//	buf := make([]byte, 3)
//	s.Read(buf) // "abc"
//	s.Read(buf) // "def"
//	s.Reads()   // [][]byte{[]byte("abc"), []byte("def")}
package stream

import (
	"fmt"
	"io"
	"io/fs"
	"os"
)

var (
	_ io.ReadWriteSeeker = (*Stream)(nil)
	_ io.Closer          = (*Stream)(nil)
	_ fmt.Stringer       = (*Stream)(nil)
)

// SizeUnknown is returned by Size when the total length of a wrapped handle
// cannot be determined.
const SizeUnknown int64 = -1

// backing selects the storage strategy behind a Stream. Exactly one of the
// two is active for the lifetime of the instance.
type backing int

const (
	backingBuffer backing = iota // content owned in memory
	backingHandle                // content delegated to an external handle
)

// Stream is a fake byte stream. The zero value is not usable; construct one
// with New, FromFile or Wrap. A Stream is not safe for concurrent use.
type Stream struct {
	mode   backing
	buf    []byte
	pos    int64
	handle io.Reader
	sawEOF bool

	readable bool
	writable bool
	seekable bool
	closed   bool

	reads [][]byte
}

// Option configures capability flags at construction time. Flags cannot be
// changed afterwards.
type Option func(*Stream)

// NotReadable constructs the stream without the readable capability.
func NotReadable() Option {
	return func(s *Stream) { s.readable = false }
}

// NotWritable constructs the stream without the writable capability.
func NotWritable() Option {
	return func(s *Stream) { s.writable = false }
}

// NotSeekable constructs the stream without the seekable capability.
func NotSeekable() Option {
	return func(s *Stream) { s.seekable = false }
}

// New creates a Stream owning a copy of content, cursor at position 0.
// All capability flags are enabled unless cleared by options.
func New(content []byte, opts ...Option) *Stream {
	s := &Stream{
		mode:     backingBuffer,
		buf:      append([]byte(nil), content...),
		readable: true,
		writable: true,
		seekable: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FromFile creates a buffer-backed Stream by loading the entire file at path
// into memory once. It fails with an error wrapping ErrUnreadable when the
// file cannot be read.
func FromFile(path string, opts ...Option) (*Stream, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w: %w", path, ErrUnreadable, err)
	}
	return New(data, opts...), nil
}

// Wrap creates a Stream that delegates to an external handle. Position and
// bounds tracking belong to the handle. The writable and seekable flags are
// granted only when the handle actually implements io.Writer and io.Seeker;
// options can still clear any flag.
func Wrap(h io.Reader, opts ...Option) *Stream {
	_, writable := h.(io.Writer)
	_, seekable := h.(io.Seeker)
	s := &Stream{
		mode:     backingHandle,
		handle:   h,
		readable: true,
		writable: writable,
		seekable: seekable,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Read fills p with up to len(p) bytes from the current position and
// advances the cursor by the number of bytes returned. Every non-empty
// chunk is recorded in the read log. Fails with ErrNotReadable when the
// readable flag is off; returns io.EOF once the content is exhausted.
func (s *Stream) Read(p []byte) (int, error) {
	if !s.readable {
		return 0, ErrNotReadable
	}

	switch s.mode {
	case backingHandle:
		n, err := s.handle.Read(p)
		if err == io.EOF {
			s.sawEOF = true
		}
		if n > 0 {
			s.logRead(p[:n])
		}
		return n, err
	default:
		if s.pos >= int64(len(s.buf)) {
			if len(p) == 0 {
				return 0, nil
			}
			return 0, io.EOF
		}
		n := copy(p, s.buf[s.pos:])
		s.pos += int64(n)
		if n > 0 {
			s.logRead(p[:n])
		}
		return n, nil
	}
}

// Write appends p to the stream content. In owned-buffer mode data is always
// concatenated to the end of the existing content (not spliced in at the
// cursor) and the cursor moves to the new end; in handle mode the write is
// delegated. Fails with ErrNotWritable when the writable flag is off.
func (s *Stream) Write(p []byte) (int, error) {
	if !s.writable {
		return 0, ErrNotWritable
	}

	switch s.mode {
	case backingHandle:
		w, ok := s.handle.(io.Writer)
		if !ok {
			return 0, ErrNotWritable
		}
		return w.Write(p)
	default:
		s.buf = append(s.buf, p...)
		s.pos = int64(len(s.buf))
		return len(p), nil
	}
}

// Seek moves the cursor to the position computed from offset and whence
// (io.SeekStart, io.SeekCurrent, io.SeekEnd). In owned-buffer mode a target
// outside [0, Size()] fails with ErrOutOfBounds and leaves the cursor where
// it was; in handle mode bounds are the handle's business. Fails with
// ErrNotSeekable when the seekable flag is off.
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	if !s.seekable {
		return 0, ErrNotSeekable
	}

	if s.mode == backingHandle {
		seeker, ok := s.handle.(io.Seeker)
		if !ok {
			return 0, ErrNotSeekable
		}
		pos, err := seeker.Seek(offset, whence)
		if err == nil {
			s.sawEOF = false
		}
		return pos, err
	}

	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = s.pos + offset
	case io.SeekEnd:
		target = int64(len(s.buf)) + offset
	default:
		return 0, fmt.Errorf("invalid seek whence: %d", whence)
	}

	if target < 0 || target > int64(len(s.buf)) {
		return 0, fmt.Errorf("seek to %d in stream of length %d: %w", target, len(s.buf), ErrOutOfBounds)
	}

	s.pos = target
	return target, nil
}

// Rewind resets the cursor to the start of the stream. Like any other seek
// it fails with ErrNotSeekable when the seekable flag is off.
func (s *Stream) Rewind() error {
	_, err := s.Seek(0, io.SeekStart)
	return err
}

// Close transitions the stream to its terminal state: content cleared,
// cursor reset, all capability flags forced off. In handle mode the handle
// is closed too, when it supports closing. Close is idempotent.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.readable = false
	s.writable = false
	s.seekable = false
	s.buf = nil
	s.pos = 0

	var err error
	if c, ok := s.handle.(io.Closer); ok {
		err = c.Close()
	}
	s.handle = nil
	return err
}

// Detach releases the underlying handle without closing it and transitions
// the stream to the same terminal state as Close. The returned handle is nil
// for buffer-backed streams and for streams already closed or detached.
func (s *Stream) Detach() io.Reader {
	if s.closed {
		return nil
	}
	s.closed = true
	s.readable = false
	s.writable = false
	s.seekable = false
	s.buf = nil
	s.pos = 0

	h := s.handle
	s.handle = nil
	return h
}

// logRead appends a copy of chunk to the read log.
func (s *Stream) logRead(chunk []byte) {
	s.reads = append(s.reads, append([]byte(nil), chunk...))
}

// stat is the subset of os.File used for size detection in handle mode.
type stat interface {
	Stat() (fs.FileInfo, error)
}
