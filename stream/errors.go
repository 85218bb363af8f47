package stream

import "errors"

var (
	// ErrNotReadable is returned by read operations when the stream was
	// constructed without the readable capability or has been closed.
	ErrNotReadable = errors.New("stream is not readable")

	// ErrNotWritable is returned by Write when the stream was constructed
	// without the writable capability or has been closed.
	ErrNotWritable = errors.New("stream is not writable")

	// ErrNotSeekable is returned by Seek and Rewind when the stream was
	// constructed without the seekable capability or has been closed.
	ErrNotSeekable = errors.New("stream is not seekable")

	// ErrOutOfBounds is returned by Seek when the computed target position
	// is negative or past the end of an owned buffer.
	ErrOutOfBounds = errors.New("seek position is out of bounds")

	// ErrUnreadable is returned by FromFile when the file cannot be opened
	// or read.
	ErrUnreadable = errors.New("file is not readable")
)
