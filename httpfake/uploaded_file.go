package httpfake

import (
	"errors"
	"fmt"

	"github.com/aatumaykin/fakekit/stream"
)

// ErrFileMoved is returned when an uploaded file is accessed or moved after
// it has already been moved away.
var ErrFileMoved = errors.New("uploaded file has already been moved")

// UploadedFile is a fake file upload. The content lives in an in-memory
// stream; MoveTo only records where the file would have gone, it never
// touches the filesystem.
type UploadedFile struct {
	Filename  string
	MediaType string
	MovedTo   string

	body  *stream.Stream
	moved bool
}

// NewUploadedFile creates an UploadedFile holding content.
func NewUploadedFile(content []byte, filename, mediaType string) *UploadedFile {
	return &UploadedFile{
		Filename:  filename,
		MediaType: mediaType,
		body:      stream.New(content),
	}
}

// Size returns the byte length of the uploaded content.
func (f *UploadedFile) Size() int64 {
	return f.body.Size()
}

// Stream returns the content stream. Fails with ErrFileMoved once the file
// has been moved.
func (f *UploadedFile) Stream() (*stream.Stream, error) {
	if f.moved {
		return nil, ErrFileMoved
	}
	return f.body, nil
}

// MoveTo records target as the file's destination and marks the file moved.
// A second move fails with ErrFileMoved.
func (f *UploadedFile) MoveTo(target string) error {
	if f.moved {
		return fmt.Errorf("move to %s: %w", target, ErrFileMoved)
	}
	f.moved = true
	f.MovedTo = target
	return nil
}

// Moved reports whether the file has been moved away.
func (f *UploadedFile) Moved() bool {
	return f.moved
}
