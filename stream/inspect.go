package stream

import "io"

// Tell returns the current cursor position. In handle mode the position is
// queried from the handle; handles that cannot report a position yield 0.
func (s *Stream) Tell() int64 {
	if s.mode == backingHandle {
		if seeker, ok := s.handle.(io.Seeker); ok {
			pos, err := seeker.Seek(0, io.SeekCurrent)
			if err == nil {
				return pos
			}
		}
		return 0
	}
	return s.pos
}

// EOF reports whether the cursor is at or beyond the end of the content.
// In handle mode this is true once a delegated read has returned io.EOF or,
// for seekable handles, once the reported position reaches the known size.
func (s *Stream) EOF() bool {
	if s.mode == backingHandle {
		if s.sawEOF {
			return true
		}
		if size := s.Size(); size != SizeUnknown {
			return s.Tell() >= size
		}
		return false
	}
	return s.pos >= int64(len(s.buf))
}

// Size returns the total byte length of the content, or SizeUnknown when a
// wrapped handle neither reports its size nor supports seeking to the end.
func (s *Stream) Size() int64 {
	if s.mode != backingHandle {
		return int64(len(s.buf))
	}

	if st, ok := s.handle.(stat); ok {
		if info, err := st.Stat(); err == nil {
			return info.Size()
		}
	}

	seeker, ok := s.handle.(io.Seeker)
	if !ok {
		return SizeUnknown
	}
	cur, err := seeker.Seek(0, io.SeekCurrent)
	if err != nil {
		return SizeUnknown
	}
	end, err := seeker.Seek(0, io.SeekEnd)
	if err != nil {
		return SizeUnknown
	}
	if _, err := seeker.Seek(cur, io.SeekStart); err != nil {
		return SizeUnknown
	}
	return end
}

// Contents returns everything from the current position to the end of the
// content. In owned-buffer mode the cursor does not move; in handle mode the
// handle is read to exhaustion. Fails with ErrNotReadable when the readable
// flag is off.
func (s *Stream) Contents() ([]byte, error) {
	if !s.readable {
		return nil, ErrNotReadable
	}
	if s.mode == backingHandle {
		data, err := io.ReadAll(s.handle)
		if err != nil {
			return nil, err
		}
		s.sawEOF = true
		return data, nil
	}
	if s.pos >= int64(len(s.buf)) {
		return []byte{}, nil
	}
	return append([]byte(nil), s.buf[s.pos:]...), nil
}

// String returns the entire content regardless of cursor position. In handle
// mode the handle position is saved, the handle is read from the start and
// the position restored afterwards; handles that cannot do this yield "".
func (s *Stream) String() string {
	if s.mode != backingHandle {
		return string(s.buf)
	}

	seeker, ok := s.handle.(io.Seeker)
	if !ok {
		return ""
	}
	cur, err := seeker.Seek(0, io.SeekCurrent)
	if err != nil {
		return ""
	}
	if _, err := seeker.Seek(0, io.SeekStart); err != nil {
		return ""
	}
	data, err := io.ReadAll(s.handle)
	if _, seekErr := seeker.Seek(cur, io.SeekStart); seekErr != nil {
		return ""
	}
	if err != nil {
		return ""
	}
	return string(data)
}

// Metadata returns the stream metadata mapping. It always carries the three
// capability flags under the keys "readable", "writable" and "seekable".
func (s *Stream) Metadata() map[string]any {
	return map[string]any{
		"readable": s.readable,
		"writable": s.writable,
		"seekable": s.seekable,
	}
}

// MetadataValue returns the metadata value stored under key, or nil when the
// key is unknown.
func (s *Stream) MetadataValue(key string) any {
	switch key {
	case "readable":
		return s.readable
	case "writable":
		return s.writable
	case "seekable":
		return s.seekable
	default:
		return nil
	}
}

// Reads returns the chunks returned by previous Read calls, oldest first.
// The log only ever grows; Close does not clear it, so a test can still
// inspect the traffic after the stream has been shut down.
func (s *Stream) Reads() [][]byte {
	out := make([][]byte, len(s.reads))
	copy(out, s.reads)
	return out
}
