// Package logfake provides a recording log sink for tests: a slog.Handler
// that stores every record in memory instead of writing it anywhere. Tests
// hand the Recorder (or its Logger) to the code under test and assert on
// the captured entries afterwards.
//
// Example usage:
//
//	rec := logfake.New()
//	svc := NewService(rec.Logger())
//	svc.Run()
//	entries := rec.Entries()
package logfake

import (
	"context"
	"log/slog"
	"time"
)

var _ slog.Handler = (*Recorder)(nil)

// Entry is one captured log record. Attrs holds every attribute, with group
// prefixes flattened into dotted keys ("request.id").
type Entry struct {
	Time    time.Time
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// Recorder is a passive slog.Handler that appends records to an in-memory
// list. Handlers derived with WithAttrs and WithGroup record into the same
// list, so one Recorder observes a whole logger tree. Not safe for
// concurrent use.
type Recorder struct {
	level   slog.Level
	entries *[]Entry
	fields  map[string]any
	prefix  string
}

// Option configures a Recorder at construction time.
type Option func(*Recorder)

// WithLevel sets the minimum level the Recorder captures. The default is
// slog.LevelDebug, capturing everything.
func WithLevel(level slog.Level) Option {
	return func(r *Recorder) { r.level = level }
}

// New creates an empty Recorder.
func New(opts ...Option) *Recorder {
	entries := make([]Entry, 0)
	r := &Recorder{
		level:   slog.LevelDebug,
		entries: &entries,
		fields:  make(map[string]any),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Logger returns a slog.Logger writing into the Recorder.
func (r *Recorder) Logger() *slog.Logger {
	return slog.New(r)
}

// Enabled reports whether records at level are captured.
func (r *Recorder) Enabled(_ context.Context, level slog.Level) bool {
	return level >= r.level
}

// Handle appends the record to the in-memory list. It never fails.
func (r *Recorder) Handle(_ context.Context, rec slog.Record) error {
	attrs := make(map[string]any, len(r.fields)+rec.NumAttrs())
	for k, v := range r.fields {
		attrs[k] = v
	}
	rec.Attrs(func(a slog.Attr) bool {
		flattenAttr(attrs, r.prefix, a)
		return true
	})

	*r.entries = append(*r.entries, Entry{
		Time:    rec.Time,
		Level:   rec.Level,
		Message: rec.Message,
		Attrs:   attrs,
	})
	return nil
}

// WithAttrs returns a handler that stamps attrs onto every record it
// captures, recording into the same list as the receiver.
func (r *Recorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *r
	clone.fields = make(map[string]any, len(r.fields)+len(attrs))
	for k, v := range r.fields {
		clone.fields[k] = v
	}
	for _, a := range attrs {
		flattenAttr(clone.fields, r.prefix, a)
	}
	return &clone
}

// WithGroup returns a handler that prefixes subsequent attribute keys with
// name, recording into the same list as the receiver.
func (r *Recorder) WithGroup(name string) slog.Handler {
	if name == "" {
		return r
	}
	clone := *r
	clone.prefix = r.prefix + name + "."
	return &clone
}

// Entries returns the captured records, oldest first.
func (r *Recorder) Entries() []Entry {
	out := make([]Entry, len(*r.entries))
	copy(out, *r.entries)
	return out
}

// Messages returns just the captured messages, oldest first.
func (r *Recorder) Messages() []string {
	msgs := make([]string, 0, len(*r.entries))
	for _, e := range *r.entries {
		msgs = append(msgs, e.Message)
	}
	return msgs
}

// Reset discards every captured record.
func (r *Recorder) Reset() {
	*r.entries = (*r.entries)[:0]
}

// flattenAttr resolves a and stores it in dst under its prefixed key,
// expanding group attributes recursively.
func flattenAttr(dst map[string]any, prefix string, a slog.Attr) {
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if a.Key != "" {
			groupPrefix = prefix + a.Key + "."
		}
		for _, ga := range v.Group() {
			flattenAttr(dst, groupPrefix, ga)
		}
		return
	}
	if a.Key == "" {
		return
	}
	dst[prefix+a.Key] = v.Any()
}
