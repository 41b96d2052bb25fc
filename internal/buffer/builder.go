package buffer

import "strings"

// Builder assembles text incrementally on top of a byte Buffer.
//
// A NUL terminator is never added implicitly. AppendNull adds one as a
// regular byte, counted by Len, for callers that need a C-style string.
type Builder struct {
	buf Buffer[byte]
}

// AppendByte appends a single byte.
func (b *Builder) AppendByte(c byte) *Builder {
	b.buf.Append(c)
	return b
}

// AppendString appends each string in order.
func (b *Builder) AppendString(strs ...string) *Builder {
	for _, s := range strs {
		b.buf.Append([]byte(s)...)
	}
	return b
}

// AppendNull appends a NUL terminator.
func (b *Builder) AppendNull() *Builder {
	return b.AppendByte(0)
}

// Write implements io.Writer so a Builder can be used with fmt.Fprintf.
func (b *Builder) Write(p []byte) (int, error) {
	b.buf.Append(p...)
	return len(p), nil
}

// WriteString implements io.StringWriter.
func (b *Builder) WriteString(s string) (int, error) {
	b.AppendString(s)
	return len(s), nil
}

// Len returns the number of bytes appended, including any NUL.
func (b *Builder) Len() int { return b.buf.Len() }

// Cap returns the storage capacity.
func (b *Builder) Cap() int { return b.buf.Cap() }

// String returns the full logical content, including any appended NUL.
func (b *Builder) String() string {
	return string(b.buf.items)
}

// CString returns the content up to the first NUL, the way a C caller
// would read it.
func (b *Builder) CString() string {
	s := string(b.buf.items)
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}

// Clear empties the builder and keeps its storage.
func (b *Builder) Clear() { b.buf.Clear() }

// Release frees the storage. It must be called exactly once.
func (b *Builder) Release() { b.buf.Release() }

// Concat joins strs with no separator.
func Concat(strs ...string) string {
	var b Builder
	defer b.Release()
	b.AppendString(strs...)
	return b.String()
}

// ConcatSep joins strs with sep between consecutive elements.
func ConcatSep(sep byte, strs ...string) string {
	var b Builder
	defer b.Release()
	for i, s := range strs {
		if i != 0 {
			b.AppendByte(sep)
		}
		b.AppendString(s)
	}
	return b.String()
}
