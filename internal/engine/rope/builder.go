package rope

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Builder provides efficient incremental construction of a rope.
// It buffers writes and builds the rope structure when Build() is called.
type Builder struct {
	chunks []Chunk
	buffer strings.Builder
	// pending holds a trailing partial UTF-8 sequence from Write.
	pending  []byte
	totalLen int
}

// NewBuilder creates a new rope builder.
func NewBuilder() *Builder {
	return &Builder{chunks: make([]Chunk, 0, 64)}
}

// WriteString appends a string to the builder.
func (b *Builder) WriteString(s string) {
	if len(s) == 0 {
		return
	}
	b.totalLen += len(s)
	b.buffer.WriteString(s)
	if b.buffer.Len() >= MaxChunkSize*2 {
		b.flushBuffer(true)
	}
}

// Write implements io.Writer. A multi-byte sequence split across calls is
// held back until it is complete so chunks never cut a character in two.
func (b *Builder) Write(p []byte) (int, error) {
	data := append(b.pending, p...)
	cut := len(data)
	for i := len(data) - 1; i >= 0 && i >= len(data)-utf8.UTFMax; i-- {
		if isUTF8Start(data[i]) {
			if !utf8.FullRune(data[i:]) {
				cut = i
			}
			break
		}
	}
	b.WriteString(string(data[:cut]))
	b.pending = append([]byte(nil), data[cut:]...)
	return len(p), nil
}

// WriteRune appends a single rune.
func (b *Builder) WriteRune(r rune) (int, error) {
	n, err := b.buffer.WriteRune(r)
	b.totalLen += n
	return n, err
}

// flushBuffer turns the buffered text into chunks. With holdCR a trailing
// CR stays buffered, since the next write may start with its LF.
func (b *Builder) flushBuffer(holdCR bool) {
	s := b.buffer.String()
	b.buffer.Reset()
	if holdCR && strings.HasSuffix(s, "\r") {
		s = s[:len(s)-1]
		b.buffer.WriteByte('\r')
	}
	if len(s) == 0 {
		return
	}
	b.chunks = append(b.chunks, splitIntoChunks(s)...)
}

// Len returns the total number of bytes written.
func (b *Builder) Len() int {
	return b.totalLen
}

// Reset clears the builder for reuse.
func (b *Builder) Reset() {
	b.chunks = b.chunks[:0]
	b.buffer.Reset()
	b.pending = nil
	b.totalLen = 0
}

// Build creates the rope from accumulated data.
// After calling Build, the builder is reset.
func (b *Builder) Build() Rope {
	if len(b.pending) > 0 {
		b.WriteString(string(b.pending))
		b.pending = nil
	}
	b.flushBuffer(false)

	chunks := b.chunks
	b.chunks = nil
	b.Reset()
	return buildFromChunks(chunks)
}

// ReadFrom implements io.ReaderFrom for efficient reading.
func (b *Builder) ReadFrom(r io.Reader) (int64, error) {
	buf := make([]byte, 64*1024)
	var total int64
	for {
		n, err := r.Read(buf)
		if n > 0 {
			_, _ = b.Write(buf[:n])
			total += int64(n)
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// FromLines creates a rope from a slice of lines.
// Each line will have a newline appended except the last.
func FromLines(lines []string) Rope {
	var builder Builder
	for i, line := range lines {
		builder.WriteString(line)
		if i < len(lines)-1 {
			builder.WriteString("\n")
		}
	}
	return builder.Build()
}
