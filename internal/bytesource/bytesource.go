// Package bytesource provides a seekable byte source over a PDF file,
// with random-access ranged reads and a backward line scanner used to
// locate the trailer without reading the whole file.
package bytesource

import (
	"bytes"
	"io"
)

// chunkSize is the size of the window the backward line scanner reads
// at a time.
const chunkSize = 512

// Source is a random-access byte source backed by an io.ReaderAt, as
// produced by os.Open or bytes.NewReader.
type Source struct {
	r    io.ReaderAt
	size int64
}

// New wraps r, whose total length is size.
func New(r io.ReaderAt, size int64) *Source {
	return &Source{r: r, size: size}
}

// Size returns the total length of the source in bytes.
func (s *Source) Size() int64 { return s.size }

// ReadAt implements io.ReaderAt.
func (s *Source) ReadAt(p []byte, off int64) (int, error) {
	return s.r.ReadAt(p, off)
}

// ReadRange returns the bytes in [start, end), clamped to the source
// bounds.
func (s *Source) ReadRange(start, end int64) ([]byte, error) {
	if start < 0 {
		start = 0
	}
	if end > s.size {
		end = s.size
	}
	if end <= start {
		return nil, nil
	}
	buf := make([]byte, end-start)
	n, err := s.r.ReadAt(buf, start)
	if err != nil && err != io.EOF {
		return nil, err
	}
	return buf[:n], nil
}

// Reader returns an io.Reader positioned at offset, reading through to
// the end of the source.
func (s *Source) Reader(offset int64) io.Reader {
	return io.NewSectionReader(s.r, offset, s.size-offset)
}

// LineScanner yields a Source's lines back to front, one at a time,
// without ever holding more than a few chunks in memory. Used by the
// trailer scan, which must walk startxref/%%EOF backward line by line
// rather than search for a raw needle.
type LineScanner struct {
	s   *Source
	pos int64 // exclusive end of the not-yet-returned region
}

// ReverseLines starts a line scan from the end of s, working toward
// the beginning.
func (s *Source) ReverseLines() *LineScanner {
	return &LineScanner{s: s, pos: s.size}
}

// Prev returns the next line working backward from the scanner's
// current position, with its trailing "\r\n" or "\n" stripped, or
// io.EOF once the start of the source has been returned. Reads
// backward in fixed chunkSize windows so a trailer scan never has to
// load the whole file.
func (ls *LineScanner) Prev() ([]byte, error) {
	end := ls.pos
	if end <= 0 {
		return nil, io.EOF
	}
	cur := end
	for cur > 0 {
		start := cur - chunkSize
		if start < 0 {
			start = 0
		}
		chunk, err := ls.s.ReadRange(start, cur)
		if err != nil {
			return nil, err
		}
		if idx := bytes.LastIndexByte(chunk, '\n'); idx >= 0 {
			lineStart := start + int64(idx) + 1
			line, err := ls.s.ReadRange(lineStart, end)
			if err != nil {
				return nil, err
			}
			ls.pos = lineStart - 1 // exclude the newline just found
			if ls.pos < 0 {
				ls.pos = 0
			}
			return bytes.TrimRight(line, "\r"), nil
		}
		if start == 0 {
			line, err := ls.s.ReadRange(0, end)
			if err != nil {
				return nil, err
			}
			ls.pos = 0
			return bytes.TrimRight(line, "\r"), nil
		}
		cur = start
	}
	return nil, io.EOF
}
