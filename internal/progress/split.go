// Package progress implements incremental reading of a training progress log
// that another process is still appending to.
package progress

import "bytes"

// Line is a complete line found in a chunk of bytes.
type Line struct {
	// Bytes is the line content without its terminating "\n" or "\r\n".
	Bytes []byte

	// Start is the offset of the first byte of the line within the chunk.
	Start int
}

// SplitComplete returns the newline-terminated lines of chunk and the number
// of bytes they occupy. A trailing fragment without a newline is not part of
// the result and is not counted in consumed, so the caller can re-read it once
// the writer finishes it.
func SplitComplete(chunk []byte) (lines []Line, consumed int) {
	for {
		i := bytes.IndexByte(chunk[consumed:], '\n')
		if i < 0 {
			return lines, consumed
		}
		end := consumed + i
		lines = append(lines, Line{Bytes: trimEOL(chunk[consumed:end]), Start: consumed})
		consumed = end + 1
	}
}

// trimEOL removes a trailing "\n", "\r\n" or "\r".
func trimEOL(line []byte) []byte {
	line = bytes.TrimSuffix(line, []byte{'\n'})
	return bytes.TrimSuffix(line, []byte{'\r'})
}
