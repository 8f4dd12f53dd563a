// Package progress tracks how much of an upload body has been streamed.
package progress

import (
	"io"

	"github.com/meigma/ipfsdeploy/core"
)

// Reader wraps an upload body and reports the bytes handed to the transport.
type Reader struct {
	src      io.Reader
	onRead   core.ProgressFunc
	total    int64
	sent     int64
	finished bool
}

// NewReader creates a progress-tracking reader.
// The total parameter should be the expected size (-1 if unknown).
// A nil callback makes the reader a plain pass-through.
func NewReader(r io.Reader, total int64, onRead core.ProgressFunc) *Reader {
	return &Reader{
		src:    r,
		onRead: onRead,
		total:  total,
	}
}

// Read implements io.Reader and reports cumulative progress after each read.
// Once the source is drained a final event with sent == total is emitted so
// bars built on an estimated total still complete.
func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.src.Read(p)
	if n > 0 {
		r.sent += int64(n)
		r.report(r.sent)
	}
	if err == io.EOF && !r.finished {
		r.finished = true
		if r.total >= 0 && r.sent != r.total {
			r.total = r.sent
			r.report(r.sent)
		}
	}
	return n, err
}

// Sent returns the number of bytes read so far.
func (r *Reader) Sent() int64 {
	return r.sent
}

// Close closes the underlying reader if it implements io.Closer.
// HTTP clients close request bodies on failure, which unblocks a pipe writer
// feeding src.
func (r *Reader) Close() error {
	if closer, ok := r.src.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (r *Reader) report(sent int64) {
	if r.onRead != nil {
		r.onRead(sent, r.total)
	}
}
