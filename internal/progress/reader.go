package progress

import (
	"io"

	"github.com/ytgrab/ytgrab/internal/control"
)

// Reader counts bytes flowing through it, forwards the resulting percent to a
// Sink, and runs a control checkpoint before every read so cancellation and
// pause take effect between chunk writes.
type Reader struct {
	src   io.Reader
	total int64
	read  int64
	sink  Sink
	ctl   *control.Control
}

// NewReader wraps src. total is the expected byte count; when it is unknown
// (0) no percent events are emitted. sink and ctl may be nil.
func NewReader(src io.Reader, total int64, sink Sink, ctl *control.Control) *Reader {
	if sink == nil {
		sink = Discard
	}
	return &Reader{src: src, total: total, sink: sink, ctl: ctl}
}

func (r *Reader) Read(p []byte) (int, error) {
	if r.ctl != nil {
		if err := r.ctl.Checkpoint(); err != nil {
			return 0, err
		}
	}

	n, err := r.src.Read(p)
	if n > 0 {
		r.read += int64(n)
		if r.total > 0 {
			pct := float64(r.read) / float64(r.total) * 100
			if pct > 100 {
				pct = 100
			}
			r.sink(&pct, "")
		}
	}
	return n, err
}

// BytesRead returns the number of bytes consumed so far.
func (r *Reader) BytesRead() int64 {
	return r.read
}
