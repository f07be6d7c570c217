package sink

import (
	"archive/tar"
	"io"
	"sync"
	"time"

	"github.com/versatiles-org/versatiles-glyphs-go/core"
)

// TarSink streams a ustar archive to a single underlying writer
// (typically stdout). Writes are serialized behind a mutex since
// multiple render tasks call Write concurrently but a tar stream is
// strictly sequential.
type TarSink struct {
	mu sync.Mutex
	tw *tar.Writer
}

// NewTarSink wraps w in a tar writer. The caller retains ownership of w
// and is responsible for closing it after Finish returns.
func NewTarSink(w io.Writer) *TarSink {
	return &TarSink{tw: tar.NewWriter(w)}
}

// epoch is the fixed mtime (0, i.e. the Unix epoch) every entry is
// stamped with, so archives built from identical input are byte-for-byte
// reproducible regardless of when they were built.
var epoch = time.Unix(0, 0).UTC()

// Write appends one ustar entry: file mode 0644, mtime 0, uid/gid 0.
func (s *TarSink) Write(path string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	hdr := &tar.Header{
		Name:     path,
		Mode:     0o644,
		Size:     int64(len(data)),
		ModTime:  epoch,
		Typeflag: tar.TypeReg,
		Uid:      0,
		Gid:      0,
	}
	if err := s.tw.WriteHeader(hdr); err != nil {
		return core.WrapError(core.ErrIO, core.EINTERNAL, "tar header for %s: %v", path, err)
	}
	if _, err := s.tw.Write(data); err != nil {
		return core.WrapError(core.ErrIO, core.EINTERNAL, "tar body for %s: %v", path, err)
	}
	tracer().Debugf("tar wrote %s (%d bytes)", path, len(data))
	return nil
}

// Finish writes the two trailing zero blocks that terminate a tar
// archive and flushes the underlying writer.
func (s *TarSink) Finish() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.tw.Close(); err != nil {
		return core.WrapError(core.ErrIO, core.EINTERNAL, "closing tar stream: %v", err)
	}
	return nil
}
