package sink

import (
	"os"
	"path/filepath"

	"github.com/npillmayer/schuko/tracing"
	"github.com/versatiles-org/versatiles-glyphs-go/core"
)

func tracer() tracing.Trace {
	return tracing.Select("glyphgen.sink")
}

// FSSink writes each payload to its own file under a root directory,
// creating parent directories as needed. Paths are unique per task, so
// no locking is required beyond what the filesystem itself provides.
type FSSink struct {
	Root string
}

// NewFSSink returns a sink rooted at dir; dir is created if it does not
// already exist.
func NewFSSink(dir string) (*FSSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, core.WrapError(core.ErrIO, core.EINTERNAL, "creating output directory %s: %v", dir, err)
	}
	return &FSSink{Root: dir}, nil
}

// Write creates any missing parent directories and writes data to
// Root/path, overwriting any existing file at that path.
func (s *FSSink) Write(path string, data []byte) error {
	full := filepath.Join(s.Root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return core.WrapError(core.ErrIO, core.EINTERNAL, "creating directory for %s: %v", path, err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return core.WrapError(core.ErrIO, core.EINTERNAL, "writing %s: %v", path, err)
	}
	tracer().Debugf("wrote %s (%d bytes)", full, len(data))
	return nil
}

// Finish is a no-op for the filesystem sink: every file is already
// durable once Write returns.
func (s *FSSink) Finish() error {
	return nil
}
