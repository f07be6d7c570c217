package main

import (
	"os"

	"github.com/versatiles-org/versatiles-glyphs-go/core"
	"github.com/versatiles-org/versatiles-glyphs-go/sink"
)

// resolveSink builds the requested output sink from the shared -o/-t
// flag pair: exactly one of outDir or toTar may be set.
func resolveSink(outDir string, toTar bool) (sink.Sink, error) {
	switch {
	case toTar && outDir != "":
		return nil, core.Error(core.EINVALID, "-o and -t are mutually exclusive")
	case toTar:
		return sink.NewTarSink(os.Stdout), nil
	case outDir != "":
		return sink.NewFSSink(outDir)
	default:
		return nil, core.Error(core.EINVALID, "one of -o DIR or -t is required")
	}
}
