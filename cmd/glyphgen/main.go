// Command glyphgen converts TrueType/OpenType font files into Signed
// Distance Field glyph bitmap archives for map renderers.
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"

	"github.com/versatiles-org/versatiles-glyphs-go/core"
)

func tracer() tracing.Trace {
	return tracing.Select("glyphgen.cli")
}

func main() {
	initDisplay()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	sub := os.Args[1]
	args := os.Args[2:]

	var err error
	switch sub {
	case "recurse":
		err = runRecurse(args)
	case "merge":
		err = runMerge(args)
	case "debug":
		err = runDebug(args)
	case "-h", "--help", "help":
		usage()
		return
	default:
		pterm.Error.Printfln("unknown subcommand %q", sub)
		usage()
		os.Exit(1)
	}
	if err != nil {
		core.UserError(err)
		os.Exit(core.Code(err))
	}
}

// bootstrapTracing wires up the schuko tracing infrastructure the way
// otcli/main.go does, driving verbosity for every glyphgen.* selector
// from one level string.
func bootstrapTracing(level string) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":        "go",
		"trace.glyphgen.outline": level,
		"trace.glyphgen.sdf":     level,
		"trace.glyphgen.pbf":     level,
		"trace.glyphgen.block":   level,
		"trace.glyphgen.font":    level,
		"trace.glyphgen.manager": level,
		"trace.glyphgen.sink":    level,
		"trace.glyphgen.cli":     level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Fprintln(os.Stderr, "error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

// initDisplay sets pterm's prefixes and, critically, redirects every
// printer to stderr: `-t` streams the tar archive itself to stdout, so
// human-facing output must never share that stream.
func initDisplay() {
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  " WARN ",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
	pterm.Warning.Writer = os.Stderr
	pterm.Error.Writer = os.Stderr
	pterm.Success.Writer = os.Stderr
	pterm.Info.Writer = os.Stderr
}

func usage() {
	fmt.Fprintln(os.Stderr, "glyphgen — render font glyphs into SDF bitmap archives")
	fmt.Fprintln(os.Stderr, "\nUsage:")
	fmt.Fprintln(os.Stderr, "  glyphgen recurse <paths...> [-o dir | -t] [--single-thread] [--verbose]")
	fmt.Fprintln(os.Stderr, "  glyphgen merge <paths...> [-o dir | -t] [--single-thread] [--verbose]")
	fmt.Fprintln(os.Stderr, "  glyphgen debug <dir> -f tsv")
}
