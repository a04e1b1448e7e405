/*
Command hershey converts a text string into DXF vector line-art, using a
Hershey stroke-font.

	hershey -d data/hershey.dat -f mappings/romans.hmp -o sign.dxf "HELLO"

Malformed font records and mapping tokens are reported as warnings and do
not abort the run; whatever decodes successfully is written to the output
file.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/hershey/backend/gfx/dxfadapter"
	"github.com/npillmayer/hershey/core"
	"github.com/npillmayer/hershey/core/hfont"
	"github.com/npillmayer/hershey/engine/lineart"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'hershey.cli'
func tracer() tracing.Trace {
	return tracing.Select("hershey.cli")
}

// trace keys of all packages of this module
var traceKeys = []string{"hershey.cli", "hershey.font", "hershey.lineart", "hershey.gfx"}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":       "go",
		"trace.hershey.cli":     "Info",
		"trace.hershey.font":    "Info",
		"trace.hershey.lineart": "Info",
		"trace.hershey.gfx":     "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	datafile := flag.String("d", "data/hershey.dat", "Hershey font data file")
	mapfile := flag.String("f", "mappings/romans.hmp", "ASCII to glyph-ID mapping file")
	output := flag.String("o", "sign.dxf", "Output DXF file")
	verbose := flag.Bool("v", false, "Verbose output (implies -trace Debug)")
	info := flag.Bool("info", false, "Print a report about the character mapping")
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	setTraceLevels(*tlevel, *verbose)

	text := flag.Arg(0)
	if text == "" && !*info {
		pterm.Error.Println("no input text given")
		fmt.Fprintf(os.Stderr, "usage: hershey [options] \"text\"\n")
		flag.PrintDefaults()
		os.Exit(2)
	}

	font, diags, err := hfont.LoadFont(*datafile)
	if err != nil {
		core.UserError(err)
		os.Exit(1)
	}
	warn(diags)
	tracer().Infof("loaded %d glyphs from %s", font.GlyphCount(), *datafile)

	cmap, diags, err := hfont.LoadCharMap(*mapfile)
	if err != nil {
		core.UserError(err)
		os.Exit(1)
	}
	warn(diags)
	tracer().Infof("loaded %d character mappings from %s", cmap.Len(), *mapfile)

	if *info {
		printMappingInfo(cmap)
		if text == "" {
			return
		}
	}

	dwg := dxfadapter.New()
	width := lineart.New(font, cmap).Compose(text, dwg)
	if err := dwg.SaveAs(*output); err != nil {
		core.UserError(core.WrapError(err, core.EINTERNAL, "cannot write %s", *output))
		os.Exit(1)
	}
	pterm.Info.Printfln("wrote %s, %d design units wide", *output, width)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevels(tlevel string, verbose bool) {
	level := tracing.LevelInfo
	switch tlevel {
	case "Debug":
		level = tracing.LevelDebug
	case "Info":
		level = tracing.LevelInfo
	case "Error":
		level = tracing.LevelError
	default:
		pterm.Error.Printfln("unknown trace level %q, using Info", tlevel)
	}
	if verbose {
		level = tracing.LevelDebug
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

// warn surfaces loader diagnostics to the user. Diagnostics are non-fatal;
// the run continues with whatever decoded successfully.
func warn(diags []hfont.Diagnostic) {
	for _, d := range diags {
		pterm.Warning.Printfln("%v", d)
	}
}

// printMappingInfo prints a report about a character mapping, in ascending
// order of character codes.
func printMappingInfo(cmap *hfont.CharMap) {
	pterm.Info.Printfln("mapping contains %d characters", cmap.Len())
	m := treemap.NewWithIntComparator()
	for _, ch := range cmap.Codes() {
		id, _ := cmap.GlyphID(ch)
		m.Put(int(ch), id)
	}
	if m.Empty() {
		return
	}
	min, _ := m.Min()
	max, _ := m.Max()
	pterm.Printfln("ASCII range: %d to %d", min, max)
	pterm.Printfln("first mappings:")
	count := 0
	it := m.Iterator()
	for it.Next() && count < 10 {
		pterm.Printfln("  %q -> glyph %v", rune(it.Key().(int)), it.Value())
		count++
	}
	pterm.Printfln("sample letter mappings:")
	for _, ch := range []rune{'A', 'B', 'C', 'a', 'b', 'c', '0', '1', '2'} {
		if id, ok := cmap.GlyphID(ch); ok {
			pterm.Printfln("  %q -> glyph %d", ch, id)
		}
	}
}
