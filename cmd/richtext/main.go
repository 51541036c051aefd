/*
Command richtext parses a piece of markup, positions it and writes the
positioned document to stdout.

	richtext [flags] [file]

If no file is given, markup is read from stdin. Default formats may be set in
a NestedText configuration file "richtext.nt" at the standard configuration
locations, using keys "richtext.color", "richtext.face", "richtext.size",
"richtext.letterspacing", "richtext.kerning" and "richtext.align".

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/richtext"
	"github.com/npillmayer/richtext/formatter"
	"github.com/npillmayer/richtext/html"
	"github.com/npillmayer/richtext/metrics"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

func main() {
	width := flag.Int("width", 0, "container width (default: terminal width, or 640 for -metrics faces)")
	metricsName := flag.String("metrics", metrics.CellsName, "metrics provider [identity|cells|faces]")
	output := flag.String("format", "console", "output format [console|html|dump]")
	plain := flag.Bool("plain", false, "suppress colors on console output")
	tracelevel := flag.String("trace", "Error", "trace level [Debug|Info|Error]")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: richtext [flags] [file]\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	conf := koanfadapter.New(nil, "richtext", []string{"nt"})
	conf.InitDefaults()
	conf.Set("tracelevel.root", *tracelevel)
	conf.Set("tracelevel.richtext", *tracelevel)
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring tracing: %v\n", err)
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	markup, err := readMarkup(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading markup: %v\n", err)
		os.Exit(1)
	}
	base := richtext.FormatFromConfig(conf, nil)
	doc, err := html.NewParser(html.WithBaseFormat(base)).Parse(markup)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing markup: %v\n", err)
		os.Exit(1)
	}

	provider, err := metrics.ByName(*metricsName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	termconf := formatter.ConfigFromTerminal()
	w, unit := float64(termconf.Width), "ch"
	if strings.EqualFold(*metricsName, metrics.FacesName) {
		w, unit = 640, "px"
	}
	if *width > 0 {
		w = float64(*width)
	}
	if err = doc.Position(provider, richtext.R(0, 0, w, 0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error positioning document: %v\n", err)
		os.Exit(1)
	}

	var f formatter.Format
	switch *output {
	case "console":
		f = formatter.NewConsole(*plain || termconf.Plain)
	case "html":
		f = formatter.NewHTML(unit)
	case "dump":
		f = &formatter.Dump{}
	default:
		fmt.Fprintf(os.Stderr, "Unknown output format %q\n", *output)
		flag.Usage()
		os.Exit(1)
	}
	if err = formatter.Output(doc, os.Stdout, f); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing document: %v\n", err)
		os.Exit(1)
	}
}

func readMarkup(path string) (string, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(r)
	return string(b), err
}
