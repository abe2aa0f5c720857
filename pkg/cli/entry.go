// Package cli implements the hscc command line: argument parsing by hand
// (no flag-parsing library, matching the convention of every CLI entry
// point in this corpus), ANSI-colored diagnostic rendering gated on an
// attached terminal, and a human-readable size summary on success.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/haloscript/hsc/pkg/hsc"
)

const usage = `usage: hscc compile <target> <encoding> <file>...

targets:   mcc-cea, xbox-ntsc, gbx-retail, gbx-custom, gbx-demo
encodings: utf8, windows-1252
`

// Run is the entry point invoked by cmd/hscc's main. It reads os.Args
// directly rather than through a flag package, since that is the
// convention this command line follows for every subcommand it has.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	switch args[0] {
	case "compile":
		return runCompile(args[1:], stdout, stderr)
	case "-h", "--help", "help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "hscc: unknown command %q\n\n%s", args[0], usage)
		return 2
	}
}

func runCompile(args []string, stdout, stderr io.Writer) int {
	if len(args) < 3 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	t, ok := hsc.ParseTarget(args[0])
	if !ok {
		fmt.Fprintf(stderr, "hscc: unknown target %q\n", args[0])
		return 2
	}

	var enc hsc.Encoding
	switch strings.ToLower(args[1]) {
	case "utf8", "utf-8":
		enc = hsc.UTF8
	case "windows-1252", "cp1252":
		enc = hsc.Windows1252
	default:
		fmt.Fprintf(stderr, "hscc: unknown encoding %q\n", args[1])
		return 2
	}

	files := args[2:]
	cat, err := hsc.DefaultCatalog()
	if err != nil {
		fmt.Fprintf(stderr, "hscc: loading catalog: %v\n", err)
		return 1
	}

	sess := hsc.NewSession(cat, t, enc)
	for _, path := range files {
		raw, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "hscc: %v\n", err)
			return 1
		}
		if err := sess.ReadFile(path, raw); err != nil {
			fmt.Fprintln(stderr, colorize(stderr, err.Error(), true))
			return 1
		}
	}

	out, err := sess.Compile()
	if err != nil {
		fmt.Fprintln(stderr, colorize(stderr, err.Error(), true))
		return 1
	}

	for _, w := range out.Warnings {
		line := fmt.Sprintf("%s:%d:%d: %s: %s", w.File, w.Line, w.Column, w.Severity, w.Message)
		fmt.Fprintln(stderr, colorize(stderr, line, false))
	}

	size := len(out.Nodes) * nodeSizeEstimate
	fmt.Fprintf(stdout, "compiled %s script(s), %s global(s), %s node(s) (%s)\n",
		humanize.Comma(int64(len(out.Scripts))),
		humanize.Comma(int64(len(out.Globals))),
		humanize.Comma(int64(len(out.Nodes))),
		humanize.Bytes(uint64(size)))
	return 0
}

// nodeSizeEstimate approximates one emitted node's on-wire size for the
// CLI's summary line; the in-memory hsc.Node shape carries far more than
// this, so it is not a serialization guarantee.
const nodeSizeEstimate = 16

// colorize prefixes "error: "/warning text with ANSI red or yellow when w
// is an attached terminal; otherwise it returns msg unchanged.
func colorize(w io.Writer, msg string, isError bool) string {
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return msg
	}
	code := "33" // yellow for warnings
	if isError {
		code = "31" // red for errors
	}
	return fmt.Sprintf("\x1b[%sm%s\x1b[0m", code, msg)
}
