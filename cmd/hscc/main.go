// Command hscc is the standalone compiler front end for the hsc node-graph
// compiler.
package main

import (
	"os"

	"github.com/haloscript/hsc/pkg/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
