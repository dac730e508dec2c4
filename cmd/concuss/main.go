// Command concuss counts copies of a pattern graph inside a host graph.
// See internal/cli for the flag surface.
package main

import (
	"fmt"
	"os"

	"github.com/concussgo/concuss/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
