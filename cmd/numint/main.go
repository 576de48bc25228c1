// Command numint computes definite integrals from sampled data or from
// functions.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/numint/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
