// Command severance calculates severance damages for partial takings from
// structured JSON filings.
package main

import (
	"fmt"
	"os"

	"github.com/landquant/severance/internal/cli"
	"github.com/landquant/severance/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps the result to an exit code:
// 0 success, 2 validation failure, 1 anything else.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return cli.ExitCode(err)
	}
	return cli.ExitOK
}
