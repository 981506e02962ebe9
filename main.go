// file: main.go
// version: 2.0.0
// guid: eb33e309-d711-4c62-9388-1c057603159d

package main

import (
	"fmt"
	"os"

	"github.com/jdfalk/iptc-organizer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cmd.ExitCode(err))
	}
}
