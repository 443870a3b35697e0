// Command dashboard runs the Unweave dashboard server.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, boldRed("error:"), err)
		os.Exit(1)
	}
}
