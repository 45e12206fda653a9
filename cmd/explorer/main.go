// Command explorer serves the block explorer page.
package main

import (
	"fmt"
	"os"
)

// main is entry point of application.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
