// Command tlc is the typed-Lua compiler: it validates and lowers tlc
// source files into plain Lua.
package main

import (
	"os"

	"github.com/cwbudde/go-tlc/cmd/tlc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
