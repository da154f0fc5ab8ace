// Command tgengine is a small demo CLI that builds the type engine from a
// config and in-memory fixture data (hierarchy oracle, library-spec
// service), without a real AST front end, and prints interned descriptors.
package main

import (
	"os"

	"github.com/javacg/tgengine/cmd/tgengine/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
