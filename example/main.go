package main

import (
	"os"

	inlinetest "github.com/piotrostr/inline-test"

	// Import all the test files
	_ "github.com/piotrostr/inline-test/example/arith"
	_ "github.com/piotrostr/inline-test/example/text"
)

func main() {

	// Run the command.
	os.Exit(inlinetest.Execute(inlinetest.NewCommand("inlinetest", "Runs inline tests of Go source files", "1.0")))
}
