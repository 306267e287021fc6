package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/aumai/datacommons/internal/cli"
	"github.com/aumai/datacommons/pkg/datacommons"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(datacommons.ExitPanic)
		}
	}()

	if os.Getenv("DATACOMMONS_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(datacommons.ExitCodeForError(err))
	}
}
