package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/wppkg/internal/cli"
	"github.com/vvka-141/wppkg/pkg/wppkg"
)

func main() {
	// Panics exit with ExitPanic after printing the stack.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(wppkg.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(wppkg.ExitCodeForError(err))
	}
}
