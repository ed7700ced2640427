package main

import (
	"fmt"
	"io"
	"os"
)

// maxInputBytes bounds how much a single format/get invocation will read
// from a file or stdin, mirroring the teacher CLI's bounded-read guard
// against unbounded pipes.
const maxInputBytes = 64 * 1024 * 1024

// exitInternalIO is returned for process-level failures (can't open a
// file, can't write output) as opposed to jsonerr.Kind.ExitCode's 2 for
// malformed JSON input.
const exitInternalIO = 10

// readInput reads from path, or from stdin if path is "" or "-", capped
// at maxInputBytes.
func readInput(path string, stdin io.Reader) ([]byte, error) {
	var r io.Reader
	if path == "" || path == "-" {
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	limited := io.LimitReader(r, maxInputBytes+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if len(data) > maxInputBytes {
		return nil, fmt.Errorf("input exceeds %d bytes", maxInputBytes)
	}
	return data, nil
}
