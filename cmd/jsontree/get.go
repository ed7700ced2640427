package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lattice-substrate/jsontree/jsonerr"
	"github.com/lattice-substrate/jsontree/jsonparse"
	"github.com/lattice-substrate/jsontree/jsonser"
	"github.com/lattice-substrate/jsontree/value"
)

func newGetCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "get <dotted.path[index]> [file|-]",
		Short: "Print the subtree at a dotted path, demonstrating the Accessor API",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			file := ""
			if len(args) == 2 {
				file = args[1]
			}
			return runGet(args[0], file, stdin, stdout, stderr)
		},
	}
}

func runGet(path, file string, stdin io.Reader, stdout, stderr io.Writer) error {
	input, err := readInput(file, stdin)
	if err != nil {
		return exitErr(exitInternalIO, err)
	}

	root, err := jsonparse.Parse(input, nil)
	if err != nil {
		var pe *jsonerr.Error
		if errors.As(err, &pe) {
			return exitErr(pe.Kind.ExitCode(), err)
		}
		return exitErr(exitInternalIO, err)
	}

	steps, err := parsePathSteps(path)
	if err != nil {
		return exitErr(2, err)
	}

	cur := root
	for _, step := range steps {
		cur, err = step.apply(cur)
		if err != nil {
			return exitErr(2, err)
		}
	}

	out := jsonser.Serialize(cur, nil)
	if _, err := stdout.Write(out); err != nil {
		return exitErr(exitInternalIO, err)
	}
	fmt.Fprintln(stdout)
	return nil
}

// pathStep is either an object-key lookup or an array index.
type pathStep struct {
	key      string
	index    int
	isIndex  bool
	original string
}

func (s pathStep) apply(v *value.Value) (*value.Value, error) {
	if s.isIndex {
		if v.GetType() != value.Array {
			return nil, fmt.Errorf("path step %q: not an array", s.original)
		}
		if s.index < 0 || s.index >= v.GetArraySize() {
			return nil, fmt.Errorf("path step %q: index out of range", s.original)
		}
		return v.GetArrayElement(s.index), nil
	}

	if v.GetType() != value.Object {
		return nil, fmt.Errorf("path step %q: not an object", s.original)
	}
	fv := v.FindObjectValue([]byte(s.key))
	if fv == nil {
		return nil, fmt.Errorf("path step %q: key not found", s.original)
	}
	return fv, nil
}

// parsePathSteps splits a path like "a.b[2].c[0]" into key and index
// steps. A leading "[N]" with no preceding key is permitted (root array
// indexing).
func parsePathSteps(path string) ([]pathStep, error) {
	var steps []pathStep
	for _, segment := range strings.Split(path, ".") {
		if segment == "" {
			continue
		}
		key, indices, err := splitKeyAndIndices(segment)
		if err != nil {
			return nil, err
		}
		if key != "" {
			steps = append(steps, pathStep{key: key, original: key})
		}
		for _, idx := range indices {
			steps = append(steps, pathStep{index: idx, isIndex: true, original: fmt.Sprintf("[%d]", idx)})
		}
	}
	return steps, nil
}

func splitKeyAndIndices(segment string) (string, []int, error) {
	bracket := strings.IndexByte(segment, '[')
	key := segment
	rest := ""
	if bracket >= 0 {
		key = segment[:bracket]
		rest = segment[bracket:]
	}

	var indices []int
	for len(rest) > 0 {
		if rest[0] != '[' {
			return "", nil, fmt.Errorf("malformed path segment %q", segment)
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return "", nil, fmt.Errorf("unterminated index in %q", segment)
		}
		n, err := strconv.Atoi(rest[1:end])
		if err != nil {
			return "", nil, fmt.Errorf("bad index in %q: %w", segment, err)
		}
		indices = append(indices, n)
		rest = rest[end+1:]
	}
	return key, indices, nil
}
