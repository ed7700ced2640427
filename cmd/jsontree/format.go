package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lattice-substrate/jsontree/jsonerr"
	"github.com/lattice-substrate/jsontree/jsonparse"
	"github.com/lattice-substrate/jsontree/jsonser"
	"github.com/lattice-substrate/jsontree/value"
)

type formatFlags struct {
	indent     int
	configPath string
	quiet      bool
}

func newFormatCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var fl formatFlags

	cmd := &cobra.Command{
		Use:   "format [file|-]",
		Short: "Parse a JSON document and re-serialize it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runFormat(fl, path, stdin, stdout, stderr)
		},
	}

	cmd.Flags().IntVar(&fl.indent, "indent", 0, "pretty-print with N spaces of indent per level (0 = compact)")
	cmd.Flags().StringVar(&fl.configPath, "config", "", "YAML config file overriding scratch-buffer size hints")
	cmd.Flags().BoolVarP(&fl.quiet, "quiet", "q", false, "suppress the trailing newline after output")

	return cmd
}

func runFormat(fl formatFlags, path string, stdin io.Reader, stdout, stderr io.Writer) error {
	fcfg, err := loadFileConfig(fl.configPath)
	if err != nil {
		return exitErr(exitInternalIO, err)
	}
	if fl.indent > 0 {
		fcfg.Indent = fl.indent
	}

	input, err := readInput(path, stdin)
	if err != nil {
		return exitErr(exitInternalIO, err)
	}

	v, err := jsonparse.Parse(input, fcfg.parseOptions())
	if err != nil {
		var pe *jsonerr.Error
		if errors.As(err, &pe) {
			return exitErr(pe.Kind.ExitCode(), err)
		}
		return exitErr(exitInternalIO, err)
	}

	var out []byte
	if fcfg.Indent > 0 {
		out = renderIndented(v, fcfg.Indent)
	} else {
		out = jsonser.Serialize(v, fcfg.serializeOptions())
	}

	if _, err := stdout.Write(out); err != nil {
		return exitErr(exitInternalIO, err)
	}
	if !fl.quiet {
		fmt.Fprintln(stdout)
	}
	return nil
}

// renderIndented walks v purely through the Accessor API and produces a
// pretty-printed rendering at the given indent width. This is a CLI-only
// convenience: the library serializer always emits the compact form
// spec.md §4.3 defines.
func renderIndented(v *value.Value, indentWidth int) []byte {
	var buf []byte
	buf = appendIndented(buf, v, indentWidth, 0)
	return buf
}

func appendIndented(buf []byte, v *value.Value, indentWidth, depth int) []byte {
	pad := func(b []byte, d int) []byte {
		for i := 0; i < d*indentWidth; i++ {
			b = append(b, ' ')
		}
		return b
	}

	switch v.GetType() {
	case value.Array:
		n := v.GetArraySize()
		if n == 0 {
			return append(buf, '[', ']')
		}
		buf = append(buf, '[', '\n')
		for i := 0; i < n; i++ {
			buf = pad(buf, depth+1)
			buf = appendIndented(buf, v.GetArrayElement(i), indentWidth, depth+1)
			if i < n-1 {
				buf = append(buf, ',')
			}
			buf = append(buf, '\n')
		}
		buf = pad(buf, depth)
		return append(buf, ']')

	case value.Object:
		n := v.GetObjectSize()
		if n == 0 {
			return append(buf, '{', '}')
		}
		buf = append(buf, '{', '\n')
		for i := 0; i < n; i++ {
			buf = pad(buf, depth+1)
			buf = append(buf, jsonser.Serialize(leafString(v.GetObjectKey(i)), nil)...)
			buf = append(buf, ':', ' ')
			buf = appendIndented(buf, v.GetObjectValue(i), indentWidth, depth+1)
			if i < n-1 {
				buf = append(buf, ',')
			}
			buf = append(buf, '\n')
		}
		buf = pad(buf, depth)
		return append(buf, '}')

	default:
		return append(buf, jsonser.Serialize(v, nil)...)
	}
}

func leafString(key []byte) *value.Value {
	v := value.New()
	v.SetString(key)
	return v
}

type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) Unwrap() error { return e.err }

func exitErr(code int, err error) error {
	return &cliError{code: code, err: err}
}
