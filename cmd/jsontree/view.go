package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lattice-substrate/jsontree/jsonerr"
	"github.com/lattice-substrate/jsontree/jsonparse"
	"github.com/lattice-substrate/jsontree/value"
)

func newViewCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [file|-]",
		Short: "Browse a JSON document as an interactive tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runView(path, stdin, stdout, stderr)
		},
	}
	return cmd
}

func runView(path string, stdin io.Reader, stdout, stderr io.Writer) error {
	input, err := readInput(path, stdin)
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

	cols, rows := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cols, rows = w, h
	}

	m := newTreeModel(root, cols, rows)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return exitErr(exitInternalIO, err)
	}
	return nil
}

// treeRow is one flattened, indented line of the tree walk: either a
// composite header (with its expand state) or a scalar leaf.
type treeRow struct {
	v        *value.Value
	label    string
	depth    int
	isLeaf   bool
	expanded bool
}

var (
	keyStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	leafStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cursorStyle = lipgloss.NewStyle().Reverse(true)
)

// treeModel is a pure read-only consumer of the Accessor API: it calls
// GetArraySize/GetObjectKey/GetType and friends to flatten the tree into
// rows, and never touches parser/serializer internals.
type treeModel struct {
	root     *value.Value
	expanded map[*value.Value]bool
	rows     []treeRow
	cursor   int
	cols     int
	viewRows int
	scroll   int
}

func newTreeModel(root *value.Value, cols, rows int) *treeModel {
	m := &treeModel{
		root:     root,
		expanded: map[*value.Value]bool{root: true},
		cols:     cols,
		viewRows: rows - 1,
	}
	m.rebuild()
	return m
}

func (m *treeModel) Init() tea.Cmd { return nil }

func (m *treeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.viewRows = msg.Height - 1

	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.moveCursor(-1)
		case "down", "j":
			m.moveCursor(1)
		case "enter", " ":
			m.toggleCursor()
		}
	}
	return m, nil
}

func (m *treeModel) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.cursor >= m.scroll+m.viewRows {
		m.scroll = m.cursor - m.viewRows + 1
	}
}

func (m *treeModel) toggleCursor() {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return
	}
	row := m.rows[m.cursor]
	if row.isLeaf {
		return
	}
	m.expanded[row.v] = !m.expanded[row.v]
	m.rebuild()
}

func (m *treeModel) rebuild() {
	m.rows = nil
	m.appendRow(m.root, "$", 0)
}

func (m *treeModel) appendRow(v *value.Value, label string, depth int) {
	switch v.GetType() {
	case value.Array, value.Object:
		expanded := m.expanded[v]
		m.rows = append(m.rows, treeRow{v: v, label: label, depth: depth, expanded: expanded})
		if !expanded {
			return
		}
		if v.GetType() == value.Array {
			for i := 0; i < v.GetArraySize(); i++ {
				m.appendRow(v.GetArrayElement(i), "["+strconv.Itoa(i)+"]", depth+1)
			}
		} else {
			for i := 0; i < v.GetObjectSize(); i++ {
				m.appendRow(v.GetObjectValue(i), string(v.GetObjectKey(i)), depth+1)
			}
		}
	default:
		m.rows = append(m.rows, treeRow{v: v, label: label, depth: depth, isLeaf: true})
	}
}

func scalarText(v *value.Value) string {
	switch v.GetType() {
	case value.Null:
		return "null"
	case value.True:
		return "true"
	case value.False:
		return "false"
	case value.Number:
		return strconv.FormatFloat(v.GetNumber(), 'g', -1, 64)
	case value.String:
		return strconv.Quote(string(v.GetString()))
	default:
		return ""
	}
}

func (m *treeModel) View() tea.View {
	var b strings.Builder

	end := m.scroll + m.viewRows
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for i := m.scroll; i < end; i++ {
		row := m.rows[i]
		indent := strings.Repeat("  ", row.depth)

		var line string
		if row.isLeaf {
			line = fmt.Sprintf("%s%s: %s", indent, keyStyle.Render(row.label), leafStyle.Render(scalarText(row.v)))
		} else {
			marker := "▸"
			if row.expanded {
				marker = "▾"
			}
			kind := "array"
			size := row.v.GetArraySize
			if row.v.GetType() == value.Object {
				kind = "object"
				size = row.v.GetObjectSize
			}
			line = fmt.Sprintf("%s%s %s: %s", indent, marker, keyStyle.Render(row.label),
				headerStyle.Render(fmt.Sprintf("%s[%d]", kind, size())))
		}

		if i == m.cursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	v := tea.NewView(b.String())
	v.AltScreen = true
	return v
}
