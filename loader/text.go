package loader

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/simplegraph/core"
)

// Builder receives the rows of a text file in order. *core.Graph[string]
// satisfies it.
type Builder interface {
	AddVertex(label string, opts ...core.VertexOption) (core.VertexID, error)
	AddEdge(u, v string, opts ...core.EdgeOption) error
}

type rowMode int

const (
	modeEdges rowMode = iota
	modeVertices
)

var defaultHeader = []string{core.AttrWeight}

// Load reads the text format from r and replays it into b.
func Load(r io.Reader, b Builder) error {
	var (
		mode   = modeEdges
		header = defaultHeader
		sc     = bufio.NewScanner(r)
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			m, h, ok, err := parseMarker(line)
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			if ok {
				mode, header = m, h
			}
			continue
		}

		cols := splitRow(line)
		var err error
		switch mode {
		case modeVertices:
			err = loadVertex(b, cols, header)
		default:
			err = loadEdge(b, cols, header)
		}
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("loader: read: %w", err)
	}

	return nil
}

// parseMarker decodes a "#V..." or "#E..." line. ok is false for comments.
func parseMarker(line string) (rowMode, []string, bool, error) {
	body := strings.TrimPrefix(line, "#")
	if body == "" {
		return 0, nil, false, nil
	}

	var mode rowMode
	switch body[0] {
	case 'V', 'v':
		mode = modeVertices
	case 'E', 'e':
		mode = modeEdges
	default:
		return 0, nil, false, nil
	}
	// "#Vertex notes" is a comment, not a marker.
	rest := body[1:]
	if rest != "" && rest[0] != ',' && rest[0] != ' ' && rest[0] != '\t' {
		return 0, nil, false, nil
	}

	rest = strings.TrimLeft(rest, ", \t")
	if rest == "" {
		return mode, defaultHeader, true, nil
	}
	var header []string
	for _, name := range strings.Split(rest, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			return 0, nil, false, fmt.Errorf("%w: empty attribute name in header %q", core.ErrInvalidInput, line)
		}
		header = append(header, name)
	}

	return mode, header, true, nil
}

// splitRow splits on commas, or on whitespace when the row has none.
func splitRow(line string) []string {
	if !strings.Contains(line, ",") {
		return strings.Fields(line)
	}
	cols := strings.Split(line, ",")
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}
	return cols
}

func loadVertex(b Builder, cols []string, header []string) error {
	if cols[0] == "" {
		return fmt.Errorf("%w: vertex row without a label", core.ErrInvalidInput)
	}
	attrs, err := bindAttrs(cols[1:], header)
	if err != nil {
		return err
	}
	_, err = b.AddVertex(cols[0], core.WithVertexAttrs(attrs))
	return err
}

func loadEdge(b Builder, cols []string, header []string) error {
	if len(cols) < 2 || cols[0] == "" || cols[1] == "" {
		return fmt.Errorf("%w: edge row needs two labels", core.ErrInvalidInput)
	}
	attrs, err := bindAttrs(cols[2:], header)
	if err != nil {
		return err
	}
	return b.AddEdge(cols[0], cols[1], core.WithEdgeAttrs(attrs))
}

// bindAttrs maps columns positionally onto header names.
func bindAttrs(cols []string, header []string) (core.Attrs, error) {
	if len(cols) > len(header) {
		return nil, fmt.Errorf("%w: %d value columns for header %v", core.ErrInvalidInput, len(cols), header)
	}
	attrs := make(core.Attrs, len(cols))
	for i, raw := range cols {
		if raw == "" {
			continue
		}
		attrs[header[i]] = ParseValue(raw)
	}
	return attrs, nil
}

// ParseValue reads a column as a number, then as a boolean, else as text.
func ParseValue(raw string) core.Value {
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return core.Number(f)
	}
	switch raw {
	case "true":
		return core.Bool(true)
	case "false":
		return core.Bool(false)
	}
	return core.String(raw)
}

// Dump writes snap in the text format: a "#V" block, then a "#E" block, each
// with a header listing weight first and every other attribute key sorted.
// Values are written with core.Value.String, so a text attribute that reads
// as a number or boolean changes kind on reload.
//
// Returns core.ErrInvalidInput for labels or values that cannot be written
// as a single column.
func Dump(w io.Writer, snap core.Snapshot[string]) error {
	bw := bufio.NewWriter(w)

	vAttrs := make([]core.Attrs, len(snap.V))
	for i, v := range snap.V {
		vAttrs[i] = v.Attrs
	}
	header := headerOf(vAttrs)
	fmt.Fprintf(bw, "#V,%s\n", strings.Join(header, ","))
	for _, v := range snap.V {
		row, err := renderRow([]string{v.Label}, v.Attrs, header)
		if err != nil {
			return err
		}
		fmt.Fprintln(bw, row)
	}

	eAttrs := make([]core.Attrs, len(snap.E))
	for i, e := range snap.E {
		eAttrs[i] = e.Attrs
	}
	header = headerOf(eAttrs)
	fmt.Fprintf(bw, "#E,%s\n", strings.Join(header, ","))
	for _, e := range snap.E {
		row, err := renderRow([]string{e.From, e.To}, e.Attrs, header)
		if err != nil {
			return err
		}
		fmt.Fprintln(bw, row)
	}

	return bw.Flush()
}

func headerOf(bags []core.Attrs) []string {
	keys := map[string]struct{}{}
	for _, a := range bags {
		for k := range a {
			if k != core.AttrWeight {
				keys[k] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(keys)+1)
	for k := range keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return append([]string{core.AttrWeight}, out...)
}

func renderRow(labels []string, attrs core.Attrs, header []string) (string, error) {
	cols := make([]string, 0, len(labels)+len(header))
	for _, l := range labels {
		if err := checkColumn(l); err != nil || l == "" {
			return "", fmt.Errorf("%w: label %q cannot be written", core.ErrInvalidInput, l)
		}
		cols = append(cols, l)
	}
	for _, k := range header {
		v, ok := attrs[k]
		if !ok {
			cols = append(cols, "")
			continue
		}
		s := v.String()
		if err := checkColumn(s); err != nil {
			return "", fmt.Errorf("%w: attribute %s=%q cannot be written", core.ErrInvalidInput, k, s)
		}
		cols = append(cols, s)
	}
	return strings.Join(cols, ","), nil
}

// checkColumn rejects text that would split or reframe a row.
func checkColumn(s string) error {
	if strings.ContainsAny(s, ",\n\r") || strings.HasPrefix(s, "#") || s != strings.TrimSpace(s) {
		return core.ErrInvalidInput
	}
	return nil
}
