package loader

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/simplegraph/core"
)

type yamlVertex struct {
	Label string         `yaml:"label"`
	Attrs map[string]any `yaml:"attrs,omitempty"`
}

type yamlEdge struct {
	From  string         `yaml:"from"`
	To    string         `yaml:"to"`
	Attrs map[string]any `yaml:"attrs,omitempty"`
}

type yamlSnapshot struct {
	Directed bool         `yaml:"directed"`
	V        []yamlVertex `yaml:"V"`
	E        []yamlEdge   `yaml:"E"`
}

// EncodeSnapshot writes snap to w as YAML.
func EncodeSnapshot(w io.Writer, snap core.Snapshot[string]) error {
	doc := yamlSnapshot{
		Directed: snap.Directed,
		V:        make([]yamlVertex, 0, len(snap.V)),
		E:        make([]yamlEdge, 0, len(snap.E)),
	}
	for _, v := range snap.V {
		doc.V = append(doc.V, yamlVertex{Label: v.Label, Attrs: plain(v.Attrs)})
	}
	for _, e := range snap.E {
		doc.E = append(doc.E, yamlEdge{From: e.From, To: e.To, Attrs: plain(e.Attrs)})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("loader: encode snapshot: %w", err)
	}
	return enc.Close()
}

// DecodeSnapshot reads a YAML snapshot from r. Unknown keys and attribute
// values that are not scalars are ErrInvalidInput.
func DecodeSnapshot(r io.Reader) (core.Snapshot[string], error) {
	var doc yamlSnapshot
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return core.Snapshot[string]{}, nil
		}
		return core.Snapshot[string]{}, fmt.Errorf("%w: %v", core.ErrInvalidInput, err)
	}

	snap := core.Snapshot[string]{
		Directed: doc.Directed,
		V:        make([]core.VertexEntry[string], 0, len(doc.V)),
		E:        make([]core.EdgeEntry[string], 0, len(doc.E)),
	}
	for i, v := range doc.V {
		attrs, err := typed(v.Attrs)
		if err != nil {
			return core.Snapshot[string]{}, fmt.Errorf("V[%d] %q: %w", i, v.Label, err)
		}
		snap.V = append(snap.V, core.VertexEntry[string]{Label: v.Label, Attrs: attrs})
	}
	for i, e := range doc.E {
		attrs, err := typed(e.Attrs)
		if err != nil {
			return core.Snapshot[string]{}, fmt.Errorf("E[%d] (%s,%s): %w", i, e.From, e.To, err)
		}
		snap.E = append(snap.E, core.EdgeEntry[string]{From: e.From, To: e.To, Attrs: attrs})
	}

	return snap, nil
}

func plain(a core.Attrs) map[string]any {
	if len(a) == 0 {
		return nil
	}
	out := make(map[string]any, len(a))
	for k, v := range a {
		out[k] = v.Interface()
	}
	return out
}

func typed(m map[string]any) (core.Attrs, error) {
	out := make(core.Attrs, len(m))
	for k, x := range m {
		v, err := core.ValueOf(x)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", k, err)
		}
		out[k] = v
	}
	return out, nil
}
