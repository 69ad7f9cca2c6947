// This file declares Vertex, Edge, Pair, Graph, the option types,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound - an endpoint is missing and auto-creation was disabled.
//	ErrInvalidInput   - malformed attribute bag or initializer structure.
package core

import (
	"cmp"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrInvalidInput indicates a malformed attribute or initializer.
	ErrInvalidInput = errors.New("core: invalid input")
)

// DefaultWeight replaces any zero (unset) vertex or edge weight.
const DefaultWeight = 1.0

// Reserved attribute keys routed to first-class fields by WithVertexAttrs and
// WithEdgeAttrs, and emitted by Snapshot.
const (
	AttrWeight = "weight"
	AttrLabel  = "label"
)

// VertexID is the stable arena slot of a vertex. IDs of removed vertices are
// recycled, so an ID is only meaningful while its label is present.
type VertexID int

// Vertex is a read-only copy of a stored vertex record.
type Vertex[K cmp.Ordered] struct {
	// Label is the user identity of the vertex.
	Label K

	// Weight is never zero; unset weights are stored as DefaultWeight.
	Weight float64

	// Attrs holds every user attribute except weight.
	Attrs Attrs
}

// Edge is a read-only copy of a stored edge record.
type Edge[K cmp.Ordered] struct {
	From K
	To   K

	// Weight is never zero; unset weights are stored as DefaultWeight.
	Weight float64

	// Label is optional; "" means unset.
	Label string

	// Attrs holds every user attribute except weight and label.
	Attrs Attrs
}

// Pair is an ordered (From, To) label pair.
type Pair[K cmp.Ordered] struct {
	From K
	To   K
}

// Reverse returns (To, From).
func (p Pair[K]) Reverse() Pair[K] { return Pair[K]{From: p.To, To: p.From} }

// String renders the pair as "(from,to)".
func (p Pair[K]) String() string { return fmt.Sprintf("(%v,%v)", p.From, p.To) }

// graphConfig is filled by GraphOption values before construction.
type graphConfig struct {
	directed bool
	logger   *zap.Logger
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(*graphConfig)

// WithDirected selects asymmetric (true) or symmetric (false) edge storage.
// Orientation is immutable after construction.
func WithDirected(directed bool) GraphOption {
	return func(c *graphConfig) { c.directed = directed }
}

// WithLogger routes not-found and duplicate notices to l.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) GraphOption {
	return func(c *graphConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// vertexConfig collects VertexOption values for a single AddVertex call.
type vertexConfig struct {
	weight float64
	attrs  Attrs
	err    error
}

// VertexOption configures the record written by AddVertex.
type VertexOption func(*vertexConfig)

// WithVertexWeight sets the vertex weight. Zero means "unset".
func WithVertexWeight(w float64) VertexOption {
	return func(c *vertexConfig) { c.weight = w }
}

// WithVertexAttr sets a single attribute.
func WithVertexAttr(key string, v Value) VertexOption {
	return func(c *vertexConfig) {
		if key == AttrWeight {
			f, ok := v.Float()
			if !ok {
				c.err = fmt.Errorf("%w: vertex weight must be a number, got %s", ErrInvalidInput, v.Kind())
				return
			}
			c.weight = f
			return
		}
		if !v.IsValid() {
			c.err = fmt.Errorf("%w: attribute %q has no value", ErrInvalidInput, key)
			return
		}
		c.attrs[key] = v
	}
}

// WithVertexAttrs applies every entry of attrs; a "weight" entry sets the weight.
func WithVertexAttrs(attrs Attrs) VertexOption {
	return func(c *vertexConfig) {
		for k, v := range attrs {
			WithVertexAttr(k, v)(c)
		}
	}
}

// edgeConfig collects EdgeOption values for a single AddEdge call.
type edgeConfig struct {
	weight       float64
	label        string
	labelSet     bool
	attrs        Attrs
	existingOnly bool
	err          error
}

// EdgeOption configures the record written by AddEdge.
type EdgeOption func(*edgeConfig)

// WithEdgeWeight sets the edge weight. Zero means "unset".
func WithEdgeWeight(w float64) EdgeOption {
	return func(c *edgeConfig) { c.weight = w }
}

// WithEdgeLabel sets the optional edge label.
func WithEdgeLabel(label string) EdgeOption {
	return func(c *edgeConfig) {
		c.label = label
		c.labelSet = true
	}
}

// WithEdgeAttr sets a single attribute; "weight" and "label" go to their fields.
func WithEdgeAttr(key string, v Value) EdgeOption {
	return func(c *edgeConfig) {
		switch {
		case key == AttrWeight:
			f, ok := v.Float()
			if !ok {
				c.err = fmt.Errorf("%w: edge weight must be a number, got %s", ErrInvalidInput, v.Kind())
				return
			}
			c.weight = f
		case !v.IsValid():
			c.err = fmt.Errorf("%w: attribute %q has no value", ErrInvalidInput, key)
		case key == AttrLabel:
			c.label = v.String()
			c.labelSet = true
		default:
			c.attrs[key] = v
		}
	}
}

// WithEdgeAttrs applies every entry of attrs through WithEdgeAttr.
func WithEdgeAttrs(attrs Attrs) EdgeOption {
	return func(c *edgeConfig) {
		for k, v := range attrs {
			WithEdgeAttr(k, v)(c)
		}
	}
}

// WithExistingEndpoints disables endpoint auto-creation: AddEdge fails with
// ErrVertexNotFound and mutates nothing when either endpoint is absent.
func WithExistingEndpoints() EdgeOption {
	return func(c *edgeConfig) { c.existingOnly = true }
}

// Graph is the in-memory labelled graph.
//
// mu serializes mutations; the forward/reverse index update and the aggregate
// adjustment of one mutation are not atomic on their own.
type Graph[K cmp.Ordered] struct {
	mu sync.RWMutex

	directed    bool // immutable orientation
	hasSelfLink bool // sticky: set by the first self-loop, never cleared

	log *zap.Logger

	vertices vertexStore[K]
	edges    edgeStore
}

// NewGraph creates an empty Graph. By default the graph is symmetric
// (undirected) and logs nowhere.
// Complexity: O(1)
func NewGraph[K cmp.Ordered](opts ...GraphOption) *Graph[K] {
	cfg := graphConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[K]{
		directed: cfg.directed,
		log:      cfg.logger,
		vertices: newVertexStore[K](),
		edges:    newEdgeStore(!cfg.directed),
	}
}

// coerceWeight maps the "unset" zero weight to DefaultWeight.
func coerceWeight(w float64) float64 {
	if w == 0 {
		return DefaultWeight
	}
	return w
}
