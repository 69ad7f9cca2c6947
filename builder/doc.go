// SPDX-License-Identifier: MIT

// Package builder generates fixture graphs: classic topologies and seeded
// random graphs, written into a core.Graph[string] through its ordinary
// AddVertex/AddEdge surface.
//
// Composition:
//
//	g, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithDirected(false)},
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 5))},
//	    builder.Wheel(6),
//	    builder.RandomSparse(10, 0.2),
//	)
//
// Constructors run in order against the same graph, so later ones can extend
// or upsert what earlier ones wrote.
//
// Vertex IDs come from the configured IDFn (decimal by default). Star and
// Wheel add a fixed "Center" vertex, CompleteBipartite uses the partition
// prefixes, and Grid uses "r:c" coordinates. Labels must stay free of commas
// for loader.Dump to accept them.
//
// On a directed graph, Path and Cycle emit forward arcs only. Star, Wheel
// spokes, Complete, CompleteBipartite and Grid also emit the reverse arc so
// the topology stays navigable both ways.
//
// Determinism: the same options, seed and constructor order produce the
// same graph, including vertex and neighbor insertion order.
//
// Errors are package sentinels wrapped with the constructor name:
// ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource and
// ErrConstructFailed.
package builder
