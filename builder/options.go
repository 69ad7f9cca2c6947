// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
)

// Sentinel errors returned by constructors.
var (
	// ErrTooFewVertices indicates a size parameter below the topology minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates p outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a nil graph or constructor.
	ErrConstructFailed = errors.New("builder: construction failed")
)

// DefaultEdgeWeight is the weight DefaultWeightFn assigns to every edge.
const DefaultEdgeWeight float64 = 1

const (
	centerVertexID     = "Center"
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// IDFn maps a vertex index to its label.
type IDFn func(idx int) string

// WeightFn draws one edge weight. rng may be nil when no seed was set.
type WeightFn func(rng *rand.Rand) float64

// builderConfig is the resolved, immutable configuration of one build.
type builderConfig struct {
	idFn        IDFn
	rng         *rand.Rand
	weightFn    WeightFn
	leftPrefix  string
	rightPrefix string
}

// BuilderOption mutates the configuration before any constructor runs.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		weightFn:    DefaultWeightFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// WithIDScheme sets the vertex labelling function. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithSeed installs a deterministic RNG.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand installs a caller-owned RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithWeightFn sets the edge weight distribution. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithPartitionPrefix sets the CompleteBipartite label prefixes; empty keeps "L"/"R".
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) { c.leftPrefix, c.rightPrefix = left, right }
}

// DefaultIDFn labels vertices "0", "1", "2", ...
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// ExcelColumnIDFn labels vertices "A".."Z", "AA", "AB", ...
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// PrefixIDFn labels vertices prefix+"0", prefix+"1", ...
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 { return DefaultEdgeWeight }

// ConstantWeightFn always returns value. Panics if value is negative.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}
	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn draws from U[min,max), rounded to two decimals so text
// exports stay short. Without an RNG it returns min.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return min
		}
		return math.Round((min+rng.Float64()*(max-min))*100) / 100
	}
}
