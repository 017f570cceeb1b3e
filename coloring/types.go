package coloring

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/brocs/core"
	"github.com/katalvlaran/brocs/flow"
)

// Uncolored marks a vertex without a color while a coloring is built.
const Uncolored = -1

// Coloring holds one color per vertex, indexed by dense id.
type Coloring []int

// Colorer is the algorithm contract shared by every coloring strategy.
type Colorer interface {
	// ColorGraph returns a proper coloring of the connected graph g.
	ColorGraph(g *core.Graph) (Coloring, error)
}

var (
	// ErrInvalidInputGraph is returned for a nil or disconnected graph.
	ErrInvalidInputGraph = errors.New("coloring: invalid input graph")

	// ErrInvariantViolation signals that a precondition of the Brooks
	// construction failed (no common neighbor, adjacent pair, fewer than two
	// end-blocks, a vertex left uncolored).
	ErrInvariantViolation = errors.New("coloring: algorithm invariant violated")

	// ErrUnknownAlgorithm is returned by New for an unregistered name.
	ErrUnknownAlgorithm = errors.New("coloring: unknown algorithm")
)

// Case is a state of the Brooks case analysis.
type Case int

const (
	CaseCycle Case = iota
	CaseComplete
	CaseDirectPair
	CaseOneConnected
	CaseTwoConnectedSimple
	CaseTwoConnectedBlocks
	CaseDegenerate
)

var caseNames = [...]string{
	CaseCycle:              "cycle",
	CaseComplete:           "complete",
	CaseDirectPair:         "direct-pair",
	CaseOneConnected:       "one-connected",
	CaseTwoConnectedSimple: "two-connected-simple",
	CaseTwoConnectedBlocks: "two-connected-blocks",
	CaseDegenerate:         "degenerate",
}

func (c Case) String() string {
	if c < 0 || int(c) >= len(caseNames) {
		return fmt.Sprintf("Case(%d)", int(c))
	}

	return caseNames[c]
}

// Option configures a colorer.
type Option func(*options)

type options struct {
	seed   int64
	seeded bool
	logger *slog.Logger
	onCase func(c Case, n int)
	solver flow.MaxFlowFunc
}

func newOptions(opts []Option) options {
	o := options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		onCase: func(Case, int) {},
		solver: flow.Dinic,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithSeed makes the start vertex of ConnectedSequential a seeded random
// choice. The generator is created per call, so equal seeds give equal
// colorings.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed, o.seeded = seed, true
	}
}

// WithLogger routes diagnostics to l. The default discards them.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithOnCase registers fn to be called with every Brooks case taken and the
// vertex count of the (sub)graph it was taken on.
func WithOnCase(fn func(c Case, n int)) Option {
	return func(o *options) {
		if fn != nil {
			o.onCase = fn
		}
	}
}

// WithMaxFlow selects the max-flow solver behind the minimum vertex cuts.
// The default is flow.Dinic.
func WithMaxFlow(fn flow.MaxFlowFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.solver = fn
		}
	}
}

// Algorithm names accepted by New.
const (
	AlgorithmBrooks = "brooks"
	AlgorithmCS     = "cs"
)

// Algorithms lists the names accepted by New.
func Algorithms() []string { return []string{AlgorithmBrooks, AlgorithmCS} }

// New returns the colorer registered under name.
func New(name string, opts ...Option) (Colorer, error) {
	switch name {
	case AlgorithmBrooks:
		return NewBrooks(opts...), nil
	case AlgorithmCS, "connected-sequential":
		return NewConnectedSequential(opts...), nil
	default:
		return nil, fmt.Errorf("%q (known: %v): %w", name, Algorithms(), ErrUnknownAlgorithm)
	}
}
