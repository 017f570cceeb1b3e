package flow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrSourceNotFound is returned when the specified source vertex is missing.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the specified sink vertex is missing.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrSameTerminals is returned when source and sink coincide.
	ErrSameTerminals = errors.New("flow: source equals sink")

	// ErrAdjacentTerminals is returned when a vertex separator is requested
	// between two adjacent vertices; no vertex set separates them.
	ErrAdjacentTerminals = errors.New("flow: terminals are adjacent")

	// ErrNoVertexCut is returned for complete graphs, which have no vertex cut.
	ErrNoVertexCut = errors.New("flow: graph is complete, no vertex cut exists")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("flow: graph is nil")
)

// EdgeError is returned when an arc has a negative capacity.
type EdgeError struct {
	From, To string
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on arc %q→%q: %d", e.From, e.To, e.Cap)
}

// MaxFlowFunc is the shape shared by Dinic and EdmondsKarp: it computes a
// maximum source→sink flow and returns it with the residual network.
type MaxFlowFunc func(net *Network, source, sink string, opts FlowOptions) (int64, *Network, error)

// FlowOptions configures the max-flow algorithms and the vertex-cut search.
//   - Ctx: cancellation; nil means context.Background().
//   - Logger: if non-nil, each augmentation is logged at Debug level.
//   - LevelRebuildInterval: for Dinic, rebuild level graph every N augmentations.
//   - Solver: max-flow routine used by the vertex-cut search; nil means Dinic.
type FlowOptions struct {
	Ctx                  context.Context
	Logger               *slog.Logger
	LevelRebuildInterval int
	Solver               MaxFlowFunc
}

// DefaultOptions returns FlowOptions with a background context, no logging,
// no forced level rebuilds and Dinic as the solver.
func DefaultOptions() FlowOptions {
	return FlowOptions{
		Ctx:    context.Background(),
		Solver: Dinic,
	}
}

// normalize fills zero-valued fields with their defaults.
func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Solver == nil {
		o.Solver = Dinic
	}
	if o.LevelRebuildInterval < 0 {
		o.LevelRebuildInterval = 0
	}
}

// logAugment emits one Debug record per augmentation when a logger is set.
func (o *FlowOptions) logAugment(algo string, pushed, total int64) {
	if o.Logger == nil {
		return
	}
	o.Logger.Debug("augment", "algorithm", algo, "pushed", pushed, "total", total)
}
