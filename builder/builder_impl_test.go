// File: builder_impl_test.go
// Package builder_test contains functional tests for every Constructor:
// vertex/edge counts, maximum degree, connectivity and a few topology
// spot checks.
package builder_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/brocs/bfs"
	"github.com/katalvlaran/brocs/builder"
	"github.com/katalvlaran/brocs/core"
)

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		opts        []builder.BuilderOption
		ctor        builder.Constructor
		wantV       int
		wantE       int
		wantMaxDeg  int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{name: "Path(5)", ctor: builder.Path(5), wantV: 5, wantE: 4, wantMaxDeg: 2},
		{name: "Path(1)", ctor: builder.Path(1), wantV: 1, wantE: 0, wantMaxDeg: 0},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5, wantMaxDeg: 2,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				if !g.HasEdge("4", "0") {
					t.Errorf("Cycle(5): closing edge 4-0 missing")
				}
			},
		},
		{name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6, wantMaxDeg: 3},
		{
			name: "CompleteBipartite(5,2)", ctor: builder.CompleteBipartite(5, 2), wantV: 7, wantE: 10, wantMaxDeg: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				if g.HasEdge("L0", "L1") || g.HasEdge("R0", "R1") {
					t.Errorf("CompleteBipartite: edge inside a side")
				}
			},
		},
		{name: "Star(4)", ctor: builder.Star(4), wantV: 5, wantE: 4, wantMaxDeg: 4},
		{name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 6, wantE: 10, wantMaxDeg: 5},
		{name: "Kite", ctor: builder.Kite(), wantV: 4, wantE: 5, wantMaxDeg: 3},
		{
			name: "TwinKite", ctor: builder.TwinKite(), wantV: 7, wantE: 10, wantMaxDeg: 4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				if d, _ := g.Degree("3"); d != 4 {
					t.Errorf("TwinKite: shared tip degree = %d, want 4", d)
				}
			},
		},
		{
			name: "DoubleTwinKite", ctor: builder.DoubleTwinKite(), wantV: 8, wantE: 12, wantMaxDeg: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for _, v := range g.Vertices() {
					if d, _ := g.Degree(v); d != 3 {
						t.Errorf("DoubleTwinKite: deg(%s) = %d, want 3", v, d)
					}
				}
			},
		},
		{
			name: "ConnectedCaveman(4,4)", ctor: builder.ConnectedCaveman(4, 4), wantV: 16, wantE: 24, wantMaxDeg: 4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				if g.HasEdge("0", "1") || !g.HasEdge("0", "15") {
					t.Errorf("ConnectedCaveman: ring rewiring wrong")
				}
			},
		},
		{name: "Fence", ctor: builder.Fence(), wantV: 11, wantE: 10, wantMaxDeg: 3},
		{name: "House", ctor: builder.House(), wantV: 5, wantE: 8, wantMaxDeg: 4},
		{
			name: "House(one-based)", opts: []builder.BuilderOption{builder.WithOneBasedIDs()},
			ctor: builder.House(), wantV: 5, wantE: 8, wantMaxDeg: 4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				if !g.HasEdge("3", "5") || g.HasVertex("0") {
					t.Errorf("House: one-based IDs not applied")
				}
			},
		},
		{name: "Shovel", ctor: builder.Shovel(), wantV: 7, wantE: 7, wantMaxDeg: 3},
		{
			name: "RandomGNM(20,40)", opts: []builder.BuilderOption{builder.WithSeed(3)},
			ctor: builder.RandomGNM(20, 40), wantV: 20, wantE: 40, wantMaxDeg: -1,
		},
		{
			name: "RandomGNM(5,10) full", opts: []builder.BuilderOption{builder.WithSeed(3)},
			ctor: builder.RandomGNM(5, 10), wantV: 5, wantE: 10, wantMaxDeg: 4,
		},
		{
			name: "RandomSparse(6,1)", opts: []builder.BuilderOption{builder.WithSeed(1)},
			ctor: builder.RandomSparse(6, 1), wantV: 6, wantE: 15, wantMaxDeg: 5,
		},
		{
			name: "RandomSparse(6,0)", opts: []builder.BuilderOption{builder.WithSeed(1)},
			ctor: builder.RandomSparse(6, 0), wantV: 6, wantE: 0, wantMaxDeg: 0,
		},
		{
			name: "RandomConnected(30,45)", opts: []builder.BuilderOption{builder.WithSeed(9)},
			ctor: builder.RandomConnected(30, 45), wantV: 30, wantE: 45, wantMaxDeg: -1,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				if ok, err := bfs.IsConnected(g); err != nil || !ok {
					t.Errorf("RandomConnected: graph not connected (err=%v)", err)
				}
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.opts, tc.ctor)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", tc.name, err)
			}
			if got := g.VertexCount(); got != tc.wantV {
				t.Errorf("%s: vertices = %d, want %d", tc.name, got, tc.wantV)
			}
			if got := g.EdgeCount(); got != tc.wantE {
				t.Errorf("%s: edges = %d, want %d", tc.name, got, tc.wantE)
			}
			if tc.wantMaxDeg >= 0 {
				if got := g.MaxDegree(); got != tc.wantMaxDeg {
					t.Errorf("%s: max degree = %d, want %d", tc.name, got, tc.wantMaxDeg)
				}
			}
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

// TestBuilders_Errors checks parameter validation sentinels.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	seeded := []builder.BuilderOption{builder.WithSeed(1)}
	tests := []struct {
		name string
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		{"Path(0)", nil, builder.Path(0), builder.ErrTooFewVertices},
		{"Cycle(2)", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"Complete(0)", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"CompleteBipartite(0,1)", nil, builder.CompleteBipartite(0, 1), builder.ErrTooFewVertices},
		{"Star(0)", nil, builder.Star(0), builder.ErrTooFewVertices},
		{"Wheel(2)", nil, builder.Wheel(2), builder.ErrTooFewVertices},
		{"ConnectedCaveman(1,4)", nil, builder.ConnectedCaveman(1, 4), builder.ErrTooFewVertices},
		{"ConnectedCaveman(3,2)", nil, builder.ConnectedCaveman(3, 2), builder.ErrTooFewVertices},
		{"RandomSparse(p>1)", seeded, builder.RandomSparse(5, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(p<0)", seeded, builder.RandomSparse(5, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", nil, builder.RandomSparse(5, 0.5), builder.ErrNeedRandSource},
		{"RandomGNM(no rng)", nil, builder.RandomGNM(5, 3), builder.ErrNeedRandSource},
		{"RandomGNM(4,7)", seeded, builder.RandomGNM(4, 7), builder.ErrTooManyEdges},
		{"RandomConnected(5,3)", seeded, builder.RandomConnected(5, 3), builder.ErrTooFewVertices},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildGraph(tc.opts, tc.ctor)
			if !errors.Is(err, tc.want) {
				t.Errorf("%s: err = %v, want %v", tc.name, err, tc.want)
			}
		})
	}
}

// TestBuildGraph_Composition glues two constructors over shared IDs.
func TestBuildGraph_Composition(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(3), builder.Cycle(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.VertexCount() != 3 || g.EdgeCount() != 3 {
		t.Errorf("composition: got V=%d E=%d, want 3 and 3", g.VertexCount(), g.EdgeCount())
	}
}

// TestRandom_Determinism builds the same seeded graph twice.
func TestRandom_Determinism(t *testing.T) {
	for _, ctor := range []builder.Constructor{
		builder.RandomGNM(20, 40),
		builder.RandomSparse(20, 0.3),
		builder.RandomConnected(20, 30),
	} {
		g1, err1 := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(42)}, ctor)
		g2, err2 := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(42)}, ctor)
		if err1 != nil || err2 != nil {
			t.Fatalf("unexpected errors: %v, %v", err1, err2)
		}
		e1, e2 := g1.Edges(), g2.Edges()
		if len(e1) != len(e2) {
			t.Fatalf("edge counts differ: %d vs %d", len(e1), len(e2))
		}
		for i := range e1 {
			if e1[i] != e2[i] {
				t.Fatalf("edge %d differs: %v vs %v", i, e1[i], e2[i])
			}
		}
	}
}
