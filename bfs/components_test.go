package bfs_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/brocs/bfs"
	"github.com/katalvlaran/brocs/core"
)

func TestComponents(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("a", "b")
	_ = g.AddEdge("c", "d")
	_ = g.AddEdge("d", "e")
	_ = g.AddVertex("f")

	comps, err := bfs.Components(g)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"a", "b"}, {"c", "d", "e"}, {"f"}}
	if !reflect.DeepEqual(comps, want) {
		t.Errorf("Components = %v; want %v", comps, want)
	}

	comps, err = bfs.Components(g, "d")
	if err != nil {
		t.Fatal(err)
	}
	if len(comps) != 4 {
		t.Errorf("Components without d = %v; want 4 parts", comps)
	}
}

func TestConnectedWithout(t *testing.T) {
	// path a-b-c
	g := core.NewGraph()
	_ = g.AddEdge("a", "b")
	_ = g.AddEdge("b", "c")

	cases := []struct {
		removed []string
		want    bool
	}{
		{nil, true},
		{[]string{"a"}, true},
		{[]string{"b"}, false},
		{[]string{"a", "c"}, true},
		{[]string{"a", "b", "c"}, true},
	}
	for _, tc := range cases {
		got, err := bfs.ConnectedWithout(g, tc.removed...)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Errorf("ConnectedWithout(%v) = %v; want %v", tc.removed, got, tc.want)
		}
	}

	ok, err := bfs.IsConnected(core.NewGraph())
	if err != nil || !ok {
		t.Errorf("empty graph should be connected, got %v, %v", ok, err)
	}
	if _, err := bfs.IsConnected(nil); err == nil {
		t.Errorf("nil graph should fail")
	}
}
