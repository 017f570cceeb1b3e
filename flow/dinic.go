package flow

import (
	"context"
	"math"
)

// Dinic computes the maximum flow from source to sink using Dinic's
// algorithm (level graph + blocking flows).
//
// It returns:
//   - maxFlow  : the total flow value
//   - residual : a copy of net holding the remaining capacities
//   - err      : ErrSourceNotFound, ErrSinkNotFound, ErrSameTerminals,
//     or context cancellation error
//
// Steps:
//  1. Normalize options and validate terminals.
//  2. Clone net into the residual network (net itself is not mutated).
//  3. Repeat until the sink is unreachable:
//     a. BFS from source to assign levels over positive-capacity arcs.
//     b. Build next[u] = successors at level+1, in insertion order.
//     c. Push blocking flow by DFS, optionally rebuilding levels every
//     LevelRebuildInterval augmentations.
//
// Complexity:
//
//	Time:   O(V²·E) in general; O(E·√V) on unit-capacity networks such as
//	        the vertex-split graphs built by LocalVertexCut.
//	Memory: O(V + E).
func Dinic(net *Network, source, sink string, opts FlowOptions) (maxFlow int64, residual *Network, err error) {
	opts.normalize()
	ctx := opts.Ctx

	if err = net.validateTerminals(source, sink); err != nil {
		return 0, nil, err
	}
	residual = net.Clone()

	augmentCount := 0
	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}

		level := residual.levels(source)
		if _, ok := level[sink]; !ok {
			break
		}

		next := make(map[string][]string, len(level))
		for u, lu := range level {
			for _, v := range residual.Successors(u) {
				if lv, ok := level[v]; ok && lv == lu+1 && residual.capMap[u][v] > 0 {
					next[u] = append(next[u], v)
				}
			}
		}

		iter := make(map[string]int, len(next))
		for {
			if err = ctx.Err(); err != nil {
				return maxFlow, nil, err
			}
			pushed := dfsDinicPush(ctx, residual.capMap, next, iter, source, sink, math.MaxInt64)
			if pushed == 0 {
				break
			}
			maxFlow += pushed
			augmentCount++
			opts.logAugment("dinic", pushed, maxFlow)
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	return maxFlow, residual, nil
}

// levels runs the BFS of one Dinic phase and returns node → level for every
// node reachable through positive capacity.
func (n *Network) levels(source string) map[string]int {
	level := map[string]int{source: 0}
	queue := []string{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, v := range n.Successors(u) {
			if _, seen := level[v]; seen || n.capMap[u][v] <= 0 {
				continue
			}
			level[v] = level[u] + 1
			queue = append(queue, v)
		}
	}

	return level
}

// dfsDinicPush recursively pushes flow along the level graph.
// It respects cancellation via ctx, updates capMap in-place,
// and returns the amount actually sent.
func dfsDinicPush(
	ctx context.Context,
	capMap map[string]map[string]int64,
	next map[string][]string,
	iter map[string]int,
	u, sink string,
	available int64,
) int64 {
	if ctx.Err() != nil {
		return 0
	}
	if u == sink {
		return available
	}
	for i := iter[u]; i < len(next[u]); i++ {
		v := next[u][i]
		capUV := capMap[u][v]
		if capUV <= 0 {
			iter[u] = i + 1
			continue
		}
		send := min(available, capUV)
		pushed := dfsDinicPush(ctx, capMap, next, iter, v, sink, send)
		if pushed > 0 {
			capMap[u][v] -= pushed
			capMap[v][u] += pushed

			return pushed
		}
		// dead end: skip this arc for the rest of the phase
		iter[u] = i + 1
	}

	return 0
}
