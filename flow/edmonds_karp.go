package flow

import "math"

// EdmondsKarp computes the maximum flow from source to sink using shortest
// (fewest-arc) augmenting paths found by BFS.
//
// It returns the flow value and the residual network; net is not mutated.
// Errors mirror Dinic.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(net *Network, source, sink string, opts FlowOptions) (maxFlow int64, residual *Network, err error) {
	opts.normalize()
	if err = net.validateTerminals(source, sink); err != nil {
		return 0, nil, err
	}
	residual = net.Clone()

	for {
		if err = opts.Ctx.Err(); err != nil {
			return maxFlow, nil, err
		}
		path, bottle := residual.augmentingPath(source, sink)
		if len(path) == 0 {
			break
		}
		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]
			residual.capMap[u][v] -= bottle
			residual.capMap[v][u] += bottle
		}
		maxFlow += bottle
		opts.logAugment("edmonds-karp", bottle, maxFlow)
	}

	return maxFlow, residual, nil
}

// augmentingPath finds the shortest source→sink path over positive-capacity
// arcs and returns it with its bottleneck. Returns nil if none exists.
func (n *Network) augmentingPath(source, sink string) ([]string, int64) {
	parent := map[string]string{}
	visited := map[string]bool{source: true}
	queue := []string{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, v := range n.Successors(u) {
			if visited[v] || n.capMap[u][v] <= 0 {
				continue
			}
			visited[v] = true
			parent[v] = u
			if v != sink {
				queue = append(queue, v)
				continue
			}

			path := []string{sink}
			bottle := int64(math.MaxInt64)
			for cur := sink; cur != source; {
				p := parent[cur]
				bottle = min(bottle, n.capMap[p][cur])
				path = append(path, p)
				cur = p
			}
			for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
				path[l], path[r] = path[r], path[l]
			}

			return path, bottle
		}
	}

	return nil, 0
}
